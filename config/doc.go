// Package config loads shieldkit configuration from files and environment.
//
// Configuration is read from a YAML file (shieldkit.yml by default), with a
// .env file loaded first and SHIELDKIT_-prefixed environment variables
// overriding file values (SHIELDKIT_SHIELD_FALLBACK=deny overrides
// shield.fallback). The loaded struct is validated before use.
//
//	logging:
//	  level: "info"
//	  format: "json"
//	shield:
//	  fallback: "deny"
//	  deny_code: "PERMISSION_DENIED"
//	  wrap_handler_errors: false
package config
