// Package logger provides structured logging for shieldkit using zerolog.
//
// Decisions are the unit of logging here: the shield logs one event per
// authorization decision with the procedure path, the outcome, and the denial
// reason when there is one. The package supports JSON and console output,
// level configuration, and component-scoped loggers.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	log := logger.NewDefault("shield")
//	log.Info("access denied", logger.Fields(logger.FieldPath, "users.profile.get"))
package logger
