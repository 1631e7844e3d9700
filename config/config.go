package config

import (
	apperrors "github.com/kbukum/shieldkit/errors"
	"github.com/kbukum/shieldkit/logger"
	"github.com/kbukum/shieldkit/rule"
	"github.com/kbukum/shieldkit/shield"
)

// Config is the root configuration structure.
type Config struct {
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
	Shield  Settings      `yaml:"shield" mapstructure:"shield"`
}

// Settings holds the dispatcher configuration that is deployment-dependent
// rather than code-dependent: the fallback policy for paths missing from the
// tree, the protocol code denials are tagged with, and handler error
// normalization.
type Settings struct {
	Fallback          string `yaml:"fallback" mapstructure:"fallback" validate:"omitempty,oneof=allow deny"`
	DenyMessage       string `yaml:"deny_message" mapstructure:"deny_message"`
	DenyCode          string `yaml:"deny_code" mapstructure:"deny_code"`
	WrapHandlerErrors bool   `yaml:"wrap_handler_errors" mapstructure:"wrap_handler_errors"`
}

// ApplyDefaults applies default values.
func (c *Config) ApplyDefaults() {
	c.Logging.ApplyDefaults()
	if c.Shield.Fallback == "" {
		c.Shield.Fallback = "allow"
	}
}

// Options converts the settings into shield options, attaching log as the
// decision logger.
func (s Settings) Options(log *logger.Logger) shield.Options {
	opts := shield.Options{
		DenyCode:          apperrors.ErrorCode(s.DenyCode),
		WrapHandlerErrors: s.WrapHandlerErrors,
		Logger:            log,
	}
	if s.Fallback == "deny" {
		if s.DenyMessage != "" {
			opts.Fallback = rule.DenyWithMessage(s.DenyMessage)
		} else {
			opts.Fallback = rule.Deny
		}
	}
	return opts
}
