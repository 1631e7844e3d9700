package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "SHIELDKIT"

// LoaderConfig controls where Load looks for configuration.
type LoaderConfig struct {
	// ConfigFile is an explicit config file path. When empty, shieldkit.yml
	// and config/shieldkit.yml are tried.
	ConfigFile string
	// EnvFile is an explicit .env path. When empty, .env is loaded if present.
	EnvFile string
}

// Load reads, defaults, and validates the configuration. A missing config
// file is not an error: the defaults describe a working shield (fallback
// allow, console logging).
func Load(opts LoaderConfig) (*Config, error) {
	loadEnvFile(opts.EnvFile)

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Register every key so environment-only overrides survive Unmarshal.
	for _, key := range []string{
		"logging.level", "logging.format", "logging.output",
		"shield.fallback", "shield.deny_message", "shield.deny_code",
	} {
		v.SetDefault(key, "")
	}
	v.SetDefault("logging.no_color", false)
	v.SetDefault("shield.wrap_handler_errors", false)

	if file := findConfigFile(opts.ConfigFile); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", file, err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	cfg.ApplyDefaults()

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadEnvFile(explicit string) {
	if explicit != "" {
		_ = godotenv.Load(explicit)
		return
	}
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load(".env")
	}
}

func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, candidate := range []string{"shieldkit.yml", "shieldkit.yaml", "config/shieldkit.yml"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

func validate(cfg *Config) error {
	if err := cfg.Logging.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
