package model

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config is the top-level application configuration.
type Config struct {
	// TelegramToken authenticates the bot against the Telegram API.
	TelegramToken string `mapstructure:"telegram_token" yaml:"telegram_token"`

	// DatabasePath is the location of the SQLite database file.
	DatabasePath string `mapstructure:"database_path" yaml:"database_path"`

	// TickSeconds is the recurrence scheduler's pass interval. It only
	// bounds recurrence latency and is not a correctness parameter.
	TickSeconds int `mapstructure:"tick_seconds" yaml:"tick_seconds"`

	// LogMode selects the zap configuration ("production" or "development").
	LogMode string `mapstructure:"log_mode" yaml:"log_mode"`
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/chorebot/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "chorebot", "config.yaml")
}

// LoadConfig reads configuration from the given YAML file path using Viper,
// with CHOREBOT_* environment variables taking precedence over file values.
// A missing file is not an error; env vars and defaults still apply.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("database_path", "chorebot.db")
	v.SetDefault("tick_seconds", 10)
	v.SetDefault("log_mode", "production")

	v.SetEnvPrefix("CHOREBOT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv does not surface env-only keys through Unmarshal,
	// so each key is bound explicitly.
	for _, key := range []string{"telegram_token", "database_path", "tick_seconds", "log_mode"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("binding env for %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		_, pathErr := err.(*os.PathError)
		_, notFoundErr := err.(viper.ConfigFileNotFoundError)
		if !pathErr && !notFoundErr {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.TickSeconds <= 0 {
		cfg.TickSeconds = 10
	}

	return &cfg, nil
}
