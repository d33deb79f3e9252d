// Package config provides configuration management for tradecoach.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	apperrors "tradecoach/internal/errors"
)

// Config holds all application configuration.
type Config struct {
	Generator GeneratorConfig `mapstructure:"generator"`
	Server    ServerConfig    `mapstructure:"server"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	UI        UIConfig        `mapstructure:"ui"`

	// Dir is the directory the configuration was loaded from.
	Dir string `mapstructure:"-"`
}

// GeneratorConfig holds scenario generation settings.
type GeneratorConfig struct {
	Seed                        uint64  `mapstructure:"seed"`         // 0 = unseeded
	CatalogFile                 string  `mapstructure:"catalog_file"` // empty = built-in
	RandomMinDecisions          int     `mapstructure:"random_min_decisions"`
	RandomMaxDecisions          int     `mapstructure:"random_max_decisions"`
	CustomMinDecisions          int     `mapstructure:"custom_min_decisions"`
	CustomMaxDecisions          int     `mapstructure:"custom_max_decisions"`
	SecondarySessionProbability float64 `mapstructure:"secondary_session_probability"`
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
	Mode string `mapstructure:"mode"` // debug, release, test

	// RateLimit caps generation requests per second; 0 disables it.
	RateLimit float64 `mapstructure:"rate_limit"`
	Burst     int     `mapstructure:"burst"`
}

// LoggingConfig holds logger settings.
type LoggingConfig struct {
	Level      string `mapstructure:"level"`
	Console    bool   `mapstructure:"console"`
	File       bool   `mapstructure:"file"`
	FilePath   string `mapstructure:"file_path"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
}

// UIConfig holds UI-related configuration.
type UIConfig struct {
	ColorEnabled bool `mapstructure:"color_enabled"`
}

// DefaultConfigDir returns the default configuration directory.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".config/tradecoach"
	}
	return filepath.Join(home, ".config", "tradecoach")
}

// Default returns the configuration used when no file overrides it.
func Default() *Config {
	v := viper.New()
	setDefaults(v, DefaultConfigDir())
	cfg := &Config{Dir: DefaultConfigDir()}
	_ = v.Unmarshal(cfg)
	return cfg
}

// Load loads configuration from the specified directory.
// If configDir is empty, uses the default config directory. A missing
// config.toml is written from the template and defaults apply.
func Load(configDir string) (*Config, error) {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}

	loadDotEnv(configDir)

	cfg := &Config{Dir: configDir}
	if err := loadConfigFile(configDir, "config", cfg); err != nil {
		return nil, fmt.Errorf("loading config.toml: %w", err)
	}

	if err := applyEnvOverrides(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Path returns the config file path inside dir.
func Path(configDir string) string {
	if configDir == "" {
		configDir = DefaultConfigDir()
	}
	return filepath.Join(configDir, "config.toml")
}

// loadDotEnv reads .env from the config dir and the working directory.
// Variables already set in the environment win.
func loadDotEnv(configDir string) {
	for _, path := range []string{filepath.Join(configDir, ".env"), ".env"} {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
		}
	}
}

func setDefaults(v *viper.Viper, configDir string) {
	v.SetDefault("generator.seed", 0)
	v.SetDefault("generator.catalog_file", "")
	v.SetDefault("generator.random_min_decisions", 3)
	v.SetDefault("generator.random_max_decisions", 6)
	v.SetDefault("generator.custom_min_decisions", 3)
	v.SetDefault("generator.custom_max_decisions", 5)
	v.SetDefault("generator.secondary_session_probability", 0.4)

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.rate_limit", 0)
	v.SetDefault("server.burst", 5)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.console", true)
	v.SetDefault("logging.file", false)
	v.SetDefault("logging.file_path", filepath.Join(configDir, "logs", "tradecoach.log"))
	v.SetDefault("logging.max_size", 20)
	v.SetDefault("logging.max_backups", 5)
	v.SetDefault("logging.max_age", 14)

	v.SetDefault("ui.color_enabled", true)
}

func loadConfigFile(configDir, name string, target interface{}) error {
	v := viper.New()
	v.SetConfigName(name)
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)
	setDefaults(v, configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return err
		}
		if err := createTemplateConfig(configDir, name); err != nil {
			return err
		}
	}

	return v.Unmarshal(target)
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("TRADECOACH_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return apperrors.Wrapf(apperrors.ErrConfigInvalid, "TRADECOACH_SEED %q is not an unsigned integer", v)
		}
		cfg.Generator.Seed = seed
	}
	if v := os.Getenv("TRADECOACH_CATALOG"); v != "" {
		cfg.Generator.CatalogFile = v
	}
	if v := os.Getenv("TRADECOACH_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("TRADECOACH_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	return nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	g := c.Generator
	if g.RandomMinDecisions < 1 || g.RandomMaxDecisions < g.RandomMinDecisions {
		return apperrors.Wrapf(apperrors.ErrConfigInvalid, "random decisions need 1 <= min <= max, got %d..%d", g.RandomMinDecisions, g.RandomMaxDecisions)
	}
	if g.CustomMinDecisions < 1 || g.CustomMaxDecisions < g.CustomMinDecisions {
		return apperrors.Wrapf(apperrors.ErrConfigInvalid, "custom decisions need 1 <= min <= max, got %d..%d", g.CustomMinDecisions, g.CustomMaxDecisions)
	}
	if g.SecondarySessionProbability < 0 || g.SecondarySessionProbability > 1 {
		return apperrors.Wrapf(apperrors.ErrConfigInvalid, "secondary_session_probability must be between 0 and 1")
	}

	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		return apperrors.Wrapf(apperrors.ErrConfigInvalid, "invalid server mode: %s (must be 'debug', 'release' or 'test')", c.Server.Mode)
	}
	if c.Server.Addr == "" {
		return apperrors.Wrapf(apperrors.ErrConfigInvalid, "server addr must not be empty")
	}
	if c.Server.RateLimit < 0 || (c.Server.RateLimit > 0 && c.Server.Burst < 1) {
		return apperrors.Wrapf(apperrors.ErrConfigInvalid, "server rate_limit must be >= 0 with burst >= 1")
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return apperrors.Wrapf(apperrors.ErrConfigInvalid, "invalid log level: %s", c.Logging.Level)
	}

	return nil
}
