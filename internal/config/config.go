// internal/config/config.go
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	LogLevel         string         `mapstructure:"LOG_LEVEL"`
	GithubUser       string         `mapstructure:"GITHUB_USER"`
	GithubAPIURL     string         `mapstructure:"GITHUB_API_URL"`
	RequestTimeout   time.Duration  `mapstructure:"REQUEST_TIMEOUT"`
	HTTPAddr         string         `mapstructure:"HTTP_ADDR"`
	DisplayLocale    string         `mapstructure:"DISPLAY_LOCALE"`
	DisplayTimezone  string         `mapstructure:"DISPLAY_TIMEZONE"`
	RetryMinInterval time.Duration  `mapstructure:"RETRY_MIN_INTERVAL"`
	Location         *time.Location `mapstructure:"-"`
}

// LoadConfig reads configuration from file and/or environment variables.
func LoadConfig() (*Config, error) {
	return load(viper.New(), ".")
}

func load(v *viper.Viper, dir string) (*Config, error) {
	// Set default values
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("GITHUB_USER", "")
	v.SetDefault("GITHUB_API_URL", "https://api.github.com/")
	v.SetDefault("REQUEST_TIMEOUT", "10s")
	v.SetDefault("HTTP_ADDR", ":8080")
	v.SetDefault("DISPLAY_LOCALE", "pt-BR")
	v.SetDefault("DISPLAY_TIMEZONE", "UTC")
	v.SetDefault("RETRY_MIN_INTERVAL", "1s")

	// Load from .env file if it exists
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(dir)
	_ = v.ReadInConfig() // Ignore error if file not found

	// Bind environment variables
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(cfg.DisplayTimezone)
	if err != nil {
		return nil, errors.New("DISPLAY_TIMEZONE must be an IANA time zone name (e.g. America/Sao_Paulo)")
	}
	cfg.Location = loc

	// Validate required fields
	if cfg.GithubUser == "" {
		return nil, errors.New("GITHUB_USER is a required configuration field")
	}
	if cfg.GithubAPIURL == "" {
		return nil, errors.New("GITHUB_API_URL must not be empty")
	}
	if !strings.HasSuffix(cfg.GithubAPIURL, "/") {
		cfg.GithubAPIURL += "/"
	}
	if cfg.RequestTimeout <= 0 {
		return nil, errors.New("REQUEST_TIMEOUT must be a positive duration")
	}
	if cfg.RetryMinInterval < 0 {
		return nil, errors.New("RETRY_MIN_INTERVAL must not be negative")
	}

	return &cfg, nil
}
