package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/networkteam/uikit/query"
)

// Config is the file configuration of the demo server.
type Config struct {
	Listen     string `yaml:"listen" validate:"required,hostname_port"`
	PathPrefix string `yaml:"pathPrefix" validate:"omitempty,startswith=/,endsnotwith=/"`

	Products ProductsConfig `yaml:"products"`
	Sessions SessionsConfig `yaml:"sessions"`
	Log      LogConfig      `yaml:"log"`
}

type ProductsConfig struct {
	BaseURL           string        `yaml:"baseURL" validate:"required,http_url"`
	KeepUnusedDataFor time.Duration `yaml:"keepUnusedDataFor" validate:"gte=0"`
	Timeout           time.Duration `yaml:"timeout" validate:"gte=0"`
}

type SessionsConfig struct {
	IdleTimeout time.Duration `yaml:"idleTimeout" validate:"gte=0"`
	Max         int           `yaml:"max" validate:"gte=0"`
}

type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	// File receives JSON logs in addition to the text logs on stderr.
	File string `yaml:"file"`
}

// DefaultConfig returns the configuration used without a config file.
func DefaultConfig() *Config {
	return &Config{
		Listen: "localhost:8080",
		Products: ProductsConfig{
			BaseURL:           query.DefaultBaseURL,
			KeepUnusedDataFor: query.DefaultKeepUnusedDataFor,
		},
		Log: LogConfig{Level: "info"},
	}
}

var configValidator = validator.New(validator.WithRequiredStructEnabled())

// LoadConfig reads a YAML config file over the defaults and validates it.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the config and reports every invalid field.
func (c *Config) Validate() error {
	err := configValidator.Struct(c)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}
	msgs := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		msgs = append(msgs, fmt.Sprintf("%s: failed %q", strings.TrimPrefix(fe.Namespace(), "Config."), fe.Tag()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}
