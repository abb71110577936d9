// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env` file, if present),
// loads them into structured Go types (struct), and
// validates that required values are present so they
// can be reused across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for every block, so an empty environment still boots.
package config

import (
	"strings"

	// Side-effect import: triggers godotenv's autoload feature.
	// If a `.env` file exists, it gets loaded into process env
	// before LoadConfig reads env vars.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"

	"github.com/deppfellow/go-cats/internal/validation"
)

// EnvPrefix is the prefix every configuration variable must carry.
const EnvPrefix = "CATS_"

// ServiceName is the name reported to logs, metrics and APM.
const ServiceName = "cats"

/*
	Env vars are read using the CATS_ prefix.
	Keys are normalized (lowercased, prefix removed) and a double underscore
	marks a nesting level, so single underscores can stay inside key names:

	  CATS_SERVER__PORT                    -> server.port
	  CATS_SERVER__READ_TIMEOUT            -> server.read_timeout
	  CATS_OBSERVABILITY__LOGGING__LEVEL   -> observability.logging.level
*/

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf should map values from.
// The `validate:"..."` tags are enforced by go-playground/validator (see package validation).
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Observability *ObservabilityConfig `koanf:"observability" validate:"required"`
}

// Primary holds top-level information about the runtime environment.
// Usually used to tag logs/traces and switch behavior based on env.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Timeouts are whole seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required,min=1"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`

	// RateLimit is the number of requests per second allowed per client IP.
	// Zero, the default, disables rate limiting.
	RateLimit float64 `koanf:"rate_limit" validate:"min=0"`
	RateBurst int     `koanf:"rate_burst" validate:"min=0"`
}

// Default returns the configuration used when no environment variable overrides a value.
func Default() *Config {
	return &Config{
		Primary: Primary{
			Env: "development",
		},
		Server: ServerConfig{
			Port:               "3000",
			ReadTimeout:        10,
			WriteTimeout:       10,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
			RateLimit:          0,
			RateBurst:          0,
		},
		Observability: DefaultObservabilityConfig(),
	}
}

// LoadConfig loads configuration from environment variables on top of Default(),
// validates it, and returns the resulting config.
//
// Behavior summary:
//   - Loads env vars with prefix CATS_
//   - Converts env keys into koanf keys using "." nesting
//   - Unmarshals into a Config pre-filled with defaults
//   - Validates struct tags and the observability block
//   - Forces observability service name + environment
func LoadConfig() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.ReplaceAll(strings.TrimPrefix(s, EnvPrefix), "__", "."))
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, "could not load env variables")
	}

	// Unmarshal only overwrites keys present in the environment,
	// everything else keeps its default.
	mainConfig := Default()
	if err := k.Unmarshal("", mainConfig); err != nil {
		return nil, errors.Wrap(err, "could not unmarshal main config")
	}

	if err := validation.Struct(mainConfig); err != nil {
		return nil, errors.Wrap(err, "config validation failed")
	}

	mainConfig.Observability.ServiceName = ServiceName
	mainConfig.Observability.Environment = mainConfig.Primary.Env

	if err := mainConfig.Observability.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid observability config")
	}

	return mainConfig, nil
}
