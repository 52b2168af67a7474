package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var defaultEnvLoaded sync.Once

// Option configures how Load parses the environment.
type Option func(*env.Options)

// WithPrefix prepends prefix to every `env` tag name, so a field tagged
// `env:"ALERT_COLOR"` is read from PREFIX_ALERT_COLOR when prefix is "PREFIX_".
func WithPrefix(prefix string) Option {
	return func(o *env.Options) {
		o.Prefix = prefix
	}
}

// WithEnvironment parses from the given map instead of the process
// environment. Intended for tests.
func WithEnvironment(vars map[string]string) Option {
	return func(o *env.Options) {
		o.Environment = vars
	}
}

// Load parses environment variables into the struct pointed to by v using its
// `env` and `envDefault` field tags.
//
// The default .env file in the working directory is loaded once on first use
// if it exists. Variables already present in the environment take precedence
// over values from .env files.
//
// Example:
//
//	type Settings struct {
//		AlertColor string `env:"ALERT_COLOR" envDefault:"#f00"`
//	}
//
//	var s Settings
//	if err := config.Load(&s, config.WithPrefix("FORMVALIDATE_")); err != nil {
//		// Handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	defaultEnvLoaded.Do(func() {
		// A missing .env file is fine.
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	var o env.Options
	for _, opt := range opts {
		opt(&o)
	}

	if err := env.ParseWithOptions(v, o); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("failed to load required configuration: %v", err))
	}
}

// LoadEnv loads one or more .env files into the process environment.
// Existing variables are not overwritten, and for keys defined in several
// files the first file wins.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// MustLoadEnv works like LoadEnv but panics on failure.
func MustLoadEnv(paths ...string) {
	if err := LoadEnv(paths...); err != nil {
		panic(fmt.Sprintf("failed to load env files: %v", err))
	}
}
