// Package config loads the hawkproxy configuration from the environment and
// its credential table from YAML.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/sirupsen/logrus"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "HAWKPROXY_"

// ErrInvalidMaxBodyBytes is returned when MaxBodyBytes is not positive.
var ErrInvalidMaxBodyBytes = errors.New("config: max body bytes must be greater than zero")

// Config is the hawkproxy configuration.
type Config struct {
	Port int `env:"PORT" envDefault:"3000"`

	// Upstream is the URL requests are proxied to once authenticated.
	Upstream string `env:"UPSTREAM,required"`

	// MountPrefix is stripped from the path before proxying. Signatures
	// are still checked against the path the client requested.
	MountPrefix string `env:"MOUNT_PREFIX"`

	// Bewit switches from Authorization header checks to bewit tokens.
	Bewit bool `env:"BEWIT"`

	// CredentialsFile is the YAML credential table.
	CredentialsFile string `env:"CREDENTIALS_FILE,required"`

	// MaxBodyBytes bounds the POST/PUT body buffered for payload checks.
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES" envDefault:"1048576"`

	// UserHeader carries the authenticated user id to the upstream.
	UserHeader string `env:"USER_HEADER" envDefault:"X-Hawk-User"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load reads the configuration from the process environment.
func Load() (*Config, error) {
	return parse(env.Options{Prefix: EnvPrefix})
}

// LoadFrom reads the configuration from environ instead of the process
// environment. Keys must carry EnvPrefix.
func LoadFrom(environ map[string]string) (*Config, error) {
	return parse(env.Options{Prefix: EnvPrefix, Environment: environ})
}

func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg, opts); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if cfg.MaxBodyBytes <= 0 {
		return nil, ErrInvalidMaxBodyBytes
	}

	if _, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// Level returns the configured log level. Load has already validated it.
func (c *Config) Level() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}

	return level
}
