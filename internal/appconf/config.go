// Package appconf holds the runtime configuration of the backend and the
// layered loader that fills it from defaults, a YAML file, environment
// variables and command-line flags.
package appconf

import (
	"errors"
	"fmt"
	"strings"

	"dashboard.must.dev/internal/logging"
)

type Environment int

const (
	Development Environment = iota
	Test
	Production
)

func (e Environment) String() string {
	switch e {
	case Test:
		return "test"
	case Production:
		return "production"
	default:
		return "development"
	}
}

// EnvFlagToEnvironment maps the env flag value to an Environment. Unknown values map to Development.
func EnvFlagToEnvironment(env string) Environment {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "test":
		return Test
	case "production", "prod":
		return Production
	default:
		return Development
	}
}

func validEnvFlag(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "development", "dev", "test", "production", "prod":
		return true
	}
	return false
}

// Config holds all the configuration settings for the Application.
type Config struct {
	Port      int         `koanf:"port"`
	EnvName   string      `koanf:"env"`
	Env       Environment `koanf:"-"`
	ApiKeys   []string    `koanf:"api_keys"`
	RateLimit int         `koanf:"rate_limit"`
	LogLevel  string      `koanf:"log_level"`
	MCPAddr   string      `koanf:"mcp_addr"`
}

// Validate checks the loaded configuration and reports every problem at once.
func (c Config) Validate() error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("port %d out of range (1-65535)", c.Port))
	}
	if !validEnvFlag(c.EnvName) {
		errs = append(errs, fmt.Errorf("unknown environment %q (development|test|production)", c.EnvName))
	}
	if len(c.ApiKeys) == 0 {
		errs = append(errs, errors.New("at least one API key is required"))
	}
	if c.RateLimit < 0 {
		errs = append(errs, fmt.Errorf("rate_limit must be non-negative, got %d", c.RateLimit))
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}
