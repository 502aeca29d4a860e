package appconf

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"dashboard.must.dev/internal/utils"
)

// EnvPrefix is the prefix of environment variables read by Load, e.g. DASHBOARD_PORT.
const EnvPrefix = "DASHBOARD_"

const (
	DefaultPort      = 4000
	DefaultEnv       = "development"
	DefaultRateLimit = 100
	DefaultLogLevel  = "info"
)

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"port":       DefaultPort,
		"env":        DefaultEnv,
		"api_keys":   []string{"test"},
		"rate_limit": DefaultRateLimit,
		"log_level":  DefaultLogLevel,
		"mcp_addr":   "",
	}
}

// Load builds the configuration.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
// cfgFile may be empty; flags may be nil.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load defaults: %w", err)
	}

	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return Config{}, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	// DASHBOARD_API_KEYS -> api_keys
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return Config{}, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			// Only explicitly set flags override lower layers
			if !f.Changed {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return Config{}, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unable to decode config: %w", err)
	}

	cfg.ApiKeys = utils.ParseAPIKeys(cfg.ApiKeys)
	cfg.Env = EnvFlagToEnvironment(cfg.EnvName)

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
