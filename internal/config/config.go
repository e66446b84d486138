// Package config loads tool settings from defaults, environment variables
// and CLI flags, in that precedence order (flags win).
package config

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Defaults for unset settings.
const (
	DefaultInput     = "weather.csv"
	DefaultOutDir    = "."
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// envPrefix namespaces the environment variables, e.g. WEATHERVIZ_OUT_DIR.
const envPrefix = "WEATHERVIZ_"

// Config holds all tool settings.
type Config struct {
	Input     string `koanf:"input"`
	OutDir    string `koanf:"out_dir"`
	NoShow    bool   `koanf:"no_show"`
	LogLevel  string `koanf:"log_level"`
	LogFormat string `koanf:"log_format"`
}

// Load builds the configuration. Precedence (highest to lowest):
// flags > environment > defaults. Only flags the user actually set override
// lower layers.
func Load(flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"input":      DefaultInput,
		"out_dir":    DefaultOutDir,
		"no_show":    false,
		"log_level":  DefaultLogLevel,
		"log_format": DefaultLogFormat,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	// WEATHERVIZ_OUT_DIR -> out_dir
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			// Kebab-case flag names map to snake_case config keys.
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Input == "" {
		return fmt.Errorf("input path must not be empty")
	}
	if c.OutDir == "" {
		return fmt.Errorf("output directory must not be empty")
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q", c.LogFormat)
	}
	return nil
}
