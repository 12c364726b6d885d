/*
File: config.go
Description: Layered configuration for the adfa command. Defaults are
overridden by an optional config file, then ADFA_ environment variables,
then explicitly set command-line flags.
*/

// Package config loads and validates adfa settings with viper.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/multierr"

	"github.com/LadyLoBentley/AdaptableDFA/dfa"
	"github.com/LadyLoBentley/AdaptableDFA/generator"
	"github.com/LadyLoBentley/AdaptableDFA/logging"
)

// EnvPrefix prefixes every environment override, e.g. ADFA_LOG_LEVEL.
const EnvPrefix = "ADFA"

// ErrInvalidConfig is returned by Validate and Load for inconsistent settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the full adfa configuration.
type Config struct {
	Seeds     []string        `mapstructure:"seeds"`
	Probes    []string        `mapstructure:"probes"`
	Additions int             `mapstructure:"additions"`
	Generator GeneratorConfig `mapstructure:"generator"`
	Log       LogConfig       `mapstructure:"log"`
	Strict    bool            `mapstructure:"strict"`
}

// GeneratorConfig drives novel-string generation.
type GeneratorConfig struct {
	Seed        int64 `mapstructure:"seed"` // 0 seeds from the clock
	MinLength   int   `mapstructure:"min_length"`
	MaxLength   int   `mapstructure:"max_length"`
	MaxAttempts int   `mapstructure:"max_attempts"`
}

// LogConfig selects logger level and format.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// flagKeys maps command-line flag names onto configuration keys.
var flagKeys = map[string]string{
	"seeds":        "seeds",
	"probes":       "probes",
	"additions":    "additions",
	"seed":         "generator.seed",
	"min-length":   "generator.min_length",
	"max-length":   "generator.max_length",
	"max-attempts": "generator.max_attempts",
	"log-level":    "log.level",
	"log-format":   "log.format",
	"strict":       "strict",
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Seeds:     []string{"abc", "acb", "bcb", "abcaa"},
		Probes:    []string{"bbcba", "c", "cba", "baaabaaab", "", "ab", "abcc"},
		Additions: 2,
		Generator: GeneratorConfig{
			MinLength:   generator.DefaultMinLength,
			MaxLength:   generator.DefaultMaxLength,
			MaxAttempts: dfa.DefaultMaxAttempts,
		},
		Log: LogConfig{
			Level:  logrus.InfoLevel.String(),
			Format: string(logging.FormatText),
		},
	}
}

// Load resolves the configuration. path may be empty; flags may be nil.
// Only flags present in flags and listed in flagKeys are bound.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("failed to bind flag --%s: %w", name, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("seeds", d.Seeds)
	v.SetDefault("probes", d.Probes)
	v.SetDefault("additions", d.Additions)
	v.SetDefault("generator.seed", d.Generator.Seed)
	v.SetDefault("generator.min_length", d.Generator.MinLength)
	v.SetDefault("generator.max_length", d.Generator.MaxLength)
	v.SetDefault("generator.max_attempts", d.Generator.MaxAttempts)
	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("strict", d.Strict)
}

// Validate reports every inconsistent setting, each wrapped in ErrInvalidConfig.
func (c *Config) Validate() error {
	var errs error
	invalid := func(format string, args ...any) {
		errs = multierr.Append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.Additions < 0 {
		invalid("additions must be >= 0, got %d", c.Additions)
	}
	if c.Generator.MinLength < 0 {
		invalid("generator.min_length must be >= 0, got %d", c.Generator.MinLength)
	}
	if c.Generator.MaxLength < c.Generator.MinLength {
		invalid("generator.max_length %d below min_length %d", c.Generator.MaxLength, c.Generator.MinLength)
	}
	if c.Generator.MaxAttempts < 1 {
		invalid("generator.max_attempts must be >= 1, got %d", c.Generator.MaxAttempts)
	}
	if err := c.LoggingConfig().Validate(); err != nil {
		invalid("%w", err)
	}

	return errs
}

// LoggingConfig converts the log section for logging.New.
func (c *Config) LoggingConfig() logging.Config {
	return logging.Config{Level: c.Log.Level, Format: logging.Format(c.Log.Format)}
}

// GeneratorOptions converts the generator section. Call after Validate.
func (c *Config) GeneratorOptions() []generator.Option {
	opts := []generator.Option{generator.WithLengthRange(c.Generator.MinLength, c.Generator.MaxLength)}
	if c.Generator.Seed != 0 {
		opts = append(opts, generator.WithSeed(c.Generator.Seed))
	}
	return opts
}

// AutomatonOptions converts the automaton settings, routing events to log.
// Call after Validate.
func (c *Config) AutomatonOptions(log logrus.FieldLogger) []dfa.Option {
	opts := []dfa.Option{dfa.WithMaxAttempts(c.Generator.MaxAttempts)}
	if log != nil {
		opts = append(opts, dfa.WithLogger(log))
	}
	if c.Strict {
		opts = append(opts, dfa.WithStrictInvariants())
	}
	return opts
}
