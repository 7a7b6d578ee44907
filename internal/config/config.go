package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/katalvlaran/kata/activity"
	"github.com/katalvlaran/kata/internal/logging"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// EngagementConfig configures the engagement commands.
type EngagementConfig struct {
	RollingDays     int      `mapstructure:"rolling_days" yaml:"rolling_days"`
	ConversionTypes []string `mapstructure:"conversion_types" yaml:"conversion_types"`
}

// OutputConfig configures report rendering.
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format"`
}

// LoggingConfig configures application logging.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
}

// DataConfig points at CSV inputs. Empty paths use the embedded sample.
type DataConfig struct {
	Activities string `mapstructure:"activities" yaml:"activities"`
	Signups    string `mapstructure:"signups" yaml:"signups"`
}

// Config represents the application configuration.
type Config struct {
	WindowDays      int              `mapstructure:"window_days" yaml:"window_days"`
	WeekStart       string           `mapstructure:"week_start" yaml:"week_start"`
	ConversionTypes []string         `mapstructure:"conversion_types" yaml:"conversion_types"`
	Engagement      EngagementConfig `mapstructure:"engagement" yaml:"engagement"`
	Output          OutputConfig     `mapstructure:"output" yaml:"output"`
	Logging         LoggingConfig    `mapstructure:"logging" yaml:"logging"`
	Data            DataConfig       `mapstructure:"data" yaml:"data"`
}

// LoadOptions controls where Load looks for settings.
type LoadOptions struct {
	// Path is an explicit config file. Empty searches the default locations.
	Path string

	// Flags, if set, are bound using FlagKeys (flag name → config key).
	Flags    *pflag.FlagSet
	FlagKeys map[string]string
}

// Load builds the configuration from defaults, the config file,
// KATA_* environment variables and bound flags (lowest to highest
// precedence).
//
// Config file locations (first match wins):
//   - $XDG_CONFIG_HOME/kata/config.yaml
//   - $HOME/.config/kata/config.yaml
//
// A missing file is not an error; a malformed one is.
func Load(opts LoadOptions) (*Config, *viper.Viper, error) {
	v := viper.New()

	if opts.Path != "" {
		v.SetConfigFile(opts.Path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(filepath.Join(xdg.ConfigHome, AppName))
		if homeDir, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(homeDir, ".config", AppName))
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	for name, key := range opts.FlagKeys {
		if opts.Flags == nil {
			break
		}
		if f := opts.Flags.Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, nil, fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
		case opts.Path != "" && errors.Is(err, fs.ErrNotExist):
			// `config init` names a file that does not exist yet.
		default:
			return nil, nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	return &cfg, v, nil
}

// setDefaults registers every default on v.
func setDefaults(v *viper.Viper) {
	v.SetDefault("window_days", DefaultWindowDays)
	v.SetDefault("week_start", DefaultWeekStart)
	v.SetDefault("conversion_types", DefaultConversionTypes)
	v.SetDefault("engagement.rolling_days", DefaultRollingDays)
	v.SetDefault("engagement.conversion_types", DefaultEngagementConversionTypes)
	v.SetDefault("output.format", DefaultFormat)
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.format", DefaultLogFormat)
	v.SetDefault("data.activities", "")
	v.SetDefault("data.signups", "")
}

// Default returns the configuration used when nothing overrides it.
func Default() Config {
	return Config{
		WindowDays:      DefaultWindowDays,
		WeekStart:       DefaultWeekStart,
		ConversionTypes: append([]string(nil), DefaultConversionTypes...),
		Engagement: EngagementConfig{
			RollingDays:     DefaultRollingDays,
			ConversionTypes: append([]string(nil), DefaultEngagementConversionTypes...),
		},
		Output:  OutputConfig{Format: DefaultFormat},
		Logging: LoggingConfig{Level: DefaultLogLevel, Format: DefaultLogFormat},
	}
}

// Validate checks values that viper cannot type-check.
func (c *Config) Validate() error {
	if c.WindowDays < 0 {
		return fmt.Errorf("%w: window_days must be >= 0, got %d", ErrInvalid, c.WindowDays)
	}
	if c.Engagement.RollingDays < 1 {
		return fmt.Errorf("%w: engagement.rolling_days must be >= 1, got %d", ErrInvalid, c.Engagement.RollingDays)
	}
	if _, err := c.Weekday(); err != nil {
		return fmt.Errorf("%w: week_start: %v", ErrInvalid, err)
	}
	if _, err := c.CohortTypes(); err != nil {
		return fmt.Errorf("%w: conversion_types: %v", ErrInvalid, err)
	}
	if _, err := c.EngagementTypes(); err != nil {
		return fmt.Errorf("%w: engagement.conversion_types: %v", ErrInvalid, err)
	}
	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("%w: logging.level: %v", ErrInvalid, err)
	}
	if _, err := logging.ParseFormat(c.Logging.Format); err != nil {
		return fmt.Errorf("%w: logging.format: %v", ErrInvalid, err)
	}

	return nil
}

// Weekday returns WeekStart as a time.Weekday.
func (c *Config) Weekday() (time.Weekday, error) {
	return activity.ParseWeekday(c.WeekStart)
}

// CohortTypes returns the parsed cohort conversion types.
func (c *Config) CohortTypes() ([]activity.Type, error) {
	if len(c.ConversionTypes) == 0 {
		return nil, errors.New("empty list")
	}

	return activity.ParseTypes(c.ConversionTypes)
}

// EngagementTypes returns the parsed engagement conversion types.
func (c *Config) EngagementTypes() ([]activity.Type, error) {
	if len(c.Engagement.ConversionTypes) == 0 {
		return nil, errors.New("empty list")
	}

	return activity.ParseTypes(c.Engagement.ConversionTypes)
}

// DefaultPath returns $XDG_CONFIG_HOME/kata/config.yaml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, AppName, "config.yaml")
}

// WriteDefault writes the default configuration as YAML to path, creating
// parent directories. An existing file is left untouched and reported
// via the returned bool.
func WriteDefault(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to check config file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(Default())
	if err != nil {
		return false, fmt.Errorf("failed to encode default config: %w", err)
	}
	header := []byte("# kata configuration\n# Environment overrides use the KATA_ prefix, e.g. KATA_WINDOW_DAYS=14.\n\n")
	if err := os.WriteFile(path, append(header, data...), 0o644); err != nil {
		return false, fmt.Errorf("failed to write default config: %w", err)
	}

	return true, nil
}
