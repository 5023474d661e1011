package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the amdb-info configuration.
type Config struct {
	Log   LogConfig   `mapstructure:"log"`
	Parse ParseConfig `mapstructure:"parse"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ParseConfig mirrors amdb.ParseOptions.
type ParseConfig struct {
	Workers              int  `mapstructure:"workers"`
	ValidateGeometry     bool `mapstructure:"validate_geometry"`
	SkipInvalidFeatures  bool `mapstructure:"skip_invalid_features"`
	StrictReferencePoint bool `mapstructure:"strict_reference_point"`
}

// Load reads configuration from defaults, an optional amdb.yaml and
// environment variables.
func Load() (*Config, error) {
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	// Defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("parse.workers", 0)
	v.SetDefault("parse.validate_geometry", true)
	v.SetDefault("parse.skip_invalid_features", false)
	v.SetDefault("parse.strict_reference_point", false)

	// Config file (optional)
	v.SetConfigName("amdb")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	// Environment variables: AMDB_PARSE_WORKERS → parse.workers
	v.SetEnvPrefix("AMDB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that configuration values are sane.
func (c *Config) Validate() error {
	var errs []string

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level must be debug, info, warn or error, got %q", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Sprintf("log.format must be json or text, got %q", c.Log.Format))
	}
	if c.Parse.Workers < 0 {
		errs = append(errs, fmt.Sprintf("parse.workers must not be negative, got %d", c.Parse.Workers))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}
