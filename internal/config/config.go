// Package config loads the optional refdoc configuration file.
//
// Every setting has a default, so running without a file behaves like an
// empty one. Values are expanded against the environment before parsing,
// and REFDOC_LOG_LEVEL / REFDOC_LOG_FORMAT override the logging section.
package config

import (
	"bytes"
	stderrors "errors"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/refdoc/internal/foundation/errors"
)

// Config represents the application configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Javadoc FilterConfig  `yaml:"javadoc"`
	TypeDoc FilterConfig  `yaml:"typedoc"`
	Output  OutputConfig  `yaml:"output"`
}

// LoggingConfig selects the slog level and handler.
type LoggingConfig struct {
	Level  LogLevel  `yaml:"level"`
	Format LogFormat `yaml:"format"`
}

// OutputConfig controls written documents.
type OutputConfig struct {
	// Extension replaces the per-format file extension when set.
	Extension string `yaml:"extension,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: LogLevelInfo, Format: LogFormatText},
	}
}

// Load reads the configuration at path. An empty path yields the defaults
// with environment overrides applied.
func Load(path string) (*Config, error) {
	loadEnvFile()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errors.ConfigError("configuration file not found").
					WithContext("path", path).
					Build()
			}
			return nil, errors.WrapError(err, errors.CategoryConfig, "failed to read config file").
				WithContext("path", path).
				Build()
		}
		if err := decode(data, cfg); err != nil {
			return nil, errors.WrapError(err, errors.CategoryConfig, "failed to parse config file").
				WithContext("path", path).
				Build()
		}
	}

	applyEnvOverrides(cfg)
	if err := cfg.Normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode expands environment references in data and decodes it into cfg.
// Unknown keys are rejected; an empty document leaves cfg unchanged.
func decode(data []byte, cfg *Config) error {
	expanded := os.ExpandEnv(string(data))
	dec := yaml.NewDecoder(bytes.NewReader([]byte(expanded)))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Normalize canonicalizes enum values and checks the remaining settings.
func (c *Config) Normalize() error {
	level, err := logLevelNormalizer.NormalizeWithValidation(string(c.Logging.Level))
	if err != nil {
		return errors.WrapError(err, errors.CategoryConfig, "invalid logging level").
			WithContext("valid", strings.Join(logLevelNormalizer.ValidValues(), ",")).
			Build()
	}
	c.Logging.Level = level

	format, err := logFormatNormalizer.NormalizeWithValidation(string(c.Logging.Format))
	if err != nil {
		return errors.WrapError(err, errors.CategoryConfig, "invalid logging format").
			WithContext("valid", strings.Join(logFormatNormalizer.ValidValues(), ",")).
			Build()
	}
	c.Logging.Format = format

	c.Output.Extension = strings.TrimPrefix(strings.TrimSpace(c.Output.Extension), ".")
	if strings.ContainsAny(c.Output.Extension, `/\`) {
		return errors.ConfigError("output extension must not contain path separators").
			WithContext("extension", c.Output.Extension).
			Build()
	}
	return nil
}
