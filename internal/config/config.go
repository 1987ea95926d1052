package config

import (
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"github.com/mordilloSan/nanolog/logger"
)

const (
	// EnvPrefix is prepended to setting names to form environment variables,
	// e.g. NANOLOG_LEVEL and NANOLOG_FILE.
	EnvPrefix = "NANOLOG"
	// DefaultLevel is the threshold used when no source sets one.
	DefaultLevel = "info"
)

// Config holds the resolved settings.
type Config struct {
	// Level is the threshold name, any case.
	Level string `mapstructure:"level" validate:"required,loglevel"`
	// File is the log file path; empty means standard output.
	File string `mapstructure:"file"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Registration only fails for an empty tag or a nil func.
	_ = v.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		_, err := logger.ParseLevel(fl.Field().String())
		return err == nil
	})
	return v
}

// Validate checks the settings.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// LoggerConfig converts the settings into a logger.Config writing console
// output to console.
func (c *Config) LoggerConfig(console io.Writer) (logger.Config, error) {
	level, err := logger.ParseLevel(c.Level)
	if err != nil {
		return logger.Config{}, err
	}
	return logger.Config{
		Level:    level,
		FilePath: c.File,
		Console:  console,
	}, nil
}
