package config

import (
	"errors"
	"fmt"

	"go.uber.org/zap/zapcore"
)

// ApplicationConfiguration holds settings of the command line tool.
type ApplicationConfiguration struct {
	// LogLevel is one of zap levels (debug, info, warn, error...).
	LogLevel string `yaml:"LogLevel"`
	// LogPath is a file to write logs to, stderr is used when empty.
	LogPath string `yaml:"LogPath"`
	// ValueType is the name of the packed value type used by default.
	ValueType string `yaml:"ValueType"`
}

// Validate checks ApplicationConfiguration for internal consistency.
func (a *ApplicationConfiguration) Validate() error {
	if len(a.LogLevel) > 0 {
		if _, err := zapcore.ParseLevel(a.LogLevel); err != nil {
			return fmt.Errorf("invalid LogLevel: %w", err)
		}
	}
	if len(a.ValueType) == 0 {
		return errors.New("empty ValueType")
	}
	return nil
}
