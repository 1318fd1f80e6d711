package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultValueType is the value type used when nothing is configured.
const DefaultValueType = "u64"

// Version is the version of the tool, overridden at build time.
var Version = "0.1.0-dev"

// Config is the top level configuration structure.
type Config struct {
	ApplicationConfiguration ApplicationConfiguration `yaml:"ApplicationConfiguration"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		ApplicationConfiguration: ApplicationConfiguration{
			LogLevel:  "info",
			ValueType: DefaultValueType,
		},
	}
}

// LoadFile loads config from the provided path. Missing settings keep their
// default values, unknown settings are an error.
func LoadFile(configPath string) (Config, error) {
	configData, err := os.ReadFile(configPath)
	if err != nil {
		return Config{}, fmt.Errorf("unable to read config: %w", err)
	}
	return Unmarshal(configData)
}

// Unmarshal decodes YAML configuration data over the defaults.
func Unmarshal(configData []byte) (Config, error) {
	config := Default()
	decoder := yaml.NewDecoder(bytes.NewReader(configData))
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to unmarshal config YAML: %w", err)
	}
	if err := config.ApplicationConfiguration.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}
