package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/mzaccari/circumference/pkg/log"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultDictionaryPath is where FreeRADIUS installs its dictionaries
	DefaultDictionaryPath = "/usr/share/freeradius"

	DefaultLogLevel = "info"

	// EnvDictionaryPath overrides the configured dictionary path when set
	EnvDictionaryPath = "CIRCUMFERENCE_DICTIONARY_PATH"
)

// Config selects which dictionary directory to load and how to log
type Config struct {
	DictionaryPath string `yaml:"dictionary_path"`
	LogLevel       string `yaml:"log_level"`
}

// DefaultConfig returns the built-in configuration
func DefaultConfig() *Config {
	return &Config{
		DictionaryPath: DefaultDictionaryPath,
		LogLevel:       DefaultLogLevel,
	}
}

// Load reads a YAML configuration file from fs. Missing fields take their
// default values and the environment override is applied last.
func Load(fs afero.Fs, file string) (*Config, error) {
	data, err := afero.ReadFile(fs, file)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file: %w", err)
	}

	config.applyDefaults()
	config.applyEnv()

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// FromEnv returns the default configuration with the environment override applied
func FromEnv() *Config {
	config := DefaultConfig()
	config.applyEnv()
	return config
}

// Validate checks the configuration for invalid values
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DictionaryPath) == "" {
		return fmt.Errorf("dictionary_path must not be empty")
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}

	return nil
}

// Logger builds a logger at the configured level
func (c *Config) Logger() log.Logger {
	return log.NewLoggerWithLevel(c.LogLevel)
}

func (c *Config) applyDefaults() {
	if c.DictionaryPath == "" {
		c.DictionaryPath = DefaultDictionaryPath
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

func (c *Config) applyEnv() {
	if path := os.Getenv(EnvDictionaryPath); path != "" {
		c.DictionaryPath = path
	}
}
