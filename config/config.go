// Package config holds the configuration of the utf8 command line tool.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/CNife/simple-utf8/errors"
)

// Byte output formats.
const (
	ByteFormatHex = "hex"
	ByteFormatDec = "dec"
	ByteFormatBin = "bin"
)

// Scalar output formats.
const (
	ScalarFormatCodePoint = "codepoint"
	ScalarFormatText      = "text"
)

var (
	byteFormats   = []string{ByteFormatHex, ByteFormatDec, ByteFormatBin}
	scalarFormats = []string{ScalarFormatCodePoint, ScalarFormatText}
)

// Config represents the utf8 tool configuration
type Config struct {
	FixturesDir string  `yaml:"fixtures_dir"`
	Output      Output  `yaml:"output"`
	Logging     Logging `yaml:"logging"`
}

// Output controls how bytes and scalars are printed
type Output struct {
	ByteFormat   string `yaml:"byte_format"`
	ScalarFormat string `yaml:"scalar_format"`
	Color        bool   `yaml:"color"`
}

// Logging contains logging configuration
type Logging struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		FixturesDir: "./testdata/text",
		Output: Output{
			ByteFormat:   ByteFormatHex,
			ScalarFormat: ScalarFormatCodePoint,
			Color:        true,
		},
		Logging: Logging{
			Level: "warn",
		},
	}
}

// Validate checks that every enumerated field holds a known value
func (c *Config) Validate() error {
	if !slices.Contains(byteFormats, c.Output.ByteFormat) {
		return errors.InvalidInput(errors.PhaseConfig,
			fmt.Sprintf("byte_format %q is not one of %v", c.Output.ByteFormat, byteFormats))
	}
	if !slices.Contains(scalarFormats, c.Output.ScalarFormat) {
		return errors.InvalidInput(errors.PhaseConfig,
			fmt.Sprintf("scalar_format %q is not one of %v", c.Output.ScalarFormat, scalarFormats))
	}
	if _, err := zapcore.ParseLevel(c.Logging.Level); err != nil {
		return errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "logging.level")
	}
	return nil
}

// LoadConfig loads configuration from the specified path. Fields missing
// from the file keep their default values.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveConfig saves the configuration to the specified path
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfigPath returns the default configuration path for the current platform
func DefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./utf8.yaml"
	}

	return filepath.Join(homeDir, ".config", "utf8", "config.yaml")
}

// ConfigExists checks if a configuration file exists
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}

// NewLogger builds a zap logger for the logging section
func NewLogger(l Logging) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(l.Level)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "logging.level")
	}

	zc := zap.NewProductionConfig()
	if l.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	zc.ErrorOutputPaths = []string{"stderr"}

	return zc.Build()
}
