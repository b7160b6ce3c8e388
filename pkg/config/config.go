package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v6"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultConfigPath = "/etc/teller"
	ConfigFileName    = "teller.yml"

	// DefaultLedgerPath matches the ledger file name the teller has always
	// used, resolved against the working directory.
	DefaultLedgerPath = "accounts.dat"
)

// Config holds all teller configuration settings
type Config struct {
	// LedgerPath is the path of the flat-file account ledger
	LedgerPath string `yaml:"ledger_path" env:"TELLER_LEDGER_PATH"`

	// LogLevel is the logrus level name (debug, info, warn, error)
	LogLevel string `yaml:"log_level" env:"TELLER_LOG_LEVEL"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// envVars maps attribute names to the environment variables that override them
var envVars = map[string]string{
	"ledger_path": "TELLER_LEDGER_PATH",
	"log_level":   "TELLER_LOG_LEVEL",
}

func newDefault() *Config {
	return &Config{
		LedgerPath: DefaultLedgerPath,
		LogLevel:   "info",
		sources:    make(map[string]string),
	}
}

// Load loads configuration from file and environment variables.
// Environment variables take precedence over file values.
func Load() (*Config, error) {
	config := newDefault()
	for name := range envVars {
		config.sources[name] = "default"
	}

	configPath := os.Getenv("TELLER_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	config.configFilePath = filepath.Join(configPath, ConfigFileName)

	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var fileConfig Config
		if err := yaml.Unmarshal(data, &fileConfig); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&fileConfig)
	}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	for name, envVar := range envVars {
		if os.Getenv(envVar) != "" {
			config.sources[name] = "environment"
		}
	}

	return config, nil
}

func (c *Config) applyFileConfig(file *Config) {
	if file.LedgerPath != "" {
		c.LedgerPath = file.LedgerPath
		c.sources["ledger_path"] = "file"
	}
	if file.LogLevel != "" {
		c.LogLevel = file.LogLevel
		c.sources["log_level"] = "file"
	}
}

// ConfigFilePath returns the path to the config file
func (c *Config) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *Config) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// Level returns the configured logrus level
func (c *Config) Level() (log.Level, error) {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return 0, fmt.Errorf("invalid log_level value: %s", c.LogLevel)
	}
	return level, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.LedgerPath == "" {
		return fmt.Errorf("ledger_path must not be empty")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Attributes returns all configuration attributes with their values and sources
func (c *Config) Attributes() []Attribute {
	return []Attribute{
		{Name: "ledger_path", Value: c.LedgerPath, Source: c.Source("ledger_path")},
		{Name: "log_level", Value: c.LogLevel, Source: c.Source("log_level")},
	}
}

// FormatText returns a text representation of the configuration
func (c *Config) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-20s %-30s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-20s %-30s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-20s %-30s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *Config) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
