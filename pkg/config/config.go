// Package config loads settings for the semgraph command.
package config

import (
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// DataFile is the bolt file holding the graph.
	DataFile string `yaml:"data_file"`
	// MetricsAddr is where `semgraph serve` listens, host:port.
	MetricsAddr string `yaml:"metrics_addr"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// HistoryFile keeps shell history between sessions.
	HistoryFile string `yaml:"history_file"`
}

func Default() *Config {
	return &Config{
		DataFile:    "semgraph.data",
		MetricsAddr: "0.0.0.0:9000",
		LogLevel:    "info",
		HistoryFile: "/tmp/.semgraph-history",
	}
}

func (c *Config) Validate() error {
	if c.DataFile == "" {
		return fmt.Errorf("data_file is required")
	}
	if c.MetricsAddr == "" {
		return fmt.Errorf("metrics_addr is required")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (zapcore.Level, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return level, fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return level, nil
}

// LoadFromFile reads a YAML config; fields it leaves out keep their
// defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}
