package config

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// Loader handles loading and parsing of pal.yaml configuration files.
type Loader struct {
	logger *zap.Logger
}

// NewLoader creates a new configuration loader.
// The logger is optional (can be nil).
func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		logger: logger,
	}
}

// LoadFromFile loads configuration from a pal.yaml file.
// If the file doesn't exist, returns default configuration with no error.
func (l *Loader) LoadFromFile(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			l.logger.Debug("no config file found, using defaults", zap.String("path", path))
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return l.LoadFromBytes(content)
}

// LoadFromBytes loads configuration from raw YAML.
func (l *Loader) LoadFromBytes(content []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(content, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	for i, tool := range cfg.Tools {
		if tool.Tool == "" {
			return nil, fmt.Errorf("tools[%d]: missing tool name", i)
		}
		for j, alias := range tool.Aliases {
			if alias.Name == "" {
				return nil, fmt.Errorf("tools[%d].aliases[%d]: missing alias name", i, j)
			}
		}
	}

	return cfg, nil
}
