// Package config provides configuration management for pal. It handles
// loading and parsing of the ~/.pal/pal.yaml file and merging user-defined
// alias groups on top of the builtin table.
package config

import (
	"github.com/palshell/pal/internal/registry"
)

// Config holds the user-facing settings read from pal.yaml.
type Config struct {
	// LogLevel controls logging verbosity ("debug", "info", "warn", "error").
	LogLevel string `yaml:"logLevel"`

	// CheckUpdates toggles the background update check on startup.
	CheckUpdates *bool `yaml:"checkUpdates"`

	// Tools defines extra alias groups, merged over the builtin table.
	// An alias name that already exists is rebound to the new tool.
	Tools []ToolConfig `yaml:"tools"`
}

// ToolConfig is one tool's group in the config file.
type ToolConfig struct {
	Tool        string        `yaml:"tool"`
	InstallHint string        `yaml:"installHint"`
	Aliases     []AliasConfig `yaml:"aliases"`
}

// AliasConfig is one alias entry under a tool.
type AliasConfig struct {
	Name        string   `yaml:"name"`
	Args        []string `yaml:"args"`
	Description string   `yaml:"description"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "info",
	}
}

// ShouldCheckUpdates reports whether the startup update check is enabled.
// It defaults to on when the config file doesn't say otherwise.
func (c *Config) ShouldCheckUpdates() bool {
	if c.CheckUpdates == nil {
		return true
	}
	return *c.CheckUpdates
}

// Apply merges the configured alias groups into the registry.
func (c *Config) Apply(reg *registry.Registry) {
	for _, tool := range c.Tools {
		group := registry.Group{
			Tool:        tool.Tool,
			InstallHint: tool.InstallHint,
		}
		for _, alias := range tool.Aliases {
			group.Aliases = append(group.Aliases, registry.Alias{
				Name:        alias.Name,
				Args:        alias.Args,
				Description: alias.Description,
			})
		}
		reg.Register(group)
	}
}
