package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/palshell/pal/internal/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
logLevel: debug
checkUpdates: false
tools:
  - tool: just
    installHint: https://just.systems
    aliases:
      - name: j
        description: just
      - name: jl
        args: ["--list"]
        description: just --list
  - tool: git
    aliases:
      - name: gsw
        args: ["switch"]
`

func TestLoadFromBytes(t *testing.T) {
	cfg, err := NewLoader(nil).LoadFromBytes([]byte(sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.ShouldCheckUpdates())
	require.Len(t, cfg.Tools, 2)
	assert.Equal(t, "just", cfg.Tools[0].Tool)
	assert.Equal(t, []string{"--list"}, cfg.Tools[0].Aliases[1].Args)
}

func TestLoadFromFileMissingReturnsDefaults(t *testing.T) {
	cfg, err := NewLoader(nil).LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.ShouldCheckUpdates())
	assert.Empty(t, cfg.Tools)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pal.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleConfig), 0644))

	cfg, err := NewLoader(nil).LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadFromBytesInvalidYAML(t *testing.T) {
	_, err := NewLoader(nil).LoadFromBytes([]byte("tools: [unclosed"))
	assert.Error(t, err)
}

func TestLoadFromBytesMissingToolName(t *testing.T) {
	_, err := NewLoader(nil).LoadFromBytes([]byte("tools:\n  - installHint: x\n"))
	assert.ErrorContains(t, err, "missing tool name")
}

func TestLoadFromBytesMissingAliasName(t *testing.T) {
	_, err := NewLoader(nil).LoadFromBytes([]byte("tools:\n  - tool: x\n    aliases:\n      - args: [\"y\"]\n"))
	assert.ErrorContains(t, err, "missing alias name")
}

func TestApplyMergesOverBuiltins(t *testing.T) {
	cfg, err := NewLoader(nil).LoadFromBytes([]byte(sampleConfig))
	require.NoError(t, err)

	reg := registry.Default()
	cfg.Apply(reg)

	inv, ok := reg.Resolve("jl")
	require.True(t, ok)
	assert.Equal(t, "just", inv.Tool)

	inv, ok = reg.Resolve("gsw")
	require.True(t, ok)
	assert.Equal(t, "git", inv.Tool)
	// Builtin hint survives a config group without one.
	assert.Equal(t, "https://git-scm.com/downloads", inv.InstallHint)
}
