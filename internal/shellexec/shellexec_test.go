package shellexec

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureArgv(t *testing.T) {
	runner, err := NewRunner()
	require.NoError(t, err)

	stdout, stderr, code, err := CaptureArgv(context.Background(), runner, []string{"echo", "hello", "world"})
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "hello world\n", stdout)
	assert.Empty(t, stderr)
}

func TestCaptureArgvForwardsArgumentsVerbatim(t *testing.T) {
	runner, err := NewRunner()
	require.NoError(t, err)

	// Glob characters, spaces, and dollar signs must survive unexpanded.
	args := []string{"echo", "*.go", "$HOME", "two words", "it's"}
	stdout, _, code, err := CaptureArgv(context.Background(), runner, args)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	assert.Equal(t, "*.go $HOME two words it's\n", stdout)
}

func TestCaptureArgvNonZeroExit(t *testing.T) {
	runner, err := NewRunner()
	require.NoError(t, err)

	_, _, code, err := CaptureArgv(context.Background(), runner, []string{"false"})
	require.NoError(t, err)
	assert.Equal(t, 1, code)
}

func TestCaptureArgvMissingCommand(t *testing.T) {
	runner, err := NewRunner()
	require.NoError(t, err)

	_, stderr, code, err := CaptureArgv(context.Background(), runner, []string{"definitely-not-a-real-command-xyz"})
	require.NoError(t, err)
	assert.Equal(t, 127, code)
	assert.NotEmpty(t, stderr)
}

func TestRunArgvEmpty(t *testing.T) {
	runner, err := NewRunner()
	require.NoError(t, err)

	code, err := RunArgv(context.Background(), runner, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
}
