package wrapper

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/palshell/pal/internal/core"
	"github.com/palshell/pal/internal/probe"
	"github.com/palshell/pal/internal/registry"
	"github.com/palshell/pal/internal/shellexec"
	"github.com/palshell/pal/internal/usage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry() *registry.Registry {
	r := registry.New()
	r.Register(registry.Group{
		Tool:        "true",
		InstallHint: "https://www.gnu.org/software/coreutils/",
		Aliases:     []registry.Alias{{Name: "ok"}},
	})
	r.Register(registry.Group{
		Tool:    "false",
		Aliases: []registry.Alias{{Name: "nope"}},
	})
	r.Register(registry.Group{
		Tool:        "imaginary-tool",
		InstallHint: "https://example.com/imaginary",
		Aliases:     []registry.Alias{{Name: "im", Args: []string{"sub"}}},
	})
	return r
}

func newTestForwarder(t *testing.T, lookup probe.LookupFunc) (*Forwarder, *bytes.Buffer) {
	t.Helper()
	runner, err := shellexec.NewRunner()
	require.NoError(t, err)

	forwarder := NewForwarder(testRegistry(), probe.NewProberWithLookup(lookup), runner, nil, nil)
	stderr := &bytes.Buffer{}
	forwarder.Stderr = stderr
	return forwarder, stderr
}

func realLookup(name string) (string, error) {
	if name == "imaginary-tool" {
		return "", errors.New("not found")
	}
	return "/bin/" + name, nil
}

func TestRunPassesThroughExitCode(t *testing.T) {
	forwarder, stderr := newTestForwarder(t, realLookup)

	code, err := forwarder.Run(context.Background(), "ok", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	code, err = forwarder.Run(context.Background(), "nope", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, code)

	assert.Empty(t, stderr.String())
}

func TestRunMissingToolWarnsAndReturns(t *testing.T) {
	forwarder, stderr := newTestForwarder(t, realLookup)

	code, err := forwarder.Run(context.Background(), "im", []string{"arg"})
	require.NoError(t, err)
	assert.Equal(t, 0, code)

	out := stderr.String()
	assert.Contains(t, out, "imaginary-tool")
	assert.Contains(t, out, "not installed")
	assert.Contains(t, out, "https://example.com/imaginary")
}

func TestRunUnknownAliasSuggests(t *testing.T) {
	forwarder, stderr := newTestForwarder(t, realLookup)

	code, err := forwarder.Run(context.Background(), "o", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, code)

	out := stderr.String()
	assert.Contains(t, out, "unknown alias")
	assert.Contains(t, out, "did you mean")
	assert.Contains(t, out, "ok")
}

func TestRunRecordsInvocation(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	core.ResetPaths()
	t.Cleanup(core.ResetPaths)

	usageManager, err := usage.NewUsageManager(core.UsageFile())
	require.NoError(t, err)

	runner, err := shellexec.NewRunner()
	require.NoError(t, err)

	forwarder := NewForwarder(testRegistry(), probe.NewProberWithLookup(realLookup), runner, usageManager, nil)
	forwarder.Stderr = &bytes.Buffer{}

	code, err := forwarder.Run(context.Background(), "nope", nil)
	require.NoError(t, err)
	assert.Equal(t, 1, code)

	entries, err := usageManager.RecentEntries("", 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	assert.Equal(t, "nope", entries[0].Alias)
	assert.Equal(t, "false", entries[0].Tool)
	assert.Equal(t, "false", entries[0].Command)
	require.True(t, entries[0].ExitCode.Valid)
	assert.EqualValues(t, 1, entries[0].ExitCode.Int32)
}

func TestRunProbesToolOnlyOnce(t *testing.T) {
	calls := 0
	forwarder, _ := newTestForwarder(t, func(name string) (string, error) {
		calls++
		return "", errors.New("not found")
	})

	for i := 0; i < 3; i++ {
		code, err := forwarder.Run(context.Background(), "im", nil)
		require.NoError(t, err)
		assert.Equal(t, 0, code)
	}
	assert.Equal(t, 1, calls)
}
