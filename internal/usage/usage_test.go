package usage

import (
	"path/filepath"
	"testing"

	"github.com/palshell/pal/internal/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T) *UsageManager {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("HOME", tmp)
	core.ResetPaths()
	t.Cleanup(core.ResetPaths)

	manager, err := NewUsageManager(filepath.Join(tmp, "usage.db"))
	require.NoError(t, err)
	return manager
}

func TestStartAndFinishInvocation(t *testing.T) {
	manager := newTestManager(t)

	entry, err := manager.StartInvocation("gst", "git", "git status", "/tmp/repo")
	require.NoError(t, err)
	assert.NotZero(t, entry.ID)
	assert.False(t, entry.ExitCode.Valid)

	entry, err = manager.FinishInvocation(entry, 0)
	require.NoError(t, err)
	assert.True(t, entry.ExitCode.Valid)
	assert.Equal(t, int32(0), entry.ExitCode.Int32)
}

func TestRecentEntries(t *testing.T) {
	manager := newTestManager(t)

	for _, alias := range []string{"gst", "dps", "kgp"} {
		_, err := manager.StartInvocation(alias, "tool", alias, "/work")
		require.NoError(t, err)
	}
	_, err := manager.StartInvocation("gst", "git", "git status", "/elsewhere")
	require.NoError(t, err)

	entries, err := manager.RecentEntries("", 10)
	require.NoError(t, err)
	assert.Len(t, entries, 4)

	entries, err = manager.RecentEntries("/work", 10)
	require.NoError(t, err)
	assert.Len(t, entries, 3)

	entries, err = manager.RecentEntries("", 2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestTopAliases(t *testing.T) {
	manager := newTestManager(t)

	for i := 0; i < 3; i++ {
		_, err := manager.StartInvocation("gst", "git", "git status", "/work")
		require.NoError(t, err)
	}
	_, err := manager.StartInvocation("dps", "docker", "docker ps", "/work")
	require.NoError(t, err)

	counts, err := manager.TopAliases(5)
	require.NoError(t, err)
	require.Len(t, counts, 2)
	assert.Equal(t, "gst", counts[0].Alias)
	assert.Equal(t, int64(3), counts[0].Count)
	assert.Equal(t, "dps", counts[1].Alias)
	assert.False(t, counts[0].LastUsed.IsZero())
}

func TestResetUsage(t *testing.T) {
	manager := newTestManager(t)

	_, err := manager.StartInvocation("gst", "git", "git status", "/work")
	require.NoError(t, err)
	require.NoError(t, manager.ResetUsage())

	entries, err := manager.RecentEntries("", 10)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
