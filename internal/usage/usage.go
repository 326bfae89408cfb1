// Package usage records wrapper invocations in a local sqlite database,
// backing `pal history` and `pal stats`.
package usage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/palshell/pal/internal/core"
	"gorm.io/gorm"
)

type UsageManager struct {
	db *gorm.DB
}

type InvocationEntry struct {
	ID        uint      `gorm:"primarykey"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time `gorm:"index"`

	Alias     string `gorm:"index"`
	Tool      string
	Command   string
	Directory string
	ExitCode  sql.NullInt32
}

// AliasCount is one row of the usage leaderboard.
type AliasCount struct {
	Alias    string
	Tool     string
	Count    int64
	LastUsed time.Time
}

const (
	usageSchemaVersion = 1
)

func NewUsageManager(dbFilePath string) (*UsageManager, error) {
	dbFileExists := true
	if _, err := os.Stat(dbFilePath); errors.Is(err, os.ErrNotExist) {
		dbFileExists = false
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "error checking usage db: %v\n", err)
		return nil, err
	}

	db, err := gorm.Open(sqlite.Open(dbFilePath), &gorm.Config{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error opening database")
		return nil, err
	}

	if needsMigration(dbFileExists, db) {
		if err := db.AutoMigrate(&InvocationEntry{}); err != nil {
			fmt.Fprintf(os.Stderr, "error auto-migrating database schema: %v\n", err)
			return nil, err
		}
		if err := writeSchemaVersion(usageSchemaVersion); err != nil {
			fmt.Fprintf(os.Stderr, "error writing usage schema version: %v\n", err)
			return nil, err
		}
	}

	return &UsageManager{
		db: db,
	}, nil
}

func needsMigration(dbFileExists bool, db *gorm.DB) bool {
	if !dbFileExists {
		return true
	}

	versionMatches, err := schemaVersionMatches()
	if err != nil || !versionMatches {
		return true
	}

	// If the version marker is present but the table is missing (corruption or
	// manual deletion), re-run migrations to restore the schema.
	return !db.Migrator().HasTable(&InvocationEntry{})
}

func writeSchemaVersion(version int) error {
	versionPath := schemaVersionPath()
	return os.WriteFile(versionPath, []byte(strconv.Itoa(version)), 0644)
}

func schemaVersionMatches() (bool, error) {
	versionPath := schemaVersionPath()
	data, err := os.ReadFile(versionPath)
	if errors.Is(err, os.ErrNotExist) {
		return false, err
	}
	if err != nil {
		return false, err
	}
	trimmed := strings.TrimSpace(string(data))
	version, err := strconv.Atoi(trimmed)
	if err != nil {
		return false, err
	}
	if version != usageSchemaVersion {
		return false, fmt.Errorf("usage schema version mismatch: got %d, want %d", version, usageSchemaVersion)
	}
	return true, nil
}

func schemaVersionPath() string {
	return filepath.Join(core.DataDir(), "usage_schema_version")
}

func (usageManager *UsageManager) StartInvocation(alias, tool, command, directory string) (*InvocationEntry, error) {
	entry := InvocationEntry{
		Alias:     alias,
		Tool:      tool,
		Command:   command,
		Directory: directory,
	}

	result := usageManager.db.Create(&entry)
	if result.Error != nil {
		return nil, result.Error
	}

	return &entry, nil
}

func (usageManager *UsageManager) FinishInvocation(entry *InvocationEntry, exitCode int) (*InvocationEntry, error) {
	entry.ExitCode = sql.NullInt32{Int32: int32(exitCode), Valid: true}

	result := usageManager.db.Save(entry)
	if result.Error != nil {
		return nil, result.Error
	}

	return entry, nil
}

func (usageManager *UsageManager) RecentEntries(directory string, limit int) ([]InvocationEntry, error) {
	var entries []InvocationEntry
	var db = usageManager.db
	if directory != "" {
		db = db.Where("directory = ?", directory)
	}
	result := db.Order("created_at desc").Limit(limit).Find(&entries)
	if result.Error != nil {
		return nil, result.Error
	}

	slices.Reverse(entries)
	return entries, nil
}

// TopAliases returns the most-invoked aliases with their usage counts and
// the time of last use, most used first.
func (usageManager *UsageManager) TopAliases(limit int) ([]AliasCount, error) {
	var counts []AliasCount
	result := usageManager.db.Model(&InvocationEntry{}).
		Select("alias, tool, count(*) as count").
		Group("alias").
		Order("count desc").
		Limit(limit).
		Scan(&counts)
	if result.Error != nil {
		return nil, result.Error
	}

	for i := range counts {
		var last InvocationEntry
		result := usageManager.db.Where("alias = ?", counts[i].Alias).
			Order("created_at desc").
			First(&last)
		if result.Error != nil {
			continue
		}
		counts[i].LastUsed = last.CreatedAt
	}

	return counts, nil
}

func (usageManager *UsageManager) ResetUsage() error {
	result := usageManager.db.Exec("DELETE FROM invocation_entries")
	if result.Error != nil {
		return result.Error
	}

	return nil
}
