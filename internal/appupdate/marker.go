package appupdate

import (
	"os"
	"strings"

	"github.com/palshell/pal/internal/core"
)

// GetLastUsedVersion reads the last used version from the version marker
// file. Returns empty string on a fresh install.
func GetLastUsedVersion() string {
	data, err := os.ReadFile(core.VersionMarkerFile())
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// UpdateVersionMarker writes the current version to the version marker file.
func UpdateVersionMarker(version string) error {
	return os.WriteFile(core.VersionMarkerFile(), []byte(version), 0644)
}

// JustUpgraded reports whether this run is the first with a new version.
func JustUpgraded(currentVersion string) bool {
	last := GetLastUsedVersion()
	return last != "" && last != currentVersion
}
