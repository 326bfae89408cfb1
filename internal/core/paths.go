package core

import (
	"os"
	"path/filepath"
)

type Paths struct {
	HomeDir           string
	DataDir           string
	ConfigFile        string
	LogFile           string
	UsageFile         string
	LatestVersionFile string
	VersionMarkerFile string
}

var defaultPaths *Paths

func ensureDefaultPaths() {
	if defaultPaths == nil {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			panic(err)
		}

		defaultPaths = &Paths{
			HomeDir:           homeDir,
			DataDir:           filepath.Join(homeDir, ".pal"),
			ConfigFile:        filepath.Join(homeDir, ".pal", "pal.yaml"),
			LogFile:           filepath.Join(homeDir, ".pal", "pal.log"),
			UsageFile:         filepath.Join(homeDir, ".pal", "usage.db"),
			LatestVersionFile: filepath.Join(homeDir, ".pal", "latest_version.txt"),
			VersionMarkerFile: filepath.Join(homeDir, ".pal", "version_marker"),
		}

		err = os.MkdirAll(defaultPaths.DataDir, 0755)
		if err != nil {
			panic(err)
		}
	}
}

func HomeDir() string {
	ensureDefaultPaths()
	return defaultPaths.HomeDir
}

func DataDir() string {
	ensureDefaultPaths()
	return defaultPaths.DataDir
}

func ConfigFile() string {
	ensureDefaultPaths()
	return defaultPaths.ConfigFile
}

func LogFile() string {
	ensureDefaultPaths()
	return defaultPaths.LogFile
}

func UsageFile() string {
	ensureDefaultPaths()
	return defaultPaths.UsageFile
}

func LatestVersionFile() string {
	ensureDefaultPaths()
	return defaultPaths.LatestVersionFile
}

func VersionMarkerFile() string {
	ensureDefaultPaths()
	return defaultPaths.VersionMarkerFile
}

// ResetPaths clears the cached paths, forcing them to be reinitialized.
// This is primarily used for testing purposes.
func ResetPaths() {
	defaultPaths = nil
}
