// Package appupdate keeps pal itself fresh: a background check records the
// newest published release, the next run turns that record into an upgrade
// hint, and `pal upgrade` swaps the binary in place.
package appupdate

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/palshell/pal/internal/core"
	"github.com/palshell/pal/internal/filesystem"
	"go.uber.org/zap"
)

// Repository is the release slug checked for newer versions.
const Repository = "palshell/pal"

// HandleSelfUpdate starts a background release check. The returned channel
// delivers the newer version when one exists and is closed once the check
// finishes. Builds whose version is not a release tag (dev builds) skip the
// check entirely.
func HandleSelfUpdate(
	currentVersion string,
	logger *zap.Logger,
	fs filesystem.FileSystem,
	updater Updater,
) chan string {
	updates := make(chan string)

	current, err := semver.NewVersion(currentVersion)
	if err != nil {
		logger.Debug("not a release build, skipping update check", zap.String("version", currentVersion))
		close(updates)
		return updates
	}

	go checkForNewRelease(updates, logger, fs, updater, current)

	return updates
}

// ReadLatestVersion returns the version recorded by a previous background
// check, or an empty string when none was recorded.
func ReadLatestVersion(fs filesystem.FileSystem) string {
	file, err := fs.Open(core.LatestVersionFile())
	if err != nil {
		return ""
	}
	defer file.Close()

	var buf bytes.Buffer
	_, err = io.Copy(&buf, file)
	if err != nil {
		return ""
	}

	return strings.TrimSpace(buf.String())
}

// PendingUpdateNotice returns a one-line upgrade hint when a previous
// background check recorded a release newer than the running version, or an
// empty string when there is nothing to announce.
func PendingUpdateNotice(fs filesystem.FileSystem, currentVersion string) string {
	recorded := ReadLatestVersion(fs)
	if recorded == "" {
		return ""
	}

	current, err := semver.NewVersion(currentVersion)
	if err != nil {
		return ""
	}
	latest, err := semver.NewVersion(recorded)
	if err != nil || latest.LessThanEqual(current) {
		return ""
	}

	return fmt.Sprintf("pal %s is available (current: %s), run `pal upgrade`", recorded, currentVersion)
}

func checkForNewRelease(updates chan string, logger *zap.Logger, fs filesystem.FileSystem, updater Updater, current *semver.Version) {
	defer close(updates)

	release, found, err := updater.DetectLatest(context.Background(), Repository)
	if err != nil {
		logger.Warn("update check failed", zap.Error(err))
		return
	}
	if !found {
		logger.Warn("no published release found", zap.String("repository", Repository))
		return
	}

	latest, err := semver.NewVersion(release.Version())
	if err != nil {
		logger.Error("release tag is not a version", zap.String("tag", release.Version()), zap.Error(err))
		return
	}

	if latest.LessThanEqual(current) {
		logger.Debug("pal is up to date", zap.String("version", current.String()))
		return
	}

	// Record the version first; the process may exit before anyone reads
	// the channel, and the next run prints the hint from this file.
	file, err := fs.Create(core.LatestVersionFile())
	if err != nil {
		logger.Error("failed to record newer version", zap.Error(err))
		return
	}
	defer file.Close()

	if _, err := file.WriteString(release.Version()); err != nil {
		logger.Error("failed to record newer version", zap.Error(err))
		return
	}

	logger.Info("newer pal release found",
		zap.String("current", current.String()),
		zap.String("latest", release.Version()),
	)
	updates <- release.Version()
}
