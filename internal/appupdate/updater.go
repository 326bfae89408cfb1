package appupdate

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/creativeprojects/go-selfupdate"
)

// Release describes a published release of pal.
type Release interface {
	Version() string
	AssetURL() string
	AssetName() string
}

// Updater detects and applies releases. The default implementation talks to
// the release host; tests substitute mocks.
type Updater interface {
	DetectLatest(ctx context.Context, repo string) (Release, bool, error)
	UpdateTo(ctx context.Context, assetURL, assetName, exePath string) error
}

// DefaultUpdater implements Updater using go-selfupdate.
type DefaultUpdater struct{}

type remoteRelease struct {
	release *selfupdate.Release
}

func (r remoteRelease) Version() string   { return r.release.Version() }
func (r remoteRelease) AssetURL() string  { return r.release.AssetURL }
func (r remoteRelease) AssetName() string { return r.release.AssetName }

func (DefaultUpdater) DetectLatest(ctx context.Context, repo string) (Release, bool, error) {
	latest, found, err := selfupdate.DetectLatest(ctx, selfupdate.ParseSlug(repo))
	if err != nil || !found {
		return nil, found, err
	}
	return remoteRelease{release: latest}, true, nil
}

func (DefaultUpdater) UpdateTo(ctx context.Context, assetURL, assetName, exePath string) error {
	return selfupdate.UpdateTo(ctx, assetURL, assetName, exePath)
}

// Apply downloads the latest release and replaces the current executable.
// It returns the version updated to, or an error when already up to date or
// the update could not be applied.
func Apply(ctx context.Context, currentVersion string, updater Updater) (string, error) {
	latest, found, err := updater.DetectLatest(ctx, Repository)
	if err != nil {
		return "", fmt.Errorf("failed to detect latest version: %w", err)
	}
	if !found {
		return "", errors.New("no release found for this platform")
	}

	if currentVersion == latest.Version() {
		return "", fmt.Errorf("already at latest version %s", latest.Version())
	}

	exePath, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("could not locate executable: %w", err)
	}

	if err := updater.UpdateTo(ctx, latest.AssetURL(), latest.AssetName(), exePath); err != nil {
		return "", fmt.Errorf("failed to apply update: %w", err)
	}

	return latest.Version(), nil
}
