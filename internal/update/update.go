// Package update checks GitHub Releases for newer builds of the companion.
// The sidecar server ships inside the same release, so updating the
// companion updates both.
package update

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	selfupdate "github.com/creativeprojects/go-selfupdate"
)

const checkTimeout = 10 * time.Second

// Release describes an available update.
type Release struct {
	Version string
	URL     string
}

// Check queries GitHub Releases for a version newer than currentVersion.
// Returns nil for "dev" or unparseable builds: local builds never nag.
func Check(currentVersion, repo string) (*Release, error) {
	if currentVersion == "dev" || currentVersion == "" || repo == "" {
		return nil, nil
	}

	current, err := parseSemver(currentVersion)
	if err != nil {
		return nil, nil // dirty or hand-rolled build, skip silently
	}

	source, err := selfupdate.NewGitHubSource(selfupdate.GitHubConfig{})
	if err != nil {
		return nil, fmt.Errorf("create github source: %w", err)
	}
	updater, err := selfupdate.NewUpdater(selfupdate.Config{Source: source})
	if err != nil {
		return nil, fmt.Errorf("create updater: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), checkTimeout)
	defer cancel()

	latest, found, err := updater.DetectLatest(ctx, selfupdate.ParseSlug(repo))
	if err != nil {
		return nil, fmt.Errorf("detect latest release: %w", err)
	}
	if !found {
		return nil, nil
	}

	latestVer, err := semver.NewVersion(latest.Version())
	if err != nil {
		return nil, nil
	}
	if !latestVer.GreaterThan(current) {
		return nil, nil
	}

	return &Release{Version: latest.Version(), URL: latest.URL}, nil
}

// IsNewer reports whether latest is strictly newer than current.
// Unparseable versions compare older than any valid version.
func IsNewer(current, latest string) bool {
	cv, errC := parseSemver(current)
	lv, errL := parseSemver(latest)
	if errL != nil {
		return false
	}
	if errC != nil {
		return true
	}
	return lv.GreaterThan(cv)
}

// parseSemver strips a leading "v" before parsing.
func parseSemver(s string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(s, "v"))
}
