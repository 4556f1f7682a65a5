package updater

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const cacheFileName = "version-check.json"

// DefaultCacheMaxAge is how long a check result is reused.
const DefaultCacheMaxAge = 24 * time.Hour

// VersionCache holds the last check result.
type VersionCache struct {
	LatestVersion   string    `json:"latest_version"`
	CurrentVersion  string    `json:"current_version"`
	ReleaseURL      string    `json:"release_url,omitempty"`
	CheckedAt       time.Time `json:"checked_at"`
	UpdateAvailable bool      `json:"update_available"`
}

// LoadCache reads the cache from configDir. A missing file returns nil, nil.
func LoadCache(configDir string) (*VersionCache, error) {
	data, err := os.ReadFile(filepath.Join(configDir, cacheFileName))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading version cache: %w", err)
	}

	var cache VersionCache
	if err := json.Unmarshal(data, &cache); err != nil {
		return nil, fmt.Errorf("parsing version cache: %w", err)
	}
	return &cache, nil
}

// SaveCache writes the cache to configDir.
func SaveCache(configDir string, cache *VersionCache) error {
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cache, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling version cache: %w", err)
	}
	if err := os.WriteFile(filepath.Join(configDir, cacheFileName), data, 0600); err != nil {
		return fmt.Errorf("writing version cache: %w", err)
	}
	return nil
}

// IsCacheStale returns true if the cache is nil, older than maxAge or was
// recorded for a different running version.
func IsCacheStale(cache *VersionCache, current string, maxAge time.Duration) bool {
	if cache == nil || cache.CurrentVersion != current {
		return true
	}
	return time.Since(cache.CheckedAt) > maxAge
}

// Check returns whether an update is available, using the cache in
// configDir when it is fresh. Development builds never report updates.
func (c *Checker) Check(ctx context.Context, configDir, current string) (*VersionCache, error) {
	if _, err := parseSemver(current); err != nil {
		return &VersionCache{CurrentVersion: current}, nil
	}

	cache, err := LoadCache(configDir)
	if err == nil && !IsCacheStale(cache, current, DefaultCacheMaxAge) {
		return cache, nil
	}

	release, err := c.Latest(ctx)
	if err != nil {
		return nil, err
	}
	available, err := IsUpdateAvailable(current, release.TagName)
	if err != nil {
		return nil, err
	}

	result := &VersionCache{
		LatestVersion:   release.TagName,
		CurrentVersion:  current,
		ReleaseURL:      release.HTMLURL,
		CheckedAt:       time.Now().UTC(),
		UpdateAvailable: available,
	}
	// A cache write failure only costs an extra request next time.
	_ = SaveCache(configDir, result)
	return result, nil
}
