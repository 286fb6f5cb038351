package release

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

const (
	cacheFileName = "release_cache.json"
	cacheTTL      = 1 * time.Hour
)

type cacheEntry struct {
	Component string    `json:"component"`
	Version   string    `json:"version"`
	Asset     string    `json:"asset"`
	URL       string    `json:"url"`
	FetchedAt time.Time `json:"fetched_at"`
}

type cacheFile struct {
	Entries map[string]cacheEntry `json:"entries"`
}

func (c *Client) cachePath() string {
	if c.CacheDir == "" {
		return ""
	}
	return filepath.Join(c.CacheDir, cacheFileName)
}

func (c *Client) loadCache() cacheFile {
	empty := cacheFile{Entries: map[string]cacheEntry{}}
	path := c.cachePath()
	if path == "" {
		return empty
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return empty
	}
	var cf cacheFile
	if err := json.Unmarshal(data, &cf); err != nil {
		return empty
	}
	if cf.Entries == nil {
		cf.Entries = map[string]cacheEntry{}
	}
	return cf
}

func (c *Client) cachedSpec(component string) (Spec, bool) {
	cf := c.loadCache()
	entry, ok := cf.Entries[component]
	if !ok {
		return Spec{}, false
	}
	if time.Since(entry.FetchedAt) > cacheTTL {
		return Spec{}, false
	}
	return Spec{
		Component: entry.Component,
		Version:   entry.Version,
		Asset:     entry.Asset,
		URL:       entry.URL,
	}, true
}

func (c *Client) cacheSpec(spec Spec) {
	path := c.cachePath()
	if path == "" {
		return
	}
	cf := c.loadCache()
	cf.Entries[spec.Component] = cacheEntry{
		Component: spec.Component,
		Version:   spec.Version,
		Asset:     spec.Asset,
		URL:       spec.URL,
		FetchedAt: time.Now(),
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return
	}
	data, err := json.MarshalIndent(cf, "", "  ")
	if err != nil {
		return
	}
	_ = os.WriteFile(path, data, 0o644)
}
