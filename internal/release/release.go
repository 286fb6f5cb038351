package release

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

// Spec describes a resolved downloadable release archive.
type Spec struct {
	Component string `json:"component"`
	Version   string `json:"version"`
	Asset     string `json:"asset"`
	URL       string `json:"url"`
}

// Client resolves latest-release archives from GitHub with an on-disk
// metadata cache.
type Client struct {
	// CacheDir holds the release metadata cache; empty disables caching.
	CacheDir string
	// HTTPClient is used for API and download requests.
	HTTPClient *http.Client
	// BaseURL overrides the GitHub API host, used by tests.
	BaseURL string
}

// NewClient returns a client caching metadata under cacheDir.
func NewClient(cacheDir string) *Client {
	return &Client{
		CacheDir:   cacheDir,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type githubReleaseAsset struct {
	Name               string `json:"name"`
	BrowserDownloadURL string `json:"browser_download_url"`
}

type githubRelease struct {
	TagName string               `json:"tag_name"`
	Assets  []githubReleaseAsset `json:"assets"`
}

// Resolve returns the latest release spec for the named component, serving
// from the cache when the entry is fresh.
func (c *Client) Resolve(ctx context.Context, name string) (Spec, error) {
	def, ok := Definition(name)
	if !ok {
		return Spec{}, fmt.Errorf("unknown component: %s", name)
	}

	if cached, ok := c.cachedSpec(def.Name); ok {
		return cached, nil
	}

	spec, err := c.fetchLatest(ctx, def)
	if err != nil {
		return Spec{}, err
	}
	c.cacheSpec(spec)
	return spec, nil
}

func (c *Client) fetchLatest(ctx context.Context, def Component) (Spec, error) {
	endpoint := def.releaseEndpoint()
	if c.BaseURL != "" {
		endpoint = c.BaseURL + "/repos/" + def.Repo + "/releases/latest"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Spec{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", "svinstall/1.0")
	if tok := os.Getenv("GITHUB_TOKEN"); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return Spec{}, fmt.Errorf("query %s release: %w", def.Name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Spec{}, fmt.Errorf("query %s release: unexpected status %s", def.Name, resp.Status)
	}

	var release githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return Spec{}, fmt.Errorf("decode %s release: %w", def.Name, err)
	}

	version := strings.TrimPrefix(release.TagName, "v")
	if version == "" {
		version = release.TagName
	}

	wanted := def.assetName(version)
	for _, asset := range release.Assets {
		if asset.Name == wanted {
			return Spec{
				Component: def.Name,
				Version:   version,
				Asset:     asset.Name,
				URL:       asset.BrowserDownloadURL,
			}, nil
		}
	}
	return Spec{}, fmt.Errorf("%s release %s has no asset %s", def.Name, release.TagName, wanted)
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}
