package release

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
)

// Download fetches the release archive into destDir, keeping the asset's
// original file name. An existing file is reused unless force is set. The
// final path is returned.
func (c *Client) Download(ctx context.Context, spec Spec, destDir string, force bool) (string, error) {
	if spec.URL == "" {
		return "", fmt.Errorf("release %s missing download url", spec.Component)
	}
	dest := filepath.Join(destDir, spec.Asset)

	if !force {
		if _, err := os.Stat(dest); err == nil {
			return dest, nil
		}
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("prepare download destination: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, spec.URL, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "svinstall/1.0")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return "", fmt.Errorf("download %s: %w", spec.Asset, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("download %s: unexpected status %s", spec.Asset, resp.Status)
	}

	tmpFile, err := os.CreateTemp(destDir, "download-*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() { _ = os.Remove(tmpPath) }()

	if _, err := io.Copy(tmpFile, resp.Body); err != nil {
		tmpFile.Close()
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, dest); err != nil {
		return "", fmt.Errorf("finalize download: %w", err)
	}
	return dest, nil
}
