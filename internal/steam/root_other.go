//go:build !windows

package steam

import (
	"os"
	"path/filepath"
	"runtime"
)

// steamRoots returns candidate Steam installation roots for the current
// user, covering native, snap, and flatpak layouts.
func steamRoots() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	if runtime.GOOS == "darwin" {
		return []string{
			filepath.Join(home, "Library", "Application Support", "Steam"),
		}
	}

	roots := []string{
		filepath.Join(home, ".local", "share", "Steam"),
		filepath.Join(home, ".steam", "steam"),
		filepath.Join(home, ".steam", "root"),
		filepath.Join(home, "snap", "steam", "common", ".local", "share", "Steam"),
		filepath.Join(home, ".var", "app", "com.valvesoftware.Steam", ".local", "share", "Steam"),
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		roots = append(roots, filepath.Join(xdg, "Steam"))
	}
	return roots
}

func fallbackCandidates() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	if runtime.GOOS == "darwin" {
		return []string{
			filepath.Join(home, "Library", "Application Support", "Steam", "steamapps", "common", GameDirName),
		}
	}
	return []string{
		filepath.Join(home, "GOG Games", GameDirName),
		filepath.Join(home, ".local", "share", GameDirName),
	}
}
