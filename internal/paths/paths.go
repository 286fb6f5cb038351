package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// InstallPaths captures canonical locations derived from a resolved game
// installation directory.
type InstallPaths struct {
	GameDir     string
	ModsDir     string
	LibraryRoot string
	StardropDir string
}

// ForGame derives the standard install locations from the game directory.
// The library root is the directory two levels above the game dir, matching
// Steam's <library>/steamapps/common/<game> layout.
func ForGame(gameDir string) InstallPaths {
	libraryRoot := filepath.Dir(filepath.Dir(gameDir))
	return InstallPaths{
		GameDir:     gameDir,
		ModsDir:     filepath.Join(gameDir, "Mods"),
		LibraryRoot: libraryRoot,
		StardropDir: filepath.Join(libraryRoot, "Stardrop"),
	}
}

// EnsureModsDir creates the Mods folder inside the game directory if needed.
func (p InstallPaths) EnsureModsDir() error {
	if err := os.MkdirAll(p.ModsDir, 0o755); err != nil {
		return fmt.Errorf("create mods dir: %w", err)
	}
	return nil
}

// ResourceDir resolves the directory holding the bundled archives. The
// override wins when non-empty; otherwise the directory containing the
// running executable is used, falling back to the working directory.
func ResourceDir(override string) (string, error) {
	if override != "" {
		abs, err := filepath.Abs(override)
		if err != nil {
			return "", fmt.Errorf("resolve resource dir: %w", err)
		}
		return abs, nil
	}
	exe, err := os.Executable()
	if err == nil {
		return filepath.Dir(exe), nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve resource dir: %w", err)
	}
	return wd, nil
}

// GlobalDir returns the user-level svinstall directory (~/.svinstall).
// It creates the directory if it does not exist.
func GlobalDir() (string, error) {
	if override, ok := os.LookupEnv("SVINSTALL_DIR"); ok && override != "" {
		abs, err := filepath.Abs(override)
		if err != nil {
			return "", fmt.Errorf("resolve SVINSTALL_DIR: %w", err)
		}
		if err := os.MkdirAll(abs, 0o755); err != nil {
			return "", fmt.Errorf("create global dir: %w", err)
		}
		return abs, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("detect user home: %w", err)
	}
	dir := filepath.Join(home, ".svinstall")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create global dir: %w", err)
	}
	return dir, nil
}

// GlobalLogsDir returns the global logs directory (~/.svinstall/logs).
// It creates the directory if it does not exist.
func GlobalLogsDir() (string, error) {
	global, err := GlobalDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(global, "logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create global logs dir: %w", err)
	}
	return dir, nil
}

// GlobalCacheDir returns the global cache directory (~/.svinstall/cache)
// used for release metadata and downloaded archives.
func GlobalCacheDir() (string, error) {
	global, err := GlobalDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(global, "cache")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create global cache dir: %w", err)
	}
	return dir, nil
}

// FileExists reports whether a path exists and is a regular file.
func FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// DirExists reports whether a path exists and is a directory.
func DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}
