package steam

import (
	"errors"
	"path/filepath"
	"runtime"

	"svinstall/internal/paths"
)

// AppID is Stardew Valley's Steam application id.
const AppID = "413150"

// GameDirName is the game's folder name under steamapps/common.
const GameDirName = "Stardew Valley"

// ErrNotFound signals that no candidate directory contained the game.
var ErrNotFound = errors.New("stardew valley installation not found")

// Finder probes an ordered list of candidate directories for the game
// installation. Earlier candidates win. The finder never writes to disk.
type Finder struct {
	candidates []string
	markers    []string
}

// NewFinder builds a finder over the given candidate roots using the default
// marker files for the current platform.
func NewFinder(candidates []string) Finder {
	return Finder{candidates: candidates, markers: defaultMarkers()}
}

// NewFinderWithMarkers builds a finder with explicit marker file names,
// used by tests.
func NewFinderWithMarkers(candidates, markers []string) Finder {
	return Finder{candidates: candidates, markers: markers}
}

// Candidates returns the probe order.
func (f Finder) Candidates() []string {
	out := make([]string, len(f.candidates))
	copy(out, f.candidates)
	return out
}

// Find returns the first candidate directory containing a game marker file,
// or ErrNotFound when no candidate verifies.
func (f Finder) Find() (string, error) {
	for _, candidate := range f.candidates {
		if candidate == "" {
			continue
		}
		ok, err := verify(candidate, f.markers)
		if err != nil {
			continue
		}
		if ok {
			return candidate, nil
		}
	}
	return "", ErrNotFound
}

func verify(dir string, markers []string) (bool, error) {
	isDir, err := paths.DirExists(dir)
	if err != nil || !isDir {
		return false, err
	}
	for _, marker := range markers {
		ok, err := paths.FileExists(filepath.Join(dir, filepath.FromSlash(marker)))
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}

// defaultMarkers lists files whose presence identifies a game directory.
// "Stardew Valley.dll" ships on every platform since 1.5.5; the older
// per-platform launchers are kept for legacy installs.
func defaultMarkers() []string {
	markers := []string{"Stardew Valley.dll"}
	switch runtime.GOOS {
	case "windows":
		markers = append(markers, "Stardew Valley.exe")
	case "darwin":
		markers = append(markers, "Contents/MacOS/Stardew Valley")
	default:
		markers = append(markers, "StardewValley")
	}
	return markers
}
