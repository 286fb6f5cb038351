package stardrop

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"svinstall/internal/paths"
	"svinstall/internal/resource"
	"svinstall/internal/shortcut"
)

// ShortcutName is the desktop shortcut created for the manager.
const ShortcutName = "Stardrop"

// Options controls install behaviour.
type Options struct {
	// Reextract replaces an existing install instead of skipping it.
	Reextract bool
	// Shortcut controls desktop shortcut creation.
	Shortcut bool
}

// Result reports what the install actually did.
type Result struct {
	Dir             string `json:"dir"`
	Extracted       bool   `json:"extracted"`
	ShortcutCreated bool   `json:"shortcut_created"`
	ShortcutNote    string `json:"shortcut_note,omitempty"`
}

// Install extracts the bundled Stardrop archive into destDir and creates a
// desktop shortcut. Re-running is idempotent: when the destination exists
// the extraction is skipped unless Reextract is set; the shortcut always
// overwrites any existing one of the same name.
func Install(resourceDir, destDir string, opts Options) (Result, error) {
	res := Result{Dir: destDir}

	exists, err := paths.DirExists(destDir)
	if err != nil {
		return res, fmt.Errorf("check stardrop dir: %w", err)
	}

	if exists && opts.Reextract {
		if err := os.RemoveAll(destDir); err != nil {
			return res, fmt.Errorf("replace stardrop dir: %w", err)
		}
		exists = false
	}

	if !exists {
		archive, err := resource.FindArchive(resourceDir, "Stardrop")
		if err != nil {
			return res, fmt.Errorf("locate stardrop archive: %w", err)
		}
		if err := resource.ExtractZip(archive, destDir); err != nil {
			return res, fmt.Errorf("extract stardrop archive: %w", err)
		}
		res.Extracted = true
	}

	if opts.Shortcut {
		err := shortcut.CreateDesktop(ShortcutName, executablePath(destDir))
		switch {
		case err == nil:
			res.ShortcutCreated = true
		case errors.Is(err, shortcut.ErrUnsupported):
			res.ShortcutNote = err.Error()
		default:
			return res, fmt.Errorf("create shortcut: %w", err)
		}
	}

	return res, nil
}

// Installed reports whether the manager is already present at destDir.
func Installed(destDir string) bool {
	ok, err := paths.DirExists(destDir)
	return err == nil && ok
}

func executablePath(destDir string) string {
	name := "Stardrop"
	if runtime.GOOS == "windows" {
		name = "Stardrop.exe"
	}
	return filepath.Join(destDir, name)
}
