package mods

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"svinstall/internal/resource"
)

// Entry describes one installable mod from the bundled source directory.
type Entry struct {
	Name    string `json:"name"`
	Version string `json:"version,omitempty"`
	Source  string `json:"source"`
}

// Operation names for results and progress output.
const (
	OpInstall = "install"
	OpRemove  = "remove"
)

// Result records the outcome of one mod operation in a batch.
type Result struct {
	Name      string `json:"name"`
	Operation string `json:"operation"`
	Skipped   bool   `json:"skipped,omitempty"`
	Error     string `json:"error,omitempty"`
}

// ErrUnknownMod is returned when the named mod is not in the bundled set.
var ErrUnknownMod = errors.New("unknown mod")

// Manager copies and removes mod directories between the bundled source and
// the game's Mods folder. All writes stay inside ModsDir.
type Manager struct {
	SourceDir string
	ModsDir   string
}

// NewManager builds a manager over the unpacked mod source directory and
// the game's Mods folder.
func NewManager(sourceDir, modsDir string) Manager {
	return Manager{SourceDir: sourceDir, ModsDir: modsDir}
}

// List enumerates the bundled mods, sorted by name. Hidden directories are
// ignored. The version is read from each mod's SMAPI manifest when present.
func (m Manager) List() ([]Entry, error) {
	entries, err := os.ReadDir(m.SourceDir)
	if err != nil {
		return nil, fmt.Errorf("read mod source dir: %w", err)
	}

	var mods []Entry
	for _, entry := range entries {
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		source := filepath.Join(m.SourceDir, entry.Name())
		mods = append(mods, Entry{
			Name:    entry.Name(),
			Version: manifestVersion(source),
			Source:  source,
		})
	}
	sort.Slice(mods, func(i, j int) bool { return mods[i].Name < mods[j].Name })
	return mods, nil
}

// smapiManifest is the subset of a SMAPI mod manifest.json we care about.
type smapiManifest struct {
	Version string `json:"Version"`
}

func manifestVersion(modDir string) string {
	data, err := os.ReadFile(filepath.Join(modDir, "manifest.json"))
	if err != nil {
		return ""
	}
	var manifest smapiManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return ""
	}
	return manifest.Version
}

// validName reports whether name is a plain directory name. Anything with a
// path separator or dot segment could address files outside the Mods folder.
func validName(name string) bool {
	if name == "" || name == "." || name == ".." {
		return false
	}
	if strings.ContainsAny(name, `/\`) {
		return false
	}
	return filepath.Base(name) == name
}

// Install copies the named mod into the Mods folder. An existing directory
// of the same name is fully replaced, never merged.
func (m Manager) Install(name string) error {
	if !validName(name) {
		return fmt.Errorf("%w: %s", ErrUnknownMod, name)
	}
	source := filepath.Join(m.SourceDir, name)
	info, err := os.Stat(source)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrUnknownMod, name)
	}

	target := filepath.Join(m.ModsDir, name)
	if err := os.RemoveAll(target); err != nil {
		return fmt.Errorf("replace existing %s: %w", name, err)
	}
	if err := resource.CopyTree(source, target); err != nil {
		return fmt.Errorf("copy %s: %w", name, err)
	}
	return nil
}

// Installed reports whether a directory for the named mod exists in the
// Mods folder.
func (m Manager) Installed(name string) bool {
	if !validName(name) {
		return false
	}
	info, err := os.Stat(filepath.Join(m.ModsDir, name))
	return err == nil && info.IsDir()
}

// Remove deletes the named mod from the Mods folder. A missing directory
// is a no-op, not an error.
func (m Manager) Remove(name string) error {
	if !validName(name) {
		return fmt.Errorf("%w: %s", ErrUnknownMod, name)
	}
	target := filepath.Join(m.ModsDir, name)
	if err := os.RemoveAll(target); err != nil {
		return fmt.Errorf("remove %s: %w", name, err)
	}
	return nil
}

// InstallAll installs every bundled mod. A single mod's failure is recorded
// and skipped; the batch continues.
func (m Manager) InstallAll(report func(Result)) ([]Result, error) {
	return m.batch(OpInstall, report)
}

// RemoveAll removes every bundled mod from the Mods folder, with the same
// per-item failure policy as InstallAll.
func (m Manager) RemoveAll(report func(Result)) ([]Result, error) {
	return m.batch(OpRemove, report)
}

func (m Manager) batch(op string, report func(Result)) ([]Result, error) {
	list, err := m.List()
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(list))
	for _, mod := range list {
		res := Result{Name: mod.Name, Operation: op}
		var opErr error
		switch op {
		case OpInstall:
			opErr = m.Install(mod.Name)
		case OpRemove:
			opErr = m.Remove(mod.Name)
		}
		if opErr != nil {
			res.Skipped = true
			res.Error = opErr.Error()
		}
		results = append(results, res)
		if report != nil {
			report(res)
		}
	}
	return results, nil
}
