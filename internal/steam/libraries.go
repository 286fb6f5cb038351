package steam

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"github.com/andygrunwald/vdf"
)

// Library describes one Steam library folder as listed in
// steamapps/libraryfolders.vdf.
type Library struct {
	Path string
	Apps map[string]string
}

// HasApp reports whether the library's manifest lists the given app id.
func (l Library) HasApp(appID string) bool {
	_, ok := l.Apps[appID]
	return ok
}

// LibraryFolders parses libraryfolders.vdf under the given Steam root and
// returns every listed library. The Steam root itself is always included
// as the first entry so installs predating the manifest format still
// resolve.
func LibraryFolders(steamRoot string) ([]Library, error) {
	manifest := filepath.Join(steamRoot, "steamapps", "libraryfolders.vdf")
	file, err := os.Open(manifest)
	if err != nil {
		return nil, fmt.Errorf("open library manifest: %w", err)
	}
	defer file.Close()

	parsed, err := vdf.NewParser(file).Parse()
	if err != nil {
		return nil, fmt.Errorf("parse library manifest: %w", err)
	}

	folders, ok := parsed["libraryfolders"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("library manifest missing libraryfolders block")
	}

	libraries := []Library{{Path: steamRoot}}
	// The parser returns an unordered map, so the numeric folder indices
	// are sorted to restore Steam's library order.
	for _, key := range sortedKeys(folders) {
		entry, ok := folders[key].(map[string]interface{})
		if !ok {
			continue
		}
		lib := Library{Apps: map[string]string{}}
		if p, ok := entry["path"].(string); ok {
			lib.Path = p
		}
		if lib.Path == "" {
			continue
		}
		if apps, ok := entry["apps"].(map[string]interface{}); ok {
			for appID, size := range apps {
				if s, ok := size.(string); ok {
					lib.Apps[appID] = s
				} else {
					lib.Apps[appID] = ""
				}
			}
		}
		if filepath.Clean(lib.Path) == filepath.Clean(steamRoot) {
			libraries[0] = lib
			continue
		}
		libraries = append(libraries, lib)
	}
	return libraries, nil
}

// sortedKeys orders folder indices numerically ("2" before "10"), falling
// back to lexicographic order for any non-numeric key.
func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, aerr := strconv.Atoi(keys[i])
		b, berr := strconv.Atoi(keys[j])
		switch {
		case aerr == nil && berr == nil:
			return a < b
		case aerr == nil:
			return true
		case berr == nil:
			return false
		default:
			return keys[i] < keys[j]
		}
	})
	return keys
}
