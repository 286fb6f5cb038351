package steam

import (
	"path/filepath"

	"svinstall/internal/paths"
)

// DefaultFinder enumerates candidate game directories in priority order:
// an explicit override first, then every Steam library folder that claims
// the app, then the plain library roots, and finally well-known fallback
// locations for machines without a readable Steam config.
func DefaultFinder(override string) Finder {
	var candidates []string
	if override != "" {
		candidates = append(candidates, filepath.Clean(override))
	}

	for _, root := range steamRoots() {
		ok, err := paths.DirExists(root)
		if err != nil || !ok {
			continue
		}
		libraries, err := LibraryFolders(root)
		if err != nil {
			// Fall back to the root itself as a single library.
			libraries = []Library{{Path: root}}
		}
		// Libraries that claim the app come before the rest.
		for _, lib := range libraries {
			if lib.HasApp(AppID) {
				candidates = append(candidates, gameDirIn(lib.Path))
			}
		}
		for _, lib := range libraries {
			if !lib.HasApp(AppID) {
				candidates = append(candidates, gameDirIn(lib.Path))
			}
		}
	}

	candidates = append(candidates, fallbackCandidates()...)
	return NewFinder(dedupe(candidates))
}

func gameDirIn(libraryRoot string) string {
	return filepath.Join(libraryRoot, "steamapps", "common", GameDirName)
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, p := range in {
		clean := filepath.Clean(p)
		if _, ok := seen[clean]; ok {
			continue
		}
		seen[clean] = struct{}{}
		out = append(out, clean)
	}
	return out
}
