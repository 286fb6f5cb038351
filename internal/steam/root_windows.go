//go:build windows

package steam

import (
	"os"
	"path/filepath"

	"golang.org/x/sys/windows/registry"
)

// steamRoots returns candidate Steam installation roots, preferring the
// registry value the Steam client maintains.
func steamRoots() []string {
	var roots []string
	if p, err := registrySteamPath(); err == nil && p != "" {
		roots = append(roots, filepath.Clean(p))
	}

	if pf := os.Getenv("ProgramFiles(x86)"); pf != "" {
		roots = append(roots, filepath.Join(pf, "Steam"))
	}
	if pf := os.Getenv("ProgramFiles"); pf != "" {
		roots = append(roots, filepath.Join(pf, "Steam"))
	}
	roots = append(roots, `C:\Program Files (x86)\Steam`)
	return roots
}

func registrySteamPath() (string, error) {
	key, err := registry.OpenKey(registry.CURRENT_USER, `SOFTWARE\Valve\Steam`, registry.QUERY_VALUE)
	if err != nil {
		return "", err
	}
	defer key.Close()

	value, _, err := key.GetStringValue("SteamPath")
	if err != nil {
		return "", err
	}
	return value, nil
}

func fallbackCandidates() []string {
	var out []string
	for _, drive := range []string{"C:", "D:", "E:"} {
		out = append(out,
			filepath.Join(drive+`\`, "Program Files (x86)", "Steam", "steamapps", "common", GameDirName),
			filepath.Join(drive+`\`, "Steam", "steamapps", "common", GameDirName),
			filepath.Join(drive+`\`, "Games", GameDirName),
		)
	}
	// GOG Galaxy default install location.
	out = append(out, filepath.Join(`C:\`, "Program Files (x86)", "GOG Galaxy", "Games", GameDirName))
	return out
}
