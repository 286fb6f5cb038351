package steam

import "path/filepath"

// Format selects how a discovered installation path is rendered.
type Format int

const (
	// FormatGame prints the bare installation path.
	FormatGame Format = iota
	// FormatMods prints the installation path with the Mods folder appended.
	FormatMods
	// FormatLocalized prints a localized sentence embedding the path.
	FormatLocalized
)

// LocalizedPrefix is the sentence prefix used by FormatLocalized.
const LocalizedPrefix = "游戏安装路径为："

// NotFoundMessage is the localized error sentence printed when no
// installation path could be resolved.
const NotFoundMessage = "错误：找不到Stardew Valley的安装路径。"

// Render returns the requested rendering of a resolved game path.
func Render(gamePath string, format Format) string {
	switch format {
	case FormatMods:
		return filepath.Join(gamePath, "Mods")
	case FormatLocalized:
		return LocalizedPrefix + gamePath
	default:
		return gamePath
	}
}
