package tui

import (
	"io"
	"os"
	"runtime"
	"strings"
)

// OutputMode selects how batch mod operations report their progress.
type OutputMode int

const (
	// ModeTUI renders a live table while mods are copied or removed.
	ModeTUI OutputMode = iota
	// ModePlain prints one line per mod; used for pipes and dumb terminals.
	ModePlain
	// ModeJSON suppresses per-mod lines so the results can be emitted as
	// JSON afterwards.
	ModeJSON
)

// DetectMode picks the output mode for the given writer. An explicit
// --json or --no-progress request wins; otherwise the live table requires
// a character device and, outside Windows, a TERM that can drive it.
func DetectMode(out io.Writer, noProgress, jsonOutput bool) OutputMode {
	if jsonOutput {
		return ModeJSON
	}
	if noProgress {
		return ModePlain
	}
	file, ok := out.(*os.File)
	if !ok {
		return ModePlain
	}
	info, err := file.Stat()
	if err != nil {
		return ModePlain
	}
	if info.Mode()&os.ModeCharDevice == 0 {
		return ModePlain
	}
	if runtime.GOOS != "windows" {
		term := os.Getenv("TERM")
		if term == "" || strings.EqualFold(term, "dumb") {
			return ModePlain
		}
	}
	return ModeTUI
}
