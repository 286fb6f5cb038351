package stardrop

import (
	"archive/zip"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func writeStardropArchive(t *testing.T, resourceDir string) {
	t.Helper()
	file, err := os.Create(filepath.Join(resourceDir, "Stardrop-win-x64.zip"))
	if err != nil {
		t.Fatalf("create archive: %v", err)
	}
	defer file.Close()

	zw := zip.NewWriter(file)
	for _, name := range []string{"Stardrop.exe", "Stardrop", "libSkiaSharp.dll"} {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create entry %s: %v", name, err)
		}
		if _, err := w.Write([]byte("bin")); err != nil {
			t.Fatalf("write entry %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close archive: %v", err)
	}
}

func TestInstallExtracts(t *testing.T) {
	resourceDir := t.TempDir()
	writeStardropArchive(t, resourceDir)
	destDir := filepath.Join(t.TempDir(), "Stardrop")

	res, err := Install(resourceDir, destDir, Options{})
	if err != nil {
		t.Fatalf("Install: %v", err)
	}
	if !res.Extracted {
		t.Fatalf("expected extraction on first install")
	}
	if !Installed(destDir) {
		t.Fatalf("expected install dir to exist")
	}
	if _, err := os.Stat(filepath.Join(destDir, "Stardrop.exe")); err != nil {
		t.Fatalf("expected extracted executable: %v", err)
	}
}

func TestInstallSkipsExisting(t *testing.T) {
	resourceDir := t.TempDir()
	writeStardropArchive(t, resourceDir)
	destDir := filepath.Join(t.TempDir(), "Stardrop")

	if _, err := Install(resourceDir, destDir, Options{}); err != nil {
		t.Fatalf("first Install: %v", err)
	}
	marker := filepath.Join(destDir, "user-settings.json")
	if err := os.WriteFile(marker, []byte("{}"), 0o644); err != nil {
		t.Fatalf("write marker: %v", err)
	}

	res, err := Install(resourceDir, destDir, Options{})
	if err != nil {
		t.Fatalf("second Install: %v", err)
	}
	if res.Extracted {
		t.Fatalf("existing install must be skipped")
	}
	if _, err := os.Stat(marker); err != nil {
		t.Fatalf("user file must survive a skipped install: %v", err)
	}
}

func TestInstallReextractReplaces(t *testing.T) {
	resourceDir := t.TempDir()
	writeStardropArchive(t, resourceDir)
	destDir := filepath.Join(t.TempDir(), "Stardrop")

	if _, err := Install(resourceDir, destDir, Options{}); err != nil {
		t.Fatalf("first Install: %v", err)
	}
	marker := filepath.Join(destDir, "stale.tmp")
	if err := os.WriteFile(marker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write marker: %v", err)
	}

	res, err := Install(resourceDir, destDir, Options{Reextract: true})
	if err != nil {
		t.Fatalf("reextract Install: %v", err)
	}
	if !res.Extracted {
		t.Fatalf("expected a fresh extraction")
	}
	if _, err := os.Stat(marker); !os.IsNotExist(err) {
		t.Fatalf("stale file must be gone, got %v", err)
	}
}

func TestInstallMissingArchive(t *testing.T) {
	destDir := filepath.Join(t.TempDir(), "Stardrop")
	if _, err := Install(t.TempDir(), destDir, Options{}); err == nil {
		t.Fatalf("expected missing archive error")
	}
}

func TestInstallShortcutNoteOnUnsupportedPlatform(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shortcut creation is real on windows")
	}
	resourceDir := t.TempDir()
	writeStardropArchive(t, resourceDir)
	destDir := filepath.Join(t.TempDir(), "Stardrop")

	res, err := Install(resourceDir, destDir, Options{Shortcut: true})
	if err != nil {
		t.Fatalf("Install: %v", err)
	}
	if res.ShortcutCreated {
		t.Fatalf("shortcut cannot be created here")
	}
	if res.ShortcutNote == "" {
		t.Fatalf("expected an explanatory note")
	}
}
