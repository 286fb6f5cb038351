package cli

import (
	"archive/zip"
	"os"
	"path/filepath"
	"testing"
)

func TestModSourceDirPrefersPlainDirectory(t *testing.T) {
	resDir := t.TempDir()
	plain := filepath.Join(resDir, "Mods")
	if err := os.MkdirAll(filepath.Join(plain, "UIInfoSuite2"), 0o755); err != nil {
		t.Fatalf("mkdir mods: %v", err)
	}

	got, err := modSourceDir(resDir)
	if err != nil {
		t.Fatalf("modSourceDir: %v", err)
	}
	if got != plain {
		t.Fatalf("expected %s, got %s", plain, got)
	}
}

func TestModSourceDirExtractsBundledArchive(t *testing.T) {
	resDir := t.TempDir()
	writeModsArchive(t, filepath.Join(resDir, "Mods-pack.zip"))

	got, err := modSourceDir(resDir)
	if err != nil {
		t.Fatalf("modSourceDir: %v", err)
	}
	if got != filepath.Join(resDir, "Mods") {
		t.Fatalf("unexpected extract dir %s", got)
	}
	if _, err := os.Stat(filepath.Join(got, "UIInfoSuite2", "manifest.json")); err != nil {
		t.Fatalf("expected extracted mod: %v", err)
	}

	// A second call reuses the extracted directory.
	again, err := modSourceDir(resDir)
	if err != nil {
		t.Fatalf("second modSourceDir: %v", err)
	}
	if again != got {
		t.Fatalf("expected %s, got %s", got, again)
	}
}

func TestModSourceDirMissingBundle(t *testing.T) {
	if _, err := modSourceDir(t.TempDir()); err == nil {
		t.Fatalf("expected error without bundled mods")
	}
}

func writeModsArchive(t *testing.T, path string) {
	t.Helper()
	file, err := os.Create(path)
	if err != nil {
		t.Fatalf("create archive: %v", err)
	}
	defer file.Close()

	zw := zip.NewWriter(file)
	w, err := zw.Create("UIInfoSuite2/manifest.json")
	if err != nil {
		t.Fatalf("create entry: %v", err)
	}
	if _, err := w.Write([]byte(`{"Name": "UIInfoSuite2", "Version": "2.3.7"}`)); err != nil {
		t.Fatalf("write entry: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close archive: %v", err)
	}
}
