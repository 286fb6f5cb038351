package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), FileName))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Version != 1 {
		t.Fatalf("expected version 1, got %d", cfg.Version)
	}
	if !cfg.Stardrop.ShortcutValue() {
		t.Fatalf("expected shortcut on by default")
	}
	if cfg.GamePath != "" {
		t.Fatalf("expected empty game path, got %q", cfg.GamePath)
	}
}

func TestLoadParsesYAML(t *testing.T) {
	contents := `
game_path: "D:\\Steam\\steamapps\\common\\Stardew Valley"
smapi:
  auto_confirm: true
stardrop:
  reextract: true
  shortcut: false
`
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GamePath != `D:\Steam\steamapps\common\Stardew Valley` {
		t.Fatalf("unexpected game path %q", cfg.GamePath)
	}
	if !cfg.SMAPI.AutoConfirm {
		t.Fatalf("expected auto_confirm true")
	}
	if !cfg.Stardrop.Reextract {
		t.Fatalf("expected reextract true")
	}
	if cfg.Stardrop.ShortcutValue() {
		t.Fatalf("expected shortcut disabled")
	}
	if cfg.Version != 1 {
		t.Fatalf("expected defaulted version, got %d", cfg.Version)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte("game_path: [broken"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.GamePath = "/games/stardew"
	cfg.Mods.Force = true

	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.GamePath != cfg.GamePath {
		t.Fatalf("game path lost: %q", loaded.GamePath)
	}
	if !loaded.Mods.Force {
		t.Fatalf("mods force flag lost")
	}
}

func TestShortcutValueDefaultsTrue(t *testing.T) {
	var sc StardropConfig
	if !sc.ShortcutValue() {
		t.Fatalf("nil shortcut should default to true")
	}
	off := false
	sc.Shortcut = &off
	if sc.ShortcutValue() {
		t.Fatalf("explicit false must win")
	}
}
