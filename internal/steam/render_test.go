package steam

import (
	"path/filepath"
	"testing"
)

func TestRenderMods(t *testing.T) {
	game := filepath.Join("C:", "Games", "Stardew Valley")
	got := Render(game, FormatMods)
	want := filepath.Join(game, "Mods")
	if got != want {
		t.Fatalf("expected %s, got %s", want, got)
	}
	// Mods rendering is always game rendering plus one segment.
	if filepath.Dir(got) != Render(game, FormatGame) {
		t.Fatalf("mods path %s does not extend game path", got)
	}
}

func TestRenderLocalized(t *testing.T) {
	game := filepath.Join("C:", "Games", "Stardew Valley")
	got := Render(game, FormatLocalized)
	want := LocalizedPrefix + Render(game, FormatGame)
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestRenderGame(t *testing.T) {
	game := filepath.Join("D:", "Steam", "steamapps", "common", "Stardew Valley")
	if got := Render(game, FormatGame); got != game {
		t.Fatalf("expected %s, got %s", game, got)
	}
}
