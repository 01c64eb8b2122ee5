package game

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTheme_MarkerConfigMatchesMeshDefaults(t *testing.T) {
	cfg := DefaultTheme().MarkerConfig()
	if cfg.DotRadius != 0.16 || cfg.TriangleSize != 0.5 || cfg.AlphaBoost != 0.2 {
		t.Fatalf("default marker geometry changed: %+v", cfg)
	}
	if cfg.MinSlices != 5 || cfg.MaxSlices != 32 || cfg.SlicesPerZoom != 28 {
		t.Fatalf("default tessellation bounds changed: %+v", cfg)
	}
}

func TestLoadTheme_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.yaml")
	body := `
move_dot: {r: 1, g: 0.2, b: 0.1, a: 0.4}
markers:
  dot_radius: 0.22
  max_slices: 16
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	th, err := LoadTheme(path)
	if err != nil {
		t.Fatalf("load theme: %v", err)
	}
	if th.MoveDot.R != 1 || th.MoveDot.A != 0.4 {
		t.Fatalf("move_dot not overridden: %+v", th.MoveDot)
	}
	// Untouched keys keep the defaults.
	def := DefaultTheme()
	if th.DarkSquare != def.DarkSquare {
		t.Fatalf("dark_square should stay default, got %+v", th.DarkSquare)
	}
	cfg := th.MarkerConfig()
	if cfg.DotRadius != 0.22 {
		t.Fatalf("dot radius %v, want override 0.22", cfg.DotRadius)
	}
	if cfg.MaxSlices != 16 {
		t.Fatalf("max slices %d, want override 16", cfg.MaxSlices)
	}
	if cfg.MinSlices != 5 || cfg.SlicesPerZoom != 28 {
		t.Fatalf("unrelated tuning drifted: %+v", cfg)
	}
}

func TestLoadTheme_MissingFile(t *testing.T) {
	_, err := LoadTheme(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing theme file")
	}
}

func TestLoadTheme_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("move_dot: ["), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTheme(path); err == nil {
		t.Fatal("expected a parse error")
	}
}
