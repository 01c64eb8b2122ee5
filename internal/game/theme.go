package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"fianchetto/internal/mesh"
)

// Theme holds the board palette and marker tuning. Colours are float
// channels in [0, 1] so they can feed vertex colours directly.
type Theme struct {
	LightSquare mesh.RGBA `yaml:"light_square"`
	DarkSquare  mesh.RGBA `yaml:"dark_square"`
	Background  mesh.RGBA `yaml:"background"`
	Selection   mesh.RGBA `yaml:"selection"`
	MoveDot     mesh.RGBA `yaml:"move_dot"`
	CaptureMark mesh.RGBA `yaml:"capture_mark"`
	WhitePiece  mesh.RGBA `yaml:"white_piece"`
	BlackPiece  mesh.RGBA `yaml:"black_piece"`

	Markers MarkerTuning `yaml:"markers"`
}

// MarkerTuning overrides the default marker geometry. Zero fields keep
// the built-in values.
type MarkerTuning struct {
	DotRadius     float32 `yaml:"dot_radius"`
	TriangleSize  float32 `yaml:"triangle_size"`
	AlphaBoost    float32 `yaml:"alpha_boost"`
	MinSlices     int     `yaml:"min_slices"`
	MaxSlices     int     `yaml:"max_slices"`
	SlicesPerZoom float32 `yaml:"slices_per_zoom"`
}

// DefaultTheme returns the built-in palette.
func DefaultTheme() Theme {
	return Theme{
		LightSquare: mesh.RGBA{R: 0.87, G: 0.82, B: 0.70, A: 1},
		DarkSquare:  mesh.RGBA{R: 0.48, G: 0.38, B: 0.28, A: 1},
		Background:  mesh.RGBA{R: 0.10, G: 0.10, B: 0.12, A: 1},
		Selection:   mesh.RGBA{R: 0.95, G: 0.85, B: 0.25, A: 0.45},
		MoveDot:     mesh.RGBA{R: 0.15, G: 0.55, B: 0.25, A: 0.5},
		CaptureMark: mesh.RGBA{R: 0.75, G: 0.15, B: 0.10, A: 0.5},
		WhitePiece:  mesh.RGBA{R: 0.95, G: 0.95, B: 0.92, A: 1},
		BlackPiece:  mesh.RGBA{R: 0.12, G: 0.12, B: 0.14, A: 1},
	}
}

// LoadTheme reads a YAML theme file over the default palette, so a
// partial file only overrides the keys it names.
func LoadTheme(path string) (Theme, error) {
	t := DefaultTheme()
	data, err := os.ReadFile(path) // #nosec G304 -- path is an operator-supplied flag
	if err != nil {
		return t, fmt.Errorf("read theme: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("parse theme %s: %w", path, err)
	}
	return t, nil
}

// MarkerConfig resolves the theme's marker tuning against the mesh
// defaults.
func (t Theme) MarkerConfig() mesh.MarkerConfig {
	cfg := mesh.DefaultMarkerConfig()
	if t.Markers.DotRadius > 0 {
		cfg.DotRadius = t.Markers.DotRadius
	}
	if t.Markers.TriangleSize > 0 {
		cfg.TriangleSize = t.Markers.TriangleSize
	}
	if t.Markers.AlphaBoost > 0 {
		cfg.AlphaBoost = t.Markers.AlphaBoost
	}
	if t.Markers.MinSlices > 0 {
		cfg.MinSlices = t.Markers.MinSlices
	}
	if t.Markers.MaxSlices > 0 {
		cfg.MaxSlices = t.Markers.MaxSlices
	}
	if t.Markers.SlicesPerZoom > 0 {
		cfg.SlicesPerZoom = t.Markers.SlicesPerZoom
	}
	return cfg
}
