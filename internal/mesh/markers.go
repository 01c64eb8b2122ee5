package mesh

import "math"

// OffsetSource reports the board's square-centre offset: the sub-tile
// alignment value reconciling the board mesh's origin convention with
// tile-centre rendering. Read once per generator call.
type OffsetSource interface {
	SquareCenterOffset() float32
}

// FixedOffset is an OffsetSource with a constant value, for tests and
// headless tools that have no board.
type FixedOffset float32

func (f FixedOffset) SquareCenterOffset() float32 { return float32(f) }

// MarkerConfig holds the fixed shape parameters for legal-move markers.
// Values are tile-relative (one square = one unit).
type MarkerConfig struct {
	DotRadius     float32 // radius of the quiet-move dot
	TriangleSize  float32 // side length of each capture corner triangle
	AlphaBoost    float32 // additive alpha lift for marker visibility, uncapped
	MinSlices     int     // tessellation floor for the dot
	MaxSlices     int     // tessellation cap for the dot
	SlicesPerZoom float32 // fan slices per unit of zoom before clamping
}

// DefaultMarkerConfig returns the standard marker tuning.
func DefaultMarkerConfig() MarkerConfig {
	return MarkerConfig{
		DotRadius:     0.16,
		TriangleSize:  0.50,
		AlphaBoost:    0.2,
		MinSlices:     5,
		MaxSlices:     32,
		SlicesPerZoom: 28,
	}
}

// MarkerGen generates legal-move marker meshes. It holds no mutable
// state: every method is a pure function of its arguments, the config
// and the current offset reading, so concurrent calls are safe.
type MarkerGen struct {
	cfg     MarkerConfig
	offsets OffsetSource
}

// NewMarkerGen builds a generator over the given config and board
// offset source.
func NewMarkerGen(cfg MarkerConfig, offsets OffsetSource) *MarkerGen {
	return &MarkerGen{cfg: cfg, offsets: offsets}
}

// Config returns the generator's marker tuning.
func (m *MarkerGen) Config() MarkerConfig { return m.cfg }

// squareCenter maps a tile coordinate to the render-space centre of its
// square. The offset term centres the shape regardless of whether the
// board mesh aligns tile origins to corners or centres.
func (m *MarkerGen) squareCenter(t Tile) (float32, float32) {
	shift := (1 - m.offsets.SquareCenterOffset()) - 0.5
	return float32(t.X) + shift, float32(t.Y) + shift
}

// DotSlices selects the fan resolution for a dot at the given zoom.
// Resolution tracks on-screen size: a bigger visible circle needs more
// slices to read as round, while a tiny one wastes vertices past the
// floor. Perspective projection decouples apparent size from the planar
// zoom metric, so perspective always gets the cap.
func (m *MarkerGen) DotSlices(zoom float32, perspective bool) int {
	if perspective {
		return m.cfg.MaxSlices
	}
	n := int(math.Ceil(float64(m.cfg.SlicesPerZoom * zoom)))
	if n > m.cfg.MaxSlices {
		n = m.cfg.MaxSlices
	}
	if n < m.cfg.MinSlices {
		n = m.cfg.MinSlices
	}
	return n
}

// LegalMoveDot builds the quiet-destination marker: a filled disc
// centred on the square. Output is DotSlices(zoom, perspective)
// triangles; length is always a multiple of TriangleStride.
func (m *MarkerGen) LegalMoveDot(t Tile, col RGBA, zoom float32, perspective bool) Buffer {
	cx, cy := m.squareCenter(t)
	res := m.DotSlices(zoom, perspective)
	return BuildCircleMesh(cx, cy, m.cfg.DotRadius, res, col.WithAlphaBoost(m.cfg.AlphaBoost))
}

// LegalMoveCornerTriangles builds the capture marker: four right
// triangles pointing inward from the square's corners, emitted in the
// order top-left, top-right, bottom-left, bottom-right. Each triangle
// starts at the exact corner, then steps half a triangle side
// horizontally and vertically toward the interior. Always 4 triangles
// (72 floats) — nothing here curves, so zoom never matters.
func (m *MarkerGen) LegalMoveCornerTriangles(t Tile, col RGBA) Buffer {
	cx, cy := m.squareCenter(t)
	c := col.WithAlphaBoost(m.cfg.AlphaBoost)
	const half = 0.5 // unit square half-size
	leg := m.cfg.TriangleSize / 2

	x0, y0 := cx-half, cy-half // top-left corner
	x1, y1 := cx+half, cy+half // bottom-right corner

	buf := make(Buffer, 0, 4*TriangleStride)
	// Top-left.
	buf.appendVertex(x0, y0, c)
	buf.appendVertex(x0+leg, y0, c)
	buf.appendVertex(x0, y0+leg, c)
	// Top-right.
	buf.appendVertex(x1, y0, c)
	buf.appendVertex(x1-leg, y0, c)
	buf.appendVertex(x1, y0+leg, c)
	// Bottom-left.
	buf.appendVertex(x0, y1, c)
	buf.appendVertex(x0+leg, y1, c)
	buf.appendVertex(x0, y1-leg, c)
	// Bottom-right.
	buf.appendVertex(x1, y1, c)
	buf.appendVertex(x1-leg, y1, c)
	buf.appendVertex(x1, y1-leg, c)
	return buf
}
