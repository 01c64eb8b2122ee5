// Package mesh builds flat, non-indexed triangle vertex buffers for
// board-overlay markers. Buffers are produced fresh on every call,
// carry no identity beyond their contents and are owned by the caller,
// which concatenates them into a GPU-bound draw list.
package mesh

// Vertex layout: position followed by colour, tightly packed.
const (
	// VertexStride is the number of floats per vertex: x, y, r, g, b, a.
	VertexStride = 6
	// TriangleStride is the number of floats per triangle (3 vertices).
	TriangleStride = 3 * VertexStride
)

// RGBA is a float colour, channels conventionally in [0, 1].
type RGBA struct {
	R, G, B, A float32
}

// WithAlphaBoost returns the colour with the boost added to the alpha
// channel. No upper clamp is applied: values past 1.0 pass through and
// saturate downstream, matching the established marker look.
func (c RGBA) WithAlphaBoost(boost float32) RGBA {
	c.A += boost
	return c
}

// Buffer is a flat vertex list: VertexStride floats per vertex, three
// consecutive vertices per triangle. Render order is slice order; no
// indexing or deduplication is used.
type Buffer []float32

// appendVertex appends one position+colour vertex.
func (b *Buffer) appendVertex(x, y float32, c RGBA) {
	*b = append(*b, x, y, c.R, c.G, c.B, c.A)
}

// VertexCount returns the number of whole vertices in the buffer.
func (b Buffer) VertexCount() int {
	return len(b) / VertexStride
}

// TriangleCount returns the number of whole triangles in the buffer.
func (b Buffer) TriangleCount() int {
	return len(b) / TriangleStride
}

// Tile identifies a board square in logical (not render) space.
type Tile struct {
	X, Y int
}
