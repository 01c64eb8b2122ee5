package mesh

import "math"

// BuildCircleMesh triangulates a disc as a fan of `resolution` slices
// around (cx, cy). Each slice is emitted as its own three vertices, so
// the result is resolution*3 vertices in slice order. All vertices
// share the given colour. resolution must be >= 3 for the disc to have
// area; callers clamp before reaching here.
func BuildCircleMesh(cx, cy, radius float32, resolution int, col RGBA) Buffer {
	buf := make(Buffer, 0, resolution*TriangleStride)
	step := 2 * math.Pi / float64(resolution)
	for i := 0; i < resolution; i++ {
		a0 := float64(i) * step
		a1 := float64(i+1) * step
		buf.appendVertex(cx, cy, col)
		buf.appendVertex(cx+radius*float32(math.Cos(a0)), cy+radius*float32(math.Sin(a0)), col)
		buf.appendVertex(cx+radius*float32(math.Cos(a1)), cy+radius*float32(math.Sin(a1)), col)
	}
	return buf
}
