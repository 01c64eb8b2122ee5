package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"fianchetto/internal/mesh"
)

// toNRGBA converts a float theme colour to an 8-bit colour for the
// rect/circle helpers. Channels are clamped here because uint8
// saturation is not defined for overflowing floats.
func toNRGBA(c mesh.RGBA) color.NRGBA {
	clamp := func(v float32) uint8 {
		if v <= 0 {
			return 0
		}
		if v >= 1 {
			return 255
		}
		return uint8(v * 255)
	}
	return color.NRGBA{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A)}
}

// drawBoard fills the visible squares and pieces. Only the squares in
// view are touched, which keeps giant boards cheap at close zoom.
func (g *Game) drawBoard(dst *ebiten.Image) {
	minC, minR, maxC, maxR := g.visibleSquares()
	px := float32(g.tilePx())
	light := toNRGBA(g.theme.LightSquare)
	dark := toNRGBA(g.theme.DarkSquare)

	for row := minR; row <= maxR; row++ {
		for col := minC; col <= maxC; col++ {
			// Square centres sit on integer coordinates; the top-left
			// corner is half a square up-left of the centre.
			sx, sy := g.worldToScreen(float32(col)-0.5, float32(row)+0.5)
			fill := light
			if (col+row)%2 == 0 {
				fill = dark
			}
			vector.FillRect(dst, sx, sy, px, px, fill, false)

			p := g.board.At(Square{col, row})
			if !p.IsEmpty() {
				g.drawPiece(dst, p, col, row)
			}
		}
	}
}

// drawPiece renders a piece as a filled disc with its FEN letter once
// the square is big enough for text to be readable.
func (g *Game) drawPiece(dst *ebiten.Image, p Piece, col, row int) {
	cx, cy := g.worldToScreen(float32(col), float32(row))
	r := float32(g.tilePx()) * 0.34
	if r < 1 {
		r = 1
	}
	body := g.theme.WhitePiece
	rim := g.theme.BlackPiece
	if p.Color == Black {
		body, rim = rim, body
	}
	vector.FillCircle(dst, cx, cy, r, toNRGBA(body), true)
	if g.tilePx() >= 16 {
		vector.StrokeCircle(dst, cx, cy, r, 1, toNRGBA(rim), true)
	}
	if g.tilePx() >= 28 {
		text.Draw(dst, string(p.FEN()), basicfont.Face7x13, int(cx)-3, int(cy)+4, toNRGBA(rim))
	}
}

// drawSelection highlights the selected square.
func (g *Game) drawSelection(dst *ebiten.Image) {
	if g.selected == nil {
		return
	}
	px := float32(g.tilePx())
	sx, sy := g.worldToScreen(float32(g.selected.Col)-0.5, float32(g.selected.Row)+0.5)
	vector.FillRect(dst, sx, sy, px, px, toNRGBA(g.theme.Selection), false)
}

// drawTriBatch is the vertex cap per DrawTriangles call, kept under
// the uint16 index limit.
const drawTriBatch = 63 * 1024

// drawMarkers transforms the cached board-space marker buffer into
// screen-space ebiten vertices and draws it as one (batched) triangle
// list over a white source pixel.
func (g *Game) drawMarkers(dst *ebiten.Image) {
	if len(g.markerMesh) == 0 {
		return
	}
	g.markerVerts = g.markerVerts[:0]
	g.markerIdx = g.markerIdx[:0]

	opts := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	flush := func() {
		if len(g.markerIdx) == 0 {
			return
		}
		dst.DrawTriangles(g.markerVerts, g.markerIdx, g.whitePix, opts)
		g.markerVerts = g.markerVerts[:0]
		g.markerIdx = g.markerIdx[:0]
	}

	buf := g.markerMesh
	for i := 0; i+mesh.TriangleStride <= len(buf); i += mesh.TriangleStride {
		if len(g.markerVerts)+3 > drawTriBatch {
			flush()
		}
		for v := 0; v < 3; v++ {
			o := i + v*mesh.VertexStride
			sx, sy := g.worldToScreen(buf[o], buf[o+1])
			g.markerIdx = append(g.markerIdx, uint16(len(g.markerVerts)))
			g.markerVerts = append(g.markerVerts, ebiten.Vertex{
				DstX:   sx,
				DstY:   sy,
				SrcX:   1,
				SrcY:   1,
				ColorR: buf[o+2],
				ColorG: buf[o+3],
				ColorB: buf[o+4],
				ColorA: buf[o+5],
			})
		}
	}
	flush()
}

// drawEdgeLabels writes file letters and rank numbers along the edges
// of the visible board region, lichess-style, once squares are big
// enough to carry them.
func (g *Game) drawEdgeLabels(dst *ebiten.Image) {
	if g.tilePx() < 36 {
		return
	}
	minC, minR, maxC, maxR := g.visibleSquares()
	clr := toNRGBA(g.theme.LightSquare)
	for col := minC; col <= maxC && col < 26; col++ {
		sx, sy := g.worldToScreen(float32(col), float32(minR)-0.5)
		label := SquareName(Square{col, 0})[:1]
		text.Draw(dst, label, basicfont.Face7x13, int(sx)-3, int(sy)+14, clr)
	}
	for row := minR; row <= maxR; row++ {
		sx, sy := g.worldToScreen(float32(minC)-0.5, float32(row))
		text.Draw(dst, SquareName(Square{0, row})[1:], basicfont.Face7x13, int(sx)-18, int(sy)+4, clr)
	}
}
