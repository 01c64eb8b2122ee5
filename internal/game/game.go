package game

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"fianchetto/internal/mesh"
)

// tileSize is the on-screen pixel size of one square at zoom 1.0.
const tileSize = 72

// Camera zoom bounds. The lower bound keeps thousands of squares in
// view on giant boards; the upper bound is a single-square close-up.
const (
	zoomMin = 0.01
	zoomMax = 14.0
)

// perspectiveSquash is the vertical scale applied to the world buffer
// in perspective mode (affine table-tilt approximation).
const perspectiveSquash = 0.72

// Game is the ebiten client: board state, camera, selection and the
// legal-move marker overlay.
type Game struct {
	width  int
	height int

	board   *Board
	theme   Theme
	markers *mesh.MarkerGen

	// Camera pan + zoom, in board units (1.0 = one square).
	camX    float64 // board-space X of the camera centre
	camY    float64 // board-space Y of the camera centre
	camZoom float64 // zoom factor (1.0 = native square size)

	perspective bool // tilted view; forces max dot tessellation

	// Selection and its legal destinations.
	selected *Square
	legal    []Move

	// Marker geometry cache: board-space flat buffer, rebuilt only
	// when selection, zoom, perspective or the position changes.
	// Panning just re-transforms it.
	markerMesh  mesh.Buffer
	markerDirty bool

	// Scratch slices for the DrawTriangles conversion, reused across
	// frames.
	markerVerts []ebiten.Vertex
	markerIdx   []uint16

	// Offscreen buffer for the board — the perspective transform is
	// applied on blit.
	worldBuf *ebiten.Image
	// 1x1 white source pixel for solid-colour triangles.
	whitePix *ebiten.Image

	prevKeys      map[ebiten.Key]bool
	prevMouseLeft bool

	showHUD bool
	status  string // last action line for the HUD
}

// Options configures a new client.
type Options struct {
	Cols  int // board width; 8 for the classic game
	Rows  int // board height
	Theme Theme
}

func New(opts Options) *Game {
	if opts.Cols == 0 {
		opts.Cols = 8
	}
	if opts.Rows == 0 {
		opts.Rows = 8
	}
	board := NewGiantBoard(opts.Cols, opts.Rows)

	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)

	g := &Game{
		width:    1280,
		height:   860,
		board:    board,
		theme:    opts.Theme,
		markers:  mesh.NewMarkerGen(opts.Theme.MarkerConfig(), board),
		whitePix: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
		prevKeys: make(map[ebiten.Key]bool),
		showHUD:  true,
	}
	g.resetCamera()
	return g
}

// resetCamera centres the view on the armies at a zoom that shows the
// whole classic board comfortably.
func (g *Game) resetCamera() {
	g.camX = float64(g.board.Cols-1) / 2
	g.camY = float64(g.board.Rows-1) / 2
	g.camZoom = float64(g.height) / (10 * tileSize)
	if g.camZoom > zoomMax {
		g.camZoom = zoomMax
	}
	g.markerDirty = true
}

// tilePx returns the current pixel size of one square.
func (g *Game) tilePx() float64 {
	return tileSize * g.camZoom
}

// worldToScreen maps board-space coordinates (square centres on
// integers) to world-buffer pixels. Rows grow upward on the board and
// downward on screen, so Y flips.
func (g *Game) worldToScreen(x, y float32) (float32, float32) {
	px := g.tilePx()
	sx := (float64(x)-g.camX)*px + float64(g.width)/2
	sy := (g.camY-float64(y))*px + float64(g.height)/2
	return float32(sx), float32(sy)
}

// screenToSquare inverts worldToScreen to the containing square.
func (g *Game) screenToSquare(mx, my int) Square {
	px := g.tilePx()
	bx := g.camX + (float64(mx)-float64(g.width)/2)/px
	by := g.camY - (float64(my)-float64(g.height)/2)/px
	return Square{
		Col: int(math.Floor(bx + 0.5)),
		Row: int(math.Floor(by + 0.5)),
	}
}

func (g *Game) Update() error {
	g.handleKeys()
	g.handleMouse()
	if g.markerDirty {
		g.rebuildMarkerMesh()
		g.markerDirty = false
	}
	return nil
}

// keyPressed is edge-triggered: true only on the frame the key goes
// down.
func (g *Game) keyPressed(k ebiten.Key) bool {
	now := ebiten.IsKeyPressed(k)
	was := g.prevKeys[k]
	g.prevKeys[k] = now
	return now && !was
}

func (g *Game) handleKeys() {
	// Pan. Slower when zoomed in so motion feels constant on screen.
	panSpeed := 12.0 / g.tilePx()
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		g.camY += panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		g.camY -= panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		g.camX -= panSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		g.camX += panSpeed
	}

	// Zoom: wheel plus +/- keys.
	oldZoom := g.camZoom
	_, wy := ebiten.Wheel()
	if wy != 0 {
		g.camZoom *= math.Pow(1.12, wy)
	}
	if g.keyPressed(ebiten.KeyEqual) {
		g.camZoom *= 1.25
	}
	if g.keyPressed(ebiten.KeyMinus) {
		g.camZoom /= 1.25
	}
	if g.camZoom < zoomMin {
		g.camZoom = zoomMin
	}
	if g.camZoom > zoomMax {
		g.camZoom = zoomMax
	}
	if g.camZoom != oldZoom {
		// Dot tessellation tracks zoom, so the cached mesh is stale.
		g.markerDirty = true
	}

	if g.keyPressed(ebiten.KeyP) {
		g.perspective = !g.perspective
		g.markerDirty = true
	}
	if g.keyPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if g.keyPressed(ebiten.KeyHome) {
		g.resetCamera()
	}
	if g.keyPressed(ebiten.KeyC) {
		g.copyPosition()
	}
	if g.keyPressed(ebiten.KeyF12) {
		g.saveSnapshot()
	}
	if g.keyPressed(ebiten.KeyR) {
		g.board = NewGiantBoard(g.board.Cols, g.board.Rows)
		g.markers = mesh.NewMarkerGen(g.theme.MarkerConfig(), g.board)
		g.clearSelection()
		g.status = "new game"
	}
}

func (g *Game) handleMouse() {
	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	clicked := down && !g.prevMouseLeft
	g.prevMouseLeft = down
	if !clicked {
		return
	}
	mx, my := ebiten.CursorPosition()
	sq := g.screenToSquare(mx, my)
	if !g.board.inBounds(sq) {
		g.clearSelection()
		return
	}

	// A click on a legal destination plays the move.
	if g.selected != nil {
		for _, m := range g.legal {
			if m.To == sq {
				g.board.ApplyMove(m)
				g.clearSelection()
				g.status = fmt.Sprintf("%s -> %s", SquareName(m.From), SquareName(m.To))
				return
			}
		}
	}

	// Otherwise select a piece of the side to move.
	p := g.board.At(sq)
	if !p.IsEmpty() && p.Color == g.board.Turn {
		s := sq
		g.selected = &s
		g.legal = g.board.LegalMoves(sq)
		g.markerDirty = true
		return
	}
	g.clearSelection()
}

func (g *Game) clearSelection() {
	g.selected = nil
	g.legal = nil
	g.markerDirty = true
}

// rebuildMarkerMesh regenerates the legal-move overlay geometry: a dot
// for quiet destinations, corner triangles for captures. The
// generators emit board-space buffers which are concatenated here and
// transformed at draw time.
func (g *Game) rebuildMarkerMesh() {
	g.markerMesh = g.markerMesh[:0]
	if g.selected == nil {
		return
	}
	zoom := float32(g.camZoom)
	for _, m := range g.legal {
		tile := mesh.Tile{X: m.To.Col, Y: m.To.Row}
		if m.Capture {
			g.markerMesh = append(g.markerMesh, g.markers.LegalMoveCornerTriangles(tile, g.theme.CaptureMark)...)
		} else {
			g.markerMesh = append(g.markerMesh, g.markers.LegalMoveDot(tile, g.theme.MoveDot, zoom, g.perspective)...)
		}
	}
}

// visibleSquares returns the inclusive square range currently in view.
func (g *Game) visibleSquares() (minC, minR, maxC, maxR int) {
	px := g.tilePx()
	halfC := float64(g.width) / 2 / px
	halfR := float64(g.height) / 2 / px
	minC = int(math.Floor(g.camX - halfC))
	maxC = int(math.Ceil(g.camX + halfC))
	minR = int(math.Floor(g.camY - halfR))
	maxR = int(math.Ceil(g.camY + halfR))
	if minC < 0 {
		minC = 0
	}
	if minR < 0 {
		minR = 0
	}
	if maxC > g.board.Cols-1 {
		maxC = g.board.Cols - 1
	}
	if maxR > g.board.Rows-1 {
		maxR = g.board.Rows - 1
	}
	return minC, minR, maxC, maxR
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.worldBuf == nil {
		g.worldBuf = ebiten.NewImage(g.width, g.height)
	}
	g.worldBuf.Fill(toNRGBA(g.theme.Background))

	g.drawBoard(g.worldBuf)
	g.drawSelection(g.worldBuf)
	g.drawMarkers(g.worldBuf)
	g.drawEdgeLabels(g.worldBuf)

	var blit ebiten.DrawImageOptions
	if g.perspective {
		// Affine table tilt: squash vertically around the screen centre.
		blit.GeoM.Translate(0, -float64(g.height)/2)
		blit.GeoM.Scale(1, perspectiveSquash)
		blit.GeoM.Translate(0, float64(g.height)/2)
	}
	screen.DrawImage(g.worldBuf, &blit)

	if g.showHUD {
		g.drawHUD(screen)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	turn := "white"
	if g.board.Turn == Black {
		turn = "black"
	}
	line1 := fmt.Sprintf("%s to move  zoom: %.2fx", turn, g.camZoom)
	if g.perspective {
		line1 += "  [perspective]"
	}
	if g.board.InCheck(g.board.Turn) {
		line1 += "  CHECK"
	}
	ebitenutil.DebugPrintAt(screen, line1, 8, 6)
	if g.selected != nil {
		p := g.board.At(*g.selected)
		ebitenutil.DebugPrintAt(screen,
			fmt.Sprintf("%s %s: %d legal moves (%d marker triangles)",
				turn, pieceName(p.Type), len(g.legal), g.markerMesh.TriangleCount()),
			8, 20)
	}
	if g.status != "" {
		ebitenutil.DebugPrintAt(screen, g.status, 8, 34)
	}
	ebitenutil.DebugPrintAt(screen,
		"wheel/-/= zoom  wasd pan  p perspective  c copy fen  f12 snapshot  r restart  home recentre  h hud",
		8, g.height-18)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
