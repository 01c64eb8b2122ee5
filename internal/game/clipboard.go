package game

import "github.com/atotto/clipboard"

// copyPosition puts the current position's FEN on the system
// clipboard and reports the outcome on the HUD.
func (g *Game) copyPosition() {
	fen := g.board.FEN()
	if err := clipboard.WriteAll(fen); err != nil {
		g.status = "clipboard unavailable: " + err.Error()
		return
	}
	g.status = "copied: " + fen
}
