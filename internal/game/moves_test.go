package game

import "testing"

// emptyBoard builds an 8x8 board with only the two kings placed, for
// constructing test positions.
func emptyBoard() *Board {
	b := NewClassicBoard()
	b.squares = make([]Piece, 64)
	b.set(Square{4, 0}, Piece{King, White})
	b.set(Square{4, 7}, Piece{King, Black})
	b.kingMoved = [2]bool{true, true}
	return b
}

func hasMoveTo(moves []Move, to Square) bool {
	for _, m := range moves {
		if m.To == to {
			return true
		}
	}
	return false
}

func TestLegalMoves_OpeningKnight(t *testing.T) {
	b := NewClassicBoard()
	moves := b.LegalMoves(Square{1, 0}) // b1 knight
	if len(moves) != 2 {
		t.Fatalf("b1 knight has %d moves, want 2", len(moves))
	}
	if !hasMoveTo(moves, Square{0, 2}) || !hasMoveTo(moves, Square{2, 2}) {
		t.Fatalf("b1 knight moves %v, want a3 and c3", moves)
	}
}

func TestLegalMoves_PawnDoubleStep(t *testing.T) {
	b := NewClassicBoard()
	moves := b.LegalMoves(Square{4, 1}) // e2
	if len(moves) != 2 {
		t.Fatalf("e2 pawn has %d moves, want 2", len(moves))
	}
	if !hasMoveTo(moves, Square{4, 2}) || !hasMoveTo(moves, Square{4, 3}) {
		t.Fatalf("e2 pawn moves %v, want e3 and e4", moves)
	}
}

func TestLegalMoves_WrongSideAndEmpty(t *testing.T) {
	b := NewClassicBoard()
	if m := b.LegalMoves(Square{4, 6}); m != nil {
		t.Fatalf("black pawn movable on white's turn: %v", m)
	}
	if m := b.LegalMoves(Square{4, 4}); m != nil {
		t.Fatalf("empty square produced moves: %v", m)
	}
}

func TestLegalMoves_PinnedPieceCannotMove(t *testing.T) {
	b := emptyBoard()
	b.set(Square{4, 1}, Piece{Rook, White})  // e2, shielding the king
	b.set(Square{4, 5}, Piece{Queen, Black}) // e6, pinning down the e-file
	moves := b.LegalMoves(Square{4, 1})
	// The rook may slide along the pin file but never off it.
	for _, m := range moves {
		if m.To.Col != 4 {
			t.Fatalf("pinned rook allowed to leave the file: %v", m)
		}
	}
	if !hasMoveTo(moves, Square{4, 5}) {
		t.Fatal("pinned rook should still be able to capture the pinner")
	}
}

func TestLegalMoves_MustResolveCheck(t *testing.T) {
	b := emptyBoard()
	b.set(Square{4, 5}, Piece{Rook, Black}) // e6, checking e1
	b.set(Square{0, 1}, Piece{Rook, White}) // a2, can block on e2
	if !b.InCheck(White) {
		t.Fatal("white should be in check")
	}
	moves := b.LegalMoves(Square{0, 1})
	if len(moves) != 1 || moves[0].To != (Square{4, 1}) {
		t.Fatalf("only the e2 block resolves check, got %v", moves)
	}
}

func TestLegalMoves_SlidingBlockedByFriendly(t *testing.T) {
	b := NewClassicBoard()
	if m := b.LegalMoves(Square{2, 0}); len(m) != 0 { // c1 bishop boxed in
		t.Fatalf("boxed-in bishop has moves: %v", m)
	}
}

func TestCastling_Kingside(t *testing.T) {
	b := NewClassicBoard()
	// Clear f1 and g1.
	b.set(Square{5, 0}, Piece{})
	b.set(Square{6, 0}, Piece{})
	moves := b.LegalMoves(Square{4, 0})
	var castle *Move
	for i := range moves {
		if moves[i].Castle {
			castle = &moves[i]
		}
	}
	if castle == nil {
		t.Fatalf("kingside castle missing from %v", moves)
	}
	if castle.To != (Square{6, 0}) {
		t.Fatalf("castle target %v, want g1", castle.To)
	}
	b.ApplyMove(*castle)
	if p := b.At(Square{6, 0}); p.Type != King {
		t.Fatal("king did not land on g1")
	}
	if p := b.At(Square{5, 0}); p.Type != Rook {
		t.Fatal("rook did not hop to f1")
	}
	if p := b.At(Square{7, 0}); !p.IsEmpty() {
		t.Fatal("h1 should be vacated")
	}
}

func TestCastling_BlockedByAttack(t *testing.T) {
	b := emptyBoard()
	b.kingMoved = [2]bool{false, true}
	b.set(Square{7, 0}, Piece{Rook, White})
	b.set(Square{5, 4}, Piece{Rook, Black}) // attacks f1
	moves := b.LegalMoves(Square{4, 0})
	for _, m := range moves {
		if m.Castle {
			t.Fatalf("castling through an attacked square allowed: %v", m)
		}
	}
}

func TestEnPassant_WindowOpensAndCloses(t *testing.T) {
	b := emptyBoard()
	b.set(Square{4, 4}, Piece{Pawn, White}) // e5
	b.set(Square{3, 6}, Piece{Pawn, Black}) // d7
	b.Turn = Black
	b.ApplyMove(Move{From: Square{3, 6}, To: Square{3, 4}}) // d7-d5

	moves := b.LegalMoves(Square{4, 4})
	var ep *Move
	for i := range moves {
		if moves[i].EnPassant {
			ep = &moves[i]
		}
	}
	if ep == nil {
		t.Fatalf("en passant missing from %v", moves)
	}
	if ep.To != (Square{3, 5}) || !ep.Capture {
		t.Fatalf("en passant should capture toward d6, got %v", ep)
	}
	b.ApplyMove(*ep)
	if !b.At(Square{3, 4}).IsEmpty() {
		t.Fatal("captured pawn still on d5")
	}
	if b.epValid {
		t.Fatal("en passant window should close after the reply")
	}
}

func TestPawnPromotion_Tagged(t *testing.T) {
	b := emptyBoard()
	b.set(Square{0, 6}, Piece{Pawn, White}) // a7
	moves := b.LegalMoves(Square{0, 6})
	if len(moves) != 1 {
		t.Fatalf("a7 pawn has %d moves, want 1", len(moves))
	}
	if moves[0].Promotion != Queen {
		t.Fatalf("promotion not tagged: %v", moves[0])
	}
	b.ApplyMove(moves[0])
	if p := b.At(Square{0, 7}); p.Type != Queen || p.Color != White {
		t.Fatalf("a8 holds %v after promotion, want white queen", p)
	}
}

func TestGiantBoard_LongRangeRook(t *testing.T) {
	b := NewGiantBoard(64, 64)
	c0 := (64 - 8) / 2
	r0 := (64 - 8) / 2
	// Lift the a-rook onto the open board.
	b.set(Square{c0, r0}, Piece{})
	b.set(Square{2, 30}, Piece{Rook, White})
	moves := b.LegalMoves(Square{2, 30})
	// Open file and rank: the rook should see all the way to the edges.
	if !hasMoveTo(moves, Square{0, 30}) || !hasMoveTo(moves, Square{63, 30}) {
		t.Fatal("rook should reach both horizontal edges of the giant board")
	}
	if !hasMoveTo(moves, Square{2, 0}) || !hasMoveTo(moves, Square{2, 63}) {
		t.Fatal("rook should reach both vertical edges of the giant board")
	}
}

func TestApplyMove_TurnAndCounters(t *testing.T) {
	b := NewClassicBoard()
	mv := b.LegalMoves(Square{6, 0})[0] // g1 knight
	b.ApplyMove(mv)
	if b.Turn != Black {
		t.Fatal("turn should pass to black")
	}
	if b.halfmoveClock != 1 {
		t.Fatalf("halfmove clock %d after a knight move, want 1", b.halfmoveClock)
	}
	reply := b.LegalMoves(Square{4, 6})[0] // e7 pawn
	b.ApplyMove(reply)
	if b.halfmoveClock != 0 {
		t.Fatal("pawn move should reset the halfmove clock")
	}
	if b.fullmove != 2 {
		t.Fatalf("fullmove %d after black's reply, want 2", b.fullmove)
	}
}
