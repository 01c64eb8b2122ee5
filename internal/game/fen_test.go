package game

import (
	"strings"
	"testing"
)

func TestFEN_StartPosition(t *testing.T) {
	b := NewClassicBoard()
	want := "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	if got := b.FEN(); got != want {
		t.Fatalf("start FEN\n got %q\nwant %q", got, want)
	}
}

func TestFEN_AfterDoublePush(t *testing.T) {
	b := NewClassicBoard()
	b.ApplyMove(Move{From: Square{4, 1}, To: Square{4, 3}}) // e2-e4
	want := "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1"
	if got := b.FEN(); got != want {
		t.Fatalf("after e4\n got %q\nwant %q", got, want)
	}
}

func TestFEN_CastlingRightsDecay(t *testing.T) {
	b := NewClassicBoard()
	b.set(Square{5, 0}, Piece{})
	b.set(Square{6, 0}, Piece{})
	b.ApplyMove(Move{From: Square{4, 0}, To: Square{5, 0}}) // Ke1-f1
	fen := b.FEN()
	fields := strings.Fields(fen)
	if len(fields) != 6 {
		t.Fatalf("FEN has %d fields: %q", len(fields), fen)
	}
	if fields[2] != "kq" {
		t.Fatalf("castling field %q after the king move, want kq", fields[2])
	}
}

func TestFEN_GiantBoardRunLengths(t *testing.T) {
	b := NewGiantBoard(32, 8)
	fen := b.FEN()
	fields := strings.Fields(fen)
	// 32-wide board, armies centred: 12 empty, 8 pieces, 12 empty.
	if !strings.HasPrefix(fields[0], "12rnbqkbnr12/") {
		t.Fatalf("giant back rank rendered as %q", strings.SplitN(fields[0], "/", 2)[0])
	}
	if !strings.Contains(fields[0], "/32/") {
		t.Fatal("fully empty giant rank should render as its width")
	}
	if fields[2] != "-" {
		t.Fatalf("giant board castling field %q, want -", fields[2])
	}
}

func TestSquareName(t *testing.T) {
	if n := SquareName(Square{4, 3}); n != "e4" {
		t.Fatalf("got %q, want e4", n)
	}
	if n := SquareName(Square{0, 0}); n != "a1" {
		t.Fatalf("got %q, want a1", n)
	}
	if n := SquareName(Square{30, 2}); n != "(30,2)" {
		t.Fatalf("files past z should fall back to pairs, got %q", n)
	}
}
