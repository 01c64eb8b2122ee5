package game

import (
	"fmt"
	"strings"
)

// FEN serialises the position in Forsyth-Edwards notation. On giant
// boards the run-length digits simply grow past 8 and ranks beyond the
// classic board are emitted the same way; castling and en passant
// fields degrade to "-" where they cannot be expressed.
func (b *Board) FEN() string {
	var sb strings.Builder
	for row := b.Rows - 1; row >= 0; row-- {
		empty := 0
		for col := 0; col < b.Cols; col++ {
			p := b.At(Square{col, row})
			if p.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				fmt.Fprintf(&sb, "%d", empty)
				empty = 0
			}
			sb.WriteByte(p.FEN())
		}
		if empty > 0 {
			fmt.Fprintf(&sb, "%d", empty)
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}

	if b.Turn == White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	sb.WriteString(b.castlingField())
	sb.WriteByte(' ')
	sb.WriteString(b.enPassantField())
	fmt.Fprintf(&sb, " %d %d", b.halfmoveClock, b.fullmove)
	return sb.String()
}

// castlingField returns the KQkq rights string, "-" if none remain or
// the board is not classic.
func (b *Board) castlingField() string {
	if !b.IsClassic() {
		return "-"
	}
	var f strings.Builder
	if !b.kingMoved[White] {
		if !b.rookHMoved[White] {
			f.WriteByte('K')
		}
		if !b.rookAMoved[White] {
			f.WriteByte('Q')
		}
	}
	if !b.kingMoved[Black] {
		if !b.rookHMoved[Black] {
			f.WriteByte('k')
		}
		if !b.rookAMoved[Black] {
			f.WriteByte('q')
		}
	}
	if f.Len() == 0 {
		return "-"
	}
	return f.String()
}

// enPassantField returns the target square in algebraic notation, "-"
// when no capture is available or the file is past 'z'.
func (b *Board) enPassantField() string {
	if !b.epValid || b.epSquare.Col >= 26 {
		return "-"
	}
	return SquareName(b.epSquare)
}

// SquareName returns algebraic notation for a square ("e4"). Files
// past 'z' fall back to a col/row pair since letters run out.
func SquareName(s Square) string {
	if s.Col < 26 {
		return fmt.Sprintf("%c%d", 'a'+s.Col, s.Row+1)
	}
	return fmt.Sprintf("(%d,%d)", s.Col, s.Row)
}
