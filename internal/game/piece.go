package game

// PieceType identifies a chess piece kind.
type PieceType uint8

const (
	NoPiece PieceType = iota // empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	pieceTypeCount // sentinel
)

// PieceColor identifies the owning side.
type PieceColor uint8

const (
	White PieceColor = iota
	Black
)

// Opponent returns the other side.
func (c PieceColor) Opponent() PieceColor {
	if c == White {
		return Black
	}
	return White
}

// Piece is one occupant of a board square. The zero value is an empty
// square.
type Piece struct {
	Type  PieceType
	Color PieceColor
}

// IsEmpty returns true for the zero piece.
func (p Piece) IsEmpty() bool { return p.Type == NoPiece }

// fenLetter returns the FEN letter for a piece type (lowercase).
func fenLetter(t PieceType) byte {
	switch t {
	case Pawn:
		return 'p'
	case Knight:
		return 'n'
	case Bishop:
		return 'b'
	case Rook:
		return 'r'
	case Queen:
		return 'q'
	case King:
		return 'k'
	default:
		return '?'
	}
}

// FEN returns the single-letter FEN notation for the piece, uppercase
// for white.
func (p Piece) FEN() byte {
	l := fenLetter(p.Type)
	if p.Color == White && l >= 'a' && l <= 'z' {
		l -= 'a' - 'A'
	}
	return l
}

// pieceName returns a human-readable name for HUD text.
func pieceName(t PieceType) string {
	switch t {
	case Pawn:
		return "pawn"
	case Knight:
		return "knight"
	case Bishop:
		return "bishop"
	case Rook:
		return "rook"
	case Queen:
		return "queen"
	case King:
		return "king"
	default:
		return "empty"
	}
}
