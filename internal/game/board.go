package game

// Square identifies a board cell in logical space. Col 0 is the a-file,
// Row 0 is white's back rank.
type Square struct {
	Col int
	Row int
}

// squareCenterOffset reconciles the board mesh's origin convention with
// tile-centre rendering: the board mesh places square origins at cell
// centres, so overlay generators shift by this value.
const squareCenterOffset = 0.5

// Board is the authoritative game position. Squares are stored
// row-major: index = row*Cols + col.
type Board struct {
	Cols    int
	Rows    int
	squares []Piece
	Turn    PieceColor

	// Pawn home rows (differ from 1 and Rows-2 on giant boards where
	// the armies sit centred).
	whitePawnRow int
	blackPawnRow int

	// Castling bookkeeping; only meaningful on the classic 8x8 setup.
	kingMoved  [2]bool
	rookAMoved [2]bool // queenside rook
	rookHMoved [2]bool // kingside rook

	// En passant target square, valid only for the reply move.
	epValid  bool
	epSquare Square

	halfmoveClock int
	fullmove      int
}

// NewClassicBoard creates the standard 8x8 starting position.
func NewClassicBoard() *Board {
	return NewGiantBoard(8, 8)
}

// NewGiantBoard creates a cols x rows board with the two standard
// armies placed centred. cols and rows below 8 are raised to 8.
func NewGiantBoard(cols, rows int) *Board {
	if cols < 8 {
		cols = 8
	}
	if rows < 8 {
		rows = 8
	}
	b := &Board{
		Cols:     cols,
		Rows:     rows,
		squares:  make([]Piece, cols*rows),
		Turn:     White,
		fullmove: 1,
	}
	c0 := (cols - 8) / 2
	r0 := (rows - 8) / 2
	backRank := [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for i, t := range backRank {
		b.set(Square{c0 + i, r0}, Piece{t, White})
		b.set(Square{c0 + i, r0 + 7}, Piece{t, Black})
		b.set(Square{c0 + i, r0 + 1}, Piece{Pawn, White})
		b.set(Square{c0 + i, r0 + 6}, Piece{Pawn, Black})
	}
	b.whitePawnRow = r0 + 1
	b.blackPawnRow = r0 + 6
	return b
}

// SquareCenterOffset reports the board's sub-tile alignment value for
// overlay mesh generation.
func (b *Board) SquareCenterOffset() float32 { return squareCenterOffset }

// IsClassic reports whether this is the plain 8x8 setup (the only one
// where castling rights apply).
func (b *Board) IsClassic() bool { return b.Cols == 8 && b.Rows == 8 }

// inBounds returns true if the square is on the board.
func (b *Board) inBounds(s Square) bool {
	return s.Col >= 0 && s.Col < b.Cols && s.Row >= 0 && s.Row < b.Rows
}

// At returns the piece on a square, or the empty piece off-board.
func (b *Board) At(s Square) Piece {
	if !b.inBounds(s) {
		return Piece{}
	}
	return b.squares[s.Row*b.Cols+s.Col]
}

func (b *Board) set(s Square, p Piece) {
	if !b.inBounds(s) {
		return
	}
	b.squares[s.Row*b.Cols+s.Col] = p
}

// clone returns a deep copy for make-and-test legality filtering.
func (b *Board) clone() *Board {
	cp := *b
	cp.squares = make([]Piece, len(b.squares))
	copy(cp.squares, b.squares)
	return &cp
}

// KingSquare returns the square of the given side's king. ok is false
// if the king has been captured (only reachable in test positions).
func (b *Board) KingSquare(c PieceColor) (Square, bool) {
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			p := b.squares[row*b.Cols+col]
			if p.Type == King && p.Color == c {
				return Square{col, row}, true
			}
		}
	}
	return Square{}, false
}

// pawnDir returns the row direction a side's pawns advance in.
func pawnDir(c PieceColor) int {
	if c == White {
		return 1
	}
	return -1
}

// pawnHomeRow returns the double-step home row for a side.
func (b *Board) pawnHomeRow(c PieceColor) int {
	if c == White {
		return b.whitePawnRow
	}
	return b.blackPawnRow
}

// promotionRow returns the row on which a side's pawns promote.
func (b *Board) promotionRow(c PieceColor) int {
	if c == White {
		return b.blackPawnRow + 1 // black's back rank
	}
	return b.whitePawnRow - 1
}
