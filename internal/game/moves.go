package game

// Move is one legal move in a position.
type Move struct {
	From      Square
	To        Square
	Capture   bool      // includes en passant
	EnPassant bool      // capture lands behind the taken pawn
	Castle    bool      // king two-step; rook hop implied
	Promotion PieceType // NoPiece unless a pawn reaches the far rank
}

var knightOffsets = [8][2]int{
	{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
}

var kingOffsets = [8][2]int{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

var bishopDirs = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
var rookDirs = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// SquareAttacked reports whether sq is attacked by any piece of the
// given side. Sliding rays run to the board edge, which matters on
// giant boards where a rook can strike from hundreds of squares away.
func (b *Board) SquareAttacked(sq Square, by PieceColor) bool {
	for _, o := range knightOffsets {
		p := b.At(Square{sq.Col + o[0], sq.Row + o[1]})
		if p.Type == Knight && p.Color == by {
			return true
		}
	}
	for _, o := range kingOffsets {
		p := b.At(Square{sq.Col + o[0], sq.Row + o[1]})
		if p.Type == King && p.Color == by {
			return true
		}
	}
	// Pawns attack diagonally forward, so from sq's point of view the
	// attacker sits one row back along its own advance direction.
	pr := sq.Row - pawnDir(by)
	for _, dc := range [2]int{-1, 1} {
		p := b.At(Square{sq.Col + dc, pr})
		if p.Type == Pawn && p.Color == by {
			return true
		}
	}
	for _, d := range bishopDirs {
		if t := b.firstAlong(sq, d[0], d[1]); t.Color == by && (t.Type == Bishop || t.Type == Queen) {
			return true
		}
	}
	for _, d := range rookDirs {
		if t := b.firstAlong(sq, d[0], d[1]); t.Color == by && (t.Type == Rook || t.Type == Queen) {
			return true
		}
	}
	return false
}

// firstAlong returns the first piece met walking from sq in the given
// direction, or the empty piece if the ray exits the board.
func (b *Board) firstAlong(sq Square, dc, dr int) Piece {
	c, r := sq.Col+dc, sq.Row+dr
	for b.inBounds(Square{c, r}) {
		p := b.squares[r*b.Cols+c]
		if !p.IsEmpty() {
			return p
		}
		c += dc
		r += dr
	}
	return Piece{}
}

// InCheck reports whether the given side's king is attacked.
func (b *Board) InCheck(c PieceColor) bool {
	k, ok := b.KingSquare(c)
	if !ok {
		return false
	}
	return b.SquareAttacked(k, c.Opponent())
}

// LegalMoves returns every legal move for the piece on from. Empty
// squares and opposing pieces yield nil. The result drives both play
// and the legal-move overlay markers.
func (b *Board) LegalMoves(from Square) []Move {
	p := b.At(from)
	if p.IsEmpty() || p.Color != b.Turn {
		return nil
	}
	pseudo := b.pseudoMoves(from, p)
	legal := pseudo[:0]
	for _, m := range pseudo {
		cp := b.clone()
		cp.applyUnchecked(m)
		if !cp.InCheck(p.Color) {
			legal = append(legal, m)
		}
	}
	return legal
}

// pseudoMoves generates moves without king-safety filtering.
func (b *Board) pseudoMoves(from Square, p Piece) []Move {
	var out []Move
	switch p.Type {
	case Pawn:
		out = b.pawnMoves(from, p.Color)
	case Knight:
		for _, o := range knightOffsets {
			out = b.appendStep(out, from, Square{from.Col + o[0], from.Row + o[1]}, p.Color)
		}
	case King:
		for _, o := range kingOffsets {
			out = b.appendStep(out, from, Square{from.Col + o[0], from.Row + o[1]}, p.Color)
		}
		out = b.appendCastles(out, from, p.Color)
	case Bishop:
		out = b.slideMoves(out, from, p.Color, bishopDirs[:])
	case Rook:
		out = b.slideMoves(out, from, p.Color, rookDirs[:])
	case Queen:
		out = b.slideMoves(out, from, p.Color, bishopDirs[:])
		out = b.slideMoves(out, from, p.Color, rookDirs[:])
	}
	return out
}

// appendStep adds a single-square move if the target is on-board and
// not blocked by a friendly piece.
func (b *Board) appendStep(out []Move, from, to Square, c PieceColor) []Move {
	if !b.inBounds(to) {
		return out
	}
	t := b.At(to)
	if !t.IsEmpty() && t.Color == c {
		return out
	}
	return append(out, Move{From: from, To: to, Capture: !t.IsEmpty()})
}

// slideMoves walks each direction until a blocker or the board edge.
func (b *Board) slideMoves(out []Move, from Square, c PieceColor, dirs [][2]int) []Move {
	for _, d := range dirs {
		to := Square{from.Col + d[0], from.Row + d[1]}
		for b.inBounds(to) {
			t := b.At(to)
			if t.IsEmpty() {
				out = append(out, Move{From: from, To: to})
			} else {
				if t.Color != c {
					out = append(out, Move{From: from, To: to, Capture: true})
				}
				break
			}
			to = Square{to.Col + d[0], to.Row + d[1]}
		}
	}
	return out
}

// pawnMoves handles pushes, double pushes, captures, en passant and
// promotion tagging.
func (b *Board) pawnMoves(from Square, c PieceColor) []Move {
	var out []Move
	dir := pawnDir(c)
	promoRow := b.promotionRow(c)

	tag := func(m Move) Move {
		if m.To.Row == promoRow {
			m.Promotion = Queen
		}
		return m
	}

	one := Square{from.Col, from.Row + dir}
	if b.inBounds(one) && b.At(one).IsEmpty() {
		out = append(out, tag(Move{From: from, To: one}))
		two := Square{from.Col, from.Row + 2*dir}
		if from.Row == b.pawnHomeRow(c) && b.inBounds(two) && b.At(two).IsEmpty() {
			out = append(out, Move{From: from, To: two})
		}
	}
	for _, dc := range [2]int{-1, 1} {
		to := Square{from.Col + dc, from.Row + dir}
		if !b.inBounds(to) {
			continue
		}
		t := b.At(to)
		if !t.IsEmpty() && t.Color != c {
			out = append(out, tag(Move{From: from, To: to, Capture: true}))
		} else if b.epValid && to == b.epSquare {
			out = append(out, Move{From: from, To: to, Capture: true, EnPassant: true})
		}
	}
	return out
}

// appendCastles adds kingside/queenside castling on the classic board.
func (b *Board) appendCastles(out []Move, from Square, c PieceColor) []Move {
	if !b.IsClassic() || b.kingMoved[c] || b.InCheck(c) {
		return out
	}
	row := from.Row
	if from.Col != 4 {
		return out
	}
	enemy := c.Opponent()
	// Kingside: f and g empty, neither attacked, h-rook unmoved.
	if !b.rookHMoved[c] && b.At(Square{7, row}) == (Piece{Rook, c}) &&
		b.At(Square{5, row}).IsEmpty() && b.At(Square{6, row}).IsEmpty() &&
		!b.SquareAttacked(Square{5, row}, enemy) && !b.SquareAttacked(Square{6, row}, enemy) {
		out = append(out, Move{From: from, To: Square{6, row}, Castle: true})
	}
	// Queenside: b, c and d empty, c and d not attacked, a-rook unmoved.
	if !b.rookAMoved[c] && b.At(Square{0, row}) == (Piece{Rook, c}) &&
		b.At(Square{1, row}).IsEmpty() && b.At(Square{2, row}).IsEmpty() && b.At(Square{3, row}).IsEmpty() &&
		!b.SquareAttacked(Square{2, row}, enemy) && !b.SquareAttacked(Square{3, row}, enemy) {
		out = append(out, Move{From: from, To: Square{2, row}, Castle: true})
	}
	return out
}

// ApplyMove plays a move, updating turn, castling rights, the en
// passant target and the move counters. The move must come from
// LegalMoves; illegal input is the caller's bug.
func (b *Board) ApplyMove(m Move) {
	mover := b.At(m.From)
	b.applyUnchecked(m)
	// Counters.
	if mover.Type == Pawn || m.Capture {
		b.halfmoveClock = 0
	} else {
		b.halfmoveClock++
	}
	if mover.Color == Black {
		b.fullmove++
	}
	b.Turn = b.Turn.Opponent()
}

// applyUnchecked mutates the position without touching turn or
// counters; used both by ApplyMove and by legality probing.
func (b *Board) applyUnchecked(m Move) {
	p := b.At(m.From)
	b.set(m.From, Piece{})
	if m.EnPassant {
		b.set(Square{m.To.Col, m.From.Row}, Piece{})
	}
	if m.Promotion != NoPiece {
		p = Piece{m.Promotion, p.Color}
	}
	b.set(m.To, p)

	if m.Castle {
		row := m.From.Row
		if m.To.Col == 6 { // kingside
			b.set(Square{7, row}, Piece{})
			b.set(Square{5, row}, Piece{Rook, p.Color})
		} else { // queenside
			b.set(Square{0, row}, Piece{})
			b.set(Square{3, row}, Piece{Rook, p.Color})
		}
	}

	// Rights tracking.
	switch p.Type {
	case King:
		b.kingMoved[p.Color] = true
	case Rook:
		if m.From.Col == 0 {
			b.rookAMoved[p.Color] = true
		}
		if m.From.Col == b.Cols-1 {
			b.rookHMoved[p.Color] = true
		}
	}

	// En passant window: open after a double push, closed otherwise.
	b.epValid = false
	if p.Type == Pawn && abs(m.To.Row-m.From.Row) == 2 {
		b.epValid = true
		b.epSquare = Square{m.From.Col, (m.From.Row + m.To.Row) / 2}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
