package chess

// Move is a chess move in coordinate form.
// Promotion is Empty unless a pawn reaches its last rank.
type Move struct {
	From      Square
	To        Square
	Promotion Piece
}

// NullMove is the zero-information move.
var NullMove = Move{From: NoSquare, To: NoSquare}

// IsNull reports whether m is the null move.
func (m Move) IsNull() bool {
	return m.From == NoSquare || m.To == NoSquare
}

// String returns the coordinate form of the move, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	if m.IsNull() {
		return "0000"
	}
	s := m.From.String() + m.To.String()
	if m.Promotion.IsPromotion() {
		s += string(m.Promotion.ColouredLetter(Black))
	}
	return s
}
