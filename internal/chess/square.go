package chess

// Square is a board index 0..63, file + rank*8 (a1 = 0, h8 = 63).
type Square int8

// NoSquare marks the absence of a square.
const NoSquare Square = -1

// Named squares used by castling and tests.
const (
	A1 Square = 0
	C1 Square = 2
	D1 Square = 3
	E1 Square = 4
	F1 Square = 5
	G1 Square = 6
	H1 Square = 7
	A8 Square = 56
	C8 Square = 58
	D8 Square = 59
	E8 Square = 60
	F8 Square = 61
	G8 Square = 62
	H8 Square = 63
)

// Position is an (x, y) coordinate pair; x is the file and y the rank, both 0..7.
type Position struct {
	X, Y int
}

// InBounds reports whether the position lies on the board.
func (p Position) InBounds() bool {
	return p.X >= 0 && p.X < BoardSize && p.Y >= 0 && p.Y < BoardSize
}

// Square converts the position to a square index. Off-board positions give NoSquare.
func (p Position) Square() Square {
	if !p.InBounds() {
		return NoSquare
	}
	return Square(p.Y*BoardSize + p.X)
}

// NewSquare builds a square from a file and rank, both 0..7.
func NewSquare(file, rank int) Square {
	return Position{X: file, Y: rank}.Square()
}

// File returns the file 0..7.
func (s Square) File() int { return int(s) % BoardSize }

// Rank returns the rank 0..7.
func (s Square) Rank() int { return int(s) / BoardSize }

// Position converts the square to an (x, y) pair.
func (s Square) Position() Position {
	return Position{X: s.File(), Y: s.Rank()}
}

// Valid reports whether s is a board square.
func (s Square) Valid() bool {
	return s >= 0 && s < NumSquares
}

// Bit returns the single-bit mask of s.
func (s Square) Bit() uint64 {
	return 1 << uint(s)
}

// String returns the algebraic name of the square, e.g. "e4".
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(ColBase + s.File()), byte(RankBase + s.Rank())})
}

// ParseSquare parses an algebraic square name such as "e4".
func ParseSquare(text string) (Square, bool) {
	if len(text) != 2 {
		return NoSquare, false
	}
	file := int(text[0]) - ColBase
	rank := int(text[1]) - RankBase
	sq := NewSquare(file, rank)
	return sq, sq != NoSquare
}
