// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
	NumColours
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a chess piece kind. Colour is carried separately.
type Piece int

const (
	Empty Piece = iota // Empty square
	King
	Queen
	Bishop
	Knight
	Rook
	Pawn
	NumPieceValues
)

// String returns the string representation of a piece.
func (p Piece) String() string {
	names := []string{"Empty", "King", "Queen", "Bishop", "Knight", "Rook", "Pawn"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'K', 'Q', 'B', 'N', 'R', 'P'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// ColouredLetter returns the FEN letter of a piece: uppercase for White,
// lowercase for Black.
func (p Piece) ColouredLetter(c Colour) byte {
	l := p.Letter()
	if c == Black && l >= 'A' && l <= 'Z' {
		l += 'a' - 'A'
	}
	return l
}

// PieceFromLetter converts a FEN piece letter to a piece and its colour.
// ok is false for anything that is not one of "KQBNRPkqbnrp".
func PieceFromLetter(c byte) (piece Piece, colour Colour, ok bool) {
	colour = White
	if c >= 'a' && c <= 'z' {
		colour = Black
		c -= 'a' - 'A'
	}
	switch c {
	case 'K':
		return King, colour, true
	case 'Q':
		return Queen, colour, true
	case 'B':
		return Bishop, colour, true
	case 'N':
		return Knight, colour, true
	case 'R':
		return Rook, colour, true
	case 'P':
		return Pawn, colour, true
	}
	return Empty, White, false
}

// IsPromotion reports whether a pawn may promote to p.
func (p Piece) IsPromotion() bool {
	return p == Queen || p == Rook || p == Bishop || p == Knight
}

// PromotionPieces lists promotion kinds in generation order.
var PromotionPieces = [4]Piece{Queen, Rook, Bishop, Knight}

// Tile is the content of one square as seen by a renderer.
type Tile struct {
	Square Square
	Piece  Piece
	Colour Colour // meaningless when Piece is Empty
}

// Constants for board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	RankBase = '1'
	ColBase  = 'a'
)
