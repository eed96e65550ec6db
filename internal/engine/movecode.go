package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// MoveCode packs a move into 16 bits:
//
//	bits 0-5   destination square
//	bits 7-9   promotion field, bit 9 set when promoting
//	bits 10-15 origin square
//
// The zero value is the null move; legal move lists use it to mark entries
// removed during filtering.
type MoveCode uint16

// NullMoveCode is the packed null move.
const NullMoveCode MoveCode = 0

const (
	toMask     = 0x3f
	promoShift = 7
	promoMask  = 0x7
	fromShift  = 10
)

// promotionFields is the single mapping between promotion kinds and the
// three-bit promotion field. Fields 0..3 mean no promotion.
var promotionFields = [8]chess.Piece{
	0b100: chess.Queen,
	0b101: chess.Rook,
	0b110: chess.Bishop,
	0b111: chess.Knight,
}

func promotionField(p chess.Piece) uint16 {
	for field, piece := range promotionFields {
		if piece == p && p != chess.Empty {
			return uint16(field)
		}
	}
	return 0
}

// EncodeMove packs m.
func EncodeMove(m chess.Move) MoveCode {
	if m.IsNull() {
		return NullMoveCode
	}
	return MoveCode(uint16(m.From)<<fromShift |
		promotionField(m.Promotion)<<promoShift |
		uint16(m.To)&toMask)
}

// From returns the origin square.
func (c MoveCode) From() chess.Square {
	return chess.Square(c >> fromShift)
}

// To returns the destination square.
func (c MoveCode) To() chess.Square {
	return chess.Square(c & toMask)
}

// Promotion returns the promotion kind or Empty.
func (c MoveCode) Promotion() chess.Piece {
	return promotionFields[(c>>promoShift)&promoMask]
}

// IsNull reports whether c is the null move.
func (c MoveCode) IsNull() bool {
	return c == NullMoveCode
}

// Move unpacks c.
func (c MoveCode) Move() chess.Move {
	if c.IsNull() {
		return chess.NullMove
	}
	return chess.Move{From: c.From(), To: c.To(), Promotion: c.Promotion()}
}

// String returns the coordinate form of the packed move.
func (c MoveCode) String() string {
	return c.Move().String()
}
