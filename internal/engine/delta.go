package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Delta records one played move together with everything needed to take it
// back: the captured piece and the state fields the move overwrote.
type Delta struct {
	Move     chess.Move
	Captured UniquePiece // NoPiece when nothing was taken

	// State before the move.
	Castles         [chess.NumColours]Castles
	HalfMoves       int
	EnPassantTarget chess.Square

	KingSide  bool // king castled short
	QueenSide bool // king castled long
	EnPassant bool // pawn took en passant
	Check     bool // the move gave check
}

// IsCapture reports whether the move took a piece.
func (d Delta) IsCapture() bool {
	return !d.Captured.IsEmpty()
}

// IsCastle reports whether the move was a castle.
func (d Delta) IsCastle() bool {
	return d.KingSide || d.QueenSide
}
