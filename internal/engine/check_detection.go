package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// IsCheck reports whether the side to move is in check.
func (g *Game) IsCheck() bool {
	if !g.valid {
		return false
	}
	kingSq := g.board.SquareOf(g.players.Active().KingID)
	return g.board.IsCoveredBy(kingSq, g.players.Passive().Colour)
}

// findPinned records, for every friendly piece that alone stands between its
// king and an enemy slider able to move along that line, the direction from
// the king to the piece.
func (g *Game) findPinned() {
	g.pinned = [NumIDs]chess.Direction{}
	if !g.valid {
		return
	}
	colour := g.players.Active().Colour
	kingSq := g.board.SquareOf(g.players.Active().KingID)

	for _, d := range chess.Lines {
		candidate := NoID
		sq := kingSq
		for n := chess.Steps(kingSq, d); n > 0; n-- {
			sq += d.Delta()
			p := g.board.At(sq)
			if p.IsEmpty() {
				continue
			}
			if p.IsAlly(colour) {
				if candidate != NoID {
					break
				}
				candidate = p.ID
				continue
			}
			if candidate != NoID && slidesAlong(p.Piece, d) {
				g.pinned[candidate] = d
			}
			break
		}
	}
}

// slidesAlong reports whether a piece of kind p attacks along d.
func slidesAlong(p chess.Piece, d chess.Direction) bool {
	switch p {
	case chess.Queen:
		return true
	case chess.Rook:
		return d.IsOrthogonal()
	case chess.Bishop:
		return d.IsDiagonal()
	}
	return false
}

// enPassantExposesKing reports whether taking en passant from `from` would
// open the king's rank to an enemy rook or queen. Both pawns leave the rank,
// which the pin scan cannot see.
func (g *Game) enPassantExposesKing(from, victim chess.Square) bool {
	colour := g.players.Active().Colour
	kingSq := g.board.SquareOf(g.players.Active().KingID)
	if kingSq.Rank() != from.Rank() {
		return false
	}

	d := chess.East
	if from.File() < kingSq.File() {
		d = chess.West
	}
	sq := kingSq
	for n := chess.Steps(kingSq, d); n > 0; n-- {
		sq += d.Delta()
		if sq == from || sq == victim {
			continue
		}
		p := g.board.At(sq)
		if p.IsEmpty() {
			continue
		}
		if p.IsAlly(colour) {
			return false
		}
		return p.Piece == chess.Rook || p.Piece == chess.Queen
	}
	return false
}
