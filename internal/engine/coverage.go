package engine

import (
	"math/bits"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// InitCoverage computes coverage for every piece from scratch.
func (b *Board) InitCoverage() {
	for id := ID(0); id < NumIDs; id++ {
		b.coverage[id] = 0
		if b.idPiece[id] != chess.Empty {
			b.cover(id)
		}
	}
}

// updateCoverage recomputes every identity whose coverage includes one of
// the touched squares. Callers force the mover's old square into its set
// beforehand so the mover is always refreshed.
func (b *Board) updateCoverage(touched []chess.Square) {
	var mask uint64
	for _, sq := range touched {
		if sq != chess.NoSquare {
			mask |= sq.Bit()
		}
	}
	for id := ID(0); id < NumIDs; id++ {
		if b.coverage[id]&mask != 0 {
			b.coverage[id] = 0
			if b.idPiece[id] != chess.Empty {
				b.cover(id)
			}
		}
	}
}

// cover fills the coverage set of id from its square and kind.
func (b *Board) cover(id ID) {
	sq := b.idSquare[id]
	switch b.idPiece[id] {
	case chess.King:
		b.coverSteps(id, sq, chess.Lines)
	case chess.Knight:
		b.coverSteps(id, sq, chess.KnightLeaps)
	case chess.Queen:
		b.coverRays(id, sq, chess.Lines)
	case chess.Rook:
		b.coverRays(id, sq, chess.Orthogonals)
	case chess.Bishop:
		b.coverRays(id, sq, chess.Diagonals)
	case chess.Pawn:
		if id.Colour() == chess.White {
			b.coverSteps(id, sq, []chess.Direction{chess.NorthEast, chess.NorthWest})
		} else {
			b.coverSteps(id, sq, []chess.Direction{chess.SouthEast, chess.SouthWest})
		}
	}
}

func (b *Board) coverSteps(id ID, sq chess.Square, dirs []chess.Direction) {
	for _, d := range dirs {
		if chess.Steps(sq, d) > 0 {
			b.coverage[id] |= (sq + d.Delta()).Bit()
		}
	}
}

// coverRays walks each direction until the first occupied square, which is
// included. The enemy king does not stop the ray.
func (b *Board) coverRays(id ID, sq chess.Square, dirs []chess.Direction) {
	enemyKing := firstID(id.Colour().Opposite())
	for _, d := range dirs {
		t := sq
		for n := chess.Steps(sq, d); n > 0; n-- {
			t += d.Delta()
			b.coverage[id] |= t.Bit()
			if b.squarePiece[t] != chess.Empty && b.squareID[t] != enemyKing {
				break
			}
		}
	}
}

// Coverage returns the set of squares id covers, one bit per square.
func (b *Board) Coverage(id ID) uint64 { return b.coverage[id] }

// Covers reports whether id covers sq.
func (b *Board) Covers(id ID, sq chess.Square) bool {
	return b.coverage[id]&sq.Bit() != 0
}

// IsCovered reports whether any piece covers sq.
func (b *Board) IsCovered(sq chess.Square) bool {
	return b.FirstCoverID(sq) != NoID
}

// IsCoveredBy reports whether a piece of colour c covers sq.
func (b *Board) IsCoveredBy(sq chess.Square, c chess.Colour) bool {
	return b.FirstCoverIDBy(sq, c) != NoID
}

// CoverCount returns how many pieces cover sq.
func (b *Board) CoverCount(sq chess.Square) int {
	return b.CoverCountBy(sq, chess.White) + b.CoverCountBy(sq, chess.Black)
}

// CoverCountBy returns how many pieces of colour c cover sq.
func (b *Board) CoverCountBy(sq chess.Square, c chess.Colour) int {
	n := 0
	start := firstID(c)
	for id := start; id < start+IDsPerColour; id++ {
		n += bits.OnesCount64(b.coverage[id] & sq.Bit())
	}
	return n
}

// FirstCoverID returns the lowest identity covering sq, or NoID.
func (b *Board) FirstCoverID(sq chess.Square) ID {
	if id := b.FirstCoverIDBy(sq, chess.White); id != NoID {
		return id
	}
	return b.FirstCoverIDBy(sq, chess.Black)
}

// FirstCoverIDBy returns the lowest identity of colour c covering sq, or NoID.
func (b *Board) FirstCoverIDBy(sq chess.Square, c chess.Colour) ID {
	start := firstID(c)
	for id := start; id < start+IDsPerColour; id++ {
		if b.coverage[id]&sq.Bit() != 0 {
			return id
		}
	}
	return NoID
}
