package engine

import (
	"github.com/samber/lo"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// ActiveColour returns the side to move.
func (g *Game) ActiveColour() chess.Colour { return g.players.active }

// FullMoveNumber returns the full-move number.
func (g *Game) FullMoveNumber() int { return g.fullMoves }

// HalfMoveClock returns the number of half-moves since the last capture or
// pawn move.
func (g *Game) HalfMoveClock() int { return g.halfMoves }

// MaxHalfMoves returns the configured half-move clock limit.
func (g *Game) MaxHalfMoves() int { return g.maxHalfMoves }

// EnPassantTarget returns the square a pawn may capture onto en passant, or
// chess.NoSquare.
func (g *Game) EnPassantTarget() chess.Square { return g.enPassant }

// Castles returns the castling rights of colour c.
func (g *Game) Castles(c chess.Colour) Castles {
	return g.players.Get(c).Castles
}

// HasEnded reports whether the game is over.
func (g *Game) HasEnded() bool { return g.ended }

// EndState returns how the game ended, EndNone while it is running.
func (g *Game) EndState() EndState { return g.endState }

// MoveFormat returns the notation used by the string accessors.
func (g *Game) MoveFormat() MoveFormat { return g.format }

// SetMoveFormat changes the notation used by the string accessors.
func (g *Game) SetMoveFormat(f MoveFormat) { g.format = f }

// PieceAt returns the tile on sq.
func (g *Game) PieceAt(sq chess.Square) chess.Tile {
	p := g.board.At(sq)
	return chess.Tile{Square: sq, Piece: p.Piece, Colour: p.Colour()}
}

// LegalMoves returns every legal move of the side to move.
func (g *Game) LegalMoves() []chess.Move {
	return lo.Map(g.legal, func(c MoveCode, _ int) chess.Move {
		return c.Move()
	})
}

// LegalMovesFrom returns the legal moves starting on sq.
func (g *Game) LegalMovesFrom(sq chess.Square) []chess.Move {
	return lo.FilterMap(g.legal, func(c MoveCode, _ int) (chess.Move, bool) {
		return c.Move(), c.From() == sq
	})
}

// LegalTargetsFrom returns the destinations reachable from sq, each once even
// when several promotions lead there.
func (g *Game) LegalTargetsFrom(sq chess.Square) []chess.Square {
	return lo.Uniq(lo.FilterMap(g.legal, func(c MoveCode, _ int) (chess.Square, bool) {
		return c.To(), c.From() == sq
	}))
}

// LegalMoveStrings returns the legal moves in the configured notation.
func (g *Game) LegalMoveStrings() []string {
	return lo.Map(g.legal, func(c MoveCode, _ int) string {
		return FormatMove(c.Move(), g.format)
	})
}

// AllTiles returns every occupied square.
func (g *Game) AllTiles() []chess.Tile {
	tiles := make([]chess.Tile, 0, NumIDs)
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		if !g.board.IsEmpty(sq) {
			tiles = append(tiles, g.PieceAt(sq))
		}
	}
	return tiles
}

// NewTiles returns the squares changed by the last move with their new
// contents, or nil before the first move.
func (g *Game) NewTiles() []chess.Tile {
	d, ok := g.lastDelta()
	if !ok {
		return nil
	}
	m := d.Move
	tiles := []chess.Tile{g.PieceAt(m.From), g.PieceAt(m.To)}
	if d.EnPassant {
		tiles = append(tiles, g.PieceAt(enPassantVictim(m)))
	}
	if d.IsCastle() {
		rookFrom, rookTo := castleRookSquares(m.From, d.KingSide)
		tiles = append(tiles, g.PieceAt(rookFrom), g.PieceAt(rookTo))
	}
	return tiles
}

// ReverseNewTiles returns the same squares as NewTiles with the contents
// they had before the last move, for animating an undo.
func (g *Game) ReverseNewTiles() []chess.Tile {
	d, ok := g.lastDelta()
	if !ok {
		return nil
	}
	m := d.Move
	mover := g.PieceAt(m.To)
	if m.Promotion.IsPromotion() {
		mover.Piece = chess.Pawn
	}
	mover.Square = m.From

	captured := chess.Tile{Square: m.To, Piece: d.Captured.Piece, Colour: d.Captured.Colour()}
	if d.EnPassant {
		captured.Square = enPassantVictim(m)
	}
	tiles := []chess.Tile{mover, captured}
	if d.EnPassant {
		tiles = append(tiles, chess.Tile{Square: m.To, Piece: chess.Empty})
	}
	if d.IsCastle() {
		rookFrom, rookTo := castleRookSquares(m.From, d.KingSide)
		rook := g.PieceAt(rookTo)
		rook.Square = rookFrom
		tiles = append(tiles, rook, chess.Tile{Square: rookTo, Piece: chess.Empty})
	}
	return tiles
}

func (g *Game) lastDelta() (Delta, bool) {
	if len(g.history) == 0 {
		return Delta{}, false
	}
	return g.history[len(g.history)-1], true
}

// LastMove returns the most recent move. ok is false before the first move.
func (g *Game) LastMove() (m chess.Move, ok bool) {
	d, ok := g.lastDelta()
	return d.Move, ok
}

// LastMoveString returns the most recent move in the configured notation,
// or "" before the first move.
func (g *Game) LastMoveString() string {
	m, ok := g.LastMove()
	if !ok {
		return ""
	}
	return FormatMove(m, g.format)
}

// History returns the moves played so far, oldest first.
func (g *Game) History() []chess.Move {
	return lo.Map(g.history, func(d Delta, _ int) chess.Move {
		return d.Move
	})
}

// HistoryStrings returns the moves played so far in the configured notation.
func (g *Game) HistoryStrings() []string {
	return lo.Map(g.history, func(d Delta, _ int) string {
		return FormatMove(d.Move, g.format)
	})
}

// Deltas returns a copy of the move records, oldest first.
func (g *Game) Deltas() []Delta {
	return append([]Delta(nil), g.history...)
}
