package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// findCastles appends the castles available to the side to move. The king
// may not start in, pass through, or land on a covered square, and every
// square between king and rook must be empty.
func (g *Game) findCastles(kingSq chess.Square) {
	active := g.players.Active()
	if kingSq != active.KingHome {
		return
	}
	enemy := g.players.Passive().Colour
	safe := func(squares ...chess.Square) bool {
		for _, sq := range squares {
			if g.board.IsCoveredBy(sq, enemy) {
				return false
			}
		}
		return true
	}
	empty := func(squares ...chess.Square) bool {
		for _, sq := range squares {
			if !g.board.IsEmpty(sq) {
				return false
			}
		}
		return true
	}

	if active.Castles.KingSide &&
		safe(kingSq, kingSq+1, kingSq+2) &&
		empty(kingSq+1, kingSq+2) {
		g.legal = append(g.legal, EncodeMove(chess.Move{From: kingSq, To: kingSq + 2}))
	}
	if active.Castles.QueenSide &&
		safe(kingSq, kingSq-1, kingSq-2) &&
		empty(kingSq-1, kingSq-2, kingSq-3) {
		g.legal = append(g.legal, EncodeMove(chess.Move{From: kingSq, To: kingSq - 2}))
	}
}
