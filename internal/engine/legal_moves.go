package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// findLegalMoves rebuilds the legal list for the side to move.
//
// King steps and castles are verified against coverage directly and go
// straight to the legal list. Everything else is generated pseudo-legally
// and then filtered: by pin line always, and by the squares that answer the
// check when exactly one enemy piece gives check. In double check only the
// king may move.
func (g *Game) findLegalMoves() {
	g.legal = g.legal[:0]
	g.pseudo = g.pseudo[:0]
	g.resolves = 0
	if !g.valid {
		return
	}

	active, passive := g.players.Active(), g.players.Passive()
	kingSq := g.board.SquareOf(active.KingID)
	checkers := g.board.CoverCountBy(kingSq, passive.Colour)

	g.findKingMoves(kingSq)
	if checkers > 1 {
		return
	}

	g.findPseudoMoves()
	g.filterPinned()
	if checkers == 1 {
		g.filterResolving(kingSq)
	}

	for _, c := range g.pseudo {
		if !c.IsNull() {
			g.legal = append(g.legal, c)
		}
	}
}

// findKingMoves appends king steps to squares the opponent does not cover,
// then castles.
func (g *Game) findKingMoves(kingSq chess.Square) {
	active, passive := g.players.Active(), g.players.Passive()
	for _, d := range chess.Lines {
		if chess.Steps(kingSq, d) == 0 {
			continue
		}
		to := kingSq + d.Delta()
		if g.board.At(to).IsAlly(active.Colour) || g.board.IsCoveredBy(to, passive.Colour) {
			continue
		}
		g.legal = append(g.legal, EncodeMove(chess.Move{From: kingSq, To: to}))
	}
	g.findCastles(kingSq)
}

// findPseudoMoves generates moves for every non-king piece of the side to move.
func (g *Game) findPseudoMoves() {
	active := g.players.Active()
	for id := active.KingID + 1; id < active.KingID+IDsPerColour; id++ {
		sq := g.board.SquareOf(id)
		if sq == chess.NoSquare {
			continue
		}
		switch g.board.PieceOf(id) {
		case chess.Queen:
			g.slide(sq, chess.Lines)
		case chess.Rook:
			g.slide(sq, chess.Orthogonals)
		case chess.Bishop:
			g.slide(sq, chess.Diagonals)
		case chess.Knight:
			g.leap(sq)
		case chess.Pawn:
			g.pawnMoves(sq)
		}
	}
}

func (g *Game) addPseudo(from, to chess.Square) {
	g.pseudo = append(g.pseudo, EncodeMove(chess.Move{From: from, To: to}))
}

// slide walks each direction up to and including the first enemy piece.
func (g *Game) slide(from chess.Square, dirs []chess.Direction) {
	colour := g.players.Active().Colour
	for _, d := range dirs {
		to := from
		for n := chess.Steps(from, d); n > 0; n-- {
			to += d.Delta()
			p := g.board.At(to)
			if p.IsAlly(colour) {
				break
			}
			g.addPseudo(from, to)
			if !p.IsEmpty() {
				break
			}
		}
	}
}

func (g *Game) leap(from chess.Square) {
	colour := g.players.Active().Colour
	for _, d := range chess.KnightLeaps {
		if chess.Steps(from, d) == 0 {
			continue
		}
		to := from + d.Delta()
		if !g.board.At(to).IsAlly(colour) {
			g.addPseudo(from, to)
		}
	}
}

// pawnMoves generates pushes, captures and en passant for the pawn on from.
// Moves onto the last rank expand into the four promotions.
func (g *Game) pawnMoves(from chess.Square) {
	active := g.players.Active()
	promotes := from.Rank() == active.PawnPromoRank

	one := from + active.PawnForward
	if g.board.IsEmpty(one) {
		g.addPawnMove(from, one, promotes)
		two := one + active.PawnForward
		if from.Rank() == active.PawnStartRank && g.board.IsEmpty(two) {
			g.addPseudo(from, two)
		}
	}

	captures := [2]chess.Direction{chess.NorthEast, chess.NorthWest}
	if active.Colour == chess.Black {
		captures = [2]chess.Direction{chess.SouthEast, chess.SouthWest}
	}
	for _, d := range captures {
		if chess.Steps(from, d) == 0 {
			continue
		}
		to := from + d.Delta()
		if g.board.At(to).IsEnemy(active.Colour) {
			g.addPawnMove(from, to, promotes)
		}
	}

	if g.enPassant == chess.NoSquare {
		return
	}
	victim := g.enPassant - active.PawnForward
	if victim.Rank() == from.Rank() && abs(victim.File()-from.File()) == 1 &&
		!g.enPassantExposesKing(from, victim) {
		g.addPseudo(from, g.enPassant)
	}
}

func (g *Game) addPawnMove(from, to chess.Square, promotes bool) {
	if !promotes {
		g.addPseudo(from, to)
		return
	}
	for _, p := range chess.PromotionPieces {
		g.pseudo = append(g.pseudo, EncodeMove(chess.Move{From: from, To: to, Promotion: p}))
	}
}

// filterPinned nulls moves of pinned pieces that leave their pin line.
func (g *Game) filterPinned() {
	for i, c := range g.pseudo {
		if c.IsNull() {
			continue
		}
		pin := g.pinned[g.board.ID(c.From())]
		if pin == chess.NoDirection {
			continue
		}
		dir := chess.LineDirection(c.From(), c.To())
		if dir != pin && dir != pin.Opposite() {
			g.pseudo[i] = NullMoveCode
		}
	}
}

// filterResolving keeps only moves that capture the single checker or block
// its line. Taking a checking pawn en passant lands beside the checker, so
// it is kept even though its destination is not in the set.
func (g *Game) filterResolving(kingSq chess.Square) {
	active, passive := g.players.Active(), g.players.Passive()
	checker := g.board.FirstCoverIDBy(kingSq, passive.Colour)
	checkSq := g.board.SquareOf(checker)

	g.resolves = checkSq.Bit()
	if isSlider(g.board.PieceOf(checker)) {
		d := chess.LineDirection(kingSq, checkSq)
		for sq := kingSq + d.Delta(); sq != checkSq && g.board.IsEmpty(sq); sq += d.Delta() {
			g.resolves |= sq.Bit()
		}
	}

	takesChecker := g.enPassant != chess.NoSquare && checkSq == g.enPassant-active.PawnForward
	for i, c := range g.pseudo {
		if c.IsNull() || g.resolves&c.To().Bit() != 0 {
			continue
		}
		if takesChecker && c.To() == g.enPassant && g.board.PieceAt(c.From()) == chess.Pawn {
			continue
		}
		g.pseudo[i] = NullMoveCode
	}
}

func isSlider(p chess.Piece) bool {
	return p == chess.Queen || p == chess.Rook || p == chess.Bishop
}
