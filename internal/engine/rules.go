package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// InsufficientMaterial reports whether neither side can possibly mate:
//   - K vs K
//   - K+B vs K
//   - K+N vs K
//   - K+B vs K+B (same colour bishops)
//
// It is informational only; the game does not end on it.
func (g *Game) InsufficientMaterial() bool {
	if !g.valid {
		return false
	}
	var minors [chess.NumColours][]chess.Piece
	var bishopOnLight [chess.NumColours]bool

	for id := ID(0); id < NumIDs; id++ {
		piece := g.board.PieceOf(id)
		switch piece {
		case chess.Empty, chess.King:
			continue
		case chess.Pawn, chess.Rook, chess.Queen:
			return false
		}
		c := id.Colour()
		minors[c] = append(minors[c], piece)
		if piece == chess.Bishop {
			bishopOnLight[c] = isLightSquare(g.board.SquareOf(id))
		}
	}

	white, black := minors[chess.White], minors[chess.Black]
	switch {
	case len(white) == 0 && len(black) == 0:
		return true
	case len(white) == 0 && len(black) == 1:
		return true
	case len(black) == 0 && len(white) == 1:
		return true
	case len(white) == 1 && len(black) == 1:
		return white[0] == chess.Bishop && black[0] == chess.Bishop &&
			bishopOnLight[chess.White] == bishopOnLight[chess.Black]
	}
	return false
}

// isLightSquare returns true if the given square is a light square.
func isLightSquare(sq chess.Square) bool {
	return (sq.File()+sq.Rank())%2 == 1
}
