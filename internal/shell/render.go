package shell

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// RenderBoard draws the position with rank 8 at the top. White pieces are
// uppercase, black lowercase, empty squares '.'.
func RenderBoard(g *engine.Game) string {
	if !g.InitOK() {
		return "no position"
	}
	var sb strings.Builder
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		sb.WriteByte(byte(chess.RankBase + rank))
		for file := 0; file < chess.BoardSize; file++ {
			sb.WriteByte(' ')
			t := g.PieceAt(chess.NewSquare(file, rank))
			if t.Piece == chess.Empty {
				sb.WriteByte('.')
				continue
			}
			sb.WriteByte(t.Piece.ColouredLetter(t.Colour))
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h")
	return sb.String()
}

// Status summarises whose turn it is, or how the game ended.
func Status(g *engine.Game) string {
	if !g.InitOK() {
		return "no position"
	}
	if g.HasEnded() {
		return "game over: " + g.EndState().String()
	}
	s := fmt.Sprintf("%s to move, move %d, half-move clock %d", g.ActiveColour(), g.FullMoveNumber(), g.HalfMoveClock())
	if g.IsCheck() {
		s += ", in check"
	}
	if g.InsufficientMaterial() {
		s += ", insufficient material"
	}
	return s
}
