package engine

import (
	"sort"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// mustNewGame creates a game or fails the test.
func mustNewGame(t testing.TB, fen string, opts ...Option) *Game {
	t.Helper()
	g, err := NewGame(fen, opts...)
	if err != nil {
		t.Fatalf("NewGame(%q) error: %v", fen, err)
	}
	return g
}

// mustPlay plays coordinate moves in order, failing on the first rejection.
func mustPlay(t testing.TB, g *Game, moves ...string) {
	t.Helper()
	for _, text := range moves {
		if r := g.MoveText(text, FormatUCI); r == InvalidMove {
			t.Fatalf("move %s rejected in %s", text, g.FEN())
		}
	}
}

// sq parses a square name, panicking on typos in test tables.
func sq(name string) chess.Square {
	s, ok := chess.ParseSquare(name)
	if !ok {
		panic("bad square " + name)
	}
	return s
}

// legalStrings returns the legal moves in coordinate form, sorted.
func legalStrings(g *Game) []string {
	moves := g.LegalMoves()
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.String()
	}
	sort.Strings(out)
	return out
}
