package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

var benchFENs = map[string]string{
	"Initial":   testutil.StartFEN,
	"Midgame":   "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex":   testutil.KiwipeteFEN,
	"EnPassant": "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
	"Castling":  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
}

func BenchmarkNewGame(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				NewGame(fen)
			}
		})
	}
}

func BenchmarkFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			g := mustNewGame(b, fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				g.FEN()
			}
		})
	}
}

func BenchmarkMoveUndo(b *testing.B) {
	cases := []struct {
		name string
		fen  string
		move string
	}{
		{"PawnMove", benchFENs["Initial"], "e2e4"},
		{"PieceMove", benchFENs["Initial"], "g1f3"},
		{"KingsideCastle", benchFENs["Castling"], "e1g1"},
		{"QueensideCastle", benchFENs["Castling"], "e1c1"},
		{"EnPassant", benchFENs["EnPassant"], "f5e6"},
		{"Promotion", "8/P7/8/8/8/8/8/4K2k w - - 0 1", "a7a8q"},
	}

	for _, tt := range cases {
		b.Run(tt.name, func(b *testing.B) {
			g := mustNewGame(b, tt.fen)
			m, err := ParseUCI(tt.move)
			if err != nil {
				b.Fatal(err)
			}
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				g.Move(m)
				g.Undo()
			}
		})
	}
}

func BenchmarkGameReplay_ItalianOpening(b *testing.B) {
	moves := make([]chess.Move, 0, 6)
	for _, text := range []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "f8c5"} {
		m, _ := ParseUCI(text)
		moves = append(moves, m)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g, _ := NewGame(benchFENs["Initial"])
		for _, m := range moves {
			g.Move(m)
		}
	}
}

func BenchmarkIsCheck(b *testing.B) {
	checkFEN := "rnb1kbnr/pppp1ppp/8/4p3/7q/5P2/PPPPP1PP/RNBQKBNR w KQkq - 1 3"

	b.Run("NoCheck", func(b *testing.B) {
		g := mustNewGame(b, benchFENs["Initial"])
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			g.IsCheck()
		}
	})

	b.Run("InCheck", func(b *testing.B) {
		g := mustNewGame(b, checkFEN)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			g.IsCheck()
		}
	})
}

func BenchmarkLegalMoves(b *testing.B) {
	positions := []string{"Initial", "Midgame", "Endgame", "Complex"}
	for _, name := range positions {
		b.Run(name, func(b *testing.B) {
			g := mustNewGame(b, benchFENs[name])
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				g.refresh()
			}
		})
	}
}

func BenchmarkClone(b *testing.B) {
	g := mustNewGame(b, benchFENs["Midgame"])
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Clone()
	}
}

func BenchmarkPerft(b *testing.B) {
	for _, tc := range testutil.PerftCases {
		b.Run(tc.Name, func(b *testing.B) {
			g := mustNewGame(b, tc.FEN)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				g.Perft(3)
			}
		})
	}
}
