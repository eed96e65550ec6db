package engine

import (
	"sort"
	"strings"
	"testing"

	"github.com/dylhunn/dragontoothmg"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestLegalMovesPositions(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want []string
	}{
		{
			name: "rook and king with castling",
			fen:  "4k3/8/8/8/8/8/8/4K2R w K - 0 1",
			want: []string{
				"e1d1", "e1d2", "e1e2", "e1f1", "e1f2", "e1g1",
				"h1f1", "h1g1", "h1h2", "h1h3", "h1h4", "h1h5", "h1h6", "h1h7", "h1h8",
			},
		},
		{
			name: "en passant exposes king along the rank",
			fen:  "8/8/8/KPp4r/8/8/8/4k3 w - c6 0 1",
			want: []string{"a5a4", "a5a6", "a5b6", "b5b6"},
		},
		{
			name: "en passant allowed without the rook",
			fen:  "8/8/8/KPp5/8/8/8/4k3 w - c6 0 1",
			want: []string{"a5a4", "a5a6", "a5b6", "b5b6", "b5c6"},
		},
		{
			name: "en passant removes the checking pawn",
			fen:  "8/8/8/2k5/3Pp3/8/8/4K3 b - d3 0 1",
			want: []string{"c5b4", "c5b5", "c5b6", "c5c4", "c5c6", "c5d4", "c5d5", "c5d6", "e4d3"},
		},
		{
			name: "double check allows only king moves",
			fen:  "4k3/8/8/8/1b6/3n4/8/R3K2R w KQ - 0 1",
			want: []string{"e1d1", "e1e2", "e1f1"},
		},
		{
			name: "promotion",
			fen:  "8/P6k/8/8/8/8/8/K7 w - - 0 1",
			want: []string{"a1a2", "a1b1", "a1b2", "a7a8b", "a7a8n", "a7a8q", "a7a8r"},
		},
		{
			name: "pinned knight cannot move",
			fen:  "4k3/4r3/8/8/8/8/4N3/4K3 w - - 0 1",
			want: []string{"e1d1", "e1d2", "e1f1", "e1f2"},
		},
		{
			name: "pinned rook slides along the pin",
			fen:  "4k3/4r3/8/8/8/8/4R3/4K3 w - - 0 1",
			want: []string{"e1d1", "e1d2", "e1f1", "e1f2", "e2e3", "e2e4", "e2e5", "e2e6", "e2e7"},
		},
		{
			name: "check by a knight is answered by a king move",
			fen:  "4k3/8/8/8/8/3n4/8/R3K3 w Q - 0 1",
			want: []string{"e1d1", "e1d2", "e1e2", "e1f1"},
		},
		{
			name: "check by a rook may be blocked",
			fen:  "4k3/8/8/8/8/8/1R6/r3K3 w - - 0 1",
			want: []string{"b2b1", "e1d2", "e1e2", "e1f2"},
		},
		{
			name: "checkmate leaves no moves",
			fen:  "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
			want: []string{},
		},
		{
			name: "stalemate leaves no moves",
			fen:  "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustNewGame(t, tt.fen)
			testutil.AssertSameMoves(t, legalStrings(g), tt.want)
		})
	}
}

func TestCastlingConditions(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		kingSide  bool
		queenSide bool
	}{
		{"both free", "4k3/8/8/8/8/8/8/R3K2R w KQ - 0 1", true, true},
		{"passing square attacked", "4k3/8/8/8/8/8/5r2/R3K2R w KQ - 0 1", false, true},
		{"destination attacked", "4k3/8/8/8/8/8/2r5/R3K2R w KQ - 0 1", true, false},
		{"rook square attacked does not matter", "4k3/8/8/8/8/8/1r6/R3K2R w KQ - 0 1", true, true},
		{"in check", "4k3/8/8/8/8/8/4r3/R3K2R w KQ - 0 1", false, false},
		{"knight in the way", "4k3/8/8/8/8/8/8/RN2K1NR w KQ - 0 1", false, false},
		{"b-file blocker only", "4k3/8/8/8/8/8/8/RN2K2R w KQ - 0 1", true, false},
		{"right lost", "4k3/8/8/8/8/8/8/R3K2R w Q - 0 1", false, true},
		{"black both", "r3k2r/8/8/8/8/8/8/4K3 b kq - 0 1", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustNewGame(t, tt.fen)
			home := g.players.Active().KingHome
			moves := legalStrings(g)
			short := chess.Move{From: home, To: home + 2}.String()
			long := chess.Move{From: home, To: home - 2}.String()
			if got := contains(moves, short); got != tt.kingSide {
				t.Errorf("%s legal = %v, want %v", short, got, tt.kingSide)
			}
			if got := contains(moves, long); got != tt.queenSide {
				t.Errorf("%s legal = %v, want %v", long, got, tt.queenSide)
			}
		})
	}
}

func contains(list []string, s string) bool {
	i := sort.SearchStrings(list, s)
	return i < len(list) && list[i] == s
}

func TestIsCheck(t *testing.T) {
	tests := []struct {
		fen  string
		want bool
	}{
		{InitialFEN, false},
		{"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3", true},
		{"4k3/8/8/8/1b6/3n4/8/R3K2R w KQ - 0 1", true},
		{"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", false},
	}
	for _, tt := range tests {
		g := mustNewGame(t, tt.fen)
		if got := g.IsCheck(); got != tt.want {
			t.Errorf("IsCheck() = %v, want %v for %s", got, tt.want, tt.fen)
		}
	}
}

// oracleMoves lists the legal moves of a position as found by an independent
// move generator.
func oracleMoves(fen string) []string {
	board := dragontoothmg.ParseFen(fen)
	moves := board.GenerateLegalMoves()
	out := make([]string, len(moves))
	for i := range moves {
		out[i] = strings.ToLower(moves[i].String())
	}
	return out
}

// TestLegalMovesAgainstOracle plays a deterministic walk from each tactical
// position and compares the legal list with an independent generator at
// every ply.
func TestLegalMovesAgainstOracle(t *testing.T) {
	const plies = 40
	for _, fen := range testutil.TacticalFENs {
		t.Run(fen, func(t *testing.T) {
			g := mustNewGame(t, fen)
			for ply := 0; ply < plies && !g.HasEnded(); ply++ {
				testutil.AssertSameMoves(t, legalStrings(g), oracleMoves(g.FEN()), "ply %d at %s", ply, g.FEN())

				moves := g.LegalMoves()
				m := moves[(ply*7+3)%len(moves)]
				if r := g.Move(m); r == InvalidMove {
					t.Fatalf("legal move %v rejected at %s", m, g.FEN())
				}
			}
		})
	}
}

// TestLegalMovesOracleDepthTwo compares every position two plies deep.
func TestLegalMovesOracleDepthTwo(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping exhaustive comparison in short mode")
	}
	for _, fen := range testutil.TacticalFENs {
		t.Run(fen, func(t *testing.T) {
			g := mustNewGame(t, fen)
			for _, m := range g.LegalMoves() {
				g.Move(m)
				testutil.AssertSameMoves(t, legalStrings(g), oracleMoves(g.FEN()), "after %v", m)
				for _, reply := range g.LegalMoves() {
					g.Move(reply)
					testutil.AssertSameMoves(t, legalStrings(g), oracleMoves(g.FEN()), "after %v %v", m, reply)
					g.Undo()
				}
				g.Undo()
			}
		})
	}
}
