// Package testutil provides shared test utilities for the chess rules engine.
// These utilities reduce duplication across test files and keep the
// reference positions in one place.
package testutil

import "testing"

// Reference positions with published perft counts.
const (
	StartFEN     = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
	KiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	Position3FEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	Position4FEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	Position5FEN = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
	Position6FEN = "r4rk1/1pp1qppp/p1np1n2/2b1p1B1/2B1P1b1/P1NP1N2/1PP1QPPP/R4RK1 w - - 0 10"
)

// PerftCase is a position with its node counts for depths 1, 2, ...
type PerftCase struct {
	Name  string
	FEN   string
	Nodes []uint64
}

// PerftCases are the standard move generator verification positions.
var PerftCases = []PerftCase{
	{"start", StartFEN, []uint64{20, 400, 8902, 197281, 4865609}},
	{"kiwipete", KiwipeteFEN, []uint64{48, 2039, 97862, 4085603}},
	{"position3", Position3FEN, []uint64{14, 191, 2812, 43238, 674624}},
	{"position4", Position4FEN, []uint64{6, 264, 9467, 422333}},
	{"position5", Position5FEN, []uint64{44, 1486, 62379, 2103487}},
	{"position6", Position6FEN, []uint64{46, 2079, 89890}},
}

// ShortNodeLimit is the largest perft count run under -short.
const ShortNodeLimit = 100000

// SkipLargePerft skips t when nodes exceeds ShortNodeLimit in -short mode.
func SkipLargePerft(t testing.TB, nodes uint64) {
	t.Helper()
	if testing.Short() && nodes > ShortNodeLimit {
		t.Skipf("skipping %d-node perft in short mode", nodes)
	}
}

// TacticalFENs are positions rich in checks, pins, castling, en passant and
// promotion. They are used for oracle walks and undo round trips.
var TacticalFENs = []string{
	StartFEN,
	KiwipeteFEN,
	Position3FEN,
	Position4FEN,
	Position5FEN,
	Position6FEN,
	"rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
	"8/8/8/KPp4r/8/8/8/4k3 w - c6 0 1",
	"8/8/8/2k5/3Pp3/8/8/4K3 b - d3 0 1",
	"4k3/8/8/8/1b6/3n4/8/R3K2R w KQ - 0 1",
	"r3k2r/1P6/8/8/8/8/6p1/R3K2R b KQkq - 0 1",
	"8/P6k/8/8/8/8/8/K7 w - - 0 1",
}
