package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestBoardRegistry(t *testing.T) {
	g := mustNewGame(t, InitialFEN)
	b := &g.board

	tests := []struct {
		square string
		id     ID
		piece  chess.Piece
	}{
		{"e1", WhiteKingID, chess.King},
		{"e8", BlackKingID, chess.King},
		{"a8", BlackKingID + 1, chess.Rook},
		{"a1", WhiteKingID + 9, chess.Rook},
		{"a2", WhiteKingID + 1, chess.Pawn},
	}
	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			s := sq(tt.square)
			if got := b.ID(s); got != tt.id {
				t.Errorf("ID(%s) = %d, want %d", tt.square, got, tt.id)
			}
			if got := b.PieceAt(s); got != tt.piece {
				t.Errorf("PieceAt(%s) = %v, want %v", tt.square, got, tt.piece)
			}
			if got := b.SquareOf(tt.id); got != s {
				t.Errorf("SquareOf(%d) = %v, want %v", tt.id, got, s)
			}
			if got := b.PieceOf(tt.id); got != tt.piece {
				t.Errorf("PieceOf(%d) = %v, want %v", tt.id, got, tt.piece)
			}
		})
	}

	if !b.IsEmpty(sq("e4")) || b.ID(sq("e4")) != NoID || b.At(sq("e4")) != NoPiece {
		t.Error("e4 should be empty")
	}
}

// registryConsistent checks that the square and identity maps are inverses.
func registryConsistent(t *testing.T, b *Board) {
	t.Helper()
	for s := chess.Square(0); s < chess.NumSquares; s++ {
		id := b.ID(s)
		if b.IsEmpty(s) {
			if id != NoID {
				t.Fatalf("empty square %v holds identity %d", s, id)
			}
			continue
		}
		if b.SquareOf(id) != s || b.PieceOf(id) != b.PieceAt(s) {
			t.Fatalf("identity %d disagrees with square %v", id, s)
		}
	}
	for id := ID(0); id < NumIDs; id++ {
		s := b.SquareOf(id)
		if s == chess.NoSquare {
			if b.PieceOf(id) != chess.Empty || b.Coverage(id) != 0 {
				t.Fatalf("captured identity %d still has state", id)
			}
			continue
		}
		if b.ID(s) != id {
			t.Fatalf("identity %d on %v but square holds %d", id, s, b.ID(s))
		}
	}
}

func TestCoverageStartPosition(t *testing.T) {
	g := mustNewGame(t, InitialFEN)
	b := &g.board

	tests := []struct {
		name   string
		square string
		colour chess.Colour
		count  int
	}{
		{"f3 by white", "f3", chess.White, 3}, // e2 and g2 pawns, g1 knight
		{"e3 by white", "e3", chess.White, 2}, // d2 and f2 pawns
		{"d2 by white", "d2", chess.White, 4}, // king, queen, bishop, knight
		{"e4 by white", "e4", chess.White, 0},
		{"f6 by black", "f6", chess.Black, 3},
		{"e4 by black", "e4", chess.Black, 0},
		{"a1 by white", "a1", chess.White, 0},
		{"b1 by white", "b1", chess.White, 1}, // a1 rook
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.CoverCountBy(sq(tt.square), tt.colour); got != tt.count {
				t.Errorf("CoverCountBy(%s, %v) = %d, want %d", tt.square, tt.colour, got, tt.count)
			}
			if got := b.IsCoveredBy(sq(tt.square), tt.colour); got != (tt.count > 0) {
				t.Errorf("IsCoveredBy(%s, %v) = %v", tt.square, tt.colour, got)
			}
		})
	}

	if got := b.FirstCoverIDBy(sq("e4"), chess.White); got != NoID {
		t.Errorf("FirstCoverIDBy(e4) = %d, want NoID", got)
	}
	if got := b.FirstCoverID(sq("d2")); got != WhiteKingID {
		t.Errorf("FirstCoverID(d2) = %d, want the white king", got)
	}
	if got := b.CoverCount(sq("d2")); got != 4 {
		t.Errorf("CoverCount(d2) = %d, want 4", got)
	}
}

func TestCoverageEnemyKingDoesNotBlock(t *testing.T) {
	// The rook's ray runs through the black king to h8.
	g := mustNewGame(t, "7k/8/8/8/8/8/8/K5r1 w - - 0 1")
	b := &g.board
	rook := b.ID(sq("g1"))
	if !b.Covers(rook, sq("a1")) {
		t.Error("rook should reach the white king on a1")
	}

	g = mustNewGame(t, "4k3/8/8/8/8/8/8/R3K3 b - - 0 1")
	b = &g.board
	rook = b.ID(sq("a1"))
	if !b.Covers(rook, sq("e1")) {
		t.Error("rook should cover its own king's square")
	}
	if b.Covers(rook, sq("f1")) {
		t.Error("own king must stop the ray")
	}

	g = mustNewGame(t, "8/8/8/8/8/8/8/R3k1K1 b - - 0 1")
	b = &g.board
	rook = b.ID(sq("a1"))
	if !b.Covers(rook, sq("f1")) {
		t.Error("enemy king must not stop the ray")
	}
}

// TestIncrementalCoverage walks every legal move of the tactical positions
// and checks that the incrementally maintained coverage matches coverage
// computed from scratch, after the move and after undoing it.
func TestIncrementalCoverage(t *testing.T) {
	for _, fen := range testutil.TacticalFENs {
		t.Run(fen, func(t *testing.T) {
			g := mustNewGame(t, fen)
			for _, m := range g.LegalMoves() {
				g.Move(m)
				registryConsistent(t, &g.board)
				fresh := g.board
				fresh.InitCoverage()
				if !fresh.Equal(&g.board) {
					t.Fatalf("coverage drifted after %v", m)
				}
				for _, reply := range g.LegalMoves() {
					g.Move(reply)
					fresh = g.board
					fresh.InitCoverage()
					if !fresh.Equal(&g.board) {
						t.Fatalf("coverage drifted after %v %v", m, reply)
					}
					g.Undo()
				}
				g.Undo()
				fresh = g.board
				fresh.InitCoverage()
				if !fresh.Equal(&g.board) {
					t.Fatalf("coverage drifted after undoing %v", m)
				}
			}
		})
	}
}

func TestBoardApplyUndoSpecialMoves(t *testing.T) {
	tests := []struct {
		name  string
		fen   string
		move  string
		check func(t *testing.T, b *Board)
	}{
		{
			name: "king side castle",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move: "e1g1",
			check: func(t *testing.T, b *Board) {
				if b.PieceAt(sq("f1")) != chess.Rook || !b.IsEmpty(sq("h1")) || b.PieceAt(sq("g1")) != chess.King {
					t.Error("rook should be on f1 and king on g1")
				}
			},
		},
		{
			name: "queen side castle",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			move: "e8c8",
			check: func(t *testing.T, b *Board) {
				if b.PieceAt(sq("d8")) != chess.Rook || !b.IsEmpty(sq("a8")) || b.PieceAt(sq("c8")) != chess.King {
					t.Error("rook should be on d8 and king on c8")
				}
			},
		},
		{
			name: "en passant",
			fen:  "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
			move: "f5e6",
			check: func(t *testing.T, b *Board) {
				if !b.IsEmpty(sq("e5")) || b.PieceAt(sq("e6")) != chess.Pawn {
					t.Error("e5 pawn should be gone and the white pawn on e6")
				}
			},
		},
		{
			name: "capture promotion",
			fen:  "r3k2r/1P6/8/8/8/8/6p1/R3K2R w KQkq - 0 1",
			move: "b7a8n",
			check: func(t *testing.T, b *Board) {
				id := b.ID(sq("a8"))
				if b.PieceOf(id) != chess.Knight || id.Colour() != chess.White {
					t.Error("a8 should hold a white knight")
				}
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustNewGame(t, tt.fen)
			before := g.board
			mustPlay(t, g, tt.move)
			tt.check(t, &g.board)
			registryConsistent(t, &g.board)
			g.Undo()
			if !g.board.Equal(&before) {
				t.Errorf("board differs after undo of %s", tt.move)
			}
		})
	}
}
