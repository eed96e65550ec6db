package testutil

import (
	"strings"
	"testing"
)

func TestPerftCasesWellFormed(t *testing.T) {
	seen := make(map[string]bool)
	for _, tc := range PerftCases {
		t.Run(tc.Name, func(t *testing.T) {
			if seen[tc.Name] {
				t.Errorf("duplicate case name %q", tc.Name)
			}
			seen[tc.Name] = true
			if got := len(strings.Split(tc.FEN, " ")); got != 6 {
				t.Errorf("FEN has %d fields, want 6", got)
			}
			if len(tc.Nodes) == 0 {
				t.Fatal("no node counts")
			}
			for i := 1; i < len(tc.Nodes); i++ {
				if tc.Nodes[i] <= tc.Nodes[i-1] {
					t.Errorf("Nodes[%d] = %d not above Nodes[%d] = %d", i, tc.Nodes[i], i-1, tc.Nodes[i-1])
				}
			}
		})
	}
}

func TestTacticalFENsWellFormed(t *testing.T) {
	for _, fen := range TacticalFENs {
		if got := len(strings.Split(fen, " ")); got != 6 {
			t.Errorf("%q has %d fields, want 6", fen, got)
		}
	}
}

func TestSkipLargePerft(t *testing.T) {
	// Small counts never skip.
	SkipLargePerft(t, ShortNodeLimit)
	if t.Skipped() {
		t.Error("SkipLargePerft skipped a small count")
	}
}
