package engine

// Perft counts the leaf nodes of the legal move tree to the given depth.
// The game is restored before returning. End states are ignored while
// walking the tree.
func (g *Game) Perft(depth int) uint64 {
	if !g.valid {
		return 0
	}
	ended, endState := g.ended, g.endState
	n := g.perft(depth)
	g.ended, g.endState = ended, endState
	return n
}

func (g *Game) perft(depth int) uint64 {
	switch {
	case depth <= 0:
		return 1
	case depth == 1:
		return uint64(len(g.legal))
	}
	moves := make([]MoveCode, len(g.legal))
	copy(moves, g.legal)

	var nodes uint64
	for _, c := range moves {
		g.play(c.Move())
		nodes += g.perft(depth - 1)
		g.Undo()
	}
	return nodes
}

// Divide returns the perft count below each legal root move, keyed by the
// move's coordinate form.
func (g *Game) Divide(depth int) map[string]uint64 {
	result := make(map[string]uint64, len(g.legal))
	if !g.valid || depth < 1 {
		return result
	}
	ended, endState := g.ended, g.endState
	moves := make([]MoveCode, len(g.legal))
	copy(moves, g.legal)
	for _, c := range moves {
		g.play(c.Move())
		result[c.String()] = g.perft(depth - 1)
		g.Undo()
	}
	g.ended, g.endState = ended, endState
	return result
}
