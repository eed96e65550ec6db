// Package perft counts move-tree leaves, optionally spreading the root moves
// over a worker pool.
package perft

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/maps"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// Count returns the number of leaf nodes depth plies below g. With more than
// one worker each root move is counted on its own game copy. g is not
// modified.
func Count(g *engine.Game, depth, workers int) (uint64, error) {
	div, err := Divide(g, depth, workers)
	if err != nil {
		return 0, err
	}
	if depth <= 0 {
		return 1, nil
	}
	var total uint64
	for _, n := range div {
		total += n
	}
	return total, nil
}

// Divide returns the leaf count below every root move, keyed by the move in
// coordinate form. Depth below one yields an empty map.
func Divide(g *engine.Game, depth, workers int) (map[string]uint64, error) {
	if !g.InitOK() {
		return nil, errors.ErrGameNotInitialized
	}
	if depth < 1 {
		return map[string]uint64{}, nil
	}
	start := time.Now()
	defer func() {
		log.Debug().Int("depth", depth).Int("workers", workers).
			Dur("elapsed", time.Since(start)).Msg("perft-divide")
	}()

	if workers <= 1 {
		return g.Clone().Divide(depth), nil
	}

	moves := g.LegalMoves()
	pool := worker.NewPoolWithOptions(worker.CountNodes,
		worker.WithWorkers(workers), worker.WithBufferSize(len(moves)+1))
	pool.Start()

	go func() {
		for i, m := range moves {
			if pool.IsStopped() {
				break
			}
			// A nil game comes back as an error result.
			next, _ := g.Successor(m)
			pool.Submit(worker.WorkItem{Game: next, Move: m, Depth: depth - 1, Index: i})
		}
		pool.Close()
	}()

	result := make(map[string]uint64, len(moves))
	var firstErr error
	for r := range pool.Results() {
		if r.Error != nil && firstErr == nil {
			firstErr = r.Error
			pool.Stop()
		}
		result[r.Move.String()] = r.Nodes
		log.Debug().Str("move", r.Move.String()).Uint64("nodes", r.Nodes).Msg("subtree")
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return result, nil
}

// WriteDivide prints one "move: nodes" line per root move in move order,
// followed by the total.
func WriteDivide(w io.Writer, div map[string]uint64) error {
	keys := maps.Keys(div)
	sort.Strings(keys)

	var total uint64
	for _, k := range keys {
		if _, err := fmt.Fprintf(w, "%s: %d\n", k, div[k]); err != nil {
			return err
		}
		total += div[k]
	}
	_, err := fmt.Fprintf(w, "Total: %d\n", total)
	return err
}
