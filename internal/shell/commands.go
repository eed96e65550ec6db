package shell

import (
	_ "embed"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/perft"
)

//go:embed helptext/usage.txt
var usageText string

func (c *Controller) help(cmd *shellcmd) error {
	c.showMessage(strings.TrimRight(usageText, "\n"))
	return nil
}

func (c *Controller) move(text string) error {
	ply := len(c.game.History()) + 1
	m, err := engine.ParseMove(text, c.game.MoveFormat())
	if err != nil {
		return &chesserrors.MoveError{Err: err, Ply: ply, MoveText: text}
	}
	if c.game.HasEnded() {
		return &chesserrors.MoveError{Err: chesserrors.ErrGameEnded, Ply: ply, MoveText: text}
	}

	res := c.game.Move(m)
	log.Debug().Str("move", m.String()).Stringer("result", res).Msg("move")
	switch res {
	case engine.InvalidMove:
		return &chesserrors.MoveError{Err: chesserrors.ErrIllegalMove, Ply: ply, MoveText: text}
	case engine.GameEnded:
		c.showMessage("played " + m.String())
		c.showMessage(Status(c.game))
	default:
		msg := "played " + m.String()
		if c.game.IsCheck() {
			msg += ", check"
		}
		c.showMessage(msg)
	}
	return nil
}

func (c *Controller) undo(cmd *shellcmd) error {
	n := 1
	if len(cmd.args) > 0 {
		var err error
		n, err = strconv.Atoi(cmd.args[0])
		if err != nil || n < 1 {
			return fmt.Errorf("undo: invalid count %q", cmd.args[0])
		}
	}
	n = min(n, len(c.game.History()))
	for i := 0; i < n; i++ {
		c.game.Undo()
	}
	c.showMessage(fmt.Sprintf("took back %d move(s)", n))
	return nil
}

// newGame replaces the game only when the new position sets up cleanly.
func (c *Controller) newGame(cmd *shellcmd) error {
	fen := c.cfg.StartFEN
	if len(cmd.args) > 0 {
		fen = strings.Join(cmd.args, " ")
	}
	g, err := engine.NewGame(fen, engine.WithMaxHalfMoves(c.game.MaxHalfMoves()), engine.WithMoveFormat(c.game.MoveFormat()))
	if err != nil {
		return err
	}
	c.game = g
	c.showMessage(RenderBoard(c.game))
	return nil
}

func (c *Controller) moves(cmd *shellcmd) error {
	var list []chess.Move
	if len(cmd.args) > 0 {
		sq, ok := chess.ParseSquare(cmd.args[0])
		if !ok {
			return fmt.Errorf("moves: invalid square %q", cmd.args[0])
		}
		list = c.game.LegalMovesFrom(sq)
	} else {
		list = c.game.LegalMoves()
	}
	if len(list) == 0 {
		c.showMessage("no legal moves")
		return nil
	}
	names := lo.Map(list, func(m chess.Move, _ int) string { return m.String() })
	c.showMessage(fmt.Sprintf("%d: %s", len(names), strings.Join(names, " ")))
	return nil
}

func (c *Controller) history() string {
	moves := c.game.History()
	if len(moves) == 0 {
		return "no moves played"
	}
	return strings.Join(lo.Map(moves, func(m chess.Move, _ int) string { return m.String() }), " ")
}

func (c *Controller) perft(cmd *shellcmd, divide bool) error {
	if len(cmd.args) != 1 {
		return fmt.Errorf("usage: %s <depth>", cmd.cmd)
	}
	depth, err := strconv.Atoi(cmd.args[0])
	if err != nil || depth < 0 {
		return fmt.Errorf("%s: invalid depth %q", cmd.cmd, cmd.args[0])
	}

	start := time.Now()
	if divide {
		div, err := perft.Divide(c.game, depth, c.cfg.PerftWorkers)
		if err != nil {
			return err
		}
		log.Debug().Dur("elapsed", time.Since(start)).Int("depth", depth).Msg("divide")
		return perft.WriteDivide(c.out, div)
	}
	nodes, err := perft.Count(c.game, depth, c.cfg.PerftWorkers)
	if err != nil {
		return err
	}
	log.Debug().Dur("elapsed", time.Since(start)).Int("depth", depth).Msg("perft")
	c.showMessage(fmt.Sprintf("Nodes: %d", nodes))
	return nil
}

func (c *Controller) resign() error {
	if c.game.HasEnded() {
		return chesserrors.ErrGameEnded
	}
	state := engine.WhiteWinForfeit
	if c.game.ActiveColour() == chess.White {
		state = engine.BlackWinForfeit
	}
	c.game.SetEndState(state)
	c.showMessage(Status(c.game))
	return nil
}

func (c *Controller) draw() error {
	if c.game.HasEnded() {
		return chesserrors.ErrGameEnded
	}
	c.game.SetEndState(engine.DrawOffer)
	c.showMessage(Status(c.game))
	return nil
}

func (c *Controller) format(cmd *shellcmd) error {
	if len(cmd.args) == 0 {
		c.showMessage(c.game.MoveFormat().String())
		return nil
	}
	f, err := engine.ParseMoveFormat(cmd.args[0])
	if err != nil {
		return err
	}
	if f == engine.FormatSAN {
		return errors.New("format: SAN moves cannot be parsed")
	}
	c.game.SetMoveFormat(f)
	c.showMessage("move format " + f.String())
	return nil
}
