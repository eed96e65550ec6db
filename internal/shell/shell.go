// Package shell implements an interactive command shell around a single game.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	chesserrors "github.com/lgbarn/chess-rules-go/internal/errors"
)

// ErrExit is returned by Execute when the user asks to leave the shell.
var ErrExit = errors.New("exit requested")

// Controller owns the game being played and runs shell commands against it.
type Controller struct {
	l *readline.Instance

	cfg  *config.Config
	game *engine.Game
	out  io.Writer
}

type shellcmd struct {
	cmd  string
	args []string
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

// NewController creates a controller whose game starts from cfg.StartFEN.
// Output is written to out.
func NewController(cfg *config.Config, out io.Writer) (*Controller, error) {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	g, err := engine.NewGame(cfg.StartFEN, cfg.EngineOptions()...)
	if err != nil {
		return nil, chesserrors.Wrap(err, "starting game")
	}
	return &Controller{cfg: cfg, game: g, out: out}, nil
}

// Game returns the game the controller is playing.
func (c *Controller) Game() *engine.Game {
	return c.game
}

func (c *Controller) showMessage(msg string) {
	showMessage(msg, c.out)
}

func (c *Controller) showError(err error) {
	c.showMessage("Error: " + err.Error())
}

func extractFields(line string) *shellcmd {
	fields, err := shellquote.Split(line)
	if err != nil {
		// Unbalanced quotes; fall back to plain whitespace splitting.
		fields = strings.Fields(line)
	}
	if len(fields) == 0 {
		return nil
	}
	return &shellcmd{cmd: fields[0], args: fields[1:]}
}

// Execute runs a single command line. It returns ErrExit for "exit" and
// "quit", and any command error otherwise. Unknown commands are tried as
// move text.
func (c *Controller) Execute(line string) error {
	cmd := extractFields(strings.TrimSpace(line))
	if cmd == nil {
		return nil
	}
	log.Debug().Str("cmd", cmd.cmd).Strs("args", cmd.args).Msg("execute")

	switch strings.ToLower(cmd.cmd) {
	case "exit", "quit":
		return ErrExit
	case "help", "?":
		return c.help(cmd)
	case "move", "m":
		if len(cmd.args) != 1 {
			return errors.New("usage: move <move>")
		}
		return c.move(cmd.args[0])
	case "undo", "u":
		return c.undo(cmd)
	case "new":
		return c.newGame(cmd)
	case "moves":
		return c.moves(cmd)
	case "board", "b":
		c.showMessage(RenderBoard(c.game))
		return nil
	case "fen":
		c.showMessage(c.game.FEN())
		return nil
	case "history":
		c.showMessage(c.history())
		return nil
	case "status":
		c.showMessage(Status(c.game))
		return nil
	case "perft":
		return c.perft(cmd, false)
	case "divide":
		return c.perft(cmd, true)
	case "resign":
		return c.resign()
	case "draw":
		return c.draw()
	case "format":
		return c.format(cmd)
	}
	if len(cmd.args) == 0 {
		err := c.move(cmd.cmd)
		if errors.Is(err, chesserrors.ErrInvalidMoveText) {
			return fmt.Errorf("unknown command %q", cmd.cmd)
		}
		return err
	}
	return fmt.Errorf("unknown command %q", cmd.cmd)
}

// Loop reads commands until the user exits or interrupts, then signals sig.
func (c *Controller) Loop(sig chan os.Signal) {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          c.cfg.Prompt,
		HistoryFile:     c.cfg.HistoryFile,
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		log.Error().Err(err).Msg("starting readline")
		sig <- syscall.SIGINT
		return
	}
	c.l = l
	if c.out == nil {
		c.out = l.Stdout()
	}
	defer c.l.Close()

	for {
		line, err := c.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)

		err = c.Execute(line)
		if err == ErrExit {
			sig <- syscall.SIGINT
			break
		}
		if err != nil {
			c.showError(err)
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}
