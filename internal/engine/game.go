package engine

import (
	"slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// DefaultMaxHalfMoves is the half-move clock value above which the game is
// drawn.
const DefaultMaxHalfMoves = 100

// Game is a chess game: the position, the move history, and the legal moves
// of the side to move. A Game is not safe for concurrent use; use Clone to
// hand independent copies to other goroutines.
type Game struct {
	board   Board
	players Players
	history []Delta

	legal  []MoveCode
	pseudo []MoveCode // scratch list, filtered in place

	pinned   [NumIDs]chess.Direction // pin line per identity, NoDirection if free
	resolves uint64                  // squares that answer a single check

	enPassant chess.Square
	halfMoves int
	fullMoves int

	maxHalfMoves int
	format       MoveFormat

	valid    bool
	ended    bool
	endState EndState
}

// Option configures a Game.
type Option func(*Game)

// WithMaxHalfMoves sets the half-move clock limit.
func WithMaxHalfMoves(n int) Option {
	return func(g *Game) {
		if n >= 1 {
			g.maxHalfMoves = n
		}
	}
}

// WithMoveFormat sets the notation used by the string accessors.
func WithMoveFormat(f MoveFormat) Option {
	return func(g *Game) {
		g.format = f
	}
}

// NewGame creates a game from a FEN string; "" selects the standard starting
// position. The returned game is never nil. When setup fails the error wraps
// errors.ErrInvalidFEN and the game reports InitOK() == false.
func NewGame(fen string, opts ...Option) (*Game, error) {
	g := &Game{
		maxHalfMoves: DefaultMaxHalfMoves,
		format:       FormatUCI,
	}
	for _, opt := range opts {
		opt(g)
	}
	err := g.NewPosition(fen)
	return g, err
}

// NewPosition discards the current game and sets up a new one from fen.
// Configured options are kept.
func (g *Game) NewPosition(fen string) error {
	if fen == "" {
		fen = InitialFEN
	}
	g.clear()
	if err := g.setup(fen); err != nil {
		g.clear()
		return err
	}
	g.valid = true
	g.refresh()
	g.updateEnded()
	return nil
}

// clear resets every piece of position state to an empty, invalid game.
func (g *Game) clear() {
	g.board.Reset()
	g.players = newPlayers()
	g.history = g.history[:0]
	g.legal = g.legal[:0]
	g.pseudo = g.pseudo[:0]
	g.pinned = [NumIDs]chess.Direction{}
	g.resolves = 0
	g.enPassant = chess.NoSquare
	g.halfMoves = 0
	g.fullMoves = 0
	g.valid = false
	g.ended = false
	g.endState = EndNone
}

// InitOK reports whether the last setup succeeded.
func (g *Game) InitOK() bool {
	return g.valid
}

// Move plays m if it is legal. A rejected move leaves the game untouched.
func (g *Game) Move(m chess.Move) MoveResult {
	if !g.valid || g.ended || !g.isLegal(m) {
		return InvalidMove
	}
	g.play(m)
	if g.ended {
		return GameEnded
	}
	return ValidMove
}

// MoveText parses text in format f and plays it. Unparseable text is an
// invalid move.
func (g *Game) MoveText(text string, f MoveFormat) MoveResult {
	m, err := ParseMove(text, f)
	if err != nil {
		return InvalidMove
	}
	return g.Move(m)
}

// Undo takes back the last move. It is a no-op on an empty history.
func (g *Game) Undo() {
	if len(g.history) == 0 {
		return
	}
	d := g.history[len(g.history)-1]

	g.ended = false
	g.endState = EndNone
	g.players.Swap()
	if g.players.active == chess.Black {
		g.fullMoves--
	}
	g.halfMoves = d.HalfMoves
	g.players.restoreCastles(d.Castles)
	g.enPassant = d.EnPassantTarget
	g.board.Undo(d)
	g.history = g.history[:len(g.history)-1]

	g.refresh()
}

// SetEndState ends the game for a reason the engine does not detect itself,
// such as resignation or time forfeit. EndNone reopens the game.
func (g *Game) SetEndState(s EndState) {
	if !g.valid {
		return
	}
	g.endState = s
	g.ended = s != EndNone
}

// Successor returns a copy of the game with m played, ignoring any end state
// set by the caller. ok is false if m is not legal.
func (g *Game) Successor(m chess.Move) (next *Game, ok bool) {
	if !g.valid || !g.isLegal(m) {
		return nil, false
	}
	next = g.Clone()
	next.play(m)
	return next, true
}

// Clone returns a deep copy sharing no mutable state with g.
func (g *Game) Clone() *Game {
	c := *g
	c.history = slices.Clone(g.history)
	c.legal = slices.Clone(g.legal)
	c.pseudo = slices.Clone(g.pseudo)
	return &c
}

// Equal reports whether two games are in identical states, history included.
// The scratch list is not compared.
func (g *Game) Equal(other *Game) bool {
	return g.board.Equal(&other.board) &&
		g.players == other.players &&
		slices.Equal(g.history, other.history) &&
		slices.Equal(g.legal, other.legal) &&
		g.pinned == other.pinned &&
		g.resolves == other.resolves &&
		g.enPassant == other.enPassant &&
		g.halfMoves == other.halfMoves &&
		g.fullMoves == other.fullMoves &&
		g.maxHalfMoves == other.maxHalfMoves &&
		g.format == other.format &&
		g.valid == other.valid &&
		g.ended == other.ended &&
		g.endState == other.endState
}

// isLegal reports whether m is in the legal list.
func (g *Game) isLegal(m chess.Move) bool {
	if !m.From.Valid() || !m.To.Valid() {
		return false
	}
	if m.Promotion != chess.Empty && !m.Promotion.IsPromotion() {
		return false
	}
	return slices.Contains(g.legal, EncodeMove(m))
}

// play applies a move known to be legal and advances the game.
func (g *Game) play(m chess.Move) {
	active := g.players.Active()
	mover := g.board.At(m.From)

	d := Delta{
		Move:            m,
		Captured:        g.board.At(m.To),
		Castles:         g.players.castles(),
		HalfMoves:       g.halfMoves,
		EnPassantTarget: g.enPassant,
	}
	if mover.Piece == chess.King {
		d.KingSide = m.To-m.From == 2
		d.QueenSide = m.From-m.To == 2
	}
	if mover.Piece == chess.Pawn && m.To == g.enPassant && m.From.File() != m.To.File() {
		d.EnPassant = true
		d.Captured = g.board.At(enPassantVictim(m))
	}

	g.board.Apply(d)
	g.updateCastles(d, mover.Piece)

	g.enPassant = chess.NoSquare
	if mover.Piece == chess.Pawn && abs(int(m.To-m.From)) == 2*chess.BoardSize {
		g.enPassant = m.From + active.PawnForward
	}

	if active.Colour == chess.Black {
		g.fullMoves++
	}
	if d.IsCapture() || mover.Piece == chess.Pawn {
		g.halfMoves = 0
	} else {
		g.halfMoves++
	}

	g.players.Swap()
	d.Check = g.IsCheck()
	g.history = append(g.history, d)

	g.refresh()
	g.updateEnded()
}

// updateCastles clears the rights a move gives up: any king move, a rook
// leaving its corner, or a rook taken on its corner.
func (g *Game) updateCastles(d Delta, moved chess.Piece) {
	active, passive := g.players.Active(), g.players.Passive()
	if moved == chess.King {
		active.Castles = Castles{}
	}
	switch d.Move.From {
	case active.KingSideRook:
		active.Castles.KingSide = false
	case active.QueenSideRook:
		active.Castles.QueenSide = false
	}
	if d.Captured.Piece == chess.Rook {
		switch d.Move.To {
		case passive.KingSideRook:
			passive.Castles.KingSide = false
		case passive.QueenSideRook:
			passive.Castles.QueenSide = false
		}
	}
}

// refresh recomputes pins and the legal move list for the side to move.
func (g *Game) refresh() {
	g.findPinned()
	g.findLegalMoves()
}
