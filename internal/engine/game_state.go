package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// MoveResult is the outcome of a move request.
type MoveResult int

const (
	InvalidMove MoveResult = iota // rejected; the game is unchanged
	ValidMove                     // played; the game continues
	GameEnded                     // played, and the game is now over
)

// String returns the string representation of a move result.
func (r MoveResult) String() string {
	switch r {
	case ValidMove:
		return "valid move"
	case GameEnded:
		return "game has ended"
	}
	return "invalid move"
}

// EndState says how a game finished.
type EndState int

const (
	EndNone EndState = iota
	WhiteWinCheckmate
	WhiteWinForfeit
	WhiteWinTime
	WhiteWinRepeatedInvalid
	BlackWinCheckmate
	BlackWinForfeit
	BlackWinTime
	BlackWinRepeatedInvalid
	DrawStalemate
	DrawOffer
	DrawThreefold // declared for callers; repetition is not detected
	DrawMaxTurns
	DrawHalfMoveClock
)

var endStateNames = [...]string{
	EndNone:                 "in progress",
	WhiteWinCheckmate:       "white wins by checkmate",
	WhiteWinForfeit:         "white wins by forfeit",
	WhiteWinTime:            "white wins on time",
	WhiteWinRepeatedInvalid: "white wins by repeated invalid moves",
	BlackWinCheckmate:       "black wins by checkmate",
	BlackWinForfeit:         "black wins by forfeit",
	BlackWinTime:            "black wins on time",
	BlackWinRepeatedInvalid: "black wins by repeated invalid moves",
	DrawStalemate:           "draw by stalemate",
	DrawOffer:               "draw by agreement",
	DrawThreefold:           "draw by threefold repetition",
	DrawMaxTurns:            "draw by move limit",
	DrawHalfMoveClock:       "draw by half-move clock",
}

// String returns a readable description of the end state.
func (s EndState) String() string {
	if s >= 0 && int(s) < len(endStateNames) {
		return endStateNames[s]
	}
	return "unknown"
}

// Winner returns the winning colour. ok is false for draws and EndNone.
func (s EndState) Winner() (chess.Colour, bool) {
	switch s {
	case WhiteWinCheckmate, WhiteWinForfeit, WhiteWinTime, WhiteWinRepeatedInvalid:
		return chess.White, true
	case BlackWinCheckmate, BlackWinForfeit, BlackWinTime, BlackWinRepeatedInvalid:
		return chess.Black, true
	}
	return chess.White, false
}

// IsDraw reports whether s is a drawn result.
func (s EndState) IsDraw() bool {
	return s >= DrawStalemate && s <= DrawHalfMoveClock
}

// checkmateFor returns the checkmate state won by colour c.
func checkmateFor(c chess.Colour) EndState {
	if c == chess.White {
		return WhiteWinCheckmate
	}
	return BlackWinCheckmate
}

// updateEnded evaluates the end conditions after the legal list was rebuilt.
// Threefold repetition is not evaluated.
func (g *Game) updateEnded() {
	switch {
	case len(g.legal) == 0 && g.IsCheck():
		g.ended = true
		g.endState = checkmateFor(g.players.Passive().Colour)
	case len(g.legal) == 0:
		g.ended = true
		g.endState = DrawStalemate
	case g.halfMoves > g.maxHalfMoves:
		g.ended = true
		g.endState = DrawHalfMoveClock
	}
}
