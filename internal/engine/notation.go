package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// MoveFormat selects a move notation.
type MoveFormat int

const (
	FormatUCI MoveFormat = iota // coordinate form, e.g. "e7e8q"
	FormatLAN                   // long algebraic, e.g. "Ng1-f3", parse only
	FormatSAN                   // standard algebraic, not supported
)

// UnsupportedMoveText is returned when formatting in a notation that is not
// implemented.
const UnsupportedMoveText = "?"

// maxLANLen is the longest accepted long algebraic move, e.g. "Pe7xd8=Q".
const maxLANLen = 10

// String returns the name of the format.
func (f MoveFormat) String() string {
	switch f {
	case FormatLAN:
		return "lan"
	case FormatSAN:
		return "san"
	}
	return "uci"
}

// ParseMoveFormat converts a format name to a MoveFormat.
func ParseMoveFormat(name string) (MoveFormat, error) {
	switch strings.ToLower(name) {
	case "uci", "":
		return FormatUCI, nil
	case "lan":
		return FormatLAN, nil
	case "san":
		return FormatSAN, nil
	}
	return FormatUCI, fmt.Errorf("unknown move format %q: %w", name, errors.ErrUnsupportedNotation)
}

// ParseMove parses move text in the given format.
func ParseMove(text string, f MoveFormat) (chess.Move, error) {
	switch f {
	case FormatLAN:
		return ParseLAN(text)
	case FormatSAN:
		return ParseSAN(text)
	}
	return ParseUCI(text)
}

// ParseUCI parses a coordinate move such as "e2e4" or "e7e8q".
func ParseUCI(text string) (chess.Move, error) {
	if len(text) < 4 || len(text) > 5 {
		return chess.NullMove, fmt.Errorf("%q: expected 4 or 5 characters: %w", text, errors.ErrInvalidMoveText)
	}
	from, okFrom := chess.ParseSquare(text[0:2])
	to, okTo := chess.ParseSquare(text[2:4])
	if !okFrom || !okTo {
		return chess.NullMove, fmt.Errorf("%q: square out of range: %w", text, errors.ErrInvalidMoveText)
	}
	m := chess.Move{From: from, To: to}
	if len(text) == 5 {
		switch text[4] {
		case 'q':
			m.Promotion = chess.Queen
		case 'r':
			m.Promotion = chess.Rook
		case 'b':
			m.Promotion = chess.Bishop
		case 'n':
			m.Promotion = chess.Knight
		default:
			return chess.NullMove, fmt.Errorf("%q: invalid promotion %q: %w", text, text[4], errors.ErrInvalidMoveText)
		}
	}
	return m, nil
}

// ParseLAN parses long algebraic notation: an optional uppercase piece
// letter, the origin, an optional 'x' or '-', the destination, and an
// optional "=Q", "=R", "=B" or "=N". The piece letter is not checked against
// the board.
func ParseLAN(text string) (chess.Move, error) {
	bad := func(reason string) (chess.Move, error) {
		return chess.NullMove, fmt.Errorf("%q: %s: %w", text, reason, errors.ErrInvalidMoveText)
	}
	if len(text) < 4 || len(text) > maxLANLen {
		return bad("bad length")
	}

	i := 0
	if text[0] >= 'A' && text[0] <= 'Z' {
		i++
	}
	if i+2 > len(text) {
		return bad("missing origin")
	}
	from, ok := chess.ParseSquare(text[i : i+2])
	if !ok {
		return bad("origin out of range")
	}
	i += 2
	if i < len(text) && (text[i] == 'x' || text[i] == '-') {
		i++
	}
	if i+2 > len(text) {
		return bad("missing destination")
	}
	to, ok := chess.ParseSquare(text[i : i+2])
	if !ok {
		return bad("destination out of range")
	}
	i += 2

	m := chess.Move{From: from, To: to}
	switch rest := text[i:]; rest {
	case "":
	case "=Q":
		m.Promotion = chess.Queen
	case "=R":
		m.Promotion = chess.Rook
	case "=B":
		m.Promotion = chess.Bishop
	case "=N":
		m.Promotion = chess.Knight
	default:
		return bad("trailing " + rest)
	}
	return m, nil
}

// ParseSAN is not implemented and always fails.
func ParseSAN(text string) (chess.Move, error) {
	return chess.NullMove, fmt.Errorf("SAN %q: %w", text, errors.ErrUnsupportedNotation)
}

// FormatMove renders m in format f. Only the coordinate form is produced;
// other formats yield UnsupportedMoveText.
func FormatMove(m chess.Move, f MoveFormat) string {
	if f != FormatUCI {
		return UnsupportedMoveText
	}
	return m.String()
}
