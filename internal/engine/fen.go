// Package engine implements the chess rules: board bookkeeping, legal move
// generation, move application and undo, and game-ending detection.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenFields is the number of space-separated FEN fields.
const fenFields = 6

// invalidFEN builds a SetupError for the named field.
func invalidFEN(field, value, format string, args ...interface{}) error {
	return &errors.SetupError{
		Field: field,
		Value: value,
		Err:   fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), errors.ErrInvalidFEN),
	}
}

// setup loads a FEN string into a cleared game.
func (g *Game) setup(fen string) error {
	parts := strings.Split(fen, " ")
	if len(parts) != fenFields {
		return invalidFEN("fields", fen, "expected %d space-separated fields, got %d", fenFields, len(parts))
	}

	if err := parsePiecePositions(&g.board, parts[0]); err != nil {
		return err
	}

	active, err := parseSideToMove(parts[1])
	if err != nil {
		return err
	}
	g.players.active = active

	if err := parseCastlingRights(&g.players, parts[2]); err != nil {
		return err
	}

	if g.enPassant, err = parseEnPassant(parts[3]); err != nil {
		return err
	}

	if g.halfMoves, err = parseClock("half-move clock", parts[4]); err != nil {
		return err
	}
	if g.fullMoves, err = parseClock("full-move number", parts[5]); err != nil {
		return err
	}

	g.board.InitCoverage()
	return g.validatePosition()
}

// parsePiecePositions parses the piece placement field of a FEN string and
// hands out identities: kings get the fixed king IDs, every other piece the
// next free ID of its colour in reading order.
func parsePiecePositions(board *Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return invalidFEN("board", positions, "expected %d ranks, got %d", chess.BoardSize, len(ranks))
	}

	next := [chess.NumColours]ID{WhiteKingID + 1, BlackKingID + 1}
	var kings [chess.NumColours]int

	for i, row := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		lastWasDigit := false

		for j := 0; j < len(row); j++ {
			c := row[j]
			if c >= '1' && c <= '8' {
				if lastWasDigit {
					return invalidFEN("board", row, "consecutive digits")
				}
				lastWasDigit = true
				file += int(c - '0')
				if file > chess.BoardSize {
					return invalidFEN("board", row, "rank %d has more than %d files", rank+1, chess.BoardSize)
				}
				continue
			}
			lastWasDigit = false

			piece, colour, ok := chess.PieceFromLetter(c)
			if !ok {
				return invalidFEN("board", row, "invalid piece character %q", c)
			}
			if file >= chess.BoardSize {
				return invalidFEN("board", row, "rank %d has more than %d files", rank+1, chess.BoardSize)
			}
			if piece == chess.Pawn && (rank == 0 || rank == chess.BoardSize-1) {
				return invalidFEN("board", row, "pawn on rank %d", rank+1)
			}

			var id ID
			if piece == chess.King {
				kings[colour]++
				if kings[colour] > 1 {
					return invalidFEN("board", positions, "more than one %s king", colour)
				}
				id = firstID(colour)
			} else {
				id = next[colour]
				if id >= firstID(colour)+IDsPerColour {
					return invalidFEN("board", positions, "too many %s pieces", colour)
				}
				next[colour]++
			}
			board.Register(chess.NewSquare(file, rank), id, piece)
			file++
		}

		if file != chess.BoardSize {
			return invalidFEN("board", row, "rank %d has %d files", rank+1, file)
		}
	}

	for c := chess.White; c < chess.NumColours; c++ {
		if kings[c] != 1 {
			return invalidFEN("board", positions, "missing %s king", c)
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(side string) (chess.Colour, error) {
	switch side {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	}
	return chess.White, invalidFEN("side to move", side, "expected w or b")
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(players *Players, rights string) error {
	if len(rights) < 1 || len(rights) > 4 {
		return invalidFEN("castling", rights, "expected 1 to 4 characters")
	}
	if rights == "-" {
		return nil
	}

	seen := make(map[byte]bool, 4)
	for i := 0; i < len(rights); i++ {
		c := rights[i]
		if seen[c] {
			return invalidFEN("castling", rights, "repeated %q", c)
		}
		seen[c] = true
		switch c {
		case 'K':
			players.Get(chess.White).Castles.KingSide = true
		case 'Q':
			players.Get(chess.White).Castles.QueenSide = true
		case 'k':
			players.Get(chess.Black).Castles.KingSide = true
		case 'q':
			players.Get(chess.Black).Castles.QueenSide = true
		default:
			return invalidFEN("castling", rights, "invalid character %q", c)
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(target string) (chess.Square, error) {
	if target == "-" {
		return chess.NoSquare, nil
	}
	sq, ok := chess.ParseSquare(target)
	if !ok || (sq.Rank() != 2 && sq.Rank() != 5) {
		return chess.NoSquare, invalidFEN("en passant", target, "expected - or a square on rank 3 or 6")
	}
	return sq, nil
}

// parseClock parses one of the two counters.
func parseClock(field, value string) (int, error) {
	if value == "" {
		return 0, invalidFEN(field, value, "empty")
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return 0, invalidFEN(field, value, "not a number")
		}
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, invalidFEN(field, value, "out of range")
	}
	return n, nil
}

// validatePosition checks the relations between fields that the field
// parsers cannot see on their own. Coverage must already be initialized.
func (g *Game) validatePosition() error {
	whiteKing := g.board.SquareOf(WhiteKingID)
	blackKing := g.board.SquareOf(BlackKingID)
	if abs(whiteKing.File()-blackKing.File()) <= 1 && abs(whiteKing.Rank()-blackKing.Rank()) <= 1 {
		return invalidFEN("board", "", "kings on adjacent squares")
	}

	for c := chess.White; c < chess.NumColours; c++ {
		p := g.players.Get(c)
		if !p.Castles.KingSide && !p.Castles.QueenSide {
			continue
		}
		if g.board.SquareOf(p.KingID) != p.KingHome {
			return invalidFEN("castling", "", "%s may castle but its king is not on %v", c, p.KingHome)
		}
		if p.Castles.KingSide && !g.hasRook(p.KingSideRook, c) {
			return invalidFEN("castling", "", "%s may castle short without a rook on %v", c, p.KingSideRook)
		}
		if p.Castles.QueenSide && !g.hasRook(p.QueenSideRook, c) {
			return invalidFEN("castling", "", "%s may castle long without a rook on %v", c, p.QueenSideRook)
		}
	}

	if g.enPassant != chess.NoSquare {
		active := g.players.Active()
		victim := g.enPassant - active.PawnForward
		if g.enPassant.Rank() != active.PawnPromoRank-int(active.PawnForward/chess.BoardSize) {
			return invalidFEN("en passant", g.enPassant.String(), "target rank does not match the side to move")
		}
		if !g.board.IsEmpty(g.enPassant) {
			return invalidFEN("en passant", g.enPassant.String(), "target square is occupied")
		}
		if p := g.board.At(victim); p.Piece != chess.Pawn || !p.IsEnemy(active.Colour) {
			return invalidFEN("en passant", g.enPassant.String(), "no pawn to capture on %v", victim)
		}
	}

	passive := g.players.Passive()
	if g.board.IsCoveredBy(g.board.SquareOf(passive.KingID), g.players.Active().Colour) {
		return invalidFEN("board", "", "%s is in check but not to move", passive.Colour)
	}
	return nil
}

func (g *Game) hasRook(sq chess.Square, c chess.Colour) bool {
	p := g.board.At(sq)
	return p.Piece == chess.Rook && p.IsAlly(c)
}

// FEN returns the current position as a FEN string, or "" if the game is
// not initialized.
func (g *Game) FEN() string {
	if !g.valid {
		return ""
	}
	var sb strings.Builder

	writePiecePositions(&sb, &g.board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, g.players.active)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, &g.players)
	sb.WriteByte(' ')
	writeEnPassant(&sb, g.enPassant)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", g.halfMoves, g.fullMoves)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *Board) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			p := board.At(chess.NewSquare(file, rank))
			if p.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(p.Piece.ColouredLetter(p.Colour()))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, active chess.Colour) {
	if active == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, players *Players) {
	white := players.Get(chess.White).Castles
	black := players.Get(chess.Black).Castles
	hasCastling := false
	for _, r := range []struct {
		ok     bool
		letter byte
	}{
		{white.KingSide, 'K'},
		{white.QueenSide, 'Q'},
		{black.KingSide, 'k'},
		{black.QueenSide, 'q'},
	} {
		if r.ok {
			sb.WriteByte(r.letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, target chess.Square) {
	if target == chess.NoSquare {
		sb.WriteByte('-')
		return
	}
	sb.WriteString(target.String())
}
