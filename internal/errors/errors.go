// Package errors provides sentinel errors and error types for the chess rules engine.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed or inconsistent FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrIllegalMove indicates a move that is not legal in the current position.
	ErrIllegalMove = errors.New("illegal move")

	// ErrInvalidMoveText indicates move text that could not be parsed.
	ErrInvalidMoveText = errors.New("invalid move text")

	// ErrUnsupportedNotation indicates a notation the engine does not implement.
	ErrUnsupportedNotation = errors.New("unsupported notation")

	// ErrGameNotInitialized indicates an operation on a game whose setup failed.
	ErrGameNotInitialized = errors.New("game not initialized")

	// ErrGameEnded indicates a move request after the game has ended.
	ErrGameEnded = errors.New("game has ended")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// SetupError records which FEN field was rejected and why.
type SetupError struct {
	Err   error  // The underlying error
	Field string // FEN field name, e.g. "castling"
	Value string // The offending text (may be empty)
}

// Error returns a formatted error message including the field and value.
func (e *SetupError) Error() string {
	var parts []string
	if e.Field != "" {
		parts = append(parts, e.Field)
	}
	if e.Value != "" {
		parts = append(parts, fmt.Sprintf("%q", e.Value))
	}
	context := strings.Join(parts, " ")
	switch {
	case context != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", context, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case context != "":
		return context
	}
	return "setup error"
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the SetupError wrapper.
func (e *SetupError) Unwrap() error {
	return e.Err
}

// MoveError wraps a rejected move with its ply and text.
type MoveError struct {
	Err      error  // The underlying error
	Ply      int    // Ply at which the move was attempted (0 if unknown)
	MoveText string // The move text as given
}

// Error returns a formatted error message with the ply and move context.
func (e *MoveError) Error() string {
	var parts []string
	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.MoveText != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.MoveText))
	}
	context := strings.Join(parts, ", ")
	if context == "" {
		if e.Err != nil {
			return e.Err.Error()
		}
		return "move error"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	return context
}

// Unwrap returns the underlying error.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
