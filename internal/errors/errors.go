// Package errors provides the sentinel errors reported by FEN parsing.
// Each malformed field maps to exactly one sentinel so callers can match the
// failure kind with errors.Is() after context has been wrapped around it.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for FEN parsing. Parsing aborts on the first failure and
// never returns a partial position.
var (
	// ErrInvalidCharacter indicates a placement character that is neither a
	// piece letter, an empty-run digit, nor a rank separator.
	ErrInvalidCharacter = errors.New("invalid character in piece placement")

	// ErrUnexpectedSpace indicates the placement field ended before all eight
	// ranks were described.
	ErrUnexpectedSpace = errors.New("piece placement ended early")

	// ErrMissingFields indicates fewer than the six required fields.
	ErrMissingFields = errors.New("missing fields")

	// ErrUnrecognizedSideToMove indicates a side-to-move field other than
	// "w" or "b".
	ErrUnrecognizedSideToMove = errors.New("unrecognized side to move")

	// ErrUnrecognizedCastlingRight indicates a castling character outside
	// KQkq.
	ErrUnrecognizedCastlingRight = errors.New("unrecognized castling right")

	// ErrInvalidEnPassantFile indicates an en-passant square whose file is
	// outside a-h.
	ErrInvalidEnPassantFile = errors.New("invalid en passant file")

	// ErrInvalidEnPassantRank indicates an en-passant square whose rank is
	// not 3 or 6, or trailing characters after it.
	ErrInvalidEnPassantRank = errors.New("invalid en passant rank")

	// ErrInvalidCounter indicates a non-numeric or out-of-range half-move or
	// full-move counter.
	ErrInvalidCounter = errors.New("invalid move counter")

	// ErrPieceCountMismatch indicates a rank describing more or fewer than
	// eight squares, or more than eight ranks.
	ErrPieceCountMismatch = errors.New("piece count mismatch")
)

// Is reports whether any error in err's chain matches target. It forwards to
// the standard library so callers of this package need only one errors
// import.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Wrap adds context to an error while preserving the underlying error for
// inspection with errors.Is() and errors.As().
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
