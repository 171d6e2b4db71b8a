package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrInvalidCharacter", ErrInvalidCharacter, ErrInvalidCharacter},
		{"ErrUnexpectedSpace", ErrUnexpectedSpace, ErrUnexpectedSpace},
		{"ErrMissingFields", ErrMissingFields, ErrMissingFields},
		{"ErrUnrecognizedSideToMove", ErrUnrecognizedSideToMove, ErrUnrecognizedSideToMove},
		{"ErrUnrecognizedCastlingRight", ErrUnrecognizedCastlingRight, ErrUnrecognizedCastlingRight},
		{"ErrInvalidEnPassantFile", ErrInvalidEnPassantFile, ErrInvalidEnPassantFile},
		{"ErrInvalidEnPassantRank", ErrInvalidEnPassantRank, ErrInvalidEnPassantRank},
		{"ErrInvalidCounter", ErrInvalidCounter, ErrInvalidCounter},
		{"ErrPieceCountMismatch", ErrPieceCountMismatch, ErrPieceCountMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Distinct verifies no two sentinels match each other,
// so a caller switching on the failure kind cannot conflate fields.
func TestSentinelErrors_Distinct(t *testing.T) {
	sentinels := []error{
		ErrInvalidCharacter,
		ErrUnexpectedSpace,
		ErrMissingFields,
		ErrUnrecognizedSideToMove,
		ErrUnrecognizedCastlingRight,
		ErrInvalidEnPassantFile,
		ErrInvalidEnPassantRank,
		ErrInvalidCounter,
		ErrPieceCountMismatch,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %v matches sentinel %v", a, b)
			}
		}
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("field 4 %q: %w", "e9", ErrInvalidEnPassantRank)

	if !errors.Is(wrapped, ErrInvalidEnPassantRank) {
		t.Errorf("errors.Is(wrapped, ErrInvalidEnPassantRank) = false, want true")
	}
}

// TestIs verifies the forwarding Is helper matches through wrapping just
// like the standard library.
func TestIs(t *testing.T) {
	wrapped := Wrap(ErrMissingFields, "fen")

	if !Is(wrapped, ErrMissingFields) {
		t.Error("Is(wrapped, ErrMissingFields) = false, want true")
	}
	if Is(wrapped, ErrInvalidCounter) {
		t.Error("Is(wrapped, ErrInvalidCounter) = true, want false")
	}
	if Is(nil, ErrMissingFields) {
		t.Error("Is(nil, sentinel) = true, want false")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	original := ErrInvalidCharacter
	wrapped := Wrap(original, "parsing placement")

	if !errors.Is(wrapped, ErrInvalidCharacter) {
		t.Error("Wrap should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "parsing placement") {
		t.Errorf("Wrap should include context, got %q", msg)
	}

	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	original := ErrInvalidCounter
	wrapped := Wrapf(original, "line %d field %d", 15, 5)

	if !errors.Is(wrapped, ErrInvalidCounter) {
		t.Error("Wrapf should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "line 15") {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
