// Package testutil provides shared test utilities for the chess-rules-go project.
// These utilities reduce code duplication across test files and provide
// consistent fixture setup helpers.
package testutil

import (
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// ParsePosition parses a FEN record and returns nil if it is malformed.
// Use this for tests where parse failure is an acceptable outcome.
func ParsePosition(fen string) *engine.Position {
	p, err := engine.ParseFEN(fen)
	if err != nil {
		return nil
	}
	return p
}

// MustParsePosition parses a FEN record and calls t.Fatal if it is malformed.
// Use this in test setup where parse failure should abort the test.
func MustParsePosition(t *testing.T, fen string) *engine.Position {
	t.Helper()
	p := ParsePosition(fen)
	if p == nil {
		t.Fatalf("failed to parse test position:\n%s", fen)
	}
	return p
}

// MustPlayMoves submits each move of a space-separated sequence to p and
// calls t.Fatal on the first rejection.
func MustPlayMoves(t *testing.T, p *engine.Position, line string) {
	t.Helper()
	for _, move := range strings.Fields(line) {
		if res := p.SubmitMove(move); !res.IsLegal() {
			t.Fatalf("move %q rejected: %v", move, res)
		}
	}
}

// MustReplayLine plays a space-separated move sequence from the standard
// starting position and returns the resulting position.
func MustReplayLine(t *testing.T, line string) *engine.Position {
	t.Helper()
	p := engine.StartingPosition()
	MustPlayMoves(t, p, line)
	return p
}
