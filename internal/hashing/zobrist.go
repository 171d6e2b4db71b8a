package hashing

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Zobrist key tables for position hashing, generated from a fixed seed so
// keys stay stable across runs and builds.
var (
	pieceKeys     [2][7][64]uint64 // [colour][class][square]; class 0 unused
	enPassantKeys [8]uint64        // one per file
	castlingKeys  [16]uint64       // all 16 rights combinations
	sideKey       uint64           // folded in when black is to move
)

func init() {
	rng := prng{state: 0x9E3779B97F4A7C15}

	for c := 0; c < 2; c++ {
		for class := 1; class < 7; class++ {
			for sq := 0; sq < 64; sq++ {
				pieceKeys[c][class][sq] = rng.next()
			}
		}
	}
	for file := range enPassantKeys {
		enPassantKeys[file] = rng.next()
	}
	for i := range castlingKeys {
		castlingKeys[i] = rng.next()
	}
	sideKey = rng.next()
}

// prng is an xorshift64* generator. A fixed seed keeps the key tables
// reproducible.
type prng struct {
	state uint64
}

func (g *prng) next() uint64 {
	g.state ^= g.state >> 12
	g.state ^= g.state << 25
	g.state ^= g.state >> 27
	return g.state * 0x2545F4914F6CDD1D
}

// PositionKey computes the Zobrist key of a position: the XOR of per-piece
// keys with side to move, castling rights, and the en-passant file folded
// in. The move counters do not contribute, so transpositions reached by
// different move orders share a key.
func PositionKey(p *engine.Position) uint64 {
	var key uint64
	for sq := chess.A1; sq <= chess.H8; sq++ {
		if pc := p.PieceAt(sq); pc != chess.NoPiece {
			key ^= pieceKeys[pc.Colour()][pc.Type()][sq]
		}
	}
	if p.SideToMove() == chess.Black {
		key ^= sideKey
	}
	key ^= castlingKeys[p.CastlingIndex()]
	if file, ok := p.EnPassantFile(); ok {
		key ^= enPassantKeys[file]
	}
	return key
}

// WeakKey hashes the position fields of the FEN rendering with a cheap
// multiplicative string hash. It serves as an independent second check
// against Zobrist key collisions and, like PositionKey, ignores the move
// counters.
func WeakKey(p *engine.Position) uint64 {
	fields := strings.Fields(p.FEN())
	return textKey(strings.Join(fields[:4], " "))
}

func textKey(text string) uint64 {
	var hash uint64
	for _, c := range text {
		hash = hash*31 + uint64(c)
	}
	return hash
}
