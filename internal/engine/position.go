// Package engine implements the chess rules engine: the Position aggregate,
// the generalized piece query behind move legality and attack detection,
// algebraic move submission, castling, check and checkmate detection, and the
// FEN codec.
package engine

import (
	"fmt"
	"strings"
	"sync"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Position is a complete game state: per-square pieces, per-colour occupancy
// bitboards, cached king squares, packed Meta, the side to move, and the ply
// counter. It is a plain value: what-if probes copy it wholesale and never
// touch the original. All mutation flows through SubmitMove, Castle, and
// Spawn; presentation layers read through the accessors and hold no other
// contract.
type Position struct {
	squares    [64]chess.Piece
	byColour   [2]chess.Bitboard
	kings      [2]chess.Square
	meta       chess.Meta
	sideToMove chess.Colour
	ply        int
}

// NewPosition returns an empty board with white to move.
func NewPosition() *Position {
	return &Position{
		kings: [2]chess.Square{chess.NoSquare, chess.NoSquare},
	}
}

// startingPosition parses InitialFEN exactly once; consumers copy the value.
var startingPosition = sync.OnceValue(func() Position {
	p, err := ParseFEN(InitialFEN)
	if err != nil {
		panic("engine: bad initial FEN: " + err.Error())
	}
	return *p
})

// StartingPosition returns an independent copy of the standard starting
// position.
func StartingPosition() *Position {
	p := startingPosition()
	return &p
}

// Copy returns an independent duplicate of the position.
func (p *Position) Copy() *Position {
	dup := *p
	return &dup
}

// PieceAt returns the occupant of sq, NoPiece for empty or off-board squares.
func (p *Position) PieceAt(sq chess.Square) chess.Piece {
	if !sq.IsValid() {
		return chess.NoPiece
	}
	return p.squares[sq]
}

// SideToMove returns the colour whose turn it is.
func (p *Position) SideToMove() chess.Colour {
	return p.sideToMove
}

// Ply returns the number of half-moves committed since move one.
func (p *Position) Ply() int {
	return p.ply
}

// KingSquare returns the cached square of the given side's king, NoSquare
// when that king is absent.
func (p *Position) KingSquare(c chess.Colour) chess.Square {
	return p.kings[c]
}

// Occupied returns the occupancy bitboard for one side.
func (p *Position) Occupied(c chess.Colour) chess.Bitboard {
	return p.byColour[c]
}

// CanCastle reports whether the given side still holds the given castling
// right.
func (p *Position) CanCastle(c chess.Colour, kingside bool) bool {
	return p.meta.CanCastle(c, kingside)
}

// EnPassantFile returns the recorded en-passant file and whether one is set.
func (p *Position) EnPassantFile() (int, bool) {
	return p.meta.EnPassantFile()
}

// HalfmoveClock returns the fifty-move counter.
func (p *Position) HalfmoveClock() int {
	return p.meta.HalfmoveClock()
}

// LastCapture returns the piece taken by the last committed move, NoPiece
// when it captured nothing.
func (p *Position) LastCapture() chess.Piece {
	return p.meta.Captured()
}

// CastlingIndex packs the four castling rights into the low bits 0..15.
func (p *Position) CastlingIndex() int {
	return p.meta.CastlingIndex()
}

// InCheck reports whether the side to move is currently attacked.
func (p *Position) InCheck() bool {
	return p.isAttacked(p.kings[p.sideToMove], p.sideToMove.Opposite())
}

// place puts a piece on a square, displacing any occupant and keeping the
// bitboards and king cache current.
func (p *Position) place(pc chess.Piece, sq chess.Square) {
	p.remove(sq)
	if pc == chess.NoPiece {
		return
	}
	p.squares[sq] = pc
	c := pc.Colour()
	p.byColour[c] = p.byColour[c].Set(sq)
	if pc.Type() == chess.King {
		p.kings[c] = sq
	}
}

// remove empties a square, keeping the bitboards and king cache current.
func (p *Position) remove(sq chess.Square) {
	pc := p.squares[sq]
	if pc == chess.NoPiece {
		return
	}
	p.squares[sq] = chess.NoPiece
	c := pc.Colour()
	p.byColour[c] = p.byColour[c].Clear(sq)
	if pc.Type() == chess.King && p.kings[c] == sq {
		p.kings[c] = chess.NoSquare
	}
}

// movePiece relocates the occupant of from to to, capturing whatever was
// there.
func (p *Position) movePiece(from, to chess.Square) {
	pc := p.squares[from]
	p.remove(from)
	p.place(pc, to)
}

// String renders the board as an 8-rank grid, rank 8 first, for debugging
// and test output.
func (p *Position) String() string {
	var sb strings.Builder
	for rank := 7; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d ", rank+1)
		for file := 0; file < 8; file++ {
			pc := p.squares[chess.NewSquare(file, rank)]
			sb.WriteByte(' ')
			if pc == chess.NoPiece {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(pc.Char())
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a b c d e f g h\n")
	return sb.String()
}
