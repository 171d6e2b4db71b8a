// Package chess defines the primitive vocabulary shared by the engine and its
// front-ends: squares, pieces, bitboards, moves, packed position metadata, and
// the result codes reported for submitted moves.
package chess

// Colour identifies the side a piece, move, or query belongs to.
type Colour uint8

const (
	White Colour = iota
	Black
	// NoColour is reported for the empty piece.
	NoColour
)

// Opposite returns the other side.
func (c Colour) Opposite() Colour {
	return c ^ 1
}

// String returns "white", "black", or "none".
func (c Colour) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return "none"
}

// PieceType is a piece class with no colour attached. The zero value is
// NoPieceType so that optional class fields default to "any/none".
type PieceType uint8

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// pieceTypeLetters holds the upper-case algebraic letters indexed by PieceType.
var pieceTypeLetters = [...]byte{0, 'P', 'N', 'B', 'R', 'Q', 'K'}

// pieceTypeValues holds material values in centipawns indexed by PieceType.
var pieceTypeValues = [...]int{0, 100, 320, 330, 500, 900, 20000}

// pieceTypeNames holds the spoken names indexed by PieceType.
var pieceTypeNames = [...]string{"none", "pawn", "knight", "bishop", "rook", "queen", "king"}

// Letter returns the upper-case algebraic letter for the class, 0 for
// NoPieceType. Pawn yields 'P' even though algebraic notation omits it.
func (t PieceType) Letter() byte {
	if t > King {
		return 0
	}
	return pieceTypeLetters[t]
}

// Value returns the material value of the class in centipawns.
func (t PieceType) Value() int {
	if t > King {
		return 0
	}
	return pieceTypeValues[t]
}

func (t PieceType) String() string {
	if t > King {
		return "invalid"
	}
	return pieceTypeNames[t]
}

// PieceTypeFromLetter maps an upper-case algebraic letter to its class,
// returning NoPieceType for anything else.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'P':
		return Pawn
	case 'N':
		return Knight
	case 'B':
		return Bishop
	case 'R':
		return Rook
	case 'Q':
		return Queen
	case 'K':
		return King
	}
	return NoPieceType
}

// Piece is a coloured piece occupying a square, or NoPiece for an empty
// square. The zero value is NoPiece so a fresh board array starts empty.
type Piece uint8

const (
	NoPiece Piece = iota
	WhitePawn
	WhiteKnight
	WhiteBishop
	WhiteRook
	WhiteQueen
	WhiteKing
	BlackPawn
	BlackKnight
	BlackBishop
	BlackRook
	BlackQueen
	BlackKing
)

// MakePiece combines a colour and a class. NoPieceType yields NoPiece.
func MakePiece(c Colour, t PieceType) Piece {
	if t == NoPieceType || t > King || c > Black {
		return NoPiece
	}
	return Piece(uint8(t) + 6*uint8(c))
}

// Type returns the class of the piece, NoPieceType for NoPiece.
func (p Piece) Type() PieceType {
	if p == NoPiece || p > BlackKing {
		return NoPieceType
	}
	return PieceType((p-1)%6 + 1)
}

// Colour returns the side the piece belongs to, NoColour for NoPiece.
func (p Piece) Colour() Colour {
	if p == NoPiece || p > BlackKing {
		return NoColour
	}
	return Colour((p - 1) / 6)
}

// Value returns the material value of the piece in centipawns.
func (p Piece) Value() int {
	return p.Type().Value()
}

// Char returns the piece's FEN letter: upper case for white, lower case for
// black, 0 for NoPiece.
func (p Piece) Char() byte {
	t := p.Type()
	if t == NoPieceType {
		return 0
	}
	c := t.Letter()
	if p.Colour() == Black {
		c += 'a' - 'A'
	}
	return c
}

func (p Piece) String() string {
	if p == NoPiece || p > BlackKing {
		return "empty"
	}
	return p.Colour().String() + " " + p.Type().String()
}

// PieceFromChar maps a FEN letter to a coloured piece, returning NoPiece for
// anything that is not one of PNBRQK/pnbrqk.
func PieceFromChar(c byte) Piece {
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
		c -= 'a' - 'A'
	}
	return MakePiece(colour, PieceTypeFromLetter(c))
}
