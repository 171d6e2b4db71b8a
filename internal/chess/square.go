package chess

// Square addresses one of the 64 board squares as a linear index:
// index = rank*8 + file, with file a..h mapped to 0..7 and rank 1..8 to 0..7.
type Square uint8

// Squares in index order, A1 = 0 through H8 = 63.
const (
	A1 Square = iota
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)

// NoSquare is the off-board sentinel.
const NoSquare Square = 64

// NewSquare builds a square from zero-based file and rank, NoSquare when
// either is out of range.
func NewSquare(file, rank int) Square {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare
	}
	return Square(rank*8 + file)
}

// ParseSquare reads algebraic coordinates like "e4", returning NoSquare for
// anything malformed.
func ParseSquare(s string) Square {
	if len(s) != 2 {
		return NoSquare
	}
	return NewSquare(int(s[0]-'a'), int(s[1]-'1'))
}

// File returns the zero-based file, 0 = a.
func (sq Square) File() int {
	return int(sq & 7)
}

// Rank returns the zero-based rank, 0 = rank 1.
func (sq Square) Rank() int {
	return int(sq >> 3)
}

// FileChar returns the file letter 'a'..'h'.
func (sq Square) FileChar() byte {
	return byte('a' + sq.File())
}

// RankChar returns the rank digit '1'..'8'.
func (sq Square) RankChar() byte {
	return byte('1' + sq.Rank())
}

// IsValid reports whether the square is on the board.
func (sq Square) IsValid() bool {
	return sq < NoSquare
}

func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return string([]byte{sq.FileChar(), sq.RankChar()})
}

// Offset returns the square displaced by the given file and rank deltas,
// NoSquare when the displacement leaves the board.
func (sq Square) Offset(fileDelta, rankDelta int) Square {
	if !sq.IsValid() {
		return NoSquare
	}
	return NewSquare(sq.File()+fileDelta, sq.Rank()+rankDelta)
}

// Between returns the open interval of squares strictly between a and b when
// the endpoints share a file, rank, or diagonal. ok is false for unaligned or
// equal endpoints; aligned adjacent endpoints yield an empty interval.
func Between(a, b Square) (squares []Square, ok bool) {
	if !a.IsValid() || !b.IsValid() || a == b {
		return nil, false
	}
	fileDiff := b.File() - a.File()
	rankDiff := b.Rank() - a.Rank()
	if fileDiff != 0 && rankDiff != 0 && abs(fileDiff) != abs(rankDiff) {
		return nil, false
	}
	fileStep := sign(fileDiff)
	rankStep := sign(rankDiff)
	for sq := a.Offset(fileStep, rankStep); sq != b; sq = sq.Offset(fileStep, rankStep) {
		squares = append(squares, sq)
	}
	return squares, true
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// sign returns the sign of x: -1, 0, or 1.
func sign(x int) int {
	if x > 0 {
		return 1
	}
	if x < 0 {
		return -1
	}
	return 0
}
