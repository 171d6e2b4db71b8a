package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Query selects the squares of pieces matching a set of filters, optionally
// after simulating a hypothetical move on a private duplicate. It is the one
// primitive behind source disambiguation, attack detection, and check
// detection. A query without a reachability filter must set Target to
// NoSquare explicitly; the zero square is a1.
type Query struct {
	// Colour restricts the search to one side's pieces.
	Colour chess.Colour
	// Class restricts the search to one piece class; NoPieceType matches any.
	Class chess.PieceType
	// Target keeps only pieces that can reach this square; NoSquare skips the
	// reachability filter. Attacking selects capture geometry over move
	// geometry, which differ only for pawns.
	Target    chess.Square
	Attacking bool
	// FromFile and FromRank are source disambiguators ('a'..'h', '1'..'8');
	// zero leaves the source unconstrained.
	FromFile byte
	FromRank byte
	// Simulate, when non-nil, is committed to a duplicate before filtering;
	// the receiver is never modified.
	Simulate *chess.Move
	// ExcludeKings drops kings from the candidate set.
	ExcludeKings bool
}

// Query runs q and returns the matching source squares. Filtering swaps
// survivors over removed entries, so the result order is unspecified;
// repeated calls against an unmutated position return the same set.
func (p *Position) Query(q Query) []chess.Square {
	if q.Colour > chess.Black {
		return nil
	}

	pos := p
	if q.Simulate != nil {
		pos = p.Copy()
		pos.doMove(*q.Simulate)
	}

	squares := pos.byColour[q.Colour].Squares()

	if q.ExcludeKings {
		squares = filterSquares(squares, func(sq chess.Square) bool {
			return pos.squares[sq].Type() != chess.King
		})
	}
	if q.Class != chess.NoPieceType {
		squares = filterSquares(squares, func(sq chess.Square) bool {
			return pos.squares[sq].Type() == q.Class
		})
	}
	if q.Target != chess.NoSquare {
		squares = filterSquares(squares, func(sq chess.Square) bool {
			return pos.hasVisibility(sq, q.Target, q.Attacking)
		})
	}
	if q.FromFile != 0 {
		squares = filterSquares(squares, func(sq chess.Square) bool {
			return sq.FileChar() == q.FromFile
		})
	}
	if q.FromRank != 0 {
		squares = filterSquares(squares, func(sq chess.Square) bool {
			return sq.RankChar() == q.FromRank
		})
	}
	return squares
}

// filterSquares drops entries failing keep by swapping the last entry into
// their slot and shrinking, which is why survivor order is unspecified.
func filterSquares(squares []chess.Square, keep func(chess.Square) bool) []chess.Square {
	for i := 0; i < len(squares); {
		if keep(squares[i]) {
			i++
			continue
		}
		squares[i] = squares[len(squares)-1]
		squares = squares[:len(squares)-1]
	}
	return squares
}

// hasVisibility reports whether the piece on from could step to dest under
// its movement geometry. attacking selects capture geometry: for pawns that
// means diagonal steps only, while move geometry allows pushes and the
// en-passant diagonal. King steps never consider destination safety; that is
// the caller's business via a simulated query.
func (p *Position) hasVisibility(from, to chess.Square, attacking bool) bool {
	if !from.IsValid() || !to.IsValid() || from == to {
		return false
	}

	piece := p.squares[from]
	fileDiff := abs(to.File() - from.File())
	rankDiff := abs(to.Rank() - from.Rank())

	switch piece.Type() {
	case chess.Pawn:
		return p.pawnVisibility(from, to, piece.Colour(), attacking)

	case chess.Knight:
		return (fileDiff == 1 && rankDiff == 2) || (fileDiff == 2 && rankDiff == 1)

	case chess.Bishop:
		if fileDiff != rankDiff {
			return false
		}
		return p.pathClear(from, to)

	case chess.Rook:
		if fileDiff != 0 && rankDiff != 0 {
			return false
		}
		return p.pathClear(from, to)

	case chess.Queen:
		if fileDiff != rankDiff && fileDiff != 0 && rankDiff != 0 {
			return false
		}
		return p.pathClear(from, to)

	case chess.King:
		return fileDiff <= 1 && rankDiff <= 1
	}

	return false
}

// pawnVisibility implements pawn geometry for one colour.
func (p *Position) pawnVisibility(from, to chess.Square, colour chess.Colour, attacking bool) bool {
	forward, startRank := 1, 1
	if colour == chess.Black {
		forward, startRank = -1, 6
	}
	fileDiff := to.File() - from.File()
	rankDiff := to.Rank() - from.Rank()

	// Diagonal step: a capture, or en passant onto an empty square.
	if abs(fileDiff) == 1 && rankDiff == forward {
		if occupant := p.squares[to]; occupant != chess.NoPiece {
			return attacking && occupant.Colour() != colour
		}
		return p.enPassantSetup(to, colour)
	}

	if attacking || fileDiff != 0 {
		return false
	}

	// Single push.
	if rankDiff == forward {
		return p.squares[to] == chess.NoPiece
	}

	// Double push from the start rank through two empty squares.
	if rankDiff == 2*forward && from.Rank() == startRank {
		mid := from.Offset(0, forward)
		return p.squares[mid] == chess.NoPiece && p.squares[to] == chess.NoPiece
	}

	return false
}

// enPassantSetup reports whether dest is a live en-passant destination for
// colour: dest sits on the capture rank, its file matches the recorded
// en-passant file, and the passed enemy pawn stands immediately behind it.
func (p *Position) enPassantSetup(dest chess.Square, colour chess.Colour) bool {
	file, ok := p.meta.EnPassantFile()
	if !ok || file != dest.File() {
		return false
	}

	forward, captureRank := 1, 5
	if colour == chess.Black {
		forward, captureRank = -1, 2
	}
	if dest.Rank() != captureRank {
		return false
	}

	behind := dest.Offset(0, -forward)
	return behind != chess.NoSquare &&
		p.squares[behind] == chess.MakePiece(colour.Opposite(), chess.Pawn)
}

// pathClear reports whether every square strictly between from and to is
// empty. Unaligned endpoints are never clear.
func (p *Position) pathClear(from, to chess.Square) bool {
	between, ok := chess.Between(from, to)
	if !ok {
		return false
	}
	for _, sq := range between {
		if p.squares[sq] != chess.NoPiece {
			return false
		}
	}
	return true
}

// abs returns the absolute value of x.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
