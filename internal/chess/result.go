package chess

// MoveResult is the outcome of a submitted move, castle, or spawn. It is the
// entire contract between the engine and a presentation layer: rejections are
// ordinary values, never errors, and leave the position untouched so the
// caller can retry with corrected input.
type MoveResult uint8

const (
	// ResultOK: the move was committed.
	ResultOK MoveResult = iota
	// ResultOKCheck: committed, and the opponent is now in check.
	ResultOKCheck
	// ResultOKMate: committed, and the opponent is checkmated.
	ResultOKMate
	// ResultBadNotation: the move text could not be parsed.
	ResultBadNotation
	// ResultAmbiguousPiece: more than one piece matches the move text.
	ResultAmbiguousPiece
	// ResultNoVisibility: no matching piece can reach the destination.
	ResultNoVisibility
	// ResultBlocked: the destination holds a piece of the moving side, or a
	// castling path is obstructed.
	ResultBlocked
	// ResultEntersCheck: the move would leave the mover's king attacked.
	ResultEntersCheck
	// ResultCastleKingOrRookMoved: the castling right has been forfeited.
	ResultCastleKingOrRookMoved
	// ResultCastleInCheck: castling was attempted while in check.
	ResultCastleInCheck
	// ResultCastleThroughCheck: the king would cross an attacked square.
	ResultCastleThroughCheck
)

// IsLegal reports whether the move was accepted and committed.
func (r MoveResult) IsLegal() bool {
	return r <= ResultOKMate
}

// String returns the status line a front-end shows for the result.
func (r MoveResult) String() string {
	switch r {
	case ResultOK:
		return "ok"
	case ResultOKCheck:
		return "check"
	case ResultOKMate:
		return "checkmate"
	case ResultBadNotation:
		return "unrecognized move text"
	case ResultAmbiguousPiece:
		return "ambiguous: more than one piece can make that move"
	case ResultNoVisibility:
		return "no piece can reach that square"
	case ResultBlocked:
		return "blocked by a piece of your own"
	case ResultEntersCheck:
		return "that move would leave your king in check"
	case ResultCastleKingOrRookMoved:
		return "castling unavailable: the king or rook has moved"
	case ResultCastleInCheck:
		return "cannot castle while in check"
	case ResultCastleThroughCheck:
		return "cannot castle through an attacked square"
	}
	return "unknown result"
}
