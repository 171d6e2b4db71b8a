package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Spawn places a piece of the given class for the side to move, directly and
// without legality checks, for constructing custom positions. It sits outside
// the move-submission path: no move is recorded and the fifty-move counter is
// untouched. Castling eligibility is re-derived from whoever now occupies the
// home squares, the en-passant window is closed, and the turn then advances
// with the usual check and mate report.
func (p *Position) Spawn(class chess.PieceType, sq chess.Square) chess.MoveResult {
	pc := chess.MakePiece(p.sideToMove, class)
	if pc == chess.NoPiece || !sq.IsValid() {
		return chess.ResultBadNotation
	}
	p.place(pc, sq)

	for _, c := range []chess.Colour{chess.White, chess.Black} {
		kingAtHome := p.squares[kingHome(c)] == chess.MakePiece(c, chess.King)
		p.meta.SetCastle(c, true,
			kingAtHome && p.squares[rookHome(c, true)] == chess.MakePiece(c, chess.Rook))
		p.meta.SetCastle(c, false,
			kingAtHome && p.squares[rookHome(c, false)] == chess.MakePiece(c, chess.Rook))
	}

	p.meta.ClearEnPassant()
	p.ply++
	p.sideToMove = p.sideToMove.Opposite()
	return p.checksAndMates()
}
