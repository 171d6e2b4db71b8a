package engine

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/parser"
)

// SubmitMove parses text as an algebraic move for the side to move, resolves
// its source square, and commits the move when it is legal. Every rejection
// is an ordinary result code and leaves the position untouched, so the caller
// can retry with corrected input.
func (p *Position) SubmitMove(text string) chess.MoveResult {
	intent, ok := parser.DecodeMove(text)
	if !ok {
		return chess.ResultBadNotation
	}
	if intent.Castle != parser.CastleNone {
		return p.Castle(intent.Castle == parser.CastleKingside)
	}

	mover := p.sideToMove
	target := intent.Target

	if occ := p.squares[target]; occ != chess.NoPiece && occ.Colour() == mover {
		return chess.ResultBlocked
	}

	sources := p.Query(Query{
		Colour:    mover,
		Class:     intent.Piece,
		Target:    target,
		Attacking: p.squares[target] != chess.NoPiece,
		FromFile:  intent.FromFile,
		FromRank:  intent.FromRank,
	})
	if len(sources) == 0 {
		return chess.ResultNoVisibility
	}
	if len(sources) > 1 {
		return chess.ResultAmbiguousPiece
	}

	move := chess.Move{
		From: sources[0],
		To:   target,
		Flag: p.deriveFlag(sources[0], target, intent.Promotion),
	}
	if p.wouldLeaveKingAttacked(move) {
		return chess.ResultEntersCheck
	}

	p.doMove(move)
	return p.checksAndMates()
}

// deriveFlag classifies a resolved move from board context: promotion when a
// pawn reaches the far rank (queen unless the text said otherwise), double
// push when a pawn advances two ranks, en passant when a pawn steps
// diagonally onto an empty square. Visibility has already been established,
// so the empty diagonal can only be the recorded en-passant square.
func (p *Position) deriveFlag(from, to chess.Square, promotion chess.PieceType) chess.MoveFlag {
	moving := p.squares[from]
	if moving.Type() != chess.Pawn {
		return chess.FlagNone
	}

	farRank := 7
	if moving.Colour() == chess.Black {
		farRank = 0
	}
	if to.Rank() == farRank {
		if f := chess.PromotionFlag(promotion); f != chess.FlagNone {
			return f
		}
		return chess.FlagPromoteQueen
	}

	if abs(to.Rank()-from.Rank()) == 2 {
		return chess.FlagDoublePush
	}

	if to.File() != from.File() && p.squares[to] == chess.NoPiece {
		return chess.FlagEnPassant
	}

	return chess.FlagNone
}

// wouldLeaveKingAttacked reports whether committing m would leave the moving
// side's king attacked. The probe simulates m on a duplicate; when the king
// itself moves, its destination is the square tested.
func (p *Position) wouldLeaveKingAttacked(m chess.Move) bool {
	mover := p.sideToMove
	kingSq := p.kings[mover]
	if p.squares[m.From].Type() == chess.King {
		kingSq = m.To
	}
	if kingSq == chess.NoSquare {
		return false
	}

	attackers := p.Query(Query{
		Colour:    mover.Opposite(),
		Target:    kingSq,
		Attacking: true,
		Simulate:  &m,
	})
	return len(attackers) > 0
}

// Castle attempts to castle the side to move on the given wing. The walk
// from the king toward the rook's home square checks each square once:
// occupied blocks, attacked forbids. On the queenside the walk includes the
// knight's square next to the rook, so castling is also refused when only
// that square is attacked.
func (p *Position) Castle(kingside bool) chess.MoveResult {
	mover := p.sideToMove
	if !p.meta.CanCastle(mover, kingside) {
		return chess.ResultCastleKingOrRookMoved
	}

	// A held right guarantees the king stands on its home square.
	kingSq := p.kings[mover]
	if p.isAttacked(kingSq, mover.Opposite()) {
		return chess.ResultCastleInCheck
	}

	transit, _ := chess.Between(kingSq, rookHome(mover, kingside))
	for _, sq := range transit {
		if p.squares[sq] != chess.NoPiece {
			return chess.ResultBlocked
		}
		if p.isAttacked(sq, mover.Opposite()) {
			return chess.ResultCastleThroughCheck
		}
	}

	to := kingSq.Offset(2, 0)
	if !kingside {
		to = kingSq.Offset(-2, 0)
	}
	p.doMove(chess.Move{From: kingSq, To: to, Flag: chess.FlagCastle})
	return p.checksAndMates()
}

// doMove commits m unconditionally; legality is the caller's problem. Query
// also drives it against duplicates to realize hypothetical positions.
func (p *Position) doMove(m chess.Move) {
	moving := p.squares[m.From]
	captured := p.squares[m.To]

	// The en-passant window lasts one half-move.
	p.meta.ClearEnPassant()
	if m.Flag == chess.FlagDoublePush {
		p.meta.SetEnPassantFile(m.From.File())
	}

	if moving.Type() == chess.King {
		p.meta.SetCastle(moving.Colour(), true, false)
		p.meta.SetCastle(moving.Colour(), false, false)
	}

	switch {
	case m.Flag.IsPromotion():
		p.remove(m.From)
		p.place(chess.MakePiece(moving.Colour(), m.Flag.PromotionType()), m.To)

	case m.Flag == chess.FlagEnPassant:
		// The passed pawn sits beside the source, not on the destination.
		victim := chess.NewSquare(m.To.File(), m.From.Rank())
		captured = p.squares[victim]
		p.remove(victim)
		p.movePiece(m.From, m.To)

	case m.Flag == chess.FlagCastle:
		kingside := m.To.File() > m.From.File()
		rookTo := m.To.Offset(1, 0)
		if kingside {
			rookTo = m.To.Offset(-1, 0)
		}
		p.movePiece(m.From, m.To)
		p.movePiece(rookHome(moving.Colour(), kingside), rookTo)

	default:
		p.movePiece(m.From, m.To)
	}

	p.ply++
	p.sideToMove = p.sideToMove.Opposite()

	p.meta.SetCaptured(captured)
	if captured != chess.NoPiece || moving.Type() == chess.Pawn {
		p.meta.SetHalfmoveClock(0)
	} else {
		p.meta.SetHalfmoveClock(p.meta.HalfmoveClock() + 1)
	}

	// Covers rooks captured at home as well as rooks and kings leaving it.
	p.revokeRightsByEndpoint(m.From)
	p.revokeRightsByEndpoint(m.To)
}

// revokeRightsByEndpoint drops any castling right whose king or rook home
// square is sq.
func (p *Position) revokeRightsByEndpoint(sq chess.Square) {
	switch sq {
	case chess.E1:
		p.meta.SetCastle(chess.White, true, false)
		p.meta.SetCastle(chess.White, false, false)
	case chess.H1:
		p.meta.SetCastle(chess.White, true, false)
	case chess.A1:
		p.meta.SetCastle(chess.White, false, false)
	case chess.E8:
		p.meta.SetCastle(chess.Black, true, false)
		p.meta.SetCastle(chess.Black, false, false)
	case chess.H8:
		p.meta.SetCastle(chess.Black, true, false)
	case chess.A8:
		p.meta.SetCastle(chess.Black, false, false)
	}
}

// kingHome returns the king's starting square for a side.
func kingHome(c chess.Colour) chess.Square {
	if c == chess.Black {
		return chess.E8
	}
	return chess.E1
}

// rookHome returns the rook's starting square for a side and wing.
func rookHome(c chess.Colour, kingside bool) chess.Square {
	switch {
	case c == chess.White && kingside:
		return chess.H1
	case c == chess.White:
		return chess.A1
	case kingside:
		return chess.H8
	default:
		return chess.A8
	}
}
