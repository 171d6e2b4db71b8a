package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// isAttacked reports whether any piece of the given side attacks sq. An
// off-board square is never attacked.
func (p *Position) isAttacked(sq chess.Square, by chess.Colour) bool {
	if !sq.IsValid() {
		return false
	}
	return len(p.Query(Query{Colour: by, Target: sq, Attacking: true})) > 0
}

// Status reports the standing of the side to move: ResultOK, ResultOKCheck,
// or ResultOKMate. It is the same classification SubmitMove returns after a
// legal move, recomputed for the current position.
func (p *Position) Status() chess.MoveResult {
	return p.checksAndMates()
}

// checksAndMates classifies the position just reached: check or checkmate
// against the new side to move, otherwise plain success. Draws are not
// detected.
func (p *Position) checksAndMates() chess.MoveResult {
	kingSq := p.kings[p.sideToMove]
	if kingSq == chess.NoSquare {
		return chess.ResultOK
	}

	checkers := p.Query(Query{
		Colour:    p.sideToMove.Opposite(),
		Target:    kingSq,
		Attacking: true,
	})
	if len(checkers) == 0 {
		return chess.ResultOK
	}
	if p.isMate(kingSq, checkers) {
		return chess.ResultOKMate
	}
	return chess.ResultOKCheck
}

// isMate reports whether the side to move, already checked by checkers, has
// no reply. King escapes are probed by simulating the king step on a
// duplicate; the capture and interposition probes test reachability only, so
// a pinned rescuer still refutes mate here.
func (p *Position) isMate(kingSq chess.Square, checkers []chess.Square) bool {
	defender := p.sideToMove
	attacker := defender.Opposite()

	// A safe square anywhere in the king's neighbourhood refutes mate.
	for fileDelta := -1; fileDelta <= 1; fileDelta++ {
		for rankDelta := -1; rankDelta <= 1; rankDelta++ {
			if fileDelta == 0 && rankDelta == 0 {
				continue
			}
			to := kingSq.Offset(fileDelta, rankDelta)
			if to == chess.NoSquare {
				continue
			}
			if occ := p.squares[to]; occ != chess.NoPiece && occ.Colour() == defender {
				continue
			}
			escape := chess.Move{From: kingSq, To: to}
			if len(p.Query(Query{
				Colour:    attacker,
				Target:    to,
				Attacking: true,
				Simulate:  &escape,
			})) == 0 {
				return false
			}
		}
	}

	// A double check can be answered only by the king.
	if len(checkers) > 1 {
		return true
	}
	checker := checkers[0]

	// Capture the lone checker with any non-king piece.
	if len(p.Query(Query{
		Colour:       defender,
		Target:       checker,
		Attacking:    true,
		ExcludeKings: true,
	})) > 0 {
		return false
	}

	// Contact checks cannot be interposed against.
	switch p.squares[checker].Type() {
	case chess.Pawn, chess.Knight, chess.King:
		return true
	}

	// Interpose on any square between the king and the sliding checker.
	between, _ := chess.Between(kingSq, checker)
	for _, sq := range between {
		if len(p.Query(Query{
			Colour:       defender,
			Target:       sq,
			ExcludeKings: true,
		})) > 0 {
			return false
		}
	}

	return true
}
