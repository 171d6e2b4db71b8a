package chess

// MoveFlag marks the special nature of a move. Promotions carry their target
// class in the flag itself.
type MoveFlag uint8

const (
	FlagNone MoveFlag = iota
	FlagDoublePush
	FlagEnPassant
	FlagCastle
	FlagPromoteKnight
	FlagPromoteBishop
	FlagPromoteRook
	FlagPromoteQueen
)

// IsPromotion reports whether the flag is one of the four promotion flags.
func (f MoveFlag) IsPromotion() bool {
	return f >= FlagPromoteKnight && f <= FlagPromoteQueen
}

// PromotionType returns the class a promotion flag promotes to, NoPieceType
// for non-promotion flags.
func (f MoveFlag) PromotionType() PieceType {
	switch f {
	case FlagPromoteKnight:
		return Knight
	case FlagPromoteBishop:
		return Bishop
	case FlagPromoteRook:
		return Rook
	case FlagPromoteQueen:
		return Queen
	}
	return NoPieceType
}

// PromotionFlag returns the flag promoting to the given class, FlagNone for
// classes a pawn cannot become.
func PromotionFlag(t PieceType) MoveFlag {
	switch t {
	case Knight:
		return FlagPromoteKnight
	case Bishop:
		return FlagPromoteBishop
	case Rook:
		return FlagPromoteRook
	case Queen:
		return FlagPromoteQueen
	}
	return FlagNone
}

// Move pairs a source and destination square with a flag. It is purely
// descriptive: building one asserts nothing about legality.
type Move struct {
	From Square
	To   Square
	Flag MoveFlag
}

// String returns the move in long coordinate form, with a promotion suffix
// when applicable, e.g. "e2e4" or "e7e8=Q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if t := m.Flag.PromotionType(); t != NoPieceType {
		s += "=" + string(t.Letter())
	}
	return s
}
