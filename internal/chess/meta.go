package chess

// Meta packs the auxiliary position state that travels with every move:
// castling rights, the optional en-passant file, the fifty-move counter, and
// the piece captured by the last committed move (kept for inspection, not
// undo).
//
// Layout: bits 0-3 castling rights (white kingside, white queenside, black
// kingside, black queenside), bits 4-7 en-passant file stored as file+1 with
// 0 meaning none, bits 8-15 fifty-move counter, bits 16-23 captured Piece.
type Meta uint32

const (
	metaCastleMask    Meta = 0xf
	metaEPShift            = 4
	metaEPMask        Meta = 0xf << metaEPShift
	metaClockShift         = 8
	metaClockMask     Meta = 0xff << metaClockShift
	metaCapturedShift      = 16
	metaCapturedMask  Meta = 0xff << metaCapturedShift
)

// castleBit returns the flag bit for one side and wing.
func castleBit(c Colour, kingside bool) Meta {
	bit := Meta(1) << (2 * uint(c))
	if !kingside {
		bit <<= 1
	}
	return bit
}

// CanCastle reports whether the given side still holds the given castling
// right.
func (m Meta) CanCastle(c Colour, kingside bool) bool {
	return m&castleBit(c, kingside) != 0
}

// SetCastle grants or revokes one castling right.
func (m *Meta) SetCastle(c Colour, kingside, allowed bool) {
	if allowed {
		*m |= castleBit(c, kingside)
	} else {
		*m &^= castleBit(c, kingside)
	}
}

// HasAnyCastling reports whether any of the four rights is still held.
func (m Meta) HasAnyCastling() bool {
	return m&metaCastleMask != 0
}

// CastlingIndex returns the four rights packed into the low bits 0..15,
// suitable for table lookups.
func (m Meta) CastlingIndex() int {
	return int(m & metaCastleMask)
}

// EnPassantFile returns the recorded en-passant file (0 = a) and whether one
// is set.
func (m Meta) EnPassantFile() (int, bool) {
	f := int(m&metaEPMask) >> metaEPShift
	if f == 0 {
		return 0, false
	}
	return f - 1, true
}

// SetEnPassantFile records the en-passant file. Out-of-range files clear it.
func (m *Meta) SetEnPassantFile(file int) {
	m.ClearEnPassant()
	if file >= 0 && file <= 7 {
		*m |= Meta(file+1) << metaEPShift
	}
}

// ClearEnPassant removes any recorded en-passant file.
func (m *Meta) ClearEnPassant() {
	*m &^= metaEPMask
}

// HalfmoveClock returns the fifty-move counter.
func (m Meta) HalfmoveClock() int {
	return int(m&metaClockMask) >> metaClockShift
}

// SetHalfmoveClock stores the fifty-move counter, saturating at 255.
func (m *Meta) SetHalfmoveClock(n int) {
	if n < 0 {
		n = 0
	}
	if n > 255 {
		n = 255
	}
	*m = *m&^metaClockMask | Meta(n)<<metaClockShift
}

// Captured returns the piece taken by the last committed move, NoPiece when
// that move captured nothing.
func (m Meta) Captured() Piece {
	return Piece(int(m&metaCapturedMask) >> metaCapturedShift)
}

// SetCaptured records the piece taken by the move being committed.
func (m *Meta) SetCaptured(p Piece) {
	*m = *m&^metaCapturedMask | Meta(p)<<metaCapturedShift
}
