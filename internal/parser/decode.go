// Package parser decodes algebraic move text into its semantic parts. Board
// context — which piece actually moves, en-passant status, promotion defaults
// — is applied later by the engine; the decoder only reports what the text
// itself says.
package parser

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Castling says which castle token, if any, the text named.
type Castling uint8

const (
	CastleNone Castling = iota
	CastleKingside
	CastleQueenside
)

// Move is the semantic content of one algebraic move string. FromFile and
// FromRank are disambiguators ('a'..'h', '1'..'8'), zero when the text does
// not constrain them; Target is NoSquare for castle tokens.
type Move struct {
	Text      string
	Piece     chess.PieceType // moving class, Pawn when the text omits it
	Target    chess.Square
	FromFile  byte
	FromRank  byte
	Promotion chess.PieceType // NoPieceType when not a promotion
	Castle    Castling
}

// isFile returns true if c is a file character.
func isFile(c byte) bool {
	return c >= 'a' && c <= 'h'
}

// isRank returns true if c is a rank character.
func isRank(c byte) bool {
	return c >= '1' && c <= '8'
}

// pieceLetter maps an upper-case piece letter to its class. Lower-case
// letters are never pieces here: a bare 'b' names the b-file.
func pieceLetter(c byte) chess.PieceType {
	switch c {
	case 'N':
		return chess.Knight
	case 'B':
		return chess.Bishop
	case 'R':
		return chess.Rook
	case 'Q':
		return chess.Queen
	case 'K':
		return chess.King
	}
	return chess.NoPieceType
}

// isCapture returns true if c is a capture or separator character.
func isCapture(c byte) bool {
	return c == 'x' || c == 'X' || c == ':' || c == '-'
}

// isCastlingChar returns true if c is a castling character.
func isCastlingChar(c byte) bool {
	return c == 'O' || c == '0' || c == 'o'
}

// isCheck returns true if c is a check or mate indicator.
func isCheck(c byte) bool {
	return c == '+' || c == '#'
}

// square builds a Square from file and rank characters.
func square(file, rank byte) chess.Square {
	return chess.NewSquare(int(file-'a'), int(rank-'1'))
}

// DecodeMove parses one algebraic move string. The boolean result is false
// for text that cannot describe a move; trailing check/mate decoration and
// "ep"/"e.p." markers are tolerated and ignored.
func DecodeMove(text string) (Move, bool) {
	m := Move{
		Text:      text,
		Piece:     chess.Pawn,
		Target:    chess.NoSquare,
		Promotion: chess.NoPieceType,
	}
	pos := 0
	ok := true

	currentChar := func() byte {
		if pos >= len(text) {
			return 0
		}
		return text[pos]
	}

	advance := func() {
		if pos < len(text) {
			pos++
		}
	}

	remaining := func() string {
		if pos >= len(text) {
			return ""
		}
		return text[pos:]
	}

	// readTarget consumes a full destination square, failing without one.
	readTarget := func() {
		file := currentChar()
		if !isFile(file) {
			ok = false
			return
		}
		advance()
		if !isRank(currentChar()) {
			ok = false
			return
		}
		m.Target = square(file, currentChar())
		advance()
	}

	switch {
	case isFile(currentChar()):
		// Pawn move: e4, exd5, e2e4, e8=Q
		file := currentChar()
		advance()

		if isRank(currentChar()) {
			rank := currentChar()
			advance()

			if isCapture(currentChar()) {
				advance()
			}

			if isFile(currentChar()) {
				// e2e4, e2xd3: the first pair was the source
				m.FromFile = file
				m.FromRank = rank
				readTarget()
			} else {
				m.Target = square(file, rank)
			}
		} else {
			// exd5: source file, optional capture mark, full destination
			if isCapture(currentChar()) {
				advance()
			}
			m.FromFile = file
			readTarget()
		}

		if ok {
			// Promotions, with or without the '='
			if currentChar() == '=' {
				advance()
			}
			if p := pieceLetter(currentChar()); p != chess.NoPieceType && p != chess.King {
				m.Promotion = p
				advance()
			}
		}

	case pieceLetter(currentChar()) != chess.NoPieceType:
		m.Piece = pieceLetter(currentChar())
		advance()

		if isRank(currentChar()) {
			// Disambiguating rank: R1e1, R1xe3
			m.FromRank = currentChar()
			advance()
			if isCapture(currentChar()) {
				advance()
			}
			readTarget()
		} else if isCapture(currentChar()) {
			// Rxe1
			advance()
			readTarget()
		} else if isFile(currentChar()) {
			file := currentChar()
			advance()

			if isCapture(currentChar()) {
				advance()
			}

			if isRank(currentChar()) {
				rank := currentChar()
				advance()

				if isCapture(currentChar()) {
					advance()
				}

				if isFile(currentChar()) {
					// Re1d1, Re1xd1: the first pair was the source
					m.FromFile = file
					m.FromRank = rank
					readTarget()
				} else {
					// Re1
					m.Target = square(file, rank)
				}
			} else if isFile(currentChar()) {
				// Rae1, Raxe1
				m.FromFile = file
				readTarget()
			} else {
				ok = false
			}
		} else {
			ok = false
		}

	case isCastlingChar(currentChar()):
		advance()
		if currentChar() == '-' {
			advance()
		}
		if isCastlingChar(currentChar()) {
			advance()
			if currentChar() == '-' {
				advance()
			}
			if isCastlingChar(currentChar()) {
				m.Castle = CastleQueenside
				advance()
			} else {
				m.Castle = CastleKingside
			}
			m.Piece = chess.King
		} else {
			ok = false
		}

	default:
		ok = false
	}

	if ok {
		// Allow trailing checks
		for isCheck(currentChar()) {
			advance()
		}

		switch {
		case currentChar() == 0:
			// Nothing more to check
		case (remaining() == "ep" || remaining() == "e.p.") &&
			m.Piece == chess.Pawn && m.Castle == CastleNone:
			// Informational marker only; en-passant status comes from the
			// position, not the text.
		default:
			ok = false
		}
	}

	return m, ok
}
