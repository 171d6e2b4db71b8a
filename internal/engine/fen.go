package engine

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// InitialFEN is the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN builds a Position from a six-field FEN record: placement, side to
// move, castling rights, en-passant target, half-move clock, full-move
// number. Repeated delimiting spaces and duplicate castling letters are
// tolerated. Any malformed field aborts with one of the errors package
// sentinels; no partial position is ever returned.
func ParseFEN(text string) (*Position, error) {
	fields := strings.Fields(text)
	if len(fields) < 6 {
		return nil, errors.Wrapf(errors.ErrMissingFields, "fen has %d of 6 fields", len(fields))
	}

	p := NewPosition()

	if err := p.parsePlacement(fields[0]); err != nil {
		return nil, err
	}

	switch fields[1] {
	case "w":
		p.sideToMove = chess.White
	case "b":
		p.sideToMove = chess.Black
	default:
		return nil, errors.Wrapf(errors.ErrUnrecognizedSideToMove, "field %q", fields[1])
	}

	if fields[2] != "-" {
		for i := 0; i < len(fields[2]); i++ {
			switch fields[2][i] {
			case 'K':
				p.meta.SetCastle(chess.White, true, true)
			case 'Q':
				p.meta.SetCastle(chess.White, false, true)
			case 'k':
				p.meta.SetCastle(chess.Black, true, true)
			case 'q':
				p.meta.SetCastle(chess.Black, false, true)
			default:
				return nil, errors.Wrapf(errors.ErrUnrecognizedCastlingRight, "char %q", fields[2][i])
			}
		}
	}
	p.sanitizeCastlingRights()

	if ep := fields[3]; ep != "-" {
		if ep[0] < 'a' || ep[0] > 'h' {
			return nil, errors.Wrapf(errors.ErrInvalidEnPassantFile, "field %q", ep)
		}
		if len(ep) != 2 || (ep[1] != '3' && ep[1] != '6') {
			return nil, errors.Wrapf(errors.ErrInvalidEnPassantRank, "field %q", ep)
		}
		p.meta.SetEnPassantFile(int(ep[0] - 'a'))
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 || halfmove > 255 {
		return nil, errors.Wrapf(errors.ErrInvalidCounter, "halfmove %q", fields[4])
	}
	p.meta.SetHalfmoveClock(halfmove)

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 1 {
		return nil, errors.Wrapf(errors.ErrInvalidCounter, "fullmove %q", fields[5])
	}
	p.ply = (fullmove - 1) * 2
	if p.sideToMove == chess.Black {
		p.ply++
	}

	return p, nil
}

// parsePlacement reads the first FEN field onto the board, rank 8 first.
// Digits are empty-run lengths and '/' must land exactly on a completed rank.
func (p *Position) parsePlacement(field string) error {
	file, rank := 0, 7
	for i := 0; i < len(field); i++ {
		switch c := field[i]; {
		case c == '/':
			if file != 8 {
				return errors.Wrapf(errors.ErrPieceCountMismatch, "rank %d describes %d files", rank+1, file)
			}
			if rank == 0 {
				return errors.Wrap(errors.ErrPieceCountMismatch, "more than eight ranks")
			}
			file, rank = 0, rank-1

		case c >= '1' && c <= '8':
			file += int(c - '0')
			if file > 8 {
				return errors.Wrapf(errors.ErrPieceCountMismatch, "rank %d describes %d files", rank+1, file)
			}

		default:
			pc := chess.PieceFromChar(c)
			if pc == chess.NoPiece {
				return errors.Wrapf(errors.ErrInvalidCharacter, "placement char %q", c)
			}
			if file > 7 {
				return errors.Wrapf(errors.ErrPieceCountMismatch, "rank %d describes %d files", rank+1, file+1)
			}
			p.place(pc, chess.NewSquare(file, rank))
			file++
		}
	}
	if rank != 0 || file != 8 {
		return errors.Wrapf(errors.ErrUnexpectedSpace, "placement %q", field)
	}
	return nil
}

// sanitizeCastlingRights drops any parsed right whose king or rook is not on
// its home square. Castle and doMove rely on this invariant holding from the
// moment a position exists.
func (p *Position) sanitizeCastlingRights() {
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		if p.squares[kingHome(c)] != chess.MakePiece(c, chess.King) {
			p.meta.SetCastle(c, true, false)
			p.meta.SetCastle(c, false, false)
			continue
		}
		for _, kingside := range []bool{true, false} {
			if p.meta.CanCastle(c, kingside) &&
				p.squares[rookHome(c, kingside)] != chess.MakePiece(c, chess.Rook) {
				p.meta.SetCastle(c, kingside, false)
			}
		}
	}
}

// FEN returns the position as a FEN string.
func (p *Position) FEN() string {
	var sb strings.Builder
	p.WriteFEN(&sb)
	return sb.String()
}

// WriteFEN writes the position to w as a six-field FEN record, the exact
// structural inverse of ParseFEN: parsing the output reproduces an equal
// position.
func (p *Position) WriteFEN(w io.Writer) error {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		run := 0
		for file := 0; file < 8; file++ {
			pc := p.squares[chess.NewSquare(file, rank)]
			if pc == chess.NoPiece {
				run++
				continue
			}
			if run > 0 {
				sb.WriteByte(byte('0' + run))
				run = 0
			}
			sb.WriteByte(pc.Char())
		}
		if run > 0 {
			sb.WriteByte(byte('0' + run))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.sideToMove == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}

	sb.WriteByte(' ')
	if p.meta.HasAnyCastling() {
		if p.meta.CanCastle(chess.White, true) {
			sb.WriteByte('K')
		}
		if p.meta.CanCastle(chess.White, false) {
			sb.WriteByte('Q')
		}
		if p.meta.CanCastle(chess.Black, true) {
			sb.WriteByte('k')
		}
		if p.meta.CanCastle(chess.Black, false) {
			sb.WriteByte('q')
		}
	} else {
		sb.WriteByte('-')
	}

	sb.WriteByte(' ')
	if file, ok := p.meta.EnPassantFile(); ok {
		sb.WriteByte(byte('a' + file))
		// The capture rank follows from whose pawn just double-pushed.
		if p.sideToMove == chess.White {
			sb.WriteByte('6')
		} else {
			sb.WriteByte('3')
		}
	} else {
		sb.WriteByte('-')
	}

	fmt.Fprintf(&sb, " %d %d", p.meta.HalfmoveClock(), p.fullmove())

	_, err := io.WriteString(w, sb.String())
	return err
}

// fullmove returns the one-based full-move number implied by ply.
func (p *Position) fullmove() int {
	return p.ply/2 + 1
}
