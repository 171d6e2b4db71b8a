package engine

import (
	"io"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// assertConsistent fails the test unless both bitboards mirror the square
// array exactly and each cached king coordinate is that side's actual king
// square.
func assertConsistent(t *testing.T, p *Position) {
	t.Helper()
	for sq := chess.A1; sq < chess.NoSquare; sq++ {
		pc := p.squares[sq]
		for _, c := range []chess.Colour{chess.White, chess.Black} {
			want := pc != chess.NoPiece && pc.Colour() == c
			if got := p.byColour[c].IsSet(sq); got != want {
				t.Errorf("bitboard[%v] at %v = %v, want %v (square holds %v)", c, sq, got, want, pc)
			}
		}
	}
	for _, c := range []chess.Colour{chess.White, chess.Black} {
		want := chess.NoSquare
		for sq := chess.A1; sq < chess.NoSquare; sq++ {
			if p.squares[sq] == chess.MakePiece(c, chess.King) {
				want = sq
			}
		}
		if p.kings[c] != want {
			t.Errorf("king cache[%v] = %v, want %v", c, p.kings[c], want)
		}
	}
}

func TestParseFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		wantErr bool
		checkFn func(*Position) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(p *Position) bool {
				_, epSet := p.EnPassantFile()
				return p.PieceAt(chess.E1) == chess.WhiteKing &&
					p.PieceAt(chess.E8) == chess.BlackKing &&
					p.PieceAt(chess.A1) == chess.WhiteRook &&
					p.PieceAt(chess.H8) == chess.BlackRook &&
					p.PieceAt(chess.E2) == chess.WhitePawn &&
					p.PieceAt(chess.E7) == chess.BlackPawn &&
					p.SideToMove() == chess.White &&
					p.Ply() == 0 &&
					p.CanCastle(chess.White, true) && p.CanCastle(chess.White, false) &&
					p.CanCastle(chess.Black, true) && p.CanCastle(chess.Black, false) &&
					!epSet &&
					p.HalfmoveClock() == 0
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(p *Position) bool {
				file, epSet := p.EnPassantFile()
				return p.PieceAt(chess.E4) == chess.WhitePawn &&
					p.PieceAt(chess.E2) == chess.NoPiece &&
					p.SideToMove() == chess.Black &&
					p.Ply() == 1 &&
					epSet && file == 4
			},
		},
		{
			name: "pawn endgame with long clock",
			fen:  "8/5k2/3p4/1p1Pp2p/pP2Pp1P/P4P1K/8/8 b - - 99 50",
			checkFn: func(p *Position) bool {
				return p.SideToMove() == chess.Black &&
					p.HalfmoveClock() == 99 &&
					p.Ply() == 99 &&
					p.KingSquare(chess.White) == chess.H3 &&
					p.KingSquare(chess.Black) == chess.F7 &&
					!p.CanCastle(chess.White, true) && !p.CanCastle(chess.Black, false)
			},
		},
		{
			name: "rights dropped for a displaced king",
			fen:  "rnbq1bnr/ppppkppp/8/4p3/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 3",
			checkFn: func(p *Position) bool {
				return p.CanCastle(chess.White, true) && p.CanCastle(chess.White, false) &&
					!p.CanCastle(chess.Black, true) && !p.CanCastle(chess.Black, false) &&
					p.Ply() == 4
			},
		},
		{
			name: "duplicate castling letters tolerated",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KKqq - 0 1",
			checkFn: func(p *Position) bool {
				return p.CanCastle(chess.White, true) && !p.CanCastle(chess.White, false) &&
					!p.CanCastle(chess.Black, true) && p.CanCastle(chess.Black, false)
			},
		},
		{
			name: "repeated delimiting spaces tolerated",
			fen:  "  rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR   w  KQkq  -  0  1 ",
			checkFn: func(p *Position) bool {
				return p.SideToMove() == chess.White && p.Ply() == 0
			},
		},
		{
			name:    "empty string",
			fen:     "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParseFEN(tt.fen)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFEN() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if tt.checkFn != nil && !tt.checkFn(p) {
				t.Errorf("ParseFEN() position check failed:\n%v", p)
			}
			assertConsistent(t, p)
		})
	}
}

func TestParseFEN_Errors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want error
	}{
		{
			"invalid placement character",
			"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1",
			errors.ErrInvalidCharacter,
		},
		{
			"placement ends after seven ranks",
			"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP w KQkq - 0 1",
			errors.ErrUnexpectedSpace,
		},
		{
			"nine files in one rank",
			"rnbqkbnrr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			errors.ErrPieceCountMismatch,
		},
		{
			"separator after a short rank",
			"rnbqkbn/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			errors.ErrPieceCountMismatch,
		},
		{
			"empty runs overflowing a rank",
			"rnbqkbnr/pppppppp/54/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
			errors.ErrPieceCountMismatch,
		},
		{
			"nine ranks",
			"8/8/8/8/8/8/8/8/8 w - - 0 1",
			errors.ErrPieceCountMismatch,
		},
		{
			"five fields",
			"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0",
			errors.ErrMissingFields,
		},
		{
			"empty string",
			"",
			errors.ErrMissingFields,
		},
		{
			"unknown side to move",
			"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1",
			errors.ErrUnrecognizedSideToMove,
		},
		{
			"unknown castling letter",
			"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQxq - 0 1",
			errors.ErrUnrecognizedCastlingRight,
		},
		{
			"en passant file out of range",
			"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR b KQkq i6 0 1",
			errors.ErrInvalidEnPassantFile,
		},
		{
			"en passant rank not 3 or 6",
			"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e4 0 1",
			errors.ErrInvalidEnPassantRank,
		},
		{
			"en passant square with trailing characters",
			"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e36 0 1",
			errors.ErrInvalidEnPassantRank,
		},
		{
			"halfmove clock not a number",
			"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - x 1",
			errors.ErrInvalidCounter,
		},
		{
			"halfmove clock out of range",
			"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 256 1",
			errors.ErrInvalidCounter,
		},
		{
			"fullmove number zero",
			"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0",
			errors.ErrInvalidCounter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParseFEN(tt.fen)
			if err == nil {
				t.Fatalf("ParseFEN(%q) succeeded, want %v", tt.fen, tt.want)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("ParseFEN(%q) error = %v, want %v", tt.fen, err, tt.want)
			}
			if p != nil {
				t.Errorf("ParseFEN(%q) returned a partial position on error", tt.fen)
			}
		})
	}
}

func TestFENRoundTrip(t *testing.T) {
	// Canonical records must reproduce themselves exactly.
	tests := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"rnbqkbnr/pppp1ppp/8/4p3/8/8/PPPPPPPP/RNBQKBNR w KQkq e6 0 2",
		"8/5k2/3p4/1p1Pp2p/pP2Pp1P/P4P1K/8/8 b - - 99 50",
		"r3k2r/8/8/8/8/8/8/R3K2R w Kq - 3 10",
		"4k3/8/8/8/8/8/8/4K3 w - - 12 34",
	}

	for _, fen := range tests {
		t.Run(fen, func(t *testing.T) {
			p, err := ParseFEN(fen)
			if err != nil {
				t.Fatalf("ParseFEN(%q) error = %v", fen, err)
			}
			assertConsistent(t, p)

			if got := p.FEN(); got != fen {
				t.Errorf("FEN() = %q, want %q", got, fen)
			}
		})
	}
}

func TestFEN_NormalizesDuplicateRights(t *testing.T) {
	p, err := ParseFEN("r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KKqq - 0 1")
	if err != nil {
		t.Fatalf("ParseFEN() error = %v", err)
	}

	want := "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w Kq - 0 1"
	if got := p.FEN(); got != want {
		t.Errorf("FEN() = %q, want %q", got, want)
	}
}

// failWriter refuses every write.
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, io.ErrClosedPipe
}

func TestWriteFEN(t *testing.T) {
	p := StartingPosition()

	var sb strings.Builder
	if err := p.WriteFEN(&sb); err != nil {
		t.Fatalf("WriteFEN() error = %v", err)
	}
	if sb.String() != InitialFEN {
		t.Errorf("WriteFEN() wrote %q, want %q", sb.String(), InitialFEN)
	}

	if err := p.WriteFEN(failWriter{}); err == nil {
		t.Error("WriteFEN(failWriter) error = nil, want error")
	}
}

func TestStartingPosition(t *testing.T) {
	a := StartingPosition()
	b := StartingPosition()
	if a == b {
		t.Fatal("StartingPosition() returned the same instance twice")
	}

	if res := a.SubmitMove("e4"); res != chess.ResultOK {
		t.Fatalf("SubmitMove(e4) = %v, want %v", res, chess.ResultOK)
	}
	if got := b.FEN(); got != InitialFEN {
		t.Errorf("sibling copy mutated: FEN() = %q, want %q", got, InitialFEN)
	}
}
