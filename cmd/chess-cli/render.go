// render.go - Pure presentation helpers: orientation, labels, glyphs, styles
package main

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

var (
	lightCell = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorWheat)
	darkCell  = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorPeru)
)

// glyphs holds the figurine runes. White uses the outline forms and black the
// filled ones, so both read against either cell shade.
var glyphs = map[chess.Piece]rune{
	chess.WhiteKing:   '♔',
	chess.WhiteQueen:  '♕',
	chess.WhiteRook:   '♖',
	chess.WhiteBishop: '♗',
	chess.WhiteKnight: '♘',
	chess.WhitePawn:   '♙',
	chess.BlackKing:   '♚',
	chess.BlackQueen:  '♛',
	chess.BlackRook:   '♜',
	chess.BlackBishop: '♝',
	chess.BlackKnight: '♞',
	chess.BlackPawn:   '♟',
}

// squareAt maps a display cell to its board square. Row 0 is the top of the
// drawn board: rank 8 in the white orientation, rank 1 in the flipped one.
func squareAt(col, row int, flipped bool) chess.Square {
	if flipped {
		return chess.NewSquare(7-col, row)
	}
	return chess.NewSquare(col, 7-row)
}

// rankLabel returns the rank digit shown beside a display row.
func rankLabel(row int, flipped bool) byte {
	if flipped {
		return byte('1' + row)
	}
	return byte('8' - row)
}

// fileLabels returns the file letters, one per board column, padded to sit
// under the cell centres.
func fileLabels(flipped bool) string {
	var sb strings.Builder
	for col := 0; col < 8; col++ {
		sb.WriteByte(' ')
		if flipped {
			sb.WriteByte(byte('h' - col))
		} else {
			sb.WriteByte(byte('a' + col))
		}
		sb.WriteByte(' ')
	}
	return sb.String()
}

// pieceGlyph returns the rune drawn for a piece, a space for an empty square.
func pieceGlyph(pc chess.Piece, ascii bool) rune {
	if pc == chess.NoPiece {
		return ' '
	}
	if ascii {
		return rune(pc.Char())
	}
	return glyphs[pc]
}

// cellStyle returns the checkerboard style for a square.
func cellStyle(sq chess.Square) tcell.Style {
	if (sq.File()+sq.Rank())%2 == 0 {
		return darkCell
	}
	return lightCell
}

// promptText builds the input line shown beneath the board.
func promptText(toMove chess.Colour, input string) string {
	return toMove.String() + "> " + input
}

// statusText echoes the last submitted move and the engine's verdict.
func statusText(last string, res chess.MoveResult) string {
	if last == "" {
		return ""
	}
	return last + ": " + res.String()
}
