// ui.go - Event loop, input handling, and screen drawing
package main

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Screen layout, in cell coordinates.
const (
	boardLeft = 3
	boardTop  = 1
	cellWidth = 3

	labelsY = boardTop + 8
	promptY = boardTop + 10
	statusY = boardTop + 11
	fenY    = boardTop + 12
)

// ui owns the screen and the game in play. Every rule decision comes back
// from the engine as a MoveResult; the ui only echoes it.
type ui struct {
	screen tcell.Screen
	start  *engine.Position
	pos    *engine.Position

	input  []rune
	last   string
	result chess.MoveResult

	flipped bool
	showFEN bool
	ascii   bool
}

// run drives the event loop until the player quits.
func (u *ui) run() {
	for {
		u.draw()
		switch ev := u.screen.PollEvent().(type) {
		case *tcell.EventResize:
			u.screen.Sync()
		case *tcell.EventKey:
			if !u.handleKey(ev) {
				return
			}
		}
	}
}

// handleKey applies one key event and reports whether the loop continues.
func (u *ui) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		return u.submit()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(u.input) > 0 {
			u.input = u.input[:len(u.input)-1]
		}
	case tcell.KeyRune:
		u.input = append(u.input, ev.Rune())
	}
	return true
}

// submit hands the typed line to the engine, or to the command handler when
// it starts with ':'. It reports whether the loop continues.
func (u *ui) submit() bool {
	text := strings.TrimSpace(string(u.input))
	u.input = u.input[:0]
	if text == "" {
		return true
	}
	if strings.HasPrefix(text, ":") {
		return u.command(text)
	}

	u.last = text
	u.result = u.pos.SubmitMove(text)
	return true
}

// command runs a ':' command. Unrecognized commands are ignored.
func (u *ui) command(cmd string) bool {
	switch cmd {
	case ":quit":
		return false
	case ":new":
		u.pos = u.start.Copy()
		u.last = ""
	case ":flip":
		u.flipped = !u.flipped
	case ":fen":
		u.showFEN = !u.showFEN
	}
	return true
}

func (u *ui) draw() {
	u.screen.Clear()
	u.drawBoard()
	u.drawPrompt()
	if u.last != "" {
		drawText(u.screen, boardLeft, statusY, tcell.StyleDefault, statusText(u.last, u.result))
	}
	if u.showFEN {
		drawText(u.screen, boardLeft, fenY, tcell.StyleDefault, u.pos.FEN())
	}
	u.screen.Show()
}

func (u *ui) drawBoard() {
	for row := 0; row < 8; row++ {
		y := boardTop + row
		for col := 0; col < 8; col++ {
			sq := squareAt(col, row, u.flipped)
			style := cellStyle(sq)
			glyph := pieceGlyph(u.pos.PieceAt(sq), u.ascii)

			x := boardLeft + col*cellWidth
			u.screen.SetContent(x, y, ' ', nil, style)
			u.screen.SetContent(x+1, y, glyph, nil, style)
			u.screen.SetContent(x+2, y, ' ', nil, style)
		}
		u.screen.SetContent(boardLeft-2, y, rune(rankLabel(row, u.flipped)), nil, tcell.StyleDefault)
	}
	drawText(u.screen, boardLeft, labelsY, tcell.StyleDefault, fileLabels(u.flipped))
}

func (u *ui) drawPrompt() {
	text := promptText(u.pos.SideToMove(), string(u.input))
	drawText(u.screen, boardLeft, promptY, tcell.StyleDefault, text)
	u.screen.ShowCursor(boardLeft+len([]rune(text)), promptY)
}

// drawText writes a string left to right starting at (x, y).
func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, style)
	}
}
