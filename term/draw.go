package term

import (
	"fmt"

	"snake-engine/game"

	"github.com/gdamore/tcell/v2"
)

var (
	styleBorder = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleEmpty  = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	styleFood   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleBody   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleHead   = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleText   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleAlert  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
)

// Each board cell is two terminal columns wide so the board looks square.
const cellWidth = 2

// CellRune is the glyph drawn for a tag.
func CellRune(tag game.CellTag) rune {
	switch tag {
	case game.CellFood:
		return '●'
	case game.CellBody:
		return '█'
	case game.CellHead:
		return '■'
	default:
		return '·'
	}
}

func cellStyle(tag game.CellTag) tcell.Style {
	switch tag {
	case game.CellFood:
		return styleFood
	case game.CellBody:
		return styleBody
	case game.CellHead:
		return styleHead
	default:
		return styleEmpty
	}
}

// Draw renders snap with a border at the top-left corner of screen. The high
// score comes from the session history.
func Draw(screen tcell.Screen, snap game.Snapshot, highScore int) {
	screen.Clear()

	n := snap.Size()
	w := n*cellWidth + 2

	// Border
	for x := 0; x < w; x++ {
		screen.SetContent(x, 0, '─', nil, styleBorder)
		screen.SetContent(x, n+1, '─', nil, styleBorder)
	}
	for y := 0; y < n+2; y++ {
		screen.SetContent(0, y, '│', nil, styleBorder)
		screen.SetContent(w-1, y, '│', nil, styleBorder)
	}
	screen.SetContent(0, 0, '┌', nil, styleBorder)
	screen.SetContent(w-1, 0, '┐', nil, styleBorder)
	screen.SetContent(0, n+1, '└', nil, styleBorder)
	screen.SetContent(w-1, n+1, '┘', nil, styleBorder)

	for y, row := range snap.Cells {
		for x, tag := range row {
			r := CellRune(tag)
			style := cellStyle(tag)
			sx := 1 + x*cellWidth
			screen.SetContent(sx, y+1, r, nil, style)
			fill := ' '
			if tag == game.CellBody || tag == game.CellHead {
				fill = r
			}
			screen.SetContent(sx+1, y+1, fill, nil, style)
		}
	}

	line := n + 2
	drawText(screen, 0, line, styleText, snap.StatusLine())
	drawText(screen, 0, line+1, styleText, fmt.Sprintf("High: %d  Length: %d  Tick: %d", highScore, snap.Length, snap.Tick))
	if snap.GameOver {
		drawText(screen, 0, line+2, styleAlert, "Game over, press r to restart")
	} else if snap.BoardFull {
		drawText(screen, 0, line+2, styleAlert, "Board full!")
	}
	drawText(screen, 0, line+3, styleBorder, "Arrows/WASD/hjkl move · Space pause · r restart · q quit")

	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
