package ui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/ugaemi/catfish-car-tetris/internal/game"
)

// sidebarWidth is the number of columns reserved right of the board.
const sidebarWidth = 26

const (
	runeRested = '▓'
	runeActive = '█'
)

var (
	styleBorder   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleTitle    = tcell.StyleDefault.Bold(true)
	styleText     = tcell.StyleDefault
	styleDim      = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleSelected = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleAlert    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleMeter    = tcell.StyleDefault.Background(tcell.ColorBlue)
)

func categoryStyle(c game.Category) tcell.Style {
	switch c {
	case game.Small:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case game.Medium:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	case game.Large:
		return tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	default:
		return tcell.StyleDefault
	}
}

// Renderer draws engine snapshots and menu screens onto a tcell screen.
// It never mutates engine state.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// board maps board units onto the screen cells inside the container frame.
type board struct {
	left, top  int
	cols, rows int
	sx, sy     float64
	bounds     game.Rect
}

func (r *Renderer) layout(bounds game.Rect) board {
	w, h := r.screen.Size()
	cols := max(w-sidebarWidth-3, 1)
	rows := max(h-2, 1)
	return board{
		left:   1,
		top:    1,
		cols:   cols,
		rows:   rows,
		sx:     float64(cols) / bounds.W,
		sy:     float64(rows) / bounds.H,
		bounds: bounds,
	}
}

// fill paints every cell rect touches, clipped to the board. Parts of a piece
// above the container are not drawn.
func (b board) fill(s tcell.Screen, rect game.Rect, ch rune, style tcell.Style) {
	c0 := int(math.Floor((rect.X - b.bounds.X) * b.sx))
	c1 := int(math.Ceil((rect.Right()-b.bounds.X)*b.sx)) - 1
	r0 := int(math.Floor((rect.Y - b.bounds.Y) * b.sy))
	r1 := int(math.Ceil((rect.Bottom()-b.bounds.Y)*b.sy)) - 1
	c1 = max(c1, c0)
	r1 = max(r1, r0)

	for row := max(r0, 0); row <= min(r1, b.rows-1); row++ {
		for col := max(c0, 0); col <= min(c1, b.cols-1); col++ {
			s.SetContent(b.left+col, b.top+row, ch, nil, style)
		}
	}
}

// Draw renders a full game frame.
func (r *Renderer) Draw(s game.Snapshot) {
	r.screen.Clear()

	b := r.layout(s.Bounds)
	r.drawBox(b.left-1, b.top-1, b.cols+2, b.rows+2, styleBorder)

	for _, p := range s.Rested {
		b.fill(r.screen, p.Rect, runeRested, categoryStyle(p.Category))
	}
	if s.Active != nil {
		b.fill(r.screen, s.Active.Rect, runeActive, categoryStyle(s.Active.Category).Bold(true))
	}

	r.drawMeter(b, s.FillRatio)
	r.drawSidebar(b.left+b.cols+3, b.top, s)

	switch {
	case s.Over:
		r.drawGameOver(s)
	case s.Paused:
		r.drawPaused()
	}

	r.screen.Show()
}

// drawMeter draws the wetness meter in the column right of the frame, filled
// from the bottom.
func (r *Renderer) drawMeter(b board, ratio float64) {
	x := b.left + b.cols + 1
	filled := int(math.Round(ratio * float64(b.rows)))
	for i := 0; i < filled; i++ {
		r.screen.SetContent(x, b.top+b.rows-1-i, ' ', nil, styleMeter)
	}
}

func (r *Renderer) drawSidebar(x, y int, s game.Snapshot) {
	lines := []struct {
		text  string
		style tcell.Style
	}{
		{"Catfish Car Tetris", styleTitle},
		{"", styleText},
		{fmt.Sprintf("Car:    %s", carLabel(s.Car)), styleText},
		{fmt.Sprintf("Score:  %d", s.Score), styleText},
		{fmt.Sprintf("Level:  %d", s.Level), styleText},
		{fmt.Sprintf("Fill:   %g/%g", s.FillLevel, s.Capacity), styleText},
		{fmt.Sprintf("Pieces: %d/%d", len(s.Rested), game.MaxRestedPieces), styleText},
		{"", styleText},
	}
	for i, l := range lines {
		r.drawText(x, y+i, l.style, l.text)
	}

	y += len(lines)
	for i, c := range game.Categories {
		r.drawText(x, y+i, categoryStyle(c), fmt.Sprintf("%-7s x%d", c.String(), s.Placed[c]))
	}

	y += len(game.Categories) + 1
	r.drawText(x, y, styleDim, "Left/Right  move")
	r.drawText(x, y+1, styleDim, "Space       drop")
	r.drawText(x, y+2, styleDim, "P           pause")
	r.drawText(x, y+3, styleDim, "Q           quit")
}

func (r *Renderer) drawPaused() {
	_, h := r.screen.Size()
	mid := h / 2
	r.drawCentered(mid-2, styleAlert, "PAUSED")
	r.drawCentered(mid, styleText, "Press P to Resume")
	r.drawCentered(mid+1, styleText, "Press Q to Quit")
}

func (r *Renderer) drawGameOver(s game.Snapshot) {
	_, h := r.screen.Size()
	mid := h / 2
	r.drawCentered(mid-2, styleAlert, "Game Over!")
	r.drawCentered(mid, styleText, reasonText(s.Reason))
	r.drawCentered(mid+1, styleText, fmt.Sprintf("Final score: %d", s.Score))
}

func reasonText(reason game.OverReason) string {
	switch reason {
	case game.OverOverflow:
		return "The car overflowed"
	case game.OverStackLimit:
		return "No room for another catfish"
	case game.OverCeiling:
		return "Stacked to the roof"
	default:
		return ""
	}
}

func carLabel(c game.CarType) string {
	switch c {
	case game.Sedan:
		return "Sedan"
	case game.Minivan:
		return "Minivan"
	case game.SUV:
		return "SUV"
	default:
		return "Unknown"
	}
}

func (r *Renderer) drawText(x, y int, style tcell.Style, text string) {
	for i, ch := range []rune(text) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func (r *Renderer) drawCentered(y int, style tcell.Style, text string) {
	w, _ := r.screen.Size()
	r.drawText((w-len([]rune(text)))/2, y, style, text)
}

func (r *Renderer) drawBox(x, y, w, h int, style tcell.Style) {
	for i := x + 1; i < x+w-1; i++ {
		r.screen.SetContent(i, y, tcell.RuneHLine, nil, style)
		r.screen.SetContent(i, y+h-1, tcell.RuneHLine, nil, style)
	}
	for j := y + 1; j < y+h-1; j++ {
		r.screen.SetContent(x, j, tcell.RuneVLine, nil, style)
		r.screen.SetContent(x+w-1, j, tcell.RuneVLine, nil, style)
	}
	r.screen.SetContent(x, y, tcell.RuneULCorner, nil, style)
	r.screen.SetContent(x+w-1, y, tcell.RuneURCorner, nil, style)
	r.screen.SetContent(x, y+h-1, tcell.RuneLLCorner, nil, style)
	r.screen.SetContent(x+w-1, y+h-1, tcell.RuneLRCorner, nil, style)
}
