package ui

import (
	"fmt"

	"github.com/ugaemi/catfish-car-tetris/internal/game"
)

var helpLines = []string{
	"Left/Right Arrow: Move catfish",
	"Space: Drop catfish",
	"P: Pause game",
	"Q: Quit",
	"",
	"Fill the car with catfish without overflowing!",
	"",
	"Press any key to return to menu",
}

// DrawMenu draws the car selection screen with the given entry highlighted.
func (r *Renderer) DrawMenu(selected int, t game.Tuning) {
	r.screen.Clear()
	_, h := r.screen.Size()

	r.drawCentered(1, styleTitle, "Catfish Car Tetris")
	r.drawCentered(3, styleText, "Choose your car:")
	for i, car := range game.CarTypes {
		style := styleText
		label := fmt.Sprintf("  %-8s capacity %g  ", carLabel(car), t.Car(car).Capacity)
		if i == selected {
			style = styleSelected
			label = fmt.Sprintf("> %-8s capacity %g <", carLabel(car), t.Car(car).Capacity)
		}
		r.drawCentered(5+2*i, style, label)
	}
	r.drawCentered(h-2, styleDim, "Up/Down: choose   Enter: start   H: help   Q: quit")

	r.screen.Show()
}

// DrawHelp draws the tutorial screen.
func (r *Renderer) DrawHelp() {
	r.screen.Clear()

	r.drawCentered(1, styleTitle, "How to Play")
	for i, line := range helpLines {
		r.drawText(4, 3+i, styleText, line)
	}

	r.screen.Show()
}

// DrawHighScores draws the high-score list.
func (r *Renderer) DrawHighScores(scores []int) {
	r.screen.Clear()
	_, h := r.screen.Size()

	r.drawCentered(1, styleTitle, "High Scores")
	if len(scores) == 0 {
		r.drawCentered(3, styleDim, "No scores yet")
	}
	for i, s := range scores {
		r.drawCentered(3+i, styleText, fmt.Sprintf("%2d. %6d", i+1, s))
	}
	r.drawCentered(h-2, styleDim, "Press any key to continue")

	r.screen.Show()
}
