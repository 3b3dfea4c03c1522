package ui

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/ugaemi/catfish-car-tetris/internal/game"
)

// GameEvent maps a key press during play to an engine event.
func GameEvent(ev *tcell.EventKey) game.Event {
	switch ev.Key() {
	case tcell.KeyLeft:
		return game.EventMoveLeft
	case tcell.KeyRight:
		return game.EventMoveRight
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.EventQuit
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case ' ':
			return game.EventHardDrop
		case 'p':
			return game.EventTogglePause
		case 'q':
			return game.EventQuit
		}
	}
	return game.EventNone
}

type menuAction int

const (
	menuNone menuAction = iota
	menuUp
	menuDown
	menuSelect
	menuHelp
	menuQuit
)

func menuActionFor(ev *tcell.EventKey) menuAction {
	switch ev.Key() {
	case tcell.KeyUp:
		return menuUp
	case tcell.KeyDown:
		return menuDown
	case tcell.KeyEnter:
		return menuSelect
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return menuQuit
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'h':
			return menuHelp
		case 'q':
			return menuQuit
		}
	}
	return menuNone
}
