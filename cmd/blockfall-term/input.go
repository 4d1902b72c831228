package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/engine"
)

type action int

const (
	actionNone action = iota
	actionEvent
	actionStart
	actionReset
	actionQuit
)

// keymap translates key presses into engine events and front end commands.
type keymap struct {
	// debugKeys binds 'k' to MoveUp.
	debugKeys bool
}

func (k keymap) translate(ev *tcell.EventKey) (action, engine.Event) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return actionEvent, engine.EventMoveLeft
	case tcell.KeyRight:
		return actionEvent, engine.EventMoveRight
	case tcell.KeyUp:
		return actionEvent, engine.EventRotate
	case tcell.KeyDown:
		return actionEvent, engine.EventMoveDown
	case tcell.KeyEnter:
		return actionStart, 0
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit, 0
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return actionEvent, engine.EventDrop
		case 'r', 'R':
			return actionReset, 0
		case 'q', 'Q':
			return actionQuit, 0
		case 'k':
			if k.debugKeys {
				return actionEvent, engine.EventMoveUp
			}
		}
	}
	return actionNone, 0
}
