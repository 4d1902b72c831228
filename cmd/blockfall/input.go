package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/plus3/blockfall/engine"
)

const (
	repeatDelay    = 12
	repeatInterval = 3
)

// repeats reports whether a key held for duration ticks should fire again.
// It fires on the first tick, then every repeatInterval ticks once the key
// has been held for repeatDelay ticks.
func repeats(duration int) bool {
	if duration == 1 {
		return true
	}
	return duration >= repeatDelay && (duration-repeatDelay)%repeatInterval == 0
}

type binding struct {
	key    ebiten.Key
	event  engine.Event
	repeat bool
}

var bindings = []binding{
	{ebiten.KeyArrowLeft, engine.EventMoveLeft, true},
	{ebiten.KeyArrowRight, engine.EventMoveRight, true},
	{ebiten.KeyArrowDown, engine.EventMoveDown, true},
	{ebiten.KeyArrowUp, engine.EventRotate, false},
	{ebiten.KeySpace, engine.EventDrop, false},
}

// pressedEvents returns the game events triggered during this tick.
func pressedEvents() []engine.Event {
	var events []engine.Event
	for _, b := range bindings {
		if b.repeat {
			if repeats(inpututil.KeyPressDuration(b.key)) {
				events = append(events, b.event)
			}
		} else if inpututil.IsKeyJustPressed(b.key) {
			events = append(events, b.event)
		}
	}
	return events
}
