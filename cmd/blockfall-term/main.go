package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/blockfall/engine"
)

// frontend owns the terminal and forwards input to a session.
type frontend struct {
	screen  tcell.Screen
	session *engine.Session
	keys    keymap

	ctx     context.Context
	started bool
}

func (f *frontend) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		act, event := f.keys.translate(ev)
		switch act {
		case actionQuit:
			return false
		case actionEvent:
			if f.started {
				f.session.Run(event)
			}
		case actionStart:
			if f.session.Start(f.ctx) {
				f.started = true
			}
		case actionReset:
			f.session.Reset()
			f.started = f.session.Start(f.ctx)
		}

	case *tcell.EventResize:
		f.screen.Sync()

	case nil:
		// The screen was finalized.
		return false
	}

	return true
}

func (f *frontend) run() {
	ticker := time.NewTicker(16 * time.Millisecond) // ~60 FPS
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := f.screen.PollEvent()
			eventChan <- ev
			if ev == nil {
				return
			}
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !f.handleInput(ev) {
				return
			}

		case <-ticker.C:
			render(f.screen, f.session.DisplayState(), f.started)
		}
	}
}

func main() {
	width := flag.Int("width", 10, "The width of the play area in cells.")
	height := flag.Int("height", 20, "The height of the play area in cells.")
	seed := flag.Uint64("seed", 0, "Seed for piece selection (0 picks a random seed).")
	mute := flag.Bool("mute", false, "Disable sound.")
	debugKeys := flag.Bool("debug-keys", false, "Bind 'k' to move the piece up.")
	flag.Parse()

	area, err := engine.NewArea(*width, *height)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid play area: %v\n", err)
		os.Exit(1)
	}

	var opts []engine.Option
	if *seed != 0 {
		opts = append(opts, engine.WithSeed(*seed))
	}
	game, err := engine.NewGame(area, opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create game: %v\n", err)
		os.Exit(1)
	}
	session := engine.NewSession(game)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	if !*mute {
		sound := newSoundPlayer()
		if err := sound.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer sound.Close()
			session.Subscribe(sound.OnLanding)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	f := &frontend{
		screen:  screen,
		session: session,
		keys:    keymap{debugKeys: *debugKeys},
		ctx:     ctx,
	}
	f.run()
}
