package engine_test

import (
	"context"
	"fmt"
	"time"

	"github.com/plus3/blockfall/engine"
)

// ExampleSession shares a game between input handling and the auto-drop
// driver. Start launches the driver in its own goroutine; it applies a
// MoveDown after every interval the game recommends and stops on its own at
// game over. Here the timer fires immediately so the example runs instantly.
func ExampleSession() {
	game, err := engine.NewGame(engine.Area{Width: 4, Height: 4}, engine.WithSource(only(engine.KindO, 0)))
	if err != nil {
		panic(err)
	}

	session := engine.NewSession(game, engine.WithAfter(func(time.Duration) <-chan time.Time {
		ch := make(chan time.Time, 1)
		ch <- time.Now()
		return ch
	}))
	session.Subscribe(func(l engine.Landing) {
		fmt.Printf("landed %v, game over: %v\n", l.Kind, l.GameOver)
	})

	session.Start(context.Background())
	session.Wait()

	fmt.Println(session.DisplayState().State, session.DriverStats().Ticks)

	// Output:
	// landed O, game over: false
	// landed O, game over: true
	// GameOver 3
}
