package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/blockfall/engine"
)

func main() {
	games := flag.Int("games", 10, "The number of games the bot should play.")
	seed := flag.Uint64("seed", 1, "The seed of the first game; game i uses seed+i.")
	width := flag.Int("width", 10, "The width of the play area.")
	height := flag.Int("height", 20, "The height of the play area.")
	maxPieces := flag.Int("max-pieces", 1000, "Stop a game after this many pieces (0 for no limit).")
	duration := flag.Duration("duration", time.Minute, "The total duration the benchmark may run for.")
	flag.Parse()

	area, err := engine.NewArea(*width, *height)
	if err != nil {
		log.Fatalf("Invalid play area: %v", err)
	}

	report := &Report{
		Games:     *games,
		Width:     area.Width,
		Height:    area.Height,
		Seed:      *seed,
		MaxPieces: *maxPieces,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Playing %d games on a %dx%d area...\n", *games, area.Width, area.Height)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	b := &bot{weights: defaultWeights}
	startTime := time.Now()
	for i := range *games {
		if ctx.Err() != nil {
			log.Printf("Time limit reached after %d games.\n", i)
			break
		}

		game, err := engine.NewGame(area, engine.WithSeed(*seed+uint64(i)))
		if err != nil {
			log.Fatalf("Failed to create game: %v", err)
		}

		result := play(ctx, game, b, *maxPieces)
		report.Add(result)
		log.Printf("Game %d: %d pieces, %d lines, score %d\n", i+1, result.Pieces, result.Lines, result.Score)
	}

	report.TotalTime = time.Since(startTime)
	report.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	fmt.Println("\n\n--- Bot Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
