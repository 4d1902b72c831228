package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"
)

type Report struct {
	// Configuration
	Games     int
	Width     int
	Height    int
	Seed      uint64
	MaxPieces int

	// Results
	Played        int
	ToppedOut     int
	TotalPieces   int
	TotalLines    int
	Clears        [5]int
	TotalTime     time.Duration
	GameTime      Stats
	Score         ScoreStats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

type ScoreStats struct {
	Min     uint64
	Max     uint64
	Avg     float64
	Samples []uint64
}

func (s *ScoreStats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total uint64
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = float64(total) / float64(len(s.Samples))
}

// Add folds one finished game into the report.
func (r *Report) Add(result gameResult) {
	r.Played++
	if result.GameOver {
		r.ToppedOut++
	}
	r.TotalPieces += result.Pieces
	r.TotalLines += result.Lines
	for i, n := range result.Clears {
		r.Clears[i] += n
	}
	r.GameTime.Samples = append(r.GameTime.Samples, result.Elapsed)
	r.Score.Samples = append(r.Score.Samples, result.Score)
}

func (r *Report) Finalize() {
	r.GameTime.Finalize()
	r.Score.Finalize()
}

// PiecesPerSecond is the placement throughput over the whole run.
func (r *Report) PiecesPerSecond() float64 {
	if r.TotalTime <= 0 {
		return 0
	}
	return float64(r.TotalPieces) / r.TotalTime.Seconds()
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Blockfall Bot Report

## Configuration
- **Games:** {{.Games}}
- **Area:** {{.Width}}x{{.Height}}
- **Seed:** {{.Seed}}
- **Max Pieces:** {{if .MaxPieces}}{{.MaxPieces}}{{else}}unlimited{{end}}

## Results
- **Games Played:** {{.Played}} ({{.ToppedOut}} topped out)
- **Pieces Placed:** {{.TotalPieces}}
- **Lines Cleared:** {{.TotalLines}}
- **Clears by Size:**{{range $rows, $n := .Clears}}{{if $rows}} {{$rows}}x{{$n}}{{end}}{{end}}
- **Score:**
  - **Avg:** {{printf "%.1f" .Score.Avg}}
  - **Min:** {{.Score.Min}}
  - **Max:** {{.Score.Max}}
- **Game Time:**
  - **Avg:** {{.GameTime.Avg}}
  - **Min:** {{.GameTime.Min}}
  - **Max:** {{.GameTime.Max}}
- **Total Time:** {{.TotalTime}}
- **Throughput:** {{printf "%.0f" .PiecesPerSecond}} pieces/sec

## Memory Usage
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} MB (start) -> {{mb .MemStatsEnd.HeapAlloc}} MB (end)
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

	fm := template.FuncMap{
		"mb": func(v uint64) string {
			return fmt.Sprintf("%.2f", float64(v)/1024/1024)
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
