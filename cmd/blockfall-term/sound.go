package main

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/blockfall/engine"
)

const sampleRate = beep.SampleRate(44100)

// clearNotes are the pitches of the arpeggio played for 1 to 4 cleared rows.
var clearNotes = [...]float64{523.25, 659.25, 783.99, 1046.50}

const (
	noteLength     = 60 * time.Millisecond
	gameOverPitch  = 110
	gameOverLength = 400 * time.Millisecond
)

// soundPlayer plays short tones on landings. It is silent until Initialize
// succeeds.
type soundPlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func newSoundPlayer() *soundPlayer {
	return &soundPlayer{mixer: &beep.Mixer{}}
}

// Initialize opens the audio device.
func (sp *soundPlayer) Initialize() error {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if sp.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(sp.mixer)
	sp.initialized = true
	return nil
}

// Close silences everything still queued.
func (sp *soundPlayer) Close() {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if !sp.initialized {
		return
	}
	speaker.Lock()
	sp.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sp.initialized = false
}

// OnLanding is a Session subscriber.
func (sp *soundPlayer) OnLanding(l engine.Landing) {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	if !sp.initialized {
		return
	}
	if s := landingTone(l); s != nil {
		speaker.Lock()
		sp.mixer.Add(s)
		speaker.Unlock()
	}
}

// landingTone returns the tone for l, or nil if the landing is silent.
func landingTone(l engine.Landing) beep.Streamer {
	if l.GameOver {
		return tone(gameOverPitch, gameOverLength)
	}
	if l.Lines == 0 {
		return nil
	}

	notes := make([]beep.Streamer, 0, l.Lines)
	for _, freq := range clearNotes[:min(l.Lines, len(clearNotes))] {
		if s := tone(freq, noteLength); s != nil {
			notes = append(notes, s)
		}
	}
	return beep.Seq(notes...)
}

func tone(freq float64, length time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil
	}
	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(length), sine),
		Base:     2,
		Volume:   -2,
	}
}
