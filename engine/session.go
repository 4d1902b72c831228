package engine

import (
	"context"
	"sync"
	"time"
)

// DriverStats describes the auto-drop driver of a Session.
type DriverStats struct {
	Running      bool
	Ticks        int64
	LastInterval time.Duration
	MinInterval  time.Duration
	MaxInterval  time.Duration
	// History holds the most recent intervals, oldest first.
	History []time.Duration
}

type driverStatsInternal struct {
	ticks        int64
	lastInterval time.Duration
	minInterval  time.Duration
	maxInterval  time.Duration
	history      []time.Duration
	historyIndex int
	historyLen   int
}

func (d *driverStatsInternal) record(interval time.Duration) {
	d.ticks++
	d.lastInterval = interval
	if d.ticks == 1 || interval < d.minInterval {
		d.minInterval = interval
	}
	if interval > d.maxInterval {
		d.maxInterval = interval
	}
	if len(d.history) == 0 {
		return
	}
	d.history[d.historyIndex] = interval
	d.historyIndex = (d.historyIndex + 1) % len(d.history)
	d.historyLen = min(d.historyLen+1, len(d.history))
}

// Session shares one Game between an input handler and the auto-drop
// driver. Every call takes the same exclusive lock, so each event is applied
// atomically with respect to every other caller.
type Session struct {
	mu   sync.Mutex
	game *Game

	after       func(time.Duration) <-chan time.Time
	generation  uint64
	running     bool
	done        chan struct{}
	stats       driverStatsInternal
	subscribers []func(Landing)
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithAfter replaces time.After as the driver's timer, mainly for tests.
func WithAfter(after func(time.Duration) <-chan time.Time) SessionOption {
	return func(s *Session) {
		s.after = after
	}
}

// WithHistory sets how many driver intervals are kept for DriverStats.
func WithHistory(n int) SessionOption {
	return func(s *Session) {
		s.stats.history = make([]time.Duration, n)
	}
}

// NewSession takes ownership of game.
func NewSession(game *Game, opts ...SessionOption) *Session {
	s := &Session{
		game:  game,
		after: time.After,
	}
	WithHistory(120)(s)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers fn to be called after every landing, whether caused by
// input or by the driver. fn runs without the session lock held.
func (s *Session) Subscribe(fn func(Landing)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Run applies ev to the game. See Game.Run.
func (s *Session) Run(ev Event) (time.Duration, bool) {
	s.mu.Lock()
	interval, ok := s.game.Run(ev)
	landing, landed := s.game.takeLanding()
	subscribers := s.subscribers
	s.mu.Unlock()

	if landed {
		notify(subscribers, landing)
	}
	return interval, ok
}

// DisplayState returns a snapshot of the game.
func (s *Session) DisplayState() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.DisplayState()
}

// Level returns the score-derived level.
func (s *Session) Level() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Level()
}

// Reset starts a fresh game on the same area and stops the driver. A driver
// that is mid-sleep notices on wake-up and exits without touching the new game.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game.Reset()
	s.generation++
	s.running = false
	s.stats = driverStatsInternal{history: make([]time.Duration, len(s.stats.history))}
}

// Start launches the auto-drop driver. It returns false if a driver is
// already running or the game is over. The driver stops when the game ends,
// when ctx is cancelled, or on Reset.
func (s *Session) Start(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running || s.game.State() == StateGameOver {
		return false
	}
	s.running = true
	s.generation++
	s.done = make(chan struct{})
	go s.drive(ctx, s.generation, s.game.Interval(), s.done)
	return true
}

// Running reports whether the driver is live.
func (s *Session) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Wait blocks until the most recently started driver has exited.
func (s *Session) Wait() {
	s.mu.Lock()
	done := s.done
	s.mu.Unlock()
	if done != nil {
		<-done
	}
}

func (s *Session) drive(ctx context.Context, generation uint64, interval time.Duration, done chan struct{}) {
	defer close(done)

	for {
		select {
		case <-ctx.Done():
			s.mu.Lock()
			if s.generation == generation {
				s.running = false
			}
			s.mu.Unlock()
			return
		case <-s.after(interval):
		}

		s.mu.Lock()
		if s.generation != generation {
			s.mu.Unlock()
			return
		}
		next, ok := s.game.Run(EventMoveDown)
		landing, landed := s.game.takeLanding()
		subscribers := s.subscribers
		if ok {
			s.stats.record(next)
		} else {
			s.running = false
		}
		s.mu.Unlock()

		if landed {
			notify(subscribers, landing)
		}
		if !ok {
			return
		}
		interval = next
	}
}

// DriverStats returns statistics about the auto-drop driver.
func (s *Session) DriverStats() DriverStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := &s.stats
	stats := DriverStats{
		Running:      s.running,
		Ticks:        d.ticks,
		LastInterval: d.lastInterval,
		MinInterval:  d.minInterval,
		MaxInterval:  d.maxInterval,
		History:      make([]time.Duration, 0, d.historyLen),
	}
	start := (d.historyIndex - d.historyLen + len(d.history)) % max(1, len(d.history))
	for i := range d.historyLen {
		stats.History = append(stats.History, d.history[(start+i)%len(d.history)])
	}
	return stats
}

func notify(subscribers []func(Landing), landing Landing) {
	for _, fn := range subscribers {
		fn(landing)
	}
}
