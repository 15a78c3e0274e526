// Package session runs one level attempt: it feeds tilt into the physics
// engine, publishes every new state to observers, and reports finished
// attempts to persistence.
package session

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tiltmaze/internal/physics"
	"github.com/vovakirdan/tiltmaze/internal/replay"
	"github.com/vovakirdan/tiltmaze/internal/storage"
	"github.com/vovakirdan/tiltmaze/internal/tilt"
)

// Recorder persists finished attempts. *storage.Store implements it.
type Recorder interface {
	SubmitTime(levelKey string, ms int64, replay []byte) (bool, error)
	RecordRun(r storage.RunResult) error
}

var _ Recorder = (*storage.Store)(nil)

// Options configures a session.
type Options struct {
	Key      string // Level key used for best times
	LevelID  int    // Difficulty scaling
	Level    physics.Level
	World    replay.World // Physics bounds
	Recorder Recorder     // Optional
	Logger   *log.Logger  // Defaults to log.Default()
	Record   bool         // Keep a replay of the attempt
}

// Result summarizes a finished attempt.
type Result struct {
	Outcome   physics.Outcome
	ElapsedMS int64
	NewBest   bool
}

// Session is one level attempt. It is owned by a single driving goroutine;
// only Subscribe, the subscriptions and Close may be used from others.
type Session struct {
	opts   Options
	logger *log.Logger

	state     physics.GameState
	recording *replay.Recording
	result    *Result

	mu     sync.Mutex
	subs   []*Subscription
	closed bool
}

// New creates a session at the level's starting state.
func New(opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	s := &Session{
		opts:   opts,
		logger: logger,
		state:  physics.NewGameState(opts.LevelID, opts.Level),
	}
	if opts.Record || opts.Recorder != nil {
		s.recording = replay.New(opts.Key, opts.LevelID, opts.World)
	}
	return s
}

// Key returns the level key.
func (s *Session) Key() string {
	return s.opts.Key
}

// State returns the current state.
func (s *Session) State() physics.GameState {
	return s.state
}

// Result returns the outcome of a finished attempt, or nil while running.
func (s *Session) Result() *Result {
	return s.result
}

// Recording returns the replay of the current attempt, or nil when the
// session does not record.
func (s *Session) Recording() *replay.Recording {
	return s.recording
}

// Advance steps the simulation by dt under the normalized tilt and
// publishes the new state. Finished attempts are reported once.
func (s *Session) Advance(dt float64, tiltVec physics.Vec2) physics.GameState {
	if s.state.Outcome.Terminal() {
		return s.state
	}

	s.state.TiltAcceleration = tilt.Acceleration(tiltVec, s.state.LevelID)
	if s.recording != nil {
		s.recording.Add(dt, s.state.TiltAcceleration)
	}
	s.state = physics.Step(s.state, dt, s.opts.World.Width, s.opts.World.Height)
	s.publish(s.state)

	if s.state.Outcome.Terminal() {
		s.finish()
	}
	return s.state
}

// Restart resets the attempt to the starting state.
func (s *Session) Restart() physics.GameState {
	s.state = physics.NewGameState(s.opts.LevelID, s.opts.Level)
	s.result = nil
	if s.recording != nil {
		s.recording.Reset()
	}
	s.publish(s.state)
	return s.state
}

// finish records the result and reports it. Persistence failures are
// logged and never interrupt play.
func (s *Session) finish() {
	res := &Result{Outcome: s.state.Outcome, ElapsedMS: s.state.ElapsedMillis()}
	s.result = res
	if s.recording != nil {
		s.recording.Finish(s.state)
	}

	rec := s.opts.Recorder
	if rec == nil {
		return
	}

	if res.Outcome == physics.Won {
		var blob []byte
		if s.recording != nil {
			var err error
			if blob, err = s.recording.Encode(); err != nil {
				s.logger.Warn("cannot encode replay", "level", s.opts.Key, "error", err)
			}
		}
		improved, err := rec.SubmitTime(s.opts.Key, res.ElapsedMS, blob)
		if err != nil {
			s.logger.Warn("cannot save best time", "level", s.opts.Key, "error", err)
		}
		res.NewBest = improved
	}

	err := rec.RecordRun(storage.RunResult{
		LevelKey:  s.opts.Key,
		Outcome:   res.Outcome.String(),
		ElapsedMS: res.ElapsedMS,
	})
	if err != nil {
		s.logger.Warn("cannot record run", "level", s.opts.Key, "error", err)
	}
}

// Subscribe registers an observer of published states.
// A closed session returns an already-closed subscription.
func (s *Session) Subscribe(buffer int) *Subscription {
	sub := newSubscription(buffer)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		sub.Close()
		return sub
	}
	s.subs = append(s.subs, sub)
	return sub
}

// publish delivers st to every live subscription and forgets closed ones.
func (s *Session) publish(st physics.GameState) {
	s.mu.Lock()
	defer s.mu.Unlock()

	live := s.subs[:0]
	for _, sub := range s.subs {
		if sub.closed() {
			continue
		}
		sub.send(st)
		live = append(live, sub)
	}
	clear(s.subs[len(live):])
	s.subs = live
}

// Close ends every subscription.
// Safe to call multiple times.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	for _, sub := range s.subs {
		sub.Close()
	}
	s.subs = nil
}
