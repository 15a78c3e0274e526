package session

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tiltmaze/internal/physics"
	"github.com/vovakirdan/tiltmaze/internal/replay"
	"github.com/vovakirdan/tiltmaze/internal/storage"
)

var world = replay.World{Width: 1000, Height: 1400}

type fakeRecorder struct {
	submits   []int64
	blobs     [][]byte
	runs      []storage.RunResult
	improve   bool
	submitErr error
}

func (f *fakeRecorder) SubmitTime(key string, ms int64, blob []byte) (bool, error) {
	f.submits = append(f.submits, ms)
	f.blobs = append(f.blobs, blob)
	return f.improve, f.submitErr
}

func (f *fakeRecorder) RecordRun(r storage.RunResult) error {
	f.runs = append(f.runs, r)
	return nil
}

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

// goalLevel puts the goal right next to the spawn point.
func goalLevel() physics.Level {
	return physics.Level{Goal: physics.R(240, 180, 300, 220)}
}

// trapLevel puts a trap right next to the spawn point.
func trapLevel() physics.Level {
	return physics.Level{
		Traps: []physics.Rect{physics.R(240, 180, 300, 220)},
		Goal:  physics.R(900, 1300, 950, 1350),
	}
}

// rollRight tilts the board so the ball rolls toward +x.
var rollRight = physics.V(-1, 0)

func run(s *Session, frames int) physics.GameState {
	var st physics.GameState
	for i := 0; i < frames; i++ {
		st = s.Advance(0.016, rollRight)
	}
	return st
}

func TestWinSubmitsTimeAndReplay(t *testing.T) {
	rec := &fakeRecorder{improve: true}
	s := New(Options{Key: "1", LevelID: 1, Level: goalLevel(), World: world, Recorder: rec, Logger: quietLogger()})

	st := run(s, 200)
	if st.Outcome != physics.Won {
		t.Fatalf("outcome = %v, want won", st.Outcome)
	}
	if len(rec.submits) != 1 {
		t.Fatalf("SubmitTime called %d times, want 1", len(rec.submits))
	}
	if rec.submits[0] != st.ElapsedMillis() {
		t.Errorf("submitted %dms, want %dms", rec.submits[0], st.ElapsedMillis())
	}
	if len(rec.runs) != 1 || rec.runs[0].Outcome != "won" {
		t.Errorf("runs = %+v", rec.runs)
	}

	res := s.Result()
	if res == nil || !res.NewBest || res.Outcome != physics.Won {
		t.Errorf("result = %+v", res)
	}

	decoded, err := replay.Decode(rec.blobs[0])
	if err != nil {
		t.Fatalf("stored replay does not decode: %v", err)
	}
	if err := replay.Verify(decoded, goalLevel()); err != nil {
		t.Errorf("stored replay does not verify: %v", err)
	}
}

func TestLossRecordsRunOnly(t *testing.T) {
	rec := &fakeRecorder{}
	s := New(Options{Key: "2", LevelID: 2, Level: trapLevel(), World: world, Recorder: rec, Logger: quietLogger()})

	st := run(s, 200)
	if st.Outcome != physics.Lost {
		t.Fatalf("outcome = %v, want lost", st.Outcome)
	}
	if len(rec.submits) != 0 {
		t.Errorf("loss submitted a time: %v", rec.submits)
	}
	if len(rec.runs) != 1 || rec.runs[0].Outcome != "lost" || rec.runs[0].LevelKey != "2" {
		t.Errorf("runs = %+v", rec.runs)
	}
}

func TestRecorderErrorsDoNotStopPlay(t *testing.T) {
	rec := &fakeRecorder{submitErr: errors.New("disk full")}
	s := New(Options{Key: "1", LevelID: 1, Level: goalLevel(), World: world, Recorder: rec, Logger: quietLogger()})

	if st := run(s, 200); st.Outcome != physics.Won {
		t.Fatalf("outcome = %v, want won", st.Outcome)
	}
	if s.Result().NewBest {
		t.Error("failed submit must not count as a new best")
	}
	if len(rec.runs) != 1 {
		t.Errorf("run not recorded after submit failure")
	}
}

func TestTerminalStateIsFrozen(t *testing.T) {
	rec := &fakeRecorder{}
	s := New(Options{Key: "1", LevelID: 1, Level: goalLevel(), World: world, Recorder: rec, Logger: quietLogger()})

	won := run(s, 200)
	again := run(s, 10)
	if again.Ball != won.Ball || again.Elapsed != won.Elapsed {
		t.Errorf("state changed after win")
	}
	if len(rec.submits) != 1 || len(rec.runs) != 1 {
		t.Errorf("finished attempt reported more than once: %d submits, %d runs", len(rec.submits), len(rec.runs))
	}
}

func TestRestart(t *testing.T) {
	rec := &fakeRecorder{}
	s := New(Options{Key: "1", LevelID: 1, Level: goalLevel(), World: world, Recorder: rec, Logger: quietLogger()})
	run(s, 200)

	st := s.Restart()
	if st.Outcome != physics.Running || st.Elapsed != 0 || st.Ball.Position != physics.SpawnPosition {
		t.Errorf("restart state = %+v", st)
	}
	if s.Result() != nil {
		t.Error("result not cleared on restart")
	}
	if n := len(s.Recording().Frames); n != 0 {
		t.Errorf("recording kept %d frames after restart", n)
	}

	run(s, 200)
	if len(rec.runs) != 2 {
		t.Errorf("second attempt not reported: %d runs", len(rec.runs))
	}
}

func TestNoRecorderNoRecording(t *testing.T) {
	s := New(Options{Key: "1", LevelID: 1, Level: goalLevel(), World: world})
	if s.Recording() != nil {
		t.Error("session without recorder or Record flag should not record")
	}
	if st := run(s, 200); st.Outcome != physics.Won {
		t.Errorf("outcome = %v", st.Outcome)
	}

	r := New(Options{Key: "1", LevelID: 1, Level: goalLevel(), World: world, Record: true})
	run(r, 200)
	if r.Recording() == nil || r.Recording().Outcome != physics.Won {
		t.Error("Record flag should keep a finished recording")
	}
}

func TestSubscriptionReceivesStates(t *testing.T) {
	s := New(Options{Key: "1", LevelID: 1, Level: trapLevel(), World: world})
	sub := s.Subscribe(4)

	s.Advance(0.016, rollRight)
	s.Advance(0.016, rollRight)

	first := <-sub.Events()
	second := <-sub.Events()
	if second.Elapsed <= first.Elapsed {
		t.Errorf("states out of order: %v then %v", first.Elapsed, second.Elapsed)
	}
}

func TestSubscriptionDropsOldest(t *testing.T) {
	s := New(Options{Key: "1", LevelID: 1, Level: trapLevel(), World: world})
	sub := s.Subscribe(2)

	var last physics.GameState
	for i := 0; i < 5; i++ {
		last = s.Advance(0.01, physics.Vec2{})
	}

	<-sub.Events()
	newest := <-sub.Events()
	if newest.Elapsed != last.Elapsed {
		t.Errorf("newest buffered elapsed = %v, want %v", newest.Elapsed, last.Elapsed)
	}
}

func TestCloseEndsSubscriptions(t *testing.T) {
	s := New(Options{Key: "1", LevelID: 1, Level: trapLevel(), World: world})
	sub := s.Subscribe(1)
	dropped := s.Subscribe(1)
	dropped.Close()

	s.Advance(0.01, physics.Vec2{})
	if len(s.subs) != 1 {
		t.Errorf("closed subscription not pruned: %d live", len(s.subs))
	}

	s.Close()
	s.Close()
	select {
	case <-sub.Done():
	default:
		t.Error("subscription still open after session close")
	}

	late := s.Subscribe(1)
	select {
	case <-late.Done():
	default:
		t.Error("subscribing to a closed session should return a closed subscription")
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	a := New(Options{Key: "1", LevelID: 1, Level: goalLevel(), World: world})
	b := New(Options{Key: "3", LevelID: 3, Level: goalLevel(), World: world})

	r.Track("conn-b", b)
	r.Track("conn-a", a)
	r.Track("conn-c", New(Options{Key: "1", LevelID: 1, Level: goalLevel(), World: world}))

	if r.Count() != 3 {
		t.Errorf("Count = %d, want 3", r.Count())
	}
	if got, ok := r.Get("conn-a"); !ok || got != a {
		t.Error("Get returned the wrong session")
	}
	if lv := r.Levels(); lv["1"] != 2 || lv["3"] != 1 {
		t.Errorf("Levels = %v", lv)
	}
	if ids := r.Owners(); len(ids) != 3 || ids[0] != "conn-a" {
		t.Errorf("Owners = %v", ids)
	}

	r.Untrack("conn-a")
	if _, ok := r.Get("conn-a"); ok {
		t.Error("session still tracked after Untrack")
	}
}
