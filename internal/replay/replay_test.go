package replay

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tiltmaze/internal/physics"
)

var testWorld = World{Width: 1000, Height: 1400}

func dashLevel() physics.Level {
	return physics.Level{
		Walls: []physics.Rect{physics.R(100, 300, 900, 340)},
		Goal:  physics.R(600, 150, 650, 250),
	}
}

// record drives a straight dash to the goal and returns the recording.
func record(t *testing.T) *Recording {
	t.Helper()
	rec := New("dash", 1, testWorld)
	s := physics.NewGameState(1, dashLevel())
	accel := physics.V(1500, 40)
	for i := 0; i < 500 && s.Outcome == physics.Running; i++ {
		dt := 0.016
		if i%7 == 0 {
			dt = 0.021
		}
		s.TiltAcceleration = accel
		rec.Add(dt, accel)
		s = physics.Step(s, dt, testWorld.Width, testWorld.Height)
	}
	if s.Outcome != physics.Won {
		t.Fatalf("dash did not reach the goal: %+v", s.Ball)
	}
	rec.Finish(s)
	return rec
}

func TestEncodeDecodeVerify(t *testing.T) {
	rec := record(t)

	data, err := rec.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if got.Key != "dash" || len(got.Frames) != len(rec.Frames) || got.Outcome != physics.Won {
		t.Fatalf("decoded = %+v", got)
	}
	if err := Verify(got, dashLevel()); err != nil {
		t.Errorf("Verify: %v", err)
	}
}

func TestVerifyDetectsMismatch(t *testing.T) {
	rec := record(t)
	rec.ElapsedMS += 250

	if err := Verify(rec, dashLevel()); !errors.Is(err, ErrMismatch) {
		t.Errorf("Verify = %v, want ErrMismatch", err)
	}

	rec = record(t)
	trapped := dashLevel()
	trapped.Traps = []physics.Rect{physics.R(300, 150, 320, 250)}
	if err := Verify(rec, trapped); !errors.Is(err, ErrMismatch) {
		t.Errorf("Verify on changed level = %v, want ErrMismatch", err)
	}
}

func TestSaveLoad(t *testing.T) {
	rec := record(t)
	path := filepath.Join(t.TempDir(), "runs", "dash.tmr")

	if err := rec.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.ElapsedMS != rec.ElapsedMS || loaded.World != testWorld {
		t.Errorf("loaded = %+v", loaded)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDecodeRejectsUnknownVersion(t *testing.T) {
	rec := New("x", 1, testWorld)
	rec.Version = 99
	data, err := rec.Encode()
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if _, err := Decode(data); !errors.Is(err, ErrVersion) {
		t.Errorf("Decode = %v, want ErrVersion", err)
	}
	if _, err := Decode([]byte{0xc1}); err == nil {
		t.Error("expected error for garbage input")
	}
}

func TestPlayerProgress(t *testing.T) {
	rec := record(t)
	p := NewPlayer(rec, dashLevel())

	steps := 0
	for {
		if _, ok := p.Next(); !ok {
			break
		}
		steps++
	}
	done, total := p.Progress()
	if steps != total || done != total {
		t.Errorf("played %d of %d (progress %d)", steps, total, done)
	}
	if p.State().Outcome != physics.Won {
		t.Errorf("final outcome = %v", p.State().Outcome)
	}
}

func TestReset(t *testing.T) {
	rec := record(t)
	rec.Reset()
	if len(rec.Frames) != 0 || rec.Outcome != physics.Running || rec.ElapsedMS != 0 {
		t.Errorf("reset recording = %+v", rec)
	}
}
