package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tiltmaze/internal/physics"
)

func withCleanRegistry(t *testing.T) {
	t.Helper()
	mu.Lock()
	saved := entries
	entries = make(map[string]Entry)
	mu.Unlock()
	t.Cleanup(func() {
		mu.Lock()
		entries = saved
		mu.Unlock()
	})
}

func emptyLevel() physics.Level { return physics.Level{} }

func TestRegisterAndGet(t *testing.T) {
	withCleanRegistry(t)

	Register(Entry{Key: "2", Title: "Level 2", LevelID: 2, Build: emptyLevel})

	e, err := Get("2")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if e.Title != "Level 2" || e.LevelID != 2 {
		t.Errorf("entry = %+v", e)
	}
	if !Exists("2") || Exists("3") {
		t.Error("Exists reports wrong membership")
	}

	_, err = Get("missing")
	if !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("Get(missing) error = %v, want ErrUnknownLevel", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	withCleanRegistry(t)
	Register(Entry{Key: "1", LevelID: 1, Build: emptyLevel})

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate key")
		}
	}()
	Register(Entry{Key: "1", LevelID: 1, Build: emptyLevel})
}

func TestTryRegisterRejects(t *testing.T) {
	withCleanRegistry(t)

	if err := TryRegister(Entry{Key: "", Build: emptyLevel}); err == nil {
		t.Error("expected error for empty key")
	}
	if err := TryRegister(Entry{Key: "x"}); err == nil {
		t.Error("expected error for missing builder")
	}
	if err := TryRegister(Entry{Key: "x", Build: emptyLevel, Custom: true}); err != nil {
		t.Fatalf("TryRegister: %v", err)
	}
	if err := TryRegister(Entry{Key: "x", Build: emptyLevel, Custom: true}); err == nil {
		t.Error("expected error for duplicate key")
	}
}

func TestListOrder(t *testing.T) {
	withCleanRegistry(t)

	Register(Entry{Key: "zeta", Build: emptyLevel, LevelID: 1, Custom: true})
	Register(Entry{Key: "10", Build: emptyLevel, LevelID: 10})
	Register(Entry{Key: "alpha", Build: emptyLevel, LevelID: 5, Custom: true})
	Register(Entry{Key: "2", Build: emptyLevel, LevelID: 2})

	var keys []string
	for _, e := range List() {
		keys = append(keys, e.Key)
	}
	want := []string{"2", "10", "alpha", "zeta"}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Fatalf("keys = %v, want %v", keys, want)
		}
	}

	if got := Next("10"); got != "alpha" {
		t.Errorf("Next(10) = %q, want alpha", got)
	}
	if got := Next("zeta"); got != "" {
		t.Errorf("Next(zeta) = %q, want empty", got)
	}
}
