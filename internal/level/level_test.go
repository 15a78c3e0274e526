package level

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tiltmaze/internal/physics"
	"github.com/vovakirdan/tiltmaze/internal/registry"
)

func TestBuiltinsRegistered(t *testing.T) {
	for _, key := range []string{"1", "2", "3", "4", "5"} {
		e, err := registry.Get(key)
		if err != nil {
			t.Fatalf("Get(%s): %v", key, err)
		}
		if e.Custom {
			t.Errorf("level %s marked custom", key)
		}
		if e.Title != "Level "+key {
			t.Errorf("title = %q", e.Title)
		}
	}
}

func TestBuildGeometry(t *testing.T) {
	counts := map[int][2]int{
		1: {6, 1},
		2: {8, 3},
		3: {13, 3},
		4: {21, 4},
		5: {14, 5},
	}
	for id := FirstLevel; id <= LastLevel; id++ {
		lvl := Build(id)
		want := counts[id]
		if len(lvl.Walls) != want[0] || len(lvl.Traps) != want[1] {
			t.Errorf("level %d: %d walls, %d traps; want %d, %d", id, len(lvl.Walls), len(lvl.Traps), want[0], want[1])
		}
		if !lvl.Goal.Valid() || lvl.Goal.Empty() {
			t.Errorf("level %d: goal %+v is not a usable rectangle", id, lvl.Goal)
		}

		r := physics.BallRadius(id)
		for i, w := range lvl.Walls {
			if !w.Valid() {
				t.Errorf("level %d wall %d inverted: %+v", id, i, w)
			}
			if physics.CircleIntersectsRect(Spawn, r, w) {
				t.Errorf("level %d: spawn overlaps wall %d", id, i)
			}
		}
		for i, tr := range lvl.Traps {
			if physics.CircleIntersectsRect(Spawn, r, tr) {
				t.Errorf("level %d: spawn overlaps trap %d", id, i)
			}
		}
	}
}

func TestBuildClampsID(t *testing.T) {
	if got := Build(0).Goal; got != Build(1).Goal {
		t.Errorf("Build(0) goal = %+v, want level 1", got)
	}
	if got := len(Build(42).Walls); got != len(Build(5).Walls) {
		t.Errorf("Build(42) walls = %d, want level 5", got)
	}
}

func TestBuildReturnsFreshSlices(t *testing.T) {
	a := Build(1)
	a.Walls[0] = physics.R(0, 0, 0, 0)
	if Build(1).Walls[0] == a.Walls[0] {
		t.Error("Build must not share mutable geometry between calls")
	}
}

func TestBounds(t *testing.T) {
	ball := physics.Ball{Position: Spawn, Radius: 22}
	got := Bounds(Build(1), ball)
	want := physics.R(60, 60, 940, 1340)
	if got != want {
		t.Errorf("Bounds = %+v, want %+v", got, want)
	}

	lone := Bounds(physics.Level{Goal: physics.R(500, 500, 520, 520)}, ball)
	if lone.Left != 200-22-BoundsPadding || lone.Bottom != 520+BoundsPadding {
		t.Errorf("Bounds without walls = %+v", lone)
	}
}

const yamlLevel = `
id: spiral
name: Spiral
difficulty: 3
walls:
  - [100, 100, 900, 140]
  - [300, 300, 700, 340]
traps:
  - [400, 600, 460, 660]
goal: [760, 1160, 840, 1240]
`

const tomlLevel = `
id = "corridor"
difficulty = 2
walls = [[100.0, 100.0, 900.0, 140.0]]
goal = [760.0, 1160.0, 840.0, 1240.0]
`

const brokenLevel = `
id: broken
difficulty: 9
goal: [0, 0, 10, 10]
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoaderLoadAll(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "spiral.yaml", yamlLevel)
	writeFile(t, dir, "nested/corridor.toml", tomlLevel)
	writeFile(t, dir, "broken.yml", brokenLevel)
	writeFile(t, dir, "notes.txt", "ignored")

	levels, skipped, err := NewLoader(dir).LoadAll()
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(levels) != 2 {
		t.Fatalf("loaded %d levels, want 2", len(levels))
	}
	if levels[0].ID != "corridor" || levels[1].ID != "spiral" {
		t.Errorf("order = %s, %s", levels[0].ID, levels[1].ID)
	}
	if len(skipped) != 1 || !strings.HasSuffix(skipped[0].Path, "broken.yml") {
		t.Errorf("skipped = %+v", skipped)
	}

	spiral := levels[1]
	if spiral.Title() != "Spiral" || spiral.Difficulty != 3 {
		t.Errorf("spiral = %+v", spiral.File)
	}
	geo := spiral.Level()
	if len(geo.Walls) != 2 || len(geo.Traps) != 1 || geo.Goal != physics.R(760, 1160, 840, 1240) {
		t.Errorf("geometry = %+v", geo)
	}
	if levels[0].Title() != "corridor" {
		t.Errorf("title fallback = %q", levels[0].Title())
	}
}

func TestLoaderMissingRoot(t *testing.T) {
	levels, skipped, err := NewLoader(filepath.Join(t.TempDir(), "nope")).LoadAll()
	if err != nil || levels != nil || skipped != nil {
		t.Errorf("LoadAll on missing dir = %v, %v, %v", levels, skipped, err)
	}
}

func TestLoaderRegisterAll(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", strings.Replace(yamlLevel, "id: spiral", "id: register-test", 1))
	writeFile(t, dir, "b.yaml", strings.Replace(yamlLevel, "id: spiral", "id: \"1\"", 1))

	registered, skipped, err := NewLoader(dir).RegisterAll()
	if err != nil {
		t.Fatalf("RegisterAll: %v", err)
	}
	if len(registered) != 1 || registered[0].ID != "register-test" {
		t.Errorf("registered = %+v", registered)
	}
	if len(skipped) != 1 {
		t.Errorf("duplicate of a built-in key should be skipped, got %+v", skipped)
	}

	e, err := registry.Get("register-test")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !e.Custom || e.LevelID != 3 || len(e.Build().Walls) != 2 {
		t.Errorf("entry = %+v", e)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := ExpandHome("~/levels"); got != filepath.Join(home, "levels") {
		t.Errorf("ExpandHome = %q", got)
	}
	if got := ExpandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("ExpandHome changed absolute path: %q", got)
	}
}
