package formats

import (
	"errors"
	"testing"
)

func TestParseYAML(t *testing.T) {
	data := []byte(`
id: tiny
walls:
  - [0, 0, 10, 10]
goal: [20, 20, 30, 30]
`)
	f, err := Parse(data, ".yml")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if f.Difficulty != 1 {
		t.Errorf("difficulty default = %d, want 1", f.Difficulty)
	}
	if len(f.Walls) != 1 || f.Walls[0] != [4]float64{0, 0, 10, 10} {
		t.Errorf("walls = %v", f.Walls)
	}
}

func TestParseTOML(t *testing.T) {
	data := []byte(`
id = "tiny"
name = "Tiny"
difficulty = 4
traps = [[5.0, 5.0, 8.0, 8.0], [50.0, 50.0, 60.0, 60.0]]
goal = [20.0, 20.0, 30.0, 30.0]
`)
	f, err := Parse(data, ".toml")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if f.Name != "Tiny" || f.Difficulty != 4 || len(f.Traps) != 2 {
		t.Errorf("file = %+v", f)
	}
	if got := f.Level().Traps[1].Right; got != 60 {
		t.Errorf("trap right = %v", got)
	}
}

func TestValidate(t *testing.T) {
	good := File{ID: "x", Difficulty: 2, Goal: [4]float64{0, 0, 1, 1}}
	tests := []struct {
		name   string
		mutate func(*File)
	}{
		{"missing id", func(f *File) { f.ID = "" }},
		{"difficulty too high", func(f *File) { f.Difficulty = 6 }},
		{"difficulty zero", func(f *File) { f.Difficulty = 0 }},
		{"empty goal", func(f *File) { f.Goal = [4]float64{} }},
		{"inverted wall", func(f *File) { f.Walls = [][4]float64{{10, 0, 0, 10}} }},
		{"inverted trap", func(f *File) { f.Traps = [][4]float64{{0, 10, 10, 0}} }},
	}
	if err := good.Validate(); err != nil {
		t.Fatalf("good file rejected: %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := good
			tt.mutate(&f)
			if err := f.Validate(); !errors.Is(err, ErrInvalidLevel) {
				t.Errorf("Validate = %v, want ErrInvalidLevel", err)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	if _, err := Parse([]byte("id: [unclosed"), ".yaml"); err == nil {
		t.Error("expected yaml syntax error")
	}
	if _, err := Parse([]byte("id = "), ".toml"); err == nil {
		t.Error("expected toml syntax error")
	}
	if _, err := Parse([]byte("{}"), ".json"); err == nil {
		t.Error("expected unsupported extension error")
	}
}
