// Package replay records level attempts frame by frame and plays them back
// through the physics engine. Recordings are msgpack-encoded.
package replay

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/vovakirdan/tiltmaze/internal/physics"
)

// Version is the current recording format.
const Version = 1

var (
	// ErrMismatch is returned when a replay does not reproduce its outcome.
	ErrMismatch = errors.New("replay: outcome mismatch")

	// ErrVersion is returned for recordings in an unknown format.
	ErrVersion = errors.New("replay: unsupported version")
)

// World is the play field size the attempt ran in.
type World struct {
	Width  float64 `msgpack:"w"`
	Height float64 `msgpack:"h"`
}

// Frame is one engine step: its dt and the acceleration applied.
type Frame struct {
	DT float64 `msgpack:"dt"`
	AX float64 `msgpack:"ax"`
	AY float64 `msgpack:"ay"`
}

// Recording is a complete level attempt.
type Recording struct {
	Version   int             `msgpack:"v"`
	Key       string          `msgpack:"key"`
	LevelID   int             `msgpack:"level"`
	World     World           `msgpack:"world"`
	Frames    []Frame         `msgpack:"frames"`
	Outcome   physics.Outcome `msgpack:"outcome"`
	ElapsedMS int64           `msgpack:"elapsed_ms"`
}

// New starts an empty recording.
func New(key string, levelID int, world World) *Recording {
	return &Recording{
		Version: Version,
		Key:     key,
		LevelID: levelID,
		World:   world,
	}
}

// Add appends a frame.
func (r *Recording) Add(dt float64, accel physics.Vec2) {
	r.Frames = append(r.Frames, Frame{DT: dt, AX: accel.X(), AY: accel.Y()})
}

// Finish stores the result the attempt ended with.
func (r *Recording) Finish(s physics.GameState) {
	r.Outcome = s.Outcome
	r.ElapsedMS = s.ElapsedMillis()
}

// Reset drops all frames and the stored result.
func (r *Recording) Reset() {
	r.Frames = r.Frames[:0]
	r.Outcome = physics.Running
	r.ElapsedMS = 0
}

// Encode serializes the recording.
func (r *Recording) Encode() ([]byte, error) {
	data, err := msgpack.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("replay: encode: %w", err)
	}
	return data, nil
}

// Decode parses a serialized recording.
func Decode(data []byte) (*Recording, error) {
	var r Recording
	if err := msgpack.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("replay: decode: %w", err)
	}
	if r.Version != Version {
		return nil, fmt.Errorf("%w: %d", ErrVersion, r.Version)
	}
	return &r, nil
}

// Save writes the recording to path, creating parent directories.
func (r *Recording) Save(path string) error {
	data, err := r.Encode()
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("replay: cannot create directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("replay: cannot write %s: %w", path, err)
	}
	return nil
}

// Load reads a recording from path.
func Load(path string) (*Recording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot read %s: %w", path, err)
	}
	return Decode(data)
}
