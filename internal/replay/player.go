package replay

import (
	"fmt"

	"github.com/vovakirdan/tiltmaze/internal/physics"
)

// Player steps through a recording one frame at a time.
type Player struct {
	rec   *Recording
	state physics.GameState
	next  int
}

// NewPlayer prepares playback of rec on lvl.
func NewPlayer(rec *Recording, lvl physics.Level) *Player {
	return &Player{
		rec:   rec,
		state: physics.NewGameState(rec.LevelID, lvl),
	}
}

// Next applies the next frame. It reports false once every frame has
// been played.
func (p *Player) Next() (physics.GameState, bool) {
	if p.next >= len(p.rec.Frames) {
		return p.state, false
	}
	f := p.rec.Frames[p.next]
	p.next++
	p.state.TiltAcceleration = physics.Vec2{f.AX, f.AY}
	p.state = physics.Step(p.state, f.DT, p.rec.World.Width, p.rec.World.Height)
	return p.state, true
}

// State returns the current playback state.
func (p *Player) State() physics.GameState {
	return p.state
}

// Progress returns the number of frames played and the total.
func (p *Player) Progress() (int, int) {
	return p.next, len(p.rec.Frames)
}

// Play runs every frame of rec and returns the final state.
func Play(rec *Recording, lvl physics.Level) physics.GameState {
	p := NewPlayer(rec, lvl)
	for {
		if _, ok := p.Next(); !ok {
			return p.State()
		}
	}
}

// Verify replays rec and checks it reproduces the recorded result.
func Verify(rec *Recording, lvl physics.Level) error {
	final := Play(rec, lvl)
	if final.Outcome != rec.Outcome || final.ElapsedMillis() != rec.ElapsedMS {
		return fmt.Errorf("%w: recorded %s in %dms, replayed %s in %dms",
			ErrMismatch, rec.Outcome, rec.ElapsedMS, final.Outcome, final.ElapsedMillis())
	}
	return nil
}
