package physics

// Outcome classifies a level attempt.
type Outcome int

const (
	Running Outcome = iota
	Won
	Lost
)

// String returns a human-readable name for the outcome.
func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the outcome ends the attempt.
func (o Outcome) Terminal() bool {
	return o == Won || o == Lost
}

// Ball is the simulated body.
type Ball struct {
	Position Vec2
	Velocity Vec2
	Radius   float64
}

// Level is the immutable geometry of one maze.
// Step reads it but never modifies or reallocates it.
type Level struct {
	Walls []Rect
	Traps []Rect
	Goal  Rect
}

// GameState is everything Step needs for one level attempt.
type GameState struct {
	LevelID          int
	Elapsed          float64 // Seconds of simulated play
	Outcome          Outcome
	Ball             Ball
	TiltAcceleration Vec2 // Set by the caller before each Step
	Level            Level
}

// NewGameState creates the starting state for a level: ball at the spawn
// point, at rest, sized for the level's difficulty.
func NewGameState(levelID int, lvl Level) GameState {
	return GameState{
		LevelID: levelID,
		Outcome: Running,
		Ball: Ball{
			Position: SpawnPosition,
			Radius:   BallRadius(levelID),
		},
		Level: lvl,
	}
}

// ElapsedMillis returns the elapsed play time truncated to whole milliseconds.
func (s GameState) ElapsedMillis() int64 {
	return int64(s.Elapsed * 1000)
}
