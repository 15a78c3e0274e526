package physics

// Fixed collision constants.
const (
	Restitution  = 0.6  // Fraction of inbound normal speed kept after a bounce
	CornerRadius = 60.0 // Radius of the rounded play-field corners
	MaxFrameDT   = 0.033
)

// Difficulty curve, keyed only on the level factor (0..4).
const (
	baseDamping  = 0.985
	dampingStep  = 0.002
	minDamping   = 0.972
	baseMaxSpeed = 1100.0
	maxSpeedStep = 120.0
	baseAccel    = 900.0
	accelStep    = 140.0
	baseRadius   = 22.0
	radiusStep   = 1.5
	maxFactor    = 4
)

// SpawnPosition is where every level starts the ball.
var SpawnPosition = Vec2{200, 200}

// LevelFactor maps a level id onto 0..4.
func LevelFactor(levelID int) int {
	f := levelID - 1
	if f < 0 {
		return 0
	}
	if f > maxFactor {
		return maxFactor
	}
	return f
}

// Damping returns the per-step velocity multiplier for a level.
// Higher levels bleed off more speed per step.
func Damping(levelID int) float64 {
	lf := float64(LevelFactor(levelID))
	return clamp(baseDamping-lf*dampingStep, minDamping, baseDamping)
}

// MaxSpeed returns the per-axis speed cap for a level.
func MaxSpeed(levelID int) float64 {
	return baseMaxSpeed + float64(LevelFactor(levelID))*maxSpeedStep
}

// AccelFactor returns how strongly a full tilt accelerates the ball on a level.
func AccelFactor(levelID int) float64 {
	return baseAccel + float64(LevelFactor(levelID))*accelStep
}

// BallRadius returns the ball size used for a level.
func BallRadius(levelID int) float64 {
	return baseRadius - float64(LevelFactor(levelID))*radiusStep
}
