package core

// Color is the role of a screen cell. The platform layer maps roles to
// terminal colors.
type Color uint8

const (
	ColorDefault Color = iota
	ColorWall
	ColorTrap
	ColorGoal
	ColorBall
	ColorHUD
	ColorWin
	ColorLose
	ColorDim
)
