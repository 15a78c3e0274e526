// Package level holds maze geometry: the hand-authored built-in levels,
// display bounds, and loading of custom level files.
package level

import (
	"strconv"

	"github.com/vovakirdan/tiltmaze/internal/physics"
	"github.com/vovakirdan/tiltmaze/internal/registry"
)

// Design world shared by every front end and used as physics bounds.
const (
	WorldWidth  = 1000.0
	WorldHeight = 1400.0
)

// Built-in level range.
const (
	FirstLevel = 1
	LastLevel  = 5
)

// Spawn is the ball start position for every level.
var Spawn = physics.SpawnPosition

func init() {
	for id := FirstLevel; id <= LastLevel; id++ {
		registry.Register(registry.Entry{
			Key:     strconv.Itoa(id),
			Title:   "Level " + strconv.Itoa(id),
			LevelID: id,
			Build:   func() physics.Level { return Build(id) },
		})
	}
}

// border is the outer frame every built-in level shares.
func border() []physics.Rect {
	return []physics.Rect{
		physics.R(100, 100, 900, 140),
		physics.R(100, 100, 140, 1300),
		physics.R(100, 1260, 900, 1300),
		physics.R(860, 100, 900, 1300),
	}
}

// Build returns the geometry of a built-in level.
// Ids outside 1..5 are clamped into range.
func Build(levelID int) physics.Level {
	switch clampID(levelID) {
	case 1:
		return physics.Level{
			Walls: append(border(),
				physics.R(140, 420, 700, 460),
				physics.R(420, 720, 470, 860),
			),
			Traps: []physics.Rect{
				physics.R(620, 560, 680, 620),
			},
			Goal: physics.R(760, 1160, 840, 1240),
		}
	case 2:
		return physics.Level{
			Walls: append(border(),
				physics.R(140, 320, 700, 360),
				physics.R(300, 520, 860, 560),
				physics.R(140, 760, 700, 800),
				physics.R(300, 980, 860, 1020),
			),
			Traps: []physics.Rect{
				physics.R(740, 380, 800, 440),
				physics.R(200, 600, 260, 660),
				physics.R(740, 820, 800, 880),
			},
			Goal: physics.R(760, 1160, 840, 1240),
		}
	case 3:
		return physics.Level{
			Walls: append(border(),
				physics.R(140, 420, 720, 460),
				physics.R(280, 780, 860, 820),
				physics.R(520, 460, 560, 600),
				physics.R(520, 680, 560, 780),
				physics.R(620, 1040, 860, 1080),
				physics.R(420, 1120, 620, 1160),
				physics.R(420, 240, 460, 340),
				physics.R(760, 540, 800, 660),
				physics.R(240, 880, 280, 1000),
			),
			Traps: []physics.Rect{
				physics.R(200, 520, 260, 580),
				physics.R(700, 620, 760, 680),
				physics.R(360, 940, 420, 1000),
			},
			Goal: physics.R(740, 1160, 840, 1240),
		}
	case 4:
		// Goal sits in a walled pocket at the top right.
		return physics.Level{
			Walls: append(border(),
				physics.R(140, 220, 520, 260),
				physics.R(600, 220, 760, 260),
				physics.R(260, 420, 800, 460),
				physics.R(150, 260, 200, 420),
				physics.R(520, 460, 560, 700),
				physics.R(140, 700, 400, 740),
				physics.R(500, 700, 720, 740),
				physics.R(720, 460, 760, 1100),
				physics.R(560, 540, 720, 580),
				physics.R(140, 1000, 520, 1040),
				physics.R(520, 900, 560, 1000),
				physics.R(660, 100, 700, 420),
				physics.R(660, 100, 900, 140),
				physics.R(660, 380, 820, 420),
				physics.R(740, 140, 900, 170),
				physics.R(850, 170, 900, 260),
				physics.R(740, 260, 800, 290),
			),
			Traps: []physics.Rect{
				physics.R(460, 300, 520, 360),
				physics.R(300, 560, 360, 620),
				physics.R(620, 760, 680, 820),
				physics.R(760, 900, 820, 960),
			},
			Goal: physics.R(785, 175, 845, 235),
		}
	default:
		return physics.Level{
			Walls: append(border(),
				physics.R(140, 260, 620, 300),
				physics.R(380, 420, 860, 460),
				physics.R(140, 580, 620, 620),
				physics.R(380, 740, 860, 780),
				physics.R(140, 900, 620, 940),
				physics.R(380, 1060, 860, 1100),
				physics.R(620, 300, 660, 380),
				physics.R(340, 460, 380, 540),
				physics.R(620, 620, 660, 700),
				physics.R(340, 780, 380, 860),
			),
			Traps: []physics.Rect{
				physics.R(720, 320, 780, 380),
				physics.R(200, 500, 260, 560),
				physics.R(720, 680, 780, 740),
				physics.R(200, 860, 260, 920),
				physics.R(720, 1120, 780, 1180),
			},
			Goal: physics.R(760, 1160, 840, 1240),
		}
	}
}

func clampID(levelID int) int {
	if levelID < FirstLevel {
		return FirstLevel
	}
	if levelID > LastLevel {
		return LastLevel
	}
	return levelID
}
