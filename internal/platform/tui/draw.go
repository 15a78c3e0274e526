package tui

import (
	"fmt"

	"github.com/vovakirdan/tiltmaze/internal/core"
	"github.com/vovakirdan/tiltmaze/internal/level"
	"github.com/vovakirdan/tiltmaze/internal/physics"
)

// Glyphs used for the playfield.
const (
	glyphWall = '█'
	glyphTrap = '✖'
	glyphGoal = '▒'
	glyphBall = '●'
)

// View is everything needed to draw one frame of a level attempt.
type View struct {
	State   physics.GameState
	Title   string
	BestMS  int64
	HasBest bool
	NewBest bool
	Source  string // "kbd" or "sensor"
	Paused  bool
	HasNext bool
}

// DrawGame renders v into s. The level is scaled to fit the screen below
// the HUD line; aspect is the terminal cell height over width.
func DrawGame(s *core.Screen, v View, aspect float64, showHUD bool) {
	s.Clear()
	if s.Width() <= 0 || s.Height() <= 0 {
		return
	}

	top := 0
	if showHUD {
		s.DrawText(0, 0, HUDLine(v), core.ColorHUD)
		top = 1
	}

	st := v.State
	b := level.Bounds(st.Level, st.Ball)
	vp := core.FitViewport(b.Left, b.Top, b.Right, b.Bottom, s.Width(), s.Height()-top, aspect)

	draw := func(r physics.Rect, glyph rune, c core.Color) {
		cells := vp.Rect(r.Left, r.Top, r.Right, r.Bottom)
		cells.Y += top
		s.DrawRect(cells, glyph, c)
	}
	for _, w := range st.Level.Walls {
		draw(w, glyphWall, core.ColorWall)
	}
	draw(st.Level.Goal, glyphGoal, core.ColorGoal)
	for _, t := range st.Level.Traps {
		draw(t, glyphTrap, core.ColorTrap)
	}

	bx, by := vp.Point(st.Ball.Position.X(), st.Ball.Position.Y())
	s.SetColored(bx, by+top, glyphBall, core.ColorBall)

	switch {
	case st.Outcome.Terminal():
		drawOverlay(s, endLines(v))
	case v.Paused:
		drawOverlay(s, []overlayLine{
			{"Paused", core.ColorHUD},
			{"P: Resume  R: Restart  B: Back", core.ColorDim},
		})
	}
}

// HUDLine formats the status line shown above the playfield.
func HUDLine(v View) string {
	best := "--.--"
	if v.HasBest {
		best = formatMillis(v.BestMS)
	}
	src := v.Source
	if src == "" {
		src = "kbd"
	}
	return fmt.Sprintf("%s  Time: %.2fs  Best: %s  Tilt: %s", v.Title, v.State.Elapsed, best, src)
}

type overlayLine struct {
	text  string
	color core.Color
}

func endLines(v View) []overlayLine {
	st := v.State
	var lines []overlayLine
	if st.Outcome == physics.Won {
		lines = append(lines,
			overlayLine{"You Win!", core.ColorWin},
			overlayLine{fmt.Sprintf("Time: %.2fs", st.Elapsed), core.ColorHUD},
		)
		if v.NewBest {
			lines = append(lines, overlayLine{"New best time!", core.ColorWin})
		}
	} else {
		lines = append(lines,
			overlayLine{"You Lost!", core.ColorLose},
			overlayLine{"Hit trap!", core.ColorHUD},
		)
	}
	if v.HasBest {
		lines = append(lines, overlayLine{"Best: " + formatMillis(v.BestMS), core.ColorDim})
	}

	controls := "R: Restart  B: Back"
	if st.Outcome == physics.Won && v.HasNext {
		controls = "Enter: Next  " + controls
	}
	return append(lines, overlayLine{controls, core.ColorDim})
}

// drawOverlay draws a framed message box in the middle of the screen.
func drawOverlay(s *core.Screen, lines []overlayLine) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l.text)))
	}
	width += 4
	height := len(lines) + 2

	box := core.NewRect((s.Width()-width)/2, (s.Height()-height)/2, width, height)
	s.DrawRect(box, ' ', core.ColorDefault)
	s.DrawBox(box, core.ColorHUD)
	for i, l := range lines {
		s.DrawTextCentered(box.Y+1+i, l.text, l.color)
	}
}

// formatMillis renders a duration in milliseconds as seconds.
func formatMillis(ms int64) string {
	return fmt.Sprintf("%.2fs", float64(ms)/1000)
}
