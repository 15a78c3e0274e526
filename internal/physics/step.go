package physics

// Step advances s by dt seconds inside a boundsW×boundsH play field and
// returns the new state. The level slices are shared with the input.
//
// Callers clamp dt to [0, MaxFrameDT] before calling. Malformed input
// (negative or non-finite dt, non-finite state, non-positive bounds) is a
// contract violation: the state is returned unchanged, or Step panics when
// built with the tiltmazedebug tag.
func Step(s GameState, dt, boundsW, boundsH float64) GameState {
	if s.Outcome != Running {
		return s
	}
	if msg := checkFrame(s, dt, boundsW, boundsH); msg != "" {
		contractViolation(msg)
		return s
	}

	s.Elapsed += dt
	maxSpeed := MaxSpeed(s.LevelID)
	b := s.Ball

	vel := clampAxes(b.Velocity.Add(s.TiltAcceleration.Mul(dt)), maxSpeed)
	next := b.Position.Add(vel.Mul(dt))

	for _, w := range s.Level.Walls {
		next, vel, _ = collideRect(next, vel, b.Radius, w)
	}
	next, vel = collideBounds(next, vel, b.Radius, boundsW, boundsH)

	// A glancing bounce off a rounded surface can rotate speed onto one axis.
	vel = clampAxes(vel, maxSpeed)

	b.Position = next
	b.Velocity = vel.Mul(Damping(s.LevelID))
	s.Ball = b

	for _, t := range s.Level.Traps {
		if CircleIntersectsRect(b.Position, b.Radius, t) {
			s.Outcome = Lost
			return s
		}
	}
	if CircleIntersectsRect(b.Position, b.Radius, s.Level.Goal) {
		s.Outcome = Won
	}
	return s
}

// checkFrame returns a description of the first malformed input, or "".
func checkFrame(s GameState, dt, boundsW, boundsH float64) string {
	switch {
	case !isFinite(dt) || dt < 0:
		return "dt must be finite and non-negative"
	case !isFinite(boundsW) || !isFinite(boundsH) || boundsW <= 0 || boundsH <= 0:
		return "bounds must be finite and positive"
	case !finite(s.Ball.Position) || !finite(s.Ball.Velocity):
		return "ball kinematics must be finite"
	case !isFinite(s.Ball.Radius) || s.Ball.Radius < 0:
		return "ball radius must be finite and non-negative"
	case !finite(s.TiltAcceleration):
		return "tilt acceleration must be finite"
	case !isFinite(s.Elapsed):
		return "elapsed time must be finite"
	}
	return ""
}
