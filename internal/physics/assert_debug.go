//go:build tiltmazedebug

package physics

// contractViolation aborts on malformed Step input in debug builds.
func contractViolation(msg string) {
	panic("physics: " + msg)
}
