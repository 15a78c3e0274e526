package storage

import (
	"fmt"

	"github.com/vovakirdan/tiltmaze/internal/tilt"
)

// Settings are the player preferences. There is exactly one row.
type Settings struct {
	Sensitivity float64
	Vibration   bool
	Sound       bool
}

// DefaultSettings returns the values a fresh database starts with.
func DefaultSettings() Settings {
	return Settings{
		Sensitivity: tilt.DefaultSensitivity,
		Vibration:   true,
		Sound:       true,
	}
}

// EnsureDefaults creates the settings row if it is missing.
func (s *Store) EnsureDefaults() error {
	d := DefaultSettings()
	_, err := s.db.Exec(
		"INSERT OR IGNORE INTO settings (id, sensitivity, vibration, sound) VALUES (1, ?, ?, ?)",
		d.Sensitivity, d.Vibration, d.Sound,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot ensure default settings: %w", err)
	}
	return nil
}

// Settings returns the stored preferences.
func (s *Store) Settings() (Settings, error) {
	var st Settings
	err := s.db.QueryRow(
		"SELECT sensitivity, vibration, sound FROM settings WHERE id = 1",
	).Scan(&st.Sensitivity, &st.Vibration, &st.Sound)
	if err != nil {
		return Settings{}, fmt.Errorf("storage: cannot query settings: %w", err)
	}
	return st, nil
}

// UpdateSensitivity stores the tilt sensitivity, clamped to the allowed
// range, and returns the value stored.
func (s *Store) UpdateSensitivity(v float64) (float64, error) {
	v = tilt.ClampSensitivity(v)
	if _, err := s.db.Exec("UPDATE settings SET sensitivity = ? WHERE id = 1", v); err != nil {
		return 0, fmt.Errorf("storage: cannot update sensitivity: %w", err)
	}
	return v, nil
}

// SetVibration stores the vibration flag.
func (s *Store) SetVibration(on bool) error {
	if _, err := s.db.Exec("UPDATE settings SET vibration = ? WHERE id = 1", on); err != nil {
		return fmt.Errorf("storage: cannot update vibration: %w", err)
	}
	return nil
}

// SetSound stores the sound flag.
func (s *Store) SetSound(on bool) error {
	if _, err := s.db.Exec("UPDATE settings SET sound = ? WHERE id = 1", on); err != nil {
		return fmt.Errorf("storage: cannot update sound: %w", err)
	}
	return nil
}
