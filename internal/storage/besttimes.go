package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNoBestTime is returned when a level has no recorded best time.
var ErrNoBestTime = errors.New("storage: no best time")

// BestEntry is a level's best completion.
type BestEntry struct {
	LevelKey  string
	TimeMS    int64
	HasReplay bool
	UpdatedAt time.Time
}

// SubmitTime stores ms as the best time for levelKey if it is strictly
// lower than the current best (or there is none). The replay blob is
// stored alongside and may be nil. It reports whether the best improved.
func (s *Store) SubmitTime(levelKey string, ms int64, replay []byte) (bool, error) {
	if ms < 0 {
		return false, fmt.Errorf("storage: negative time %d for level %q", ms, levelKey)
	}

	res, err := s.db.Exec(
		`INSERT INTO best_times (level_key, best_time_ms, replay, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(level_key) DO UPDATE SET
			best_time_ms = excluded.best_time_ms,
			replay = excluded.replay,
			updated_at = excluded.updated_at
		 WHERE excluded.best_time_ms < best_times.best_time_ms`,
		levelKey, ms, replay,
	)
	if err != nil {
		return false, fmt.Errorf("storage: cannot submit time: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("storage: cannot get affected rows: %w", err)
	}
	return n > 0, nil
}

// BestTime returns the best time in milliseconds for levelKey.
// Returns ErrNoBestTime if the level was never completed.
func (s *Store) BestTime(levelKey string) (int64, error) {
	var ms int64
	err := s.db.QueryRow(
		"SELECT best_time_ms FROM best_times WHERE level_key = ?",
		levelKey,
	).Scan(&ms)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrNoBestTime
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best time: %w", err)
	}
	return ms, nil
}

// BestReplay returns the recording stored with the best time. The blob is
// nil when the best run was stored without one.
func (s *Store) BestReplay(levelKey string) ([]byte, error) {
	var blob []byte
	err := s.db.QueryRow(
		"SELECT replay FROM best_times WHERE level_key = ?",
		levelKey,
	).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoBestTime
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best replay: %w", err)
	}
	return blob, nil
}

// AllBestTimes returns every level's best time keyed by level key.
func (s *Store) AllBestTimes() (map[string]int64, error) {
	rows, err := s.db.Query("SELECT level_key, best_time_ms FROM best_times")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best times: %w", err)
	}
	defer rows.Close()

	result := make(map[string]int64)
	for rows.Next() {
		var key string
		var ms int64
		if err := rows.Scan(&key, &ms); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		result[key] = ms
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return result, nil
}

// BestEntries returns every best time ordered by level key.
func (s *Store) BestEntries() ([]BestEntry, error) {
	rows, err := s.db.Query(
		`SELECT level_key, best_time_ms, replay IS NOT NULL, updated_at
		 FROM best_times
		 ORDER BY level_key`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best times: %w", err)
	}
	defer rows.Close()

	var entries []BestEntry
	for rows.Next() {
		var e BestEntry
		var updatedAt any
		if err := rows.Scan(&e.LevelKey, &e.TimeMS, &e.HasReplay, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.UpdatedAt = parseTime(updatedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ClearBestTimes deletes the best time for levelKey, or for every level
// when levelKey is empty.
func (s *Store) ClearBestTimes(levelKey string) error {
	var err error
	if levelKey == "" {
		_, err = s.db.Exec("DELETE FROM best_times")
	} else {
		_, err = s.db.Exec("DELETE FROM best_times WHERE level_key = ?", levelKey)
	}
	if err != nil {
		return fmt.Errorf("storage: cannot clear best times: %w", err)
	}
	return nil
}
