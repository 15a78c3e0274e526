package storage

import (
	"fmt"
	"time"
)

// RunResult is a finished level attempt to record.
type RunResult struct {
	LevelKey  string
	Outcome   string // "won" or "lost"
	ElapsedMS int64
}

// Run is a recorded attempt.
type Run struct {
	ID        int64
	LevelKey  string
	Outcome   string
	ElapsedMS int64
	CreatedAt time.Time
}

// LevelStats contains aggregated statistics for a level.
type LevelStats struct {
	LevelKey   string
	Attempts   int
	Wins       int
	Losses     int
	BestTimeMS int64
	HasBest    bool
	LastPlayed time.Time
}

// RecordRun stores a finished attempt.
func (s *Store) RecordRun(r RunResult) error {
	_, err := s.db.Exec(
		"INSERT INTO runs (level_key, outcome, elapsed_ms) VALUES (?, ?, ?)",
		r.LevelKey, r.Outcome, r.ElapsedMS,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record run: %w", err)
	}
	return nil
}

// RecentRuns returns the latest attempts for levelKey, newest first.
// An empty key returns attempts across all levels.
func (s *Store) RecentRuns(levelKey string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, level_key, outcome, elapsed_ms, created_at
		 FROM runs
		 WHERE ? = '' OR level_key = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		levelKey, levelKey, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(&r.ID, &r.LevelKey, &r.Outcome, &r.ElapsedMS, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// LevelStats retrieves aggregated statistics for one level.
func (s *Store) LevelStats(levelKey string) (*LevelStats, error) {
	stats := &LevelStats{LevelKey: levelKey}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(outcome = 'won'), 0),
		        COALESCE(SUM(outcome = 'lost'), 0),
		        MAX(created_at)
		 FROM runs WHERE level_key = ?`,
		levelKey,
	).Scan(&stats.Attempts, &stats.Wins, &stats.Losses, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	best, err := s.BestTime(levelKey)
	switch {
	case err == nil:
		stats.BestTimeMS, stats.HasBest = best, true
	case err != ErrNoBestTime:
		return nil, err
	}

	return stats, nil
}

// AllLevelStats retrieves statistics for every level that has runs or a
// best time.
func (s *Store) AllLevelStats() (map[string]*LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level_key, COUNT(*),
		        COALESCE(SUM(outcome = 'won'), 0),
		        COALESCE(SUM(outcome = 'lost'), 0),
		        MAX(created_at)
		 FROM runs
		 GROUP BY level_key`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all level stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*LevelStats)
	for rows.Next() {
		var ls LevelStats
		var lastPlayed any
		if err := rows.Scan(&ls.LevelKey, &ls.Attempts, &ls.Wins, &ls.Losses, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ls.LastPlayed = parseTime(lastPlayed)
		stats[ls.LevelKey] = &ls
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	best, err := s.AllBestTimes()
	if err != nil {
		return nil, err
	}
	for key, ms := range best {
		ls, ok := stats[key]
		if !ok {
			ls = &LevelStats{LevelKey: key}
			stats[key] = ls
		}
		ls.BestTimeMS, ls.HasBest = ms, true
	}

	return stats, nil
}
