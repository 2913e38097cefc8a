package store

import (
	"fmt"
	"time"

	"github.com/sadopc/bulletproof/internal/history"
)

var _ history.Store = (*Store)(nil)

// Load returns all check-ins in the order their dates were first saved.
func (s *Store) Load() ([]history.Record, error) {
	rows, err := s.db.Query(`SELECT date, phase, mood, completed FROM checkins ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("list checkins: %w", err)
	}
	defer rows.Close()

	records := []history.Record{}
	for rows.Next() {
		var r history.Record
		var mood string
		var completed int
		if err := rows.Scan(&r.Date, &r.Phase, &mood, &completed); err != nil {
			return nil, err
		}
		r.Mood, _ = history.ParseMood(mood)
		r.Completed = completed == 1
		records = append(records, r)
	}
	return records, rows.Err()
}

// Save upserts r by date. An existing row keeps its position.
func (s *Store) Save(r history.Record) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(
		`INSERT INTO checkins (date, phase, mood, completed, updated_at) VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			phase = excluded.phase,
			mood = excluded.mood,
			completed = excluded.completed,
			updated_at = excluded.updated_at`,
		r.Date, r.Phase, r.Mood.String(), boolToInt(r.Completed), now,
	)
	if err != nil {
		return fmt.Errorf("save checkin %s: %w", r.Date, err)
	}
	return nil
}

func (s *Store) Clear() (bool, error) {
	res, err := s.db.Exec(`DELETE FROM checkins`)
	if err != nil {
		return false, fmt.Errorf("clear checkins: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("clear checkins: %w", err)
	}
	return n > 0, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
