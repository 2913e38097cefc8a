package store

import (
	"fmt"
	"strconv"
)

// Setting is one row of the key/value settings table.
type Setting struct {
	Key   string
	Value string
}

func (s *Store) GetSetting(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return "", fmt.Errorf("get setting %q: %w", key, err)
	}
	return value, nil
}

func (s *Store) SetSetting(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

func (s *Store) GetAllSettings() ([]Setting, error) {
	rows, err := s.db.Query(`SELECT key, value FROM settings ORDER BY key`)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}
	defer rows.Close()

	var settings []Setting
	for rows.Next() {
		var s Setting
		if err := rows.Scan(&s.Key, &s.Value); err != nil {
			return nil, err
		}
		settings = append(settings, s)
	}
	return settings, rows.Err()
}

// Setting keys with typed accessors in Preferences.
const (
	KeyDaysActive      = "days_active"
	KeyPhaseLength     = "phase_length"
	KeyDefaultLocation = "default_location"
	KeyDefaultMode     = "default_mode"
	KeyPhase           = "phase"
	KeyCourseWeek      = "course_week"
)

const (
	ModeProtocol = "protocol"
	ModeCourse   = "course"
)

// Preferences are the dashboard settings persisted between runs.
type Preferences struct {
	DaysActive  int
	PhaseLength int
	Location    string // gym or home
	Mode        string // protocol or course
	Phase       string // empty means the first phase
	CourseWeek  int
}

func DefaultPreferences() Preferences {
	return Preferences{
		DaysActive:  1,
		PhaseLength: 30,
		Location:    "gym",
		Mode:        ModeProtocol,
		CourseWeek:  1,
	}
}

// Preferences reads the settings table. Missing or malformed values fall
// back to DefaultPreferences.
func (s *Store) Preferences() (Preferences, error) {
	all, err := s.GetAllSettings()
	if err != nil {
		return Preferences{}, err
	}
	p := DefaultPreferences()
	for _, kv := range all {
		switch kv.Key {
		case KeyDaysActive:
			p.DaysActive = atoiOr(kv.Value, p.DaysActive)
		case KeyPhaseLength:
			p.PhaseLength = atoiOr(kv.Value, p.PhaseLength)
		case KeyDefaultLocation:
			if kv.Value == "gym" || kv.Value == "home" {
				p.Location = kv.Value
			}
		case KeyDefaultMode:
			if kv.Value == ModeProtocol || kv.Value == ModeCourse {
				p.Mode = kv.Value
			}
		case KeyPhase:
			p.Phase = kv.Value
		case KeyCourseWeek:
			p.CourseWeek = atoiOr(kv.Value, p.CourseWeek)
		}
	}
	return p, nil
}

func (s *Store) SavePreferences(p Preferences) error {
	values := map[string]string{
		KeyDaysActive:      strconv.Itoa(p.DaysActive),
		KeyPhaseLength:     strconv.Itoa(p.PhaseLength),
		KeyDefaultLocation: p.Location,
		KeyDefaultMode:     p.Mode,
		KeyPhase:           p.Phase,
		KeyCourseWeek:      strconv.Itoa(p.CourseWeek),
	}
	for k, v := range values {
		if err := s.SetSetting(k, v); err != nil {
			return fmt.Errorf("save preferences: %w", err)
		}
	}
	return nil
}

func atoiOr(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
