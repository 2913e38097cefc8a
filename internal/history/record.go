package history

import (
	"strings"
	"time"
)

// DateLayout is the on-disk format of Record.Date.
const DateLayout = "2006-01-02"

type Mood int

const (
	MoodNeutral Mood = iota
	MoodStrong
	MoodTired
	MoodInjured
)

// Moods lists every mood in selector order.
var Moods = []Mood{MoodNeutral, MoodStrong, MoodTired, MoodInjured}

var moodLabels = map[Mood]string{
	MoodNeutral: "Neutral",
	MoodStrong:  "Great / Strong",
	MoodTired:   "Tired / Low Energy",
	MoodInjured: "Injured / Pain",
}

var moodNames = map[string]Mood{
	"neutral": MoodNeutral,
	"strong":  MoodStrong,
	"tired":   MoodTired,
	"injured": MoodInjured,
}

// String returns the label written to the log.
func (m Mood) String() string {
	if l, ok := moodLabels[m]; ok {
		return l
	}
	return moodLabels[MoodNeutral]
}

// ParseMood accepts either a log label ("Tired / Low Energy") or a short name
// ("tired"), ignoring case.
func ParseMood(s string) (Mood, bool) {
	s = strings.TrimSpace(s)
	for m, l := range moodLabels {
		if strings.EqualFold(s, l) {
			return m, true
		}
	}
	if m, ok := moodNames[strings.ToLower(s)]; ok {
		return m, true
	}
	return MoodNeutral, false
}

// Record is one daily check-in. Date is the unique key.
type Record struct {
	Date      string
	Phase     string
	Mood      Mood
	Completed bool
}

// Day parses Date. ok is false for rows that are not calendar dates.
func (r Record) Day() (day time.Time, ok bool) {
	d, err := time.Parse(DateLayout, strings.TrimSpace(r.Date))
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

// DateKey formats t as a Record date in t's own location.
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}

// Store persists check-ins.
type Store interface {
	// Load returns every record in insertion order. A log that does not
	// exist yet is empty, not an error.
	Load() ([]Record, error)
	// Save inserts r, or overwrites Phase, Mood and Completed of the record
	// with the same Date.
	Save(r Record) error
	// Clear removes every record and reports whether there was anything to remove.
	Clear() (bool, error)
}

// upsert applies Save semantics to an in-memory slice.
func upsert(records []Record, r Record) []Record {
	for i := range records {
		if records[i].Date == r.Date {
			records[i].Phase = r.Phase
			records[i].Mood = r.Mood
			records[i].Completed = r.Completed
			return records
		}
	}
	return append(records, r)
}
