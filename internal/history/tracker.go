package history

import (
	"fmt"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
)

// Tracker adds a clock and logging on top of a Store.
type Tracker struct {
	store Store
	now   func() time.Time
	log   logrus.FieldLogger
}

func NewTracker(s Store, log logrus.FieldLogger) *Tracker {
	return &Tracker{store: s, now: time.Now, log: log}
}

// SetClock replaces the time source, mainly for tests.
func (t *Tracker) SetClock(now func() time.Time) {
	t.now = now
}

func (t *Tracker) Today() time.Time {
	return t.now()
}

// LogToday upserts the check-in for today's date.
func (t *Tracker) LogToday(phase string, mood Mood, completed bool) (Record, error) {
	r := Record{
		Date:      DateKey(t.now()),
		Phase:     phase,
		Mood:      mood,
		Completed: completed,
	}
	if err := t.store.Save(r); err != nil {
		t.log.WithError(err).WithField("date", r.Date).Error("check-in not saved")
		return Record{}, fmt.Errorf("save check-in %s: %w", r.Date, err)
	}
	t.log.WithFields(logrus.Fields{
		"date":  r.Date,
		"phase": r.Phase,
		"mood":  r.Mood.String(),
	}).Info("check-in saved")
	return r, nil
}

// Snapshot is everything the dashboard shows about the log, read in one pass.
type Snapshot struct {
	Records     []Record // newest first
	Streak      int
	LoggedToday bool
	Skipped     int // rows with unparseable dates, plus rows the store could not read
}

// unreadableCounter is implemented by stores that drop rows they cannot parse.
type unreadableCounter interface {
	Unreadable() int
}

func (t *Tracker) Snapshot() (Snapshot, error) {
	records, err := t.store.Load()
	if err != nil {
		return Snapshot{}, fmt.Errorf("load history: %w", err)
	}

	today := DateKey(t.now())
	snap := Snapshot{
		Records: SortNewestFirst(records),
		Streak:  Streak(records, t.now()),
	}
	for _, r := range records {
		if _, ok := r.Day(); !ok {
			snap.Skipped++
			continue
		}
		if r.Date == today {
			snap.LoggedToday = true
		}
	}
	if u, ok := t.store.(unreadableCounter); ok {
		snap.Skipped += u.Unreadable()
	}
	if snap.Skipped > 0 {
		t.log.WithField("rows", snap.Skipped).Debug("skipped check-ins with bad dates")
	}
	return snap, nil
}

// Records returns the log in insertion order.
func (t *Tracker) Records() ([]Record, error) {
	records, err := t.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return records, nil
}

func (t *Tracker) Streak() (int, error) {
	snap, err := t.Snapshot()
	if err != nil {
		return 0, err
	}
	return snap.Streak, nil
}

// Recent returns up to limit records, newest first. limit <= 0 means all.
func (t *Tracker) Recent(limit int) ([]Record, error) {
	snap, err := t.Snapshot()
	if err != nil {
		return nil, err
	}
	if limit > 0 && len(snap.Records) > limit {
		return snap.Records[:limit], nil
	}
	return snap.Records, nil
}

// WeeklyCounts returns logged days for the last weeks weeks, oldest first.
func (t *Tracker) WeeklyCounts(weeks int) ([]WeekCount, error) {
	records, err := t.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return WeeklyCounts(records, t.now(), weeks), nil
}

func (t *Tracker) Clear() (bool, error) {
	removed, err := t.store.Clear()
	if err != nil {
		return false, fmt.Errorf("clear history: %w", err)
	}
	t.log.WithField("removed", removed).Info("history cleared")
	return removed, nil
}

// WeekCount is the number of logged days in the week starting on Start (a Monday).
type WeekCount struct {
	Start time.Time
	Days  int
}

// WeeklyCounts returns logged-day counts for the last n weeks, oldest first,
// ending with the current week.
func WeeklyCounts(records []Record, today time.Time, n int) []WeekCount {
	if n <= 0 {
		return nil
	}
	thisWeek := weekStart(truncateDay(today))
	first := thisWeek.AddDate(0, 0, -7*(n-1))

	counts := make([]WeekCount, n)
	for i := range counts {
		counts[i].Start = first.AddDate(0, 0, 7*i)
	}
	for _, d := range uniqueDays(records) {
		if d.Before(first) {
			continue
		}
		i := int(d.Sub(first).Hours()/24) / 7
		if i >= 0 && i < n {
			counts[i].Days++
		}
	}
	return counts
}

func weekStart(day time.Time) time.Time {
	wd := int(day.Weekday())
	if wd == 0 {
		wd = 7
	}
	return day.AddDate(0, 0, -(wd - 1))
}

// SortNewestFirst returns a copy of records sorted by date descending.
// Records with equal dates keep their insertion order.
func SortNewestFirst(records []Record) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out
}
