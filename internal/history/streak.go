package history

import (
	"sort"
	"time"
)

// Streak counts consecutive calendar days with a check-in, walking back from
// today. When today has no record the walk starts at yesterday, so an
// unlogged today does not break the streak yet.
//
// Rows with unparseable dates are ignored. Duplicate dates count once.
func Streak(records []Record, today time.Time) int {
	days := uniqueDays(records)
	if len(days) == 0 {
		return 0
	}

	cursor := truncateDay(today)
	if !containsDay(days, cursor) {
		cursor = cursor.AddDate(0, 0, -1)
	}

	streak := 0
	for _, d := range days {
		switch {
		case d.Equal(cursor):
			streak++
			cursor = cursor.AddDate(0, 0, -1)
		case d.After(cursor):
			continue
		default:
			return streak
		}
	}
	return streak
}

// uniqueDays returns the distinct valid dates of records, newest first.
func uniqueDays(records []Record) []time.Time {
	seen := make(map[time.Time]bool, len(records))
	days := make([]time.Time, 0, len(records))
	for _, r := range records {
		d, ok := r.Day()
		if !ok || seen[d] {
			continue
		}
		seen[d] = true
		days = append(days, d)
	}
	sort.SliceStable(days, func(i, j int) bool { return days[i].After(days[j]) })
	return days
}

func containsDay(days []time.Time, day time.Time) bool {
	for _, d := range days {
		if d.Equal(day) {
			return true
		}
	}
	return false
}

// truncateDay maps t to midnight UTC of its calendar date, the same zone
// Record.Day parses into.
func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
