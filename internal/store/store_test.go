package store

import (
	"testing"

	"github.com/sadopc/bulletproof/internal/history"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// ============================================================
// Store initialization
// ============================================================

func TestNewMemory(t *testing.T) {
	s, err := NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	var version int
	s.db.QueryRow("PRAGMA user_version").Scan(&version)
	if version != 1 {
		t.Fatalf("expected user_version 1, got %d", version)
	}
}

func TestNewWithPath(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/sub/bulletproof.db"
	s, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Save(history.Record{Date: "2024-01-01", Phase: "P"}); err != nil {
		t.Fatal(err)
	}
	s.Close()

	// Reopen: data survives and migration is not re-run
	s2, err := New(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s2.Close()
	records, err := s2.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record after reopen, got %d", len(records))
	}
}

func TestMigrationIdempotent(t *testing.T) {
	s := newTestStore(t)
	if err := s.migrate(); err != nil {
		t.Fatalf("second migration failed: %v", err)
	}
}

// ============================================================
// Check-ins
// ============================================================

func TestLoadEmpty(t *testing.T) {
	s := newTestStore(t)
	records, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if records == nil || len(records) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", records)
	}
}

func TestSaveAndLoad(t *testing.T) {
	s := newTestStore(t)

	want := history.Record{Date: "2024-01-01", Phase: "Life Protocol", Mood: history.MoodTired, Completed: true}
	if err := s.Save(want); err != nil {
		t.Fatal(err)
	}

	records, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0] != want {
		t.Fatalf("got %+v, want %+v", records[0], want)
	}
}

func TestSaveUpsertKeepsPosition(t *testing.T) {
	s := newTestStore(t)

	s.Save(history.Record{Date: "2024-01-01", Phase: "A", Completed: true})
	s.Save(history.Record{Date: "2024-01-02", Phase: "A", Completed: true})
	s.Save(history.Record{Date: "2024-01-01", Phase: "B", Mood: history.MoodInjured})

	records, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	first := records[0]
	if first.Date != "2024-01-01" || first.Phase != "B" || first.Mood != history.MoodInjured || first.Completed {
		t.Fatalf("unexpected upserted row: %+v", first)
	}
	if records[1].Date != "2024-01-02" {
		t.Fatalf("expected 2024-01-02 second, got %s", records[1].Date)
	}
}

func TestSaveIdempotent(t *testing.T) {
	s := newTestStore(t)
	r := history.Record{Date: "2024-03-01", Phase: "P", Mood: history.MoodStrong, Completed: true}
	s.Save(r)
	s.Save(r)

	records, _ := s.Load()
	if len(records) != 1 || records[0] != r {
		t.Fatalf("expected exactly %+v, got %+v", r, records)
	}
}

func TestClear(t *testing.T) {
	s := newTestStore(t)

	removed, err := s.Clear()
	if err != nil {
		t.Fatal(err)
	}
	if removed {
		t.Fatal("expected nothing to clear")
	}

	s.Save(history.Record{Date: "2024-01-01"})
	removed, err = s.Clear()
	if err != nil {
		t.Fatal(err)
	}
	if !removed {
		t.Fatal("expected rows to be removed")
	}
	records, _ := s.Load()
	if len(records) != 0 {
		t.Fatalf("expected empty log, got %d", len(records))
	}
}

func TestClearClosedStore(t *testing.T) {
	s, err := NewMemory()
	if err != nil {
		t.Fatal(err)
	}
	s.Close()

	removed, err := s.Clear()
	if err == nil {
		t.Fatal("expected an error from a closed store")
	}
	if removed {
		t.Fatal("a failed clear removes nothing")
	}
}

func TestStreakOverStore(t *testing.T) {
	s := newTestStore(t)
	for _, d := range []string{"2024-01-01", "2024-01-02", "2024-01-03"} {
		s.Save(history.Record{Date: d, Completed: true})
	}
	records, _ := s.Load()
	today, _ := history.Record{Date: "2024-01-03"}.Day()
	if got := history.Streak(records, today); got != 3 {
		t.Fatalf("expected streak 3, got %d", got)
	}
}

func TestLoadUnknownMoodIsNeutral(t *testing.T) {
	s := newTestStore(t)
	s.db.Exec(`INSERT INTO checkins (date, phase, mood, completed) VALUES ('2024-01-01', 'P', 'Ecstatic', 1)`)

	records, err := s.Load()
	if err != nil {
		t.Fatal(err)
	}
	if records[0].Mood != history.MoodNeutral {
		t.Fatalf("expected Neutral, got %v", records[0].Mood)
	}
}

// ============================================================
// Supplement stack
// ============================================================

func TestStackChecks(t *testing.T) {
	s := newTestStore(t)

	if err := s.SetStackCheck("2024-01-01", "Creatine", true); err != nil {
		t.Fatal(err)
	}
	s.SetStackCheck("2024-01-01", "Creatine", true) // twice is fine
	s.SetStackCheck("2024-01-01", "Magnesium", true)
	s.SetStackCheck("2024-01-02", "Creatine", true)
	s.SetStackCheck("2024-01-01", "Magnesium", false)

	checks, err := s.StackChecks("2024-01-01")
	if err != nil {
		t.Fatal(err)
	}
	if len(checks) != 1 || !checks["Creatine"] {
		t.Fatalf("unexpected checks: %v", checks)
	}

	n, err := s.PruneStackChecks("2024-01-02")
	if err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("expected 1 pruned, got %d", n)
	}
	checks, _ = s.StackChecks("2024-01-02")
	if !checks["Creatine"] {
		t.Fatal("expected newer check to survive prune")
	}
}

// ============================================================
// Settings
// ============================================================

func TestSettingsDefaults(t *testing.T) {
	s := newTestStore(t)

	defaults := map[string]string{
		"days_active":      "1",
		"phase_length":     "30",
		"default_location": "gym",
		"default_mode":     "protocol",
		"phase":            "",
		"course_week":      "1",
	}

	for k, expected := range defaults {
		val, err := s.GetSetting(k)
		if err != nil {
			t.Fatalf("GetSetting(%q): %v", k, err)
		}
		if val != expected {
			t.Fatalf("GetSetting(%q) = %q, want %q", k, val, expected)
		}
	}
}

func TestSetSettingOverwrite(t *testing.T) {
	s := newTestStore(t)

	s.SetSetting("key", "v1")
	s.SetSetting("key", "v2")
	val, _ := s.GetSetting("key")
	if val != "v2" {
		t.Fatalf("expected v2, got %s", val)
	}
}

func TestGetSettingNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.GetSetting("nonexistent")
	if err == nil {
		t.Fatal("expected error for missing setting")
	}
}

func TestGetAllSettings(t *testing.T) {
	s := newTestStore(t)
	all, err := s.GetAllSettings()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) < 6 {
		t.Fatalf("expected at least 6 default settings, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Key >= all[i].Key {
			t.Fatalf("settings not sorted: %s >= %s", all[i-1].Key, all[i].Key)
		}
	}
}

func TestPreferencesDefaults(t *testing.T) {
	s := newTestStore(t)
	p, err := s.Preferences()
	if err != nil {
		t.Fatal(err)
	}
	if p != DefaultPreferences() {
		t.Fatalf("got %+v, want %+v", p, DefaultPreferences())
	}
}

func TestPreferencesRoundTrip(t *testing.T) {
	s := newTestStore(t)
	want := Preferences{DaysActive: 12, PhaseLength: 42, Location: "home", Mode: ModeCourse, Phase: "Phase 1: Structural Repair", CourseWeek: 4}
	if err := s.SavePreferences(want); err != nil {
		t.Fatal(err)
	}
	got, err := s.Preferences()
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestPreferencesMalformedFallBack(t *testing.T) {
	s := newTestStore(t)
	s.SetSetting(KeyDaysActive, "lots")
	s.SetSetting(KeyPhaseLength, "-5")
	s.SetSetting(KeyDefaultLocation, "moon")
	s.SetSetting(KeyDefaultMode, "freestyle")

	p, err := s.Preferences()
	if err != nil {
		t.Fatal(err)
	}
	def := DefaultPreferences()
	if p.DaysActive != def.DaysActive || p.PhaseLength != def.PhaseLength || p.Location != def.Location || p.Mode != def.Mode {
		t.Fatalf("expected defaults for malformed values, got %+v", p)
	}
}

func TestCloseStore(t *testing.T) {
	s, _ := NewMemory()
	if err := s.Close(); err != nil {
		t.Fatalf("first close: %v", err)
	}
}
