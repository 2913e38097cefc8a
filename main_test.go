package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/sadopc/bulletproof/internal/history"
)

func TestStartupStreak(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")
	in := "Date,Phase,Mood,Completed\n2024-01-02,P,Neutral,Yes\n2024-01-03,a \"b,Neutral,Yes\n"
	if err := os.WriteFile(path, []byte(in), 0o644); err != nil {
		t.Fatal(err)
	}
	log, hook := test.NewNullLogger()
	tr := history.NewTracker(history.NewCSVLog(path), log)
	tr.SetClock(func() time.Time { return time.Date(2024, 1, 3, 9, 0, 0, 0, time.Local) })

	if got := startupStreak(tr, log); got != 2 {
		t.Fatalf("streak = %d, want 2", got)
	}
	if e := hook.LastEntry(); e != nil && e.Level == logrus.WarnLevel {
		t.Fatalf("unexpected warning: %s", e.Message)
	}
}

func TestStartupStreakUnreadableLog(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	log, hook := test.NewNullLogger()
	tr := history.NewTracker(history.NewCSVLog(filepath.Join(blocker, "history.csv")), log)

	if got := startupStreak(tr, log); got != 0 {
		t.Fatalf("streak = %d, want 0", got)
	}
	e := hook.LastEntry()
	if e == nil || e.Level != logrus.WarnLevel {
		t.Fatal("an unreadable log should be reported at warn")
	}
}
