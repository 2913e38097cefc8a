package tui

import (
	"strings"
	"time"

	"github.com/sadopc/bulletproof/internal/history"
	"github.com/sadopc/bulletproof/internal/store"
)

// viewState represents the currently active view.
type viewState int

const (
	viewWorkout viewState = iota
	viewLibrary
	viewHistory
	viewStack
	viewSettings
)

var viewNames = []string{"Workout", "Library", "History", "Stack", "Settings"}

// --- Messages ---

type statusMsg struct {
	text    string
	isError bool
}

type tickMsg time.Time

type exportDoneMsg struct {
	path string
}

type checkinSavedMsg struct {
	record history.Record
}

type historyClearedMsg struct {
	removed bool
}

// prefsMsg carries persisted preferences to the views that use them.
type prefsMsg struct {
	prefs store.Preferences
}

// --- Helpers ---

func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

// progressBar renders frac in [0,1] as a bar of width cells.
func progressBar(frac float64, width int) string {
	if width < 1 {
		return ""
	}
	filled := int(frac*float64(width) + 0.5)
	filled = max(0, min(filled, width))
	return successStyle.Render(strings.Repeat("█", filled)) +
		mutedStyle.Render(strings.Repeat("░", width-filled))
}
