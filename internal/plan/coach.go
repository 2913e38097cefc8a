package plan

import (
	"net/url"
	"strings"

	"github.com/sadopc/bulletproof/internal/history"
)

const demoSearchURL = "https://www.youtube.com/results?search_query="

// DemoLink builds a video search link for an exercise. A parenthesized
// variant is dropped: "Copenhagen Plank (Knee)" searches for
// "Copenhagen+Plank". The result is for display only and is not meant to be
// parsed back.
func DemoLink(name string) string {
	return demoSearchURL + demoToken(name) + "+exercise+form"
}

func demoToken(name string) string {
	if i := strings.Index(name, "("); i >= 0 {
		name = name[:i]
	}
	words := strings.Fields(name)
	for i, w := range words {
		words[i] = url.QueryEscape(w)
	}
	return strings.Join(words, "+")
}

// Advice is the coach banner shown above the day's plan.
type Advice struct {
	Message  string
	Override bool // true when the mood replaces the plan
}

func Advise(mood history.Mood) Advice {
	switch mood {
	case history.MoodInjured:
		return Advice{Message: "INJURY: Gym cancelled. Rehab loaded.", Override: true}
	case history.MoodTired:
		return Advice{Message: "ADJUST: Reduce weight 20%."}
	default:
		return Advice{Message: "GO MODE: Focus on structure."}
	}
}

// DefaultPhaseLength is the phase length in days when none is set.
const DefaultPhaseLength = 30

// PhaseProgress is the fraction of a phase completed after daysActive days,
// clamped to [0, 1]. A non-positive phaseLength means DefaultPhaseLength.
func PhaseProgress(daysActive, phaseLength int) float64 {
	if phaseLength <= 0 {
		phaseLength = DefaultPhaseLength
	}
	if daysActive <= 0 {
		return 0
	}
	p := float64(daysActive) / float64(phaseLength)
	if p > 1 {
		return 1
	}
	return p
}
