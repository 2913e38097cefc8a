package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/bulletproof/internal/history"
	"github.com/sadopc/bulletproof/internal/plan"
	"github.com/sadopc/bulletproof/internal/program"
	"github.com/sadopc/bulletproof/internal/store"
)

// planItem is one checkable line of the resolved plan.
type planItem struct {
	section string
	name    string
	sets    string
	tempo   string
	note    string
	alt     *string
}

func (i planItem) key() string { return i.section + "/" + i.name }

type workoutModel struct {
	program  *program.Config
	resolver *plan.Resolver
	tracker  *history.Tracker
	width    int
	height   int

	mode       string
	phase      string
	weekday    time.Weekday
	location   plan.Location
	mood       history.Mood
	courseWeek int
	courseDay  string

	daysActive  int
	phaseLength int

	streak      int
	loggedToday bool

	// done is presentation state only; it resets whenever the plan changes
	done   map[string]bool
	cursor int
}

func newWorkoutModel(cfg *program.Config, r *plan.Resolver, tr *history.Tracker) workoutModel {
	w := workoutModel{
		program:  cfg,
		resolver: r,
		tracker:  tr,
		weekday:  tr.Today().Weekday(),
		done:     make(map[string]bool),
	}
	w.applyPrefs(store.DefaultPreferences())
	return w
}

func (w workoutModel) Init() tea.Cmd {
	return w.loadData()
}

func (w *workoutModel) setSize(width, height int) {
	w.width = width
	w.height = height
}

// applyPrefs sets the startup selections. An unknown phase falls back to the
// first one in the program.
func (w *workoutModel) applyPrefs(p store.Preferences) {
	w.mode = p.Mode
	w.location = plan.LocationGym
	if p.Location == "home" {
		w.location = plan.LocationHome
	}
	w.daysActive = p.DaysActive
	w.phaseLength = p.PhaseLength

	w.phase = p.Phase
	if _, ok := w.program.Phase(w.phase); !ok {
		w.phase = ""
		if names := w.program.PhaseNames(); len(names) > 0 {
			w.phase = names[0]
		}
	}

	w.courseWeek = p.CourseWeek
	if weeks := w.program.Course.Weeks(); len(weeks) > 0 {
		w.courseWeek = max(weeks[0], min(w.courseWeek, weeks[len(weeks)-1]))
	}
	if days := w.program.Course.Days(); len(days) > 0 && w.courseDay == "" {
		w.courseDay = days[0]
	}
	w.resetDone()
}

type workoutDataMsg struct {
	snapshot history.Snapshot
}

func (w workoutModel) loadData() tea.Cmd {
	return func() tea.Msg {
		snap, err := w.tracker.Snapshot()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		return workoutDataMsg{snapshot: snap}
	}
}

// current resolves the plan for the selections on screen.
func (w workoutModel) current() program.DayPlan {
	if w.mode == store.ModeCourse {
		return w.resolver.ResolveCourse(plan.CourseRequest{
			Week: w.courseWeek,
			Day:  w.courseDay,
			Mood: w.mood,
		})
	}
	return w.resolver.Resolve(plan.Request{
		Phase:    w.phase,
		Weekday:  w.weekday,
		Location: w.location,
		Mood:     w.mood,
	})
}

// logLabel is the Phase column written for today's check-in.
func (w workoutModel) logLabel() string {
	if w.mode == store.ModeCourse {
		return fmt.Sprintf("%s: Week %d %s", w.program.Course.Name, w.courseWeek, w.courseDay)
	}
	return w.phase
}

func (w workoutModel) items() []planItem {
	p := w.current()
	var items []planItem
	for _, d := range p.Warmup {
		items = append(items, planItem{section: "Warmup", name: d.Name, sets: d.Duration, note: d.Note})
	}
	for _, e := range p.Exercises {
		items = append(items, planItem{section: "Main", name: e.Name, sets: e.Sets, tempo: e.Tempo, note: e.Note, alt: e.Alt})
	}
	for _, e := range p.Core {
		items = append(items, planItem{section: "Core", name: e.Name, sets: e.Sets, tempo: e.Tempo, note: e.Note})
	}
	for _, d := range p.Cooldown {
		items = append(items, planItem{section: "Cooldown", name: d.Name, sets: d.Duration, note: d.Target})
	}
	return items
}

func (w *workoutModel) resetDone() {
	w.done = make(map[string]bool)
	w.cursor = 0
}

func (w workoutModel) update(msg tea.Msg) (workoutModel, tea.Cmd) {
	switch msg := msg.(type) {
	case workoutDataMsg:
		w.streak = msg.snapshot.Streak
		w.loggedToday = msg.snapshot.LoggedToday
		return w, nil

	case prefsMsg:
		w.applyPrefs(msg.prefs)
		return w, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Left):
			w.shiftDay(-1)
		case key.Matches(msg, keys.Right):
			w.shiftDay(1)
		case key.Matches(msg, keys.WeekPrev):
			w.shiftWeek(-1)
		case key.Matches(msg, keys.WeekNext):
			w.shiftWeek(1)
		case key.Matches(msg, keys.Location):
			if w.location == plan.LocationGym {
				w.location = plan.LocationHome
			} else {
				w.location = plan.LocationGym
			}
			w.resetDone()
		case key.Matches(msg, keys.Mood):
			w.mood = history.Moods[(int(w.mood)+1)%len(history.Moods)]
			w.resetDone()
		case key.Matches(msg, keys.Mode):
			if w.mode == store.ModeCourse {
				w.mode = store.ModeProtocol
			} else {
				w.mode = store.ModeCourse
			}
			w.resetDone()
		case key.Matches(msg, keys.Phase):
			w.shiftPhase()
		case key.Matches(msg, keys.Up):
			if w.cursor > 0 {
				w.cursor--
			}
		case key.Matches(msg, keys.Down):
			if w.cursor < len(w.items())-1 {
				w.cursor++
			}
		case key.Matches(msg, keys.Done):
			items := w.items()
			if w.cursor < len(items) {
				k := items[w.cursor].key()
				w.done[k] = !w.done[k]
			}
		case key.Matches(msg, keys.Log):
			return w, w.logComplete()
		}
	}
	return w, nil
}

func (w *workoutModel) shiftDay(delta int) {
	if w.mode == store.ModeCourse {
		days := w.program.Course.Days()
		if len(days) == 0 {
			return
		}
		i := indexOf(days, w.courseDay)
		w.courseDay = days[(i+delta+len(days))%len(days)]
	} else {
		w.weekday = time.Weekday((int(w.weekday) + delta + 7) % 7)
	}
	w.resetDone()
}

func (w *workoutModel) shiftWeek(delta int) {
	weeks := w.program.Course.Weeks()
	if len(weeks) == 0 {
		return
	}
	w.courseWeek = max(weeks[0], min(w.courseWeek+delta, weeks[len(weeks)-1]))
	w.resetDone()
}

func (w *workoutModel) shiftPhase() {
	names := w.program.PhaseNames()
	if len(names) == 0 {
		return
	}
	i := indexOf(names, w.phase)
	w.phase = names[(i+1)%len(names)]
	w.resetDone()
}

func indexOf(list []string, s string) int {
	for i, v := range list {
		if v == s {
			return i
		}
	}
	return 0
}

func (w workoutModel) logComplete() tea.Cmd {
	label, mood := w.logLabel(), w.mood
	return func() tea.Msg {
		r, err := w.tracker.LogToday(label, mood, true)
		if err != nil {
			return statusMsg{text: fmt.Sprintf("not saved: %v", err), isError: true}
		}
		return checkinSavedMsg{record: r}
	}
}

func (w workoutModel) view() string {
	if w.width < 20 {
		return "Terminal too small"
	}
	contentWidth := w.width - 4
	p := w.current()

	return lipgloss.JoinVertical(lipgloss.Left,
		w.renderStatusPanel(contentWidth, p),
		w.renderPlanPanel(contentWidth, p),
	)
}

func (w workoutModel) renderStatusPanel(width int, p program.DayPlan) string {
	streak := highlightStyle.Render(fmt.Sprintf("%d day streak", w.streak))
	logged := mutedStyle.Render("not logged today")
	if w.loggedToday {
		logged = successStyle.Render("✓ logged today")
	}

	var selector string
	if w.mode == store.ModeCourse {
		selector = titleStyle.Render(w.program.Course.Name)
		if b, ok := w.program.Course.Block(w.courseWeek); ok {
			selector += "  " + themeStyle(b.Theme).Render(b.Phase)
		}
		selector += fmt.Sprintf("  Week %d · %s", w.courseWeek, w.courseDay)
	} else {
		selector = fmt.Sprintf("%s  %s  %s", titleStyle.Render(w.phase), highlightStyle.Render(w.weekday.String()), mutedStyle.Render(w.location.String()))
		if ph, ok := w.program.Phase(w.phase); ok && ph.Theme != "" {
			selector += "\n" + subtitleStyle.Render(ph.Theme)
		}
	}

	advice := plan.Advise(w.mood)
	banner := bannerGoStyle.Render(advice.Message)
	switch {
	case advice.Override:
		banner = bannerAlertStyle.Render(advice.Message)
	case w.mood == history.MoodTired:
		banner = bannerAdjustStyle.Render(advice.Message)
	}

	progress := plan.PhaseProgress(w.daysActive, w.phaseLength)
	progressLine := fmt.Sprintf("Day %d/%d %s", w.daysActive, w.phaseLength, progressBar(progress, 20))

	content := lipgloss.JoinVertical(lipgloss.Left,
		selector,
		fmt.Sprintf("%s  %s  mood: %s", streak, logged, accentStyle.Render(w.mood.String())),
		progressLine,
		"",
		banner,
		"",
		titleStyle.Render(p.Focus)+mutedStyle.Render("  "+string(p.Type)),
	)
	return activePanelStyle.Width(width).Render(content)
}

func (w workoutModel) renderPlanPanel(width int, p program.DayPlan) string {
	items := w.items()
	if len(items) == 0 {
		return panelStyle.Width(width).Render(mutedStyle.Render("Nothing planned"))
	}

	var rows []string
	section := ""
	for i, it := range items {
		if it.section != section {
			section = it.section
			rows = append(rows, sectionStyle.Render(section))
		}
		cursor := "  "
		style := normalItemStyle
		if i == w.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		line := fmt.Sprintf("%s%s %-30s %-12s", cursor, checkbox(w.done[it.key()]), it.name, it.sets)
		if it.section == "Main" || it.section == "Core" {
			line += " " + mutedStyle.Render("tempo "+dash(it.tempo))
		}
		rows = append(rows, style.Render(line))
		if it.note != "" {
			rows = append(rows, mutedStyle.Render("      "+it.note))
		}
		if it.alt != nil && p.Type == program.SessionGym {
			rows = append(rows, mutedStyle.Render("      alt: "+*it.alt))
		}
	}

	if w.cursor < len(items) {
		rows = append(rows, "", mutedStyle.Render("demo: "+plan.DemoLink(items[w.cursor].name)))
	}
	done := 0
	for _, it := range items {
		if w.done[it.key()] {
			done++
		}
	}
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("%d/%d done", done, len(items))))

	return panelStyle.Width(width).Render(strings.Join(rows, "\n"))
}
