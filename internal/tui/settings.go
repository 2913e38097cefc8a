package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/bulletproof/internal/history"
	"github.com/sadopc/bulletproof/internal/program"
	"github.com/sadopc/bulletproof/internal/store"
)

type settingsForm int

const (
	formNone settingsForm = iota
	formPrefs
	formClear
)

type settingsModel struct {
	store   *store.Store
	tracker *history.Tracker
	program *program.Config
	width   int
	height  int

	prefs      store.Preferences
	formActive bool
	formKind   settingsForm
	form       *huh.Form

	// Form values as pointers (survive value copies)
	daysActive  *string
	phaseLength *string
	location    *string
	mode        *string
	phase       *string
	courseWeek  *string
	confirm     *bool
}

func newSettingsModel(s *store.Store, tr *history.Tracker, cfg *program.Config) settingsModel {
	da, pl, loc, mode, phase, cw := "", "", "", "", "", ""
	confirm := false
	return settingsModel{
		store:       s,
		tracker:     tr,
		program:     cfg,
		prefs:       store.DefaultPreferences(),
		daysActive:  &da,
		phaseLength: &pl,
		location:    &loc,
		mode:        &mode,
		phase:       &phase,
		courseWeek:  &cw,
		confirm:     &confirm,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

type settingsDataMsg struct {
	prefs store.Preferences
}

func (s settingsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		prefs, err := s.store.Preferences()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		return settingsDataMsg{prefs: prefs}
	}
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	switch msg := msg.(type) {
	case settingsDataMsg:
		s.prefs = msg.prefs
		return s, nil

	case prefsMsg:
		s.prefs = msg.prefs
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Enter):
			return s.showPrefsForm()
		case key.Matches(msg, keys.Clear):
			return s.showClearForm()
		}
	}
	return s, nil
}

func (s settingsModel) showPrefsForm() (settingsModel, tea.Cmd) {
	*s.daysActive = strconv.Itoa(s.prefs.DaysActive)
	*s.phaseLength = strconv.Itoa(s.prefs.PhaseLength)
	*s.location = s.prefs.Location
	*s.mode = s.prefs.Mode
	*s.phase = s.prefs.Phase
	*s.courseWeek = strconv.Itoa(s.prefs.CourseWeek)

	phaseOpts := []huh.Option[string]{huh.NewOption("First phase", "")}
	for _, name := range s.program.PhaseNames() {
		phaseOpts = append(phaseOpts, huh.NewOption(name, name))
	}
	var weekOpts []huh.Option[string]
	for _, wk := range s.program.Course.Weeks() {
		weekOpts = append(weekOpts, huh.NewOption(fmt.Sprintf("Week %d", wk), strconv.Itoa(wk)))
	}
	if len(weekOpts) == 0 {
		weekOpts = append(weekOpts, huh.NewOption("Week 1", "1"))
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Days active in phase").Value(s.daysActive).Validate(positiveInt),
			huh.NewInput().Title("Phase length (days)").Value(s.phaseLength).Validate(positiveInt),
			huh.NewSelect[string]().Title("Phase").Options(phaseOpts...).Value(s.phase),
		).Title("Progress"),
		huh.NewGroup(
			huh.NewSelect[string]().Title("Default location").
				Options(
					huh.NewOption("Gym", "gym"),
					huh.NewOption("Home", "home"),
				).Value(s.location),
			huh.NewSelect[string]().Title("Default mode").
				Options(
					huh.NewOption("Life Protocol", store.ModeProtocol),
					huh.NewOption(s.program.Course.Name, store.ModeCourse),
				).Value(s.mode),
			huh.NewSelect[string]().Title("Course week").Options(weekOpts...).Value(s.courseWeek),
		).Title("Defaults"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formKind = formPrefs
	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) showClearForm() (settingsModel, tea.Cmd) {
	*s.confirm = false
	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Delete every check-in?").
				Description("The streak resets to 0. This cannot be undone.").
				Affirmative("Delete").
				Negative("Keep").
				Value(s.confirm),
		),
	)
	s.formKind = formClear
	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.closeForm()
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	switch s.form.State {
	case huh.StateCompleted:
		kind := s.formKind
		s.closeForm()
		if kind == formClear {
			return s, s.clearHistory(*s.confirm)
		}
		return s, s.savePrefs(s.formPrefs())
	case huh.StateAborted:
		s.closeForm()
		return s, nil
	}
	return s, cmd
}

func (s *settingsModel) closeForm() {
	s.formActive = false
	s.formKind = formNone
	s.form = nil
}

// formPrefs reads the form values back over the current preferences.
func (s settingsModel) formPrefs() store.Preferences {
	p := s.prefs
	if n, err := strconv.Atoi(*s.daysActive); err == nil {
		p.DaysActive = n
	}
	if n, err := strconv.Atoi(*s.phaseLength); err == nil {
		p.PhaseLength = n
	}
	if n, err := strconv.Atoi(*s.courseWeek); err == nil {
		p.CourseWeek = n
	}
	p.Location = *s.location
	p.Mode = *s.mode
	p.Phase = *s.phase
	return p
}

func (s settingsModel) savePrefs(p store.Preferences) tea.Cmd {
	return func() tea.Msg {
		if err := s.store.SavePreferences(p); err != nil {
			return statusMsg{text: fmt.Sprintf("not saved: %v", err), isError: true}
		}
		return prefsMsg{prefs: p}
	}
}

func (s settingsModel) clearHistory(confirmed bool) tea.Cmd {
	if !confirmed {
		return func() tea.Msg { return statusMsg{text: "Log kept"} }
	}
	return func() tea.Msg {
		removed, err := s.tracker.Clear()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		return historyClearedMsg{removed: removed}
	}
}

func positiveInt(v string) error {
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a whole number above 0")
	}
	return nil
}

func (s settingsModel) view() string {
	w := s.width - 4

	if s.formActive && s.form != nil {
		title := titleStyle.Render("Settings")
		if s.formKind == formClear {
			title = errorStyle.Render("Clear Log")
		}
		return panelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, title, "", s.form.View()),
		)
	}

	phase := s.prefs.Phase
	if phase == "" {
		phase = "first phase"
	}
	settings := [][2]string{
		{"Days active", strconv.Itoa(s.prefs.DaysActive)},
		{"Phase length", fmt.Sprintf("%d days", s.prefs.PhaseLength)},
		{"Phase", phase},
		{"Default location", s.prefs.Location},
		{"Default mode", s.prefs.Mode},
		{"Course week", strconv.Itoa(s.prefs.CourseWeek)},
	}

	var rows []string
	rows = append(rows, titleStyle.Render("Settings"), "")
	for _, kv := range settings {
		label := lipgloss.NewStyle().Width(24).Render(kv[0])
		rows = append(rows, fmt.Sprintf("  %s %s", label, highlightStyle.Render(kv[1])))
	}
	rows = append(rows, "", mutedStyle.Render("Press enter to edit settings, D to clear the check-in log"))

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
