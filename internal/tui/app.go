package tui

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/sadopc/bulletproof/internal/export"
	"github.com/sadopc/bulletproof/internal/history"
	"github.com/sadopc/bulletproof/internal/plan"
	"github.com/sadopc/bulletproof/internal/program"
	"github.com/sadopc/bulletproof/internal/store"
)

// Deps are the services the dashboard runs on.
type Deps struct {
	Program  *program.Config
	Resolver *plan.Resolver
	Tracker  *history.Tracker
	// Store holds settings and supplement ticks. Check-ins may live
	// elsewhere; Tracker decides.
	Store *store.Store
	Log   logrus.FieldLogger
	// ExportDir receives export files, normally the home directory.
	ExportDir string
	// StartPhase overrides the persisted phase when it names a known phase.
	StartPhase string
}

// App is the root Bubble Tea model.
type App struct {
	deps   Deps
	width  int
	height int

	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int
	day           string

	workout  workoutModel
	library  libraryModel
	history  historyModel
	stack    stackModel
	settings settingsModel

	help   help.Model
	status string
}

func NewApp(d Deps) App {
	h := help.New()
	h.ShowAll = false

	return App{
		deps:       d,
		activeView: viewWorkout,
		day:        history.DateKey(d.Tracker.Today()),
		workout:    newWorkoutModel(d.Program, d.Resolver, d.Tracker),
		library:    newLibraryModel(d.Program.Library),
		history:    newHistoryModel(d.Tracker),
		stack:      newStackModel(d.Store, d.Tracker, d.Program.Supplements),
		settings:   newSettingsModel(d.Store, d.Tracker, d.Program),
		help:       h,
	}
}

func (a App) Init() tea.Cmd {
	return tea.Batch(
		a.loadPrefs(),
		a.workout.Init(),
		tickCmd(),
	)
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Minute, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// loadPrefs reads persisted preferences and applies the configured start phase.
func (a App) loadPrefs() tea.Cmd {
	return func() tea.Msg {
		prefs, err := a.deps.Store.Preferences()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		if _, ok := a.deps.Program.Phase(a.deps.StartPhase); ok {
			prefs.Phase = a.deps.StartPhase
		}
		return prefsMsg{prefs: prefs}
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.workout.setSize(a.width, contentHeight)
		a.library.setSize(a.width, contentHeight)
		a.history.setSize(a.width, contentHeight)
		a.stack.setSize(a.width, contentHeight)
		a.settings.setSize(a.width, contentHeight)
		return a, nil

	case tea.KeyMsg:
		// Export picker
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		// If a child view is capturing input (e.g. form), delegate first.
		if a.isFormActive() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Tab1):
			a.activeView = viewWorkout
			return a, a.refreshCurrentView()
		case key.Matches(msg, keys.Tab2):
			a.activeView = viewLibrary
			return a, nil
		case key.Matches(msg, keys.Tab3):
			a.activeView = viewHistory
			return a, a.refreshCurrentView()
		case key.Matches(msg, keys.Tab4):
			a.activeView = viewStack
			return a, a.refreshCurrentView()
		case key.Matches(msg, keys.Tab5):
			a.activeView = viewSettings
			return a, a.refreshCurrentView()
		case key.Matches(msg, keys.Tab):
			a.activeView = (a.activeView + 1) % viewState(len(viewNames))
			return a, a.refreshCurrentView()
		}

	case tickMsg:
		// a new calendar day changes the streak and the stack
		day := history.DateKey(a.deps.Tracker.Today())
		if day == a.day {
			return a, tickCmd()
		}
		a.day = day
		return a, tea.Batch(tickCmd(), a.workout.loadData(), a.stack.refresh())

	case statusMsg:
		a.status = msg.text
		if msg.isError {
			a.deps.Log.WithField("view", viewNames[a.activeView]).Warn(msg.text)
		}
		return a, nil

	case checkinSavedMsg:
		a.status = fmt.Sprintf("Logged %s: %s", msg.record.Date, msg.record.Mood)
		var cmd tea.Cmd
		a.history, cmd = a.history.update(msg)
		return a, tea.Batch(a.workout.loadData(), cmd)

	case historyClearedMsg:
		if msg.removed {
			a.status = "Check-in log cleared"
		} else {
			a.status = "Check-in log was already empty"
		}
		var cmd tea.Cmd
		a.history, cmd = a.history.update(msg)
		return a, tea.Batch(a.workout.loadData(), cmd)

	case prefsMsg:
		a.workout, _ = a.workout.update(msg)
		a.settings, _ = a.settings.update(msg)
		return a, nil

	case exportDoneMsg:
		a.status = "Exported to " + msg.path
		a.exportPicking = false
		return a, nil

	case workoutDataMsg:
		a.workout, _ = a.workout.update(msg)
		return a, nil

	case historyDataMsg:
		a.history, _ = a.history.update(msg)
		return a, nil

	case stackDataMsg:
		a.stack, _ = a.stack.update(msg)
		return a, nil

	case settingsDataMsg:
		a.settings, _ = a.settings.update(msg)
		return a, nil
	}

	return a.updateActiveView(msg)
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewWorkout:
		a.workout, cmd = a.workout.update(msg)
	case viewLibrary:
		a.library, cmd = a.library.update(msg)
	case viewHistory:
		a.history, cmd = a.history.update(msg)
	case viewStack:
		a.stack, cmd = a.stack.update(msg)
	case viewSettings:
		a.settings, cmd = a.settings.update(msg)
	}
	return a, cmd
}

func (a App) isFormActive() bool {
	switch a.activeView {
	case viewLibrary:
		return a.library.searching
	case viewSettings:
		return a.settings.formActive
	}
	return false
}

func (a App) refreshCurrentView() tea.Cmd {
	switch a.activeView {
	case viewWorkout:
		return a.workout.loadData()
	case viewHistory:
		return a.history.refresh()
	case viewStack:
		return a.stack.refresh()
	case viewSettings:
		return a.settings.refresh()
	}
	return nil
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewWorkout:
		content = a.workout.view()
	case viewLibrary:
		content = a.library.view()
	case viewHistory:
		content = a.history.view()
	case viewStack:
		content = a.stack.view()
	case viewSettings:
		content = a.settings.view()
	}

	// Calculate available height for content
	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	// Show export picker overlay
	if a.exportPicking {
		content = a.renderExportPicker(contentHeight)
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("bulletproof")
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		status = mutedStyle.Render(" " + a.status)
	}

	streak := ""
	if a.workout.streak > 0 {
		streak = successStyle.Render(fmt.Sprintf(" ● %dd", a.workout.streak))
	}

	left := footerStyle.Render(helpView)
	right := streak + status

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}

var exportFormats = []string{"csv", "json"}

func (a App) renderExportPicker(_ int) string {
	title := titleStyle.Render("Export Check-ins")
	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	for i, f := range []string{"CSV", "JSON"} {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: export  esc: cancel"))

	w := a.width - 4
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < len(exportFormats)-1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(exportFormats[a.exportCursor])
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) doExport(format string) tea.Cmd {
	return func() tea.Msg {
		records, err := a.deps.Tracker.Records()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Export error: %v", err), isError: true}
		}

		path := filepath.Join(a.deps.ExportDir, export.Filename(format, a.deps.Tracker.Today()))
		switch format {
		case "csv":
			err = export.ToCSV(records, path)
		default:
			err = export.ToJSON(records, history.Streak(records, a.deps.Tracker.Today()), path)
		}
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Export error: %v", err), isError: true}
		}

		a.deps.Log.WithFields(logrus.Fields{"path": path, "count": len(records)}).Info("check-ins exported")
		return exportDoneMsg{path: path}
	}
}
