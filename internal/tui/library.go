package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/bulletproof/internal/plan"
	"github.com/sadopc/bulletproof/internal/program"
)

type libraryModel struct {
	library program.Library
	width   int
	height  int

	search    textinput.Model
	searching bool
	results   []program.LibraryEntry
	cursor    int
}

func newLibraryModel(lib program.Library) libraryModel {
	ti := textinput.New()
	ti.Placeholder = "squat, hinge, plank..."
	ti.Prompt = "/ "
	ti.CharLimit = 40
	return libraryModel{
		library: lib,
		search:  ti,
		results: lib.Search(""),
	}
}

func (l *libraryModel) setSize(w, h int) {
	l.width = w
	l.height = h
	l.search.Width = max(10, w-12)
}

func (l libraryModel) update(msg tea.Msg) (libraryModel, tea.Cmd) {
	if l.searching {
		return l.updateSearch(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Search):
			l.searching = true
			return l, l.search.Focus()
		case key.Matches(msg, keys.Up):
			if l.cursor > 0 {
				l.cursor--
			}
		case key.Matches(msg, keys.Down):
			if l.cursor < len(l.results)-1 {
				l.cursor++
			}
		case key.Matches(msg, keys.Back):
			l.search.SetValue("")
			l.filter()
		}
	}
	return l, nil
}

func (l libraryModel) updateSearch(msg tea.Msg) (libraryModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Enter), key.Matches(msg, keys.Back):
			l.searching = false
			l.search.Blur()
			return l, nil
		}
	}

	var cmd tea.Cmd
	l.search, cmd = l.search.Update(msg)
	l.filter()
	return l, cmd
}

func (l *libraryModel) filter() {
	l.results = l.library.Search(l.search.Value())
	if l.cursor >= len(l.results) {
		l.cursor = max(0, len(l.results)-1)
	}
}

func (l libraryModel) view() string {
	w := l.width - 4

	var rows []string
	rows = append(rows, titleStyle.Render("Exercise Library"), "", l.search.View(), "")

	if len(l.results) == 0 {
		rows = append(rows, mutedStyle.Render("  No exercises match"))
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	}

	for i, e := range l.results {
		cursor := "  "
		style := normalItemStyle
		if i == l.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(fmt.Sprintf("%s%-28s %s", cursor, e.Name, mutedStyle.Render(e.Muscle))))
	}

	sel := l.results[l.cursor]
	detail := []string{
		"",
		highlightStyle.Render(sel.Name),
		"  muscle:  " + sel.Muscle,
		"  stretch: " + dash(sel.Stretch),
		"  cue:     " + dash(sel.Cue),
		"  demo:    " + mutedStyle.Render(plan.DemoLink(sel.Name)),
	}
	rows = append(rows, detail...)

	hint := "  /: search  esc: clear  ↑/↓: select"
	if l.searching {
		hint = "  enter/esc: done"
	}
	rows = append(rows, "", mutedStyle.Render(hint))

	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
