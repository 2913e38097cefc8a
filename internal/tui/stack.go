package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sadopc/bulletproof/internal/history"
	"github.com/sadopc/bulletproof/internal/program"
	"github.com/sadopc/bulletproof/internal/store"
)

// stackItem is one supplement line; key is unique across slots.
type stackItem struct {
	slot string
	name string
}

func (i stackItem) key() string { return i.slot + ": " + i.name }

type stackModel struct {
	store   *store.Store
	tracker *history.Tracker
	width   int
	height  int

	items   []stackItem
	checked map[string]bool
	cursor  int
}

func newStackModel(s *store.Store, tr *history.Tracker, slots []program.SupplementSlot) stackModel {
	var items []stackItem
	for _, slot := range slots {
		for _, name := range slot.Items {
			items = append(items, stackItem{slot: slot.Slot, name: name})
		}
	}
	return stackModel{
		store:   s,
		tracker: tr,
		items:   items,
		checked: make(map[string]bool),
	}
}

func (s *stackModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

type stackDataMsg struct {
	checked map[string]bool
}

func (s stackModel) today() string {
	return history.DateKey(s.tracker.Today())
}

// refresh loads today's ticks. Older days are pruned on the way.
func (s stackModel) refresh() tea.Cmd {
	return func() tea.Msg {
		today := s.today()
		if _, err := s.store.PruneStackChecks(today); err != nil {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		checked, err := s.store.StackChecks(today)
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		return stackDataMsg{checked: checked}
	}
}

func (s stackModel) update(msg tea.Msg) (stackModel, tea.Cmd) {
	switch msg := msg.(type) {
	case stackDataMsg:
		s.checked = msg.checked
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if s.cursor > 0 {
				s.cursor--
			}
		case key.Matches(msg, keys.Down):
			if s.cursor < len(s.items)-1 {
				s.cursor++
			}
		case key.Matches(msg, keys.Done), key.Matches(msg, keys.Enter):
			return s, s.toggle()
		}
	}
	return s, nil
}

func (s stackModel) toggle() tea.Cmd {
	if s.cursor >= len(s.items) {
		return nil
	}
	k := s.items[s.cursor].key()
	next := !s.checked[k]
	return func() tea.Msg {
		if err := s.store.SetStackCheck(s.today(), k, next); err != nil {
			return statusMsg{text: fmt.Sprintf("not saved: %v", err), isError: true}
		}
		checked, err := s.store.StackChecks(s.today())
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		return stackDataMsg{checked: checked}
	}
}

func (s stackModel) view() string {
	w := s.width - 4

	var rows []string
	rows = append(rows, titleStyle.Render("Daily Stack")+"  "+mutedStyle.Render(s.today()))

	if len(s.items) == 0 {
		rows = append(rows, "", mutedStyle.Render("  No supplements in this program"))
		return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
	}

	slot := ""
	done := 0
	for i, it := range s.items {
		if it.slot != slot {
			slot = it.slot
			rows = append(rows, sectionStyle.Render(slot))
		}
		cursor := "  "
		style := normalItemStyle
		if i == s.cursor {
			cursor = "> "
			style = selectedItemStyle
		}
		if s.checked[it.key()] {
			done++
		}
		rows = append(rows, style.Render(fmt.Sprintf("%s%s %s", cursor, checkbox(s.checked[it.key()]), it.name)))
	}

	rows = append(rows, "", mutedStyle.Render(fmt.Sprintf("  %d/%d taken  space: toggle", done, len(s.items))))
	return panelStyle.Width(w).Render(strings.Join(rows, "\n"))
}
