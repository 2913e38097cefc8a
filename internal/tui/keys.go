package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Log      key.Binding
	Done     key.Binding
	Location key.Binding
	Mood     key.Binding
	Mode     key.Binding
	Phase    key.Binding
	WeekPrev key.Binding
	WeekNext key.Binding
	Search   key.Binding
	Clear    key.Binding
	Export   key.Binding
	Tab1     key.Binding
	Tab2     key.Binding
	Tab3     key.Binding
	Tab4     key.Binding
	Tab5     key.Binding
	Tab      key.Binding
	Help     key.Binding
	Enter    key.Binding
	Back     key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Log: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "log complete"),
	),
	Done: key.NewBinding(
		key.WithKeys(" ", "x"),
		key.WithHelp("space", "done"),
	),
	Location: key.NewBinding(
		key.WithKeys("g"),
		key.WithHelp("g", "gym/home"),
	),
	Mood: key.NewBinding(
		key.WithKeys("m"),
		key.WithHelp("m", "mood"),
	),
	Mode: key.NewBinding(
		key.WithKeys("o"),
		key.WithHelp("o", "protocol/course"),
	),
	Phase: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "phase"),
	),
	WeekPrev: key.NewBinding(
		key.WithKeys("["),
		key.WithHelp("[", "prev week"),
	),
	WeekNext: key.NewBinding(
		key.WithKeys("]"),
		key.WithHelp("]", "next week"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Clear: key.NewBinding(
		key.WithKeys("D"),
		key.WithHelp("D", "clear log"),
	),
	Export: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "export"),
	),
	Tab1: key.NewBinding(
		key.WithKeys("1"),
		key.WithHelp("1", "workout"),
	),
	Tab2: key.NewBinding(
		key.WithKeys("2"),
		key.WithHelp("2", "library"),
	),
	Tab3: key.NewBinding(
		key.WithKeys("3"),
		key.WithHelp("3", "history"),
	),
	Tab4: key.NewBinding(
		key.WithKeys("4"),
		key.WithHelp("4", "stack"),
	),
	Tab5: key.NewBinding(
		key.WithKeys("5"),
		key.WithHelp("5", "settings"),
	),
	Tab: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "next view"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "prev day"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next day"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Log, k.Done, k.Location, k.Mood, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Log, k.Done, k.Location, k.Mood},
		{k.Mode, k.Phase, k.WeekPrev, k.WeekNext},
		{k.Search, k.Clear, k.Export},
		{k.Tab1, k.Tab2, k.Tab3, k.Tab4, k.Tab5},
		{k.Up, k.Down, k.Left, k.Right, k.Enter, k.Back, k.Quit},
	}
}
