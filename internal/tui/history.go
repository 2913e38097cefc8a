package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sadopc/bulletproof/internal/history"
)

const (
	historyWeeks  = 8
	historyRecent = 14
)

type historyModel struct {
	tracker *history.Tracker
	width   int
	height  int

	recent  []history.Record
	weeks   []history.WeekCount
	streak  int
	total   int
	skipped int

	chart barchart.Model
}

func newHistoryModel(tr *history.Tracker) historyModel {
	return historyModel{
		tracker: tr,
		chart:   barchart.New(60, 10),
	}
}

func (h *historyModel) setSize(w, hgt int) {
	h.width = w
	h.height = hgt
}

type historyDataMsg struct {
	snapshot history.Snapshot
	weeks    []history.WeekCount
}

func (h historyModel) refresh() tea.Cmd {
	return func() tea.Msg {
		snap, err := h.tracker.Snapshot()
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		weeks, err := h.tracker.WeeklyCounts(historyWeeks)
		if err != nil {
			return statusMsg{text: fmt.Sprintf("Error: %v", err), isError: true}
		}
		return historyDataMsg{snapshot: snap, weeks: weeks}
	}
}

func (h historyModel) update(msg tea.Msg) (historyModel, tea.Cmd) {
	switch msg := msg.(type) {
	case historyDataMsg:
		h.total = len(msg.snapshot.Records)
		h.recent = msg.snapshot.Records
		if len(h.recent) > historyRecent {
			h.recent = h.recent[:historyRecent]
		}
		h.streak = msg.snapshot.Streak
		h.skipped = msg.snapshot.Skipped
		h.weeks = msg.weeks
		h.buildChart()
		return h, nil

	case checkinSavedMsg, historyClearedMsg:
		return h, h.refresh()
	}
	return h, nil
}

func (h *historyModel) buildChart() {
	chartWidth := h.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 10
	if h.height > 36 {
		chartHeight = 14
	}

	h.chart = barchart.New(chartWidth, chartHeight)

	var bars []barchart.BarData
	for _, wk := range h.weeks {
		style := lipgloss.NewStyle().Foreground(colorPrimary)
		if wk.Days >= 5 {
			style = lipgloss.NewStyle().Foreground(colorSuccess)
		}
		bars = append(bars, barchart.BarData{
			Label: wk.Start.Format("Jan 02"),
			Values: []barchart.BarValue{{
				Name:  "days",
				Value: float64(wk.Days),
				Style: style,
			}},
		})
	}

	h.chart.PushAll(bars)
	h.chart.Draw()
}

func (h historyModel) view() string {
	w := h.width - 4

	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("History"), "  ",
		highlightStyle.Render(fmt.Sprintf("%d day streak", h.streak)), "  ",
		mutedStyle.Render(fmt.Sprintf("%d check-ins", h.total)),
	)

	chartTitle := mutedStyle.Render(fmt.Sprintf("Days logged per week (last %d weeks)", historyWeeks))

	parts := []string{header, "", chartTitle, h.chart.View(), "", h.renderTable(w)}
	if h.skipped > 0 {
		parts = append(parts, "", warningStyle.Render(fmt.Sprintf("  %d rows with unreadable dates ignored", h.skipped)))
	}
	parts = append(parts, "", mutedStyle.Render("  e: export  D (settings): clear log"))

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (h historyModel) renderTable(w int) string {
	if len(h.recent) == 0 {
		return mutedStyle.Render("  No check-ins yet. Press c on the Workout view to log one.")
	}

	var rows []string
	rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-12s %-40s %-20s %s", "Date", "Phase", "Mood", "Done")))
	rows = append(rows, mutedStyle.Render("  "+strings.Repeat("─", min(w-6, 80))))

	for _, r := range h.recent {
		done := ""
		if r.Completed {
			done = successStyle.Render("✓")
		}
		rows = append(rows, fmt.Sprintf("  %-12s %-40s %-20s %s",
			r.Date, truncate(r.Phase, 40), r.Mood.String(), done,
		))
	}
	return strings.Join(rows, "\n")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
