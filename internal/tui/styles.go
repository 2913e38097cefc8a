package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	colorPrimary   = lipgloss.Color("#FF7A3D")
	colorSecondary = lipgloss.Color("#3DC1D3")
	colorAccent    = lipgloss.Color("#F25F5C")
	colorMuted     = lipgloss.Color("#6B7280")
	colorSuccess   = lipgloss.Color("#34C759")
	colorWarning   = lipgloss.Color("#FFB020")
	colorError     = lipgloss.Color("#E5484D")
	colorBg        = lipgloss.Color("#111318")
	colorFg        = lipgloss.Color("#E4E7EB")
	colorSubtle    = lipgloss.Color("#3A3F4B")
	colorHighlight = lipgloss.Color("#8AB4F8")
)

// Styles
var (
	// Tabs
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(colorPrimary).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Padding(0, 2)

	// Panels
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(1, 2)

	activePanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary).
				Padding(1, 2)

	// Coach banner
	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	bannerGoStyle     = bannerStyle.Foreground(colorSuccess)
	bannerAdjustStyle = bannerStyle.Foreground(colorWarning)
	bannerAlertStyle  = bannerStyle.Foreground(colorBg).Background(colorError)

	// Plan sections
	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSecondary).
			MarginTop(1)

	// Text
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorFg)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	accentStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	warningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	highlightStyle = lipgloss.NewStyle().
			Foreground(colorHighlight)

	// Header/footer
	headerStyle = lipgloss.NewStyle().
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	// List items
	selectedItemStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	normalItemStyle = lipgloss.NewStyle().
			Foreground(colorFg)
)

// themeColors maps course block themes to their accent color.
var themeColors = map[string]lipgloss.Color{
	"phase1": colorSecondary,
	"phase2": colorWarning,
	"phase3": colorAccent,
}

func themeStyle(theme string) lipgloss.Style {
	c, ok := themeColors[theme]
	if !ok {
		c = colorPrimary
	}
	return lipgloss.NewStyle().Bold(true).Foreground(c)
}
