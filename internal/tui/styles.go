package tui

import "github.com/charmbracelet/lipgloss"

// Palette lifted from the web gallery: orange accent on a slate sidebar.
var (
	colorAccent  = lipgloss.Color("#ff6b35")
	colorSlate   = lipgloss.Color("#1e293b")
	colorMuted   = lipgloss.Color("#9ca3af")
	colorFaint   = lipgloss.Color("#6b7280")
	colorTheme   = lipgloss.Color("#4338ca")
	colorDanger  = lipgloss.Color("#ef4444")
	colorSuccess = lipgloss.Color("#22c55e")
)

var (
	logoStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	statusReadyStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	statusBusyStyle  = lipgloss.NewStyle().Foreground(colorAccent)
	alertStyle       = lipgloss.NewStyle().Foreground(colorDanger).Bold(true)
	hintStyle        = lipgloss.NewStyle().Foreground(colorFaint)

	sidebarTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorMuted)

	filterActiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#ffffff")).
				Background(colorAccent).
				Bold(true).
				Padding(0, 1)
	filterIdleStyle = lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#374151")).
			Padding(0, 1)
	cardSelectedStyle = cardStyle.
				BorderForeground(colorAccent)

	typeBadgeStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	dateStyle      = lipgloss.NewStyle().Foreground(colorFaint)
	themeChipStyle = lipgloss.NewStyle().Foreground(colorTheme)
	tagChipStyle   = lipgloss.NewStyle().Foreground(colorMuted)

	tabActiveStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true).
			Padding(0, 2).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(colorAccent)
	tabIdleStyle = lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 2)

	userBubbleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(colorSlate).
			Padding(0, 1)
	assistantLabelStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	userLabelStyle      = lipgloss.NewStyle().Foreground(colorMuted).Bold(true)

	presetStyle         = lipgloss.NewStyle().Foreground(colorMuted)
	presetSelectedStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(1, 2)

	emptyStateStyle = lipgloss.NewStyle().Foreground(colorFaint).Align(lipgloss.Center)
)
