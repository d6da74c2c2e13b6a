package tui

import "github.com/charmbracelet/lipgloss"

var (
	headerAppStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	activeTabStyle = lipgloss.NewStyle().
			Background(colorSurface0).
			Foreground(colorAccent).
			Bold(true).
			Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().
				Background(colorMantle).
				Foreground(colorMuted).
				Padding(0, 1)

	sectionBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface1).
			Padding(0, 1)
	sectionTitleStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)

	noticeInfoStyle    = lipgloss.NewStyle().Foreground(colorInfo)
	noticeSuccessStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	noticeWarningStyle = lipgloss.NewStyle().Foreground(colorWarning).Bold(true)
	noticeErrorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)

	statusStyle = lipgloss.NewStyle().Foreground(colorSubtext0)

	connectedStyle = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	demoBadgeStyle = lipgloss.NewStyle().Foreground(colorWarning)
	mutedStyle     = lipgloss.NewStyle().Foreground(colorMuted)

	creditStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	debitStyle  = lipgloss.NewStyle().Foreground(colorError)

	scoreGoodStyle  = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	scoreWatchStyle = lipgloss.NewStyle().Foreground(colorYellow).Bold(true)
	scoreBadStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)

	modalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)

	confirmStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorError).
			Padding(0, 1).
			Foreground(colorText)

	cursorStyle = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
	keyStyle    = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	titleStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
)
