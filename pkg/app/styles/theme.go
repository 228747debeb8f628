package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	Primary    = lipgloss.Color("#38BDF8")
	Secondary  = lipgloss.Color("#818CF8")
	Success    = lipgloss.Color("#A3E635")
	Warning    = lipgloss.Color("#FBBF24")
	Error      = lipgloss.Color("#F87171")
	Info       = lipgloss.Color("#7DD3FC")
	Muted      = lipgloss.Color("#64748B")
	Foreground = lipgloss.Color("#E2E8F0")

	// Border styles
	RoundedBorder = lipgloss.RoundedBorder()
)

// Base styles
var (
	// Title style for headings
	TitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			MarginBottom(1)

	// Subtitle style
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Italic(true)

	// Normal text
	TextStyle = lipgloss.NewStyle().
			Foreground(Foreground)

	// Muted/dimmed text
	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// Selected item
	SelectedStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	// Card style for the run summary
	CardStyle = lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(Secondary).
			Padding(1, 2).
			MarginBottom(1)

	// Log line styles
	LogInfo = lipgloss.NewStyle().
			Foreground(Info)

	LogSuccess = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	LogWarning = lipgloss.NewStyle().
			Foreground(Warning)

	LogError = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	LogHeader = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	// Progress bar styles
	ProgressBarStyle = lipgloss.NewStyle().
				Foreground(Primary)

	ProgressEmptyStyle = lipgloss.NewStyle().
				Foreground(Muted)

	// Help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true).
			MarginTop(1)
)

// SeverityStyle maps a log severity to its line style.
func SeverityStyle(severity string) lipgloss.Style {
	switch severity {
	case "success":
		return LogSuccess
	case "warning":
		return LogWarning
	case "error":
		return LogError
	case "header":
		return LogHeader
	case "info":
		return LogInfo
	default:
		return MutedStyle
	}
}
