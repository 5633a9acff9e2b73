package report

import "github.com/charmbracelet/lipgloss"

var (
	Primary = lipgloss.Color("#7C3AED") // Purple
	Pass    = lipgloss.Color("#10B981") // Green
	Fail    = lipgloss.Color("#EF4444") // Red
	Muted   = lipgloss.Color("#6B7280") // Gray

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	headerCell = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	cell = lipgloss.NewStyle().
		Padding(0, 1)

	passCell = cell.Foreground(Pass).Bold(true)
	failCell = cell.Foreground(Fail)
)
