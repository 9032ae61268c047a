// view/styles.go
package view

import "github.com/charmbracelet/lipgloss"

var (
	primary     = lipgloss.Color("#7147E8")
	muted       = lipgloss.Color("#6B7280")
	border      = lipgloss.Color("#DCE0E5")
	destructive = lipgloss.Color("#E53935")
)

// Styles used by the console views
type Styles struct {
	Card          lipgloss.Style
	Heading       lipgloss.Style
	Body          lipgloss.Style
	Muted         lipgloss.Style
	Link          lipgloss.Style
	ActiveTitle   lipgloss.Style
	Button        lipgloss.Style
	DangerButton  lipgloss.Style
	ConfirmDialog lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 1),

		Heading: lipgloss.NewStyle().
			Bold(true),

		Body: lipgloss.NewStyle().
			Margin(0, 1),

		Muted: lipgloss.NewStyle().
			Foreground(muted).
			Italic(true),

		Link: lipgloss.NewStyle().
			Foreground(primary),

		ActiveTitle: lipgloss.NewStyle().
			Bold(true),

		Button: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(primary).
			Padding(0, 1),

		DangerButton: lipgloss.NewStyle().
			Foreground(destructive).
			Border(lipgloss.NormalBorder()).
			BorderForeground(destructive).
			Padding(0, 1),

		ConfirmDialog: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(destructive).
			Padding(0, 2),
	}
}
