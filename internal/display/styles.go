package display

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles used by the terminal display. They are
// bound to a renderer so that colour output follows the target writer.
type Styles struct {
	Header    lipgloss.Style
	Title     lipgloss.Style
	Card      lipgloss.Style
	RedCard   lipgloss.Style
	BlackCard lipgloss.Style
	Balance   lipgloss.Style
	Actions   lipgloss.Style
	Success   lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
	Info      lipgloss.Style
}

// NewStyles creates the default styles on r.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),

		Title: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),

		Card: r.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#626262")),

		RedCard: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),

		BlackCard: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),

		Balance: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")),

		Actions: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),

		Success: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),

		Error: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),

		Warning: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),

		Info: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}
