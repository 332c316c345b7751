// Package style provides shared colors, icons and lipgloss styles for the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
	Circle  = "○"
)

// Styles bundles the lipgloss styles used to render command output.
type Styles struct {
	Heading lipgloss.Style
	Label   lipgloss.Style
	Muted   lipgloss.Style
	Good    lipgloss.Style
	Bad     lipgloss.Style
	Warn    lipgloss.Style
	Border  lipgloss.Style
}

// New returns the styles bound to renderer.
func New(r *lipgloss.Renderer) Styles {
	return Styles{
		Heading: r.NewStyle().Bold(true).Foreground(Iris),
		Label:   r.NewStyle().Bold(true),
		Muted:   r.NewStyle().Foreground(Slate),
		Good:    r.NewStyle().Foreground(Green),
		Bad:     r.NewStyle().Foreground(Red),
		Warn:    r.NewStyle().Foreground(Yellow),
		Border:  r.NewStyle().Foreground(Slate),
	}
}
