package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by the CLI.
type Styles struct {
	Header1       lipgloss.Style
	Header2       lipgloss.Style
	Bold          lipgloss.Style
	Muted         lipgloss.Style
	Code          lipgloss.Style
	Success       lipgloss.Style
	Warning       lipgloss.Style
	Error         lipgloss.Style
	StatusSuccess lipgloss.Style
	StatusFailed  lipgloss.Style
}

var (
	colorGreen  = lipgloss.Color("42")
	colorYellow = lipgloss.Color("214")
	colorRed    = lipgloss.Color("196")
	colorBlue   = lipgloss.Color("39")
	colorGray   = lipgloss.Color("245")
)

func newStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Header1:       r.NewStyle().Bold(true).Foreground(colorBlue),
		Header2:       r.NewStyle().Bold(true),
		Bold:          r.NewStyle().Bold(true),
		Muted:         r.NewStyle().Foreground(colorGray),
		Code:          r.NewStyle().Foreground(colorYellow),
		Success:       r.NewStyle().Foreground(colorGreen),
		Warning:       r.NewStyle().Foreground(colorYellow).Bold(true),
		Error:         r.NewStyle().Foreground(colorRed).Bold(true),
		StatusSuccess: r.NewStyle().Foreground(colorGreen).SetString("✓"),
		StatusFailed:  r.NewStyle().Foreground(colorRed).SetString("✗"),
	}
}
