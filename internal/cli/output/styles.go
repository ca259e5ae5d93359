package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the lipgloss styles used in text mode.
type Styles struct {
	Header    lipgloss.Style
	Subheader lipgloss.Style
	Key       lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Muted     lipgloss.Style
}

// NewStyles creates styles bound to w. Without a terminal, colors are disabled.
func NewStyles(w io.Writer, isTTY bool) *Styles {
	lr := lipgloss.NewRenderer(w)
	if !isTTY {
		lr.SetColorProfile(termenv.Ascii)
	}

	return &Styles{
		Header:    lr.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Subheader: lr.NewStyle().Bold(true),
		Key:       lr.NewStyle().Foreground(lipgloss.Color("8")),
		Success:   lr.NewStyle().Foreground(lipgloss.Color("10")),
		Warning:   lr.NewStyle().Foreground(lipgloss.Color("11")),
		Error:     lr.NewStyle().Foreground(lipgloss.Color("9")),
		Muted:     lr.NewStyle().Faint(true),
	}
}
