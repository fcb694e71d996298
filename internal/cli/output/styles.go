package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Styles holds the lipgloss styles used across commands.
type Styles struct {
	Header1 lipgloss.Style
	Header2 lipgloss.Style
	Bold    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
	Axis    lipgloss.Style

	renderer *lipgloss.Renderer
}

// NewStyles builds styles bound to w. Output that is not a terminal gets the
// ASCII profile so no escape codes are emitted.
func NewStyles(w io.Writer, isTTY bool) *Styles {
	lr := lipgloss.NewRenderer(w)
	if !isTTY {
		lr.SetColorProfile(termenv.Ascii)
	}

	return &Styles{
		Header1:  lr.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Header2:  lr.NewStyle().Bold(true),
		Bold:     lr.NewStyle().Bold(true),
		Muted:    lr.NewStyle().Foreground(lipgloss.Color("8")),
		Success:  lr.NewStyle().Foreground(lipgloss.Color("10")),
		Warning:  lr.NewStyle().Foreground(lipgloss.Color("11")),
		Error:    lr.NewStyle().Foreground(lipgloss.Color("9")),
		Info:     lr.NewStyle().Foreground(lipgloss.Color("14")),
		Axis:     lr.NewStyle().Foreground(lipgloss.Color("8")),
		renderer: lr,
	}
}

// Bar returns a style that paints bars in the given color.
// An empty color leaves the terminal default.
func (s *Styles) Bar(color string) lipgloss.Style {
	style := s.renderer.NewStyle()
	if color != "" {
		style = style.Foreground(lipgloss.Color(color))
	}
	return style
}
