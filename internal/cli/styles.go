package cli

import "github.com/charmbracelet/lipgloss"

// Styles renders CLI headers and errors. In plain mode text passes through
// unchanged.
type Styles struct {
	plain  bool
	header lipgloss.Style
	err    lipgloss.Style
}

func NewStyles(plain bool) Styles {
	return Styles{
		plain: plain,
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ffff")),
		err: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff5555")),
	}
}

func (s Styles) Header(text string) string {
	if s.plain {
		return text
	}
	return s.header.Render(text)
}

func (s Styles) Error(err error) string {
	text := "error: " + err.Error()
	if s.plain {
		return text
	}
	return s.err.Render(text)
}
