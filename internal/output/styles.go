package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// jsonStyles colour the token classes of a JSON document.
type jsonStyles struct {
	key     lipgloss.Style
	str     lipgloss.Style
	number  lipgloss.Style
	literal lipgloss.Style
	null    lipgloss.Style
	punct   lipgloss.Style
}

// newJSONStyles binds the styles to a renderer that always emits ANSI
// colours, whether or not w is a terminal.
func newJSONStyles(w io.Writer) jsonStyles {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.ANSI256)

	return jsonStyles{
		key:     r.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
		str:     r.NewStyle().Foreground(lipgloss.Color("34")),
		number:  r.NewStyle().Foreground(lipgloss.Color("208")),
		literal: r.NewStyle().Foreground(lipgloss.Color("170")),
		null:    r.NewStyle().Faint(true),
		punct:   r.NewStyle(),
	}
}
