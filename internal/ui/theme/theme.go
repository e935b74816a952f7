// Package theme holds the console styles. Styles are bound to a renderer so
// output that is not a terminal comes out as plain text.
package theme

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

type Styles struct {
	Title   lipgloss.Style
	Status  lipgloss.Style
	Section lipgloss.Style
	Result  lipgloss.Style
	Notice  lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
}

func NewStyles(w io.Writer) Styles {
	r := lipgloss.NewRenderer(w)
	return Styles{
		Title:   r.NewStyle().Bold(true).Foreground(AccentEmber),
		Status:  r.NewStyle().Foreground(TextPrimary),
		Section: r.NewStyle().Bold(true).Foreground(TextSecondary),
		Result:  r.NewStyle().Foreground(AccentForest),
		Notice:  r.NewStyle().Foreground(WarningAmber),
		Error:   r.NewStyle().Foreground(Danger),
		Muted:   r.NewStyle().Foreground(TextMuted),
	}
}
