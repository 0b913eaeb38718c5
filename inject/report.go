package inject

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// reporter prints operator-facing progress lines
type reporter struct {
	w       io.Writer
	info    lipgloss.Style
	success lipgloss.Style
}

func newReporter(w io.Writer) *reporter {
	r := lipgloss.NewRenderer(w)
	return &reporter{
		w: w,
		info: r.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true),
		success: r.NewStyle().
			Foreground(lipgloss.Color("40")).
			Bold(true),
	}
}

func (r *reporter) progress(msg string) {
	fmt.Fprintf(r.w, "%s %s\n", r.info.Render("📤"), msg)
}

func (r *reporter) done(msg string) {
	fmt.Fprintf(r.w, "%s %s\n", r.success.Render("✓"), msg)
}
