package doctor

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

const hintWidth = 72

var (
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	missingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	toolStyle    = lipgloss.NewStyle().Bold(true).Width(12)
	versionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Italic(true).PaddingLeft(4)
)

// Render writes a human-readable diagnosis to w.
func Render(w io.Writer, reports []Report) {
	for _, report := range reports {
		switch report.Status {
		case StatusOK:
			fmt.Fprintf(w, "  %s %s %s\n",
				okStyle.Render("✓"),
				toolStyle.Render(report.Tool),
				versionStyle.Render(report.Version),
			)
		case StatusMissing:
			fmt.Fprintf(w, "  %s %s %s\n",
				missingStyle.Render("✗"),
				toolStyle.Render(report.Tool),
				missingStyle.Render("missing"),
			)
			if report.InstallHint != "" {
				hint := wordwrap.String("install it from "+report.InstallHint, hintWidth)
				fmt.Fprintln(w, hintStyle.Render(hint))
			}
		}
	}

	missing := len(Missing(reports))
	fmt.Fprintf(w, "\n%d tools checked, %d missing\n", len(reports), missing)
}
