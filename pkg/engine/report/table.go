package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF99"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	coreStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00CCFF"))
	winnerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F59E0B"))
)

// RenderTable writes a human readable summary followed by the given rows.
func RenderTable(w io.Writer, rep Report, rows []Row) error {
	var s strings.Builder

	s.WriteString(titleStyle.Render(fmt.Sprintf("NETWORK %s", rep.Source)) + "\n")
	fmt.Fprintf(&s, "  shops %d  links %d  components %d  roads %d accepted / %d skipped\n",
		rep.Shops, rep.Links, rep.Components, rep.Accepted, rep.Skipped)
	fmt.Fprintf(&s, "  threshold %d  core %v  required impact %d  winners %v\n",
		rep.Threshold, rep.Core, rep.RequiredImpact, rep.Winners)
	s.WriteString(titleStyle.Render(fmt.Sprintf("RESULT %d", rep.Result)) + "\n\n")

	s.WriteString(dimStyle.Render(fmt.Sprintf("  %-8s %8s %8s  %s", "SHOP", "DEGREE", "IMPACT", "ROLE")) + "\n")
	s.WriteString(dimStyle.Render("  "+strings.Repeat("─", 36)) + "\n")

	for _, row := range rows {
		impact := "-"
		if row.Core {
			impact = fmt.Sprintf("%d", row.Impact)
		}
		line := fmt.Sprintf("  %-8d %8d %8s  %s", row.ShopID, row.Degree, impact, Role(row))

		switch {
		case row.Winner:
			line = winnerStyle.Render(line)
		case row.Core:
			line = coreStyle.Render(line)
		}
		s.WriteString(line + "\n")
	}

	_, err := io.WriteString(w, s.String())
	return err
}

// Role names the part a shop plays in the reduction: "winner", "core" or empty.
func Role(r Row) string {
	switch {
	case r.Winner:
		return "winner"
	case r.Core:
		return "core"
	default:
		return ""
	}
}
