package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/DrSkyle/shopnet/pkg/engine/report"
)

var (
	accent    = lipgloss.Color("#00FF99")
	highlight = lipgloss.Color("#F59E0B")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	boxStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7D40FF")).
			Padding(0, 1)
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var s strings.Builder
	rep := m.Report

	s.WriteString(titleStyle.Render(fmt.Sprintf("SHOPNET  %s", rep.Source)) + "\n")
	s.WriteString(dimStyle.Render(fmt.Sprintf("shops %d · links %d · threshold %d · required impact %d",
		rep.Shops, rep.Links, rep.Threshold, rep.RequiredImpact)) + "\n")
	s.WriteString(titleStyle.Render(fmt.Sprintf("RESULT %d", rep.Result)) + "\n\n")

	switch m.state {
	case ViewStateDetail:
		s.WriteString(m.viewDetail())
		s.WriteString("\n" + dimStyle.Render("esc back · q quit"))
	default:
		s.WriteString(m.table.View())
		s.WriteString("\n" + dimStyle.Render("↑/↓ move · enter details · q quit"))
	}
	return s.String() + "\n"
}

func (m Model) viewDetail() string {
	row, ok := m.Selected()
	if !ok {
		return ""
	}

	lines := []string{
		titleStyle.Render(fmt.Sprintf("SHOP %d", row.ShopID)),
		fmt.Sprintf("Degree:   %d", row.Degree),
	}
	if row.Core {
		lines = append(lines, fmt.Sprintf("Impact:   %d", row.Impact))
	}
	if role := report.Role(row); role != "" {
		lines = append(lines, "Role:     "+role)
	}

	if m.Result != nil {
		if shop, found := m.Result.Store.Lookup(row.ShopID); found {
			lines = append(lines, "", "Neighbors:")
			for _, n := range m.Result.Store.Neighbors(shop) {
				tag := "external"
				if m.Result.Analysis.InCore(n) {
					tag = "core"
				}
				lines = append(lines, fmt.Sprintf("  %-6d degree %-4d %s", n.ID, n.Degree(), tag))
			}
		}
	}

	return boxStyle.Render(strings.Join(lines, "\n")) + "\n"
}
