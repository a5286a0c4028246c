package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/DrSkyle/shopnet/pkg/engine"
	"github.com/DrSkyle/shopnet/pkg/engine/report"
)

type ViewState int

const (
	ViewStateList ViewState = iota
	ViewStateDetail
)

type Model struct {
	// core components
	table  table.Model
	Result *engine.Result
	Report report.Report

	// state
	state    ViewState
	quitting bool
	width    int
	height   int

	// data
	rows []report.Row
}

// NewModel shows the given rows of an analysed network; rep is the report
// built from res.
func NewModel(res *engine.Result, rep report.Report, rows []report.Row) Model {
	columns := []table.Column{
		{Title: "SHOP", Width: 8},
		{Title: "DEGREE", Width: 8},
		{Title: "IMPACT", Width: 8},
		{Title: "ROLE", Width: 8},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(toTableRows(rows)),
		table.WithFocused(true),
		table.WithHeight(min(len(rows)+1, 15)),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(accent).Bold(true)
	styles.Selected = styles.Selected.Foreground(highlight).Bold(true)
	t.SetStyles(styles)

	return Model{
		table:  t,
		Result: res,
		Report: rep,
		state:  ViewStateList,
		rows:   rows,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if h := msg.Height - 8; h > 3 {
			m.table.SetHeight(h)
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			if len(m.rows) > 0 {
				m.state = ViewStateDetail
			}
			return m, nil
		case "esc", "backspace":
			m.state = ViewStateList
			return m, nil
		}
	}

	if m.state == ViewStateList {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

// Selected returns the row under the cursor.
func (m Model) Selected() (report.Row, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.rows) {
		return report.Row{}, false
	}
	return m.rows[i], true
}

func toTableRows(rows []report.Row) []table.Row {
	out := make([]table.Row, 0, len(rows))
	for _, r := range rows {
		impact := "-"
		if r.Core {
			impact = fmt.Sprintf("%d", r.Impact)
		}
		out = append(out, table.Row{
			fmt.Sprintf("%d", r.ShopID),
			fmt.Sprintf("%d", r.Degree),
			impact,
			report.Role(r),
		})
	}
	return out
}
