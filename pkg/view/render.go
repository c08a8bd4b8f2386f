package view

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Styles holds the lipgloss styles used by Render.
type Styles struct {
	Header lipgloss.Style
	Cell   lipgloss.Style
	Border lipgloss.Style
	Empty  lipgloss.Style
}

// DefaultStyles returns the default table styling.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")).Padding(0, 1),
		Cell:   lipgloss.NewStyle().Padding(0, 1),
		Border: lipgloss.NewStyle().Foreground(lipgloss.Color("#45475A")),
		Empty:  lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086")).Italic(true),
	}
}

// Render draws the model as a bordered terminal table. When positions holds
// one entry per row, a leading "#" column shows them. An empty model renders
// a short notice instead.
func Render(m *TableModel, styles Styles, positions ...int) string {
	if m.RowCount() == 0 {
		return styles.Empty.Render("no documents")
	}

	headers, rows := m.Headers(), m.Rows()
	if len(positions) == len(rows) {
		headers = append([]string{"#"}, headers...)
		for i, row := range rows {
			rows[i] = append([]string{strconv.Itoa(positions[i])}, row...)
		}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.Border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.Header
			}
			return styles.Cell
		})
	return t.String()
}
