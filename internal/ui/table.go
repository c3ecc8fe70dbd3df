package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// columnGap separates table columns.
const columnGap = "  "

// Cell is one styled table value.
type Cell struct {
	Text  string
	Style lipgloss.Style
}

// Plain wraps text in an unstyled Cell.
func Plain(text string) Cell {
	return Cell{Text: text, Style: lipgloss.NewStyle()}
}

// Table is a simple left-aligned text table.
type Table struct {
	styles  *Styles
	headers []string
	rows    [][]Cell
}

// NewTable creates a table with the given headers.
func NewTable(styles *Styles, headers ...string) *Table {
	return &Table{styles: styles, headers: headers}
}

// Add appends a row. Missing cells are left blank.
func (t *Table) Add(cells ...Cell) {
	t.rows = append(t.rows, cells)
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Render writes the table to w. Column widths are measured on the
// unstyled text so colors do not skew alignment.
func (t *Table) Render(w io.Writer) error {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range t.rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i].Text))
		}
	}

	header := make([]Cell, len(t.headers))
	for i, h := range t.headers {
		header[i] = Cell{Text: h, Style: t.styles.Header}
	}
	if err := writeRow(w, header, widths); err != nil {
		return err
	}
	for _, row := range t.rows {
		if err := writeRow(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

func writeRow(w io.Writer, row []Cell, widths []int) error {
	var b strings.Builder
	for i, width := range widths {
		var c Cell
		if i < len(row) {
			c = row[i]
		}
		b.WriteString(c.Style.Render(c.Text))
		if i < len(widths)-1 {
			b.WriteString(strings.Repeat(" ", width-lipgloss.Width(c.Text)))
			b.WriteString(columnGap)
		}
	}
	_, err := fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	return err
}

// Summary formats a "N succeeded, M failed" line.
func (s *Styles) Summary(succeeded, failed int) string {
	failStyle := s.Dim
	if failed > 0 {
		failStyle = s.Failure
	}
	return s.Success.Render(fmt.Sprintf("%d succeeded", succeeded)) + ", " +
		failStyle.Render(fmt.Sprintf("%d failed", failed))
}
