// Package static provides non-interactive terminal output components.
package static

import (
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/fikriauliya/maestro-ai/internal/ui/styles"
)

// TableOption configures RenderTable.
type TableOption func(*tableOptions)

type tableOptions struct {
	highlight int
	styleCell func(row, col int) lipgloss.Style
}

// HighlightRow renders row (0-based, excluding the header) in the accent
// style.
func HighlightRow(row int) TableOption {
	return func(o *tableOptions) {
		o.highlight = row
	}
}

// CellStyle sets a base style per data cell. Padding is added on top.
func CellStyle(fn func(row, col int) lipgloss.Style) TableOption {
	return func(o *tableOptions) {
		o.styleCell = fn
	}
}

// RenderTable creates a formatted table with proper column alignment.
// Headers and rows are rendered using lipgloss/table which automatically
// calculates column widths based on content. No borders are rendered.
func RenderTable(headers []string, rows [][]string, opts ...TableOption) string {
	if len(rows) == 0 {
		return ""
	}

	o := tableOptions{highlight: -1}
	for _, opt := range opts {
		opt(&o)
	}

	var output strings.Builder

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return styles.Bold.PaddingRight(2)
			case row == o.highlight:
				return styles.AccentStyle.PaddingRight(2)
			case o.styleCell != nil:
				return o.styleCell(row, col).PaddingRight(2)
			}
			return lipgloss.NewStyle().PaddingRight(2)
		})

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}
