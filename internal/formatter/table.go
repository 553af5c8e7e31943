// Package formatter renders emitted words for the terminal.
package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"wordcrush/internal/models"

	"github.com/mattn/go-runewidth"
)

// MaxCellWidth caps the display width of a single cell.
const MaxCellWidth = 40

// FormatPreview renders up to limit entries as a markdown table whose
// columns are aligned by display width. A limit of 0 renders every entry.
func FormatPreview(entries []models.Entry, limit int) string {
	shown := entries
	if limit > 0 && len(shown) > limit {
		shown = shown[:limit]
	}

	table := [][]string{{"#", "Text", "Picked"}}
	for i, e := range shown {
		table = append(table, []string{
			strconv.Itoa(i + 1),
			runewidth.Truncate(e.Text, MaxCellWidth, "..."),
			e.Picked,
		})
	}

	lines := renderTable(table)
	if rest := len(entries) - len(shown); rest > 0 {
		lines = append(lines, fmt.Sprintf("... and %d more", rest))
	}

	return strings.Join(lines, "\n")
}

// renderTable pads every cell to its column width and inserts a separator
// after the header row.
func renderTable(table [][]string) []string {
	colWidths := make([]int, len(table[0]))

	for _, row := range table {
		for i, cell := range row {
			if width := runewidth.StringWidth(cell); width > colWidths[i] {
				colWidths[i] = width
			}
		}
	}

	// Ensure min width for separator
	for i := range colWidths {
		if colWidths[i] < 3 {
			colWidths[i] = 3
		}
	}

	result := make([]string, 0, len(table)+1)

	for i, row := range table {
		result = append(result, renderRow(row, colWidths))

		if i == 0 {
			sep := make([]string, len(colWidths))
			for j, w := range colWidths {
				sep[j] = strings.Repeat("-", w)
			}

			result = append(result, renderRow(sep, colWidths))
		}
	}

	return result
}

func renderRow(row []string, colWidths []int) string {
	var sb strings.Builder

	sb.WriteString("|")

	for j, content := range row {
		sb.WriteString(" ")
		sb.WriteString(runewidth.FillRight(content, colWidths[j]))
		sb.WriteString(" |")
	}

	return sb.String()
}
