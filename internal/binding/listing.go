package binding

import (
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/reflex/internal/model"
)

// IconLookup resolves a prompt glyph for listings.
type IconLookup func(id model.PromptID) (string, bool)

// Listing renders the table as aligned text lines: family, prompt, key, icon.
func Listing(table Table, icons IconLookup) []string {
	families := make([]model.DeviceFamily, 0, len(table))
	for family := range table {
		families = append(families, family)
	}
	sort.Slice(families, func(i, j int) bool { return families[i] < families[j] })

	var rows [][]string
	for _, family := range families {
		for _, b := range table[family] {
			icon := "-"
			if icons != nil {
				if glyph, ok := icons(b.Prompt); ok {
					icon = glyph
				}
			}
			rows = append(rows, []string{string(family), string(b.Prompt), b.Key, icon})
		}
	}
	return formatTable([]string{"Family", "Prompt", "Key", "Icon"}, rows)
}

func formatTable(headers []string, rows [][]string) []string {
	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	if colCount == 0 {
		return nil
	}

	widths := make([]int, colCount)
	for i, header := range headers {
		widths[i] = runewidth.StringWidth(header)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, formatRow(headers, widths))
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths))
	}
	return lines
}

func formatRow(row []string, widths []int) string {
	cells := make([]string, len(widths))
	for i := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		cells[i] = runewidth.FillRight(cell, widths[i])
	}
	return strings.TrimRight(strings.Join(cells, " "), " ")
}
