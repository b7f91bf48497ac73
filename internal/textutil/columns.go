package textutil

import "strings"

// Align lays out rows as columns separated by gap spaces. Cells are padded
// by visible width so styled cells line up with plain ones. Columns listed
// in right are right-aligned. Trailing padding on the last column is
// omitted.
func Align(rows [][]string, gap int, right ...int) []string {
	widths := make([]int, 0)
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			if w := VisibleWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	rightAligned := make(map[int]bool, len(right))
	for _, c := range right {
		rightAligned[c] = true
	}
	sep := strings.Repeat(" ", gap)
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			switch {
			case rightAligned[i]:
				cells[i] = PadLeft(cell, widths[i])
			case i == len(row)-1:
				cells[i] = cell
			default:
				cells[i] = PadRight(cell, widths[i])
			}
		}
		lines = append(lines, strings.Join(cells, sep))
	}
	return lines
}
