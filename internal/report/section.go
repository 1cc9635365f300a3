// Package report renders analysis results for display. Sections carry
// only primitives so renderers never reach back into domain types.
package report

import (
	"fmt"
	"strconv"
)

// Section is one titled table of the report. An empty Rows slice is a
// meaningful result (nothing matched the thresholds), not an error.
type Section struct {
	Title    string
	Subtitle string
	Headers  []string
	Rows     [][]any
}

// FormatCell renders a primitive cell value for display.
func FormatCell(v any) string {
	switch c := v.(type) {
	case string:
		return c
	case int:
		return strconv.Itoa(c)
	case int64:
		return strconv.FormatInt(c, 10)
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", c)
	}
}

// StringRows returns every row with each cell formatted for display.
func (s Section) StringRows() [][]string {
	rows := make([][]string, len(s.Rows))
	for i, row := range s.Rows {
		cells := make([]string, len(row))
		for j, c := range row {
			cells[j] = FormatCell(c)
		}
		rows[i] = cells
	}
	return rows
}
