// Package export renders tabular data for download.
package export

import "strings"

// Field is one labelled cell of a row.
type Field struct {
	Label string
	Value string
}

// Row is an ordered label to value mapping.
type Row []Field

// CSV renders rows with a header taken from the first row's labels. Labels
// are written as is; every value is quoted with embedded quotes doubled.
// Rows are separated by a single newline with no trailing newline. No rows
// yields an empty string.
func CSV(rows []Row) string {
	if len(rows) == 0 {
		return ""
	}

	lines := make([]string, 0, len(rows)+1)

	header := make([]string, len(rows[0]))
	for i, f := range rows[0] {
		header[i] = f.Label
	}
	lines = append(lines, strings.Join(header, ","))

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, f := range row {
			cells[i] = `"` + strings.ReplaceAll(f.Value, `"`, `""`) + `"`
		}
		lines = append(lines, strings.Join(cells, ","))
	}

	return strings.Join(lines, "\n")
}
