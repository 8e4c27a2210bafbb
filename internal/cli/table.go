package cli

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// NewTable creates a table writer with the house style: rounded borders,
// output mirrored to the given writer.
func NewTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleRounded)
	return t
}

// Header colors the column names of a table header row.
func Header(names ...string) []interface{} {
	row := make([]interface{}, len(names))
	for i, name := range names {
		row[i] = text.FgHiCyan.Sprint(name)
	}
	return row
}
