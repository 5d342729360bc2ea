package configobj

import (
	"github.com/jedib0t/go-pretty/v6/table"
)

// emptyValue is displayed for fields and analyzer values that are unset.
const emptyValue = "N/A"

// renderTable renders headers and rows as a rounded-style table. Reports
// returned by the mutation engine are rendered once, at pass time, so the
// caller can print them without further formatting.
func renderTable(headers []any, rows [][]any) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(headers)
	for _, row := range rows {
		t.AppendRow(row)
	}
	return t.Render()
}

// RenderChanges renders a change set as a table of key, old and new values,
// for callers that want to echo what a mutating pass did.
func RenderChanges(changes ChangeSet) string {
	rows := make([][]any, 0, len(changes.Entries))
	for _, c := range changes.Entries {
		rows = append(rows, []any{c.Key, c.Old, c.New})
	}
	return renderTable([]any{"Option", "Previous", "Current"}, rows)
}
