// Package models defines data structures for table merging.
package models

// Table is a header plus data rows, as held by the in-memory host or
// returned by a merge.
type Table struct {
	// Name is the table name.
	Name string `json:"name"`
	// Sheet is the sheet owning the table.
	Sheet string `json:"sheet,omitempty"`
	// Anchor is the top-left cell address of the table.
	Anchor string `json:"anchor,omitempty"`
	// Header is the header row.
	Header []string `json:"header"`
	// Rows holds the data rows below the header.
	Rows [][]any `json:"rows"`
}

// AppendRows adds rows after the existing ones.
func (t *Table) AppendRows(rows [][]any) {
	for _, row := range rows {
		t.Rows = append(t.Rows, append([]any(nil), row...))
	}
}
