package models

// SourceSummary describes what one source table contributed.
type SourceSummary struct {
	// Table is the source table name.
	Table string `json:"table"`
	// DataRows is the number of data rows read, header excluded.
	DataRows int `json:"data_rows"`
	// Groups is the number of summary rows appended.
	Groups int `json:"groups"`
}

// MergeReport summarizes a merge run.
type MergeReport struct {
	// BookName is the workbook file name (no path), when known.
	BookName string `json:"book_name,omitempty"`
	// SheetName is the destination sheet.
	SheetName string `json:"sheet_name"`
	// Header is the destination header, copied from the first source.
	Header []string `json:"header"`
	// Sources lists the source tables in processing order.
	Sources []SourceSummary `json:"sources"`
	// RowsWritten is the total number of rows appended.
	RowsWritten int `json:"rows_written"`
	// Status is the acknowledgment returned on success.
	Status string `json:"status"`
}
