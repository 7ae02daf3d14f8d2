package tablemerge

// Well-known columns of a source table.
const (
	ColumnName  = "Name"
	ColumnValue = "Value"
	ColumnCount = "Count"
)

// Record maps header names to the raw text of one data row.
// Columns the row did not reach are absent.
type Record map[string]string

// Get returns the text stored under column and whether the row had it.
func (r Record) Get(column string) (string, bool) {
	v, ok := r[column]
	return v, ok
}

// Decode converts a grid whose first row is the header into records.
// The header row itself is not returned.
func Decode(grid [][]string) []Record {
	if len(grid) == 0 {
		return nil
	}

	keys := grid[0]
	records := make([]Record, 0, len(grid)-1)
	for _, row := range grid[1:] {
		record := make(Record, len(row))
		for j, cell := range row {
			// Cells past the header have no key to land on.
			if j >= len(keys) {
				break
			}
			record[keys[j]] = cell
		}
		records = append(records, record)
	}

	return records
}
