package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/tablemerge-go/pkg/tablemerge/models"
)

func TestToJSON(t *testing.T) {
	report := &models.MergeReport{
		BookName:    "sales.xlsx",
		SheetName:   "Combined",
		Header:      []string{"Name", "Count", "Value"},
		Sources:     []models.SourceSummary{{Table: "Sales", DataRows: 3, Groups: 2}},
		RowsWritten: 2,
		Status:      "OK",
	}

	data, err := ToJSON(report, false)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"book_name": "sales.xlsx",
		"sheet_name": "Combined",
		"header": ["Name", "Count", "Value"],
		"sources": [{"table": "Sales", "data_rows": 3, "groups": 2}],
		"rows_written": 2,
		"status": "OK"
	}`, string(data))

	pretty, err := ToJSON(report, true)
	require.NoError(t, err)
	assert.Contains(t, string(pretty), "\n  \"sheet_name\"")
}

func TestTableToJSON(t *testing.T) {
	table := &models.Table{
		Name:   "Combined",
		Header: []string{"Name", "Count", "Value"},
		Rows:   [][]any{{"Widget", 2, int64(12)}, {"Bad", 1, "NaN"}},
	}

	data, err := TableToJSON(table, false)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"name": "Combined",
		"header": ["Name", "Count", "Value"],
		"rows": [["Widget", 2, 12], ["Bad", 1, "NaN"]]
	}`, string(data))
}
