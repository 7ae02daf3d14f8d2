package xlsx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/tablemerge-go/pkg/tablemerge"
	"github.com/xuri/excelize/v2"
)

func TestDestinationAppendsBelowAnchor(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	wb := New(f, tablemerge.DefaultOptions())
	sheet, err := wb.CreateSheet("Out")
	require.NoError(t, err)

	dest, err := sheet.CreateTable("B3", []string{"Name", "Count", "Value"})
	require.NoError(t, err)
	require.NoError(t, dest.AppendRows([][]any{{"A", 1, int64(1)}}))
	require.NoError(t, dest.AppendRows([][]any{{"B", 2, int64(5)}, {"C", 1, tablemerge.NaNText}}))

	for cell, expected := range map[string]string{
		"B3": "Name",
		"D3": "Value",
		"B4": "A",
		"B5": "B",
		"C5": "2",
		"D6": "NaN",
	} {
		got, err := f.GetCellValue("Out", cell)
		require.NoError(t, err)
		assert.Equal(t, expected, got, cell)
	}

	rng, ok := dest.(*destination).extent()
	require.True(t, ok)
	assert.Equal(t, "B3:D6", rng.String())
}

func TestDestinationExtentWithoutRows(t *testing.T) {
	d := &destination{col: 1, row: 1, width: 2, next: 2}
	rng, ok := d.extent()
	require.True(t, ok)
	assert.Equal(t, "A1:B2", rng.String())

	_, ok = (&destination{col: 1, row: 1, next: 2}).extent()
	assert.False(t, ok)
}

func TestCreateSheetInvalidAnchor(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheet, err := New(f, tablemerge.DefaultOptions()).CreateSheet("Out")
	require.NoError(t, err)

	_, err = sheet.CreateTable("not-a-cell", []string{"Name"})
	assert.Error(t, err)
}
