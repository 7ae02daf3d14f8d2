package xlsx

import (
	"github.com/xuri/excelize/v2"
)

// sourceTable is a table region on a sheet, read as display text.
type sourceTable struct {
	f     *excelize.File
	sheet string
	name  string
	rng   cellRange
}

func (t *sourceTable) Name() string { return t.name }

func (t *sourceTable) HeaderRow() ([]string, error) {
	texts, err := t.Texts()
	if err != nil {
		return nil, err
	}
	return texts[0], nil
}

// Texts returns the table range as a rectangular grid, padding cells
// excelize omits with empty strings.
func (t *sourceTable) Texts() ([][]string, error) {
	rows, err := t.f.GetRows(t.sheet)
	if err != nil {
		return nil, err
	}

	grid := make([][]string, 0, t.rng.Height())
	for r := t.rng.R1; r <= t.rng.R2; r++ {
		line := make([]string, t.rng.Width())
		if r-1 < len(rows) {
			src := rows[r-1]
			for c := t.rng.C1; c <= t.rng.C2 && c-1 < len(src); c++ {
				line[c-t.rng.C1] = src[c-1]
			}
		}
		grid = append(grid, line)
	}

	return grid, nil
}

// RowCount returns the number of data rows. The lone blank row Excel keeps
// in an empty table is not counted.
func (t *sourceTable) RowCount() (int, error) {
	n := t.rng.Height() - 1
	if n != 1 {
		return n, nil
	}

	texts, err := t.Texts()
	if err != nil {
		return 0, err
	}
	for _, cell := range texts[1] {
		if cell != "" {
			return 1, nil
		}
	}
	return 0, nil
}
