package xlsx

import (
	"fmt"

	"github.com/ukaji3/tablemerge-go/pkg/tablemerge"
	"github.com/xuri/excelize/v2"
)

type sheet struct {
	wb   *Workbook
	name string
}

// CreateTable writes the header at anchor and returns a destination that
// appends rows below it.
func (s *sheet) CreateTable(anchor string, header []string) (tablemerge.DestinationTable, error) {
	col, row, err := excelize.CellNameToCoordinates(anchor)
	if err != nil {
		return nil, err
	}

	cells := make([]any, len(header))
	for i, h := range header {
		cells[i] = h
	}
	if err := s.wb.f.SetSheetRow(s.name, anchor, &cells); err != nil {
		return nil, err
	}

	d := &destination{
		f:     s.wb.f,
		sheet: s.name,
		name:  s.wb.tableName,
		col:   col,
		row:   row,
		width: len(header),
		next:  row + 1,
	}
	s.wb.pending = append(s.wb.pending, d)
	return d, nil
}

// destination tracks where the next appended row lands.
type destination struct {
	f     *excelize.File
	sheet string
	name  string
	col   int
	row   int
	width int
	next  int
}

func (d *destination) AppendRows(rows [][]any) error {
	for _, r := range rows {
		cell, err := excelize.CoordinatesToCellName(d.col, d.next)
		if err != nil {
			return err
		}
		values := append([]any(nil), r...)
		if err := d.f.SetSheetRow(d.sheet, cell, &values); err != nil {
			return fmt.Errorf("write row %d: %w", d.next, err)
		}
		d.width = max(d.width, len(r))
		d.next++
	}
	return nil
}

// extent returns the table range written so far. Excel tables need at least
// one data row, so an empty destination still spans a blank row.
func (d *destination) extent() (cellRange, bool) {
	if d.width == 0 {
		return cellRange{}, false
	}
	return cellRange{
		R1: d.row,
		C1: d.col,
		R2: max(d.next-1, d.row+1),
		C2: d.col + d.width - 1,
	}, true
}
