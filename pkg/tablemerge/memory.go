package tablemerge

import (
	"fmt"

	"github.com/ukaji3/tablemerge-go/pkg/tablemerge/models"
)

// MemoryWorkbook is a Workbook held entirely in memory.
type MemoryWorkbook struct {
	sources []*MemoryTable
	sheets  map[string]*MemorySheet
}

// NewMemoryWorkbook creates a workbook with one source table per grid.
// Each grid carries its header as row 0.
func NewMemoryWorkbook(grids ...[][]string) *MemoryWorkbook {
	wb := &MemoryWorkbook{sheets: make(map[string]*MemorySheet)}
	for i, grid := range grids {
		wb.AddTable(fmt.Sprintf("Table%d", i+1), grid)
	}
	return wb
}

// AddTable adds a source table.
func (wb *MemoryWorkbook) AddTable(name string, grid [][]string) *MemoryTable {
	t := &MemoryTable{name: name, grid: grid}
	wb.sources = append(wb.sources, t)
	return t
}

// Tables returns the source tables in insertion order.
func (wb *MemoryWorkbook) Tables() ([]SourceTable, error) {
	tables := make([]SourceTable, 0, len(wb.sources))
	for _, t := range wb.sources {
		tables = append(tables, t)
	}
	return tables, nil
}

// CreateSheet creates a sheet, dropping any previous sheet of that name.
func (wb *MemoryWorkbook) CreateSheet(name string) (Sheet, error) {
	s := &MemorySheet{name: name}
	wb.sheets[name] = s
	return s, nil
}

// Sheet returns the sheet with the given name, if created.
func (wb *MemoryWorkbook) Sheet(name string) (*MemorySheet, bool) {
	s, ok := wb.sheets[name]
	return s, ok
}

// MemoryTable is a source table backed by a grid.
type MemoryTable struct {
	name string
	grid [][]string
}

func (t *MemoryTable) Name() string { return t.name }

// HeaderRow returns row 0, or nil for an empty grid.
func (t *MemoryTable) HeaderRow() ([]string, error) {
	if len(t.grid) == 0 {
		return nil, nil
	}
	return append([]string(nil), t.grid[0]...), nil
}

func (t *MemoryTable) Texts() ([][]string, error) {
	return t.grid, nil
}

func (t *MemoryTable) RowCount() (int, error) {
	return max(len(t.grid)-1, 0), nil
}

// MemorySheet holds at most one destination table.
type MemorySheet struct {
	name  string
	table *models.Table
}

// CreateTable creates the sheet's table with the given header.
func (s *MemorySheet) CreateTable(anchor string, header []string) (DestinationTable, error) {
	if s.table != nil {
		return nil, fmt.Errorf("sheet %q already holds a table", s.name)
	}
	s.table = &models.Table{
		Name:   s.name,
		Sheet:  s.name,
		Anchor: anchor,
		Header: append([]string(nil), header...),
	}
	return memoryDestination{s.table}, nil
}

// Table returns the destination table, or nil before CreateTable.
func (s *MemorySheet) Table() *models.Table {
	return s.table
}

type memoryDestination struct {
	table *models.Table
}

func (d memoryDestination) AppendRows(rows [][]any) error {
	d.table.AppendRows(rows)
	return nil
}

// MergeTables merges in-memory grids and returns the combined table.
func MergeTables(sources [][][]string, opts Options) (*models.Table, error) {
	m := NewMerger(opts, nil)
	wb := NewMemoryWorkbook(sources...)
	if _, err := m.Merge(wb); err != nil {
		return nil, err
	}

	sheet, _ := wb.Sheet(m.opts.SheetName)
	table := sheet.Table()
	table.Name = m.opts.TableName
	return table, nil
}
