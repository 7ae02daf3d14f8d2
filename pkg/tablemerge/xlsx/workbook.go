package xlsx

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ukaji3/tablemerge-go/pkg/tablemerge"
	"github.com/xuri/excelize/v2"
)

// Workbook adapts an excelize file to tablemerge.Workbook.
type Workbook struct {
	f         *excelize.File
	bookName  string
	tableName string
	detect    bool
	params    TableDetectionParams
	pending   []*destination
}

// Open opens an xlsx file as a workbook host.
func Open(path string, opts tablemerge.Options) (*Workbook, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", tablemerge.ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", tablemerge.ErrInvalidFormat, err)
	}

	wb := New(f, opts)
	wb.bookName = filepath.Base(path)
	return wb, nil
}

// New wraps an already open excelize file.
func New(f *excelize.File, opts tablemerge.Options) *Workbook {
	tableName := opts.TableName
	if tableName == "" {
		tableName = tablemerge.DefaultTableName
	}
	return &Workbook{
		f:         f,
		tableName: tableName,
		detect:    opts.ShouldDetectTables(),
		params:    DefaultTableParams(),
	}
}

// BookName returns the file name the workbook was opened from.
func (wb *Workbook) BookName() string {
	return wb.bookName
}

// Tables lists the Excel tables of every sheet in sheet order. A workbook
// without table objects falls back to one detected region per sheet.
func (wb *Workbook) Tables() ([]tablemerge.SourceTable, error) {
	var tables []tablemerge.SourceTable
	sheets := wb.f.GetSheetList()

	for _, sheetName := range sheets {
		defs, err := wb.f.GetTables(sheetName)
		if err != nil {
			return nil, err
		}
		for _, def := range defs {
			rng, err := parseRange(def.Range)
			if err != nil {
				return nil, fmt.Errorf("table %q: %w", def.Name, err)
			}
			tables = append(tables, &sourceTable{f: wb.f, sheet: sheetName, name: def.Name, rng: rng})
		}
	}

	if len(tables) > 0 || !wb.detect {
		return tables, nil
	}

	for _, sheetName := range sheets {
		ref, err := DetectTable(wb.f, sheetName, wb.params)
		if err != nil {
			return nil, err
		}
		if ref == "" {
			continue
		}
		rng, err := parseRange(ref)
		if err != nil {
			return nil, err
		}
		tables = append(tables, &sourceTable{f: wb.f, sheet: sheetName, name: sheetName, rng: rng})
	}

	return tables, nil
}

// CreateSheet deletes the named sheet if present and creates it afresh.
func (wb *Workbook) CreateSheet(name string) (tablemerge.Sheet, error) {
	idx, err := wb.f.GetSheetIndex(name)
	if err != nil {
		return nil, err
	}
	if idx != -1 {
		// DeleteSheet leaves the sheet's table definitions behind
		defs, err := wb.f.GetTables(name)
		if err != nil {
			return nil, err
		}
		for _, def := range defs {
			if err := wb.f.DeleteTable(def.Name); err != nil {
				return nil, fmt.Errorf("delete table %q: %w", def.Name, err)
			}
		}
		if err := wb.f.DeleteSheet(name); err != nil {
			return nil, err
		}
		// excelize keeps the last remaining sheet
		if idx, _ := wb.f.GetSheetIndex(name); idx != -1 {
			return nil, fmt.Errorf("cannot replace sheet %q: it is the only sheet", name)
		}
	}
	wb.dropPending(name)

	if _, err := wb.f.NewSheet(name); err != nil {
		return nil, err
	}
	return &sheet{wb: wb, name: name}, nil
}

// Save writes the workbook back to the file it was opened from.
func (wb *Workbook) Save() error {
	if err := wb.flush(); err != nil {
		return err
	}
	return wb.f.Save()
}

// SaveAs writes the workbook to path.
func (wb *Workbook) SaveAs(path string) error {
	if err := wb.flush(); err != nil {
		return err
	}
	return wb.f.SaveAs(path)
}

// Close closes the underlying file.
func (wb *Workbook) Close() error {
	return wb.f.Close()
}

// flush registers a table object over every destination written so far.
func (wb *Workbook) flush() error {
	for _, d := range wb.pending {
		rng, ok := d.extent()
		if !ok {
			continue
		}
		name, err := wb.freeTableName(d.name)
		if err != nil {
			return err
		}
		if err := wb.f.AddTable(d.sheet, &excelize.Table{
			Range: rng.String(),
			Name:  name,
		}); err != nil {
			return fmt.Errorf("add table %q: %w", name, err)
		}
	}
	wb.pending = nil
	return nil
}

// freeTableName returns name, or name with the first "_N" suffix (N >= 2)
// not taken by a table anywhere in the workbook. Table names are
// case-insensitive.
func (wb *Workbook) freeTableName(name string) (string, error) {
	taken := make(map[string]bool)
	for _, sheetName := range wb.f.GetSheetList() {
		defs, err := wb.f.GetTables(sheetName)
		if err != nil {
			return "", err
		}
		for _, def := range defs {
			taken[strings.ToLower(def.Name)] = true
		}
	}

	candidate := name
	for n := 2; taken[strings.ToLower(candidate)]; n++ {
		candidate = fmt.Sprintf("%s_%d", name, n)
	}
	return candidate, nil
}

func (wb *Workbook) dropPending(sheetName string) {
	kept := wb.pending[:0]
	for _, d := range wb.pending {
		if d.sheet != sheetName {
			kept = append(kept, d)
		}
	}
	wb.pending = kept
}
