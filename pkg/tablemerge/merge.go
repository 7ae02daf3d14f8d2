package tablemerge

import (
	"fmt"

	"github.com/ukaji3/tablemerge-go/pkg/tablemerge/models"
	"go.uber.org/zap"
)

// StatusOK is the acknowledgment returned by a successful merge.
const StatusOK = "OK"

// Workbook is the host holding the source tables and receiving the combined one.
type Workbook interface {
	// Tables lists the source tables in a stable order.
	Tables() ([]SourceTable, error)
	// CreateSheet creates a sheet, replacing any sheet with the same name.
	CreateSheet(name string) (Sheet, error)
}

// SourceTable is a read-only table owned by the host.
type SourceTable interface {
	Name() string
	HeaderRow() ([]string, error)
	// Texts returns every cell as display text, header included as row 0.
	Texts() ([][]string, error)
	// RowCount returns the number of data rows, header excluded.
	RowCount() (int, error)
}

// Sheet is a host sheet able to hold a new table.
type Sheet interface {
	CreateTable(anchor string, header []string) (DestinationTable, error)
}

// DestinationTable receives row batches at its end.
type DestinationTable interface {
	AppendRows(rows [][]any) error
}

// Merger combines the tables of a workbook.
type Merger struct {
	opts   Options
	logger *zap.Logger
}

// NewMerger creates a Merger. A nil logger discards all output.
func NewMerger(opts Options, logger *zap.Logger) *Merger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Merger{
		opts:   opts.withDefaults(),
		logger: logger,
	}
}

// Merge replaces the destination sheet, copies the header of the first source
// table and appends each source's summary rows in source order. Sources are
// summarized independently of one another.
func (m *Merger) Merge(wb Workbook) (*models.MergeReport, error) {
	sheet, err := wb.CreateSheet(m.opts.SheetName)
	if err != nil {
		return nil, NewHostError("", "create_sheet", err)
	}

	tables, err := wb.Tables()
	if err != nil {
		return nil, NewHostError("", "list", err)
	}
	if len(tables) == 0 {
		return nil, fmt.Errorf("merge into sheet %q: %w", m.opts.SheetName, ErrNoTables)
	}

	header, err := tables[0].HeaderRow()
	if err != nil {
		return nil, NewHostError(tables[0].Name(), "header", err)
	}
	dest, err := sheet.CreateTable(m.opts.Anchor, header)
	if err != nil {
		return nil, NewHostError(m.opts.TableName, "create_table", err)
	}

	report := &models.MergeReport{
		SheetName: m.opts.SheetName,
		Header:    append([]string(nil), header...),
		Sources:   make([]models.SourceSummary, 0, len(tables)),
	}

	for _, table := range tables {
		summary, err := m.mergeTable(table, dest)
		if err != nil {
			return nil, err
		}
		report.Sources = append(report.Sources, summary)
		report.RowsWritten += summary.Groups
	}

	report.Status = StatusOK
	m.logger.Info("Tables merged",
		zap.String("sheet", m.opts.SheetName),
		zap.Int("tables", len(tables)),
		zap.Int("rows", report.RowsWritten))

	return report, nil
}

// mergeTable summarizes one source table into dest.
func (m *Merger) mergeTable(table SourceTable, dest DestinationTable) (models.SourceSummary, error) {
	summary := models.SourceSummary{Table: table.Name()}

	texts, err := table.Texts()
	if err != nil {
		return summary, NewHostError(table.Name(), "texts", err)
	}
	rowCount, err := table.RowCount()
	if err != nil {
		return summary, NewHostError(table.Name(), "row_count", err)
	}
	summary.DataRows = rowCount

	if rowCount == 0 {
		m.logger.Debug("Skipping empty table", zap.String("table", table.Name()))
		return summary, nil
	}

	entries := Aggregate(Decode(texts), m.opts.aggregateOptions()...)
	rows := make([][]any, 0, len(entries))
	for _, e := range entries {
		if e.Value.IsNaN() {
			m.logger.Warn("Non-numeric value in group",
				zap.String("table", table.Name()),
				zap.String("name", e.Name))
		}
		rows = append(rows, e.Cells())
	}

	if err := dest.AppendRows(rows); err != nil {
		return summary, NewHostError(table.Name(), "append", err)
	}
	summary.Groups = len(rows)

	m.logger.Debug("Table merged",
		zap.String("table", table.Name()),
		zap.Int("data_rows", rowCount),
		zap.Int("groups", len(rows)))

	return summary, nil
}

// Merge combines the tables of wb with the given options and returns the
// acknowledgment literal.
func Merge(wb Workbook, opts Options) (string, error) {
	report, err := NewMerger(opts, nil).Merge(wb)
	if err != nil {
		return "", err
	}
	return report.Status, nil
}
