// Package tablemerge combines the tables of a workbook into one summary table.
package tablemerge

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultSheetName is the sheet that receives the combined table.
	DefaultSheetName = "Combined"
	// DefaultAnchor is the top-left cell of the combined table.
	DefaultAnchor = "A1"
	// DefaultTableName is the name given to the combined table object.
	DefaultTableName = "Combined"
)

// Options configures a merge run.
type Options struct {
	// SheetName is the destination sheet. An existing sheet with this name is replaced.
	SheetName string `yaml:"sheet"`
	// Anchor is the top-left cell address of the destination table.
	Anchor string `yaml:"anchor"`
	// TableName names the destination table object on hosts that support it.
	TableName string `yaml:"table_name"`
	// NameColumn is the header holding the grouping name.
	NameColumn string `yaml:"name_column"`
	// ValueColumn is the header holding the summed value.
	ValueColumn string `yaml:"value_column"`
	// MaxDistance enables near-duplicate matching when greater than zero.
	MaxDistance int `yaml:"max_distance"`
	// DetectTables lets hosts without table objects fall back to region detection.
	// If nil, defaults to true.
	DetectTables *bool `yaml:"detect_tables"`
}

// DefaultOptions returns default merge options.
func DefaultOptions() Options {
	return Options{
		SheetName:   DefaultSheetName,
		Anchor:      DefaultAnchor,
		TableName:   DefaultTableName,
		NameColumn:  ColumnName,
		ValueColumn: ColumnValue,
	}
}

// ShouldDetectTables returns whether table regions are detected when a
// workbook carries no table objects.
func (o Options) ShouldDetectTables() bool {
	if o.DetectTables != nil {
		return *o.DetectTables
	}
	return true
}

// withDefaults fills empty fields from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.SheetName == "" {
		o.SheetName = d.SheetName
	}
	if o.Anchor == "" {
		o.Anchor = d.Anchor
	}
	if o.TableName == "" {
		o.TableName = d.TableName
	}
	if o.NameColumn == "" {
		o.NameColumn = d.NameColumn
	}
	if o.ValueColumn == "" {
		o.ValueColumn = d.ValueColumn
	}
	if o.MaxDistance < 0 {
		o.MaxDistance = 0
	}
	return o
}

// aggregateOptions translates the options into aggregator settings.
func (o Options) aggregateOptions() []AggregateOption {
	return []AggregateOption{
		WithColumns(o.NameColumn, o.ValueColumn),
		WithMaxDistance(o.MaxDistance),
	}
}

// LoadOptions reads options from a YAML file on top of the defaults.
// A missing file yields the defaults.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return opts, nil
		}
		return opts, fmt.Errorf("failed to read options: %w", err)
	}

	if err := yaml.Unmarshal(data, &opts); err != nil {
		return opts, fmt.Errorf("failed to parse options: %w", err)
	}

	return opts.withDefaults(), nil
}
