package tablemerge

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx format.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrNoTables indicates the workbook holds no table to take a header from.
var ErrNoTables = errors.New("insufficient input: no source tables")

// HostError represents a failed call into the workbook host.
type HostError struct {
	Table string
	Op    string // "list", "create_sheet", "create_table", "header", "texts", "row_count", "append"
	Err   error
}

func (e *HostError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("host error (%s): %v", e.Op, e.Err)
	}
	return fmt.Sprintf("host error in table %q (%s): %v", e.Table, e.Op, e.Err)
}

func (e *HostError) Unwrap() error {
	return e.Err
}

// NewHostError creates a new HostError.
func NewHostError(table, op string, err error) *HostError {
	return &HostError{
		Table: table,
		Op:    op,
		Err:   err,
	}
}
