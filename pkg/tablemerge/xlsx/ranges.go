// Package xlsx provides an excelize-backed workbook host for table merging.
package xlsx

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// cellRange holds 1-based, inclusive cell coordinate bounds.
type cellRange struct {
	R1, C1 int
	R2, C2 int
}

// Height returns the number of rows covered, header included.
func (r cellRange) Height() int {
	return r.R2 - r.R1 + 1
}

// Width returns the number of columns covered.
func (r cellRange) Width() int {
	return r.C2 - r.C1 + 1
}

func (r cellRange) String() string {
	start, _ := excelize.CoordinatesToCellName(r.C1, r.R1)
	end, _ := excelize.CoordinatesToCellName(r.C2, r.R2)
	return start + ":" + end
}

// parseRange parses a range string like $A$1:$D$10 or 'Sheet'!A1:D10.
func parseRange(ref string) (cellRange, error) {
	// Drop any sheet qualifier
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		ref = ref[idx+1:]
	}
	ref = strings.ReplaceAll(ref, "$", "")

	parts := strings.Split(ref, ":")
	if len(parts) != 2 {
		return cellRange{}, fmt.Errorf("invalid range %q", ref)
	}

	startCol, startRow, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return cellRange{}, err
	}
	endCol, endRow, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return cellRange{}, err
	}

	return cellRange{
		R1: min(startRow, endRow),
		C1: min(startCol, endCol),
		R2: max(startRow, endRow),
		C2: max(startCol, endCol),
	}, nil
}
