package xlsx

import (
	"github.com/xuri/excelize/v2"
)

// TableDetectionParams holds parameters for table detection.
type TableDetectionParams struct {
	// DensityMin is the minimum share of non-empty cells in the bounding box.
	DensityMin float64
	// CoverageMin is the minimum share of non-empty cells in the header row.
	CoverageMin float64
	// MinNonemptyCells is the minimum number of non-empty cells.
	MinNonemptyCells int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableDetectionParams {
	return TableDetectionParams{
		DensityMin:       0.04,
		CoverageMin:      0.2,
		MinNonemptyCells: 3,
	}
}

// DetectTable finds the table-like region of a sheet that has no table
// objects and returns it in range notation (e.g., "A1:D10"), or "" when the
// sheet holds nothing table-like. The region's first row is its header.
func DetectTable(f *excelize.File, sheetName string, params TableDetectionParams) (string, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return "", err
	}

	rng, ok := detectRegion(rows, params)
	if !ok {
		return "", nil
	}
	return rng.String(), nil
}

// detectRegion returns the bounding box of non-empty cells when it is dense
// enough to be a table.
func detectRegion(rows [][]string, params TableDetectionParams) (cellRange, bool) {
	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return cellRange{}, false
	}

	totalCells := (maxRow - minRow + 1) * (maxCol - minCol + 1)
	nonEmptyCells := countNonEmptyCells(rows, minRow, maxRow, minCol, maxCol)
	if nonEmptyCells < params.MinNonemptyCells {
		return cellRange{}, false
	}

	density := float64(nonEmptyCells) / float64(totalCells)
	if density < params.DensityMin {
		return cellRange{}, false
	}

	headerCells := countNonEmptyCells(rows, minRow, minRow, minCol, maxCol)
	coverage := float64(headerCells) / float64(maxCol-minCol+1)
	if coverage < params.CoverageMin {
		return cellRange{}, false
	}

	return cellRange{
		R1: minRow + 1,
		C1: minCol + 1,
		R2: maxRow + 1,
		C2: maxCol + 1,
	}, true
}

// findDataBounds finds the 0-based bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 {
				minRow = rowIdx
			}
			maxRow = rowIdx
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

// countNonEmptyCells counts non-empty cells within bounds.
func countNonEmptyCells(rows [][]string, minRow, maxRow, minCol, maxCol int) int {
	count := 0
	for rowIdx := minRow; rowIdx <= maxRow && rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		for colIdx := minCol; colIdx <= maxCol && colIdx < len(row); colIdx++ {
			if row[colIdx] != "" {
				count++
			}
		}
	}
	return count
}
