package parser

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Rusal0/Wizard/pkg/wizard/models"
)

// TableDetectionParams holds parameters for table detection.
type TableDetectionParams struct {
	DensityMin       float64
	MinNonemptyCells int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableDetectionParams {
	return TableDetectionParams{
		DensityMin:       0.04,
		MinNonemptyCells: 1,
	}
}

// DetectTable returns the bounding range (e.g. "A1:D10") of the valued cells
// of a sheet, or "" when the sheet holds too little data to form a table.
func DetectTable(sheet *models.Sheet, params TableDetectionParams) string {
	minRow, maxRow, minCol, maxCol, nonEmpty := findDataBounds(sheet.Cells)
	if nonEmpty == 0 || nonEmpty < params.MinNonemptyCells {
		return ""
	}

	totalCells := (maxRow - minRow + 1) * (maxCol - minCol + 1)
	if float64(nonEmpty)/float64(totalCells) < params.DensityMin {
		return ""
	}

	startCell, _ := excelize.CoordinatesToCellName(minCol, minRow)
	endCell, _ := excelize.CoordinatesToCellName(maxCol, maxRow)
	return fmt.Sprintf("%s:%s", startCell, endCell)
}

// findDataBounds finds the bounding box of cells holding a value.
func findDataBounds(cells []*models.Cell) (minRow, maxRow, minCol, maxCol, count int) {
	for _, c := range cells {
		if c.Value.IsEmpty() {
			continue
		}
		if count == 0 {
			minRow, maxRow, minCol, maxCol = c.Row, c.Row, c.Col, c.Col
		}
		minRow, maxRow = min(minRow, c.Row), max(maxRow, c.Row)
		minCol, maxCol = min(minCol, c.Col), max(maxCol, c.Col)
		count++
	}
	return
}
