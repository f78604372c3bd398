package parser

import (
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/Rusal0/Wizard/pkg/wizard/models"
)

// minLayoutColumns is the number of leading columns always inspected for an
// explicit width, even when they hold no data.
const minLayoutColumns = 26

// ExtractLayout extracts merged ranges and the column widths and row heights
// that differ from the sheet defaults, within the used range of the sheet.
func ExtractLayout(f *excelize.File, sheetName string, cells []*models.Cell) (cols []models.ColumnWidth, rows []models.RowHeight, merges []models.MergedRange, err error) {
	maxRow, maxCol := 0, minLayoutColumns
	for _, c := range cells {
		maxRow, maxCol = max(maxRow, c.Row), max(maxCol, c.Col)
	}

	mergeCells, err := f.GetMergeCells(sheetName, true)
	if err != nil {
		return nil, nil, nil, err
	}
	for _, mc := range mergeCells {
		merges = append(merges, models.MergedRange{Start: mc.GetStartAxis(), End: mc.GetEndAxis()})
		if col, row, err := excelize.CellNameToCoordinates(mc.GetEndAxis()); err == nil {
			maxRow, maxCol = max(maxRow, row), max(maxCol, col)
		}
	}
	sort.Slice(merges, func(i, j int) bool { return merges[i].Start < merges[j].Start })

	lastCol, err := excelize.ColumnNumberToName(excelize.MaxColumns)
	if err != nil {
		return nil, nil, nil, err
	}
	defaultWidth, err := f.GetColWidth(sheetName, lastCol)
	if err != nil {
		return nil, nil, nil, err
	}
	for col := 1; col <= maxCol; col++ {
		name, err := excelize.ColumnNumberToName(col)
		if err != nil {
			return nil, nil, nil, err
		}
		width, err := f.GetColWidth(sheetName, name)
		if err != nil {
			return nil, nil, nil, err
		}
		if width != defaultWidth {
			cols = append(cols, models.ColumnWidth{Col: col, Width: width})
		}
	}

	defaultHeight, err := f.GetRowHeight(sheetName, excelize.TotalRows)
	if err != nil {
		return nil, nil, nil, err
	}
	for row := 1; row <= maxRow; row++ {
		height, err := f.GetRowHeight(sheetName, row)
		if err != nil {
			return nil, nil, nil, err
		}
		if height != defaultHeight {
			rows = append(rows, models.RowHeight{Row: row, Height: height})
		}
	}
	return cols, rows, merges, nil
}
