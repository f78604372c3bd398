package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Rusal0/Wizard/pkg/wizard/models"
)

// Issue is a non-fatal problem found while reading a workbook.
type Issue struct {
	Sheet   string
	Cell    string
	Message string
}

// maxBlankScanArea caps the number of grid positions scanned for styled blank
// cells in one sheet, whatever the cell limit.
const maxBlankScanArea = 1 << 22

// cellBudget enforces the cumulative cell limit of one read.
type cellBudget struct {
	max  int
	used int
}

func (b *cellBudget) take() error {
	b.used++
	if b.max > 0 && b.used > b.max {
		return &LimitError{Limit: "cells", Max: int64(b.max), Actual: int64(b.used)}
	}
	return nil
}

// ExtractCells extracts the occupied cells of a sheet in row-major order. A
// cell is occupied when it holds a value, a formula or a non-default style.
// Cells whose style cannot be resolved are returned with Err set.
func ExtractCells(f *excelize.File, sheetName string, styles *styleTable, date1904 bool, budget *cellBudget) ([]*models.Cell, []Issue, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, nil, err
	}

	maxRow, maxCol := len(rows), 0
	for _, row := range rows {
		if len(row) > maxCol {
			maxCol = len(row)
		}
	}
	if dim, err := f.GetSheetDimension(sheetName); err == nil && dim != "" {
		parts := strings.Split(dim, ":")
		if col, row, err := excelize.CellNameToCoordinates(parts[len(parts)-1]); err == nil {
			maxRow, maxCol = max(maxRow, row), max(maxCol, col)
		}
	}

	var issues []Issue
	// Styled blank cells can only be found by probing every position of the
	// used range; skip that when the range alone would blow the cell limit
	// or the fixed scan cap, and walk only the positions that hold values.
	area := maxRow * maxCol
	scanBlanks := area <= maxBlankScanArea && (budget.max <= 0 || area <= budget.max)
	if !scanBlanks {
		issues = append(issues, Issue{
			Sheet:   sheetName,
			Message: fmt.Sprintf("used range %dx%d too large to scan; formatting of blank cells is not preserved", maxRow, maxCol),
		})
		maxRow = len(rows)
	}

	var result []*models.Cell
	for rowIdx := 1; rowIdx <= maxRow; rowIdx++ {
		lastCol := maxCol
		if !scanBlanks {
			lastCol = len(rows[rowIdx-1])
		}
		for colIdx := 1; colIdx <= lastCol; colIdx++ {
			raw := ""
			if rowIdx <= len(rows) && colIdx <= len(rows[rowIdx-1]) {
				raw = rows[rowIdx-1][colIdx-1]
			}
			if raw == "" && !scanBlanks {
				continue
			}

			ref, err := excelize.CoordinatesToCellName(colIdx, rowIdx)
			if err != nil {
				return nil, issues, err
			}
			styleID, styleErr := f.GetCellStyle(sheetName, ref)
			formula, _ := f.GetCellFormula(sheetName, ref)
			if raw == "" && formula == "" && styleID == 0 && styleErr == nil {
				continue
			}
			if err := budget.take(); err != nil {
				return nil, issues, err
			}

			cell := &models.Cell{Ref: ref, Row: rowIdx, Col: colIdx}
			if styleErr == nil {
				cell.Format, styleErr = styles.format(styleID)
			}
			if styleErr != nil {
				cell.Err = fmt.Errorf("read format of %s: %w", ref, styleErr)
			}

			cellType, _ := f.GetCellType(sheetName, ref)
			cell.Value = parseValue(raw, cellType, cell.Format.NumberFormat, date1904)
			cell.Value.Formula = formula

			if formula != "" && raw == "" {
				msg := "formula has no cached value; written as empty"
				if refs := ReferencedSheets(formula); len(refs) > 0 {
					msg = fmt.Sprintf("%s (references %s)", msg, strings.Join(refs, ", "))
				}
				issues = append(issues, Issue{Sheet: sheetName, Cell: ref, Message: msg})
			}
			result = append(result, cell)
		}
	}

	return result, issues, nil
}

// parseValue builds a typed value from a raw cell string.
func parseValue(raw string, cellType excelize.CellType, nf models.NumberFormat, date1904 bool) models.Value {
	if raw == "" {
		return models.Value{Kind: models.KindEmpty}
	}
	switch cellType {
	case excelize.CellTypeBool:
		return models.Value{Kind: models.KindBool, Bool: raw == "1" || strings.EqualFold(raw, "true")}
	case excelize.CellTypeError:
		return models.Value{Kind: models.KindError, Text: raw}
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula, excelize.CellTypeDate:
		return models.Value{Kind: models.KindText, Text: raw}
	}

	// Error results of formulas are stored without a cell type on some writers.
	if strings.HasPrefix(raw, "#") {
		return models.Value{Kind: models.KindError, Text: raw}
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return models.Value{Kind: models.KindText, Text: raw}
	}
	if IsDateFormat(nf) {
		v := models.Value{Kind: models.KindDateTime, Serial: f}
		if t, err := excelize.ExcelDateToTime(f, date1904); err == nil {
			v.Time = t
		}
		return v
	}
	return models.Value{Kind: models.KindNumber, Number: f}
}
