// Package output renders workbooks, archives and run reports to bytes.
package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Rusal0/Wizard/pkg/wizard/models"
)

// ErrNoSheets indicates an attempt to serialize a workbook without sheets.
var ErrNoSheets = errors.New("workbook has no sheets")

// TitleError reports a sheet title the serializer refused.
type TitleError struct {
	Title string
	Err   error
}

func (e *TitleError) Error() string {
	return fmt.Sprintf("sheet %q: %v", e.Title, e.Err)
}

func (e *TitleError) Unwrap() error {
	return e.Err
}

// Serialize renders a workbook as xlsx bytes. Cell values are written as
// constants; formulas are never written.
func Serialize(wb *models.Workbook) ([]byte, error) {
	if len(wb.Sheets) == 0 {
		return nil, ErrNoSheets
	}
	if err := validateTitles(wb); err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	w := &xlsxWriter{f: f, styles: make(map[string]int)}
	for i, sheet := range wb.Sheets {
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), sheet.Title); err != nil {
				return nil, &TitleError{Title: sheet.Title, Err: err}
			}
		} else if _, err := f.NewSheet(sheet.Title); err != nil {
			return nil, &TitleError{Title: sheet.Title, Err: err}
		}
		if err := w.writeSheet(sheet); err != nil {
			return nil, fmt.Errorf("write sheet %q: %w", sheet.Title, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// validateTitles checks every title and their uniqueness. Sheet names are
// compared case-insensitively, as spreadsheet applications do.
func validateTitles(wb *models.Workbook) error {
	seen := make(map[string]bool, len(wb.Sheets))
	for _, sheet := range wb.Sheets {
		if err := models.ValidateTitle(sheet.Title); err != nil {
			return &TitleError{Title: sheet.Title, Err: err}
		}
		key := strings.ToLower(sheet.Title)
		if seen[key] {
			return &TitleError{Title: sheet.Title, Err: fmt.Errorf("%w: duplicate title", models.ErrSheetTitleInvalid)}
		}
		seen[key] = true
	}
	return nil
}

type xlsxWriter struct {
	f *excelize.File
	// styles maps the canonical encoding of a format to its style id.
	styles map[string]int
}

func (w *xlsxWriter) writeSheet(sheet *models.Sheet) error {
	maxRow, maxCol := 0, 0
	for _, cell := range sheet.Cells {
		if err := w.writeCell(sheet.Title, cell); err != nil {
			return fmt.Errorf("cell %s: %w", cell.Ref, err)
		}
		maxRow, maxCol = max(maxRow, cell.Row), max(maxCol, cell.Col)
	}
	if maxRow > 0 {
		end, err := excelize.CoordinatesToCellName(maxCol, maxRow)
		if err != nil {
			return err
		}
		if err := w.f.SetSheetDimension(sheet.Title, "A1:"+end); err != nil {
			return err
		}
	}

	if err := w.writeConditionalRules(sheet); err != nil {
		return fmt.Errorf("conditional formats: %w", err)
	}
	if err := w.writeLayout(sheet); err != nil {
		return fmt.Errorf("layout: %w", err)
	}
	return w.writePrintAreas(sheet)
}

func (w *xlsxWriter) writeCell(sheetName string, cell *models.Cell) error {
	var err error
	v := cell.Value
	switch v.Kind {
	case models.KindNumber:
		err = w.f.SetCellFloat(sheetName, cell.Ref, v.Number, -1, 64)
	case models.KindDateTime:
		err = w.f.SetCellFloat(sheetName, cell.Ref, v.Serial, -1, 64)
	case models.KindText, models.KindError:
		err = w.f.SetCellStr(sheetName, cell.Ref, v.Text)
	case models.KindBool:
		err = w.f.SetCellBool(sheetName, cell.Ref, v.Bool)
	}
	if err != nil {
		return err
	}

	if cell.Format.IsZero() {
		return nil
	}
	styleID, err := w.styleID(cell.Format)
	if err != nil {
		return err
	}
	return w.f.SetCellStyle(sheetName, cell.Ref, cell.Ref, styleID)
}

// styleID registers a format once per file and returns its style id.
func (w *xlsxWriter) styleID(format models.Format) (int, error) {
	key, err := json.Marshal(format)
	if err != nil {
		return 0, err
	}
	if id, ok := w.styles[string(key)]; ok {
		return id, nil
	}
	id, err := w.f.NewStyle(StyleFromFormat(format))
	if err != nil {
		return 0, err
	}
	w.styles[string(key)] = id
	return id, nil
}

func (w *xlsxWriter) writeConditionalRules(sheet *models.Sheet) error {
	var ranges []string
	byRange := make(map[string][]excelize.ConditionalFormatOptions)
	for _, rule := range sheet.ConditionalRules {
		opts := optionsFromRule(rule)
		if rule.Style != nil {
			id, err := w.f.NewConditionalStyle(StyleFromFormat(*rule.Style))
			if err != nil {
				return err
			}
			opts.Format = &id
		}
		if _, ok := byRange[rule.Range]; !ok {
			ranges = append(ranges, rule.Range)
		}
		byRange[rule.Range] = append(byRange[rule.Range], opts)
	}
	for _, rangeRef := range ranges {
		if err := w.f.SetConditionalFormat(sheet.Title, rangeRef, byRange[rangeRef]); err != nil {
			return fmt.Errorf("%s: %w", rangeRef, err)
		}
	}
	return nil
}

func (w *xlsxWriter) writeLayout(sheet *models.Sheet) error {
	for _, col := range sheet.Columns {
		name, err := excelize.ColumnNumberToName(col.Col)
		if err != nil {
			return err
		}
		if err := w.f.SetColWidth(sheet.Title, name, name, col.Width); err != nil {
			return err
		}
	}
	for _, row := range sheet.Rows {
		if err := w.f.SetRowHeight(sheet.Title, row.Row, row.Height); err != nil {
			return err
		}
	}
	for _, m := range sheet.Merges {
		if err := w.f.MergeCell(sheet.Title, m.Start, m.End); err != nil {
			return err
		}
	}
	return nil
}

// writePrintAreas writes all print areas of a sheet as one sheet-scoped
// defined name.
func (w *xlsxWriter) writePrintAreas(sheet *models.Sheet) error {
	if len(sheet.PrintAreas) == 0 {
		return nil
	}
	refs := make([]string, 0, len(sheet.PrintAreas))
	for _, area := range sheet.PrintAreas {
		ref, err := area.Reference(sheet.Title)
		if err != nil {
			return fmt.Errorf("print area: %w", err)
		}
		refs = append(refs, ref)
	}
	return w.f.SetDefinedName(&excelize.DefinedName{
		Name:     models.PrintAreaDefinedName,
		RefersTo: strings.Join(refs, ","),
		Scope:    sheet.Title,
	})
}
