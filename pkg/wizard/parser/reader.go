package parser

import (
	"bytes"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Rusal0/Wizard/pkg/wizard/models"
)

// ResultKind tags the shape of a read workbook.
type ResultKind string

const (
	// KindSingleTable is a workbook with exactly one sheet.
	KindSingleTable ResultKind = "single_table"
	// KindWorkbook is a workbook with zero or several sheets.
	KindWorkbook ResultKind = "workbook"
)

// Limits bounds the resources a single read may use. Zero means unlimited.
type Limits struct {
	MaxInputBytes int64 `json:"max_input_bytes" yaml:"max_input_bytes" validate:"gte=0"`
	// MaxUnzippedBytes bounds the decompressed size of the package.
	MaxUnzippedBytes int64 `json:"max_unzipped_bytes" yaml:"max_unzipped_bytes" validate:"gte=0"`
	MaxSheets     int   `json:"max_sheets" yaml:"max_sheets" validate:"gte=0"`
	MaxCells      int   `json:"max_cells" yaml:"max_cells" validate:"gte=0"`
}

// ReadOptions configures Read.
type ReadOptions struct {
	// Password opens encrypted workbooks.
	Password string
	Limits   Limits
}

// ReadResult is the outcome of reading one workbook.
type ReadResult struct {
	Kind     ResultKind
	Workbook *models.Workbook
	// Table is the dense data range of the sole sheet of a KindSingleTable
	// result ("" when the sheet holds no values).
	Table string
	// Issues lists non-fatal problems, in sheet order.
	Issues []Issue
}

// Read parses workbook bytes into the model. Every cell holds the cached
// result stored with its formula; formulas are never evaluated.
func Read(name string, data []byte, opts ReadOptions) (*ReadResult, error) {
	if limit := opts.Limits.MaxInputBytes; limit > 0 && int64(len(data)) > limit {
		return nil, &LimitError{Limit: "bytes", Max: limit, Actual: int64(len(data))}
	}

	zr, err := sniffContainer(data, opts.Password, opts.Limits.MaxUnzippedBytes)
	if err != nil {
		return nil, err
	}

	f, err := excelize.OpenReader(bytes.NewReader(data), openOptions(opts))
	if err != nil {
		if f != nil {
			_ = f.Close()
		}
		if limitErr := unzipLimitError(err, opts.Limits.MaxUnzippedBytes); limitErr != nil {
			return nil, limitErr
		}
		if zr == nil {
			return nil, unsupported("encrypted workbook could not be decrypted with the supplied password", err)
		}
		return nil, malformed("open workbook", err)
	}
	defer f.Close()

	sheetNames := f.GetSheetList()
	if limit := opts.Limits.MaxSheets; limit > 0 && len(sheetNames) > limit {
		return nil, &LimitError{Limit: "sheets", Max: int64(limit), Actual: int64(len(sheetNames))}
	}

	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	readPart := fileParts(f)
	if zr != nil {
		readPart = zipParts(zr)
	}
	result := &ReadResult{Workbook: models.NewWorkbook(name)}
	dropped, issues := droppedObjects(readPart)
	result.Issues = append(result.Issues, issues...)
	printAreas := ExtractPrintAreas(f)

	styles := newStyleTable(f)
	budget := &cellBudget{max: opts.Limits.MaxCells}

	for _, sheetName := range sheetNames {
		sheet := result.Workbook.AddSheet(sheetName)

		cells, issues, err := ExtractCells(f, sheetName, styles, date1904, budget)
		if err != nil {
			var limitErr *LimitError
			if errors.As(err, &limitErr) {
				return nil, err
			}
			return nil, malformed(fmt.Sprintf("sheet %q", sheetName), err)
		}
		sheet.Cells = cells
		result.Issues = append(result.Issues, issues...)

		if sheet.ConditionalRules, err = ExtractConditionalRules(f, sheetName); err != nil {
			result.Issues = append(result.Issues, Issue{
				Sheet:   sheetName,
				Message: fmt.Sprintf("conditional formatting not read: %v", err),
			})
		}
		if sheet.Columns, sheet.Rows, sheet.Merges, err = ExtractLayout(f, sheetName, cells); err != nil {
			result.Issues = append(result.Issues, Issue{
				Sheet:   sheetName,
				Message: fmt.Sprintf("layout not read: %v", err),
			})
		}
		sheet.PrintAreas = printAreas[sheetName]

		sheet.Dropped = dropped[sheetName]
		sort.SliceStable(sheet.Dropped, func(i, j int) bool { return sheet.Dropped[i].Kind < sheet.Dropped[j].Kind })
		for _, obj := range sheet.Dropped {
			result.Issues = append(result.Issues, Issue{
				Sheet:   sheetName,
				Message: fmt.Sprintf("%s %q is not preserved", obj.Kind, obj.Name),
			})
		}
	}

	result.Kind = KindWorkbook
	if len(result.Workbook.Sheets) == 1 {
		result.Kind = KindSingleTable
		result.Table = DetectTable(result.Workbook.Sheets[0], DefaultTableParams())
	}
	return result, nil
}

// openOptions passes the unzipped size limit on to excelize, which enforces
// it again while inflating (the only check for decrypted packages).
func openOptions(opts ReadOptions) excelize.Options {
	open := excelize.Options{Password: opts.Password}
	if limit := opts.Limits.MaxUnzippedBytes; limit > 0 {
		open.UnzipSizeLimit = limit
		open.UnzipXMLSizeLimit = min(limit, excelize.StreamChunkSize)
	}
	return open
}

// unzipLimitError converts excelize's unzip size failures into a LimitError.
// excelize reports an exceeded limit with a plain formatted error.
func unzipLimitError(err error, limit int64) error {
	if errors.Is(err, excelize.ErrOptionsUnzipSizeLimit) || strings.Contains(err.Error(), "unzip size exceeds") {
		if limit <= 0 {
			limit = excelize.UnzipSizeLimit
		}
		return &LimitError{Limit: "unzipped_bytes", Max: limit, Actual: -1}
	}
	return nil
}

// droppedObjects lists the drawing objects of every sheet. A package whose
// drawings cannot be inspected yields a workbook-level issue instead.
func droppedObjects(readPart packageParts) (map[string][]models.DroppedObject, []Issue) {
	dropped, err := ExtractDroppedObjects(readPart)
	if err != nil {
		return nil, []Issue{{Message: fmt.Sprintf("drawings not inspected, charts and pictures may go unreported: %v", err)}}
	}
	return dropped, nil
}
