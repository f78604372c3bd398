package wizard

import (
	"errors"

	"github.com/Rusal0/Wizard/pkg/wizard/copier"
	"github.com/Rusal0/Wizard/pkg/wizard/models"
)

// copySheet copies every occupied cell of src into dst at the same
// coordinates, then the sheet-level formatting. Under FailSheet the first
// cell failure aborts the sheet; under SkipCell the cell is left empty and
// reported.
func copySheet(input string, src, dst *models.Sheet, opts Options) ([]Warning, error) {
	var warnings []Warning
	for _, cell := range src.Cells {
		target, err := dst.Ensure(cell.Col, cell.Row)
		if err != nil {
			return nil, NewSheetError(input, src.Title, "copy", err)
		}
		err = copier.CopyCell(cell, target)
		if err == nil {
			continue
		}

		var cellErr *copier.CellError
		if errors.As(err, &cellErr) {
			cellErr.Sheet = src.Title
		}
		if opts.cellFailure() == FailSheet {
			return nil, NewSheetError(input, src.Title, "copy", err)
		}
		dst.Remove(target.Ref)
		warnings = append(warnings, Warning{
			Input:   input,
			Sheet:   src.Title,
			Cell:    cell.Ref,
			Message: "cell skipped: " + err.Error(),
			Err:     err,
		})
	}

	if opts.ShouldIncludeConditionalFormats() {
		if err := copier.CopyConditionalRules(src, dst); err != nil {
			return nil, NewSheetError(input, src.Title, "copy", err)
		}
	}
	if opts.ShouldIncludeLayout() {
		copier.CopySheetLayout(src, dst)
	}
	return warnings, nil
}

// sheetWarning reports a dropped sheet.
func sheetWarning(err *SheetError) Warning {
	return Warning{
		Input:   err.Input,
		Sheet:   err.Sheet,
		Message: "sheet skipped: " + err.Error(),
		Err:     err,
	}
}
