// Package copier copies cell values, formats and sheet-level formatting
// between workbooks without sharing any mutable object between them.
package copier

import (
	"errors"
	"fmt"
	"reflect"
	"slices"

	"github.com/Rusal0/Wizard/pkg/wizard/models"
)

// ErrCellUnreadable indicates the source cell could not be read.
var ErrCellUnreadable = errors.New("cell unreadable")

// CellError is a failure to copy one cell.
type CellError struct {
	Sheet string
	Ref   string
	Err   error
}

func (e *CellError) Error() string {
	if e.Sheet == "" {
		return fmt.Sprintf("cell %s: %v", e.Ref, e.Err)
	}
	return fmt.Sprintf("cell %s!%s: %v", e.Sheet, e.Ref, e.Err)
}

func (e *CellError) Unwrap() error {
	return e.Err
}

// CopyCell copies the value and format of src into dst. dst keeps its own
// coordinates. Copying the same pair twice leaves dst as copying it once.
func CopyCell(src, dst *models.Cell) error {
	if src.Err != nil {
		return &CellError{Ref: src.Ref, Err: fmt.Errorf("%w: %w", ErrCellUnreadable, src.Err)}
	}
	format, err := CloneFormat(src.Format)
	if err != nil {
		return &CellError{Ref: src.Ref, Err: err}
	}
	dst.Value = src.Value
	dst.Format = format
	dst.Err = nil
	return nil
}

// CopyConditionalRules adds a deep copy of every conditional formatting rule
// of src to dst. Rules dst already holds are not added again.
func CopyConditionalRules(src, dst *models.Sheet) error {
	for _, rule := range src.ConditionalRules {
		if slices.ContainsFunc(dst.ConditionalRules, func(r models.ConditionalRule) bool {
			return reflect.DeepEqual(r, rule)
		}) {
			continue
		}
		copied, err := clone(&rule)
		if err != nil {
			return fmt.Errorf("conditional rule %s: %w", rule.Range, err)
		}
		dst.ConditionalRules = append(dst.ConditionalRules, *copied)
	}
	return nil
}

// CopySheetLayout replaces the column widths, row heights, merged ranges and
// print areas of dst with copies of those of src.
func CopySheetLayout(src, dst *models.Sheet) {
	dst.Columns = slices.Clone(src.Columns)
	dst.Rows = slices.Clone(src.Rows)
	dst.Merges = slices.Clone(src.Merges)
	dst.PrintAreas = slices.Clone(src.PrintAreas)
}
