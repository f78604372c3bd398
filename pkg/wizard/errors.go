package wizard

import (
	"errors"
	"fmt"

	"github.com/Rusal0/Wizard/pkg/wizard/copier"
	"github.com/Rusal0/Wizard/pkg/wizard/models"
	"github.com/Rusal0/Wizard/pkg/wizard/output"
	"github.com/Rusal0/Wizard/pkg/wizard/parser"
)

var (
	// ErrMalformedWorkbook indicates input bytes that are not a readable workbook.
	ErrMalformedWorkbook = parser.ErrMalformedWorkbook
	// ErrUnsupportedFormat indicates a recognised but unsupported workbook variant.
	ErrUnsupportedFormat = parser.ErrUnsupportedFormat
	// ErrResourceLimitExceeded indicates an input above a configured limit.
	ErrResourceLimitExceeded = parser.ErrResourceLimitExceeded
	// ErrSheetTitleInvalid indicates a title that is empty or illegal after sanitising.
	ErrSheetTitleInvalid = models.ErrSheetTitleInvalid
	// ErrCellUnreadable indicates a source cell that could not be read.
	ErrCellUnreadable = copier.ErrCellUnreadable
	// ErrNoSheets indicates a workbook without sheets.
	ErrNoSheets = output.ErrNoSheets
)

// ErrEmptyMerge indicates a merge in which no input contributed a sheet.
var ErrEmptyMerge = errors.New("merge produced no sheets")

// InputError is a failure to read one input.
type InputError struct {
	Input string
	Err   error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("input %q: %v", e.Input, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// MarshalText renders the error for reports.
func (e *InputError) MarshalText() ([]byte, error) {
	return []byte(e.Error()), nil
}

// SheetError is a failure to process one sheet.
type SheetError struct {
	Input     string
	Sheet     string
	Component string // "read", "copy", "title", "serialize"
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q of %q (%s): %v", e.Sheet, e.Input, e.Component, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(input, sheet, component string, err error) *SheetError {
	return &SheetError{
		Input:     input,
		Sheet:     sheet,
		Component: component,
		Err:       err,
	}
}

// Warning is a non-fatal problem reported alongside a successful result.
type Warning struct {
	Input   string `json:"input"`
	Sheet   string `json:"sheet,omitempty"`
	Cell    string `json:"cell,omitempty"`
	Message string `json:"message"`
	// Err is the underlying error, if any.
	Err error `json:"-"`
}

func (w Warning) String() string {
	switch {
	case w.Cell != "":
		return fmt.Sprintf("%s: %s!%s: %s", w.Input, w.Sheet, w.Cell, w.Message)
	case w.Sheet != "":
		return fmt.Sprintf("%s: %s: %s", w.Input, w.Sheet, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Input, w.Message)
}
