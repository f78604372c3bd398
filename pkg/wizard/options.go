// Package wizard splits workbooks into one file per sheet and merges several
// workbooks into one, preserving cell values and formatting.
package wizard

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/Rusal0/Wizard/pkg/wizard/parser"
)

// CellFailurePolicy decides what happens to a sheet when one of its cells
// cannot be copied.
type CellFailurePolicy string

const (
	// FailSheet drops the whole sheet from the output and reports it.
	FailSheet CellFailurePolicy = "fail_sheet"
	// SkipCell leaves the offending cell empty and reports it.
	SkipCell CellFailurePolicy = "skip_cell"
)

// Limits bounds the resources used for one input. Zero means unlimited.
type Limits = parser.Limits

// Options configures Split and Merge.
type Options struct {
	// CellFailure is the per-cell copy failure policy. Empty means FailSheet.
	CellFailure CellFailurePolicy `json:"cell_failure" yaml:"cell_failure" validate:"omitempty,oneof=fail_sheet skip_cell"`
	// IncludeConditionalFormats specifies whether conditional formatting
	// rules are copied. If nil, defaults to true.
	IncludeConditionalFormats *bool `json:"include_conditional_formats" yaml:"include_conditional_formats"`
	// IncludeLayout specifies whether column widths, row heights, merged
	// ranges and print areas are copied. If nil, defaults to true.
	IncludeLayout *bool `json:"include_layout" yaml:"include_layout"`
	// SingleTableUsesSourceName specifies whether the sheet of a single-sheet
	// merge input is titled after the input's name. If nil, defaults to true.
	SingleTableUsesSourceName *bool `json:"single_table_uses_source_name" yaml:"single_table_uses_source_name"`
	// Limits guards against oversized inputs.
	Limits Limits `json:"limits" yaml:"limits"`
	// Password opens encrypted workbooks.
	Password string `json:"password" yaml:"password"`
	// Logger receives progress and warnings. If nil, the standard logrus
	// logger is used.
	Logger logrus.FieldLogger `json:"-" yaml:"-" validate:"-"`
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{
		CellFailure: FailSheet,
		Limits: Limits{
			MaxInputBytes:    64 << 20,
			MaxUnzippedBytes: 512 << 20,
			MaxSheets:        256,
			MaxCells:         2_000_000,
		},
	}
}

// Validate checks the options for out-of-range values.
func (o Options) Validate() error {
	if err := validator.New().Struct(o); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}

// ShouldIncludeConditionalFormats returns whether to copy conditional formats.
func (o Options) ShouldIncludeConditionalFormats() bool {
	if o.IncludeConditionalFormats != nil {
		return *o.IncludeConditionalFormats
	}
	return true
}

// ShouldIncludeLayout returns whether to copy the sheet layout.
func (o Options) ShouldIncludeLayout() bool {
	if o.IncludeLayout != nil {
		return *o.IncludeLayout
	}
	return true
}

// ShouldUseSourceNameForSingleTable returns whether a single-sheet merge input
// is titled after the input.
func (o Options) ShouldUseSourceNameForSingleTable() bool {
	if o.SingleTableUsesSourceName != nil {
		return *o.SingleTableUsesSourceName
	}
	return true
}

func (o Options) cellFailure() CellFailurePolicy {
	if o.CellFailure == "" {
		return FailSheet
	}
	return o.CellFailure
}

func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	return logrus.StandardLogger()
}

func (o Options) readOptions() parser.ReadOptions {
	return parser.ReadOptions{Password: o.Password, Limits: o.Limits}
}
