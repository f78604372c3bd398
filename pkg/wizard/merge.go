package wizard

import (
	"errors"
	"fmt"

	"github.com/Rusal0/Wizard/pkg/wizard/models"
	"github.com/Rusal0/Wizard/pkg/wizard/output"
	"github.com/Rusal0/Wizard/pkg/wizard/parser"
)

// MergedWorkbookName is the source name of a merged workbook.
const MergedWorkbookName = "merged"

// MergeResult is the outcome of Merge.
type MergeResult struct {
	// Workbook is the merged workbook, nil when no input contributed a sheet.
	Workbook []byte `json:"-"`
	// Sheets are the merged sheet titles in output order.
	Sheets []string `json:"sheets"`
	// Errors holds one entry per input that could not be read.
	Errors   []*InputError `json:"errors"`
	Warnings []Warning     `json:"warnings"`
}

// Merge reads the inputs in order and combines all their sheets into one
// workbook. An input that cannot be read is reported in Errors and skipped;
// it never aborts the merge.
func Merge(inputs []Input, opts Options) (*MergeResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	log := opts.logger()

	result := &MergeResult{}
	var sources []*parser.ReadResult
	for _, in := range inputs {
		source, warnings, err := read(in, opts)
		if err != nil {
			var inputErr *InputError
			if !errors.As(err, &inputErr) {
				inputErr = &InputError{Input: in.Name, Err: err}
			}
			log.WithField("input", in.Name).WithError(inputErr.Err).Error("input skipped")
			result.Errors = append(result.Errors, inputErr)
			continue
		}
		source.Workbook.Name = in.Name
		result.Warnings = append(result.Warnings, warnings...)
		sources = append(sources, source)
	}

	merged, warnings := MergeWorkbooks(sources, opts)
	result.Warnings = append(result.Warnings, warnings...)
	result.Sheets = merged.Titles()
	logWarnings(opts, result.Warnings)

	if len(merged.Sheets) == 0 {
		log.WithField("inputs", len(inputs)).Warn(ErrEmptyMerge.Error())
		return result, nil
	}
	data, err := output.Serialize(merged)
	if err != nil {
		return nil, fmt.Errorf("serialize merged workbook: %w", err)
	}
	result.Workbook = data
	log.WithField("sheets", len(result.Sheets)).WithField("failed_inputs", len(result.Errors)).Info("merge complete")
	return result, nil
}

// MergeWorkbooks combines the sheets of the read inputs, in order, into one
// workbook. Every sheet is titled "{digest}_{title}" where the digest covers
// the sheet's content and title, so equal titles from different inputs never
// collide and the same inputs always produce the same titles.
func MergeWorkbooks(sources []*parser.ReadResult, opts Options) (*models.Workbook, []Warning) {
	merged := models.NewWorkbook(MergedWorkbookName)
	taken := make(titleSet)
	var warnings []Warning

	for _, source := range sources {
		input := source.Workbook.Name
		for _, sheet := range source.Workbook.Sheets {
			title := sheet.Title
			if source.Kind == parser.KindSingleTable && opts.ShouldUseSourceNameForSingleTable() {
				if stem := SanitizeTitle(Input{Name: input}.Stem()); stem != "" {
					title = stem
				}
			}

			content, err := sheet.ContentBytes()
			if err != nil {
				warnings = append(warnings, sheetWarning(NewSheetError(input, sheet.Title, "read", err)))
				continue
			}
			name := mergeTitle(content, title, taken)

			dst := models.NewSheet(name)
			copyWarnings, err := copySheet(input, sheet, dst, opts)
			if err != nil {
				var sheetErr *SheetError
				if !errors.As(err, &sheetErr) {
					sheetErr = NewSheetError(input, sheet.Title, "copy", err)
				}
				warnings = append(warnings, sheetWarning(sheetErr))
				continue
			}
			warnings = append(warnings, copyWarnings...)

			taken.add(name)
			merged.Sheets = append(merged.Sheets, dst)
			opts.logger().WithField("input", input).
				WithField("sheet", sheet.Title).
				WithField("title", name).
				Debug("sheet merged")
		}
	}
	return merged, warnings
}
