package wizard

import (
	"errors"

	"github.com/Rusal0/Wizard/pkg/wizard/models"
	"github.com/Rusal0/Wizard/pkg/wizard/output"
)

// SplitEntry is one single-sheet workbook produced by a split.
type SplitEntry struct {
	// Name is the archive entry name, "{Title}.xlsx".
	Name string
	// Title is the sheet title inside the entry.
	Title string
	// Source is the title of the sheet in the input workbook.
	Source   string
	Workbook *models.Workbook
}

// SplitResult is the outcome of Split.
type SplitResult struct {
	// Archive is the zip archive holding one workbook per sheet.
	Archive []byte `json:"-"`
	// Entries are the archive entry names in input sheet order.
	Entries  []string  `json:"entries"`
	Warnings []Warning `json:"warnings"`
}

// Split reads a workbook and packs each of its sheets into its own workbook
// inside a zip archive. A read failure aborts the split; sheet failures are
// reported as warnings and the remaining sheets are still produced.
func Split(in Input, opts Options) (*SplitResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	log := opts.logger().WithField("input", in.Name)

	result, warnings, err := read(in, opts)
	if err != nil {
		log.WithError(err).Error("split aborted")
		return nil, err
	}
	result.Workbook.Name = in.Name

	entries, splitWarnings := SplitWorkbook(result.Workbook, opts)
	warnings = append(warnings, splitWarnings...)

	archive := make([]output.ArchiveEntry, 0, len(entries))
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		data, err := output.Serialize(entry.Workbook)
		if err != nil {
			warnings = append(warnings, sheetWarning(NewSheetError(in.Name, entry.Source, "serialize", err)))
			continue
		}
		archive = append(archive, output.ArchiveEntry{Name: entry.Name, Data: data})
		names = append(names, entry.Name)
		log.WithField("entry", entry.Name).Debug("sheet split")
	}

	data, err := output.SerializeArchive(archive)
	if err != nil {
		return nil, err
	}
	logWarnings(opts, warnings)
	log.WithField("entries", len(names)).Info("split complete")

	return &SplitResult{Archive: data, Entries: names, Warnings: warnings}, nil
}

// SplitWorkbook builds one single-sheet workbook per sheet of wb, in sheet
// order. Titles are sanitised and made unique in sheet order, so the same
// workbook always yields the same entry names.
func SplitWorkbook(wb *models.Workbook, opts Options) ([]SplitEntry, []Warning) {
	var (
		entries  []SplitEntry
		warnings []Warning
	)
	taken := make(titleSet)

	for _, sheet := range wb.Sheets {
		title := SanitizeTitle(sheet.Title)
		if title == "" {
			warnings = append(warnings, sheetWarning(NewSheetError(wb.Name, sheet.Title, "title", ErrSheetTitleInvalid)))
			continue
		}
		title = uniqueTitle(title, taken)
		taken.add(title)

		out := models.NewWorkbook(title)
		dst := out.AddSheet(title)
		copyWarnings, err := copySheet(wb.Name, sheet, dst, opts)
		if err != nil {
			var sheetErr *SheetError
			if !errors.As(err, &sheetErr) {
				sheetErr = NewSheetError(wb.Name, sheet.Title, "copy", err)
			}
			warnings = append(warnings, sheetWarning(sheetErr))
			continue
		}
		warnings = append(warnings, copyWarnings...)

		entries = append(entries, SplitEntry{
			Name:     title + ".xlsx",
			Title:    title,
			Source:   sheet.Title,
			Workbook: out,
		})
	}
	return entries, warnings
}
