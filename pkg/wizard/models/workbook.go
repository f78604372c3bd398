// Package models defines the in-memory workbook representation shared by the
// reader, the copier, the splitter/merger and the serializer.
package models

// Workbook represents an ordered sequence of sheets.
type Workbook struct {
	// Name is the source name of the workbook (file name without extension).
	Name string `json:"name"`
	// Sheets holds the sheets in workbook order.
	Sheets []*Sheet `json:"sheets"`
}

// NewWorkbook returns an empty workbook with the given source name.
func NewWorkbook(name string) *Workbook {
	return &Workbook{Name: name}
}

// AddSheet appends a new empty sheet with the given title and returns it.
// Title uniqueness is checked when the workbook is serialized.
func (wb *Workbook) AddSheet(title string) *Sheet {
	s := NewSheet(title)
	wb.Sheets = append(wb.Sheets, s)
	return s
}

// Titles returns the sheet titles in workbook order.
func (wb *Workbook) Titles() []string {
	titles := make([]string, len(wb.Sheets))
	for i, s := range wb.Sheets {
		titles[i] = s.Title
	}
	return titles
}

// Sheet returns the sheet with the given title, or nil.
func (wb *Workbook) Sheet(title string) *Sheet {
	for _, s := range wb.Sheets {
		if s.Title == title {
			return s
		}
	}
	return nil
}

// CellCount returns the number of occupied cells across all sheets.
func (wb *Workbook) CellCount() int {
	n := 0
	for _, s := range wb.Sheets {
		n += len(s.Cells)
	}
	return n
}
