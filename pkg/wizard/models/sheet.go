package models

import (
	"encoding/json"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Sheet represents a named grid of cells within a workbook.
type Sheet struct {
	// Title is the sheet name.
	Title string `json:"title"`
	// Cells contains occupied cells in row-major order.
	Cells []*Cell `json:"cells,omitempty"`
	// ConditionalRules contains conditional formatting rules scoped to this sheet.
	ConditionalRules []ConditionalRule `json:"conditional_rules,omitempty"`
	// Columns contains explicit column widths.
	Columns []ColumnWidth `json:"columns,omitempty"`
	// Rows contains explicit row heights.
	Rows []RowHeight `json:"rows,omitempty"`
	// Merges contains merged cell ranges.
	Merges []MergedRange `json:"merges,omitempty"`
	// PrintAreas contains user-defined print areas.
	PrintAreas []PrintArea `json:"print_areas,omitempty"`
	// Dropped lists objects found on the source sheet that are not reproduced.
	Dropped []DroppedObject `json:"dropped,omitempty"`

	index map[string]int
}

// NewSheet returns an empty sheet with the given title.
func NewSheet(title string) *Sheet {
	return &Sheet{Title: title, index: make(map[string]int)}
}

// Cell returns the cell at the given A1-style reference, or nil when the
// position is not occupied.
func (s *Sheet) Cell(ref string) *Cell {
	s.reindex()
	if i, ok := s.index[ref]; ok {
		return s.Cells[i]
	}
	return nil
}

// CellAt returns the cell at the given 1-based coordinates, or nil.
func (s *Sheet) CellAt(col, row int) *Cell {
	ref, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return nil
	}
	return s.Cell(ref)
}

// Ensure locates the cell at the given 1-based coordinates, creating an empty
// one when the position is not occupied yet.
func (s *Sheet) Ensure(col, row int) (*Cell, error) {
	ref, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return nil, fmt.Errorf("cell coordinates (%d,%d): %w", col, row, err)
	}
	if c := s.Cell(ref); c != nil {
		return c, nil
	}
	c := &Cell{Ref: ref, Row: row, Col: col}
	s.index[ref] = len(s.Cells)
	s.Cells = append(s.Cells, c)
	return c, nil
}

// Remove deletes the cell at the given reference if present.
func (s *Sheet) Remove(ref string) {
	s.reindex()
	i, ok := s.index[ref]
	if !ok {
		return
	}
	s.Cells = append(s.Cells[:i], s.Cells[i+1:]...)
	s.index = nil
	s.reindex()
}

// ContentBytes returns a canonical byte encoding of the sheet's cells. Two
// sheets with the same values and formats in the same positions encode to
// the same bytes.
func (s *Sheet) ContentBytes() ([]byte, error) {
	return json.Marshal(s.Cells)
}

// reindex rebuilds the reference index for sheets that were assembled
// without NewSheet (for example decoded from JSON).
func (s *Sheet) reindex() {
	if s.index != nil && len(s.index) == len(s.Cells) {
		return
	}
	s.index = make(map[string]int, len(s.Cells))
	for i, c := range s.Cells {
		s.index[c.Ref] = i
	}
}
