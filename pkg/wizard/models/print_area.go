package models

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// PrintArea represents cell coordinate bounds for a print area.
type PrintArea struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// Reference renders the area as an absolute reference on the given sheet,
// e.g. 'Q1'!$A$1:$D$10.
func (a PrintArea) Reference(sheet string) (string, error) {
	start, err := excelize.CoordinatesToCellName(a.C1, a.R1, true)
	if err != nil {
		return "", err
	}
	end, err := excelize.CoordinatesToCellName(a.C2, a.R2, true)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s!%s:%s", QuoteSheetName(sheet), start, end), nil
}

// QuoteSheetName quotes a sheet name for use in a reference, doubling
// embedded single quotes.
func QuoteSheetName(name string) string {
	quoted := make([]rune, 0, len(name)+2)
	quoted = append(quoted, '\'')
	for _, r := range name {
		if r == '\'' {
			quoted = append(quoted, '\'')
		}
		quoted = append(quoted, r)
	}
	return string(append(quoted, '\''))
}

// PrintAreaDefinedName is the built-in defined name holding a sheet's print
// area.
const PrintAreaDefinedName = "_xlnm.Print_Area"
