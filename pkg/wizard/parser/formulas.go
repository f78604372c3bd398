package parser

import (
	"strings"

	"github.com/xuri/efp"
)

// ReferencedSheets returns the sheet names referenced by a formula, in order
// of first appearance.
func ReferencedSheets(formula string) []string {
	var sheets []string
	seen := make(map[string]bool)

	ps := efp.ExcelParser()
	for _, token := range ps.Parse(formula) {
		if token.TType != efp.TokenTypeOperand || token.TSubType != efp.TokenSubTypeRange {
			continue
		}
		idx := strings.LastIndex(token.TValue, "!")
		if idx <= 0 {
			continue
		}
		name := unquoteSheetName(token.TValue[:idx])
		if !seen[name] {
			seen[name] = true
			sheets = append(sheets, name)
		}
	}
	return sheets
}
