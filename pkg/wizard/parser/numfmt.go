package parser

import (
	"github.com/xuri/nfp"

	"github.com/Rusal0/Wizard/pkg/wizard/models"
)

// isBuiltInDateID reports whether id is a built-in number format id that
// renders a date, time or datetime (ECMA-376 §18.8.30).
func isBuiltInDateID(id int) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 27 && id <= 36:
		return true
	case id >= 45 && id <= 47:
		return true
	case id >= 50 && id <= 58:
		return true
	}
	return false
}

// IsDateFormat reports whether values shown through the number format are
// dates or times.
func IsDateFormat(nf models.NumberFormat) bool {
	if nf.Pattern == "" {
		return isBuiltInDateID(nf.ID)
	}
	ps := nfp.NumberFormatParser()
	for _, section := range ps.Parse(nf.Pattern) {
		for _, token := range section.Items {
			switch token.TType {
			case nfp.TokenTypeDateTimes, nfp.TokenTypeElapsedDateTimes:
				return true
			}
		}
	}
	return false
}
