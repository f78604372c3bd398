package parser

import (
	"reflect"
	"testing"

	"github.com/Rusal0/Wizard/pkg/wizard/models"
)

func TestParsePrintAreaReference(t *testing.T) {
	tests := []struct {
		ref       string
		sheetName string
		areas     []models.PrintArea
	}{
		{"Sheet1!$A$1:$D$10", "Sheet1", []models.PrintArea{{R1: 1, C1: 1, R2: 10, C2: 4}}},
		{"'Q1, North'!$B$2:$C$3", "Q1, North", []models.PrintArea{{R1: 2, C1: 2, R2: 3, C2: 3}}},
		{"'Bob''s'!$A$1:$A$2,'Bob''s'!$C$5", "Bob's", []models.PrintArea{
			{R1: 1, C1: 1, R2: 2, C2: 1},
			{R1: 5, C1: 3, R2: 5, C2: 3},
		}},
		{"#REF!", "", nil},
	}

	for _, tt := range tests {
		sheetName, areas := parsePrintAreaReference(tt.ref)
		if sheetName != tt.sheetName || !reflect.DeepEqual(areas, tt.areas) {
			t.Errorf("parsePrintAreaReference(%q) = %q, %v; expected %q, %v",
				tt.ref, sheetName, areas, tt.sheetName, tt.areas)
		}
	}
}
