package copier

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rusal0/Wizard/pkg/wizard/models"
)

func formattedCell() *models.Cell {
	theme := 4
	return &models.Cell{
		Ref:   "B2",
		Row:   2,
		Col:   2,
		Value: models.Value{Kind: models.KindNumber, Number: 42.5, Formula: "SUM(A1:A3)"},
		Format: models.Format{
			Font:       &models.Font{Bold: true, Family: "Arial", Size: 12, Color: "1F4E79", ColorTheme: &theme},
			Border:     []models.Border{{Type: "left", Color: "000000", Style: 1}, {Type: "top", Style: 2}},
			Alignment:  &models.Alignment{Horizontal: "center", WrapText: true},
			Fill:       &models.Fill{Type: "pattern", Pattern: 1, Color: []string{"FFFF00"}},
			Protection: &models.Protection{Locked: true},
			NumberFormat: models.NumberFormat{
				Pattern: "#,##0.00",
			},
		},
	}
}

func TestCopyCell(t *testing.T) {
	src := formattedCell()
	dst := &models.Cell{Ref: "B2", Row: 2, Col: 2}

	require.NoError(t, CopyCell(src, dst))
	assert.Equal(t, src.Value, dst.Value)
	assert.Equal(t, src.Format, dst.Format)
	assert.Equal(t, "B2", dst.Ref)
}

func TestCopyCellKeepsTargetPosition(t *testing.T) {
	src := formattedCell()
	dst := &models.Cell{Ref: "D7", Row: 7, Col: 4}

	require.NoError(t, CopyCell(src, dst))
	assert.Equal(t, "D7", dst.Ref)
	assert.Equal(t, 7, dst.Row)
	assert.Equal(t, 4, dst.Col)
}

func TestCopyCellIsIdempotent(t *testing.T) {
	src := formattedCell()
	once := &models.Cell{Ref: "B2", Row: 2, Col: 2}
	twice := &models.Cell{Ref: "B2", Row: 2, Col: 2}

	require.NoError(t, CopyCell(src, once))
	require.NoError(t, CopyCell(src, twice))
	require.NoError(t, CopyCell(src, twice))
	assert.Equal(t, once, twice)
}

func TestCopyCellFormattingIndependence(t *testing.T) {
	src := formattedCell()
	dst := &models.Cell{Ref: "B2", Row: 2, Col: 2}
	require.NoError(t, CopyCell(src, dst))

	dst.Format.Font.Bold = false
	dst.Format.Font.Color = "FF0000"
	*dst.Format.Font.ColorTheme = 9
	dst.Format.Border[0].Style = 5
	dst.Format.Alignment.Horizontal = "left"
	dst.Format.Fill.Color[0] = "00FF00"
	dst.Format.Protection.Locked = false

	assert.True(t, src.Format.Font.Bold)
	assert.Equal(t, "1F4E79", src.Format.Font.Color)
	assert.Equal(t, 4, *src.Format.Font.ColorTheme)
	assert.Equal(t, 1, src.Format.Border[0].Style)
	assert.Equal(t, "center", src.Format.Alignment.Horizontal)
	assert.Equal(t, "FFFF00", src.Format.Fill.Color[0])
	assert.True(t, src.Format.Protection.Locked)
}

func TestCopyCellUnreadable(t *testing.T) {
	cause := errors.New("style 7: bad index")
	src := formattedCell()
	src.Err = cause
	dst := &models.Cell{Ref: "B2", Row: 2, Col: 2}

	err := CopyCell(src, dst)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCellUnreadable)
	assert.ErrorIs(t, err, cause)

	var cellErr *CellError
	require.ErrorAs(t, err, &cellErr)
	assert.Equal(t, "B2", cellErr.Ref)
	assert.True(t, dst.Value.IsEmpty(), "target must stay untouched")
}

func TestCloneNil(t *testing.T) {
	font, err := CloneFont(nil)
	assert.NoError(t, err)
	assert.Nil(t, font)

	borders, err := CloneBorders(nil)
	assert.NoError(t, err)
	assert.Nil(t, borders)

	format, err := CloneFormat(models.Format{})
	assert.NoError(t, err)
	assert.True(t, format.IsZero())
}

func TestCopyConditionalRules(t *testing.T) {
	src := models.NewSheet("src")
	src.ConditionalRules = []models.ConditionalRule{
		{Range: "A1:A10", Type: "cell", Criteria: ">", Value: "5", Style: &models.Format{Font: &models.Font{Color: "9A0511"}}},
		{Range: "B1:B10", Type: "2_color_scale", MinType: "min", MaxType: "max", MinColor: "F8696B", MaxColor: "63BE7B"},
	}
	dst := models.NewSheet("dst")

	require.NoError(t, CopyConditionalRules(src, dst))
	require.NoError(t, CopyConditionalRules(src, dst))
	require.Len(t, dst.ConditionalRules, 2)
	assert.Equal(t, src.ConditionalRules, dst.ConditionalRules)

	dst.ConditionalRules[0].Style.Font.Color = "000000"
	assert.Equal(t, "9A0511", src.ConditionalRules[0].Style.Font.Color)
}

func TestCopySheetLayout(t *testing.T) {
	src := models.NewSheet("src")
	src.Columns = []models.ColumnWidth{{Col: 1, Width: 20}}
	src.Rows = []models.RowHeight{{Row: 1, Height: 30}}
	src.Merges = []models.MergedRange{{Start: "A1", End: "C1"}}
	src.PrintAreas = []models.PrintArea{{R1: 1, C1: 1, R2: 10, C2: 3}}
	dst := models.NewSheet("dst")

	CopySheetLayout(src, dst)
	CopySheetLayout(src, dst)
	assert.Equal(t, src.Columns, dst.Columns)
	assert.Equal(t, src.Merges, dst.Merges)

	dst.Columns[0].Width = 5
	assert.Equal(t, 20.0, src.Columns[0].Width)
}
