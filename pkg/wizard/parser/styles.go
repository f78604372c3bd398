package parser

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Rusal0/Wizard/pkg/wizard/models"
)

// styleTable resolves excelize style ids of one workbook to formats. Each
// lookup returns a freshly built Format so no two cells share attribute
// objects.
type styleTable struct {
	f      *excelize.File
	styles map[int]*excelize.Style
	errs   map[int]error
}

func newStyleTable(f *excelize.File) *styleTable {
	return &styleTable{
		f:      f,
		styles: make(map[int]*excelize.Style),
		errs:   make(map[int]error),
	}
}

// format returns the format of the given cell style id.
func (t *styleTable) format(id int) (models.Format, error) {
	if id == 0 {
		return models.Format{}, nil
	}
	if err, ok := t.errs[id]; ok {
		return models.Format{}, err
	}
	style, ok := t.styles[id]
	if !ok {
		var err error
		style, err = t.f.GetStyle(id)
		if err == nil && style == nil {
			err = errors.New("no definition")
		}
		if err != nil {
			err = fmt.Errorf("style %d: %w", id, err)
			t.errs[id] = err
			return models.Format{}, err
		}
		t.styles[id] = style
	}
	return FormatFromStyle(style), nil
}

// FormatFromStyle converts an excelize style definition into a Format.
func FormatFromStyle(style *excelize.Style) models.Format {
	var format models.Format
	if style == nil {
		return format
	}
	if style.Font != nil {
		font := models.Font{
			Bold:         style.Font.Bold,
			Italic:       style.Font.Italic,
			Underline:    style.Font.Underline,
			Family:       style.Font.Family,
			Size:         style.Font.Size,
			Strike:       style.Font.Strike,
			Color:        style.Font.Color,
			ColorIndexed: style.Font.ColorIndexed,
			ColorTint:    style.Font.ColorTint,
			VertAlign:    style.Font.VertAlign,
		}
		if style.Font.ColorTheme != nil {
			theme := *style.Font.ColorTheme
			font.ColorTheme = &theme
		}
		if style.Font.Charset != nil {
			charset := *style.Font.Charset
			font.Charset = &charset
		}
		format.Font = &font
	}
	for _, b := range style.Border {
		format.Border = append(format.Border, models.Border{Type: b.Type, Color: b.Color, Style: b.Style})
	}
	if style.Alignment != nil {
		a := models.Alignment(*style.Alignment)
		format.Alignment = &a
	}
	if fill := style.Fill; fill.Type != "" && !(fill.Type == "pattern" && fill.Pattern <= 0 && len(fill.Color) == 0) {
		format.Fill = &models.Fill{
			Type:    fill.Type,
			Pattern: fill.Pattern,
			Color:   append([]string(nil), fill.Color...),
			Shading: fill.Shading,
		}
	}
	if style.Protection != nil {
		p := models.Protection(*style.Protection)
		format.Protection = &p
	}
	format.NumberFormat.ID = style.NumFmt
	if style.CustomNumFmt != nil {
		format.NumberFormat = models.NumberFormat{Pattern: *style.CustomNumFmt}
	}
	return format
}
