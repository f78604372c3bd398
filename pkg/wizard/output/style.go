package output

import (
	"github.com/xuri/excelize/v2"

	"github.com/Rusal0/Wizard/pkg/wizard/models"
)

// StyleFromFormat converts a Format into an excelize style definition.
func StyleFromFormat(format models.Format) *excelize.Style {
	style := &excelize.Style{}
	if f := format.Font; f != nil {
		style.Font = &excelize.Font{
			Bold:         f.Bold,
			Italic:       f.Italic,
			Underline:    f.Underline,
			Family:       f.Family,
			Size:         f.Size,
			Strike:       f.Strike,
			Color:        f.Color,
			ColorIndexed: f.ColorIndexed,
			ColorTint:    f.ColorTint,
			VertAlign:    f.VertAlign,
		}
		if f.ColorTheme != nil {
			theme := *f.ColorTheme
			style.Font.ColorTheme = &theme
		}
		if f.Charset != nil {
			charset := *f.Charset
			style.Font.Charset = &charset
		}
	}
	for _, b := range format.Border {
		style.Border = append(style.Border, excelize.Border{Type: b.Type, Color: b.Color, Style: b.Style})
	}
	if format.Alignment != nil {
		a := excelize.Alignment(*format.Alignment)
		style.Alignment = &a
	}
	if fill := format.Fill; fill != nil {
		style.Fill = excelize.Fill{
			Type:    fill.Type,
			Pattern: fill.Pattern,
			Color:   append([]string(nil), fill.Color...),
			Shading: fill.Shading,
		}
	}
	if format.Protection != nil {
		p := excelize.Protection(*format.Protection)
		style.Protection = &p
	}
	if nf := format.NumberFormat; nf.Pattern != "" {
		pattern := nf.Pattern
		style.CustomNumFmt = &pattern
	} else {
		style.NumFmt = nf.ID
	}
	return style
}

func optionsFromRule(rule models.ConditionalRule) excelize.ConditionalFormatOptions {
	return excelize.ConditionalFormatOptions{
		Type:           rule.Type,
		AboveAverage:   rule.AboveAverage,
		Percent:        rule.Percent,
		Criteria:       rule.Criteria,
		Value:          rule.Value,
		MinType:        rule.MinType,
		MidType:        rule.MidType,
		MaxType:        rule.MaxType,
		MinValue:       rule.MinValue,
		MidValue:       rule.MidValue,
		MaxValue:       rule.MaxValue,
		MinColor:       rule.MinColor,
		MidColor:       rule.MidColor,
		MaxColor:       rule.MaxColor,
		BarColor:       rule.BarColor,
		BarBorderColor: rule.BarBorderColor,
		BarDirection:   rule.BarDirection,
		BarOnly:        rule.BarOnly,
		BarSolid:       rule.BarSolid,
		IconStyle:      rule.IconStyle,
		ReverseIcons:   rule.ReverseIcons,
		IconsOnly:      rule.IconsOnly,
		StopIfTrue:     rule.StopIfTrue,
	}
}
