package parser

import (
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"github.com/Rusal0/Wizard/pkg/wizard/models"
)

// ExtractConditionalRules extracts the conditional formatting rules of a
// sheet. Ranges are returned in sorted order and rules keep their order of
// priority within a range.
func ExtractConditionalRules(f *excelize.File, sheetName string) ([]models.ConditionalRule, error) {
	formats, err := f.GetConditionalFormats(sheetName)
	if err != nil {
		return nil, err
	}

	ranges := make([]string, 0, len(formats))
	for rangeRef := range formats {
		ranges = append(ranges, rangeRef)
	}
	sort.Strings(ranges)

	var rules []models.ConditionalRule
	for _, rangeRef := range ranges {
		for _, opt := range formats[rangeRef] {
			rule := ruleFromOptions(rangeRef, opt)
			if opt.Format != nil {
				style, err := f.GetConditionalStyle(*opt.Format)
				if err != nil {
					return nil, fmt.Errorf("conditional style %d of %s: %w", *opt.Format, rangeRef, err)
				}
				format := FormatFromStyle(style)
				rule.Style = &format
			}
			rules = append(rules, rule)
		}
	}
	return rules, nil
}

func ruleFromOptions(rangeRef string, opt excelize.ConditionalFormatOptions) models.ConditionalRule {
	return models.ConditionalRule{
		Range:          rangeRef,
		Type:           opt.Type,
		AboveAverage:   opt.AboveAverage,
		Percent:        opt.Percent,
		Criteria:       opt.Criteria,
		Value:          opt.Value,
		MinType:        opt.MinType,
		MidType:        opt.MidType,
		MaxType:        opt.MaxType,
		MinValue:       opt.MinValue,
		MidValue:       opt.MidValue,
		MaxValue:       opt.MaxValue,
		MinColor:       opt.MinColor,
		MidColor:       opt.MidColor,
		MaxColor:       opt.MaxColor,
		BarColor:       opt.BarColor,
		BarBorderColor: opt.BarBorderColor,
		BarDirection:   opt.BarDirection,
		BarOnly:        opt.BarOnly,
		BarSolid:       opt.BarSolid,
		IconStyle:      opt.IconStyle,
		ReverseIcons:   opt.ReverseIcons,
		IconsOnly:      opt.IconsOnly,
		StopIfTrue:     opt.StopIfTrue,
	}
}
