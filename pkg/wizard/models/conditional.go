package models

// ConditionalRule is a conditional formatting rule: a predicate over a range
// plus the style applied to matching cells.
type ConditionalRule struct {
	// Range is the space-separated list of A1 ranges the rule applies to.
	Range string `json:"range"`
	// Type is the rule type (cell, top, average, duplicate, 2_color_scale, ...).
	Type           string `json:"type"`
	AboveAverage   bool   `json:"above_average,omitempty"`
	Percent        bool   `json:"percent,omitempty"`
	Criteria       string `json:"criteria,omitempty"`
	Value          string `json:"value,omitempty"`
	MinType        string `json:"min_type,omitempty"`
	MidType        string `json:"mid_type,omitempty"`
	MaxType        string `json:"max_type,omitempty"`
	MinValue       string `json:"min_value,omitempty"`
	MidValue       string `json:"mid_value,omitempty"`
	MaxValue       string `json:"max_value,omitempty"`
	MinColor       string `json:"min_color,omitempty"`
	MidColor       string `json:"mid_color,omitempty"`
	MaxColor       string `json:"max_color,omitempty"`
	BarColor       string `json:"bar_color,omitempty"`
	BarBorderColor string `json:"bar_border_color,omitempty"`
	BarDirection   string `json:"bar_direction,omitempty"`
	BarOnly        bool   `json:"bar_only,omitempty"`
	BarSolid       bool   `json:"bar_solid,omitempty"`
	IconStyle      string `json:"icon_style,omitempty"`
	ReverseIcons   bool   `json:"reverse_icons,omitempty"`
	IconsOnly      bool   `json:"icons_only,omitempty"`
	StopIfTrue     bool   `json:"stop_if_true,omitempty"`
	// Style is the differential format applied when the rule matches.
	// Nil for rules that carry their own visuals (color scales, data bars, icons).
	Style *Format `json:"style,omitempty"`
}
