package models

// Font describes cell font attributes.
type Font struct {
	Bold         bool    `json:"bold,omitempty"`
	Italic       bool    `json:"italic,omitempty"`
	Underline    string  `json:"underline,omitempty"`
	Family       string  `json:"family,omitempty"`
	Size         float64 `json:"size,omitempty"`
	Strike       bool    `json:"strike,omitempty"`
	Color        string  `json:"color,omitempty"`
	ColorIndexed int     `json:"color_indexed,omitempty"`
	ColorTheme   *int    `json:"color_theme,omitempty"`
	ColorTint    float64 `json:"color_tint,omitempty"`
	VertAlign    string  `json:"vert_align,omitempty"`
	Charset      *int    `json:"charset,omitempty"`
}

// Border describes one edge of a cell border.
type Border struct {
	// Type is the edge: left, right, top, bottom, diagonalUp or diagonalDown.
	Type  string `json:"type"`
	Color string `json:"color,omitempty"`
	Style int    `json:"style"`
}

// Alignment describes cell text alignment.
type Alignment struct {
	Horizontal      string `json:"horizontal,omitempty"`
	Indent          int    `json:"indent,omitempty"`
	JustifyLastLine bool   `json:"justify_last_line,omitempty"`
	ReadingOrder    uint64 `json:"reading_order,omitempty"`
	RelativeIndent  int    `json:"relative_indent,omitempty"`
	ShrinkToFit     bool   `json:"shrink_to_fit,omitempty"`
	TextRotation    int    `json:"text_rotation,omitempty"`
	Vertical        string `json:"vertical,omitempty"`
	WrapText        bool   `json:"wrap_text,omitempty"`
}

// Fill describes the cell background.
type Fill struct {
	// Type is "pattern" or "gradient".
	Type    string   `json:"type"`
	Pattern int      `json:"pattern,omitempty"`
	Color   []string `json:"color,omitempty"`
	Shading int      `json:"shading,omitempty"`
}

// Protection describes cell protection flags.
type Protection struct {
	Hidden bool `json:"hidden,omitempty"`
	Locked bool `json:"locked,omitempty"`
}

// NumberFormat is either a built-in format id or a custom pattern.
type NumberFormat struct {
	// ID is the built-in number format id (0 is General).
	ID int `json:"id,omitempty"`
	// Pattern is the custom format code; it takes precedence over ID.
	Pattern string `json:"pattern,omitempty"`
}

// IsGeneral reports whether the number format is the default one.
func (n NumberFormat) IsGeneral() bool {
	return n.ID == 0 && n.Pattern == ""
}

// Format bundles the visual attributes of a cell.
type Format struct {
	Font         *Font        `json:"font,omitempty"`
	Border       []Border     `json:"border,omitempty"`
	Alignment    *Alignment   `json:"alignment,omitempty"`
	Fill         *Fill        `json:"fill,omitempty"`
	Protection   *Protection  `json:"protection,omitempty"`
	NumberFormat NumberFormat `json:"number_format,omitempty"`
}

// IsZero reports whether the format carries no attribute at all.
func (f Format) IsZero() bool {
	return f.Font == nil && len(f.Border) == 0 && f.Alignment == nil &&
		f.Fill == nil && f.Protection == nil && f.NumberFormat.IsGeneral()
}
