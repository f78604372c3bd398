package models

// ColumnWidth is an explicit width for one column.
type ColumnWidth struct {
	// Col is the column index (1-based).
	Col   int     `json:"col"`
	Width float64 `json:"width"`
}

// RowHeight is an explicit height for one row.
type RowHeight struct {
	// Row is the row index (1-based).
	Row    int     `json:"row"`
	Height float64 `json:"height"`
}

// MergedRange is a merged cell range such as "A1:C1".
type MergedRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
