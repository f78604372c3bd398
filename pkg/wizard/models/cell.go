package models

import "time"

// ValueKind identifies the type of a cell value.
type ValueKind string

const (
	// KindEmpty is a cell without a value (it may still carry a format).
	KindEmpty ValueKind = "empty"
	// KindNumber is a numeric value.
	KindNumber ValueKind = "number"
	// KindText is a string value.
	KindText ValueKind = "text"
	// KindBool is a boolean value.
	KindBool ValueKind = "bool"
	// KindDateTime is a numeric serial shown through a date or time format.
	KindDateTime ValueKind = "datetime"
	// KindError is a cached error result such as #DIV/0!.
	KindError ValueKind = "error"
)

// Value is a cell value. It only holds immutable fields so copying the struct
// copies the value.
type Value struct {
	// Kind is the value type.
	Kind ValueKind `json:"kind"`
	// Number holds KindNumber values.
	Number float64 `json:"number,omitempty"`
	// Text holds KindText and KindError values.
	Text string `json:"text,omitempty"`
	// Bool holds KindBool values.
	Bool bool `json:"bool,omitempty"`
	// Serial holds the raw date serial of KindDateTime values.
	Serial float64 `json:"serial,omitempty"`
	// Time is Serial converted to a calendar time.
	Time time.Time `json:"-"`
	// Formula is the source formula whose cached result this value is.
	// It is informational only and never written back.
	Formula string `json:"-"`
}

// IsEmpty reports whether the value holds nothing.
func (v Value) IsEmpty() bool {
	return v.Kind == "" || v.Kind == KindEmpty
}

// Cell represents a single grid position with its value and format.
type Cell struct {
	// Ref is the A1-style coordinate.
	Ref string `json:"ref"`
	// Row is the row index (1-based).
	Row int `json:"r"`
	// Col is the column index (1-based).
	Col int `json:"c"`
	// Value is the cell value.
	Value Value `json:"v"`
	// Format is the cell's visual format.
	Format Format `json:"f"`
	// Err is set when the reader could not fully read the cell.
	Err error `json:"-"`
}
