package models

// DroppedObject describes drawing content found on a source sheet that the
// transformation does not reproduce.
type DroppedObject struct {
	// Kind is "chart", "picture" or "shape".
	Kind string `json:"kind"`
	// Name is the object's display name when the drawing provides one.
	Name string `json:"name,omitempty"`
}
