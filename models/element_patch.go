package models

// ElementPatch describes a partial element mutation supplied by the caller of
// UpdateElement. Data keys fully replace same-named keys of the current
// element (shallow merge); a nil ElementType leaves the type untouched.
type ElementPatch struct {
	ElementType *string        `json:"element_type,omitempty"`
	Data        map[string]any `json:"data,omitempty"`
}
