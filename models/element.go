package models

import (
	"encoding/json"
	"time"
)

// Reserved attribute names inside [Element.Data]. These are owned by the sync
// store; UI and rendering code must treat them as opaque.
const (
	AttrVersion      = "_version"
	AttrCreatedAt    = "_createdAt"
	AttrLastEditTime = "_lastEditTime"
	AttrCreatedBy    = "_createdBy"
	AttrBaseVersion  = "_baseVersion"
)

// Element is the unit of synchronization: a single object placed on a canvas.
//
// Data is an open-ended attribute map (position, size, style, ...) owned by
// the caller, except for the reserved attributes above. UserID and the
// top-level timestamps mirror the data-level values for query convenience.
type Element struct {
	ID          string         `json:"id"`
	CanvasID    string         `json:"canvas_id"`
	ElementType string         `json:"element_type"`
	Data        map[string]any `json:"data"`
	UserID      string         `json:"user_id"`
	CreatedAt   *time.Time     `json:"created_at,omitempty"`
	UpdatedAt   *time.Time     `json:"updated_at,omitempty"`
}

// Version returns the element's optimistic-concurrency counter stored under
// [AttrVersion]. Values that crossed a JSON boundary arrive as float64 or
// json.Number, so all numeric representations are accepted. Returns 0 when
// the attribute is missing or malformed.
func (e Element) Version() int64 {
	return numericAttr(e.Data, AttrVersion)
}

// BaseVersion returns the version recorded under [AttrBaseVersion], i.e. the
// version the last accepted update believed it was based on.
func (e Element) BaseVersion() int64 {
	return numericAttr(e.Data, AttrBaseVersion)
}

// SetVersion stores v under [AttrVersion], allocating Data if needed.
func (e *Element) SetVersion(v int64) {
	if e.Data == nil {
		e.Data = make(map[string]any, 1)
	}
	e.Data[AttrVersion] = v
}

// CloneData returns a shallow copy of the element's attribute map. Attribute
// values are shared; the map itself is safe to mutate.
func (e Element) CloneData() map[string]any {
	cloned := make(map[string]any, len(e.Data))
	for k, v := range e.Data {
		cloned[k] = v
	}
	return cloned
}

func numericAttr(data map[string]any, key string) int64 {
	raw, ok := data[key]
	if !ok {
		return 0
	}

	switch v := raw.(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}
