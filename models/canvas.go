package models

import "time"

// CanvasAccess records when a canvas's cached element set was last read or
// written. The sync store uses it to order canvases for cache eviction.
type CanvasAccess struct {
	CanvasID   string    `json:"canvas_id"`
	LastAccess time.Time `json:"last_access"`
}
