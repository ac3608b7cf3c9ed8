package models

import "time"

// Pending write operations.
const (
	PendingInsert  = "insert"
	PendingReplace = "replace"
	PendingDelete  = "delete"
)

// PendingWrite is an element mutation that could not be committed to the
// remote store at the time it was issued. It is staged in the local cache and
// retried until it succeeds, is rejected, or is superseded by a newer pending
// write for the same element id.
type PendingWrite struct {
	ElementID string    `json:"element_id"`
	CanvasID  string    `json:"canvas_id"`
	Op        string    `json:"op"`
	Element   Element   `json:"element"`
	QueuedAt  time.Time `json:"queued_at"`
	Attempts  int       `json:"attempts"`
}
