package models

// UpdateResult is the outcome of a version-checked element update.
//
// A conflict is an expected product of concurrent editing, not an exceptional
// condition, so it is carried as a distinguished result rather than an error.
// When Conflict is true, Element holds the current authoritative record (the
// patch was not applied) and Message explains the mismatch; the caller should
// re-derive its patch against Element and retry.
type UpdateResult struct {
	Element  Element `json:"element"`
	Conflict bool    `json:"conflict"`
	Message  string  `json:"message,omitempty"`
}
