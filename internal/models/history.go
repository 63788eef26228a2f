package models

import "time"

// FieldChange records a single field transition inside a history entry.
// Old and New are stored in JSON-normal form (see store.historyValue) so the
// audit log survives persistence round-trips unchanged.
type FieldChange struct {
	Field    string `json:"field"`
	OldValue any    `json:"oldValue"`
	NewValue any    `json:"newValue"`
}

// EditHistoryEntry is an immutable, user-attributed batch of field changes.
// Entries are append-only: one entry per mutating call, covering every field
// that call changed.
type EditHistoryEntry struct {
	ID        string        `json:"id"`
	Timestamp time.Time     `json:"timestamp"`
	UserID    string        `json:"userId"`
	UserName  string        `json:"userName"`
	Changes   []FieldChange `json:"changes"`
}
