package models

import "time"

type HelpRequestStatus string

const (
	HelpRequestPending      HelpRequestStatus = "pending"
	HelpRequestAcknowledged HelpRequestStatus = "acknowledged"
	HelpRequestResolved     HelpRequestStatus = "resolved"
)

// HelpRequest is embedded in its task. Lifecycle:
// pending -> acknowledged -> resolved, or pending -> resolved directly.
// Resolved is terminal.
type HelpRequest struct {
	ID          string            `json:"id"`
	TaskID      string            `json:"taskId"`
	RequestedBy string            `json:"requestedBy"`
	RequestedAt time.Time         `json:"requestedAt"`
	Message     string            `json:"message"`
	Status      HelpRequestStatus `json:"status"`
	ResolvedBy  string            `json:"resolvedBy,omitempty"`
	ResolvedAt  *time.Time        `json:"resolvedAt,omitempty"`
	Response    string            `json:"response,omitempty"`
}
