package models

import "time"

type TaskType string

const (
	TaskTypeStandard       TaskType = "standard"
	TaskTypeDataCollection TaskType = "data-collection"
)

func (t TaskType) Valid() bool {
	return t == TaskTypeStandard || t == TaskTypeDataCollection
}

type TaskPriority string

const (
	PriorityLow      TaskPriority = "low"
	PriorityMedium   TaskPriority = "medium"
	PriorityHigh     TaskPriority = "high"
	PriorityCritical TaskPriority = "critical"
)

func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypeNumber   FieldType = "number"
	FieldTypeDate     FieldType = "date"
	FieldTypeSelect   FieldType = "select"
	FieldTypeTextarea FieldType = "textarea"
	FieldTypeEmail    FieldType = "email"
	FieldTypeURL      FieldType = "url"
)

// DataCollectionField is the schema of a single form field on a
// data-collection task.
type DataCollectionField struct {
	ID          string    `json:"id"`
	Label       string    `json:"label"`
	Type        FieldType `json:"type"`
	Required    bool      `json:"required"`
	Options     []string  `json:"options,omitempty"`
	Placeholder string    `json:"placeholder,omitempty"`
	HelpText    string    `json:"helpText,omitempty"`
}

// FieldValues maps a field id to its entered value. Values are held in their
// JSON-decoded form (string, float64, bool, nil) so persisted state
// round-trips without type drift.
type FieldValues map[string]any

type Task struct {
	ID          string       `json:"id"`
	BoardID     string       `json:"boardId"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Type        TaskType     `json:"type"`
	Priority    TaskPriority `json:"priority"`
	// Status references a stage id on the owning board.
	Status     string     `json:"status"`
	AssignedTo string     `json:"assignedTo,omitempty"`
	CreatedBy  string     `json:"createdBy"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	DueDate    *time.Time `json:"dueDate,omitempty"`

	DataCollectionFields []DataCollectionField `json:"dataCollectionFields,omitempty"`
	DataCollectionData   FieldValues           `json:"dataCollectionData,omitempty"`
	// DraftData holds uncommitted form input. It never reaches
	// DataCollectionData or the edit history until committed.
	DraftData      FieldValues `json:"draftData,omitempty"`
	IsFormComplete bool        `json:"isFormComplete"`

	EditHistory  []EditHistoryEntry `json:"editHistory"`
	HelpRequests []HelpRequest      `json:"helpRequests"`

	BlockedReason string   `json:"blockedReason,omitempty"`
	Tags          []string `json:"tags,omitempty"`
}

// HelpRequestByID returns the embedded help request with the given id.
func (t *Task) HelpRequestByID(requestID string) (int, bool) {
	for i := range t.HelpRequests {
		if t.HelpRequests[i].ID == requestID {
			return i, true
		}
	}
	return 0, false
}
