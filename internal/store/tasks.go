package store

import (
	"time"

	"workboard/internal/models"
)

// NewTask is the input for CreateTask. Status is not accepted: new tasks
// always enter the target board's first stage.
type NewTask struct {
	BoardID              string
	Title                string
	Description          string
	Type                 models.TaskType
	Priority             models.TaskPriority
	AssignedTo           string
	DueDate              *time.Time
	DataCollectionFields []models.DataCollectionField
	Tags                 []string
}

// TaskPatch is a typed partial update for UpdateTask. A nil pointer leaves
// the field untouched; Clear* flags reset optional fields. Each applied field
// that actually changes produces one change record, and all records from one
// call share a single history entry.
type TaskPatch struct {
	Title                *string
	Description          *string
	Type                 *models.TaskType
	Priority             *models.TaskPriority
	Status               *string
	AssignedTo           *string
	ClearAssignedTo      bool
	DueDate              *time.Time
	ClearDueDate         bool
	BlockedReason        *string
	ClearBlockedReason   bool
	Tags                 *[]string
	DataCollectionFields *[]models.DataCollectionField
}

// CreateTask creates a task on the selected board, or on the board named by
// the input when nothing is selected. The task always enters the board's
// first stage regardless of caller input, with empty history and help request
// lists and an incomplete form.
func (s *Store) CreateTask(actor *models.User, input NewTask) (models.Task, error) {
	if actor == nil {
		return models.Task{}, ErrNoCurrentUser
	}
	if input.Title == "" {
		return models.Task{}, ErrTitleRequired
	}
	if input.Type == "" {
		input.Type = models.TaskTypeStandard
	}
	if !input.Type.Valid() {
		return models.Task{}, ErrInvalidTaskType
	}
	if input.Priority == "" {
		input.Priority = models.PriorityMedium
	}
	if !input.Priority.Valid() {
		return models.Task{}, ErrInvalidPriority
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	boardID := s.state.SelectedBoardID
	if boardID == "" {
		boardID = input.BoardID
	}
	board := s.boardByID(boardID)
	if board == nil {
		return models.Task{}, ErrBoardNotFound
	}
	if input.AssignedTo != "" && !s.userExists(input.AssignedTo) {
		return models.Task{}, ErrUserNotFound
	}

	now := s.clock()
	task := models.Task{
		ID:                   s.newID(),
		BoardID:              board.ID,
		Title:                input.Title,
		Description:          input.Description,
		Type:                 input.Type,
		Priority:             input.Priority,
		Status:               board.Stages[0].ID,
		AssignedTo:           input.AssignedTo,
		CreatedBy:            actor.ID,
		CreatedAt:            now,
		UpdatedAt:            now,
		DueDate:              input.DueDate,
		DataCollectionFields: append([]models.DataCollectionField(nil), input.DataCollectionFields...),
		IsFormComplete:       false,
		EditHistory:          []models.EditHistoryEntry{},
		HelpRequests:         []models.HelpRequest{},
		Tags:                 append([]string(nil), input.Tags...),
	}

	s.state.Tasks = append(s.state.Tasks, task)
	s.commit()
	return task.Clone(), nil
}

// UpdateTask applies a patch to a task. Every field the patch actually
// changes is recorded; if anything changed, exactly one history entry
// attributed to the actor is appended. UpdatedAt is refreshed either way.
func (s *Store) UpdateTask(actor *models.User, taskID string, patch TaskPatch) (models.Task, error) {
	if actor == nil {
		return models.Task{}, ErrNoCurrentUser
	}
	if patch.Type != nil && !patch.Type.Valid() {
		return models.Task{}, ErrInvalidTaskType
	}
	if patch.Priority != nil && !patch.Priority.Valid() {
		return models.Task{}, ErrInvalidPriority
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := s.taskByID(taskID)
	if task == nil {
		return models.Task{}, ErrTaskNotFound
	}

	// Validate everything before touching the task: a patch either applies
	// as a whole or not at all.
	if patch.Status != nil {
		if board := s.boardByID(task.BoardID); board != nil {
			if _, ok := board.StageByID(*patch.Status); !ok {
				return models.Task{}, ErrStageNotFound
			}
		}
	}
	if patch.AssignedTo != nil && !patch.ClearAssignedTo && !s.userExists(*patch.AssignedTo) {
		return models.Task{}, ErrUserNotFound
	}

	var changes []models.FieldChange
	record := func(field string, oldValue, newValue any) {
		if !valuesEqual(oldValue, newValue) {
			changes = append(changes, fieldChange(field, oldValue, newValue))
		}
	}

	if patch.Title != nil {
		record("title", task.Title, *patch.Title)
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		record("description", task.Description, *patch.Description)
		task.Description = *patch.Description
	}
	if patch.Type != nil {
		record("type", task.Type, *patch.Type)
		task.Type = *patch.Type
	}
	if patch.Priority != nil {
		record("priority", task.Priority, *patch.Priority)
		task.Priority = *patch.Priority
	}
	if patch.Status != nil {
		record("status", task.Status, *patch.Status)
		task.Status = *patch.Status
	}
	if patch.ClearAssignedTo {
		record("assignedTo", task.AssignedTo, "")
		task.AssignedTo = ""
	} else if patch.AssignedTo != nil {
		record("assignedTo", task.AssignedTo, *patch.AssignedTo)
		task.AssignedTo = *patch.AssignedTo
	}
	if patch.ClearDueDate {
		record("dueDate", task.DueDate, nil)
		task.DueDate = nil
	} else if patch.DueDate != nil {
		record("dueDate", task.DueDate, *patch.DueDate)
		due := *patch.DueDate
		task.DueDate = &due
	}
	if patch.ClearBlockedReason {
		record("blockedReason", task.BlockedReason, "")
		task.BlockedReason = ""
	} else if patch.BlockedReason != nil {
		record("blockedReason", task.BlockedReason, *patch.BlockedReason)
		task.BlockedReason = *patch.BlockedReason
	}
	if patch.Tags != nil {
		record("tags", task.Tags, *patch.Tags)
		task.Tags = append([]string(nil), (*patch.Tags)...)
	}
	if patch.DataCollectionFields != nil {
		record("dataCollectionFields", task.DataCollectionFields, *patch.DataCollectionFields)
		task.DataCollectionFields = append([]models.DataCollectionField(nil), (*patch.DataCollectionFields)...)
	}

	if len(changes) > 0 {
		task.EditHistory = append(task.EditHistory, s.newHistoryEntry(actor, changes))
	}
	task.UpdatedAt = s.clock()
	s.commit()
	return task.Clone(), nil
}

// MoveTaskToStage sets a task's status to the given stage of its board. A
// history entry is always logged, even when the stage does not change.
func (s *Store) MoveTaskToStage(actor *models.User, taskID, stageID string) error {
	if actor == nil {
		return ErrNoCurrentUser
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := s.taskByID(taskID)
	if task == nil {
		return ErrTaskNotFound
	}
	board := s.boardByID(task.BoardID)
	if board != nil {
		if _, ok := board.StageByID(stageID); !ok {
			return ErrStageNotFound
		}
	}

	changes := []models.FieldChange{fieldChange("status", task.Status, stageID)}
	task.Status = stageID
	task.EditHistory = append(task.EditHistory, s.newHistoryEntry(actor, changes))
	task.UpdatedAt = s.clock()
	s.commit()
	return nil
}

// ToggleFormComplete flips the form completion flag and logs the flip.
func (s *Store) ToggleFormComplete(actor *models.User, taskID string) error {
	if actor == nil {
		return ErrNoCurrentUser
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := s.taskByID(taskID)
	if task == nil {
		return ErrTaskNotFound
	}

	newValue := !task.IsFormComplete
	changes := []models.FieldChange{fieldChange("isFormComplete", task.IsFormComplete, newValue)}
	task.IsFormComplete = newValue
	task.EditHistory = append(task.EditHistory, s.newHistoryEntry(actor, changes))
	task.UpdatedAt = s.clock()
	s.commit()
	return nil
}

// DeleteTask removes a task. Embedded history and help requests go with it,
// and a selection pointing at the task is cleared.
func (s *Store) DeleteTask(taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.taskByID(taskID) == nil {
		return ErrTaskNotFound
	}

	tasks := s.state.Tasks[:0]
	for _, t := range s.state.Tasks {
		if t.ID != taskID {
			tasks = append(tasks, t)
		}
	}
	s.state.Tasks = tasks
	if s.state.SelectedTaskID == taskID {
		s.state.SelectedTaskID = ""
	}
	s.commit()
	return nil
}

// Tasks returns a copy of all tasks.
func (s *Store) Tasks() []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Task, len(s.state.Tasks))
	for i, t := range s.state.Tasks {
		out[i] = t.Clone()
	}
	return out
}

// TaskByID returns a copy of the task with the given id.
func (s *Store) TaskByID(taskID string) (models.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if t := s.taskByID(taskID); t != nil {
		return t.Clone(), true
	}
	return models.Task{}, false
}

// TasksForBoard returns copies of the tasks on one board.
func (s *Store) TasksForBoard(boardID string) []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Task{}
	for _, t := range s.state.Tasks {
		if t.BoardID == boardID {
			out = append(out, t.Clone())
		}
	}
	return out
}

// taskByID returns a pointer into the state tree. Callers must hold the lock.
func (s *Store) taskByID(taskID string) *models.Task {
	for i := range s.state.Tasks {
		if s.state.Tasks[i].ID == taskID {
			return &s.state.Tasks[i]
		}
	}
	return nil
}
