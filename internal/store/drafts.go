package store

import "workboard/internal/models"

// The draft pipeline is a two-phase buffer for data-collection form input.
// Drafts are provisional: they never touch DataCollectionData or the edit
// history until committed, so a debounced auto-saver can call SaveDraftData
// freely while the user types.

// SaveDraftData merges partial form data into the task's draft buffer,
// creating the buffer if absent. No history entry is written.
func (s *Store) SaveDraftData(taskID string, data models.FieldValues) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	task := s.taskByID(taskID)
	if task == nil {
		return ErrTaskNotFound
	}

	if task.DraftData == nil {
		task.DraftData = models.FieldValues{}
	}
	for fieldID, value := range data {
		task.DraftData[fieldID] = value
	}
	s.commit()
	return nil
}

// CommitDraftData moves the draft buffer into the authoritative
// DataCollectionData. Each committed field produces a change record against
// the current committed value (missing reads as null), all batched into one
// history entry with field paths prefixed "dataCollectionData.". Committing
// with no draft present is a no-op.
func (s *Store) CommitDraftData(actor *models.User, taskID string) error {
	if actor == nil {
		return ErrNoCurrentUser
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := s.taskByID(taskID)
	if task == nil {
		return ErrTaskNotFound
	}
	if task.DraftData == nil {
		return nil
	}

	changes := make([]models.FieldChange, 0, len(task.DraftData))
	for fieldID, newValue := range task.DraftData {
		var oldValue any
		if task.DataCollectionData != nil {
			oldValue = task.DataCollectionData[fieldID]
		}
		changes = append(changes, fieldChange("dataCollectionData."+fieldID, oldValue, newValue))
	}

	if task.DataCollectionData == nil {
		task.DataCollectionData = models.FieldValues{}
	}
	for fieldID, value := range task.DraftData {
		task.DataCollectionData[fieldID] = value
	}
	task.DraftData = nil

	if len(changes) > 0 {
		task.EditHistory = append(task.EditHistory, s.newHistoryEntry(actor, changes))
	}
	task.UpdatedAt = s.clock()
	s.commit()
	return nil
}

// DiscardDraftData drops the draft buffer without touching the committed
// data or the history.
func (s *Store) DiscardDraftData(taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	task := s.taskByID(taskID)
	if task == nil {
		return ErrTaskNotFound
	}
	task.DraftData = nil
	s.commit()
	return nil
}
