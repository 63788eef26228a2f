package store

import "workboard/internal/models"

// SelectBoard marks a board as the current one. An empty id clears the
// selection.
func (s *Store) SelectBoard(boardID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if boardID != "" && s.boardByID(boardID) == nil {
		return ErrBoardNotFound
	}
	s.state.SelectedBoardID = boardID
	s.commit()
	return nil
}

// SelectTask marks a task as the current one. An empty id clears the
// selection.
func (s *Store) SelectTask(taskID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if taskID != "" && s.taskByID(taskID) == nil {
		return ErrTaskNotFound
	}
	s.state.SelectedTaskID = taskID
	s.commit()
	return nil
}

// SetViewMode switches the UI between the overseer and executor views.
func (s *Store) SetViewMode(mode models.ViewMode) error {
	if !mode.Valid() {
		return ErrInvalidViewMode
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.ViewMode = mode
	s.commit()
	return nil
}

// SelectedBoardID returns the current board selection, empty when none.
func (s *Store) SelectedBoardID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.SelectedBoardID
}

// SelectedTaskID returns the current task selection, empty when none.
func (s *Store) SelectedTaskID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.SelectedTaskID
}

// ViewMode returns the current view mode.
func (s *Store) ViewMode() models.ViewMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.ViewMode
}
