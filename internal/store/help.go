package store

import "workboard/internal/models"

// Help requests live on their task and are tracked independently of the edit
// history log: creating or transitioning one never writes a history entry.

// CreateHelpRequest raises a pending help request on a task, attributed to
// the actor.
func (s *Store) CreateHelpRequest(actor *models.User, taskID, message string) (models.HelpRequest, error) {
	if actor == nil {
		return models.HelpRequest{}, ErrNoCurrentUser
	}
	if message == "" {
		return models.HelpRequest{}, ErrMessageRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := s.taskByID(taskID)
	if task == nil {
		return models.HelpRequest{}, ErrTaskNotFound
	}

	request := models.HelpRequest{
		ID:          s.newID(),
		TaskID:      taskID,
		RequestedBy: actor.ID,
		RequestedAt: s.clock(),
		Message:     message,
		Status:      models.HelpRequestPending,
	}
	task.HelpRequests = append(task.HelpRequests, request)
	s.commit()
	return request, nil
}

// AcknowledgeHelpRequest marks a pending request as acknowledged. Resolved
// requests are terminal and cannot be acknowledged.
func (s *Store) AcknowledgeHelpRequest(taskID, requestID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	task := s.taskByID(taskID)
	if task == nil {
		return ErrTaskNotFound
	}
	i, ok := task.HelpRequestByID(requestID)
	if !ok {
		return ErrHelpRequestNotFound
	}
	if task.HelpRequests[i].Status == models.HelpRequestResolved {
		return ErrHelpRequestResolved
	}

	task.HelpRequests[i].Status = models.HelpRequestAcknowledged
	s.commit()
	return nil
}

// ResolveHelpRequest resolves a request with the actor's response. Both
// pending and acknowledged requests can be resolved; resolving twice is an
// error.
func (s *Store) ResolveHelpRequest(actor *models.User, taskID, requestID, response string) error {
	if actor == nil {
		return ErrNoCurrentUser
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := s.taskByID(taskID)
	if task == nil {
		return ErrTaskNotFound
	}
	i, ok := task.HelpRequestByID(requestID)
	if !ok {
		return ErrHelpRequestNotFound
	}
	if task.HelpRequests[i].Status == models.HelpRequestResolved {
		return ErrHelpRequestResolved
	}

	now := s.clock()
	task.HelpRequests[i].Status = models.HelpRequestResolved
	task.HelpRequests[i].ResolvedBy = actor.ID
	task.HelpRequests[i].ResolvedAt = &now
	task.HelpRequests[i].Response = response
	s.commit()
	return nil
}
