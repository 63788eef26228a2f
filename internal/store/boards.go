package store

import (
	"workboard/internal/constants"
	"workboard/internal/models"
)

// StageInput names a stage to create on a new board.
type StageInput struct {
	Name  string
	Color string
}

// DefaultStages is the stage list a board gets when the caller does not
// provide one. Colors are semantic tags the UI layer maps to its theme.
var DefaultStages = []StageInput{
	{Name: "To Do", Color: "bg-slate-100 text-slate-700"},
	{Name: "In Progress", Color: "bg-blue-100 text-blue-700"},
	{Name: "In Review", Color: "bg-purple-100 text-purple-700"},
	{Name: "Done", Color: "bg-green-100 text-green-700"},
}

// CreateBoard creates a board owned by the actor, with the actor as the sole
// initial team member, and selects it as the current board. Stages come from
// the provided list or DefaultStages, with sequential order and fresh ids.
func (s *Store) CreateBoard(actor *models.User, name, description string, stages []StageInput) (models.Board, error) {
	if actor == nil {
		return models.Board{}, ErrNoCurrentUser
	}
	if name == "" {
		return models.Board{}, ErrNameRequired
	}
	if len(stages) == 0 {
		stages = DefaultStages
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	boardStages := make([]models.BoardStage, len(stages))
	for i, stage := range stages {
		boardStages[i] = models.BoardStage{
			ID:    s.newID(),
			Name:  stage.Name,
			Color: stage.Color,
			Order: i,
		}
	}

	board := models.Board{
		ID:          s.newID(),
		Name:        name,
		Description: description,
		CreatedBy:   actor.ID,
		CreatedAt:   now,
		TeamMembers: []models.TeamMember{{UserID: actor.ID, JoinedAt: now}},
		Stages:      boardStages,
	}

	s.state.Boards = append(s.state.Boards, board)
	s.state.SelectedBoardID = board.ID
	s.commit()
	return board.Clone(), nil
}

// AddTeamMember adds a user to a board's team. Adding an existing member is
// an idempotent no-op.
func (s *Store) AddTeamMember(boardID, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	board := s.boardByID(boardID)
	if board == nil {
		return ErrBoardNotFound
	}
	if !s.userExists(userID) {
		return ErrUserNotFound
	}
	if board.HasMember(userID) {
		return nil
	}

	board.TeamMembers = append(board.TeamMembers, models.TeamMember{
		UserID:   userID,
		JoinedAt: s.clock(),
	})
	s.commit()
	return nil
}

// UpdateBoardStages replaces a board's stage list wholesale. The caller
// supplies the complete desired list; this is how the UI reorders and bulk
// edits stages. Existing task statuses are not revalidated against the new
// list.
func (s *Store) UpdateBoardStages(boardID string, stages []models.BoardStage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	board := s.boardByID(boardID)
	if board == nil {
		return ErrBoardNotFound
	}

	board.Stages = make([]models.BoardStage, len(stages))
	copy(board.Stages, stages)
	s.commit()
	return nil
}

// AddBoardStage appends a stage at the end of the board's workflow.
func (s *Store) AddBoardStage(boardID, name, color string) error {
	if name == "" {
		return ErrNameRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	board := s.boardByID(boardID)
	if board == nil {
		return ErrBoardNotFound
	}

	board.Stages = append(board.Stages, models.BoardStage{
		ID:    s.newID(),
		Name:  name,
		Color: color,
		Order: len(board.Stages),
	})
	s.commit()
	return nil
}

// RemoveBoardStage removes a stage from a board. Tasks sitting in the removed
// stage are reassigned to the board's first remaining stage, and the stages
// left behind are reindexed to a dense 0..n-1 order. A board must keep at
// least two stages.
func (s *Store) RemoveBoardStage(boardID, stageID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	board := s.boardByID(boardID)
	if board == nil {
		return ErrBoardNotFound
	}
	if _, ok := board.StageByID(stageID); !ok {
		return ErrStageNotFound
	}
	if len(board.Stages) <= 2 {
		return ErrMinimumStages
	}

	remaining := make([]models.BoardStage, 0, len(board.Stages)-1)
	for _, stage := range board.Stages {
		if stage.ID != stageID {
			remaining = append(remaining, stage)
		}
	}
	for i := range remaining {
		remaining[i].Order = i
	}
	board.Stages = remaining

	// Orphaned tasks land in the first stage that survives the removal.
	firstStageID := remaining[0].ID
	for i := range s.state.Tasks {
		t := &s.state.Tasks[i]
		if t.BoardID == boardID && t.Status == stageID {
			t.Status = firstStageID
		}
	}
	s.commit()
	return nil
}

// DeleteBoard removes a board and cascades: every task on the board is
// deleted with it, and any selection pointing at the board or its tasks is
// cleared.
func (s *Store) DeleteBoard(boardID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.boardByID(boardID) == nil {
		return ErrBoardNotFound
	}

	boards := s.state.Boards[:0]
	for _, b := range s.state.Boards {
		if b.ID != boardID {
			boards = append(boards, b)
		}
	}
	s.state.Boards = boards

	tasks := s.state.Tasks[:0]
	for _, t := range s.state.Tasks {
		if t.BoardID != boardID {
			tasks = append(tasks, t)
			continue
		}
		if s.state.SelectedTaskID == t.ID {
			s.state.SelectedTaskID = ""
		}
	}
	s.state.Tasks = tasks

	if s.state.SelectedBoardID == boardID {
		s.state.SelectedBoardID = ""
	}
	s.commit()
	return nil
}

// Boards returns a copy of all boards.
func (s *Store) Boards() []models.Board {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Board, len(s.state.Boards))
	for i, b := range s.state.Boards {
		out[i] = b.Clone()
	}
	return out
}

// BoardByID returns a copy of the board with the given id.
func (s *Store) BoardByID(boardID string) (models.Board, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if b := s.boardByID(boardID); b != nil {
		return b.Clone(), true
	}
	return models.Board{}, false
}

// boardByID returns a pointer into the state tree. Callers must hold the
// lock.
func (s *Store) boardByID(boardID string) *models.Board {
	for i := range s.state.Boards {
		if s.state.Boards[i].ID == boardID {
			return &s.state.Boards[i]
		}
	}
	return nil
}

func (s *Store) userExists(userID string) bool {
	for _, u := range s.state.Users {
		if u.ID == userID {
			return true
		}
	}
	return false
}

// AssigneeFilter returns the stored filter for a board, defaulting to "all".
func (s *Store) AssigneeFilter(boardID string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if f, ok := s.state.BoardFilters[boardID]; ok && f.AssigneeFilter != "" {
		return f.AssigneeFilter
	}
	return constants.AssigneeFilterAll
}

// SetAssigneeFilter stores a per-board assignee filter ("all", "unassigned",
// or a user id). Last write wins.
func (s *Store) SetAssigneeFilter(boardID, filter string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.boardByID(boardID) == nil {
		return ErrBoardNotFound
	}
	s.state.BoardFilters[boardID] = models.BoardFilter{AssigneeFilter: filter}
	s.commit()
	return nil
}
