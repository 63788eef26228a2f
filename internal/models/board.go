package models

import "time"

// BoardStage is a workflow column on a board. Task.Status references a stage
// by ID, so stage membership is a foreign key into the owning board's list,
// not an enum. Order is kept dense (0..n-1) across removals.
type BoardStage struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Order int    `json:"order"`
	Color string `json:"color"`
}

type Board struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	CreatedBy   string       `json:"createdBy"`
	CreatedAt   time.Time    `json:"createdAt"`
	TeamMembers []TeamMember `json:"teamMembers"`
	Stages      []BoardStage `json:"stages"`
}

// StageByID returns the stage with the given id, if present.
func (b *Board) StageByID(stageID string) (BoardStage, bool) {
	for _, s := range b.Stages {
		if s.ID == stageID {
			return s, true
		}
	}
	return BoardStage{}, false
}

// HasMember reports whether the user is already on the board's team.
func (b *Board) HasMember(userID string) bool {
	for _, m := range b.TeamMembers {
		if m.UserID == userID {
			return true
		}
	}
	return false
}
