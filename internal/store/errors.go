package store

import "errors"

// Every mutation returns an error. Unknown entities are reported instead of
// silently ignored, and the "no current user" precondition applies uniformly
// to every operation that writes attributed data.
var (
	ErrNoCurrentUser       = errors.New("no current user")
	ErrUserNotFound        = errors.New("user not found")
	ErrBoardNotFound       = errors.New("board not found")
	ErrStageNotFound       = errors.New("stage not found")
	ErrTaskNotFound        = errors.New("task not found")
	ErrHelpRequestNotFound = errors.New("help request not found")
	ErrHelpRequestResolved = errors.New("help request is already resolved")
	ErrMinimumStages       = errors.New("a board must keep at least two stages")
	ErrInvalidRole         = errors.New("invalid user role")
	ErrInvalidTaskType     = errors.New("invalid task type")
	ErrInvalidPriority     = errors.New("invalid task priority")
	ErrInvalidViewMode     = errors.New("invalid view mode")
	ErrNameRequired        = errors.New("name is required")
	ErrTitleRequired       = errors.New("title is required")
	ErrMessageRequired     = errors.New("message is required")
)
