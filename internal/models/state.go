package models

type ViewMode string

const (
	ViewModeOverseer ViewMode = "overseer"
	ViewModeExecutor ViewMode = "executor"
)

func (v ViewMode) Valid() bool {
	return v == ViewModeOverseer || v == ViewModeExecutor
}

// BoardFilter holds per-board view state. AssigneeFilter is "all",
// "unassigned", or a user id; last write wins.
type BoardFilter struct {
	AssigneeFilter string `json:"assigneeFilter"`
}

// AppState is the whole persisted application state. Its JSON shape is the
// storage contract: one document under a single storage key. An empty
// SelectedBoardID/SelectedTaskID means no selection.
type AppState struct {
	CurrentUser     *User                  `json:"currentUser"`
	Users           []User                 `json:"users"`
	Boards          []Board                `json:"boards"`
	Tasks           []Task                 `json:"tasks"`
	SelectedBoardID string                 `json:"selectedBoardId"`
	SelectedTaskID  string                 `json:"selectedTaskId"`
	ViewMode        ViewMode               `json:"viewMode"`
	BoardFilters    map[string]BoardFilter `json:"boardFilters"`
}

// NewAppState returns the initial state a fresh install starts from. Loaded
// state is unmarshaled over these defaults so fields absent from an older
// persisted document fall back here.
func NewAppState() AppState {
	return AppState{
		Users:        []User{},
		Boards:       []Board{},
		Tasks:        []Task{},
		ViewMode:     ViewModeOverseer,
		BoardFilters: map[string]BoardFilter{},
	}
}
