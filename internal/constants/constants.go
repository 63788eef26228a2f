package constants

// AppStateKey is the storage key the whole application state is persisted
// under. It is kept byte-compatible with earlier releases, so existing state
// documents keep loading.
const AppStateKey = "workflow-pro-app-state"

// Session and context keys
const (
	SessionCookieName = "workboard_session"
	SessionKeyUserID  = "user_id"
	ContextKeyActor   = "actor"
)

// Assignee filter values stored per board; anything else is a user id.
const (
	AssigneeFilterAll        = "all"
	AssigneeFilterUnassigned = "unassigned"
)

// Pagination bounds for list endpoints
const (
	MinPage         = 1
	DefaultPageSize = 50
	MaxPageSize     = 200
)
