package errors

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"workboard/internal/store"
)

// Error codes
const (
	ErrCodeUnauthorized  = "UNAUTHORIZED"
	ErrCodeNoCurrentUser = "NO_CURRENT_USER"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeInvalidInput  = "INVALID_INPUT"
	ErrCodeInvalidState  = "INVALID_STATE"
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// APIError represents a standardized API error response
type APIError struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Error implements the error interface
func (e *APIError) Error() string {
	return e.Message
}

// NewAPIError creates a new APIError
func NewAPIError(code, message string) *APIError {
	return &APIError{
		Code:    code,
		Message: message,
	}
}

// RespondWithError sends an error response
func RespondWithError(c *gin.Context, statusCode int, err *APIError) {
	c.JSON(statusCode, err)
}

// Unauthorized sends a 401 response
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "Authentication required"
	}
	RespondWithError(c, http.StatusUnauthorized, NewAPIError(ErrCodeUnauthorized, message))
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "Resource not found"
	}
	RespondWithError(c, http.StatusNotFound, NewAPIError(ErrCodeNotFound, message))
}

// BadRequest sends a 400 response
func BadRequest(c *gin.Context, message string) {
	if message == "" {
		message = "Invalid request"
	}
	RespondWithError(c, http.StatusBadRequest, NewAPIError(ErrCodeInvalidInput, message))
}

// InternalError sends a 500 response
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "Internal server error"
	}
	RespondWithError(c, http.StatusInternalServerError, NewAPIError(ErrCodeInternalError, message))
}

// HandleStoreError maps a store error onto the HTTP error contract: missing
// actor is 401, unknown entities are 404, invalid input is 400, and invalid
// state transitions are 409.
func HandleStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNoCurrentUser):
		RespondWithError(c, http.StatusUnauthorized, NewAPIError(ErrCodeNoCurrentUser, err.Error()))
	case errors.Is(err, store.ErrUserNotFound),
		errors.Is(err, store.ErrBoardNotFound),
		errors.Is(err, store.ErrStageNotFound),
		errors.Is(err, store.ErrTaskNotFound),
		errors.Is(err, store.ErrHelpRequestNotFound):
		RespondWithError(c, http.StatusNotFound, NewAPIError(ErrCodeNotFound, err.Error()))
	case errors.Is(err, store.ErrHelpRequestResolved),
		errors.Is(err, store.ErrMinimumStages):
		RespondWithError(c, http.StatusConflict, NewAPIError(ErrCodeInvalidState, err.Error()))
	case errors.Is(err, store.ErrInvalidRole),
		errors.Is(err, store.ErrInvalidTaskType),
		errors.Is(err, store.ErrInvalidPriority),
		errors.Is(err, store.ErrInvalidViewMode),
		errors.Is(err, store.ErrNameRequired),
		errors.Is(err, store.ErrTitleRequired),
		errors.Is(err, store.ErrMessageRequired):
		RespondWithError(c, http.StatusBadRequest, NewAPIError(ErrCodeInvalidInput, err.Error()))
	default:
		RespondWithError(c, http.StatusInternalServerError, NewAPIError(ErrCodeInternalError, "Internal server error"))
	}
}
