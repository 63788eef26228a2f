package handlers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"workboard/internal/constants"
	apierrors "workboard/internal/errors"
	"workboard/internal/store"
)

// SessionHandler binds the single-user session to a directory user and
// mirrors it into the store's currentUser field, which is part of the
// persisted state contract.
type SessionHandler struct {
	store *store.Store
}

func NewSessionHandler(s *store.Store) *SessionHandler {
	return &SessionHandler{store: s}
}

// Start selects the acting user for this session.
func (h *SessionHandler) Start(c *gin.Context) {
	type startSessionRequest struct {
		UserID string `json:"userId" binding:"required"`
	}

	var req startSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	user, found := h.store.UserByID(req.UserID)
	if !found {
		apierrors.NotFound(c, "user not found")
		return
	}

	session := sessions.Default(c)
	session.Set(constants.SessionKeyUserID, user.ID)
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "")
		return
	}

	h.store.SetCurrentUser(user)
	c.JSON(http.StatusOK, user)
}

// Current returns the active session identity.
func (h *SessionHandler) Current(c *gin.Context) {
	user, ok := h.store.CurrentUser()
	if !ok {
		apierrors.Unauthorized(c, "No active session")
		return
	}
	c.JSON(http.StatusOK, user)
}

// End clears the session and the store's current user.
func (h *SessionHandler) End(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		apierrors.InternalError(c, "")
		return
	}

	h.store.ClearCurrentUser()
	c.JSON(http.StatusOK, gin.H{"message": "Session ended"})
}
