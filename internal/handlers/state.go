package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"workboard/internal/store"
)

// StateHandler serves the full state snapshot the UI rehydrates from.
type StateHandler struct {
	store *store.Store
}

func NewStateHandler(s *store.Store) *StateHandler {
	return &StateHandler{store: s}
}

// GetState returns the complete application state document.
func (h *StateHandler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Snapshot())
}
