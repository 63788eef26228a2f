package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "workboard/internal/errors"
	"workboard/internal/models"
	"workboard/internal/store"
)

// ViewHandler covers pure view state: mode and board/task selection.
type ViewHandler struct {
	store *store.Store
}

func NewViewHandler(s *store.Store) *ViewHandler {
	return &ViewHandler{store: s}
}

// SetViewMode switches between overseer and executor views.
func (h *ViewHandler) SetViewMode(c *gin.Context) {
	type viewModeRequest struct {
		Mode models.ViewMode `json:"mode" binding:"required"`
	}

	var req viewModeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	if err := h.store.SetViewMode(req.Mode); err != nil {
		apierrors.HandleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"viewMode": req.Mode})
}

// SelectBoard sets or clears (empty id) the current board selection.
func (h *ViewHandler) SelectBoard(c *gin.Context) {
	type selectRequest struct {
		BoardID string `json:"boardId"`
	}

	var req selectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	if err := h.store.SelectBoard(req.BoardID); err != nil {
		apierrors.HandleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"selectedBoardId": req.BoardID})
}

// SelectTask sets or clears (empty id) the current task selection.
func (h *ViewHandler) SelectTask(c *gin.Context) {
	type selectRequest struct {
		TaskID string `json:"taskId"`
	}

	var req selectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	if err := h.store.SelectTask(req.TaskID); err != nil {
		apierrors.HandleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"selectedTaskId": req.TaskID})
}
