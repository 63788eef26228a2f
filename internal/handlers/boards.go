package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "workboard/internal/errors"
	"workboard/internal/middleware"
	"workboard/internal/models"
	"workboard/internal/store"
)

type BoardHandler struct {
	store *store.Store
}

func NewBoardHandler(s *store.Store) *BoardHandler {
	return &BoardHandler{store: s}
}

type stageRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
}

// CreateBoard creates a board owned by the acting user and selects it.
// Omitting stages gives the default four-stage workflow.
func (h *BoardHandler) CreateBoard(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	type createBoardRequest struct {
		Name        string         `json:"name" binding:"required"`
		Description string         `json:"description"`
		Stages      []stageRequest `json:"stages"`
	}

	var req createBoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	stages := make([]store.StageInput, len(req.Stages))
	for i, s := range req.Stages {
		stages[i] = store.StageInput{Name: s.Name, Color: s.Color}
	}

	board, err := h.store.CreateBoard(actor, req.Name, req.Description, stages)
	if err != nil {
		apierrors.HandleStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, board)
}

// ListBoards returns all boards.
func (h *BoardHandler) ListBoards(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"boards": h.store.Boards()})
}

// GetBoard returns one board with its tasks.
func (h *BoardHandler) GetBoard(c *gin.Context) {
	boardID := c.Param("id")
	board, found := h.store.BoardByID(boardID)
	if !found {
		apierrors.NotFound(c, "board not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"board": board,
		"tasks": h.store.TasksForBoard(boardID),
	})
}

// DeleteBoard deletes a board and every task on it.
func (h *BoardHandler) DeleteBoard(c *gin.Context) {
	if err := h.store.DeleteBoard(c.Param("id")); err != nil {
		apierrors.HandleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Board deleted"})
}

// AddMember adds a directory user to the board's team. Re-adding an existing
// member succeeds without effect.
func (h *BoardHandler) AddMember(c *gin.Context) {
	type addMemberRequest struct {
		UserID string `json:"userId" binding:"required"`
	}

	var req addMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	if err := h.store.AddTeamMember(c.Param("id"), req.UserID); err != nil {
		apierrors.HandleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Member added"})
}

// ReplaceStages swaps in a complete replacement stage list (reorder / bulk
// edit).
func (h *BoardHandler) ReplaceStages(c *gin.Context) {
	type replaceStagesRequest struct {
		Stages []models.BoardStage `json:"stages" binding:"required"`
	}

	var req replaceStagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	if err := h.store.UpdateBoardStages(c.Param("id"), req.Stages); err != nil {
		apierrors.HandleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stages updated"})
}

// AddStage appends a stage to the board's workflow.
func (h *BoardHandler) AddStage(c *gin.Context) {
	var req stageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	if err := h.store.AddBoardStage(c.Param("id"), req.Name, req.Color); err != nil {
		apierrors.HandleStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Stage added"})
}

// RemoveStage removes a stage; tasks in it move to the first remaining stage.
func (h *BoardHandler) RemoveStage(c *gin.Context) {
	if err := h.store.RemoveBoardStage(c.Param("id"), c.Param("stage_id")); err != nil {
		apierrors.HandleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stage removed"})
}

// SetFilter stores the board's assignee filter view state.
func (h *BoardHandler) SetFilter(c *gin.Context) {
	type setFilterRequest struct {
		AssigneeFilter string `json:"assigneeFilter" binding:"required"`
	}

	var req setFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	if err := h.store.SetAssigneeFilter(c.Param("id"), req.AssigneeFilter); err != nil {
		apierrors.HandleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Filter updated"})
}
