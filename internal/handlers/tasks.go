package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"workboard/internal/constants"
	apierrors "workboard/internal/errors"
	"workboard/internal/middleware"
	"workboard/internal/models"
	"workboard/internal/store"
	"workboard/internal/utils"
)

type TaskHandler struct {
	store *store.Store
}

func NewTaskHandler(s *store.Store) *TaskHandler {
	return &TaskHandler{store: s}
}

// ListTasks returns tasks, optionally filtered by board, stage, and
// assignee ("all", "unassigned", or a user id), paginated.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	var tasks []models.Task
	if boardID := c.Query("board_id"); boardID != "" {
		if _, found := h.store.BoardByID(boardID); !found {
			apierrors.NotFound(c, "board not found")
			return
		}
		tasks = h.store.TasksForBoard(boardID)
	} else {
		tasks = h.store.Tasks()
	}

	if status := c.Query("status"); status != "" {
		filtered := tasks[:0]
		for _, t := range tasks {
			if t.Status == status {
				filtered = append(filtered, t)
			}
		}
		tasks = filtered
	}

	if assignee := c.Query("assignee"); assignee != "" && assignee != constants.AssigneeFilterAll {
		filtered := tasks[:0]
		for _, t := range tasks {
			if assignee == constants.AssigneeFilterUnassigned {
				if t.AssignedTo == "" {
					filtered = append(filtered, t)
				}
			} else if t.AssignedTo == assignee {
				filtered = append(filtered, t)
			}
		}
		tasks = filtered
	}

	c.JSON(http.StatusOK, gin.H{
		"tasks": utils.Page(tasks, params),
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int64(len(tasks)),
		},
	})
}

// CreateTask creates a task on the selected board (or the board named in the
// request when nothing is selected). The task enters the board's first stage.
func (h *TaskHandler) CreateTask(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	type createTaskRequest struct {
		BoardID              string                       `json:"boardId"`
		Title                string                       `json:"title" binding:"required"`
		Description          string                       `json:"description"`
		Type                 models.TaskType              `json:"type"`
		Priority             models.TaskPriority          `json:"priority"`
		AssignedTo           string                       `json:"assignedTo"`
		DueDate              *time.Time                   `json:"dueDate"`
		DataCollectionFields []models.DataCollectionField `json:"dataCollectionFields"`
		Tags                 []string                     `json:"tags"`
	}

	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	task, err := h.store.CreateTask(actor, store.NewTask{
		BoardID:              req.BoardID,
		Title:                req.Title,
		Description:          req.Description,
		Type:                 req.Type,
		Priority:             req.Priority,
		AssignedTo:           req.AssignedTo,
		DueDate:              req.DueDate,
		DataCollectionFields: req.DataCollectionFields,
		Tags:                 req.Tags,
	})
	if err != nil {
		apierrors.HandleStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// GetTask returns a single task with its embedded history and help requests.
func (h *TaskHandler) GetTask(c *gin.Context) {
	task, found := h.store.TaskByID(c.Param("id"))
	if !found {
		apierrors.NotFound(c, "task not found")
		return
	}
	c.JSON(http.StatusOK, task)
}

// UpdateTask applies a partial update. Omitted fields are untouched; sending
// an empty assignedTo or blockedReason clears it, and clearDueDate drops the
// due date. All changes from one request land in one history entry.
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	type updateTaskRequest struct {
		Title                *string                       `json:"title"`
		Description          *string                       `json:"description"`
		Type                 *models.TaskType              `json:"type"`
		Priority             *models.TaskPriority          `json:"priority"`
		Status               *string                       `json:"status"`
		AssignedTo           *string                       `json:"assignedTo"`
		DueDate              *time.Time                    `json:"dueDate"`
		ClearDueDate         bool                          `json:"clearDueDate"`
		BlockedReason        *string                       `json:"blockedReason"`
		Tags                 *[]string                     `json:"tags"`
		DataCollectionFields *[]models.DataCollectionField `json:"dataCollectionFields"`
	}

	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	patch := store.TaskPatch{
		Title:                req.Title,
		Description:          req.Description,
		Type:                 req.Type,
		Priority:             req.Priority,
		Status:               req.Status,
		DueDate:              req.DueDate,
		ClearDueDate:         req.ClearDueDate,
		Tags:                 req.Tags,
		DataCollectionFields: req.DataCollectionFields,
	}
	if req.AssignedTo != nil {
		if *req.AssignedTo == "" {
			patch.ClearAssignedTo = true
		} else {
			patch.AssignedTo = req.AssignedTo
		}
	}
	if req.BlockedReason != nil {
		if *req.BlockedReason == "" {
			patch.ClearBlockedReason = true
		} else {
			patch.BlockedReason = req.BlockedReason
		}
	}

	task, err := h.store.UpdateTask(actor, c.Param("id"), patch)
	if err != nil {
		apierrors.HandleStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// DeleteTask removes a task.
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	if err := h.store.DeleteTask(c.Param("id")); err != nil {
		apierrors.HandleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
}

// MoveTask moves a task to another stage of its board.
func (h *TaskHandler) MoveTask(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	type moveTaskRequest struct {
		StageID string `json:"stageId" binding:"required"`
	}

	var req moveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	if err := h.store.MoveTaskToStage(actor, c.Param("id"), req.StageID); err != nil {
		apierrors.HandleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task moved"})
}

// ToggleFormComplete flips the data-collection form completion flag.
func (h *TaskHandler) ToggleFormComplete(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	if err := h.store.ToggleFormComplete(actor, c.Param("id")); err != nil {
		apierrors.HandleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Form completion toggled"})
}

// SaveDraft merges partial form input into the task's draft buffer. Called
// repeatedly by the UI's debounced auto-saver.
func (h *TaskHandler) SaveDraft(c *gin.Context) {
	var data models.FieldValues
	if err := c.ShouldBindJSON(&data); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	if err := h.store.SaveDraftData(c.Param("id"), data); err != nil {
		apierrors.HandleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Draft saved"})
}

// CommitDraft promotes the draft buffer into the committed form data.
func (h *TaskHandler) CommitDraft(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	if err := h.store.CommitDraftData(actor, c.Param("id")); err != nil {
		apierrors.HandleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Draft committed"})
}

// DiscardDraft drops the draft buffer.
func (h *TaskHandler) DiscardDraft(c *gin.Context) {
	if err := h.store.DiscardDraftData(c.Param("id")); err != nil {
		apierrors.HandleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Draft discarded"})
}

// CreateHelpRequest raises a pending help request on a task.
func (h *TaskHandler) CreateHelpRequest(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	type helpRequestRequest struct {
		Message string `json:"message" binding:"required"`
	}

	var req helpRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	request, err := h.store.CreateHelpRequest(actor, c.Param("id"), req.Message)
	if err != nil {
		apierrors.HandleStoreError(c, err)
		return
	}

	c.JSON(http.StatusCreated, request)
}

// AcknowledgeHelpRequest marks a pending request as seen.
func (h *TaskHandler) AcknowledgeHelpRequest(c *gin.Context) {
	if err := h.store.AcknowledgeHelpRequest(c.Param("id"), c.Param("request_id")); err != nil {
		apierrors.HandleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Help request acknowledged"})
}

// ResolveHelpRequest resolves a request with the actor's response.
func (h *TaskHandler) ResolveHelpRequest(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	type resolveRequest struct {
		Response string `json:"response"`
	}

	var req resolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	if err := h.store.ResolveHelpRequest(actor, c.Param("id"), c.Param("request_id"), req.Response); err != nil {
		apierrors.HandleStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Help request resolved"})
}
