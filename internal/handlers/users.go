package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apierrors "workboard/internal/errors"
	"workboard/internal/models"
	"workboard/internal/store"
	"workboard/internal/utils"
)

type UserHandler struct {
	store *store.Store
}

func NewUserHandler(s *store.Store) *UserHandler {
	return &UserHandler{store: s}
}

// CreateUser adds a user to the directory. Posting an email that already
// exists (case/whitespace-insensitive) returns the existing user unchanged.
func (h *UserHandler) CreateUser(c *gin.Context) {
	type createUserRequest struct {
		Name   string          `json:"name" binding:"required"`
		Email  string          `json:"email" binding:"required"`
		Role   models.UserRole `json:"role" binding:"required"`
		Avatar string          `json:"avatar"`
	}

	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "")
		return
	}

	user, err := h.store.AddUser(store.NewUser{
		Name:   req.Name,
		Email:  req.Email,
		Role:   req.Role,
		Avatar: req.Avatar,
	})
	if err != nil {
		apierrors.HandleStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// ListUsers returns the user directory, paginated.
func (h *UserHandler) ListUsers(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	users := h.store.Users()

	c.JSON(http.StatusOK, gin.H{
		"users": utils.Page(users, params),
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int64(len(users)),
		},
	})
}
