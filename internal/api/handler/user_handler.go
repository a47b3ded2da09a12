package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/dto"
	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/service"
	"github.com/MuefXyz/res-Smp-Ash-sub001/pkg/response"
)

// UserHandler serves the admin user management endpoints.
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler creates the UserHandler.
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// Register — POST /api/v1/admin/users
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.KindValidation, "name, username, email, password, dan role wajib diisi")
		return
	}

	result, err := h.userSvc.Register(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken), errors.Is(err, service.ErrCardTaken):
			response.Conflict(c, response.KindConflict, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, result)
}

// List — GET /api/v1/admin/users?role=...&page=...
func (h *UserHandler) List(c *gin.Context) {
	var q dto.UserListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, response.KindValidation, "parameter kueri tidak valid")
		return
	}

	users, total, err := h.userSvc.List(c.Request.Context(), &q)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, users, total, q.Page, q.PageSize)
}

// SetActive — PUT /api/v1/admin/users/:id/active
func (h *UserHandler) SetActive(c *gin.Context) {
	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.SetActiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.KindValidation, "is_active wajib diisi")
		return
	}

	result, err := h.userSvc.SetActive(c.Request.Context(), c.Param("id"), callerID, *req.IsActive)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCannotModifySelf):
			response.BadRequest(c, response.KindInvalidOperation, err.Error())
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, response.KindNotFound, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// AssignCard — PUT /api/v1/admin/users/:id/card
func (h *UserHandler) AssignCard(c *gin.Context) {
	var req dto.AssignCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.KindValidation, "card_id wajib diisi")
		return
	}

	result, err := h.userSvc.AssignCard(c.Request.Context(), c.Param("id"), req.CardID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			response.NotFound(c, response.KindNotFound, err.Error())
		case errors.Is(err, service.ErrCardTaken):
			response.Conflict(c, response.KindConflict, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}
