package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/dto"
	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/service"
	"github.com/MuefXyz/res-Smp-Ash-sub001/pkg/response"
)

// ScheduleHandler serves the weekly teacher schedule endpoints.
type ScheduleHandler struct {
	scheduleSvc service.ScheduleService
}

// NewScheduleHandler creates the ScheduleHandler.
func NewScheduleHandler(scheduleSvc service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleSvc: scheduleSvc}
}

// Create — POST /api/v1/admin/schedules
func (h *ScheduleHandler) Create(c *gin.Context) {
	var req dto.CreateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.KindValidation, "teacher_id dan day_of_week (1-7) wajib diisi")
		return
	}

	result, err := h.scheduleSvc.Create(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTeacherNotFound):
			response.NotFound(c, response.KindNotFound, err.Error())
		case errors.Is(err, service.ErrScheduleConflict):
			response.Conflict(c, response.KindConflict, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, result)
}

// Update — PUT /api/v1/admin/schedules/:id
func (h *ScheduleHandler) Update(c *gin.Context) {
	var req dto.UpdateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.KindValidation, "isi permintaan tidak valid")
		return
	}

	result, err := h.scheduleSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrScheduleNotFound):
			response.NotFound(c, response.KindNotFound, err.Error())
		case errors.Is(err, service.ErrScheduleConflict):
			response.Conflict(c, response.KindConflict, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Delete — DELETE /api/v1/admin/schedules/:id
func (h *ScheduleHandler) Delete(c *gin.Context) {
	if err := h.scheduleSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrScheduleNotFound) {
			response.NotFound(c, response.KindNotFound, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// List — GET /api/v1/admin/schedules?teacher_id=...
func (h *ScheduleHandler) List(c *gin.Context) {
	var q dto.ScheduleListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, response.KindValidation, "teacher_id harus berupa UUID")
		return
	}

	result, err := h.scheduleSvc.List(c.Request.Context(), q.TeacherID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// ListMine — GET /api/v1/schedules/mine
func (h *ScheduleHandler) ListMine(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.scheduleSvc.List(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}
