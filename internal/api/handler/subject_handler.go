package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/dto"
	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/service"
	"github.com/MuefXyz/res-Smp-Ash-sub001/pkg/response"
)

// SubjectHandler serves the subject catalogue endpoints.
type SubjectHandler struct {
	subjectSvc service.SubjectService
}

// NewSubjectHandler creates the SubjectHandler.
func NewSubjectHandler(subjectSvc service.SubjectService) *SubjectHandler {
	return &SubjectHandler{subjectSvc: subjectSvc}
}

// Create — POST /api/v1/subjects
func (h *SubjectHandler) Create(c *gin.Context) {
	var req dto.CreateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.KindValidation, "name dan code wajib diisi")
		return
	}

	result, err := h.subjectSvc.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrSubjectCodeTaken) {
			response.Conflict(c, response.KindConflict, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// Get — GET /api/v1/subjects/:id
func (h *SubjectHandler) Get(c *gin.Context) {
	result, err := h.subjectSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrSubjectNotFound) {
			response.NotFound(c, response.KindNotFound, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// Update — PUT /api/v1/subjects/:id
func (h *SubjectHandler) Update(c *gin.Context) {
	var req dto.UpdateSubjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.KindValidation, "isi permintaan tidak valid")
		return
	}

	result, err := h.subjectSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSubjectNotFound):
			response.NotFound(c, response.KindNotFound, err.Error())
		case errors.Is(err, service.ErrSubjectCodeTaken):
			response.Conflict(c, response.KindConflict, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Delete — DELETE /api/v1/subjects/:id
func (h *SubjectHandler) Delete(c *gin.Context) {
	if err := h.subjectSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrSubjectNotFound) {
			response.NotFound(c, response.KindNotFound, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, nil)
}

// List — GET /api/v1/subjects
func (h *SubjectHandler) List(c *gin.Context) {
	result, err := h.subjectSvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}
