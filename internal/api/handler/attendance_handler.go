package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/dto"
	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/service"
	"github.com/MuefXyz/res-Smp-Ash-sub001/pkg/response"
)

// Domain error kinds owned by the attendance endpoints.
const (
	KindAlreadyCheckedIn  = "ALREADY_CHECKED_IN"
	KindAlreadyCheckedOut = "ALREADY_CHECKED_OUT"
	KindNoCheckInFound    = "NO_CHECK_IN_FOUND"
)

// AttendanceHandler serves the check-in/check-out and absence endpoints.
type AttendanceHandler struct {
	attendanceSvc service.AttendanceService
}

// NewAttendanceHandler creates the AttendanceHandler.
func NewAttendanceHandler(attendanceSvc service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceSvc: attendanceSvc}
}

// CheckIn — POST /api/v1/guru/attendance/check-in, POST /api/v1/staff/attendance/check-in
func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	result, err := h.attendanceSvc.CheckIn(c.Request.Context(), userID, role)
	if err != nil {
		if errors.Is(err, service.ErrAlreadyCheckedIn) {
			response.Conflict(c, KindAlreadyCheckedIn, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// CheckOut — POST /api/v1/guru/attendance/check-out, POST /api/v1/staff/attendance/check-out
func (h *AttendanceHandler) CheckOut(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.attendanceSvc.CheckOut(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoCheckInFound):
			response.NotFound(c, KindNoCheckInFound, err.Error())
		case errors.Is(err, service.ErrAlreadyCheckedOut):
			response.Conflict(c, KindAlreadyCheckedOut, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.OK(c, result)
}

// Status — GET /api/v1/guru/attendance/status, GET /api/v1/staff/attendance/status
func (h *AttendanceHandler) Status(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	result, err := h.attendanceSvc.Status(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// ListByDate — GET /api/v1/staff/attendance?date=YYYY-MM-DD
func (h *AttendanceHandler) ListByDate(c *gin.Context) {
	var q dto.AttendanceListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, response.KindValidation, "parameter date wajib berformat YYYY-MM-DD")
		return
	}

	result, err := h.attendanceSvc.ListByDate(c.Request.Context(), q.Date)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			response.BadRequest(c, response.KindValidation, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// MonthlyRecap — GET /api/v1/admin/attendance/recap?month=YYYY-MM
func (h *AttendanceHandler) MonthlyRecap(c *gin.Context) {
	var q dto.RecapQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, response.KindValidation, "parameter month wajib berformat YYYY-MM")
		return
	}

	result, err := h.attendanceSvc.MonthlyRecap(c.Request.Context(), q.Month)
	if err != nil {
		if errors.Is(err, service.ErrInvalidMonth) {
			response.BadRequest(c, response.KindValidation, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// SubmitAbsence — POST /api/v1/absences
func (h *AttendanceHandler) SubmitAbsence(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.SubmitAbsenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.KindValidation, "status harus salah satu dari PRESENT, ABSENT, SICK, EXCUSED")
		return
	}

	result, err := h.attendanceSvc.SubmitAbsence(c.Request.Context(), userID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// ListAbsences — GET /api/v1/absences?date=YYYY-MM-DD
func (h *AttendanceHandler) ListAbsences(c *gin.Context) {
	var q dto.AbsenceListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, response.KindValidation, "parameter date wajib berformat YYYY-MM-DD")
		return
	}

	result, err := h.attendanceSvc.ListAbsencesByDate(c.Request.Context(), q.Date)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDate) {
			response.BadRequest(c, response.KindValidation, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}
