package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/dto"
	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/service"
	"github.com/MuefXyz/res-Smp-Ash-sub001/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler serves the Excel export endpoints.
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler creates the ExportHandler.
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// MonthlyRecap — GET /api/v1/admin/attendance/recap/export?month=YYYY-MM
func (h *ExportHandler) MonthlyRecap(c *gin.Context) {
	var q dto.RecapQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, response.KindValidation, "parameter month wajib berformat YYYY-MM")
		return
	}

	buf, filename, err := h.exportSvc.MonthlyRecap(c.Request.Context(), q.Month)
	if err != nil {
		if errors.Is(err, service.ErrInvalidMonth) {
			response.BadRequest(c, response.KindValidation, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	encodedFilename := url.QueryEscape(filename)
	c.Header("Content-Description", "File Transfer")
	c.Header("Content-Disposition", "attachment; filename*=UTF-8''"+encodedFilename)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
