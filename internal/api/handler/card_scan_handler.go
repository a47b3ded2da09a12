package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/dto"
	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/service"
	"github.com/MuefXyz/res-Smp-Ash-sub001/pkg/response"
)

const KindCardNotFound = "CARD_NOT_FOUND"

// CardScanHandler serves the card scan ingestion and history endpoints.
type CardScanHandler struct {
	cardScanSvc service.CardScanService
}

// NewCardScanHandler creates the CardScanHandler.
func NewCardScanHandler(cardScanSvc service.CardScanService) *CardScanHandler {
	return &CardScanHandler{cardScanSvc: cardScanSvc}
}

// Scan — POST /api/v1/staff/card-scans
func (h *CardScanHandler) Scan(c *gin.Context) {
	var req dto.CardScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.KindValidation, "card_id dan scan_type (CHECK_IN/CHECK_OUT) wajib diisi")
		return
	}

	result, err := h.cardScanSvc.Scan(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrCardNotFound) {
			response.NotFound(c, KindCardNotFound, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// History — GET /api/v1/staff/card-scans?limit=n
func (h *CardScanHandler) History(c *gin.Context) {
	var q dto.CardScanHistoryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, response.KindValidation, "limit harus antara 1 dan 500")
		return
	}

	result, err := h.cardScanSvc.History(c.Request.Context(), q.Limit)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}
