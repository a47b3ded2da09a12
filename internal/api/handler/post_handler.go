package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/dto"
	"github.com/MuefXyz/res-Smp-Ash-sub001/internal/service"
	"github.com/MuefXyz/res-Smp-Ash-sub001/pkg/response"
)

// PostHandler serves the learning post endpoints.
type PostHandler struct {
	postSvc service.PostService
}

// NewPostHandler creates the PostHandler.
func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{postSvc: postSvc}
}

// Create — POST /api/v1/posts
func (h *PostHandler) Create(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, response.KindValidation, "title dan content wajib diisi")
		return
	}

	result, err := h.postSvc.Create(c.Request.Context(), userID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// List — GET /api/v1/posts
func (h *PostHandler) List(c *gin.Context) {
	var q dto.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, response.KindValidation, "parameter kueri tidak valid")
		return
	}

	posts, total, err := h.postSvc.List(c.Request.Context(), &q)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, posts, total, q.Page, q.PageSize)
}
