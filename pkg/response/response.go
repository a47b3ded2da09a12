package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Machine-readable error kinds shared across handlers. Domain-specific kinds
// (e.g. ALREADY_CHECKED_IN) are passed by the owning handler.
const (
	KindOK               = "OK"
	KindValidation       = "VALIDATION_ERROR"
	KindUnauthenticated  = "UNAUTHENTICATED"
	KindForbidden        = "FORBIDDEN"
	KindNotFound         = "NOT_FOUND"
	KindConflict         = "CONFLICT"
	KindInvalidOperation = "INVALID_OPERATION"
	KindRateLimited      = "RATE_LIMITED"
	KindInternal         = "INTERNAL_ERROR"
)

// Response is the uniform JSON envelope. Code is a stable machine-readable
// kind; Message is the human-readable text shown to the caller.
type Response struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// Pagination metadata for list endpoints.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

// PageData wraps a list with its pagination block.
type PageData struct {
	List       interface{} `json:"list"`
	Pagination Pagination  `json:"pagination"`
}

// ── Success responses ──

// OK writes a 200 response.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code:    KindOK,
		Message: "berhasil",
		Data:    data,
	})
}

// Created writes a 201 response.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Code:    KindOK,
		Message: "berhasil",
		Data:    data,
	})
}

// OKPage writes a 200 paginated response.
func OKPage(c *gin.Context, list interface{}, total int64, page, pageSize int) {
	totalPages := int(total) / pageSize
	if int(total)%pageSize > 0 {
		totalPages++
	}
	c.JSON(http.StatusOK, Response{
		Code:    KindOK,
		Message: "berhasil",
		Data: PageData{
			List: list,
			Pagination: Pagination{
				Page:       page,
				PageSize:   pageSize,
				Total:      total,
				TotalPages: totalPages,
			},
		},
	})
}

// ── Error responses ──

// Error writes an error envelope with the given HTTP status and kind.
func Error(c *gin.Context, httpStatus int, kind, message string) {
	c.JSON(httpStatus, Response{
		Code:    kind,
		Message: message,
	})
}

// BadRequest writes a 400 response.
func BadRequest(c *gin.Context, kind, message string) {
	Error(c, http.StatusBadRequest, kind, message)
}

// Unauthorized writes a 401 response.
func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, KindUnauthenticated, message)
}

// Forbidden writes a 403 response.
func Forbidden(c *gin.Context, message string) {
	Error(c, http.StatusForbidden, KindForbidden, message)
}

// NotFound writes a 404 response.
func NotFound(c *gin.Context, kind, message string) {
	Error(c, http.StatusNotFound, kind, message)
}

// Conflict writes a 409 response.
func Conflict(c *gin.Context, kind, message string) {
	Error(c, http.StatusConflict, kind, message)
}

// InternalError writes a generic 500 response; details stay in the log.
func InternalError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, KindInternal, "terjadi kesalahan pada server")
}
