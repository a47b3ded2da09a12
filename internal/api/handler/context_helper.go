package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MuefXyz/res-Smp-Ash-sub001/pkg/response"
)

// MustGetUserID pulls the authenticated user_id from the context. On a
// missing or malformed value it writes 401 and returns ok=false; the caller
// should return immediately.
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, "belum terautentikasi")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, "belum terautentikasi")
		return "", false
	}
	return s, true
}

// MustGetRole pulls the authenticated role from the context.
func MustGetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get("role")
	if !exists {
		response.Unauthorized(c, "belum terautentikasi")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, "belum terautentikasi")
		return "", false
	}
	return s, true
}

// tokenMeta pulls the access token's JTI and expiry injected by JWTAuth.
// Used by logout to blacklist exactly the presented token.
func tokenMeta(c *gin.Context) (jti string, expiresAt time.Time) {
	if v, exists := c.Get("jti"); exists {
		jti, _ = v.(string)
	}
	if v, exists := c.Get("token_expires_at"); exists {
		expiresAt, _ = v.(time.Time)
	}
	return jti, expiresAt
}
