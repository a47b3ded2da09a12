package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MuefXyz/res-Smp-Ash-sub001/pkg/jwt"
	"github.com/MuefXyz/res-Smp-Ash-sub001/pkg/redis"
	"github.com/MuefXyz/res-Smp-Ash-sub001/pkg/response"
)

// JWTAuth extracts and verifies the access token from
// Authorization: Bearer <token>. A nil rdb skips the blacklist check.
func JWTAuth(jwtMgr *jwt.Manager, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "header autentikasi tidak ditemukan")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "format header autentikasi tidak valid")
			c.Abort()
			return
		}

		claims, err := jwtMgr.ParseToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "token tidak valid atau sudah kedaluwarsa")
			c.Abort()
			return
		}

		if claims.TokenType != "access" {
			response.Unauthorized(c, "tipe token tidak valid")
			c.Abort()
			return
		}

		if rdb != nil {
			blacklisted, err := rdb.IsBlacklisted(c.Request.Context(), claims.ID)
			if err == nil && blacklisted {
				response.Unauthorized(c, "token sudah tidak berlaku")
				c.Abort()
				return
			}
			// Redis errors degrade to allowing the token through; it still
			// carries a valid signature and expiry.
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("jti", claims.ID)
		if claims.ExpiresAt != nil {
			c.Set("token_expires_at", claims.ExpiresAt.Time)
		}

		c.Next()
	}
}

// RoleAuth allows the request through only when the authenticated role is one
// of allowedRoles. Authenticated but unauthorized callers always get 403.
func RoleAuth(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Unauthorized(c, "belum terautentikasi")
			c.Abort()
			return
		}

		userRole := role.(string)
		for _, r := range allowedRoles {
			if userRole == r {
				c.Next()
				return
			}
		}

		response.Forbidden(c, "anda tidak memiliki akses ke sumber daya ini")
		c.Abort()
	}
}
