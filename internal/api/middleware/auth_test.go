package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MuefXyz/res-Smp-Ash-sub001/config"
	"github.com/MuefXyz/res-Smp-Ash-sub001/pkg/jwt"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestManager() *jwt.Manager {
	return jwt.NewManager(&config.AuthConfig{
		JWTSecret:       "unit-test-secret-0123456789",
		AccessTokenTTL:  15 * time.Minute,
		RefreshTokenTTL: 168 * time.Hour,
	})
}

func protected(mgr *jwt.Manager, roles ...string) *gin.Engine {
	r := gin.New()
	g := r.Group("", JWTAuth(mgr, nil))
	if len(roles) > 0 {
		g.Use(RoleAuth(roles...))
	}
	g.GET("/rahasia", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": c.GetString("user_id")})
	})
	return r
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	r := protected(newTestManager())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/rahasia", nil))

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, ingin 401", w.Code)
	}
}

func TestJWTAuth_MalformedHeader(t *testing.T) {
	r := protected(newTestManager())

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/rahasia", nil)
	req.Header.Set("Authorization", "Basic abc123")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, ingin 401", w.Code)
	}
}

func TestJWTAuth_RefreshTokenRejected(t *testing.T) {
	mgr := newTestManager()
	r := protected(mgr)

	// A refresh token carries a valid signature but the wrong type.
	token, err := mgr.GenerateRefreshToken("guru-1", "GURU")
	if err != nil {
		t.Fatalf("GenerateRefreshToken error: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/rahasia", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, ingin 401", w.Code)
	}
}

func TestJWTAuth_ValidToken(t *testing.T) {
	mgr := newTestManager()
	r := protected(mgr)

	token, err := mgr.GenerateAccessToken("guru-1", "GURU")
	if err != nil {
		t.Fatalf("GenerateAccessToken error: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/rahasia", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, ingin 200", w.Code)
	}
}

func TestRoleAuth_WrongRole(t *testing.T) {
	mgr := newTestManager()
	r := protected(mgr, "ADMIN")

	token, err := mgr.GenerateAccessToken("guru-1", "GURU")
	if err != nil {
		t.Fatalf("GenerateAccessToken error: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/rahasia", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, ingin 403", w.Code)
	}
}

func TestRoleAuth_AllowedRole(t *testing.T) {
	mgr := newTestManager()
	r := protected(mgr, "ADMIN", "GURU")

	token, err := mgr.GenerateAccessToken("guru-1", "GURU")
	if err != nil {
		t.Fatalf("GenerateAccessToken error: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/rahasia", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, ingin 200", w.Code)
	}
}
