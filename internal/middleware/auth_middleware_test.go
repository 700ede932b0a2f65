package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unistages/backend/internal/pkg/auth"
)

func newTestRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Minute,
		RefreshTokenExp: time.Hour,
		TokenIssuer:     "test",
	})
	authMw := NewAuthMiddleware(jwtService)

	router := gin.New()
	router.GET("/protected", authMw.JWTAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": GetUserID(c)})
	})
	router.GET("/faculty-only", authMw.JWTAuth(), authMw.RoleRequired("FACULTY"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router, jwtService
}

func doRequest(router *gin.Engine, path, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestJWTAuthRejectsMissingHeader(t *testing.T) {
	router, _ := newTestRouter(t)
	rec := doRequest(router, "/protected", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthRejectsMalformedToken(t *testing.T) {
	router, _ := newTestRouter(t)
	rec := doRequest(router, "/protected", "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthAcceptsValidToken(t *testing.T) {
	router, jwtService := newTestRouter(t)

	accessToken, _, _, _, err := jwtService.GenerateTokenPair(7, "T-100", "TEACHER")
	require.NoError(t, err)

	rec := doRequest(router, "/protected", "Bearer "+accessToken)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"userID":7`)
}

func TestRoleRequiredRejectsWrongRole(t *testing.T) {
	router, jwtService := newTestRouter(t)

	accessToken, _, _, _, err := jwtService.GenerateTokenPair(7, "T-100", "TEACHER")
	require.NoError(t, err)

	rec := doRequest(router, "/faculty-only", "Bearer "+accessToken)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRoleRequiredAllowsMatchingRole(t *testing.T) {
	router, jwtService := newTestRouter(t)

	accessToken, _, _, _, err := jwtService.GenerateTokenPair(1, "admin", "FACULTY")
	require.NoError(t, err)

	rec := doRequest(router, "/faculty-only", "Bearer "+accessToken)
	assert.Equal(t, http.StatusOK, rec.Code)
}
