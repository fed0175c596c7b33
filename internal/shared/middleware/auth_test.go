package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recitation-backend/pkg/jwt"
)

type fakeRevocationList struct {
	revoked map[string]bool
}

func (f *fakeRevocationList) IsRevoked(_ context.Context, jti string) (bool, error) {
	return f.revoked[jti], nil
}

func newAuthTestRouter(tokens *jwt.Manager, revoked TokenRevoker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", AuthMiddleware(tokens, revoked), func(c *gin.Context) {
		ident, _ := GetIdentity(c)
		c.JSON(http.StatusOK, gin.H{"username": ident.Username})
	})
	router.GET("/web", WebAuthMiddleware(tokens, revoked), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestAuthMiddlewareAcceptsBearerToken(t *testing.T) {
	tokens := jwt.NewManager("test-secret", 60)
	router := newAuthTestRouter(tokens, nil)

	token, err := tokens.GenerateAccessToken(7, "ahmed", false)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ahmed")
}

func TestAuthMiddlewareAcceptsCookie(t *testing.T) {
	tokens := jwt.NewManager("test-secret", 60)
	router := newAuthTestRouter(tokens, nil)

	token, err := tokens.GenerateAccessToken(7, "ahmed", false)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: token})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	router := newAuthTestRouter(jwt.NewManager("test-secret", 60), nil)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsRevokedToken(t *testing.T) {
	tokens := jwt.NewManager("test-secret", 60)

	token, err := tokens.GenerateAccessToken(7, "ahmed", false)
	require.NoError(t, err)
	claims, err := tokens.ValidateToken(token)
	require.NoError(t, err)

	router := newAuthTestRouter(tokens, &fakeRevocationList{
		revoked: map[string]bool{claims.ID: true},
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code, "a logged-out token no longer authenticates")
}

func TestWebAuthMiddlewareRedirectsInsteadOf401(t *testing.T) {
	router := newAuthTestRouter(jwt.NewManager("test-secret", 60), nil)

	req := httptest.NewRequest(http.MethodGet, "/web", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/sign_in", w.Header().Get("Location"))
}
