package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"recitation-backend/internal/shared/response"
	"recitation-backend/pkg/jwt"
)

// Identity is the verified request-scoped identity. Handlers never consult
// ambient session state; ownership checks are made against this value only.
type Identity struct {
	UserID   int64
	Username string
	IsAdmin  bool
	TokenID  string
}

const identityKey = "identity"

// AccessTokenCookie is set on sign-in so the browser surface can carry the
// token without an Authorization header.
const AccessTokenCookie = "access_token"

// TokenRevoker answers whether a token's JTI has been revoked by logout.
type TokenRevoker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// AuthMiddleware verifies the access token and stores the Identity in the
// request context. Unauthenticated requests get 401.
func AuthMiddleware(tokens *jwt.Manager, revoked TokenRevoker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := resolveIdentity(c, tokens, revoked)
		if !ok {
			response.Unauthorized(c, "authentication required")
			c.Abort()
			return
		}
		c.Set(identityKey, ident)
		c.Next()
	}
}

// WebAuthMiddleware is the browser-facing variant: instead of a 401 it
// redirects to the sign-in page, matching the legacy surface.
func WebAuthMiddleware(tokens *jwt.Manager, revoked TokenRevoker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := resolveIdentity(c, tokens, revoked)
		if !ok {
			c.Redirect(http.StatusFound, "/sign_in")
			c.Abort()
			return
		}
		c.Set(identityKey, ident)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the identity when a valid token is
// present and continues either way. Logout uses it so the cookie is cleared
// even when the token has already expired.
func OptionalAuthMiddleware(tokens *jwt.Manager, revoked TokenRevoker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if ident, ok := resolveIdentity(c, tokens, revoked); ok {
			c.Set(identityKey, ident)
		}
		c.Next()
	}
}

// GetIdentity returns the identity placed by the auth middleware.
func GetIdentity(c *gin.Context) (Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return Identity{}, false
	}
	ident, ok := v.(Identity)
	return ident, ok
}

func resolveIdentity(c *gin.Context, tokens *jwt.Manager, revoked TokenRevoker) (Identity, bool) {
	raw := extractToken(c)
	if raw == "" {
		return Identity{}, false
	}

	claims, err := tokens.ValidateToken(raw)
	if err != nil {
		return Identity{}, false
	}

	if revoked != nil && claims.ID != "" {
		if gone, err := revoked.IsRevoked(c.Request.Context(), claims.ID); err == nil && gone {
			return Identity{}, false
		}
	}

	return Identity{
		UserID:   claims.UserID,
		Username: claims.Username,
		IsAdmin:  claims.IsAdmin,
		TokenID:  claims.ID,
	}, true
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
		return ""
	}

	cookie, err := c.Cookie(AccessTokenCookie)
	if err != nil {
		return ""
	}
	return cookie
}
