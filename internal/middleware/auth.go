package middleware

import (
	"strings"

	"homeserve_backend/internal/auth"
	"homeserve_backend/internal/logger"
	"homeserve_backend/internal/services"
	"homeserve_backend/pkg/apperrors"
	"homeserve_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SessionMiddleware resolves the caller from a bearer token or the session
// cookie. Requests without a valid session continue as anonymous; each
// operation decides whether that is acceptable.
func SessionMiddleware(authService services.AuthService, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c, cookieName)
		if token == "" {
			c.Next()
			return
		}
		c.Set(string(contextkeys.SessionTokenContextKey), token)

		v, _ := c.Get(string(contextkeys.DBContextKey))
		db, ok := v.(*gorm.DB)
		if !ok {
			c.Next()
			return
		}

		identity, err := authService.Current(db, token)
		if err != nil {
			if appErr, ok := apperrors.AsAppError(err); !ok || appErr.HTTPCode >= 500 {
				logger.CtxWithError(c.Request.Context(), "failed to resolve session", err)
			}
			c.Next()
			return
		}

		c.Set(string(contextkeys.IdentityContextKey), identity)
		ctx := logger.WithAccount(c.Request.Context(), string(identity.Kind), identity.ID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// RequireAuth rejects anonymous callers.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetIdentity(c).IsAuthenticated() {
			apperrors.HandleError(c, apperrors.ErrNotAuthenticated)
			return
		}
		c.Next()
	}
}

// GetIdentity returns the resolved caller, or the anonymous identity.
func GetIdentity(c *gin.Context) auth.Identity {
	if v, ok := c.Get(string(contextkeys.IdentityContextKey)); ok {
		if identity, ok := v.(auth.Identity); ok {
			return identity
		}
	}
	return auth.Identity{}
}

// GetSessionToken returns the raw token sent with the request, if any.
func GetSessionToken(c *gin.Context) string {
	return c.GetString(string(contextkeys.SessionTokenContextKey))
}

func extractToken(c *gin.Context, cookieName string) string {
	if header := c.GetHeader("Authorization"); strings.HasPrefix(header, "Bearer ") {
		if token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer ")); token != "" {
			return token
		}
	}
	if cookieName == "" {
		return ""
	}
	if cookie, err := c.Cookie(cookieName); err == nil {
		return cookie
	}
	return ""
}
