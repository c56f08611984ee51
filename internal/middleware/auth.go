package middleware

import (
	"net/http"
	"strings"

	"mykonos/internal/apierror"
	"mykonos/internal/repository"

	"github.com/gin-gonic/gin"
)

// Context keys set by SessionAuth for downstream handlers.
const (
	WebUserIDKey   = "web_user_id"
	WebUserRoleKey = "web_user_role"
)

// SessionAuth resolves the Bearer token against web_users.session_token.
// Tokens are opaque and stored server-side, so logout revokes them instantly.
func SessionAuth(users repository.WebUserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Autenticacion requerida"))
			return
		}

		u, err := users.FindBySessionToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Sesion invalida o expirada"))
			return
		}

		c.Set(WebUserIDKey, u.ID)
		c.Set(WebUserRoleKey, u.Role)
		c.Next()
	}
}

// RequireAdmin gates a route group on the admin role. Must run after
// SessionAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(WebUserRoleKey) != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Permisos insuficientes"))
			return
		}
		c.Next()
	}
}

// BearerToken extracts the raw token from the Authorization header, or "".
func BearerToken(c *gin.Context) string { return bearerToken(c) }

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
