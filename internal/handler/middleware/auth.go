package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"booking-calendar/internal/pkg/jwt"
	"booking-calendar/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxRoleKey = "role"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireEditor gates every mutation behind the shared-password token.
func (m *AuthMiddleware) RequireEditor() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		if role != jwt.RoleEditor {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		setRole(c, role)
		c.Next()
	}
}

// OptionalEditor authenticates the request if a token is present, but
// does not abort on failure. Read endpoints use it to decide whether
// prices may be disclosed.
func (m *AuthMiddleware) OptionalEditor() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.Next()
			return
		}

		role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			// Invalid token; continue as an anonymous viewer.
			c.Next()
			return
		}

		setRole(c, role)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func setRole(c *gin.Context, role string) {
	c.Set(ctxRoleKey, role)
	c.Set("jwt_claims", map[string]any{
		"role": role,
	})
}

// IsEditor reports whether the request carries a valid editor token.
func IsEditor(c *gin.Context) bool {
	role, exists := c.Get(ctxRoleKey)
	if !exists {
		return false
	}
	r, ok := role.(string)
	return ok && r == jwt.RoleEditor
}
