package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/charterforge/charter-forge/internal/domain/entity"
	repo "github.com/charterforge/charter-forge/internal/domain/repository"
	"github.com/charterforge/charter-forge/pkg/helpers"
	"github.com/charterforge/charter-forge/pkg/response"
)

// Auth validates the session cookie and checks that the stored session still
// belongs to the same user. On success it sets userID, userEmail and
// userRole in the Gin context.
func Auth(sessions repo.SessionRepository, jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(helpers.SessionCookie)
		if err != nil || token == "" {
			response.AbortFail(c, http.StatusUnauthorized, "missing session token", nil)
			return
		}
		claims, err := jwt.ParseToken(token)
		if err != nil {
			response.AbortFail(c, http.StatusUnauthorized, "invalid session token", nil)
			return
		}
		u, ok, err := sessions.Get(c.Request.Context())
		if err != nil || !ok || u.ID != claims.UserID {
			response.AbortFail(c, http.StatusUnauthorized, "session not found", nil)
			return
		}
		c.Set("userID", u.ID)
		c.Set("userEmail", u.Email)
		c.Set("userRole", u.Role)
		c.Next()
	}
}

// RequireAdmin gates a route group to the coach/admin role. Must run after
// Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString("userRole") != entity.RoleAdmin {
			response.AbortFail(c, http.StatusForbidden, "admin role required", nil)
			return
		}
		c.Next()
	}
}
