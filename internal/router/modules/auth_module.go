package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/charterforge/charter-forge/internal/container"
	repo "github.com/charterforge/charter-forge/internal/domain/repository"
	handlers "github.com/charterforge/charter-forge/internal/interface/http"
	"github.com/charterforge/charter-forge/internal/interface/middleware"
	"github.com/charterforge/charter-forge/pkg/helpers"
)

// AuthModule wires login/session/profile routes.
// Public: POST /api/login
// Protected: POST /api/logout, GET /api/session, GET/PUT /api/profile
type AuthModule struct {
	Handler  *handlers.AuthHandler
	Sessions repo.SessionRepository
	JWT      *helpers.JWTManager
}

func NewAuth(h *handlers.AuthHandler, sessions repo.SessionRepository, jwt *helpers.JWTManager) *AuthModule {
	return &AuthModule{Handler: h, Sessions: sessions, JWT: jwt}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Login limiter only engages when redis is configured.
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute)
	rg.POST("/login", loginLimiter, m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Sessions, m.JWT))
	{
		auth.POST("/logout", m.Handler.Logout)
		auth.GET("/session", m.Handler.Session)
		auth.GET("/profile", m.Handler.GetProfile)
		auth.PUT("/profile", m.Handler.UpdateProfile)
	}
}
