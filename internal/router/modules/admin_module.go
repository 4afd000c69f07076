package modules

import (
	"github.com/gin-gonic/gin"

	repo "github.com/charterforge/charter-forge/internal/domain/repository"
	handlers "github.com/charterforge/charter-forge/internal/interface/http"
	"github.com/charterforge/charter-forge/internal/interface/middleware"
	"github.com/charterforge/charter-forge/pkg/helpers"
)

// AdminModule wires the coach routes, gated to the admin role:
// GET /api/admin/participants, GET /api/admin/participants/:id,
// POST /api/admin/participants/:id/notes
type AdminModule struct {
	Handler  *handlers.AdminHandler
	Sessions repo.SessionRepository
	JWT      *helpers.JWTManager
}

func NewAdmin(h *handlers.AdminHandler, sessions repo.SessionRepository, jwt *helpers.JWTManager) *AdminModule {
	return &AdminModule{Handler: h, Sessions: sessions, JWT: jwt}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.Auth(m.Sessions, m.JWT), middleware.RequireAdmin())
	{
		admin.GET("/participants", m.Handler.Participants)
		admin.GET("/participants/:id", m.Handler.Participant)
		admin.POST("/participants/:id/notes", m.Handler.AddNote)
	}
}
