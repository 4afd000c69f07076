package modules

import (
	"github.com/gin-gonic/gin"

	repo "github.com/charterforge/charter-forge/internal/domain/repository"
	handlers "github.com/charterforge/charter-forge/internal/interface/http"
	"github.com/charterforge/charter-forge/internal/interface/middleware"
	"github.com/charterforge/charter-forge/pkg/helpers"
)

// PillarModule wires the questionnaire routes. All protected:
// GET /api/pillars, GET /api/pillars/:id,
// PUT /api/pillars/:id/questions/:qid
type PillarModule struct {
	Handler  *handlers.PillarHandler
	Sessions repo.SessionRepository
	JWT      *helpers.JWTManager
}

func NewPillar(h *handlers.PillarHandler, sessions repo.SessionRepository, jwt *helpers.JWTManager) *PillarModule {
	return &PillarModule{Handler: h, Sessions: sessions, JWT: jwt}
}

func (m *PillarModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/pillars")
	auth.Use(middleware.Auth(m.Sessions, m.JWT))
	{
		auth.GET("", m.Handler.List)
		auth.GET("/:id", m.Handler.Get)
		auth.PUT("/:id/questions/:qid", m.Handler.UpdateResponse)
	}
}
