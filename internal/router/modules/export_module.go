package modules

import (
	"github.com/gin-gonic/gin"

	repo "github.com/charterforge/charter-forge/internal/domain/repository"
	handlers "github.com/charterforge/charter-forge/internal/interface/http"
	"github.com/charterforge/charter-forge/internal/interface/middleware"
	"github.com/charterforge/charter-forge/pkg/helpers"
)

// ExportModule wires the (stubbed) document export routes:
// POST /api/export/pdf, POST /api/export/word
type ExportModule struct {
	Handler  *handlers.ExportHandler
	Sessions repo.SessionRepository
	JWT      *helpers.JWTManager
}

func NewExport(h *handlers.ExportHandler, sessions repo.SessionRepository, jwt *helpers.JWTManager) *ExportModule {
	return &ExportModule{Handler: h, Sessions: sessions, JWT: jwt}
}

func (m *ExportModule) Register(rg *gin.RouterGroup) {
	exp := rg.Group("/export")
	exp.Use(middleware.Auth(m.Sessions, m.JWT))
	{
		exp.POST("/pdf", m.Handler.PDF)
		exp.POST("/word", m.Handler.Word)
	}
}
