package router

import (
	"github.com/charterforge/charter-forge/internal/application"
	"github.com/charterforge/charter-forge/internal/container"
	"github.com/charterforge/charter-forge/internal/infrastructure/store"
	handlers "github.com/charterforge/charter-forge/internal/interface/http"
	"github.com/charterforge/charter-forge/internal/router/modules"
)

// InitModules constructs all repositories, services and handlers from the
// container singletons and registers every feature module. Called once
// during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	kv := container.GetKV()
	catalog := container.GetFixtures()

	sessions := store.NewSessionRepository(kv)
	responses := store.NewResponseRepository(kv)
	profiles := store.NewProfileRepository(kv)
	notes := store.NewNoteRepository(kv)
	activity := store.NewActivityRepository(kv)

	authSvc := application.NewAuthService(catalog, sessions, profiles, logger, cfg.SimLatency)
	pillarSvc := application.NewPillarService(catalog, responses, activity, logger, cfg.SimLatency)
	adminSvc := application.NewAdminService(catalog, profiles, activity, notes, pillarSvc, logger, cfg.SimLatency)
	exportSvc := application.NewExportService(logger, cfg.ExportLatency)

	authHandler := handlers.NewAuthHandler(authSvc, container.GetJWT(), logger, cfg.CookieDomain, cfg.CookieSecure)
	pillarHandler := handlers.NewPillarHandler(pillarSvc, logger)
	adminHandler := handlers.NewAdminHandler(adminSvc, logger)
	exportHandler := handlers.NewExportHandler(exportSvc, logger)

	r.Add(modules.NewAuth(authHandler, sessions, container.GetJWT()))
	r.Add(modules.NewPillar(pillarHandler, sessions, container.GetJWT()))
	r.Add(modules.NewAdmin(adminHandler, sessions, container.GetJWT()))
	r.Add(modules.NewExport(exportHandler, sessions, container.GetJWT()))
}
