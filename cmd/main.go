package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/charterforge/charter-forge/config"
	"github.com/charterforge/charter-forge/internal/container"
	"github.com/charterforge/charter-forge/internal/infrastructure/fixtures"
	"github.com/charterforge/charter-forge/internal/infrastructure/store"
	"github.com/charterforge/charter-forge/internal/interface/middleware"
	"github.com/charterforge/charter-forge/internal/router"
	"github.com/charterforge/charter-forge/pkg/helpers"
	"github.com/charterforge/charter-forge/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	catalog, err := fixtures.Load()
	if err != nil {
		log.Fatalf("failed to load fixtures: %v", err)
	}

	kv, rdb, err := buildStore(cfg)
	if err != nil {
		log.Fatalf("failed to init store: %v", err)
	}
	if rdb != nil {
		defer func() { _ = rdb.Close() }()
	}

	jwtManager := helpers.NewJWTManager(cfg.JWTSecret, cfg.SessionTTL)

	// Provide infra singletons to container for module auto-wiring
	container.SetConfig(cfg)
	container.SetLogger(logger)
	container.SetKV(kv)
	container.SetFixtures(catalog)
	container.SetJWT(jwtManager)
	container.SetRedis(rdb)

	// Gin engine and global middleware
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	corsCfg := cors.Config{
		AllowOrigins:     cfg.CORSOrigins(),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	r.Use(cors.New(corsCfg))
	if cfg.HTTPLogEnabled || cfg.Env == "development" {
		r.Use(gin.Logger())
	}

	reg := router.NewRegistry(r)
	router.InitModules(reg)
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}

func buildStore(cfg *config.Config) (store.KV, *redis.Client, error) {
	switch cfg.StoreDriver {
	case "memory":
		return store.NewMemory(), nil, nil
	case "file":
		kv, err := store.NewFile(cfg.StoreDir)
		return kv, nil, err
	case "redis":
		rdb, err := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return nil, nil, err
		}
		return store.NewRedis(rdb), rdb, nil
	default:
		return nil, nil, errors.New("unknown STORE_DRIVER: " + cfg.StoreDriver)
	}
}
