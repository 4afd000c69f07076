package container

import (
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/charterforge/charter-forge/config"
	"github.com/charterforge/charter-forge/internal/infrastructure/fixtures"
	"github.com/charterforge/charter-forge/internal/infrastructure/store"
	"github.com/charterforge/charter-forge/pkg/helpers"
)

// app-level container to share constructed components across packages.
// Router modules auto-wire their dependencies from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	kv          store.KV
	catalog     *fixtures.Catalog
	jwtManager  *helpers.JWTManager
	redisClient *redis.Client // nil unless the redis store driver is configured
)

func SetConfig(c *config.Config)       { cfg = c }
func GetConfig() *config.Config        { return cfg }
func SetLogger(l *logrus.Logger)       { logger = l }
func GetLogger() *logrus.Logger        { return logger }
func SetKV(s store.KV)                 { kv = s }
func GetKV() store.KV                  { return kv }
func SetFixtures(c *fixtures.Catalog)  { catalog = c }
func GetFixtures() *fixtures.Catalog   { return catalog }
func SetJWT(m *helpers.JWTManager)     { jwtManager = m }
func GetJWT() *helpers.JWTManager      { return jwtManager }
func SetRedis(r *redis.Client)         { redisClient = r }
func GetRedis() *redis.Client          { return redisClient }
