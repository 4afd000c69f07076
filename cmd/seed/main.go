package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/charterforge/charter-forge/config"
	"github.com/charterforge/charter-forge/internal/infrastructure/fixtures"
	"github.com/charterforge/charter-forge/internal/infrastructure/store"
	"github.com/charterforge/charter-forge/pkg/helpers"
)

// Seeds the configured store with the bundled demo answers so a fresh
// deployment has partially completed charters to look at.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	catalog, err := fixtures.Load()
	if err != nil {
		log.Fatalf("failed to load fixtures: %v", err)
	}

	var kv store.KV
	switch cfg.StoreDriver {
	case "file":
		kv, err = store.NewFile(cfg.StoreDir)
		if err != nil {
			log.Fatalf("failed to open file store: %v", err)
		}
	case "redis":
		rdb, err := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer func() { _ = rdb.Close() }()
		kv = store.NewRedis(rdb)
	default:
		log.Fatalf("seeding requires a durable store driver, got %q", cfg.StoreDriver)
	}

	ctx := context.Background()
	responses := store.NewResponseRepository(kv)
	activity := store.NewActivityRepository(kv)

	now := time.Now().UTC()
	for userID, m := range catalog.SeedResponses() {
		if err := responses.Save(ctx, userID, m); err != nil {
			log.Fatalf("failed to seed responses for user %s: %v", userID, err)
		}
		if err := activity.Touch(ctx, userID, now); err != nil {
			log.Fatalf("failed to stamp activity for user %s: %v", userID, err)
		}
		fmt.Printf("seeded responses for user %s (%d pillars)\n", userID, len(m))
	}
	fmt.Println("seed complete")
}
