package main

import (
	"fmt"
	"log"
	"time"

	"github.com/werawoot/Krua-Thai1-sub002/configs"
	"github.com/werawoot/Krua-Thai1-sub002/pkg/logger"
	"github.com/werawoot/Krua-Thai1-sub002/repository"
	"github.com/werawoot/Krua-Thai1-sub002/routes"

	"github.com/gin-gonic/gin"
	"github.com/werawoot/Krua-Thai1-sub002/middlewares"
	"go.uber.org/zap"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedAdmin(cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedLookups(); err != nil {
		log.Fatalf("seed lookups failed: %v", err)
	}

	// sweep stale guest carts in the background
	cartRepo := repository.NewCartRepository(db)
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := cartRepo.PurgeStale(cfg.CartTTL); err != nil {
				logger.L.Warn("cart purge failed", zap.Error(err))
			}
		}
	}()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())
	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logger.L.Info("server starting", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
