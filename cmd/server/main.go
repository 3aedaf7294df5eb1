package main

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/mealtrack/backend/config"
	httpDelivery "github.com/mealtrack/backend/internal/delivery/http"
	"github.com/mealtrack/backend/internal/infrastructure/cache"
	"github.com/mealtrack/backend/internal/infrastructure/sqlite"
	"github.com/mealtrack/backend/internal/usecase"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Server.Environment == "production" {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	log.WithFields(logrus.Fields{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"database":    cfg.Database.Path,
	}).Info("starting mealtrack backend v1.0.0")

	// Open storage and migrate the schema
	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}

	mealRepo := sqlite.NewMealRepository(db)
	goalRepo := sqlite.NewGoalRepository(db)
	userRepo := sqlite.NewUserRepository(db)
	defaultsCache := cache.NewDefaultsCache(cfg.Cache.DefaultsTTL)

	// Initialize usecase layer
	authService := usecase.NewAuthService(userRepo, usecase.AuthServiceConfig{
		JWTSecret:   cfg.Auth.JWTSecret,
		TokenTTL:    cfg.Auth.TokenTTL,
		RememberTTL: cfg.Auth.RememberTTL,
	})
	mealService := usecase.NewMealService(mealRepo, defaultsCache)
	goalService := usecase.NewGoalService(goalRepo)
	summaryService := usecase.NewSummaryService(mealRepo, goalRepo)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(authService, mealService, goalService, summaryService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler, log)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Infof("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
