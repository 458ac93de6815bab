package main

import (
	"fmt"
	"os"

	"github.com/rencanalab/rpm-backend/internal/auth"
	"github.com/rencanalab/rpm-backend/internal/config"
	"github.com/rencanalab/rpm-backend/internal/form"
	"github.com/rencanalab/rpm-backend/internal/http/handlers"
	"github.com/rencanalab/rpm-backend/internal/http/middleware"
	"github.com/rencanalab/rpm-backend/internal/http/validation"
	"github.com/rencanalab/rpm-backend/internal/platform/gemini"
	"github.com/rencanalab/rpm-backend/internal/platform/logger"
	"github.com/rencanalab/rpm-backend/internal/rpm"
	"github.com/rencanalab/rpm-backend/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Server.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	llm, err := gemini.NewClient(gemini.Config{
		APIKey:     cfg.Gemini.APIKey,
		BaseURL:    cfg.Gemini.BaseURL,
		Model:      cfg.Gemini.Model,
		Timeout:    cfg.Gemini.Timeout,
		MaxRetries: cfg.Gemini.MaxRetries,
	}, log)
	if err != nil {
		log.Error("Failed to init gemini client", "error", err.Error())
		os.Exit(1)
	}

	generator := rpm.NewGenerator(llm, log)
	provider := auth.NewAllowlistProvider(cfg.Auth.Users)
	issuer := auth.NewTokenIssuer(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	store := form.NewStore(cfg.Form.MaxSessions)

	validate := validation.New()

	router := server.NewRouter(server.RouterConfig{
		Log:            log,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AuthMiddleware: middleware.NewAuthMiddleware(log, issuer),
		HealthHandler:  handlers.NewHealthHandler(),
		AuthHandler:    handlers.NewAuthHandler(provider, issuer),
		FormHandler:    handlers.NewFormHandler(log, store, generator, validate),
		PlanHandler:    handlers.NewPlanHandler(log, generator, validate),
	})

	log.Info("Server starting", "port", cfg.Server.Port, "model", cfg.Gemini.Model)
	if err := router.Run(cfg.Server.Port); err != nil {
		log.Error("Server exited", "error", err.Error())
		os.Exit(1)
	}
}
