package server

import (
	"github.com/gin-gonic/gin"

	"github.com/rencanalab/rpm-backend/internal/http/handlers"
	"github.com/rencanalab/rpm-backend/internal/http/middleware"
	"github.com/rencanalab/rpm-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	AllowedOrigins []string

	AuthMiddleware *middleware.AuthMiddleware
	HealthHandler  *handlers.HealthHandler
	AuthHandler    *handlers.AuthHandler
	FormHandler    *handlers.FormHandler
	PlanHandler    *handlers.PlanHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(cfg.Log))

	router.GET("/healthcheck", cfg.HealthHandler.HealthCheck)

	api := router.Group("/api")
	api.POST("/login", cfg.AuthHandler.Login)

	protected := api.Group("")
	protected.Use(cfg.AuthMiddleware.RequireAuth())
	{
		protected.GET("/form", cfg.FormHandler.GetState)
		protected.POST("/form", cfg.FormHandler.ReplaceInput)
		protected.PUT("/form/field", cfg.FormHandler.SetField)
		protected.PUT("/form/sessions", cfg.FormHandler.SetSessionCount)
		protected.PUT("/form/sessions/:n/pedagogy", cfg.FormHandler.SetPedagogy)
		protected.POST("/form/dimensions/toggle", cfg.FormHandler.ToggleDimension)
		protected.POST("/form/submit", cfg.FormHandler.Submit)
		protected.GET("/form/result", cfg.FormHandler.Result)
		protected.GET("/form/result/html", cfg.FormHandler.ResultHTML)

		protected.POST("/rpm/generate", cfg.PlanHandler.Generate)
	}

	return router
}
