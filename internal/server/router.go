package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/aurorapdrrmo/sitrep-backend/internal/handlers"
	"github.com/aurorapdrrmo/sitrep-backend/internal/middleware"
)

type RouterConfig struct {
	AuthHandler    *handlers.AuthHandler
	AuthMiddleware *middleware.AuthMiddleware
	TyphoonHandler *handlers.TyphoonHandler
	SummaryHandler *handlers.SummaryHandler
	RelinkHandler  *handlers.RelinkHandler
	ReportRoutes   []handlers.ReportRoutes
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5174",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// Public
	router.GET("/healthcheck", handlers.HealthCheck)
	router.POST("/api/login", cfg.AuthHandler.Login)

	// Protected
	api := router.Group("/api")
	api.Use(cfg.AuthMiddleware.RequireAuth())

	api.GET("/typhoon/current", cfg.TyphoonHandler.Current)
	api.GET("/summary", cfg.SummaryHandler.Summary)
	for _, routes := range cfg.ReportRoutes {
		routes.Register(api)
	}

	// Admin-only event lifecycle + maintenance
	admin := api.Group("/")
	admin.Use(cfg.AuthMiddleware.RequireAdmin())
	admin.POST("/typhoon", cfg.TyphoonHandler.Create)
	admin.POST("/typhoon/:id/pause", cfg.TyphoonHandler.Pause)
	admin.POST("/typhoon/:id/resume", cfg.TyphoonHandler.Resume)
	admin.POST("/typhoon/:id/end", cfg.TyphoonHandler.End)
	admin.POST("/typhoon/:id/export", cfg.TyphoonHandler.Export)
	admin.POST("/maintenance/relink/:id", cfg.RelinkHandler.Relink)

	return router
}
