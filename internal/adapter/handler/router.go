package handler

import (
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"

	"github.com/speechcoach/intro-scorer/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg             *config.Config
	scoreController *ScoreController
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, scoreController *ScoreController) *Router {
	return &Router{
		cfg:             cfg,
		scoreController: scoreController,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// Scoring form
	e.File("/", filepath.Join(rt.cfg.Server.StaticDir, "index.html"))
	e.Static("/static", rt.cfg.Server.StaticDir)

	// API v1 group
	v1 := e.Group("/v1")
	v1.POST("/score", rt.scoreController.ScoreTranscript)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
