// Package api wires the HTTP routes of the simulator.
package api

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"zucit/internal/api/handlers"
	"zucit/internal/api/middleware"
	"zucit/internal/api/models"
	"zucit/internal/config"
	"zucit/internal/data"
	"zucit/internal/metrics"
	"zucit/internal/projection"

	"github.com/gin-gonic/gin"
)

// Deps are the collaborators the router needs. Metrics and Logger may be nil.
type Deps struct {
	Engine    *projection.Engine
	Catalog   *data.Catalog
	Metrics   *metrics.Metrics
	Logger    *slog.Logger
	RateLimit config.RateLimitConfig
	StaticDir string
}

func NewRouter(d Deps) *gin.Engine {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}

	router := gin.New()
	router.Use(middleware.Logger(logger))
	router.Use(middleware.CORS())
	if d.Metrics != nil {
		router.Use(middleware.Metrics(d.Metrics))
	}
	router.Use(middleware.ErrorHandler())

	simulationHandler := handlers.NewSimulationHandler(d.Engine, d.Catalog, d.Metrics)
	companyHandler := handlers.NewCompanyHandler(d.Catalog)
	parameterHandler := handlers.NewParameterHandler(d.Engine.Params())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if d.Metrics != nil {
		router.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	var limit gin.HandlerFunc
	if d.RateLimit.Enabled {
		limit = middleware.NewRateLimiter(d.RateLimit.RPS, d.RateLimit.Burst).Middleware()
	} else {
		limit = func(c *gin.Context) { c.Next() }
	}

	// API routes
	api := router.Group("/api/v1", limit)
	{
		api.POST("/simulate", simulationHandler.Simulate)
		api.POST("/simulate/export", simulationHandler.Export)

		api.GET("/companies", companyHandler.ListCompanies)
		api.GET("/companies/:id", companyHandler.GetCompany)
		api.POST("/companies/:id/simulate", simulationHandler.SimulateCompany)

		api.GET("/parameters", parameterHandler.ListParameters)
	}

	// Routes of the original web app, kept for its front end.
	legacy := router.Group("", limit)
	{
		legacy.POST("/simulate", simulationHandler.LegacySimulate)
		legacy.GET("/company/:id", companyHandler.LegacyGetCompany)
	}

	serveStatic(router, d.StaticDir, logger)
	return router
}

// serveStatic serves the single-page front end from dir when it exists.
// Unknown API paths still answer with a JSON 404.
func serveStatic(router *gin.Engine, dir string, logger *slog.Logger) {
	notFound := func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.NewError(models.CodeNotFound, "Not found"))
	}

	if dir == "" {
		router.NoRoute(notFound)
		return
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		logger.Warn("static directory not found, skipping static file serving", "dir", dir)
		router.NoRoute(notFound)
		return
	}

	router.Static("/assets", filepath.Join(dir, "assets"))
	router.Static("/static", filepath.Join(dir, "static"))
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			notFound(c)
			return
		}
		c.File(filepath.Join(dir, "index.html"))
	})
	logger.Info("serving static files", "dir", dir)
}
