package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"nutrisearch/internal/handlers"
	"nutrisearch/internal/handlers/api"
	"nutrisearch/internal/middleware"
)

// RegisterRoutes registers all application routes.
func (s *Server) RegisterRoutes() {
	// Initialize middleware
	widgetMiddleware := middleware.NewWidgetMiddleware(s.Registry)

	// Initialize handlers
	widgetHandler := handlers.NewWidgetHandler(s.Table, s.Cfg, s.Landing)
	probeHandler := handlers.NewProbeHandler(s.Table, s.Registry)
	foodAPI := api.NewFoodHandler(s.Table)
	searchAPI := api.NewSearchHandler(s.Cfg)

	// Ops routes
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Frontend routes
	s.App.Get("/", widgetMiddleware.Attach, widgetHandler.Index)
	s.App.Post("/search", widgetMiddleware.Attach, widgetHandler.Search)
	s.App.Get("/search/result", widgetMiddleware.Attach, widgetHandler.Result)
	s.App.Post("/search/reset", widgetMiddleware.Attach, widgetHandler.Reset)
	s.App.Post("/search/quick/:index", widgetMiddleware.Attach, widgetHandler.Quick)

	// JSON API routes
	v1 := s.App.Group("/api/v1")
	v1.Get("/foods", foodAPI.List)
	v1.Get("/foods/:name", foodAPI.Get)
	v1.Get("/search", widgetMiddleware.Attach, searchAPI.State)
	v1.Post("/search", widgetMiddleware.Attach, searchAPI.Submit)
	v1.Delete("/search", widgetMiddleware.Attach, searchAPI.Reset)
}
