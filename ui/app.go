// Package ui serves the HTTP API: constants, sequence analysis, stored
// reports, and quasicrystal generation.
package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"cedralab/adapters/postgres"
	"cedralab/internal"
	"cedralab/internal/analysis"
	"cedralab/internal/config"
)

// App represents the HTTP application
type App struct {
	router  *chi.Mux
	builder *analysis.Builder
	reports *postgres.ReportRepository // nil when persistence is disabled
	cfg     config.AnalysisConfig
	logger  *internal.Logger
}

// NewApp creates a new HTTP application. reports may be nil; analysis then
// still works but nothing is stored.
func NewApp(cfg config.AnalysisConfig, reports *postgres.ReportRepository, logger *internal.Logger) *App {
	app := &App{
		router:  chi.NewRouter(),
		builder: analysis.NewBuilder(),
		reports: reports,
		cfg:     cfg,
		logger:  logger,
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Route("/api", func(r chi.Router) {
		r.Get("/constants", a.handleConstants)
		r.Post("/analyze", a.handleAnalyze)
		r.Get("/reports", a.handleListReports)
		r.Get("/reports/{id}", a.handleGetReport)
		r.Get("/quasicrystal", a.handleQuasicrystal)
		r.Post("/solve", a.handleSolve)
	})

	// Human-readable views
	a.router.Get("/constants", a.handleConstantsHTML)
	a.router.Get("/report/{id}", a.handleReportHTML)
}

// Router returns the HTTP handler.
func (a *App) Router() http.Handler {
	return a.router
}

// Start runs the HTTP server on the given port.
func (a *App) Start(port string) error {
	a.logger.Info("HTTP server listening on :%s", port)
	return http.ListenAndServe(":"+port, a.router)
}
