package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"habitlens/app"
)

// App is the HTTP front of the dashboard. It only translates requests into
// service calls and renders the results as JSON; charts are drawn client side.
type App struct {
	router  *chi.Mux
	service *app.DashboardService
	metrics *apiMetrics
}

// NewApp creates the router over a dashboard service
func NewApp(service *app.DashboardService) *App {
	a := &App{
		router:  chi.NewRouter(),
		service: service,
		metrics: newAPIMetrics(service.RowCount()),
	}

	a.setupMiddleware()
	a.setupRoutes()

	return a
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))
	a.router.Use(render.SetContentType(render.ContentTypeJSON))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/healthz", a.handleHealth)
	a.router.Method(http.MethodGet, "/metrics", a.metrics.handler())

	a.router.Route("/api", func(r chi.Router) {
		r.Get("/options", a.handleOptions)
		r.Get("/dashboard", a.handleDashboard)
	})

	a.router.NotFound(a.handleNotFound)
	a.router.MethodNotAllowed(a.handleMethodNotAllowed)
}

// ServeHTTP implements http.Handler
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

// Start serves the application on addr
func (a *App) Start(addr string) error {
	return http.ListenAndServe(addr, a.router)
}
