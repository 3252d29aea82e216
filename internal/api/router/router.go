package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dreamnest/dreamnest-api/internal/catalog"
	"github.com/dreamnest/dreamnest-api/internal/followups"
	"github.com/dreamnest/dreamnest-api/internal/http/handlers"
	httpmiddleware "github.com/dreamnest/dreamnest-api/internal/http/middleware"
	"github.com/dreamnest/dreamnest-api/internal/leads"
	"github.com/dreamnest/dreamnest-api/internal/observability/metrics"
	"github.com/dreamnest/dreamnest-api/internal/quotations"
	"github.com/dreamnest/dreamnest-api/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	System             *handlers.SystemHandler
	Catalog            *catalog.Handler
	Leads              *leads.Handler
	FollowUps          *followups.Handler
	Quotations         *quotations.Handler
	HTTPMetrics        *metrics.HTTPMetrics
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}
	if cfg.HTTPMetrics != nil {
		r.Use(cfg.HTTPMetrics.Middleware)
	}

	// System endpoints
	r.Get("/", cfg.System.Root)
	r.Get("/schema", cfg.System.Schema)
	r.Get("/test", cfg.System.TestDatabase)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api", func(api chi.Router) {
		api.Get("/catalog", cfg.Catalog.GetCatalog)
		api.Post("/communities", cfg.Catalog.CreateCommunity)
		api.Post("/towers", cfg.Catalog.CreateTower)
		api.Post("/flats", cfg.Catalog.CreateFlat)
		api.Post("/floorplans", cfg.Catalog.CreateFloorPlan)
		api.Post("/users", cfg.Catalog.CreateUser)

		api.Route("/leads", func(r chi.Router) {
			r.Post("/", cfg.Leads.CreateLead)
			r.Get("/", cfg.Leads.ListLeads)
			r.Patch("/{leadID}", cfg.Leads.UpdateLead)
		})

		api.Route("/followups", func(r chi.Router) {
			r.Post("/", cfg.FollowUps.CreateFollowUp)
			r.Get("/{leadID}", cfg.FollowUps.ListByLead)
		})

		api.Route("/quotations", func(r chi.Router) {
			r.Post("/compute", cfg.Quotations.ComputeQuote)
			r.Post("/", cfg.Quotations.CreateQuotation)
			r.Get("/by-lead/{leadID}", cfg.Quotations.ListByLead)
		})
	})

	return r
}
