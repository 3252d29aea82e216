// Package handlers holds the system endpoints: liveness, the schema
// manifest, and the database connectivity diagnostic.
package handlers

import (
	"net/http"

	"github.com/dreamnest/dreamnest-api/internal/api/respond"
	"github.com/dreamnest/dreamnest-api/internal/store"
	"github.com/dreamnest/dreamnest-api/pkg/logging"
)

// SystemHandler serves the non-API endpoints.
type SystemHandler struct {
	store       *store.Store // nil when running without a database
	databaseURL bool
	logger      *logging.Logger
}

// NewSystemHandler creates a system handler. store may be nil when the
// process runs on in-memory repositories.
func NewSystemHandler(s *store.Store, databaseURLSet bool, logger *logging.Logger) *SystemHandler {
	return &SystemHandler{
		store:       s,
		databaseURL: databaseURLSet,
		logger:      logger,
	}
}

// Root handles GET / requests
func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]string{"message": "DreamNest API running"})
}

// Schema handles GET /schema requests: the known collection names.
func (h *SystemHandler) Schema(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, map[string]any{"collections": store.Collections})
}

type diagnostics struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name,omitempty"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// TestDatabase handles GET /test requests: a best-effort connectivity
// report. Failures are reported in the body, never as a 5xx.
func (h *SystemHandler) TestDatabase(w http.ResponseWriter, r *http.Request) {
	d := diagnostics{
		Backend:          "running",
		Database:         "not available",
		DatabaseURL:      "not set",
		ConnectionStatus: "not connected",
		Collections:      []string{},
	}
	if h.databaseURL {
		d.DatabaseURL = "set"
	}

	if h.store == nil {
		respond.JSON(w, http.StatusOK, d)
		return
	}

	d.DatabaseName = h.store.Name()

	if err := h.store.Ping(r.Context()); err != nil {
		h.logger.Error("database ping failed", "error", err)
		d.Database = "error: " + truncate(err.Error(), 80)
		respond.JSON(w, http.StatusOK, d)
		return
	}
	d.ConnectionStatus = "connected"

	names, err := h.store.CollectionNames(r.Context())
	if err != nil {
		h.logger.Error("listing collections failed", "error", err)
		d.Database = "connected but error: " + truncate(err.Error(), 80)
		respond.JSON(w, http.StatusOK, d)
		return
	}
	if len(names) > 10 {
		names = names[:10]
	}
	d.Database = "connected"
	d.Collections = names

	respond.JSON(w, http.StatusOK, d)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
