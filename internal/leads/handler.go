package leads

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dreamnest/dreamnest-api/internal/api/respond"
	"github.com/dreamnest/dreamnest-api/internal/schema"
	"github.com/dreamnest/dreamnest-api/internal/store"
	"github.com/dreamnest/dreamnest-api/pkg/logging"
)

// Handler handles HTTP requests for leads
type Handler struct {
	repo   Repository
	logger *logging.Logger
}

// NewHandler creates a new leads handler
func NewHandler(repo Repository, logger *logging.Logger) *Handler {
	return &Handler{
		repo:   repo,
		logger: logger,
	}
}

// CreateLead handles POST /api/leads requests
func (h *Handler) CreateLead(w http.ResponseWriter, r *http.Request) {
	var req CreateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode lead request", "error", err)
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := schema.Validate(&req); err != nil {
		respond.ValidationError(w, err)
		return
	}

	lead := NewLead(&req)
	id, err := h.repo.Create(r.Context(), lead)
	if err != nil {
		h.logger.Error("failed to create lead", "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to create lead")
		return
	}

	h.logger.Info("lead created", "id", id, "source", lead.Source)
	respond.JSON(w, http.StatusCreated, map[string]any{"id": id, "status": lead.Status})
}

// ListLeads handles GET /api/leads requests. With ?assigned_to=X only
// leads whose agent or manager assignment matches X are returned.
func (h *Handler) ListLeads(w http.ResponseWriter, r *http.Request) {
	assignedTo := r.URL.Query().Get("assigned_to")

	list, err := h.repo.List(r.Context(), assignedTo)
	if err != nil {
		h.logger.Error("failed to list leads", "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to list leads")
		return
	}

	respond.JSON(w, http.StatusOK, list)
}

// UpdateLead handles PATCH /api/leads/{leadID} requests: partial update
// of status and assignment fields.
func (h *Handler) UpdateLead(w http.ResponseWriter, r *http.Request) {
	id, err := store.ParseID(chi.URLParam(r, "leadID"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid lead id")
		return
	}

	var req UpdateLeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	set := req.Fields()
	if set == nil {
		respond.JSON(w, http.StatusOK, map[string]any{"updated": false})
		return
	}

	matched, err := h.repo.Update(r.Context(), id, set)
	if err != nil {
		h.logger.Error("failed to update lead", "error", err, "id", id.Hex())
		respond.Error(w, http.StatusInternalServerError, "failed to update lead")
		return
	}
	if matched == 0 {
		respond.Error(w, http.StatusNotFound, ErrLeadNotFound.Error())
		return
	}

	h.logger.Info("lead updated", "id", id.Hex())
	respond.JSON(w, http.StatusOK, map[string]any{"updated": true})
}
