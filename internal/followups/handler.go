package followups

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dreamnest/dreamnest-api/internal/api/respond"
	"github.com/dreamnest/dreamnest-api/internal/leads"
	"github.com/dreamnest/dreamnest-api/internal/schema"
	"github.com/dreamnest/dreamnest-api/internal/store"
	"github.com/dreamnest/dreamnest-api/pkg/logging"
)

// Handler handles HTTP requests for follow-ups
type Handler struct {
	repo   Repository
	leads  LeadDirectory
	logger *logging.Logger
}

// NewHandler creates a new follow-ups handler
func NewHandler(repo Repository, leadDir LeadDirectory, logger *logging.Logger) *Handler {
	return &Handler{
		repo:   repo,
		leads:  leadDir,
		logger: logger,
	}
}

// CreateFollowUp handles POST /api/followups requests. The owning lead
// must exist; after the insert its id is appended to the lead's
// follow-up list. The two writes are independent single-document
// operations: a failure between them leaves the follow-up without a
// back-reference on the lead.
func (h *Handler) CreateFollowUp(w http.ResponseWriter, r *http.Request) {
	var fu FollowUp
	if err := json.NewDecoder(r.Body).Decode(&fu); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := schema.Validate(&fu); err != nil {
		respond.ValidationError(w, err)
		return
	}

	leadID, err := store.ParseID(fu.LeadID)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid lead id")
		return
	}

	exists, err := h.leads.Exists(r.Context(), leadID)
	if err != nil {
		h.logger.Error("failed to look up lead", "error", err, "lead_id", fu.LeadID)
		respond.Error(w, http.StatusInternalServerError, "failed to look up lead")
		return
	}
	if !exists {
		respond.Error(w, http.StatusNotFound, leads.ErrLeadNotFound.Error())
		return
	}

	if fu.Type == "" {
		fu.Type = DefaultType
	}
	fu.CreatedAt = time.Now().UTC()

	id, err := h.repo.Create(r.Context(), &fu)
	if err != nil {
		h.logger.Error("failed to create follow-up", "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to create follow-up")
		return
	}

	if err := h.leads.AppendFollowUp(r.Context(), leadID, id); err != nil {
		// The follow-up exists but the lead has no back-reference to it.
		h.logger.Error("failed to append follow-up to lead", "error", err, "lead_id", fu.LeadID, "followup_id", id)
		respond.Error(w, http.StatusInternalServerError, "failed to update lead")
		return
	}

	h.logger.Info("follow-up created", "id", id, "lead_id", fu.LeadID)
	respond.JSON(w, http.StatusCreated, map[string]any{"id": id})
}

// ListByLead handles GET /api/followups/{leadID} requests, newest first.
func (h *Handler) ListByLead(w http.ResponseWriter, r *http.Request) {
	id, err := store.ParseID(chi.URLParam(r, "leadID"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid lead id")
		return
	}

	list, err := h.repo.ListByLead(r.Context(), id.Hex())
	if err != nil {
		h.logger.Error("failed to list follow-ups", "error", err, "lead_id", id.Hex())
		respond.Error(w, http.StatusInternalServerError, "failed to list follow-ups")
		return
	}

	respond.JSON(w, http.StatusOK, list)
}
