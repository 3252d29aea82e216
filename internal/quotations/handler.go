package quotations

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

// Handler handles HTTP requests for quotations
type Handler struct {
	repo   Repository
	leads  LeadChecker
	logger *logging.Logger
}

// NewHandler creates a new quotations handler
func NewHandler(repo Repository, leadChecker LeadChecker, logger *logging.Logger) *Handler {
	return &Handler{
		repo:   repo,
		leads:  leadChecker,
		logger: logger,
	}
}

// ComputeQuote handles POST /api/quotations/compute requests: the pure
// pricing calculation with nothing persisted.
func (h *Handler) ComputeQuote(w http.ResponseWriter, r *http.Request) {
	var req InputsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := schema.Validate(&req); err != nil {
		respond.ValidationError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, Compute(req.Normalize()))
}

// CreateQuotation handles POST /api/quotations requests: computes the
// price and persists the quotation with its pricing-input snapshot.
func (h *Handler) CreateQuotation(w http.ResponseWriter, r *http.Request) {
	var req CreateQuotationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := schema.Validate(&req); err != nil {
		respond.ValidationError(w, err)
		return
	}

	leadID, err := store.ParseID(req.LeadID)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid lead id")
		return
	}

	exists, err := h.leads.Exists(r.Context(), leadID)
	if err != nil {
		h.logger.Error("failed to look up lead", "error", err, "lead_id", req.LeadID)
		respond.Error(w, http.StatusInternalServerError, "failed to look up lead")
		return
	}
	if !exists {
		respond.Error(w, http.StatusNotFound, leads.ErrLeadNotFound.Error())
		return
	}

	inputs := req.Inputs.Normalize()
	breakdown := Compute(inputs)

	quotation := &Quotation{
		LeadID:         req.LeadID,
		ProjectID:      req.ProjectID,
		PricingInputs:  inputs,
		GeneratedPrice: breakdown.Total,
		CreatedBy:      req.CreatedBy,
		CreatedAt:      time.Now().UTC(),
	}

	id, err := h.repo.Create(r.Context(), quotation)
	if err != nil {
		h.logger.Error("failed to create quotation", "error", err)
		respond.Error(w, http.StatusInternalServerError, "failed to create quotation")
		return
	}

	h.logger.Info("quotation created", "id", id, "lead_id", req.LeadID, "total", breakdown.Total)
	respond.JSON(w, http.StatusCreated, map[string]any{"id": id, "total": breakdown.Total})
}

// ListByLead handles GET /api/quotations/by-lead/{leadID} requests,
// newest first.
func (h *Handler) ListByLead(w http.ResponseWriter, r *http.Request) {
	id, err := store.ParseID(chi.URLParam(r, "leadID"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid lead id")
		return
	}

	list, err := h.repo.ListByLead(r.Context(), id.Hex())
	if err != nil {
		h.logger.Error("failed to list quotations", "error", err, "lead_id", id.Hex())
		respond.Error(w, http.StatusInternalServerError, "failed to list quotations")
		return
	}

	respond.JSON(w, http.StatusOK, list)
}
