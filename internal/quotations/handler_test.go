package quotations

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamnest/dreamnest-api/internal/leads"
	"github.com/dreamnest/dreamnest-api/internal/store"
	"github.com/dreamnest/dreamnest-api/pkg/logging"
)

func newTestRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Post("/api/quotations/compute", h.ComputeQuote)
	r.Post("/api/quotations", h.CreateQuotation)
	r.Get("/api/quotations/by-lead/{leadID}", h.ListByLead)
	return r
}

func createLead(t *testing.T, repo *leads.InMemoryRepository) string {
	t.Helper()
	id, err := repo.Create(context.Background(), leads.NewLead(&leads.CreateLeadRequest{Name: "Asha", Phone: "1"}))
	require.NoError(t, err)
	return id
}

func TestComputeQuote(t *testing.T) {
	handler := NewHandler(NewInMemoryRepository(), leads.NewInMemoryRepository(), logging.Default())

	body := `{"area":1000,"rate_per_sqft":1500,"material_cost":50000,"gst_percent":18,"markup_percent":10}`
	req := httptest.NewRequest(http.MethodPost, "/api/quotations/compute", strings.NewReader(body))
	w := httptest.NewRecorder()
	newTestRouter(handler).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got Breakdown
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, 1550000.0, got.Subtotal)
	assert.Equal(t, 279000.0, got.GST)
	assert.Equal(t, 182900.0, got.Markup)
	assert.Equal(t, 2011900.0, got.Total)
}

func TestComputeQuote_DefaultPercentages(t *testing.T) {
	handler := NewHandler(NewInMemoryRepository(), leads.NewInMemoryRepository(), logging.Default())

	body := `{"area":100,"rate_per_sqft":10}`
	req := httptest.NewRequest(http.MethodPost, "/api/quotations/compute", strings.NewReader(body))
	w := httptest.NewRecorder()
	newTestRouter(handler).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got Breakdown
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, 1000.0, got.Subtotal)
	assert.Equal(t, 180.0, got.GST)
	assert.Equal(t, 118.0, got.Markup)
	assert.Equal(t, 1298.0, got.Total)
}

func TestComputeQuote_NegativeArea(t *testing.T) {
	handler := NewHandler(NewInMemoryRepository(), leads.NewInMemoryRepository(), logging.Default())

	body := `{"area":-1,"rate_per_sqft":10}`
	req := httptest.NewRequest(http.MethodPost, "/api/quotations/compute", strings.NewReader(body))
	w := httptest.NewRecorder()
	newTestRouter(handler).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestComputeQuote_MissingArea(t *testing.T) {
	handler := NewHandler(NewInMemoryRepository(), leads.NewInMemoryRepository(), logging.Default())

	body := `{"rate_per_sqft":10}`
	req := httptest.NewRequest(http.MethodPost, "/api/quotations/compute", strings.NewReader(body))
	w := httptest.NewRecorder()
	newTestRouter(handler).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestCreateQuotation(t *testing.T) {
	leadRepo := leads.NewInMemoryRepository()
	repo := NewInMemoryRepository()
	handler := NewHandler(repo, leadRepo, logging.Default())
	leadID := createLead(t, leadRepo)

	body := `{"lead_id":"` + leadID + `","inputs":{"area":1000,"rate_per_sqft":1500,"material_cost":50000}}`
	req := httptest.NewRequest(http.MethodPost, "/api/quotations", strings.NewReader(body))
	w := httptest.NewRecorder()
	newTestRouter(handler).ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		ID    string  `json:"id"`
		Total float64 `json:"total"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, 2011900.0, resp.Total)

	stored, err := repo.ListByLead(context.Background(), leadID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, 2011900.0, stored[0].GeneratedPrice)
	assert.Equal(t, DefaultGSTPercent, stored[0].PricingInputs.GSTPercent)
	assert.Equal(t, DefaultMarkupPercent, stored[0].PricingInputs.MarkupPercent)
	assert.False(t, stored[0].CreatedAt.IsZero())
}

func TestCreateQuotation_LeadMissing(t *testing.T) {
	handler := NewHandler(NewInMemoryRepository(), leads.NewInMemoryRepository(), logging.Default())

	body := `{"lead_id":"` + store.NewID().Hex() + `","inputs":{"area":100,"rate_per_sqft":10}}`
	req := httptest.NewRequest(http.MethodPost, "/api/quotations", strings.NewReader(body))
	w := httptest.NewRecorder()
	newTestRouter(handler).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateQuotation_MalformedLeadID(t *testing.T) {
	handler := NewHandler(NewInMemoryRepository(), leads.NewInMemoryRepository(), logging.Default())

	body := `{"lead_id":"bogus","inputs":{"area":100,"rate_per_sqft":10}}`
	req := httptest.NewRequest(http.MethodPost, "/api/quotations", strings.NewReader(body))
	w := httptest.NewRecorder()
	newTestRouter(handler).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListByLead_NewestFirst(t *testing.T) {
	leadRepo := leads.NewInMemoryRepository()
	repo := NewInMemoryRepository()
	handler := NewHandler(repo, leadRepo, logging.Default())
	leadID := createLead(t, leadRepo)

	ctx := context.Background()
	_, err := repo.Create(ctx, &Quotation{LeadID: leadID, GeneratedPrice: 100})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &Quotation{LeadID: leadID, GeneratedPrice: 200})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/quotations/by-lead/"+leadID, nil)
	w := httptest.NewRecorder()
	newTestRouter(handler).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var list []Quotation
	require.NoError(t, json.NewDecoder(w.Body).Decode(&list))
	require.Len(t, list, 2)
	assert.Equal(t, 200.0, list[0].GeneratedPrice)
	assert.Equal(t, 100.0, list[1].GeneratedPrice)
}

func TestListByLead_MalformedID(t *testing.T) {
	handler := NewHandler(NewInMemoryRepository(), leads.NewInMemoryRepository(), logging.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/quotations/by-lead/zzz", nil)
	w := httptest.NewRecorder()
	newTestRouter(handler).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
