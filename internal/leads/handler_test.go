package leads

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/dreamnest/dreamnest-api/internal/store"
	"github.com/dreamnest/dreamnest-api/pkg/logging"
)

func newTestRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Post("/api/leads", h.CreateLead)
	r.Get("/api/leads", h.ListLeads)
	r.Patch("/api/leads/{leadID}", h.UpdateLead)
	return r
}

func TestCreateLead_Defaults(t *testing.T) {
	repo := NewInMemoryRepository()
	handler := NewHandler(repo, logging.Default())

	body := `{"name":"Asha Verma","phone":"+919800000001"}`
	req := httptest.NewRequest(http.MethodPost, "/api/leads", strings.NewReader(body))
	w := httptest.NewRecorder()
	newTestRouter(handler).ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.NotEmpty(t, resp["id"])
	assert.Equal(t, "New", resp["status"])

	list, err := repo.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Interior", list[0].RequirementType)
	assert.Equal(t, "web", list[0].Source)
	assert.Equal(t, "New", list[0].Status)
	assert.NotNil(t, list[0].FollowUpIDs)
	assert.Empty(t, list[0].FollowUpIDs)
}

func TestCreateLead_MissingPhone(t *testing.T) {
	handler := NewHandler(NewInMemoryRepository(), logging.Default())

	body := `{"name":"Asha Verma"}`
	req := httptest.NewRequest(http.MethodPost, "/api/leads", strings.NewReader(body))
	w := httptest.NewRecorder()
	newTestRouter(handler).ServeHTTP(w, req)

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp struct {
		Error  string `json:"error"`
		Fields []struct {
			Field string `json:"field"`
			Error string `json:"error"`
		} `json:"fields"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, "validation failed", resp.Error)
	require.Len(t, resp.Fields, 1)
	assert.Equal(t, "phone", resp.Fields[0].Field)
}

func TestCreateLead_InvalidJSON(t *testing.T) {
	handler := NewHandler(NewInMemoryRepository(), logging.Default())

	req := httptest.NewRequest(http.MethodPost, "/api/leads", strings.NewReader("{"))
	w := httptest.NewRecorder()
	newTestRouter(handler).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListLeads_AssignedToFilter(t *testing.T) {
	repo := NewInMemoryRepository()
	handler := NewHandler(repo, logging.Default())
	ctx := context.Background()

	agent := store.NewID().Hex()
	first := NewLead(&CreateLeadRequest{Name: "First", Phone: "1"})
	first.AssignedAgentID = agent
	_, err := repo.Create(ctx, first)
	require.NoError(t, err)

	second := NewLead(&CreateLeadRequest{Name: "Second", Phone: "2"})
	second.AssignedManagerID = agent
	_, err = repo.Create(ctx, second)
	require.NoError(t, err)

	_, err = repo.Create(ctx, NewLead(&CreateLeadRequest{Name: "Unassigned", Phone: "3"}))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/leads?assigned_to="+agent, nil)
	w := httptest.NewRecorder()
	newTestRouter(handler).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var list []Lead
	require.NoError(t, json.NewDecoder(w.Body).Decode(&list))
	require.Len(t, list, 2)
	// Newest first.
	assert.Equal(t, "Second", list[0].Name)
	assert.Equal(t, "First", list[1].Name)
}

func TestListLeads_Empty(t *testing.T) {
	handler := NewHandler(NewInMemoryRepository(), logging.Default())

	req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	w := httptest.NewRecorder()
	newTestRouter(handler).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]\n", w.Body.String())
}

func TestUpdateLead_MalformedID(t *testing.T) {
	handler := NewHandler(NewInMemoryRepository(), logging.Default())

	req := httptest.NewRequest(http.MethodPatch, "/api/leads/not-an-id", strings.NewReader(`{"status":"Contacted"}`))
	w := httptest.NewRecorder()
	newTestRouter(handler).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateLead_UnknownID(t *testing.T) {
	handler := NewHandler(NewInMemoryRepository(), logging.Default())

	req := httptest.NewRequest(http.MethodPatch, "/api/leads/"+store.NewID().Hex(), strings.NewReader(`{"status":"Contacted"}`))
	w := httptest.NewRecorder()
	newTestRouter(handler).ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateLead_EmptyBody(t *testing.T) {
	repo := NewInMemoryRepository()
	handler := NewHandler(repo, logging.Default())
	ctx := context.Background()

	id, err := repo.Create(ctx, NewLead(&CreateLeadRequest{Name: "Asha", Phone: "1"}))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPatch, "/api/leads/"+id, strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	newTestRouter(handler).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, false, resp["updated"])

	// No write happened.
	list, err := repo.List(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "New", list[0].Status)
}

func TestUpdateLead_StatusAndAssignment(t *testing.T) {
	repo := NewInMemoryRepository()
	handler := NewHandler(repo, logging.Default())
	ctx := context.Background()

	id, err := repo.Create(ctx, NewLead(&CreateLeadRequest{Name: "Asha", Phone: "1"}))
	require.NoError(t, err)

	agent := store.NewID().Hex()
	body, _ := json.Marshal(map[string]string{"status": "Site Visit", "assigned_agent_id": agent})
	req := httptest.NewRequest(http.MethodPatch, "/api/leads/"+id, bytes.NewReader(body))
	w := httptest.NewRecorder()
	newTestRouter(handler).ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]any
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, true, resp["updated"])

	list, err := repo.List(ctx, agent)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Site Visit", list[0].Status)
}

func TestUpdateFields_Empty(t *testing.T) {
	req := UpdateLeadRequest{}
	assert.Nil(t, req.Fields())
}

func TestUpdateFields_Partial(t *testing.T) {
	status := "Negotiation"
	req := UpdateLeadRequest{Status: &status}
	assert.Equal(t, bson.M{"status": "Negotiation"}, req.Fields())
}
