package leads

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dreamnest/dreamnest-api/internal/store"
)

// Repository defines the interface for lead storage
type Repository interface {
	// Create inserts the lead and returns its generated id.
	Create(ctx context.Context, lead *Lead) (string, error)
	// List returns leads newest first. When assignedTo is non-empty only
	// leads whose agent or manager assignment matches it are returned.
	List(ctx context.Context, assignedTo string) ([]Lead, error)
	// Update applies a partial update and returns how many leads matched.
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (int64, error)
	// Exists reports whether a lead with the given id exists.
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
	// AppendFollowUp appends a follow-up id to the lead's follow-up list.
	AppendFollowUp(ctx context.Context, id primitive.ObjectID, followUpID string) error
}

// InMemoryRepository is a Repository backed by process memory. It is used
// in tests and as the fallback when no database is configured.
type InMemoryRepository struct {
	mu    sync.RWMutex
	order []primitive.ObjectID
	leads map[primitive.ObjectID]*Lead
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		leads: make(map[primitive.ObjectID]*Lead),
	}
}

func (r *InMemoryRepository) Create(ctx context.Context, lead *Lead) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *lead
	stored.ID = store.NewID()
	stored.FollowUpIDs = append([]string{}, lead.FollowUpIDs...)
	r.leads[stored.ID] = &stored
	r.order = append(r.order, stored.ID)
	return stored.ID.Hex(), nil
}

func (r *InMemoryRepository) List(ctx context.Context, assignedTo string) ([]Lead, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []Lead{}
	// Newest first: reverse insertion order.
	for i := len(r.order) - 1; i >= 0; i-- {
		lead := r.leads[r.order[i]]
		if assignedTo != "" && lead.AssignedAgentID != assignedTo && lead.AssignedManagerID != assignedTo {
			continue
		}
		copied := *lead
		copied.FollowUpIDs = append([]string{}, lead.FollowUpIDs...)
		out = append(out, copied)
	}
	return out, nil
}

func (r *InMemoryRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	lead, ok := r.leads[id]
	if !ok {
		return 0, nil
	}
	if v, ok := set["status"].(string); ok {
		lead.Status = v
	}
	if v, ok := set["assigned_agent_id"].(string); ok {
		lead.AssignedAgentID = v
	}
	if v, ok := set["assigned_manager_id"].(string); ok {
		lead.AssignedManagerID = v
	}
	return 1, nil
}

func (r *InMemoryRepository) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.leads[id]
	return ok, nil
}

func (r *InMemoryRepository) AppendFollowUp(ctx context.Context, id primitive.ObjectID, followUpID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	lead, ok := r.leads[id]
	if !ok {
		return ErrLeadNotFound
	}
	lead.FollowUpIDs = append(lead.FollowUpIDs, followUpID)
	return nil
}
