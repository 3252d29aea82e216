package followups

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dreamnest/dreamnest-api/internal/store"
)

// Repository defines the interface for follow-up storage
type Repository interface {
	// Create inserts the follow-up and returns its generated id.
	Create(ctx context.Context, fu *FollowUp) (string, error)
	// ListByLead returns a lead's follow-ups, newest first.
	ListByLead(ctx context.Context, leadID string) ([]FollowUp, error)
}

// LeadDirectory is the slice of the leads repository this package needs:
// existence checks before insert, and the back-reference append after.
type LeadDirectory interface {
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
	AppendFollowUp(ctx context.Context, id primitive.ObjectID, followUpID string) error
}

const collection = "followup"

// MongoRepository is a Repository backed by the document store.
type MongoRepository struct {
	store *store.Store
}

// NewMongoRepository creates a follow-up repository over the given store.
func NewMongoRepository(s *store.Store) *MongoRepository {
	return &MongoRepository{store: s}
}

func (r *MongoRepository) Create(ctx context.Context, fu *FollowUp) (string, error) {
	id, err := r.store.InsertOne(ctx, collection, fu)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

func (r *MongoRepository) ListByLead(ctx context.Context, leadID string) ([]FollowUp, error) {
	out := []FollowUp{}
	if err := r.store.FindNewestFirst(ctx, collection, bson.M{"lead_id": leadID}, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// InMemoryRepository is a Repository backed by process memory.
type InMemoryRepository struct {
	mu    sync.RWMutex
	items []FollowUp
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) Create(ctx context.Context, fu *FollowUp) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *fu
	stored.ID = store.NewID()
	r.items = append(r.items, stored)
	return stored.ID.Hex(), nil
}

func (r *InMemoryRepository) ListByLead(ctx context.Context, leadID string) ([]FollowUp, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []FollowUp{}
	for i := len(r.items) - 1; i >= 0; i-- {
		if r.items[i].LeadID == leadID {
			out = append(out, r.items[i])
		}
	}
	return out, nil
}
