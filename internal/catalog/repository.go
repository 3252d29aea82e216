package catalog

import (
	"context"
	"sync"

	"github.com/dreamnest/dreamnest-api/internal/store"
)

// Repository defines the interface for catalog storage
type Repository interface {
	CreateCommunity(ctx context.Context, c *Community) (string, error)
	CreateTower(ctx context.Context, t *Tower) (string, error)
	CreateFlat(ctx context.Context, f *Flat) (string, error)
	CreateFloorPlan(ctx context.Context, fp *FloorPlan) (string, error)
	CreateUser(ctx context.Context, u *User) (string, error)

	ListCommunities(ctx context.Context) ([]Community, error)
	ListTowers(ctx context.Context) ([]Tower, error)
	ListFlats(ctx context.Context) ([]Flat, error)
	ListFloorPlans(ctx context.Context) ([]FloorPlan, error)
}

// MongoRepository is a Repository backed by the document store, one
// collection per entity type.
type MongoRepository struct {
	store *store.Store
}

// NewMongoRepository creates a catalog repository over the given store.
func NewMongoRepository(s *store.Store) *MongoRepository {
	return &MongoRepository{store: s}
}

func (r *MongoRepository) CreateCommunity(ctx context.Context, c *Community) (string, error) {
	return r.insert(ctx, "community", c)
}

func (r *MongoRepository) CreateTower(ctx context.Context, t *Tower) (string, error) {
	return r.insert(ctx, "tower", t)
}

func (r *MongoRepository) CreateFlat(ctx context.Context, f *Flat) (string, error) {
	return r.insert(ctx, "flat", f)
}

func (r *MongoRepository) CreateFloorPlan(ctx context.Context, fp *FloorPlan) (string, error) {
	return r.insert(ctx, "floorplan", fp)
}

func (r *MongoRepository) CreateUser(ctx context.Context, u *User) (string, error) {
	return r.insert(ctx, "user", u)
}

func (r *MongoRepository) insert(ctx context.Context, collection string, doc any) (string, error) {
	id, err := r.store.InsertOne(ctx, collection, doc)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

func (r *MongoRepository) ListCommunities(ctx context.Context) ([]Community, error) {
	out := []Community{}
	if err := r.store.FindAll(ctx, "community", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MongoRepository) ListTowers(ctx context.Context) ([]Tower, error) {
	out := []Tower{}
	if err := r.store.FindAll(ctx, "tower", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MongoRepository) ListFlats(ctx context.Context) ([]Flat, error) {
	out := []Flat{}
	if err := r.store.FindAll(ctx, "flat", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MongoRepository) ListFloorPlans(ctx context.Context) ([]FloorPlan, error) {
	out := []FloorPlan{}
	if err := r.store.FindAll(ctx, "floorplan", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// InMemoryRepository is a Repository backed by process memory.
type InMemoryRepository struct {
	mu          sync.RWMutex
	communities []Community
	towers      []Tower
	flats       []Flat
	floorPlans  []FloorPlan
	users       []User
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) CreateCommunity(ctx context.Context, c *Community) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *c
	stored.ID = store.NewID()
	r.communities = append(r.communities, stored)
	return stored.ID.Hex(), nil
}

func (r *InMemoryRepository) CreateTower(ctx context.Context, t *Tower) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *t
	stored.ID = store.NewID()
	r.towers = append(r.towers, stored)
	return stored.ID.Hex(), nil
}

func (r *InMemoryRepository) CreateFlat(ctx context.Context, f *Flat) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *f
	stored.ID = store.NewID()
	r.flats = append(r.flats, stored)
	return stored.ID.Hex(), nil
}

func (r *InMemoryRepository) CreateFloorPlan(ctx context.Context, fp *FloorPlan) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *fp
	stored.ID = store.NewID()
	r.floorPlans = append(r.floorPlans, stored)
	return stored.ID.Hex(), nil
}

func (r *InMemoryRepository) CreateUser(ctx context.Context, u *User) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *u
	stored.ID = store.NewID()
	r.users = append(r.users, stored)
	return stored.ID.Hex(), nil
}

func (r *InMemoryRepository) ListCommunities(ctx context.Context) ([]Community, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Community{}, r.communities...), nil
}

func (r *InMemoryRepository) ListTowers(ctx context.Context) ([]Tower, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Tower{}, r.towers...), nil
}

func (r *InMemoryRepository) ListFlats(ctx context.Context) ([]Flat, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Flat{}, r.flats...), nil
}

func (r *InMemoryRepository) ListFloorPlans(ctx context.Context) ([]FloorPlan, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]FloorPlan{}, r.floorPlans...), nil
}
