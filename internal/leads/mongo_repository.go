package leads

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dreamnest/dreamnest-api/internal/store"
)

const collection = "lead"

// MongoRepository is a Repository backed by the document store.
type MongoRepository struct {
	store *store.Store
}

// NewMongoRepository creates a lead repository over the given store.
func NewMongoRepository(s *store.Store) *MongoRepository {
	return &MongoRepository{store: s}
}

func (r *MongoRepository) Create(ctx context.Context, lead *Lead) (string, error) {
	id, err := r.store.InsertOne(ctx, collection, lead)
	if err != nil {
		return "", err
	}
	return id.Hex(), nil
}

func (r *MongoRepository) List(ctx context.Context, assignedTo string) ([]Lead, error) {
	filter := bson.M{}
	if assignedTo != "" {
		filter = bson.M{"$or": []bson.M{
			{"assigned_agent_id": assignedTo},
			{"assigned_manager_id": assignedTo},
		}}
	}

	out := []Lead{}
	if err := r.store.FindNewestFirst(ctx, collection, filter, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *MongoRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (int64, error) {
	return r.store.UpdateByID(ctx, collection, id, set)
}

func (r *MongoRepository) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	return r.store.ExistsByID(ctx, collection, id)
}

func (r *MongoRepository) AppendFollowUp(ctx context.Context, id primitive.ObjectID, followUpID string) error {
	return r.store.Push(ctx, collection, id, "follow_up_ids", followUpID)
}
