// Package store wraps the MongoDB client behind the small set of
// collection operations the API needs: insert-one, list, filtered
// newest-first queries, partial updates and array pushes. Repositories
// own their collection names; the store owns the connection lifecycle.
package store

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/dreamnest/dreamnest-api/pkg/logging"
)

// Collections lists the collection names known to the API, in manifest order.
var Collections = []string{
	"community",
	"tower",
	"flat",
	"floorplan",
	"followup",
	"lead",
	"quotation",
	"user",
}

// Store is an explicitly-owned handle to the document database.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	logger *logging.Logger
}

// Connect dials the database and verifies the connection with a ping.
func Connect(ctx context.Context, uri, dbName string, logger *logging.Logger) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Store{
		client: client,
		db:     client.Database(dbName),
		logger: logger,
	}, nil
}

// Close disconnects the underlying client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// Name returns the database name.
func (s *Store) Name() string {
	return s.db.Name()
}

// Ping verifies database reachability.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

// CollectionNames lists the collections present in the database.
func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.M{})
}

// InsertOne inserts a single validated document and returns its generated id.
func (s *Store) InsertOne(ctx context.Context, collection string, doc any) (primitive.ObjectID, error) {
	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert into %s: %w", collection, err)
	}
	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("insert into %s: unexpected id type %T", collection, res.InsertedID)
	}
	return id, nil
}

// FindAll reads every document in a collection into out, a pointer to a slice.
func (s *Store) FindAll(ctx context.Context, collection string, out any) error {
	cur, err := s.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("find in %s: %w", collection, err)
	}
	if err := cur.All(ctx, out); err != nil {
		return fmt.Errorf("decode %s documents: %w", collection, err)
	}
	return nil
}

// FindNewestFirst reads documents matching filter into out, sorted by
// creation time descending.
func (s *Store) FindNewestFirst(ctx context.Context, collection string, filter bson.M, out any) error {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := s.db.Collection(collection).Find(ctx, filter, opts)
	if err != nil {
		return fmt.Errorf("find in %s: %w", collection, err)
	}
	if err := cur.All(ctx, out); err != nil {
		return fmt.Errorf("decode %s documents: %w", collection, err)
	}
	return nil
}

// UpdateByID applies a $set update to the document with the given id and
// returns how many documents matched.
func (s *Store) UpdateByID(ctx context.Context, collection string, id primitive.ObjectID, set bson.M) (int64, error) {
	res, err := s.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return 0, fmt.Errorf("update %s/%s: %w", collection, id.Hex(), err)
	}
	return res.MatchedCount, nil
}

// Push appends a value to an array field of the document with the given id.
func (s *Store) Push(ctx context.Context, collection string, id primitive.ObjectID, field string, value any) error {
	_, err := s.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$push": bson.M{field: value}})
	if err != nil {
		return fmt.Errorf("push to %s/%s.%s: %w", collection, id.Hex(), field, err)
	}
	return nil
}

// ExistsByID reports whether a document with the given id exists.
func (s *Store) ExistsByID(ctx context.Context, collection string, id primitive.ObjectID) (bool, error) {
	err := s.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("lookup %s/%s: %w", collection, id.Hex(), err)
	}
	return true, nil
}
