package store

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrInvalidID is returned when a caller-supplied identifier is not a
// well-formed ObjectID. Handlers map it to a 400 response.
var ErrInvalidID = errors.New("invalid identifier")

// ParseID validates a caller-supplied identifier. Raw strings must pass
// through here before being used in any database filter.
func ParseID(s string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, s)
	}
	return id, nil
}

// NewID generates a fresh identifier. Used by the in-memory repositories
// so their ids remain interchangeable with stored ones.
func NewID() primitive.ObjectID {
	return primitive.NewObjectID()
}
