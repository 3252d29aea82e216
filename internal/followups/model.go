package followups

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultType is the interaction type recorded when a request omits one.
const DefaultType = "call"

// FollowUp is a logged interaction tied to a lead. The lead reference is
// stored as the lead id's hex string.
type FollowUp struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	LeadID    string             `bson:"lead_id" json:"lead_id" validate:"required"`
	Notes     string             `bson:"notes" json:"notes" validate:"required"`
	NextDate  string             `bson:"next_date,omitempty" json:"next_date,omitempty"`
	Type      string             `bson:"type" json:"type" validate:"omitempty,oneof=call visit whatsapp"`
	AgentID   string             `bson:"agent_id,omitempty" json:"agent_id,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
