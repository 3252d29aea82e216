package leads

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Default field values applied when a create request omits them.
const (
	DefaultStatus          = "New"
	DefaultRequirementType = "Interior"
	DefaultSource          = "web"
)

// Lead is a prospective customer record tracked through the sales pipeline.
// Reference fields are stored as plain strings; only the record id is an
// ObjectID, rendered as its hex form on the wire.
type Lead struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name              string             `bson:"name" json:"name"`
	Phone             string             `bson:"phone" json:"phone"`
	Email             string             `bson:"email,omitempty" json:"email,omitempty"`
	AssignedAgentID   string             `bson:"assigned_agent_id,omitempty" json:"assigned_agent_id,omitempty"`
	AssignedManagerID string             `bson:"assigned_manager_id,omitempty" json:"assigned_manager_id,omitempty"`
	RequirementType   string             `bson:"requirement_type,omitempty" json:"requirement_type,omitempty"`
	Source            string             `bson:"source,omitempty" json:"source,omitempty"`
	Status            string             `bson:"status" json:"status"`
	FollowUpIDs       []string           `bson:"follow_up_ids" json:"follow_up_ids"`
	CreatedAt         time.Time          `bson:"created_at" json:"created_at"`
}

// CreateLeadRequest is the body for POST /api/leads. ProjectID is accepted
// from intake forms but not persisted on the lead record.
type CreateLeadRequest struct {
	Name            string `json:"name" validate:"required"`
	Phone           string `json:"phone" validate:"required"`
	Email           string `json:"email"`
	ProjectID       string `json:"project_id"`
	RequirementType string `json:"requirement_type"`
	Source          string `json:"source"`
}

// NewLead builds a Lead from an intake request, applying defaults.
func NewLead(req *CreateLeadRequest) *Lead {
	lead := &Lead{
		Name:            req.Name,
		Phone:           req.Phone,
		Email:           req.Email,
		RequirementType: req.RequirementType,
		Source:          req.Source,
		Status:          DefaultStatus,
		FollowUpIDs:     []string{},
		CreatedAt:       time.Now().UTC(),
	}
	if lead.RequirementType == "" {
		lead.RequirementType = DefaultRequirementType
	}
	if lead.Source == "" {
		lead.Source = DefaultSource
	}
	return lead
}

// UpdateLeadRequest is the body for PATCH /api/leads/{id}. Status and the
// assignment fields are free-form strings; absent fields are left untouched.
type UpdateLeadRequest struct {
	Status            *string `json:"status"`
	AssignedAgentID   *string `json:"assigned_agent_id"`
	AssignedManagerID *string `json:"assigned_manager_id"`
}

// Fields returns the $set document for the update, or nil when the
// request carries no fields.
func (r *UpdateLeadRequest) Fields() bson.M {
	set := bson.M{}
	if r.Status != nil {
		set["status"] = *r.Status
	}
	if r.AssignedAgentID != nil {
		set["assigned_agent_id"] = *r.AssignedAgentID
	}
	if r.AssignedManagerID != nil {
		set["assigned_manager_id"] = *r.AssignedManagerID
	}
	if len(set) == 0 {
		return nil
	}
	return set
}
