package quotations

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Default percentages applied when a request omits them.
const (
	DefaultGSTPercent    = 18.0
	DefaultMarkupPercent = 10.0
)

// Inputs is the pricing-input snapshot embedded in a stored quotation.
type Inputs struct {
	Area          float64 `bson:"area" json:"area"`
	RatePerSqft   float64 `bson:"rate_per_sqft" json:"rate_per_sqft"`
	MaterialCost  float64 `bson:"material_cost" json:"material_cost"`
	GSTPercent    float64 `bson:"gst_percent" json:"gst_percent"`
	MarkupPercent float64 `bson:"markup_percent" json:"markup_percent"`
}

// InputsRequest is the wire form of Inputs. Pointer fields distinguish
// an absent value (default applied) from an explicit zero.
type InputsRequest struct {
	Area          *float64 `json:"area" validate:"required,gte=0"`
	RatePerSqft   *float64 `json:"rate_per_sqft" validate:"required,gte=0"`
	MaterialCost  *float64 `json:"material_cost" validate:"omitempty,gte=0"`
	GSTPercent    *float64 `json:"gst_percent" validate:"omitempty,gte=0"`
	MarkupPercent *float64 `json:"markup_percent" validate:"omitempty,gte=0"`
}

// Normalize resolves the request into concrete inputs with defaults applied.
func (r *InputsRequest) Normalize() Inputs {
	in := Inputs{
		GSTPercent:    DefaultGSTPercent,
		MarkupPercent: DefaultMarkupPercent,
	}
	if r.Area != nil {
		in.Area = *r.Area
	}
	if r.RatePerSqft != nil {
		in.RatePerSqft = *r.RatePerSqft
	}
	if r.MaterialCost != nil {
		in.MaterialCost = *r.MaterialCost
	}
	if r.GSTPercent != nil {
		in.GSTPercent = *r.GSTPercent
	}
	if r.MarkupPercent != nil {
		in.MarkupPercent = *r.MarkupPercent
	}
	return in
}

// Quotation is a computed price estimate tied to a lead.
type Quotation struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	LeadID         string             `bson:"lead_id" json:"lead_id"`
	ProjectID      string             `bson:"project_id,omitempty" json:"project_id,omitempty"`
	PricingInputs  Inputs             `bson:"pricing_inputs" json:"pricing_inputs"`
	GeneratedPrice float64            `bson:"generated_price" json:"generated_price"`
	PDFURL         string             `bson:"pdf_url,omitempty" json:"pdf_url,omitempty"`
	CreatedBy      string             `bson:"created_by,omitempty" json:"created_by,omitempty"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
}

// CreateQuotationRequest is the body for POST /api/quotations.
type CreateQuotationRequest struct {
	LeadID    string        `json:"lead_id" validate:"required"`
	ProjectID string        `json:"project_id"`
	Inputs    InputsRequest `json:"inputs"`
	CreatedBy string        `json:"created_by"`
}
