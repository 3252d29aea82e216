package catalog

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultFlatStatus is recorded when a flat is created without a status.
const DefaultFlatStatus = "available"

// Community is a residential project with one or more towers.
type Community struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name            string             `bson:"name" json:"name" validate:"required"`
	City            string             `bson:"city" json:"city" validate:"required"`
	StartingPrice   *float64           `bson:"starting_price,omitempty" json:"starting_price,omitempty" validate:"omitempty,gte=0"`
	ImageURL        string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	AmenitiesImages []string           `bson:"amenities_images" json:"amenities_images"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
}

// Tower belongs to a community; the reference is the community id's hex string.
type Tower struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name" validate:"required"`
	CommunityID string             `bson:"community_id" json:"community_id" validate:"required"`
	Images      []string           `bson:"images" json:"images"`
	PDFs        []string           `bson:"pdfs" json:"pdfs"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}

// Flat is a single unit in a tower. BHKType is the bedroom-configuration
// label (e.g. "2BHK").
type Flat struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Number    string             `bson:"number" json:"number" validate:"required"`
	TowerID   string             `bson:"tower_id" json:"tower_id" validate:"required"`
	BHKType   string             `bson:"bhk_type" json:"bhk_type" validate:"required"`
	Status    string             `bson:"status" json:"status" validate:"omitempty,oneof=available booked sold"`
	Images    []string           `bson:"images" json:"images"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// FloorPlan describes a unit layout for a bedroom configuration.
type FloorPlan struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	BHKType    string             `bson:"bhk_type" json:"bhk_type" validate:"required"`
	ImageURL   string             `bson:"image_url,omitempty" json:"image_url,omitempty"`
	PDFURL     string             `bson:"pdf_url,omitempty" json:"pdf_url,omitempty"`
	CarpetArea *float64           `bson:"carpet_area,omitempty" json:"carpet_area,omitempty" validate:"omitempty,gte=0"`
	UDSArea    *float64           `bson:"uds_area,omitempty" json:"uds_area,omitempty" validate:"omitempty,gte=0"`
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}

// User is an account known to the CRM (customer, agent, manager, admin).
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Role      string             `bson:"role" json:"role" validate:"required,oneof=customer agent manager admin"`
	Name      string             `bson:"name" json:"name" validate:"required"`
	Email     string             `bson:"email,omitempty" json:"email,omitempty"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	AvatarURL string             `bson:"avatar_url,omitempty" json:"avatar_url,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}

// Catalog aggregates the four property-listing collections.
type Catalog struct {
	Communities []Community `json:"communities"`
	Towers      []Tower     `json:"towers"`
	Flats       []Flat      `json:"flats"`
	FloorPlans  []FloorPlan `json:"floorplans"`
}
