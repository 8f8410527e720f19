package models

import "time"

// Property represents a real-estate listing.
type Property struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	Title           string          `gorm:"size:255;index" json:"title"`
	Description     string          `gorm:"type:text" json:"description"`
	Price           float64         `json:"price"`
	Location        string          `gorm:"size:255" json:"location"`
	Bedrooms        int             `json:"bedrooms"`
	Bathrooms       int             `json:"bathrooms"`
	SquareFeet      int             `json:"square_feet"`
	PropertyType    string          `gorm:"size:50" json:"property_type"` // House, Apartment, Condo, ...
	ListingType     string          `gorm:"size:50" json:"listing_type"`
	Status          string          `gorm:"size:50;default:available" json:"status"` // available, sold, pending
	ImageURL        string          `gorm:"size:500" json:"image_url"`
	Latitude        *float64        `json:"latitude"`
	Longitude       *float64        `json:"longitude"`
	IsFeatured      bool            `gorm:"default:false" json:"is_featured"`
	OwnerID         *uint           `json:"owner_id"`
	AssignedToID    *uint           `gorm:"index" json:"assigned_to_id"`
	CreatedByUserID *uint           `json:"created_by_user_id"`
	Images          []PropertyImage `gorm:"foreignKey:PropertyID" json:"images,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// PropertyImage is a gallery image belonging to a property. Images are
// removed together with their property; clicks are not.
type PropertyImage struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	PropertyID uint   `gorm:"index;not null" json:"property_id"`
	ImageURL   string `gorm:"size:500;not null" json:"image_url"`
	Order      int    `gorm:"column:display_order;default:0" json:"order"`
}

// PropertyClick is one row of the append-only click log. Rows are created
// and read, never updated.
type PropertyClick struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PropertyID uint      `gorm:"index;not null" json:"property_id"`
	ClickedAt  time.Time `gorm:"index" json:"clicked_at"`
	IPAddress  string    `gorm:"size:50" json:"ip_address"`
	UserAgent  string    `gorm:"size:500" json:"user_agent"`
}

func (Property) TableName() string      { return "properties" }
func (PropertyImage) TableName() string { return "property_images" }
func (PropertyClick) TableName() string { return "property_clicks" }
