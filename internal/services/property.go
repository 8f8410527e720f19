package services

import (
	"errors"
	"strings"
	"time"

	"github.com/habitat-caracas/habitat/backend/internal/models"
	"github.com/habitat-caracas/habitat/backend/pkg/response"
	"gorm.io/gorm"
)

type PropertyService struct {
	db *gorm.DB
}

func NewPropertyService(db *gorm.DB) *PropertyService {
	return &PropertyService{db: db}
}

// PropertyListRequest carries the caller's query filters. All filters are
// AND-composed; the search term matches title or location.
type PropertyListRequest struct {
	Offset       int      `form:"offset"`
	Limit        int      `form:"limit"`
	Search       string   `form:"search"`
	PropertyType string   `form:"property_type"`
	ListingType  string   `form:"listing_type"`
	Status       string   `form:"status"`
	MinPrice     *float64 `form:"min_price"`
	MaxPrice     *float64 `form:"max_price"`
	MinBedrooms  *int     `form:"min_bedrooms"`
	MaxBedrooms  *int     `form:"max_bedrooms"`
	MinBathrooms *int     `form:"min_bathrooms"`
	MaxBathrooms *int     `form:"max_bathrooms"`
	MinArea      *int     `form:"min_area"`
	MaxArea      *int     `form:"max_area"`
	IsFeatured   *bool    `form:"is_featured"`
}

type PropertyRequest struct {
	Title               string   `json:"title" binding:"required"`
	Description         string   `json:"description"`
	Price               float64  `json:"price"`
	Location            string   `json:"location"`
	Bedrooms            int      `json:"bedrooms"`
	Bathrooms           int      `json:"bathrooms"`
	SquareFeet          int      `json:"square_feet"`
	PropertyType        string   `json:"property_type"`
	ListingType         string   `json:"listing_type"`
	Status              string   `json:"status"`
	ImageURL            string   `json:"image_url"`
	Latitude            *float64 `json:"latitude"`
	Longitude           *float64 `json:"longitude"`
	IsFeatured          bool     `json:"is_featured"`
	OwnerID             *uint    `json:"owner_id"`
	AssignedToID        *uint    `json:"assigned_to_id"`
	AdditionalImageURLs []string `json:"additional_image_urls"`
}

type UpdatePropertyRequest struct {
	Title               *string  `json:"title"`
	Description         *string  `json:"description"`
	Price               *float64 `json:"price"`
	Location            *string  `json:"location"`
	Bedrooms            *int     `json:"bedrooms"`
	Bathrooms           *int     `json:"bathrooms"`
	SquareFeet          *int     `json:"square_feet"`
	PropertyType        *string  `json:"property_type"`
	ListingType         *string  `json:"listing_type"`
	Status              *string  `json:"status"`
	ImageURL            *string  `json:"image_url"`
	Latitude            *float64 `json:"latitude"`
	Longitude           *float64 `json:"longitude"`
	IsFeatured          *bool    `json:"is_featured"`
	OwnerID             *uint    `json:"owner_id"`
	AssignedToID        *uint    `json:"assigned_to_id"`
	DeleteImageIDs      []uint   `json:"delete_image_ids"`
	AdditionalImageURLs []string `json:"additional_image_urls"`
}

// List returns properties visible to the viewer. Staff viewers only see
// rows assigned to them; caller filters narrow further on top of that.
func (s *PropertyService) List(req *PropertyListRequest, viewerID uint, viewerRole string) ([]models.Property, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = 20
	}

	query := s.db.Model(&models.Property{}).Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("display_order, id")
	})

	if viewerRole == models.RoleStaff {
		query = query.Where("assigned_to_id = ?", viewerID)
	}

	if req.Search != "" {
		term := "%" + strings.ToLower(req.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(location) LIKE ?", term, term)
	}
	if req.PropertyType != "" {
		query = query.Where("property_type = ?", req.PropertyType)
	}
	if req.ListingType != "" {
		query = query.Where("listing_type = ?", req.ListingType)
	}
	if req.Status != "" {
		query = query.Where("status = ?", req.Status)
	}
	if req.MinPrice != nil {
		query = query.Where("price >= ?", *req.MinPrice)
	}
	if req.MaxPrice != nil {
		query = query.Where("price <= ?", *req.MaxPrice)
	}
	if req.MinBedrooms != nil {
		query = query.Where("bedrooms >= ?", *req.MinBedrooms)
	}
	if req.MaxBedrooms != nil {
		query = query.Where("bedrooms <= ?", *req.MaxBedrooms)
	}
	if req.MinBathrooms != nil {
		query = query.Where("bathrooms >= ?", *req.MinBathrooms)
	}
	if req.MaxBathrooms != nil {
		query = query.Where("bathrooms <= ?", *req.MaxBathrooms)
	}
	if req.MinArea != nil {
		query = query.Where("square_feet >= ?", *req.MinArea)
	}
	if req.MaxArea != nil {
		query = query.Where("square_feet <= ?", *req.MaxArea)
	}
	if req.IsFeatured != nil {
		query = query.Where("is_featured = ?", *req.IsFeatured)
	}

	var properties []models.Property
	if err := query.Offset(req.Offset).Limit(limit).Order("id desc").Find(&properties).Error; err != nil {
		return nil, err
	}
	return properties, nil
}

func (s *PropertyService) Get(id uint) (*models.Property, error) {
	var property models.Property
	err := s.db.Preload("Images", func(db *gorm.DB) *gorm.DB {
		return db.Order("display_order, id")
	}).First(&property, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("property not found")
		}
		return nil, err
	}
	return &property, nil
}

// Create stores a property for the given creator. Staff creators are
// always assigned to themselves regardless of the requested assignee.
func (s *PropertyService) Create(req *PropertyRequest, creatorID uint, creatorRole string) (*models.Property, error) {
	status := req.Status
	if status == "" {
		status = "available"
	}

	assignedTo := req.AssignedToID
	if creatorRole == models.RoleStaff {
		self := creatorID
		assignedTo = &self
	}

	property := models.Property{
		Title:           req.Title,
		Description:     req.Description,
		Price:           req.Price,
		Location:        req.Location,
		Bedrooms:        req.Bedrooms,
		Bathrooms:       req.Bathrooms,
		SquareFeet:      req.SquareFeet,
		PropertyType:    req.PropertyType,
		ListingType:     req.ListingType,
		Status:          status,
		ImageURL:        req.ImageURL,
		Latitude:        req.Latitude,
		Longitude:       req.Longitude,
		IsFeatured:      req.IsFeatured,
		OwnerID:         req.OwnerID,
		AssignedToID:    assignedTo,
		CreatedByUserID: &creatorID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&property).Error; err != nil {
			return err
		}
		for i, url := range req.AdditionalImageURLs {
			image := models.PropertyImage{
				PropertyID: property.ID,
				ImageURL:   url,
				Order:      i,
			}
			if err := tx.Create(&image).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(property.ID)
}

// Update applies field changes and reconciles the image gallery in one
// transaction. Deletions run before insertions; new images are appended
// after the highest surviving position.
func (s *PropertyService) Update(id uint, req *UpdatePropertyRequest) (*models.Property, error) {
	property, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		property.Title = *req.Title
	}
	if req.Description != nil {
		property.Description = *req.Description
	}
	if req.Price != nil {
		property.Price = *req.Price
	}
	if req.Location != nil {
		property.Location = *req.Location
	}
	if req.Bedrooms != nil {
		property.Bedrooms = *req.Bedrooms
	}
	if req.Bathrooms != nil {
		property.Bathrooms = *req.Bathrooms
	}
	if req.SquareFeet != nil {
		property.SquareFeet = *req.SquareFeet
	}
	if req.PropertyType != nil {
		property.PropertyType = *req.PropertyType
	}
	if req.ListingType != nil {
		property.ListingType = *req.ListingType
	}
	if req.Status != nil {
		property.Status = *req.Status
	}
	if req.ImageURL != nil {
		property.ImageURL = *req.ImageURL
	}
	if req.Latitude != nil {
		property.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		property.Longitude = req.Longitude
	}
	if req.IsFeatured != nil {
		property.IsFeatured = *req.IsFeatured
	}
	if req.OwnerID != nil {
		property.OwnerID = req.OwnerID
	}
	if req.AssignedToID != nil {
		property.AssignedToID = req.AssignedToID
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		property.Images = nil
		if err := tx.Save(property).Error; err != nil {
			return err
		}

		if len(req.DeleteImageIDs) > 0 {
			if err := tx.Where("property_id = ? AND id IN ?", id, req.DeleteImageIDs).
				Delete(&models.PropertyImage{}).Error; err != nil {
				return err
			}
		}

		if len(req.AdditionalImageURLs) > 0 {
			var maxOrder int
			row := tx.Model(&models.PropertyImage{}).
				Where("property_id = ?", id).
				Select("COALESCE(MAX(display_order), -1)").Row()
			if err := row.Scan(&maxOrder); err != nil {
				return err
			}
			for i, url := range req.AdditionalImageURLs {
				image := models.PropertyImage{
					PropertyID: id,
					ImageURL:   url,
					Order:      maxOrder + 1 + i,
				}
				if err := tx.Create(&image).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.Get(id)
}

// Delete removes a property and its gallery images. Click records stay.
func (s *PropertyService) Delete(id uint) error {
	property, err := s.Get(id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("property_id = ?", id).Delete(&models.PropertyImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(property).Error
	})
}

// TrackClick appends a view record for an existing property.
func (s *PropertyService) TrackClick(id uint, ipAddress, userAgent string) error {
	if _, err := s.Get(id); err != nil {
		return err
	}

	click := models.PropertyClick{
		PropertyID: id,
		ClickedAt:  time.Now(),
		IPAddress:  ipAddress,
		UserAgent:  userAgent,
	}
	return s.db.Create(&click).Error
}
