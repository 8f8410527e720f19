package services

import (
	"errors"

	"github.com/habitat-caracas/habitat/backend/internal/models"
	"github.com/habitat-caracas/habitat/backend/pkg/response"
	"gorm.io/gorm"
)

type TeamService struct {
	db *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{db: db}
}

type TeamMemberRequest struct {
	Name     string `json:"name" binding:"required"`
	Position string `json:"position"`
	ImageURL string `json:"image_url"`
	Order    int    `json:"order"`
}

type UpdateTeamMemberRequest struct {
	Name     *string `json:"name"`
	Position *string `json:"position"`
	ImageURL *string `json:"image_url"`
	Order    *int    `json:"order"`
}

func (s *TeamService) List(offset, limit int) ([]models.TeamMember, error) {
	if limit <= 0 {
		limit = 100
	}

	var members []models.TeamMember
	if err := s.db.Offset(offset).Limit(limit).
		Order("display_order, id").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (s *TeamService) Get(id uint) (*models.TeamMember, error) {
	var member models.TeamMember
	if err := s.db.First(&member, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("team member not found")
		}
		return nil, err
	}
	return &member, nil
}

func (s *TeamService) Create(req *TeamMemberRequest) (*models.TeamMember, error) {
	member := models.TeamMember{
		Name:     req.Name,
		Position: req.Position,
		ImageURL: req.ImageURL,
		Order:    req.Order,
	}
	if err := s.db.Create(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

func (s *TeamService) Update(id uint, req *UpdateTeamMemberRequest) (*models.TeamMember, error) {
	member, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		member.Name = *req.Name
	}
	if req.Position != nil {
		member.Position = *req.Position
	}
	if req.ImageURL != nil {
		member.ImageURL = *req.ImageURL
	}
	if req.Order != nil {
		member.Order = *req.Order
	}

	if err := s.db.Save(member).Error; err != nil {
		return nil, err
	}
	return member, nil
}

func (s *TeamService) Delete(id uint) error {
	member, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.db.Delete(member).Error
}
