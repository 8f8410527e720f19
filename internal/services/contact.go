package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/habitat-caracas/habitat/backend/internal/models"
	"github.com/habitat-caracas/habitat/backend/pkg/response"
	"gorm.io/gorm"
)

type ContactService struct {
	db       *gorm.DB
	settings *SiteSettingService
	email    *EmailService
}

func NewContactService(db *gorm.DB, settings *SiteSettingService, email *EmailService) *ContactService {
	return &ContactService{db: db, settings: settings, email: email}
}

type ContactRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone"`
	Subject    string `json:"subject"`
	Message    string `json:"message" binding:"required"`
	PropertyID *uint  `json:"property_id"`
}

type UpdateContactRequest struct {
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Subject      *string `json:"subject"`
	Message      *string `json:"message"`
	PropertyID   *uint   `json:"property_id"`
	AssignedToID *uint   `json:"assigned_to_id"`
	IsRead       *bool   `json:"is_read"`
}

// Create records a public contact submission. New submissions start
// unread and unassigned.
func (s *ContactService) Create(req *ContactRequest) (*models.Contact, error) {
	contact := models.Contact{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Subject:     req.Subject,
		Message:     req.Message,
		PropertyID:  req.PropertyID,
		IsRead:      false,
		SubmittedAt: time.Now(),
	}
	if err := s.db.Create(&contact).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

// List returns contacts visible to the viewer. Staff only see their own
// assignments; managers and admins see everything.
func (s *ContactService) List(offset, limit int, viewerID uint, viewerRole string) ([]models.Contact, error) {
	if limit <= 0 {
		limit = 100
	}

	query := s.db.Model(&models.Contact{})
	if viewerRole == models.RoleStaff {
		query = query.Where("assigned_to_id = ?", viewerID)
	}

	var contacts []models.Contact
	if err := query.Offset(offset).Limit(limit).
		Order("submitted_at desc").Find(&contacts).Error; err != nil {
		return nil, err
	}
	return contacts, nil
}

func (s *ContactService) Get(id uint) (*models.Contact, error) {
	var contact models.Contact
	if err := s.db.First(&contact, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("contact not found")
		}
		return nil, err
	}
	return &contact, nil
}

func (s *ContactService) Update(id uint, req *UpdateContactRequest) (*models.Contact, error) {
	contact, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		contact.Name = *req.Name
	}
	if req.Email != nil {
		contact.Email = *req.Email
	}
	if req.Phone != nil {
		contact.Phone = *req.Phone
	}
	if req.Subject != nil {
		contact.Subject = *req.Subject
	}
	if req.Message != nil {
		contact.Message = *req.Message
	}
	if req.PropertyID != nil {
		contact.PropertyID = req.PropertyID
	}
	if req.AssignedToID != nil {
		contact.AssignedToID = req.AssignedToID
	}
	if req.IsRead != nil {
		contact.IsRead = *req.IsRead
	}

	if err := s.db.Save(contact).Error; err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *ContactService) Delete(id uint) error {
	contact, err := s.Get(id)
	if err != nil {
		return err
	}
	return s.db.Delete(contact).Error
}

// ResolveRecipient picks the forwarding address: explicit override first,
// then the contact_email site setting, then the caller's own address.
func (s *ContactService) ResolveRecipient(override, callerEmail string) (string, error) {
	if override != "" {
		return override, nil
	}
	if configured := s.settings.GetText("contact_email"); configured != "" {
		return configured, nil
	}
	if callerEmail != "" {
		return callerEmail, nil
	}
	return "", response.NewBadRequest("no recipient email available")
}

// Forward sends a contact submission to the resolved recipient over SMTP.
func (s *ContactService) Forward(id uint, override, callerEmail string) (string, error) {
	contact, err := s.Get(id)
	if err != nil {
		return "", err
	}

	recipient, err := s.ResolveRecipient(override, callerEmail)
	if err != nil {
		return "", err
	}

	subject := fmt.Sprintf("Contact submission #%d: %s", contact.ID, contact.Subject)
	body := buildContactEmailBody(contact)

	if err := s.email.Send([]string{recipient}, subject, body); err != nil {
		return "", response.NewServerError("failed to send email")
	}
	return recipient, nil
}

func buildContactEmailBody(c *models.Contact) string {
	phone := c.Phone
	if phone == "" {
		phone = "-"
	}
	return fmt.Sprintf(
		"Name: %s\nEmail: %s\nPhone: %s\nSubject: %s\nSubmitted: %s\n\nMessage:\n%s\n",
		c.Name, c.Email, phone, c.Subject,
		c.SubmittedAt.Format(time.RFC3339), c.Message,
	)
}
