package models

import "time"

// Contact is a message submitted through the public contact form. Creation
// is public; everything after that is manager/admin territory.
type Contact struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:200;not null" json:"name"`
	Email        string    `gorm:"size:255" json:"email"`
	Phone        string    `gorm:"size:50" json:"phone"`
	Subject      string    `gorm:"size:255" json:"subject"`
	Message      string    `gorm:"type:text;not null" json:"message"`
	PropertyID   *uint     `gorm:"index" json:"property_id"`
	AssignedToID *uint     `gorm:"index" json:"assigned_to_id"`
	IsRead       bool      `gorm:"default:false" json:"is_read"`
	SubmittedAt  time.Time `json:"submitted_at"`
}

func (Contact) TableName() string { return "contacts" }
