package models

import (
	"time"

	"gorm.io/gorm"
)

// Contact is a submission of the public contact form
type Contact struct {
	ID          string    `json:"id" db:"id" gorm:"type:varchar(36);primaryKey;not null"`
	Name        string    `json:"name" db:"name" gorm:"type:text;not null"`
	Email       string    `json:"email" db:"email" gorm:"type:text;not null"`
	ProjectType string    `json:"projectType" db:"project_type" gorm:"column:project_type;type:text;not null"`
	Message     string    `json:"message" db:"message" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at" gorm:"column:created_at;not null;autoCreateTime:false"`
}

func (Contact) TableName() string {
	return "contacts"
}

func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = NewID()
	}
	return nil
}

// NewContact is what the contact form may submit. CreatedAt is always set by the server.
type NewContact struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	ProjectType string `json:"projectType"`
	Message     string `json:"message"`
}

// ContactInput is the contact form body. Every field must be present and the
// email must parse; an empty message is accepted.
type ContactInput struct {
	Name        *string `json:"name" validate:"required"`
	Email       *string `json:"email" validate:"required,email"`
	ProjectType *string `json:"projectType" validate:"required"`
	Message     *string `json:"message" validate:"required"`
}

func (in ContactInput) Value() NewContact {
	return NewContact{
		Name:        deref(in.Name),
		Email:       deref(in.Email),
		ProjectType: deref(in.ProjectType),
		Message:     deref(in.Message),
	}
}

func (n NewContact) Record(id string, createdAt time.Time) Contact {
	return Contact{
		ID:          id,
		Name:        n.Name,
		Email:       n.Email,
		ProjectType: n.ProjectType,
		Message:     n.Message,
		CreatedAt:   createdAt,
	}
}
