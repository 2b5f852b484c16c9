package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PortfolioItem represents a displayed artwork in the gallery
type PortfolioItem struct {
	ID          string `json:"id" db:"id" gorm:"type:varchar(36);primaryKey;not null"`
	Title       string `json:"title" db:"title" gorm:"type:text;not null"`
	Description string `json:"description" db:"description" gorm:"type:text;not null"`
	Category    string `json:"category" db:"category" gorm:"type:text;not null;index"`
	ImageURL    string `json:"imageUrl" db:"image_url" gorm:"column:image_url;type:text;not null"`
	Year        int    `json:"year" db:"year" gorm:"type:integer;not null"`
}

func (PortfolioItem) TableName() string {
	return "portfolio_items"
}

// BeforeCreate assigns an id when the caller did not provide one
func (p *PortfolioItem) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = NewID()
	}
	return nil
}

// NewPortfolioItem is the insertable subset of PortfolioItem
type NewPortfolioItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl"`
	Year        int    `json:"year"`
}

// PortfolioItemInput is the create request body. Every field must be present;
// empty strings and a zero year are accepted.
type PortfolioItemInput struct {
	Title       *string `json:"title" validate:"required"`
	Description *string `json:"description" validate:"required"`
	Category    *string `json:"category" validate:"required"`
	ImageURL    *string `json:"imageUrl" validate:"required"`
	Year        *int    `json:"year" validate:"required"`
}

func (in PortfolioItemInput) Value() NewPortfolioItem {
	return NewPortfolioItem{
		Title:       deref(in.Title),
		Description: deref(in.Description),
		Category:    deref(in.Category),
		ImageURL:    deref(in.ImageURL),
		Year:        deref(in.Year),
	}
}

// Record builds the full record for id
func (n NewPortfolioItem) Record(id string) PortfolioItem {
	return PortfolioItem{
		ID:          id,
		Title:       n.Title,
		Description: n.Description,
		Category:    n.Category,
		ImageURL:    n.ImageURL,
		Year:        n.Year,
	}
}

// PortfolioItemUpdate carries a partial update. Nil fields are left untouched.
type PortfolioItemUpdate struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Category    *string `json:"category,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	Year        *int    `json:"year,omitempty"`
}

// Apply merges the present fields onto item
func (u PortfolioItemUpdate) Apply(item *PortfolioItem) {
	if u.Title != nil {
		item.Title = *u.Title
	}
	if u.Description != nil {
		item.Description = *u.Description
	}
	if u.Category != nil {
		item.Category = *u.Category
	}
	if u.ImageURL != nil {
		item.ImageURL = *u.ImageURL
	}
	if u.Year != nil {
		item.Year = *u.Year
	}
}

func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}

// NewID returns a fresh record identifier
func NewID() string {
	return uuid.NewString()
}
