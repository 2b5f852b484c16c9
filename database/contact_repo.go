package database

import (
	"context"

	"github.com/thegambler1/qmdigital/models"
	"gorm.io/gorm"
)

type ContactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) *ContactRepo {
	return &ContactRepo{db}
}

// FindAll returns contact submissions, oldest first
func (r *ContactRepo) FindAll(ctx context.Context) ([]models.Contact, error) {
	var contacts []models.Contact
	err := r.db.WithContext(ctx).Order("created_at asc").Find(&contacts).Error
	return contacts, err
}

func (r *ContactRepo) Add(ctx context.Context, contact *models.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}
