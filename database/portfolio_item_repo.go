package database

import (
	"context"
	"errors"

	"github.com/thegambler1/qmdigital/models"
	"gorm.io/gorm"
)

type PortfolioItemRepo struct {
	db *gorm.DB
}

func NewPortfolioItemRepo(db *gorm.DB) *PortfolioItemRepo {
	return &PortfolioItemRepo{db}
}

// FindAll returns all portfolio items from the database
func (r *PortfolioItemRepo) FindAll(ctx context.Context) ([]models.PortfolioItem, error) {
	var items []models.PortfolioItem
	err := r.db.WithContext(ctx).Find(&items).Error
	return items, err
}

// FindByCategory returns the items whose category matches exactly
func (r *PortfolioItemRepo) FindByCategory(ctx context.Context, category string) ([]models.PortfolioItem, error) {
	var items []models.PortfolioItem
	err := r.db.WithContext(ctx).Where("category = ?", category).Find(&items).Error
	return items, err
}

// FindByID returns nil without error when no item has the id
func (r *PortfolioItemRepo) FindByID(ctx context.Context, id string) (*models.PortfolioItem, error) {
	var item models.PortfolioItem
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// Add inserts a new portfolio item into the database
func (r *PortfolioItemRepo) Add(ctx context.Context, item *models.PortfolioItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

// Update merges the present fields of update onto the stored row
func (r *PortfolioItemRepo) Update(ctx context.Context, id string, update models.PortfolioItemUpdate) (*models.PortfolioItem, error) {
	item, err := r.FindByID(ctx, id)
	if err != nil || item == nil {
		return nil, err
	}
	update.Apply(item)

	res := r.db.WithContext(ctx).Model(&models.PortfolioItem{}).Where("id = ?", id).Select("*").Omit("id").Updates(item)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		// deleted between the read and the write
		return nil, nil
	}
	return item, nil
}

// Delete removes a portfolio item by id and reports whether it existed
func (r *PortfolioItemRepo) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.PortfolioItem{})
	return res.RowsAffected > 0, res.Error
}
