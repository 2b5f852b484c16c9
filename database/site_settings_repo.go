package database

import (
	"context"
	"errors"
	"time"

	"github.com/thegambler1/qmdigital/models"
	"gorm.io/gorm"
)

type SiteSettingsRepo struct {
	db *gorm.DB
}

func NewSiteSettingsRepo(db *gorm.DB) *SiteSettingsRepo {
	return &SiteSettingsRepo{db}
}

// Find returns the settings row, or nil when it was never written.
// Should more than one row exist, the most recently updated wins.
func (r *SiteSettingsRepo) Find(ctx context.Context) (*models.SiteSettings, error) {
	var settings models.SiteSettings
	err := r.db.WithContext(ctx).Order("updated_at desc").First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Upsert merges update onto the stored row, creating it from defaults first if needed
func (r *SiteSettingsRepo) Upsert(ctx context.Context, defaults models.NewSiteSettings, update models.SiteSettingsUpdate, at time.Time) (*models.SiteSettings, error) {
	existing, err := r.Find(ctx)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		settings := defaults.Record("", at)
		update.Apply(&settings)
		if err := r.db.WithContext(ctx).Create(&settings).Error; err != nil {
			return nil, err
		}
		return &settings, nil
	}

	update.Apply(existing)
	existing.UpdatedAt = at
	err = r.db.WithContext(ctx).Model(&models.SiteSettings{}).Where("id = ?", existing.ID).Select("*").Omit("id").Updates(existing).Error
	if err != nil {
		return nil, err
	}
	return existing, nil
}
