package database

import (
	"context"
	"errors"

	"github.com/thegambler1/qmdigital/models"
	"gorm.io/gorm"
)

type ProductRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) *ProductRepo {
	return &ProductRepo{db}
}

func (r *ProductRepo) FindAll(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).Find(&products).Error
	return products, err
}

func (r *ProductRepo) FindFeatured(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	err := r.db.WithContext(ctx).Where("featured = ?", true).Find(&products).Error
	return products, err
}

func (r *ProductRepo) FindByID(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepo) Add(ctx context.Context, product *models.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *ProductRepo) Update(ctx context.Context, id string, update models.ProductUpdate) (*models.Product, error) {
	product, err := r.FindByID(ctx, id)
	if err != nil || product == nil {
		return nil, err
	}
	update.Apply(product)

	// Select("*") so that featured=false is written too
	res := r.db.WithContext(ctx).Model(&models.Product{}).Where("id = ?", id).Select("*").Omit("id").Updates(product)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return product, nil
}

func (r *ProductRepo) Delete(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Product{})
	return res.RowsAffected > 0, res.Error
}
