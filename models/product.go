package models

import "gorm.io/gorm"

// Product is a digital good sold through an external checkout link
type Product struct {
	ID                  string `json:"id" db:"id" gorm:"type:varchar(36);primaryKey;not null"`
	Title               string `json:"title" db:"title" gorm:"type:text;not null"`
	Description         string `json:"description" db:"description" gorm:"type:text;not null"`
	Price               string `json:"price" db:"price" gorm:"type:text;not null"`
	ImageURL            string `json:"imageUrl" db:"image_url" gorm:"column:image_url;type:text;not null"`
	ExternalCheckoutURL string `json:"externalCheckoutUrl" db:"external_checkout_url" gorm:"column:external_checkout_url;type:text;not null"`
	Format              string `json:"format" db:"format" gorm:"type:text;not null"`
	Details             string `json:"details" db:"details" gorm:"type:text;not null"`
	Featured            bool   `json:"featured" db:"featured" gorm:"not null;index"`
}

func (Product) TableName() string {
	return "products"
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = NewID()
	}
	return nil
}

// NewProduct is the insertable subset of Product. Featured defaults to false.
type NewProduct struct {
	Title               string `json:"title"`
	Description         string `json:"description"`
	Price               string `json:"price"`
	ImageURL            string `json:"imageUrl"`
	ExternalCheckoutURL string `json:"externalCheckoutUrl"`
	Format              string `json:"format"`
	Details             string `json:"details"`
	Featured            bool   `json:"featured"`
}

// ProductInput is the create request body. All fields but featured must be
// present; the checkout link must be a URL.
type ProductInput struct {
	Title               *string `json:"title" validate:"required"`
	Description         *string `json:"description" validate:"required"`
	Price               *string `json:"price" validate:"required"`
	ImageURL            *string `json:"imageUrl" validate:"required"`
	ExternalCheckoutURL *string `json:"externalCheckoutUrl" validate:"required,url"`
	Format              *string `json:"format" validate:"required"`
	Details             *string `json:"details" validate:"required"`
	Featured            *bool   `json:"featured"`
}

func (in ProductInput) Value() NewProduct {
	return NewProduct{
		Title:               deref(in.Title),
		Description:         deref(in.Description),
		Price:               deref(in.Price),
		ImageURL:            deref(in.ImageURL),
		ExternalCheckoutURL: deref(in.ExternalCheckoutURL),
		Format:              deref(in.Format),
		Details:             deref(in.Details),
		Featured:            deref(in.Featured),
	}
}

func (n NewProduct) Record(id string) Product {
	return Product{
		ID:                  id,
		Title:               n.Title,
		Description:         n.Description,
		Price:               n.Price,
		ImageURL:            n.ImageURL,
		ExternalCheckoutURL: n.ExternalCheckoutURL,
		Format:              n.Format,
		Details:             n.Details,
		Featured:            n.Featured,
	}
}

// ProductUpdate carries a partial update. Nil fields are left untouched.
type ProductUpdate struct {
	Title               *string `json:"title,omitempty"`
	Description         *string `json:"description,omitempty"`
	Price               *string `json:"price,omitempty"`
	ImageURL            *string `json:"imageUrl,omitempty"`
	ExternalCheckoutURL *string `json:"externalCheckoutUrl,omitempty" validate:"omitempty,url"`
	Format              *string `json:"format,omitempty"`
	Details             *string `json:"details,omitempty"`
	Featured            *bool   `json:"featured,omitempty"`
}

func (u ProductUpdate) Apply(p *Product) {
	if u.Title != nil {
		p.Title = *u.Title
	}
	if u.Description != nil {
		p.Description = *u.Description
	}
	if u.Price != nil {
		p.Price = *u.Price
	}
	if u.ImageURL != nil {
		p.ImageURL = *u.ImageURL
	}
	if u.ExternalCheckoutURL != nil {
		p.ExternalCheckoutURL = *u.ExternalCheckoutURL
	}
	if u.Format != nil {
		p.Format = *u.Format
	}
	if u.Details != nil {
		p.Details = *u.Details
	}
	if u.Featured != nil {
		p.Featured = *u.Featured
	}
}
