package database

import (
	"context"

	"github.com/thegambler1/qmdigital/models"
)

// Storage is the persistence contract the HTTP layer depends on.
//
// Lookups and updates of unknown ids return a nil record and a nil error;
// a non-nil error always means the backend itself failed. Updates never
// create records.
type Storage interface {
	ListPortfolioItems(ctx context.Context) ([]models.PortfolioItem, error)
	ListPortfolioItemsByCategory(ctx context.Context, category string) ([]models.PortfolioItem, error)
	GetPortfolioItem(ctx context.Context, id string) (*models.PortfolioItem, error)
	CreatePortfolioItem(ctx context.Context, item models.NewPortfolioItem) (*models.PortfolioItem, error)
	UpdatePortfolioItem(ctx context.Context, id string, update models.PortfolioItemUpdate) (*models.PortfolioItem, error)
	DeletePortfolioItem(ctx context.Context, id string) (bool, error)

	ListProducts(ctx context.Context) ([]models.Product, error)
	ListFeaturedProducts(ctx context.Context) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	CreateProduct(ctx context.Context, product models.NewProduct) (*models.Product, error)
	UpdateProduct(ctx context.Context, id string, update models.ProductUpdate) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) (bool, error)

	ListContacts(ctx context.Context) ([]models.Contact, error)
	CreateContact(ctx context.Context, contact models.NewContact) (*models.Contact, error)

	GetSiteSettings(ctx context.Context) (*models.SiteSettings, error)
	UpdateSiteSettings(ctx context.Context, update models.SiteSettingsUpdate) (*models.SiteSettings, error)

	// Kind names the backend, e.g. "memory" or "postgres"
	Kind() string
}
