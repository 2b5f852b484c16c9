package database

import (
	"context"
	"fmt"
	"time"

	"github.com/thegambler1/qmdigital/models"
	"gorm.io/gorm"
)

// Database is the persistent Storage, one repo per table over a shared GORM connection
type Database struct {
	db                *gorm.DB
	portfolioItemRepo *PortfolioItemRepo
	productRepo       *ProductRepo
	contactRepo       *ContactRepo
	siteSettingsRepo  *SiteSettingsRepo
	now               func() time.Time
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) *Database {
	return &Database{
		db:                db,
		portfolioItemRepo: NewPortfolioItemRepo(db),
		productRepo:       NewProductRepo(db),
		contactRepo:       NewContactRepo(db),
		siteSettingsRepo:  NewSiteSettingsRepo(db),
		now:               now,
	}
}

// Kind reports the SQL dialect in use
func (d *Database) Kind() string {
	return d.db.Dialector.Name()
}

// Ping runs the trial query used to decide whether the database is usable
func (d *Database) Ping(ctx context.Context) error {
	var result int
	if err := d.db.WithContext(ctx).Raw("SELECT 1").Scan(&result).Error; err != nil {
		return fmt.Errorf("trial query: %w", err)
	}
	return nil
}

// Close releases the pooled connections
func (d *Database) Close() error {
	sqlDB, err := d.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *Database) ListPortfolioItems(ctx context.Context) ([]models.PortfolioItem, error) {
	return d.portfolioItemRepo.FindAll(ctx)
}

func (d *Database) ListPortfolioItemsByCategory(ctx context.Context, category string) ([]models.PortfolioItem, error) {
	return d.portfolioItemRepo.FindByCategory(ctx, category)
}

func (d *Database) GetPortfolioItem(ctx context.Context, id string) (*models.PortfolioItem, error) {
	return d.portfolioItemRepo.FindByID(ctx, id)
}

func (d *Database) CreatePortfolioItem(ctx context.Context, in models.NewPortfolioItem) (*models.PortfolioItem, error) {
	item := in.Record(models.NewID())
	if err := d.portfolioItemRepo.Add(ctx, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (d *Database) UpdatePortfolioItem(ctx context.Context, id string, update models.PortfolioItemUpdate) (*models.PortfolioItem, error) {
	return d.portfolioItemRepo.Update(ctx, id, update)
}

func (d *Database) DeletePortfolioItem(ctx context.Context, id string) (bool, error) {
	return d.portfolioItemRepo.Delete(ctx, id)
}

func (d *Database) ListProducts(ctx context.Context) ([]models.Product, error) {
	return d.productRepo.FindAll(ctx)
}

func (d *Database) ListFeaturedProducts(ctx context.Context) ([]models.Product, error) {
	return d.productRepo.FindFeatured(ctx)
}

func (d *Database) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return d.productRepo.FindByID(ctx, id)
}

func (d *Database) CreateProduct(ctx context.Context, in models.NewProduct) (*models.Product, error) {
	product := in.Record(models.NewID())
	if err := d.productRepo.Add(ctx, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (d *Database) UpdateProduct(ctx context.Context, id string, update models.ProductUpdate) (*models.Product, error) {
	return d.productRepo.Update(ctx, id, update)
}

func (d *Database) DeleteProduct(ctx context.Context, id string) (bool, error) {
	return d.productRepo.Delete(ctx, id)
}

func (d *Database) ListContacts(ctx context.Context) ([]models.Contact, error) {
	return d.contactRepo.FindAll(ctx)
}

func (d *Database) CreateContact(ctx context.Context, in models.NewContact) (*models.Contact, error) {
	contact := in.Record(models.NewID(), d.now())
	if err := d.contactRepo.Add(ctx, &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

func (d *Database) GetSiteSettings(ctx context.Context) (*models.SiteSettings, error) {
	return d.siteSettingsRepo.Find(ctx)
}

func (d *Database) UpdateSiteSettings(ctx context.Context, update models.SiteSettingsUpdate) (*models.SiteSettings, error) {
	return d.siteSettingsRepo.Upsert(ctx, DefaultSiteSettings(), update, d.now())
}
