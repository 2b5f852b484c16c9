package database

import (
	"context"
	"sync"
	"time"

	"github.com/thegambler1/qmdigital/models"
)

// memTable keeps rows by id and remembers insertion order so listings are stable
type memTable[T any] struct {
	rows  map[string]T
	order []string
}

func newMemTable[T any]() *memTable[T] {
	return &memTable[T]{rows: make(map[string]T)}
}

func (t *memTable[T]) all(keep func(T) bool) []T {
	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		row := t.rows[id]
		if keep == nil || keep(row) {
			out = append(out, row)
		}
	}
	return out
}

func (t *memTable[T]) get(id string) (T, bool) {
	row, ok := t.rows[id]
	return row, ok
}

func (t *memTable[T]) put(id string, row T) {
	if _, ok := t.rows[id]; !ok {
		t.order = append(t.order, id)
	}
	t.rows[id] = row
}

func (t *memTable[T]) remove(id string) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, existing := range t.order {
		if existing == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// MemStorage is the non-persistent Storage. Everything is lost on restart.
type MemStorage struct {
	mu             sync.RWMutex
	portfolioItems *memTable[models.PortfolioItem]
	products       *memTable[models.Product]
	contacts       *memTable[models.Contact]
	settings       *models.SiteSettings
	now            func() time.Time
}

// NewMemStorage returns an empty store, seeded with the sample catalogue when seed is true
func NewMemStorage(seed bool) *MemStorage {
	m := &MemStorage{
		portfolioItems: newMemTable[models.PortfolioItem](),
		products:       newMemTable[models.Product](),
		contacts:       newMemTable[models.Contact](),
		now:            now,
	}
	if seed {
		// cannot fail against the in-memory backend
		_ = Seed(context.Background(), m)
	}
	return m
}

func (m *MemStorage) Kind() string {
	return "memory"
}

func (m *MemStorage) ListPortfolioItems(ctx context.Context) ([]models.PortfolioItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.portfolioItems.all(nil), nil
}

func (m *MemStorage) ListPortfolioItemsByCategory(ctx context.Context, category string) ([]models.PortfolioItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.portfolioItems.all(func(item models.PortfolioItem) bool {
		return item.Category == category
	}), nil
}

func (m *MemStorage) GetPortfolioItem(ctx context.Context, id string) (*models.PortfolioItem, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	item, ok := m.portfolioItems.get(id)
	if !ok {
		return nil, nil
	}
	return &item, nil
}

func (m *MemStorage) CreatePortfolioItem(ctx context.Context, in models.NewPortfolioItem) (*models.PortfolioItem, error) {
	item := in.Record(models.NewID())

	m.mu.Lock()
	defer m.mu.Unlock()
	m.portfolioItems.put(item.ID, item)
	return &item, nil
}

func (m *MemStorage) UpdatePortfolioItem(ctx context.Context, id string, update models.PortfolioItemUpdate) (*models.PortfolioItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item, ok := m.portfolioItems.get(id)
	if !ok {
		return nil, nil
	}
	update.Apply(&item)
	m.portfolioItems.put(id, item)
	return &item, nil
}

func (m *MemStorage) DeletePortfolioItem(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.portfolioItems.remove(id), nil
}

func (m *MemStorage) ListProducts(ctx context.Context) ([]models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.products.all(nil), nil
}

func (m *MemStorage) ListFeaturedProducts(ctx context.Context) ([]models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.products.all(func(p models.Product) bool {
		return p.Featured
	}), nil
}

func (m *MemStorage) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	product, ok := m.products.get(id)
	if !ok {
		return nil, nil
	}
	return &product, nil
}

func (m *MemStorage) CreateProduct(ctx context.Context, in models.NewProduct) (*models.Product, error) {
	product := in.Record(models.NewID())

	m.mu.Lock()
	defer m.mu.Unlock()
	m.products.put(product.ID, product)
	return &product, nil
}

func (m *MemStorage) UpdateProduct(ctx context.Context, id string, update models.ProductUpdate) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	product, ok := m.products.get(id)
	if !ok {
		return nil, nil
	}
	update.Apply(&product)
	m.products.put(id, product)
	return &product, nil
}

func (m *MemStorage) DeleteProduct(ctx context.Context, id string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.products.remove(id), nil
}

func (m *MemStorage) ListContacts(ctx context.Context) ([]models.Contact, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.contacts.all(nil), nil
}

func (m *MemStorage) CreateContact(ctx context.Context, in models.NewContact) (*models.Contact, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	contact := in.Record(models.NewID(), m.now())
	m.contacts.put(contact.ID, contact)
	return &contact, nil
}

func (m *MemStorage) GetSiteSettings(ctx context.Context) (*models.SiteSettings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.settings == nil {
		return nil, nil
	}
	settings := m.settings.Clone()
	return &settings, nil
}

func (m *MemStorage) UpdateSiteSettings(ctx context.Context, update models.SiteSettingsUpdate) (*models.SiteSettings, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var settings models.SiteSettings
	if m.settings == nil {
		settings = DefaultSiteSettings().Record(models.NewID(), time.Time{})
	} else {
		settings = m.settings.Clone()
	}
	update.Apply(&settings)
	settings.UpdatedAt = m.now()

	stored := settings.Clone()
	m.settings = &stored
	return &settings, nil
}

// now is the timestamp source for server-set fields. Postgres keeps microseconds.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}
