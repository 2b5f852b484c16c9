package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thegambler1/qmdigital/models"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func sampleItem(title, category string) models.NewPortfolioItem {
	return models.NewPortfolioItem{
		Title:       title,
		Description: title + " description",
		Category:    category,
		ImageURL:    "https://img.test/" + title + ".png",
		Year:        2024,
	}
}

func sampleProduct(title string, featured bool) models.NewProduct {
	return models.NewProduct{
		Title:               title,
		Description:         title + " description",
		Price:               "$49.99",
		ImageURL:            "https://img.test/" + title + ".png",
		ExternalCheckoutURL: "https://gumroad.com/l/" + title,
		Format:              "Digital Download",
		Details:             "4K Resolution",
		Featured:            featured,
	}
}

func titles[T any](rows []T, title func(T) string) []string {
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, title(row))
	}
	return out
}

// runStorageContract checks the behavior every Storage implementation must share.
// newStore must return an empty store.
func runStorageContract(t *testing.T, newStore func(t *testing.T) Storage) {
	ctx := context.Background()

	t.Run("create then get returns input plus id", func(t *testing.T) {
		s := newStore(t)
		in := sampleItem("Neon", "Digital Art")

		created, err := s.CreatePortfolioItem(ctx, in)
		require.NoError(t, err)
		require.NotEmpty(t, created.ID)
		assert.Equal(t, in.Record(created.ID), *created)

		got, err := s.GetPortfolioItem(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, in.Record(created.ID), *got)

		pin := sampleProduct("kit", true)
		product, err := s.CreateProduct(ctx, pin)
		require.NoError(t, err)
		gotProduct, err := s.GetProduct(ctx, product.ID)
		require.NoError(t, err)
		require.NotNil(t, gotProduct)
		assert.Equal(t, pin.Record(product.ID), *gotProduct)
	})

	t.Run("ids are unique", func(t *testing.T) {
		s := newStore(t)
		a, err := s.CreateProduct(ctx, sampleProduct("a", false))
		require.NoError(t, err)
		b, err := s.CreateProduct(ctx, sampleProduct("a", false))
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("unknown ids report absent without error", func(t *testing.T) {
		s := newStore(t)
		id := models.NewID()

		item, err := s.GetPortfolioItem(ctx, id)
		assert.NoError(t, err)
		assert.Nil(t, item)

		item, err = s.UpdatePortfolioItem(ctx, id, models.PortfolioItemUpdate{Title: strPtr("X")})
		assert.NoError(t, err)
		assert.Nil(t, item)

		deleted, err := s.DeletePortfolioItem(ctx, id)
		assert.NoError(t, err)
		assert.False(t, deleted)

		product, err := s.GetProduct(ctx, "not-a-uuid")
		assert.NoError(t, err)
		assert.Nil(t, product)

		product, err = s.UpdateProduct(ctx, id, models.ProductUpdate{Price: strPtr("$1")})
		assert.NoError(t, err)
		assert.Nil(t, product)

		deleted, err = s.DeleteProduct(ctx, id)
		assert.NoError(t, err)
		assert.False(t, deleted)

		// update never creates
		items, err := s.ListPortfolioItems(ctx)
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("update preserves fields not supplied", func(t *testing.T) {
		s := newStore(t)
		created, err := s.CreatePortfolioItem(ctx, sampleItem("Before", "Branding"))
		require.NoError(t, err)

		updated, err := s.UpdatePortfolioItem(ctx, created.ID, models.PortfolioItemUpdate{Title: strPtr("X")})
		require.NoError(t, err)
		require.NotNil(t, updated)

		want := *created
		want.Title = "X"
		assert.Equal(t, want, *updated)

		got, err := s.GetPortfolioItem(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, want, *got)

		updated, err = s.UpdatePortfolioItem(ctx, created.ID, models.PortfolioItemUpdate{Year: intPtr(2021)})
		require.NoError(t, err)
		want.Year = 2021
		assert.Equal(t, want, *updated)
	})

	t.Run("empty strings and zero year persist", func(t *testing.T) {
		s := newStore(t)
		in := sampleItem("Blank", "Branding")
		in.Description = ""
		in.Year = 0

		created, err := s.CreatePortfolioItem(ctx, in)
		require.NoError(t, err)
		got, err := s.GetPortfolioItem(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, in.Record(created.ID), *got)

		_, err = s.UpdatePortfolioItem(ctx, created.ID, models.PortfolioItemUpdate{Title: strPtr(""), Year: intPtr(0)})
		require.NoError(t, err)
		got, err = s.GetPortfolioItem(ctx, created.ID)
		require.NoError(t, err)
		assert.Empty(t, got.Title)
		assert.Zero(t, got.Year)
		assert.Equal(t, "Branding", got.Category)
	})

	t.Run("product featured flag can be cleared", func(t *testing.T) {
		s := newStore(t)
		created, err := s.CreateProduct(ctx, sampleProduct("pack", true))
		require.NoError(t, err)

		updated, err := s.UpdateProduct(ctx, created.ID, models.ProductUpdate{Featured: boolPtr(false)})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.False(t, updated.Featured)

		got, err := s.GetProduct(ctx, created.ID)
		require.NoError(t, err)
		assert.False(t, got.Featured)
		assert.Equal(t, created.Title, got.Title)
	})

	t.Run("list featured returns exactly the featured products", func(t *testing.T) {
		s := newStore(t)
		for _, p := range []models.NewProduct{sampleProduct("A", true), sampleProduct("B", false), sampleProduct("C", true)} {
			_, err := s.CreateProduct(ctx, p)
			require.NoError(t, err)
		}

		featured, err := s.ListFeaturedProducts(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"A", "C"}, titles(featured, func(p models.Product) string { return p.Title }))

		all, err := s.ListProducts(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("list by category matches exactly", func(t *testing.T) {
		s := newStore(t)
		for i, category := range []string{"Digital Art", "UI/UX", "UI/UX", "Branding"} {
			_, err := s.CreatePortfolioItem(ctx, sampleItem(string(rune('a'+i)), category))
			require.NoError(t, err)
		}

		items, err := s.ListPortfolioItemsByCategory(ctx, "UI/UX")
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"b", "c"}, titles(items, func(p models.PortfolioItem) string { return p.Title }))

		items, err = s.ListPortfolioItemsByCategory(ctx, "ui/ux")
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("delete twice", func(t *testing.T) {
		s := newStore(t)
		item, err := s.CreatePortfolioItem(ctx, sampleItem("gone", "3D Art"))
		require.NoError(t, err)

		deleted, err := s.DeletePortfolioItem(ctx, item.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = s.DeletePortfolioItem(ctx, item.ID)
		require.NoError(t, err)
		assert.False(t, deleted)

		product, err := s.CreateProduct(ctx, sampleProduct("gone", false))
		require.NoError(t, err)
		deleted, err = s.DeleteProduct(ctx, product.ID)
		require.NoError(t, err)
		assert.True(t, deleted)
		deleted, err = s.DeleteProduct(ctx, product.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("create contact stamps createdAt", func(t *testing.T) {
		s := newStore(t)
		before := time.Now().Add(-time.Second)
		in := models.NewContact{Name: "Ada", Email: "ada@example.com", ProjectType: "Other", Message: "Hi"}

		contact, err := s.CreateContact(ctx, in)
		require.NoError(t, err)
		require.NotEmpty(t, contact.ID)
		assert.WithinRange(t, contact.CreatedAt, before, time.Now().Add(time.Second))
		assert.Equal(t, "Ada", contact.Name)

		contacts, err := s.ListContacts(ctx)
		require.NoError(t, err)
		require.Len(t, contacts, 1)
		assert.Equal(t, contact.ID, contacts[0].ID)
		assert.Equal(t, in.Message, contacts[0].Message)
		assert.True(t, contact.CreatedAt.Equal(contacts[0].CreatedAt))
	})

	t.Run("site settings are created on first write then merged", func(t *testing.T) {
		s := newStore(t)

		settings, err := s.GetSiteSettings(ctx)
		require.NoError(t, err)
		assert.Nil(t, settings)

		created, err := s.UpdateSiteSettings(ctx, models.SiteSettingsUpdate{
			SiteName:    strPtr("Studio"),
			SocialLinks: models.SocialLinks{"instagram": "https://instagram.com/studio"},
		})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.NotEmpty(t, created.ID)
		assert.Equal(t, "Studio", created.SiteName)
		assert.Equal(t, DefaultSiteSettings().Tagline, created.Tagline)
		assert.Equal(t, models.SocialLinks{"instagram": "https://instagram.com/studio"}, created.Links())
		assert.False(t, created.UpdatedAt.IsZero())

		updated, err := s.UpdateSiteSettings(ctx, models.SiteSettingsUpdate{
			Tagline:    strPtr("New tagline"),
			FaviconURL: strPtr("https://img.test/favicon.ico"),
		})
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "Studio", updated.SiteName)
		assert.Equal(t, "New tagline", updated.Tagline)
		assert.Equal(t, created.Links(), updated.Links())
		require.NotNil(t, updated.FaviconURL)
		assert.Equal(t, "https://img.test/favicon.ico", *updated.FaviconURL)
		assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))

		got, err := s.GetSiteSettings(ctx)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, updated.ID, got.ID)
		assert.Equal(t, "New tagline", got.Tagline)
		assert.Equal(t, created.Links(), got.Links())
		assert.True(t, updated.UpdatedAt.Equal(got.UpdatedAt))
	})

	t.Run("seed fills an empty store once", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, Seed(ctx, s))
		require.NoError(t, Seed(ctx, s))

		items, err := s.ListPortfolioItems(ctx)
		require.NoError(t, err)
		assert.Len(t, items, len(samplePortfolioItems))

		products, err := s.ListProducts(ctx)
		require.NoError(t, err)
		assert.Len(t, products, len(sampleProducts))

		settings, err := s.GetSiteSettings(ctx)
		require.NoError(t, err)
		require.NotNil(t, settings)
		assert.Equal(t, DefaultSiteSettings().SiteName, settings.SiteName)
	})
}
