package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestPortfolioItemUpdateApply(t *testing.T) {
	item := NewPortfolioItem{Title: "A", Description: "d", Category: "UI/UX", ImageURL: "https://img.test/a", Year: 2023}.Record("id-1")

	PortfolioItemUpdate{}.Apply(&item)
	assert.Equal(t, "A", item.Title)

	PortfolioItemUpdate{Title: ptr("B"), Year: ptr(2024)}.Apply(&item)
	assert.Equal(t, PortfolioItem{
		ID:          "id-1",
		Title:       "B",
		Description: "d",
		Category:    "UI/UX",
		ImageURL:    "https://img.test/a",
		Year:        2024,
	}, item)
}

func TestProductUpdateApply(t *testing.T) {
	p := NewProduct{Title: "Kit", Price: "$1", Featured: true}.Record("p")

	ProductUpdate{Featured: ptr(false), Price: ptr("$2")}.Apply(&p)
	assert.False(t, p.Featured)
	assert.Equal(t, "$2", p.Price)
	assert.Equal(t, "Kit", p.Title)
}

func TestSiteSettingsUpdateApply(t *testing.T) {
	s := NewSiteSettings{
		SiteName:    "Site",
		SocialLinks: SocialLinks{"x": "https://x.com/me"},
		FaviconURL:  ptr("https://img.test/f.ico"),
	}.Record("s", time.Time{})

	SiteSettingsUpdate{
		Tagline:     ptr("tag"),
		SocialLinks: SocialLinks{"instagram": "https://instagram.com/me"},
		FaviconURL:  ptr(""),
		LogoURL:     ptr("https://img.test/logo.png"),
	}.Apply(&s)

	assert.Equal(t, "Site", s.SiteName)
	assert.Equal(t, "tag", s.Tagline)
	assert.Equal(t, SocialLinks{"instagram": "https://instagram.com/me"}, s.Links())
	assert.Nil(t, s.FaviconURL)
	require.NotNil(t, s.LogoURL)
	assert.Equal(t, "https://img.test/logo.png", *s.LogoURL)
}

func TestSiteSettingsCloneIsIndependent(t *testing.T) {
	s := NewSiteSettings{SocialLinks: SocialLinks{"x": "https://x.com/me"}, LogoURL: ptr("a")}.Record("s", time.Time{})
	c := s.Clone()

	c.Links()["x"] = "changed"
	*c.LogoURL = "b"

	assert.Equal(t, "https://x.com/me", s.Links()["x"])
	assert.Equal(t, "a", *s.LogoURL)
}

func TestSiteSettingsJSONShape(t *testing.T) {
	s := NewSiteSettings{SiteName: "Site", SocialLinks: SocialLinks{"x": "https://x.com/me"}}.Record("s", time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC))

	raw, err := json.Marshal(s)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, map[string]any{"x": "https://x.com/me"}, decoded["socialLinks"])
	assert.Equal(t, "2025-01-02T03:04:05Z", decoded["updatedAt"])
	assert.NotContains(t, decoded, "faviconUrl")
}

func TestContactRecordKeepsServerTimestamp(t *testing.T) {
	at := time.Date(2025, 5, 6, 7, 8, 9, 0, time.UTC)
	c := NewContact{Name: "n", Email: "e@x.co", ProjectType: "Other", Message: "m"}.Record("c", at)
	assert.Equal(t, at, c.CreatedAt)
	assert.Equal(t, "c", c.ID)
}
