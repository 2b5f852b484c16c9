package database

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thegambler1/qmdigital/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openSQLite(dsn string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
}

func newSQLiteDSN() string {
	return fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
}

func setupTestDatabase(t *testing.T) *Database {
	t.Helper()

	conn, err := openSQLite(newSQLiteDSN())
	require.NoError(t, err)
	require.NoError(t, models.Migrate(conn))

	db := New(conn)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestDatabaseContract(t *testing.T) {
	runStorageContract(t, func(t *testing.T) Storage {
		return setupTestDatabase(t)
	})
}

func TestDatabaseKindAndPing(t *testing.T) {
	db := setupTestDatabase(t)
	assert.Equal(t, "sqlite", db.Kind())
	assert.NoError(t, db.Ping(context.Background()))
}

func TestSocialLinksRoundTripThroughJSONColumn(t *testing.T) {
	ctx := context.Background()
	db := setupTestDatabase(t)

	links := models.SocialLinks{
		"instagram":  "https://instagram.com/qm",
		"artstation": "https://artstation.com/qm",
	}
	_, err := db.UpdateSiteSettings(ctx, models.SiteSettingsUpdate{SocialLinks: links})
	require.NoError(t, err)

	var raw string
	require.NoError(t, db.db.Raw("SELECT social_links FROM site_settings").Scan(&raw).Error)
	assert.JSONEq(t, `{"instagram":"https://instagram.com/qm","artstation":"https://artstation.com/qm"}`, raw)

	got, err := db.GetSiteSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, links, got.Links())
}

func TestSelect(t *testing.T) {
	ctx := context.Background()
	logg := zerolog.New(io.Discard)

	t.Run("no database url uses memory", func(t *testing.T) {
		s := Select(ctx, SelectOptions{Seed: true}, logg)
		assert.Equal(t, "memory", s.Kind())

		items, err := s.ListPortfolioItems(ctx)
		require.NoError(t, err)
		assert.NotEmpty(t, items)
	})

	t.Run("open failure falls back to memory", func(t *testing.T) {
		s := Select(ctx, SelectOptions{
			DatabaseURL: "postgres://nobody@127.0.0.1:1/none",
			Open: func(string) (*gorm.DB, error) {
				return nil, errors.New("connection refused")
			},
		}, logg)
		assert.Equal(t, "memory", s.Kind())
	})

	t.Run("reachable database is migrated and seeded", func(t *testing.T) {
		s := Select(ctx, SelectOptions{
			DatabaseURL: newSQLiteDSN(),
			AutoMigrate: true,
			Seed:        true,
			Open:        openSQLite,
		}, logg)
		require.Equal(t, "sqlite", s.Kind())
		t.Cleanup(func() { s.(*Database).Close() })

		products, err := s.ListProducts(ctx)
		require.NoError(t, err)
		assert.Len(t, products, len(sampleProducts))
	})

	t.Run("seed failure falls back to memory", func(t *testing.T) {
		// without AutoMigrate the seed step hits missing tables
		s := Select(ctx, SelectOptions{
			DatabaseURL: newSQLiteDSN(),
			Seed:        true,
			Open:        openSQLite,
		}, logg)
		assert.Equal(t, "memory", s.Kind())
	})
}
