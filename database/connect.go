package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/thegambler1/qmdigital/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Opener opens a GORM connection for a connection string
type Opener func(dsn string) (*gorm.DB, error)

// Connect opens a PostgreSQL connection through GORM
func Connect(dsn string) (*gorm.DB, error) {
	gormLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             10 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		PrepareStmt: false,
		Logger:      gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("opening database connection: %w", err)
	}
	return db, nil
}

// SelectOptions controls how the storage backend is chosen at startup
type SelectOptions struct {
	DatabaseURL string
	AutoMigrate bool
	Seed        bool
	Open        Opener // defaults to Connect
}

// Select picks the storage backend once at startup. A configured database that
// answers a trial query is used; anything else falls back to MemStorage.
func Select(ctx context.Context, opts SelectOptions, logg zerolog.Logger) Storage {
	if opts.DatabaseURL == "" {
		logg.Info().Msg("DATABASE_URL not set, using in-memory storage")
		return NewMemStorage(opts.Seed)
	}

	db, err := openPersistent(ctx, opts)
	if err != nil {
		logg.Warn().Err(err).Msg("database unavailable, falling back to in-memory storage")
		return NewMemStorage(opts.Seed)
	}

	logg.Info().Str("dialect", db.Kind()).Msg("using database storage")
	return db
}

func openPersistent(ctx context.Context, opts SelectOptions) (*Database, error) {
	open := opts.Open
	if open == nil {
		open = Connect
	}

	conn, err := open(opts.DatabaseURL)
	if err != nil {
		return nil, err
	}

	db := New(conn)
	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, err
	}

	if opts.AutoMigrate {
		if err := models.Migrate(conn); err != nil {
			db.Close()
			return nil, err
		}
	}

	if opts.Seed {
		if err := Seed(ctx, db); err != nil {
			db.Close()
			return nil, err
		}
	}
	return db, nil
}
