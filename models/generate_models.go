package models

import (
	"fmt"
	"log"
	"os"

	"gorm.io/gen"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

/*
Query helper generation:

1. Set the environment variables DATABASE_URL=... and GENERATE_MODELS=true
2. Run the application: go run .

The tables are migrated first and typed query helpers for every model are
written to ./generated.
*/

// All lists every persisted model, in migration order.
func All() []interface{} {
	return []interface{}{
		&PortfolioItem{},
		&Product{},
		&Contact{},
		&SiteSettings{},
	}
}

// Migrate creates or alters the tables backing every model
func Migrate(db *gorm.DB) error {
	migrateDB := db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		PrepareStmt:            false,
	})
	if err := migrateDB.AutoMigrate(All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

func GenerateModels(db *gorm.DB) error {
	if err := db.Exec("SELECT 1").Error; err != nil {
		return fmt.Errorf("database not reachable: %w", err)
	}

	// Verbose logging so the migration statements are visible
	verbose := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             0,
			LogLevel:                  logger.Info,
			IgnoreRecordNotFoundError: false,
			Colorful:                  true,
		},
	)
	db = db.Session(&gorm.Session{Logger: verbose})

	fmt.Println("Migrating models...")
	if err := Migrate(db); err != nil {
		return err
	}

	g := gen.NewGenerator(gen.Config{
		OutPath:           "./generated",
		Mode:              gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable:     true,
		FieldCoverable:    true,
		FieldWithIndexTag: true,
		FieldWithTypeTag:  true,
	})
	g.UseDB(db)
	g.ApplyBasic(
		PortfolioItem{},
		Product{},
		Contact{},
		SiteSettings{},
	)
	g.Execute()

	fmt.Println("Model generation complete!")
	return nil
}
