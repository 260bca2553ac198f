package database

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/starwars-blog/catalogapi/config"
	"github.com/starwars-blog/catalogapi/logging"
	"github.com/starwars-blog/catalogapi/models"
)

// Dialector picks the store for cfg: PostgreSQL when DATABASE_URL is set,
// otherwise a SQLite file at DatabasePath.
func Dialector(cfg config.Config) (gorm.Dialector, string, error) {
	if cfg.UsesPostgres() {
		return postgres.Open(cfg.DatabaseURL), "postgres", nil
	}

	if dir := filepath.Dir(cfg.DatabasePath); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, "", fmt.Errorf("failed to create database directory %s: %w", dir, err)
		}
	}
	return sqlite.Open(sqliteDSN(cfg.DatabasePath)), "sqlite", nil
}

// sqliteDSN enables foreign keys and a busy timeout so concurrent writers
// wait instead of failing with SQLITE_BUSY.
func sqliteDSN(path string) string {
	return fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000&_journal_mode=WAL", path)
}

// InitGormDB opens the store described by cfg and tunes its connection pool.
func InitGormDB(cfg config.Config, log zerolog.Logger) (*gorm.DB, error) {
	dialector, kind, err := Dialector(cfg)
	if err != nil {
		return nil, err
	}
	return Open(dialector, cfg, log, kind)
}

// Open connects through an explicit dialector. Tests use it with in-memory SQLite.
func Open(dialector gorm.Dialector, cfg config.Config, log zerolog.Logger, kind string) (*gorm.DB, error) {
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logging.Gorm(log),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database using GORM: %w", kind, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB from GORM: %w", err)
	}

	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Info().Str("driver", kind).Msg("database initialized")
	return db, nil
}

// AutoMigrateModels creates or updates every table, index and foreign key.
func AutoMigrateModels(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Person{},
		&models.Planet{},
		&models.FavouritePlanet{},
		&models.FavouritePeople{},
	)
	if err != nil {
		return fmt.Errorf("GORM AutoMigrate failed: %w", err)
	}
	return nil
}

// Ping checks that the store answers within ctx.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB from GORM: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// Close releases the connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
