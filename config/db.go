package config

import (
	"context"
	"database/sql"
	"fmt"
	"membership/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// BootDB connects to Postgres, runs the bootstrap migration and returns the
// gorm session used by the entity repositories.
func BootDB(cfg *Config) (*gorm.DB, error) {
	if err := migrateEnums(cfg); err != nil {
		return nil, err
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	err = db.AutoMigrate(
		&domain.User{},
		&domain.Member{},
		&domain.Activity{},
		&domain.Checkin{},
		&domain.Volunteer{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// BootPgxPool opens the pgx pool used by the dashboard repository.
func BootPgxPool(ctx context.Context, cfg *Config) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, nil
}

// migrateEnums creates the Postgres enum types AutoMigrate cannot express.
func migrateEnums(cfg *Config) error {
	db, err := sql.Open("postgres", cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	query := `
	DO $$ BEGIN
		CREATE TYPE occupation AS ENUM ('student', 'unemployed', 'employee', 'entrepreneur');
	EXCEPTION
		WHEN duplicate_object THEN null;
	END $$;

	DO $$ BEGIN
		CREATE TYPE day_of_week AS ENUM ('tuesday', 'wednesday', 'thursday', 'friday', 'saturday');
	EXCEPTION
		WHEN duplicate_object THEN null;
	END $$;
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("failed to create enum types: %w", err)
	}

	return nil
}
