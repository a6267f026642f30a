package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Marlena/Addon-Tests/internal/config"
	_ "github.com/lib/pq"
)

// DB is the review store connection used by the fixture server
var DB *sql.DB

// Connect establishes a connection to the PostgreSQL database
func Connect(pgConfig *config.PostgresConfig) error {
	db, err := sql.Open("postgres", pgConfig.ConnectionString())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	// Verify connection
	if err = db.Ping(); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	DB = db
	return nil
}

// Close closes the database connection
func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}
