package database

import (
	"database/sql"
	"fmt"
	"log"
)

// ReviewsSchema creates the reviews table and its indexes
const ReviewsSchema = `
CREATE TABLE IF NOT EXISTS reviews (
	id UUID PRIMARY KEY,
	addon_slug VARCHAR(255) NOT NULL,
	author VARCHAR(255) NOT NULL,
	rating SMALLINT NOT NULL CHECK (rating BETWEEN 1 AND 5),
	body TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_reviews_addon_slug ON reviews(addon_slug, created_at DESC);
`

// RunMigrations creates the necessary tables on db
func RunMigrations(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("database connection not initialized")
	}

	if _, err := db.Exec(ReviewsSchema); err != nil {
		return fmt.Errorf("failed to create reviews table: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}
