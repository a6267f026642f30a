package repository

import (
	"database/sql"
	"fmt"

	"github.com/Marlena/Addon-Tests/internal/database"
	"github.com/Marlena/Addon-Tests/internal/models"
)

// ReviewRepository handles database operations for reviews
type ReviewRepository struct {
	db *sql.DB
}

// NewReviewRepository creates a review repository on the shared connection
func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{
		db: database.DB,
	}
}

// NewReviewRepositoryWithDB creates a new review repository with a specific database connection
func NewReviewRepositoryWithDB(db *sql.DB) *ReviewRepository {
	return &ReviewRepository{
		db: db,
	}
}

// CreateReview inserts a review
func (r *ReviewRepository) CreateReview(review *models.Review) error {
	query := `
		INSERT INTO reviews (id, addon_slug, author, rating, body, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(query,
		review.ID,
		review.AddonSlug,
		review.Author,
		review.Rating,
		review.Body,
		review.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}

// GetReview retrieves a review by ID
func (r *ReviewRepository) GetReview(id string) (*models.Review, error) {
	query := `
		SELECT id, addon_slug, author, rating, body, created_at
		FROM reviews
		WHERE id = $1
	`

	review := &models.Review{}
	err := r.db.QueryRow(query, id).Scan(
		&review.ID,
		&review.AddonSlug,
		&review.Author,
		&review.Rating,
		&review.Body,
		&review.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, models.ErrReviewNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get review: %w", err)
	}

	return review, nil
}

// ListReviews returns up to limit reviews of an add-on, newest first
func (r *ReviewRepository) ListReviews(addonSlug string, offset, limit int) ([]*models.Review, error) {
	query := `
		SELECT id, addon_slug, author, rating, body, created_at
		FROM reviews
		WHERE addon_slug = $1
		ORDER BY created_at DESC, id
		OFFSET $2 LIMIT $3
	`

	rows, err := r.db.Query(query, addonSlug, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	reviews := []*models.Review{}
	for rows.Next() {
		review := &models.Review{}
		if err := rows.Scan(
			&review.ID,
			&review.AddonSlug,
			&review.Author,
			&review.Rating,
			&review.Body,
			&review.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	return reviews, nil
}

// CountReviews returns the number of reviews of an add-on
func (r *ReviewRepository) CountReviews(addonSlug string) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM reviews WHERE addon_slug = $1`, addonSlug).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count reviews: %w", err)
	}
	return count, nil
}

// CountByRating returns the number of reviews of an add-on per star rating
func (r *ReviewRepository) CountByRating(addonSlug string) (map[int]int, error) {
	query := `
		SELECT rating, COUNT(*)
		FROM reviews
		WHERE addon_slug = $1
		GROUP BY rating
	`

	rows, err := r.db.Query(query, addonSlug)
	if err != nil {
		return nil, fmt.Errorf("failed to count ratings: %w", err)
	}
	defer rows.Close()

	counts := map[int]int{}
	for rows.Next() {
		var rating, count int
		if err := rows.Scan(&rating, &count); err != nil {
			return nil, fmt.Errorf("failed to scan rating count: %w", err)
		}
		counts[rating] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to count ratings: %w", err)
	}

	return counts, nil
}
