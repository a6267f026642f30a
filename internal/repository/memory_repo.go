package repository

import (
	"sort"
	"sync"

	"github.com/Marlena/Addon-Tests/internal/models"
)

// MemoryReviewRepository keeps reviews in process. The fixture server uses it
// when no database is configured.
type MemoryReviewRepository struct {
	mu      sync.RWMutex
	reviews []*models.Review
}

// NewMemoryReviewRepository creates an empty in-memory review repository
func NewMemoryReviewRepository() *MemoryReviewRepository {
	return &MemoryReviewRepository{}
}

// CreateReview stores a copy of review
func (r *MemoryReviewRepository) CreateReview(review *models.Review) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *review
	r.reviews = append(r.reviews, &stored)
	return nil
}

// GetReview retrieves a review by ID
func (r *MemoryReviewRepository) GetReview(id string) (*models.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, review := range r.reviews {
		if review.ID == id {
			found := *review
			return &found, nil
		}
	}
	return nil, models.ErrReviewNotFound
}

// ListReviews returns up to limit reviews of an add-on, newest first
func (r *MemoryReviewRepository) ListReviews(addonSlug string, offset, limit int) ([]*models.Review, error) {
	matching := r.byAddon(addonSlug)
	sort.SliceStable(matching, func(i, j int) bool {
		return matching[i].CreatedAt.After(matching[j].CreatedAt)
	})

	if offset >= len(matching) {
		return []*models.Review{}, nil
	}
	end := offset + limit
	if end > len(matching) {
		end = len(matching)
	}
	return matching[offset:end], nil
}

// CountReviews returns the number of reviews of an add-on
func (r *MemoryReviewRepository) CountReviews(addonSlug string) (int, error) {
	return len(r.byAddon(addonSlug)), nil
}

// CountByRating returns the number of reviews of an add-on per star rating
func (r *MemoryReviewRepository) CountByRating(addonSlug string) (map[int]int, error) {
	counts := map[int]int{}
	for _, review := range r.byAddon(addonSlug) {
		counts[review.Rating]++
	}
	return counts, nil
}

// byAddon returns copies of the add-on's reviews in insertion order
func (r *MemoryReviewRepository) byAddon(addonSlug string) []*models.Review {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matching []*models.Review
	for _, review := range r.reviews {
		if review.AddonSlug == addonSlug {
			found := *review
			matching = append(matching, &found)
		}
	}
	return matching
}
