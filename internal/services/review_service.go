package services

import (
	"fmt"
	"log"
	"time"

	"github.com/Marlena/Addon-Tests/internal/models"
)

// ReviewsPerPage is the number of reviews on one page of an add-on's reviews
const ReviewsPerPage = 20

// ReviewRepository defines the interface for review persistence
type ReviewRepository interface {
	CreateReview(review *models.Review) error
	GetReview(id string) (*models.Review, error)
	ListReviews(addonSlug string, offset, limit int) ([]*models.Review, error)
	CountReviews(addonSlug string) (int, error)
	CountByRating(addonSlug string) (map[int]int, error)
}

// ReviewPage is one page of an add-on's reviews, newest first
type ReviewPage struct {
	Reviews []*models.Review
	Page    int
	Pages   int
	Total   int
}

// ReviewService handles review business logic
type ReviewService interface {
	AddReview(addonSlug, author string, rating int, body string) (*models.Review, error)
	ListReviews(addonSlug string, page int) (ReviewPage, error)
	Latest(addonSlug string, n int) ([]*models.Review, error)
	CountByRating(addonSlug string) (map[int]int, error)
}

// ReviewServiceImpl implements ReviewService
type ReviewServiceImpl struct {
	reviewRepo ReviewRepository
	catalog    CatalogService
}

// NewReviewService creates a new review service
func NewReviewService(reviewRepo ReviewRepository, catalog CatalogService) *ReviewServiceImpl {
	return &ReviewServiceImpl{
		reviewRepo: reviewRepo,
		catalog:    catalog,
	}
}

// AddReview validates and stores a review of an existing add-on
func (s *ReviewServiceImpl) AddReview(addonSlug, author string, rating int, body string) (*models.Review, error) {
	if _, err := s.catalog.FindBySlug(addonSlug); err != nil {
		return nil, err
	}

	review, err := models.NewReview(addonSlug, author, rating, body)
	if err != nil {
		return nil, fmt.Errorf("invalid review: %w", err)
	}

	if err := s.reviewRepo.CreateReview(review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	return review, nil
}

// ListReviews returns one page of an add-on's reviews. Pages outside the
// range are clamped to the first or last page.
func (s *ReviewServiceImpl) ListReviews(addonSlug string, page int) (ReviewPage, error) {
	total, err := s.reviewRepo.CountReviews(addonSlug)
	if err != nil {
		return ReviewPage{}, fmt.Errorf("failed to count reviews: %w", err)
	}

	page, pages, start, end := paginate(total, page, ReviewsPerPage)
	reviews, err := s.reviewRepo.ListReviews(addonSlug, start, end-start)
	if err != nil {
		return ReviewPage{}, fmt.Errorf("failed to list reviews: %w", err)
	}

	return ReviewPage{
		Reviews: reviews,
		Page:    page,
		Pages:   pages,
		Total:   total,
	}, nil
}

// Latest returns the n newest reviews of an add-on
func (s *ReviewServiceImpl) Latest(addonSlug string, n int) ([]*models.Review, error) {
	reviews, err := s.reviewRepo.ListReviews(addonSlug, 0, n)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}

// CountByRating returns the number of reviews per star rating
func (s *ReviewServiceImpl) CountByRating(addonSlug string) (map[int]int, error) {
	counts, err := s.reviewRepo.CountByRating(addonSlug)
	if err != nil {
		return nil, fmt.Errorf("failed to count ratings: %w", err)
	}
	return counts, nil
}

var seedAuthors = []string{"fox.fan", "webdev42", "privacy.first", "kat", "tabhoarder"}

var seedBodies = []string{
	"Does exactly what it says and never gets in the way.",
	"Great add-on, I install it on every machine.",
	"Works well but the options could be easier to find.",
	"Stopped working after the last update, fixed a week later.",
	"Essential. Thank you for maintaining this.",
}

// SeedReviews gives each add-on in counts that many reviews, skipping add-ons
// that already have some. Seeded reviews are dated a day apart, all before
// any review written during a run.
func (s *ReviewServiceImpl) SeedReviews(counts map[string]int) error {
	base := time.Date(2012, time.May, 4, 12, 0, 0, 0, time.UTC)

	for slug, n := range counts {
		existing, err := s.reviewRepo.CountReviews(slug)
		if err != nil {
			return fmt.Errorf("failed to count reviews for %s: %w", slug, err)
		}
		if existing > 0 {
			continue
		}

		for i := 0; i < n; i++ {
			review, err := models.NewReview(slug, seedAuthors[i%len(seedAuthors)], 1+(i*2)%5, seedBodies[i%len(seedBodies)])
			if err != nil {
				return fmt.Errorf("invalid seed review: %w", err)
			}
			review.CreatedAt = base.AddDate(0, 0, -i)
			if err := s.reviewRepo.CreateReview(review); err != nil {
				return fmt.Errorf("failed to seed review for %s: %w", slug, err)
			}
		}
		log.Printf("Seeded %d reviews for %s", n, slug)
	}

	return nil
}

// DefaultReviewSeeds is the number of reviews the fixture server starts with
var DefaultReviewSeeds = map[string]int{
	"adblock-plus":       45,
	"firebug":            8,
	"roundball":          5,
	"marble-run-12":      3,
	"walnut-for-firefox": 2,
}
