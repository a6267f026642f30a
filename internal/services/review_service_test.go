package services

import (
	"errors"
	"testing"

	"github.com/Marlena/Addon-Tests/internal/models"
)

// MockReviewRepository is a mock implementation of ReviewRepository for testing
type MockReviewRepository struct {
	CreateReviewFunc  func(*models.Review) error
	GetReviewFunc     func(string) (*models.Review, error)
	ListReviewsFunc   func(string, int, int) ([]*models.Review, error)
	CountReviewsFunc  func(string) (int, error)
	CountByRatingFunc func(string) (map[int]int, error)
}

func (m *MockReviewRepository) CreateReview(review *models.Review) error {
	if m.CreateReviewFunc != nil {
		return m.CreateReviewFunc(review)
	}
	return nil
}

func (m *MockReviewRepository) GetReview(id string) (*models.Review, error) {
	if m.GetReviewFunc != nil {
		return m.GetReviewFunc(id)
	}
	return &models.Review{ID: id}, nil
}

func (m *MockReviewRepository) ListReviews(addonSlug string, offset, limit int) ([]*models.Review, error) {
	if m.ListReviewsFunc != nil {
		return m.ListReviewsFunc(addonSlug, offset, limit)
	}
	return []*models.Review{}, nil
}

func (m *MockReviewRepository) CountReviews(addonSlug string) (int, error) {
	if m.CountReviewsFunc != nil {
		return m.CountReviewsFunc(addonSlug)
	}
	return 0, nil
}

func (m *MockReviewRepository) CountByRating(addonSlug string) (map[int]int, error) {
	if m.CountByRatingFunc != nil {
		return m.CountByRatingFunc(addonSlug)
	}
	return map[int]int{}, nil
}

func TestReviewService_AddReview(t *testing.T) {
	tests := []struct {
		name      string
		addonSlug string
		rating    int
		body      string
		mockError error
		wantErr   error
	}{
		{
			name:      "successful review",
			addonSlug: "firebug",
			rating:    5,
			body:      "Indispensable",
		},
		{
			name:      "unknown add-on",
			addonSlug: "no-such-addon",
			rating:    5,
			body:      "Indispensable",
			wantErr:   models.ErrAddonNotFound,
		},
		{
			name:      "invalid rating",
			addonSlug: "firebug",
			rating:    0,
			body:      "Indispensable",
			wantErr:   models.ErrInvalidRating,
		},
		{
			name:      "repository error",
			addonSlug: "firebug",
			rating:    3,
			body:      "Indispensable",
			mockError: errors.New("database error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created := 0
			mockRepo := &MockReviewRepository{
				CreateReviewFunc: func(review *models.Review) error {
					if tt.mockError != nil {
						return tt.mockError
					}
					created++
					if review.Author != "amo.testing" || review.AddonSlug != tt.addonSlug {
						t.Errorf("unexpected review: %+v", review)
					}
					return nil
				},
			}
			service := NewReviewService(mockRepo, newSeededCatalog())

			review, err := service.AddReview(tt.addonSlug, "amo.testing", tt.rating, tt.body)

			switch {
			case tt.wantErr != nil:
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("expected %v, got %v", tt.wantErr, err)
				}
			case tt.mockError != nil:
				if !errors.Is(err, tt.mockError) {
					t.Errorf("expected wrapped repository error, got %v", err)
				}
			default:
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if created != 1 || review.Rating != tt.rating {
					t.Errorf("expected one stored review with rating %d", tt.rating)
				}
			}
		})
	}
}

func TestReviewService_ListReviews(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		page       int
		wantPage   int
		wantPages  int
		wantOffset int
		wantLimit  int
	}{
		{"first page", 45, 1, 1, 3, 0, 20},
		{"last page", 45, 3, 3, 3, 40, 5},
		{"beyond last page", 45, 9, 3, 3, 40, 5},
		{"before first page", 45, 0, 1, 3, 0, 20},
		{"no reviews", 0, 1, 1, 1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotOffset, gotLimit int
			mockRepo := &MockReviewRepository{
				CountReviewsFunc: func(string) (int, error) { return tt.total, nil },
				ListReviewsFunc: func(slug string, offset, limit int) ([]*models.Review, error) {
					gotOffset, gotLimit = offset, limit
					return []*models.Review{}, nil
				},
			}
			service := NewReviewService(mockRepo, newSeededCatalog())

			page, err := service.ListReviews("adblock-plus", tt.page)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if page.Page != tt.wantPage || page.Pages != tt.wantPages || page.Total != tt.total {
				t.Errorf("got page %d/%d of %d, want %d/%d", page.Page, page.Pages, page.Total, tt.wantPage, tt.wantPages)
			}
			if gotOffset != tt.wantOffset || gotLimit != tt.wantLimit {
				t.Errorf("queried offset %d limit %d, want %d/%d", gotOffset, gotLimit, tt.wantOffset, tt.wantLimit)
			}
		})
	}
}

func TestReviewService_ListReviews_RepositoryError(t *testing.T) {
	mockRepo := &MockReviewRepository{
		CountReviewsFunc: func(string) (int, error) { return 0, errors.New("database error") },
	}
	service := NewReviewService(mockRepo, newSeededCatalog())

	if _, err := service.ListReviews("firebug", 1); err == nil {
		t.Error("expected error")
	}
}

func TestReviewService_SeedReviews(t *testing.T) {
	// GIVEN firebug already has reviews and roundball has none
	stored := map[string]int{"firebug": 2}
	mockRepo := &MockReviewRepository{
		CountReviewsFunc: func(slug string) (int, error) { return stored[slug], nil },
		CreateReviewFunc: func(review *models.Review) error {
			stored[review.AddonSlug]++
			return nil
		},
	}
	service := NewReviewService(mockRepo, newSeededCatalog())

	// WHEN
	err := service.SeedReviews(map[string]int{"firebug": 8, "roundball": 5})

	// THEN
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored["firebug"] != 2 {
		t.Errorf("expected existing reviews to be left alone, got %d", stored["firebug"])
	}
	if stored["roundball"] != 5 {
		t.Errorf("expected 5 seeded reviews, got %d", stored["roundball"])
	}
}
