package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Review is a user's rating and comment on an add-on
type Review struct {
	ID        string
	AddonSlug string
	Author    string
	Rating    int
	Body      string
	CreatedAt time.Time
}

// Domain errors
var (
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrEmptyBody      = errors.New("review body cannot be empty")
	ErrMissingAuthor  = errors.New("review author cannot be empty")
	ErrMissingAddon   = errors.New("review must belong to an add-on")
	ErrAddonNotFound  = errors.New("add-on not found")
	ErrReviewNotFound = errors.New("review not found")
)

// NewReview creates a new review with validation
func NewReview(addonSlug, author string, rating int, body string) (*Review, error) {
	body = strings.TrimSpace(body)
	if err := validateReviewInput(addonSlug, author, rating, body); err != nil {
		return nil, err
	}

	return &Review{
		ID:        uuid.New().String(),
		AddonSlug: addonSlug,
		Author:    author,
		Rating:    rating,
		Body:      body,
		CreatedAt: time.Now(),
	}, nil
}

// validateReviewInput validates review creation parameters
func validateReviewInput(addonSlug, author string, rating int, body string) error {
	if addonSlug == "" {
		return ErrMissingAddon
	}
	if author == "" {
		return ErrMissingAuthor
	}
	if rating < 1 || rating > 5 {
		return ErrInvalidRating
	}
	if body == "" {
		return ErrEmptyBody
	}
	return nil
}

// GetFormattedDate returns the posting date the way review bylines show it,
// e.g. May 4, 2012
func (r *Review) GetFormattedDate() string {
	return r.CreatedAt.Format("January 2, 2006")
}
