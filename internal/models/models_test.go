package models

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestNewReview(t *testing.T) {
	tests := []struct {
		name      string
		addonSlug string
		author    string
		rating    int
		body      string
		wantErr   error
	}{
		{
			name:      "valid review",
			addonSlug: "adblock-plus",
			author:    "amo.testing",
			rating:    4,
			body:      "Works well",
		},
		{
			name:      "lowest rating",
			addonSlug: "adblock-plus",
			author:    "amo.testing",
			rating:    1,
			body:      "Meh",
		},
		{
			name:      "zero rating",
			addonSlug: "adblock-plus",
			author:    "amo.testing",
			rating:    0,
			body:      "Works well",
			wantErr:   ErrInvalidRating,
		},
		{
			name:      "rating above five",
			addonSlug: "adblock-plus",
			author:    "amo.testing",
			rating:    6,
			body:      "Works well",
			wantErr:   ErrInvalidRating,
		},
		{
			name:      "blank body",
			addonSlug: "adblock-plus",
			author:    "amo.testing",
			rating:    3,
			body:      "   ",
			wantErr:   ErrEmptyBody,
		},
		{
			name:      "missing author",
			addonSlug: "adblock-plus",
			rating:    3,
			body:      "Works well",
			wantErr:   ErrMissingAuthor,
		},
		{
			name:    "missing add-on",
			author:  "amo.testing",
			rating:  3,
			body:    "Works well",
			wantErr: ErrMissingAddon,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			review, err := NewReview(tt.addonSlug, tt.author, tt.rating, tt.body)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected error %v, got %v", tt.wantErr, err)
				}
				if review != nil {
					t.Error("expected nil review on error")
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if review.ID == "" {
				t.Error("review ID should not be empty")
			}
			if review.Body != strings.TrimSpace(tt.body) || review.Rating != tt.rating {
				t.Errorf("unexpected review: %+v", review)
			}
			if review.CreatedAt.IsZero() {
				t.Error("CreatedAt should be set")
			}
		})
	}
}

func TestReview_GetFormattedDate(t *testing.T) {
	review := &Review{CreatedAt: time.Date(2012, time.May, 4, 10, 0, 0, 0, time.UTC)}

	if got := review.GetFormattedDate(); got != "May 4, 2012" {
		t.Errorf("expected 'May 4, 2012', got %q", got)
	}
}

func TestAddon(t *testing.T) {
	free := &Addon{Name: "Firebug", Summary: "Web development tools", Rating: 5}
	paid := &Addon{Name: "Marble Run 12", Price: 299}

	if !free.IsFree() || paid.IsFree() {
		t.Error("IsFree mismatch")
	}
	if !free.IsRated() || paid.IsRated() {
		t.Error("IsRated mismatch")
	}
	if got := paid.GetFormattedPrice(); got != "$2.99" {
		t.Errorf("expected $2.99, got %s", got)
	}

	tests := []struct {
		term string
		want bool
	}{
		{"", true},
		{"fire", true},
		{"DEVELOPMENT", true},
		{"marble", false},
		{strings.Repeat("a", 255), false},
	}
	for _, tt := range tests {
		if got := free.Matches(tt.term); got != tt.want {
			t.Errorf("Matches(%q) = %v, want %v", tt.term, got, tt.want)
		}
	}
}

func TestAddonID_IsStable(t *testing.T) {
	if AddonID("firebug") != AddonID("firebug") {
		t.Error("expected the same ID for the same slug")
	}
	if AddonID("firebug") == AddonID("adblock-plus") {
		t.Error("expected different IDs for different slugs")
	}
}

func TestUser_Authenticate(t *testing.T) {
	user := &User{Email: "amo.testing@example.com", Password: "secret", Name: "amo.testing"}

	if err := user.Authenticate("amo.testing@example.com", "secret"); err != nil {
		t.Errorf("expected valid credentials, got %v", err)
	}
	if err := user.Authenticate("amo.testing@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
	if err := user.Authenticate("other@example.com", "secret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}
