package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AddonKind is the listing an add-on belongs to
type AddonKind string

// Add-on kinds
const (
	KindExtension AddonKind = "extension"
	KindTheme     AddonKind = "theme"
	KindPersona   AddonKind = "persona"
)

// Addon is a marketplace listing
type Addon struct {
	ID              string
	Slug            string
	Name            string
	Kind            AddonKind
	Summary         string
	Description     string
	Author          string
	Version         string
	Category        string
	WeeklyDownloads int
	Users           int
	Rating          int
	Price           int64
	Featured        bool
	Incompatible    bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// AddonID derives a stable ID from a slug so restarts keep the same IDs
func AddonID(slug string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("addon:"+slug)).String()
}

// IsFree returns true if the add-on can be installed without purchase
func (a *Addon) IsFree() bool {
	return a.Price == 0
}

// IsRated returns true if the add-on has a star rating
func (a *Addon) IsRated() bool {
	return a.Rating > 0
}

// GetFormattedPrice returns the price in dollars, e.g. $2.99
func (a *Addon) GetFormattedPrice() string {
	return fmt.Sprintf("$%.2f", float64(a.Price)/100.0)
}

// Matches reports whether the add-on's name, summary or description contains
// term, ignoring case. An empty term matches everything.
func (a *Addon) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	for _, field := range []string{a.Name, a.Summary, a.Description} {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

// Category groups add-ons of one kind
type Category struct {
	ID   int
	Slug string
	Name string
	Kind AddonKind
}
