package services

import (
	"sort"
	"strings"

	"github.com/Marlena/Addon-Tests/internal/models"
)

// SortKey orders a listing
type SortKey string

// Listing sort orders
const (
	SortFeatured SortKey = "featured"
	SortUsers    SortKey = "users"
	SortRating   SortKey = "rating"
	SortCreated  SortKey = "created"
	SortUpdated  SortKey = "updated"
	SortName     SortKey = "name"
	SortPopular  SortKey = "popular"
	SortHotness  SortKey = "hotness"
)

// ParseSortKey returns the sort key named by s, or fallback when s names none
func ParseSortKey(s string, fallback SortKey) SortKey {
	switch key := SortKey(strings.ToLower(s)); key {
	case SortFeatured, SortUsers, SortRating, SortCreated, SortUpdated, SortName, SortPopular, SortHotness:
		return key
	default:
		return fallback
	}
}

// sortAddons orders addons in place. Ties keep catalog order.
func sortAddons(addons []*models.Addon, key SortKey) {
	var less func(a, b *models.Addon) bool
	switch key {
	case SortFeatured:
		less = func(a, b *models.Addon) bool {
			if a.Featured != b.Featured {
				return a.Featured
			}
			return a.Users > b.Users
		}
	case SortRating:
		less = func(a, b *models.Addon) bool { return a.Rating > b.Rating }
	case SortCreated:
		less = func(a, b *models.Addon) bool { return a.CreatedAt.After(b.CreatedAt) }
	case SortUpdated:
		less = func(a, b *models.Addon) bool { return a.UpdatedAt.After(b.UpdatedAt) }
	case SortName:
		less = func(a, b *models.Addon) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
	case SortPopular:
		less = func(a, b *models.Addon) bool { return a.WeeklyDownloads > b.WeeklyDownloads }
	case SortHotness:
		less = func(a, b *models.Addon) bool { return hotness(a) > hotness(b) }
	default:
		less = func(a, b *models.Addon) bool { return a.Users > b.Users }
	}
	sort.SliceStable(addons, func(i, j int) bool { return less(addons[i], addons[j]) })
}

// hotness is weekly downloads relative to the installed base
func hotness(a *models.Addon) float64 {
	if a.Users == 0 {
		return float64(a.WeeklyDownloads)
	}
	return float64(a.WeeklyDownloads) / float64(a.Users)
}

// paginate clamps page into range and returns the slice bounds for it
func paginate(total, page, perPage int) (clamped, pages, start, end int) {
	if perPage <= 0 {
		perPage = total
		if perPage == 0 {
			perPage = 1
		}
	}
	pages = (total + perPage - 1) / perPage
	if pages == 0 {
		pages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}
	start = (page - 1) * perPage
	end = start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	return page, pages, start, end
}
