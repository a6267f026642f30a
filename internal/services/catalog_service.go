package services

import (
	"fmt"
	"strings"

	"github.com/Marlena/Addon-Tests/internal/models"
)

// ListOptions selects one page of a listing
type ListOptions struct {
	Kind     models.AddonKind
	Category string
	Sort     SortKey
	Page     int
	PerPage  int
}

// Listing is one page of add-ons
type Listing struct {
	Addons []*models.Addon
	Sort   SortKey
	Page   int
	Pages  int
	Total  int
}

// CatalogService answers read-only questions about the marketplace catalog
type CatalogService interface {
	List(opts ListOptions) Listing
	Search(term string, page, perPage int) Listing
	FindBySlug(slug string) (*models.Addon, error)
	Featured(kind models.AddonKind, n int) []*models.Addon
	Top(kind models.AddonKind, key SortKey, n int) []*models.Addon
	OtherAddonsBy(addon *models.Addon, n int) []*models.Addon
	Categories(kind models.AddonKind) []models.Category
	Category(kind models.AddonKind, slug string) (*models.Category, error)
	Collections(featuredOnly bool) []models.Collection
	TotalDownloads() int
}

// CatalogServiceImpl implements CatalogService over an in-memory catalog
type CatalogServiceImpl struct {
	addons      []*models.Addon
	categories  []models.Category
	collections []models.Collection
}

// NewCatalogService creates a catalog service over the given data
func NewCatalogService(catalog Catalog) CatalogService {
	return &CatalogServiceImpl{
		addons:      catalog.Addons,
		categories:  catalog.Categories,
		collections: catalog.Collections,
	}
}

// List returns one page of add-ons of a kind, optionally within a category
func (s *CatalogServiceImpl) List(opts ListOptions) Listing {
	var matching []*models.Addon
	for _, a := range s.addons {
		if a.Kind != opts.Kind {
			continue
		}
		if opts.Category != "" && a.Category != opts.Category {
			continue
		}
		matching = append(matching, a)
	}
	return s.page(matching, opts.Sort, opts.Page, opts.PerPage)
}

// Search returns add-ons of any kind matching term. Add-ons whose name
// contains the term come first; each group is ordered by users.
func (s *CatalogServiceImpl) Search(term string, page, perPage int) Listing {
	var byName, byText []*models.Addon
	needle := strings.ToLower(strings.TrimSpace(term))
	for _, a := range s.addons {
		switch {
		case !a.Matches(term):
		case needle != "" && strings.Contains(strings.ToLower(a.Name), needle):
			byName = append(byName, a)
		default:
			byText = append(byText, a)
		}
	}
	sortAddons(byName, SortUsers)
	sortAddons(byText, SortUsers)
	matching := append(byName, byText...)

	page, pages, start, end := paginate(len(matching), page, perPage)
	return Listing{
		Addons: matching[start:end],
		Sort:   SortUsers,
		Page:   page,
		Pages:  pages,
		Total:  len(matching),
	}
}

func (s *CatalogServiceImpl) page(addons []*models.Addon, key SortKey, page, perPage int) Listing {
	sorted := make([]*models.Addon, len(addons))
	copy(sorted, addons)
	sortAddons(sorted, key)

	page, pages, start, end := paginate(len(sorted), page, perPage)
	return Listing{
		Addons: sorted[start:end],
		Sort:   key,
		Page:   page,
		Pages:  pages,
		Total:  len(sorted),
	}
}

// FindBySlug returns the add-on with the given slug
func (s *CatalogServiceImpl) FindBySlug(slug string) (*models.Addon, error) {
	for _, a := range s.addons {
		if a.Slug == slug {
			return a, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", models.ErrAddonNotFound, slug)
}

// Featured returns up to n featured add-ons of a kind
func (s *CatalogServiceImpl) Featured(kind models.AddonKind, n int) []*models.Addon {
	var featured []*models.Addon
	for _, a := range s.addons {
		if a.Kind == kind && a.Featured {
			featured = append(featured, a)
		}
	}
	return limit(featured, n)
}

// Top returns the first n add-ons of a kind in key order
func (s *CatalogServiceImpl) Top(kind models.AddonKind, key SortKey, n int) []*models.Addon {
	return limit(s.List(ListOptions{Kind: kind, Sort: key}).Addons, n)
}

// OtherAddonsBy returns up to n other add-ons by the same author
func (s *CatalogServiceImpl) OtherAddonsBy(addon *models.Addon, n int) []*models.Addon {
	var others []*models.Addon
	for _, a := range s.addons {
		if a.Author == addon.Author && a.Slug != addon.Slug {
			others = append(others, a)
		}
	}
	return limit(others, n)
}

// Categories returns the categories of a kind in display order
func (s *CatalogServiceImpl) Categories(kind models.AddonKind) []models.Category {
	var categories []models.Category
	for _, c := range s.categories {
		if c.Kind == kind {
			categories = append(categories, c)
		}
	}
	return categories
}

// Category returns the category of a kind with the given slug
func (s *CatalogServiceImpl) Category(kind models.AddonKind, slug string) (*models.Category, error) {
	for _, c := range s.categories {
		if c.Kind == kind && c.Slug == slug {
			found := c
			return &found, nil
		}
	}
	return nil, fmt.Errorf("category %q not found", slug)
}

// Collections returns the catalog's collections in display order
func (s *CatalogServiceImpl) Collections(featuredOnly bool) []models.Collection {
	var collections []models.Collection
	for _, c := range s.collections {
		if featuredOnly && !c.Featured {
			continue
		}
		collections = append(collections, c)
	}
	return collections
}

// TotalDownloads sums weekly downloads across the catalog
func (s *CatalogServiceImpl) TotalDownloads() int {
	total := 0
	for _, a := range s.addons {
		total += a.WeeklyDownloads
	}
	return total
}

func limit(addons []*models.Addon, n int) []*models.Addon {
	if n >= 0 && len(addons) > n {
		return addons[:n]
	}
	return addons
}
