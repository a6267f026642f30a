package handlers

import (
	"html/template"
	"net/http"

	"github.com/Marlena/Addon-Tests/internal/models"
	"github.com/Marlena/Addon-Tests/internal/services"
)

// ListingPerPage is the number of add-ons on one page of a listing
const ListingPerPage = 20

// SortTab is one entry of a listing's sorter
type SortTab struct {
	Key      services.SortKey
	Label    string
	Selected bool
}

// ListingContent is rendered on the extensions listing
type ListingContent struct {
	Heading    string
	Category   *models.Category
	Tabs       []SortTab
	Categories []models.Category
	Listing    services.Listing
	Pagination Pagination
}

var extensionTabs = []SortTab{
	{Key: services.SortFeatured, Label: "Featured"},
	{Key: services.SortUsers, Label: "Most Users"},
	{Key: services.SortRating, Label: "Top Rated"},
	{Key: services.SortCreated, Label: "Newest"},
}

// selectTabs copies tabs marking the one for key
func selectTabs(tabs []SortTab, key services.SortKey) ([]SortTab, bool) {
	out := make([]SortTab, len(tabs))
	found := false
	for i, tab := range tabs {
		tab.Selected = tab.Key == key
		found = found || tab.Selected
		out[i] = tab
	}
	return out, found
}

// ExtensionsHandler renders the extension listing, optionally narrowed to a
// category
type ExtensionsHandler struct {
	template *template.Template
	site     *Site
	catalog  services.CatalogService
}

// NewExtensionsHandler creates a new ExtensionsHandler
func NewExtensionsHandler(templatesDir string, site *Site, catalog services.CatalogService) (*ExtensionsHandler, error) {
	tmpl, err := parsePage(templatesDir, "extensions.html")
	if err != nil {
		return nil, err
	}

	return &ExtensionsHandler{
		template: tmpl,
		site:     site,
		catalog:  catalog,
	}, nil
}

// ServeHTTP handles GET /{locale}/{app}/extensions/[{category}/]
func (h *ExtensionsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var category *models.Category
	if slug := r.PathValue("category"); slug != "" {
		c, err := h.catalog.Category(models.KindExtension, slug)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		category = c
	}

	key := services.ParseSortKey(r.URL.Query().Get("sort"), services.SortFeatured)
	tabs, ok := selectTabs(extensionTabs, key)
	if !ok {
		key = services.SortFeatured
		tabs, _ = selectTabs(extensionTabs, key)
	}

	opts := services.ListOptions{
		Kind:    models.KindExtension,
		Sort:    key,
		Page:    pageParam(r),
		PerPage: ListingPerPage,
	}
	heading, title := "Extensions", []string{"Extensions"}
	if category != nil {
		opts.Category = category.Slug
		heading, title = category.Name, []string{category.Name, "Extensions"}
	}
	listing := h.catalog.List(opts)

	content := ListingContent{
		Heading:    heading,
		Category:   category,
		Tabs:       tabs,
		Categories: h.catalog.Categories(models.KindExtension),
		Listing:    listing,
		Pagination: newPagination(r, listing.Page, listing.Pages, listing.Total, ListingPerPage),
	}

	data, ok := h.site.Layout(r, content, title...)
	if !ok {
		http.NotFound(w, r)
		return
	}
	render(w, h.template, data)
}
