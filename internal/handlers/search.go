package handlers

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/Marlena/Addon-Tests/internal/services"
)

// SearchContent is rendered on the search results page
type SearchContent struct {
	Query      string
	Listing    services.Listing
	Pagination Pagination
}

// SearchHandler renders search results across every kind of add-on
type SearchHandler struct {
	template *template.Template
	site     *Site
	catalog  services.CatalogService
}

// NewSearchHandler creates a new SearchHandler
func NewSearchHandler(templatesDir string, site *Site, catalog services.CatalogService) (*SearchHandler, error) {
	tmpl, err := parsePage(templatesDir, "search.html")
	if err != nil {
		return nil, err
	}

	return &SearchHandler{
		template: tmpl,
		site:     site,
		catalog:  catalog,
	}, nil
}

// ServeHTTP handles GET /{locale}/{app}/search/?q=
func (h *SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	listing := h.catalog.Search(query, pageParam(r), ListingPerPage)
	content := SearchContent{
		Query:      query,
		Listing:    listing,
		Pagination: newPagination(r, listing.Page, listing.Pages, listing.Total, ListingPerPage),
	}

	title := []string{"Search"}
	if query != "" {
		title = []string{query, "Search"}
	}
	data, ok := h.site.Layout(r, content, title...)
	if !ok {
		http.NotFound(w, r)
		return
	}
	render(w, h.template, data)
}
