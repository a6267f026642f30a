package handlers

import (
	"html/template"
	"net/http"

	"github.com/Marlena/Addon-Tests/internal/models"
	"github.com/Marlena/Addon-Tests/internal/services"
)

// PersonasContent is rendered on the persona gallery
type PersonasContent struct {
	Category   *models.Category
	Featured   []*models.Addon
	Categories []models.Category
	Listing    services.Listing
}

// PersonasHandler renders the persona gallery
type PersonasHandler struct {
	template *template.Template
	site     *Site
	catalog  services.CatalogService
}

// NewPersonasHandler creates a new PersonasHandler
func NewPersonasHandler(templatesDir string, site *Site, catalog services.CatalogService) (*PersonasHandler, error) {
	tmpl, err := parsePage(templatesDir, "personas.html")
	if err != nil {
		return nil, err
	}

	return &PersonasHandler{
		template: tmpl,
		site:     site,
		catalog:  catalog,
	}, nil
}

// ServeHTTP handles GET /{locale}/{app}/personas/[{category}/]
func (h *PersonasHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	content := PersonasContent{
		Featured:   h.catalog.Featured(models.KindPersona, 6),
		Categories: h.catalog.Categories(models.KindPersona),
	}
	title := []string{"Personas"}
	opts := services.ListOptions{
		Kind:    models.KindPersona,
		Sort:    services.ParseSortKey(r.URL.Query().Get("sort"), services.SortUsers),
		Page:    pageParam(r),
		PerPage: ListingPerPage,
	}
	if slug := r.PathValue("category"); slug != "" {
		c, err := h.catalog.Category(models.KindPersona, slug)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		content.Category = c
		opts.Category = c.Slug
		title = []string{c.Name, "Personas"}
	}
	content.Listing = h.catalog.List(opts)

	data, ok := h.site.Layout(r, content, title...)
	if !ok {
		http.NotFound(w, r)
		return
	}
	render(w, h.template, data)
}
