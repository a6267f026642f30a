package handlers

import (
	"html/template"
	"net/http"

	"github.com/Marlena/Addon-Tests/internal/models"
	"github.com/Marlena/Addon-Tests/internal/services"
)

// HomeContent is rendered on the application's landing page
type HomeContent struct {
	FeaturedExtensions  []*models.Addon
	FeaturedPersonas    []*models.Addon
	FeaturedCollections []models.Collection
	Popular             []*models.Addon
}

// HomeHandler renders the landing page of an application
type HomeHandler struct {
	template *template.Template
	site     *Site
	catalog  services.CatalogService
}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler(templatesDir string, site *Site, catalog services.CatalogService) (*HomeHandler, error) {
	tmpl, err := parsePage(templatesDir, "home.html")
	if err != nil {
		return nil, err
	}

	return &HomeHandler{
		template: tmpl,
		site:     site,
		catalog:  catalog,
	}, nil
}

// ServeHTTP handles GET /{locale}/{app}/
func (h *HomeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	content := HomeContent{
		FeaturedExtensions:  h.catalog.Featured(models.KindExtension, 6),
		FeaturedPersonas:    h.catalog.Featured(models.KindPersona, 6),
		FeaturedCollections: h.catalog.Collections(true),
		Popular:             h.catalog.Top(models.KindExtension, services.SortUsers, 10),
	}

	data, ok := h.site.Layout(r, content)
	if !ok {
		http.NotFound(w, r)
		return
	}
	render(w, h.template, data)
}
