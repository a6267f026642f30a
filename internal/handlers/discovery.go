package handlers

import (
	"html/template"
	"net/http"

	"github.com/Marlena/Addon-Tests/internal/models"
	"github.com/Marlena/Addon-Tests/internal/services"
)

// DiscoveryContent is rendered on the discovery pane
type DiscoveryContent struct {
	Downloads   int
	Promos      []string
	Personas    []*models.Addon
	UpAndComing []*models.Addon
}

var discoveryPromos = []string{
	"Get started with add-ons",
	"Stay social with add-ons",
	"Take a closer look at your privacy",
	"Pick a look for your browser",
}

// DiscoveryHandler renders the discovery pane shown inside the browser's
// add-ons manager
type DiscoveryHandler struct {
	template *template.Template
	site     *Site
	catalog  services.CatalogService
}

// NewDiscoveryHandler creates a new DiscoveryHandler
func NewDiscoveryHandler(templatesDir string, site *Site, catalog services.CatalogService) (*DiscoveryHandler, error) {
	tmpl, err := parsePage(templatesDir, "discovery.html")
	if err != nil {
		return nil, err
	}

	return &DiscoveryHandler{
		template: tmpl,
		site:     site,
		catalog:  catalog,
	}, nil
}

// ServeHTTP handles GET /{locale}/{app}/discovery/ and the pane paths below it
func (h *DiscoveryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	content := DiscoveryContent{
		Downloads:   h.catalog.TotalDownloads(),
		Promos:      discoveryPromos,
		Personas:    h.catalog.Featured(models.KindPersona, 6),
		UpAndComing: h.catalog.Top(models.KindExtension, services.SortHotness, 5),
	}

	data, ok := h.site.Layout(r, content, "Discover")
	if !ok {
		http.NotFound(w, r)
		return
	}
	render(w, h.template, data)
}
