package handlers

import (
	"html/template"
	"log"
	"net/http"

	"github.com/Marlena/Addon-Tests/internal/models"
	"github.com/Marlena/Addon-Tests/internal/services"
)

// RatingCount is one row of the grouped ratings table
type RatingCount struct {
	Stars int
	Count int
}

// DetailsContent is rendered on an add-on's details page
type DetailsContent struct {
	Addon        *models.Addon
	KindPath     string
	KindLabel    string
	Reviews      []*models.Review
	ReviewTotal  int
	RatingCounts []RatingCount
	Others       []*models.Addon
}

func kindListing(kind models.AddonKind) (path, label string) {
	switch kind {
	case models.KindTheme:
		return "themes", "Themes"
	case models.KindPersona:
		return "personas", "Personas"
	default:
		return "extensions", "Extensions"
	}
}

// DetailsHandler renders the details page of one add-on
type DetailsHandler struct {
	template *template.Template
	site     *Site
	catalog  services.CatalogService
	reviews  services.ReviewService
}

// NewDetailsHandler creates a new DetailsHandler
func NewDetailsHandler(templatesDir string, site *Site, catalog services.CatalogService, reviews services.ReviewService) (*DetailsHandler, error) {
	tmpl, err := parsePage(templatesDir, "details.html")
	if err != nil {
		return nil, err
	}

	return &DetailsHandler{
		template: tmpl,
		site:     site,
		catalog:  catalog,
		reviews:  reviews,
	}, nil
}

// ServeHTTP handles GET /{locale}/{app}/addon/{slug}/
func (h *DetailsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	addon, err := h.catalog.FindBySlug(r.PathValue("slug"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	latest, err := h.reviews.Latest(addon.Slug, 3)
	if err != nil {
		log.Printf("Error loading reviews for %s: %v", addon.Slug, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	counts, err := h.reviews.CountByRating(addon.Slug)
	if err != nil {
		log.Printf("Error counting reviews for %s: %v", addon.Slug, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	content := DetailsContent{
		Addon:   addon,
		Reviews: latest,
		Others:  h.catalog.OtherAddonsBy(addon, 6),
	}
	content.KindPath, content.KindLabel = kindListing(addon.Kind)
	for stars := 5; stars >= 1; stars-- {
		content.RatingCounts = append(content.RatingCounts, RatingCount{Stars: stars, Count: counts[stars]})
		content.ReviewTotal += counts[stars]
	}

	data, ok := h.site.Layout(r, content, addon.Name, content.KindLabel)
	if !ok {
		http.NotFound(w, r)
		return
	}
	render(w, h.template, data)
}
