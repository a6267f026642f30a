package handlers

import (
	"html/template"
	"net/http"
	"net/url"
	"sort"

	"github.com/Marlena/Addon-Tests/internal/models"
	"github.com/Marlena/Addon-Tests/internal/services"
)

// CollectionsContent is rendered on the collection directory
type CollectionsContent struct {
	Heading     string
	Collections []models.Collection
}

// CollectionsHandler renders the collection directory
type CollectionsHandler struct {
	template *template.Template
	site     *Site
	catalog  services.CatalogService
}

// NewCollectionsHandler creates a new CollectionsHandler
func NewCollectionsHandler(templatesDir string, site *Site, catalog services.CatalogService) (*CollectionsHandler, error) {
	tmpl, err := parsePage(templatesDir, "collections.html")
	if err != nil {
		return nil, err
	}

	return &CollectionsHandler{
		template: tmpl,
		site:     site,
		catalog:  catalog,
	}, nil
}

// ServeHTTP handles GET /{locale}/{app}/collections/?sort=
func (h *CollectionsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var content CollectionsContent
	switch r.URL.Query().Get("sort") {
	case "followers":
		content.Heading = "Most Followers"
		content.Collections = h.catalog.Collections(false)
		sort.SliceStable(content.Collections, func(i, j int) bool {
			return content.Collections[i].Followers > content.Collections[j].Followers
		})
	case "created":
		content.Heading = "Newest"
		all := h.catalog.Collections(false)
		for i := len(all) - 1; i >= 0; i-- {
			content.Collections = append(content.Collections, all[i])
		}
	case "mine", "following", "favorites":
		if h.site.CurrentUser(r) == nil {
			prefix := "/" + r.PathValue("locale") + "/" + r.PathValue("app")
			http.Redirect(w, r, prefix+"/users/login?to="+url.QueryEscape(r.URL.RequestURI()), http.StatusSeeOther)
			return
		}
		content.Heading = "My Collections"
	default:
		content.Heading = "Featured"
		content.Collections = h.catalog.Collections(true)
	}

	data, ok := h.site.Layout(r, content, content.Heading+" Collections")
	if !ok {
		http.NotFound(w, r)
		return
	}
	render(w, h.template, data)
}
