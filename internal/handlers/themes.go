package handlers

import (
	"html/template"
	"net/http"

	"github.com/Marlena/Addon-Tests/internal/models"
	"github.com/Marlena/Addon-Tests/internal/services"
)

// ThemesContent is rendered on the theme listing
type ThemesContent struct {
	Heading       string
	Category      *models.Category
	Tabs          []SortTab
	Extras        []SortTab
	ExtrasLabel   string
	ExtraSelected bool
	Explore       []SortTab
	Categories    []models.Category
	ShowCreated   bool
	Listing       services.Listing
	Pagination    Pagination
}

var themeTabs = []SortTab{
	{Key: services.SortUsers, Label: "Most Users"},
	{Key: services.SortRating, Label: "Top Rated"},
	{Key: services.SortCreated, Label: "Newest"},
}

var themeExtras = []SortTab{
	{Key: services.SortName, Label: "Name"},
	{Key: services.SortHotness, Label: "Up & Coming"},
	{Key: services.SortPopular, Label: "Most Popular"},
	{Key: services.SortUpdated, Label: "Recently Updated"},
}

var themeExplore = []SortTab{
	{Key: services.SortFeatured, Label: "Featured"},
	{Key: services.SortUsers, Label: "Most Popular"},
	{Key: services.SortRating, Label: "Top Rated"},
}

// ThemesHandler renders the theme listing, optionally narrowed to a category
type ThemesHandler struct {
	template *template.Template
	site     *Site
	catalog  services.CatalogService
}

// NewThemesHandler creates a new ThemesHandler
func NewThemesHandler(templatesDir string, site *Site, catalog services.CatalogService) (*ThemesHandler, error) {
	tmpl, err := parsePage(templatesDir, "themes.html")
	if err != nil {
		return nil, err
	}

	return &ThemesHandler{
		template: tmpl,
		site:     site,
		catalog:  catalog,
	}, nil
}

// ServeHTTP handles GET /{locale}/{app}/themes/[{category}/]
func (h *ThemesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var category *models.Category
	if slug := r.PathValue("category"); slug != "" {
		c, err := h.catalog.Category(models.KindTheme, slug)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		category = c
	}

	key := services.ParseSortKey(r.URL.Query().Get("sort"), services.SortUsers)
	tabs, inTabs := selectTabs(themeTabs, key)
	extras, inExtras := selectTabs(themeExtras, key)
	explore, inExplore := selectTabs(themeExplore, key)
	if !inTabs && !inExtras && !inExplore {
		key = services.SortUsers
		tabs, _ = selectTabs(themeTabs, key)
		explore, _ = selectTabs(themeExplore, key)
	}

	extrasLabel := "More"
	for _, extra := range extras {
		if extra.Selected {
			extrasLabel = extra.Label
		}
	}

	opts := services.ListOptions{
		Kind:    models.KindTheme,
		Sort:    key,
		Page:    pageParam(r),
		PerPage: ListingPerPage,
	}
	heading, title := "Themes", []string{"Themes"}
	if category != nil {
		opts.Category = category.Slug
		heading, title = category.Name, []string{category.Name, "Themes"}
	}
	listing := h.catalog.List(opts)

	content := ThemesContent{
		Heading:       heading,
		Category:      category,
		Tabs:          tabs,
		Extras:        extras,
		ExtrasLabel:   extrasLabel,
		ExtraSelected: inExtras,
		Explore:       explore,
		Categories:    h.catalog.Categories(models.KindTheme),
		ShowCreated:   key == services.SortCreated,
		Listing:       listing,
		Pagination:    newPagination(r, listing.Page, listing.Pages, listing.Total, ListingPerPage),
	}

	data, ok := h.site.Layout(r, content, title...)
	if !ok {
		http.NotFound(w, r)
		return
	}
	render(w, h.template, data)
}
