package handlers

import (
	"errors"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Marlena/Addon-Tests/internal/models"
	"github.com/Marlena/Addon-Tests/internal/services"
)

// ReviewsContent is rendered on an add-on's reviews page
type ReviewsContent struct {
	Addon      *models.Addon
	KindPath   string
	KindLabel  string
	Reviews    []*models.Review
	Pagination Pagination
}

// ReviewsHandler renders one page of an add-on's reviews
type ReviewsHandler struct {
	template *template.Template
	site     *Site
	catalog  services.CatalogService
	reviews  services.ReviewService
}

// NewReviewsHandler creates a new ReviewsHandler
func NewReviewsHandler(templatesDir string, site *Site, catalog services.CatalogService, reviews services.ReviewService) (*ReviewsHandler, error) {
	tmpl, err := parsePage(templatesDir, "reviews.html")
	if err != nil {
		return nil, err
	}

	return &ReviewsHandler{
		template: tmpl,
		site:     site,
		catalog:  catalog,
		reviews:  reviews,
	}, nil
}

// ServeHTTP handles GET /{locale}/{app}/addon/{slug}/reviews/
func (h *ReviewsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	addon, err := h.catalog.FindBySlug(r.PathValue("slug"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	page, err := h.reviews.ListReviews(addon.Slug, pageParam(r))
	if err != nil {
		log.Printf("Error listing reviews for %s: %v", addon.Slug, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	content := ReviewsContent{
		Addon:      addon,
		Reviews:    page.Reviews,
		Pagination: newPagination(r, page.Page, page.Pages, page.Total, services.ReviewsPerPage),
	}
	content.KindPath, content.KindLabel = kindListing(addon.Kind)

	data, ok := h.site.Layout(r, content, "Reviews", addon.Name, content.KindLabel)
	if !ok {
		http.NotFound(w, r)
		return
	}
	render(w, h.template, data)
}

// AddReviewContent is rendered on the write-a-review form
type AddReviewContent struct {
	Addon *models.Addon
	Stars []int
	Body  string
	Error string
}

// AddReviewHandler shows the review form and saves submitted reviews. Only
// logged-in users may review; anonymous requests are sent to the login page.
type AddReviewHandler struct {
	template *template.Template
	site     *Site
	catalog  services.CatalogService
	reviews  services.ReviewService
}

// NewAddReviewHandler creates a new AddReviewHandler
func NewAddReviewHandler(templatesDir string, site *Site, catalog services.CatalogService, reviews services.ReviewService) (*AddReviewHandler, error) {
	tmpl, err := parsePage(templatesDir, "add_review.html")
	if err != nil {
		return nil, err
	}

	return &AddReviewHandler{
		template: tmpl,
		site:     site,
		catalog:  catalog,
		reviews:  reviews,
	}, nil
}

// ServeHTTP handles GET and POST /{locale}/{app}/addon/{slug}/reviews/add
func (h *AddReviewHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	addon, err := h.catalog.FindBySlug(r.PathValue("slug"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	prefix := "/" + r.PathValue("locale") + "/" + r.PathValue("app")
	user := h.site.CurrentUser(r)
	if user == nil {
		login := prefix + "/users/login?to=" + url.QueryEscape(r.URL.RequestURI())
		http.Redirect(w, r, login, http.StatusSeeOther)
		return
	}

	status := http.StatusOK
	content := AddReviewContent{
		Addon: addon,
		Stars: []int{1, 2, 3, 4, 5},
	}

	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}
		rating, _ := strconv.Atoi(r.PostForm.Get("rating"))
		body := r.PostForm.Get("body")

		review, err := h.reviews.AddReview(addon.Slug, user.Name, rating, body)
		switch {
		case err == nil:
			log.Printf("Review %s added to %s by %s", review.ID, addon.Slug, user.Name)
			http.Redirect(w, r, prefix+"/addon/"+addon.Slug+"/reviews/", http.StatusSeeOther)
			return
		case errors.Is(err, models.ErrInvalidRating):
			content.Error = "Please choose a rating between 1 and 5 stars."
		case errors.Is(err, models.ErrEmptyBody):
			content.Error = "Please write a review."
		default:
			log.Printf("Error adding review to %s: %v", addon.Slug, err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		content.Body = body
		status = http.StatusUnprocessableEntity
	}

	data, ok := h.site.Layout(r, content, "Write a review", addon.Name)
	if !ok {
		http.NotFound(w, r)
		return
	}
	renderStatus(w, h.template, data, status)
}
