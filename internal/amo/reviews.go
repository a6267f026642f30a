package amo

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Marlena/Addon-Tests/internal/page"
)

var (
	reviewListLocator    = page.ByCSS("#reviews div.review")
	reviewStarsLocator   = page.ByCSS("h3 .stars")
	reviewAuthorLocator  = page.ByCSS("p.byline a.author")
	reviewDateLocator    = page.ByCSS("p.byline span.date")
	reviewTextLocator    = page.ByCSS("p.description")
	reviewBoxLocator     = page.ByID("review-box")
	reviewBodyLocator    = page.ByID("id_body")
	reviewRatingLocator  = page.ByCSS("#review-box .ratingwidget input[name='rating'][value='%d']")
	reviewSubmitLocator  = page.ByID("review-submit")
	reviewErrorLocator   = page.ByCSS(".errorlist li")
	reviewHeadingLocator = page.ByCSS("section.primary > h2")
	ratingPattern        = regexp.MustCompile(`Rated (\d) out of 5`)
)

// Positions in the review listing breadcrumbs
const (
	reviewAddonCrumb      = 2
	reviewsBreadcrumbSize = 4
)

// ReviewDateLayout is how review dates are printed, e.g. "March 5, 2012"
const ReviewDateLayout = "January 2, 2006"

// ViewReviews is the paginated review listing of an add-on
type ViewReviews struct {
	Base
}

// NewViewReviews wraps the review listing currently loaded in p's session
func NewViewReviews(p *page.Page, site string) *ViewReviews {
	v := &ViewReviews{}
	v.Base = newBase(p, site, v.expectedTitle)
	return v
}

// OpenViewReviews navigates to the review listing of the named add-on
func OpenViewReviews(p *page.Page, site, name string) (*ViewReviews, error) {
	v := NewViewReviews(p, site)
	if err := v.Navigate(fmt.Sprintf("%s/addon/%s/reviews/", v.site, slug(name))); err != nil {
		return nil, err
	}
	return v, nil
}

// expectedTitle reads "Reviews :: Name :: Kind" from the breadcrumbs
func (v *ViewReviews) expectedTitle() ([]string, error) {
	crumbs, err := v.Breadcrumbs()
	if err != nil {
		return nil, err
	}
	if len(crumbs) != reviewsBreadcrumbSize {
		return nil, fmt.Errorf("%w: review breadcrumbs", page.ErrNotFound)
	}
	return []string{"Reviews", crumbs[reviewAddonCrumb], crumbs[1]}, nil
}

// Reviews returns the reviews on the current page, newest first
func (v *ViewReviews) Reviews() ([]*Review, error) {
	return reviews(v.Page, reviewListLocator)
}

// ReviewCount returns the number of reviews on the current page
func (v *ViewReviews) ReviewCount() (int, error) {
	return v.Count(reviewListLocator)
}

// Breadcrumbs returns the breadcrumb trail
func (v *ViewReviews) Breadcrumbs() ([]string, error) {
	return v.Texts(breadcrumbsLocator)
}

// ClickAddonBreadcrumb goes back to the add-on details page
func (v *ViewReviews) ClickAddonBreadcrumb() (*Details, error) {
	if err := v.clickAndWait(breadcrumbLinkLocator.Format(reviewAddonCrumb + 1)); err != nil {
		return nil, err
	}
	return NewDetails(v.Page, v.site), nil
}

// Paginator returns the page navigation under the listing
func (v *ViewReviews) Paginator() *Paginator {
	return &Paginator{page: v.Page}
}

func reviews(p *page.Page, l page.Locator) ([]*Review, error) {
	regions, err := p.Regions(l)
	if err != nil {
		return nil, err
	}
	reviews := make([]*Review, 0, len(regions))
	for _, r := range regions {
		reviews = append(reviews, &Review{Page: r})
	}
	return reviews, nil
}

// Review is a single review
type Review struct {
	*page.Page
}

// Rating returns the stars given, 1 to 5
func (r *Review) Rating() (int, error) {
	ratings, err := r.Integers(ratingPattern, reviewStarsLocator)
	if err != nil {
		return 0, err
	}
	if len(ratings) == 0 {
		return 0, fmt.Errorf("%w: review rating", page.ErrNotFound)
	}
	return ratings[0], nil
}

// Author returns the reviewer's display name
func (r *Review) Author() (string, error) {
	return r.Text(reviewAuthorLocator)
}

// Date returns the review date as printed, see ReviewDateLayout
func (r *Review) Date() (string, error) {
	return r.Text(reviewDateLocator)
}

// ReviewText returns the review body
func (r *Review) ReviewText() (string, error) {
	return r.Text(reviewTextLocator)
}

// WriteReview is the review form of an add-on
type WriteReview struct {
	Base
}

// NewWriteReview wraps the review form currently loaded in p's session
func NewWriteReview(p *page.Page, site string) *WriteReview {
	w := &WriteReview{}
	w.Base = newBase(p, site, w.expectedTitle)
	return w
}

// expectedTitle reads the add-on name from "Write a review for Name"
func (w *WriteReview) expectedTitle() ([]string, error) {
	heading, err := w.Text(reviewHeadingLocator)
	if err != nil {
		return nil, err
	}
	name, ok := strings.CutPrefix(heading, "Write a review for ")
	if !ok {
		return nil, fmt.Errorf("unexpected review form heading %q", heading)
	}
	return []string{"Write a review", name}, nil
}

// IsReviewBoxVisible reports whether the review form is shown
func (w *WriteReview) IsReviewBoxVisible() (bool, error) {
	return w.IsVisible(reviewBoxLocator)
}

// EnterReviewWithText types body into the review field
func (w *WriteReview) EnterReviewWithText(body string) error {
	return w.Fill(reviewBodyLocator, body)
}

// SetReviewRating picks the star rating, 1 to 5
func (w *WriteReview) SetReviewRating(stars int) error {
	if stars < 1 || stars > 5 {
		return fmt.Errorf("rating must be between 1 and 5, got %d", stars)
	}
	return w.Click(reviewRatingLocator.Format(stars))
}

// ClickToSaveReview submits the form and lands on the review listing
func (w *WriteReview) ClickToSaveReview() (*ViewReviews, error) {
	if err := w.clickAndWait(reviewSubmitLocator); err != nil {
		return nil, err
	}
	return NewViewReviews(w.Page, w.site), nil
}

// ErrorText returns the validation message of a rejected review
func (w *WriteReview) ErrorText() (string, error) {
	return w.Text(reviewErrorLocator)
}
