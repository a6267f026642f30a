package amo

import (
	"fmt"
	"regexp"

	"github.com/Marlena/Addon-Tests/internal/page"
)

var (
	addonTitleLocator           = page.ByCSS("h1.addon")
	addonSummaryLocator         = page.ByID("addon-summary")
	aboutAddonLocator           = page.ByCSS("#addon-description-header h2")
	addonDescriptionLocator     = page.ByID("addon-description")
	reviewsTitleLocator         = page.ByCSS("#reviews h2")
	detailsReviewLocator        = page.ByCSS("#reviews div.review")
	reviewDetailsLocator        = page.ByCSS("#reviews div.review p.description")
	otherAddonsLocator          = page.ByCSS("section.other-addons li")
	otherAddonNameLocator       = page.ByCSS("a span.name")
	otherAddonLinkLocator       = page.ByCSS("a")
	breadcrumbsLocator          = page.ByCSS("#breadcrumbs ol li")
	breadcrumbLinkLocator       = page.ByCSS("#breadcrumbs ol li:nth-child(%d) a")
	writeReviewLocator          = page.ByID("add-review")
	allReviewsLocator           = page.ByCSS("#reviews a.more-info")
	ratingCountLocator          = page.ByCSS("table.grouped-ratings tr[data-stars='%d'] td.count")
	installButtonLocator        = page.ByCSS("#addon-install .install a.button")
	versionInstallButtonLocator = page.ByCSS("#detail-relnotes .install a.button")
	notAvailableLocator         = page.ByCSS(".addon-details p.notavail")
	countPattern                = regexp.MustCompile(`\d+`)
)

// Details is the page of a single add-on
type Details struct {
	Base
}

// NewDetails wraps the details page currently loaded in p's session
func NewDetails(p *page.Page, site string) *Details {
	d := &Details{}
	d.Base = newBase(p, site, d.expectedTitle)
	return d
}

// OpenDetails navigates to the details page of the add-on named or slugged
// name, e.g. "Adblock Plus" or "adblock-plus"
func OpenDetails(p *page.Page, site, name string) (*Details, error) {
	d := NewDetails(p, site)
	if err := d.Navigate(fmt.Sprintf("%s/addon/%s/", d.site, slug(name))); err != nil {
		return nil, err
	}
	return d, nil
}

// expectedTitle reads "Name :: Kind" from the heading and breadcrumbs
func (d *Details) expectedTitle() ([]string, error) {
	return addonTitle(d.Page, 1)
}

func addonTitle(p *page.Page, kindCrumb int) ([]string, error) {
	name, err := p.Text(addonTitleLocator)
	if err != nil {
		return nil, err
	}
	crumbs, err := p.Texts(breadcrumbsLocator)
	if err != nil {
		return nil, err
	}
	if len(crumbs) <= kindCrumb {
		return nil, fmt.Errorf("%w: breadcrumb %d", page.ErrNotFound, kindCrumb)
	}
	return []string{name, crumbs[kindCrumb]}, nil
}

// AddonTitle returns the add-on name
func (d *Details) AddonTitle() (string, error) {
	return d.Text(addonTitleLocator)
}

// Summary returns the one-line summary under the name
func (d *Details) Summary() (string, error) {
	return d.Text(addonSummaryLocator)
}

// AboutAddon returns the heading of the description section
func (d *Details) AboutAddon() (string, error) {
	return d.Text(aboutAddonLocator)
}

// Description returns the full description
func (d *Details) Description() (string, error) {
	return d.Text(addonDescriptionLocator)
}

// ReviewTitle returns the heading of the reviews section
func (d *Details) ReviewTitle() (string, error) {
	return d.Text(reviewsTitleLocator)
}

// HasReviews reports whether any review is shown
func (d *Details) HasReviews() (bool, error) {
	return d.IsPresent(detailsReviewLocator)
}

// ReviewDetails returns the text of the newest review
func (d *Details) ReviewDetails() (string, error) {
	return d.Text(reviewDetailsLocator)
}

// Reviews returns the latest reviews shown on the page
func (d *Details) Reviews() ([]*Review, error) {
	return reviews(d.Page, detailsReviewLocator)
}

// OtherAddons returns the other add-ons by the same author
func (d *Details) OtherAddons() ([]*OtherAddon, error) {
	regions, err := d.Regions(otherAddonsLocator)
	if err != nil {
		return nil, err
	}
	others := make([]*OtherAddon, 0, len(regions))
	for _, r := range regions {
		others = append(others, &OtherAddon{Page: r, site: d.site})
	}
	return others, nil
}

// Breadcrumbs returns the breadcrumb trail
func (d *Details) Breadcrumbs() ([]string, error) {
	return d.Texts(breadcrumbsLocator)
}

// ClickToWriteReview opens the review form. Anonymous users land on the
// login form instead.
func (d *Details) ClickToWriteReview() (*WriteReview, error) {
	if err := d.clickAndWait(writeReviewLocator); err != nil {
		return nil, err
	}
	return NewWriteReview(d.Page, d.site), nil
}

// ClickAllReviewsLink opens the paginated review listing
func (d *Details) ClickAllReviewsLink() (*ViewReviews, error) {
	if err := d.clickAndWait(allReviewsLocator); err != nil {
		return nil, err
	}
	return NewViewReviews(d.Page, d.site), nil
}

// AllReviewsLinkText returns the text of the link to the review listing
func (d *Details) AllReviewsLinkText() (string, error) {
	return d.Text(allReviewsLocator)
}

// CountForRating returns how many reviews gave stars stars
func (d *Details) CountForRating(stars int) (int, error) {
	counts, err := d.Integers(countPattern, ratingCountLocator.Format(stars))
	if err != nil {
		return 0, err
	}
	if len(counts) == 0 {
		return 0, fmt.Errorf("%w: count for %d stars", page.ErrNotFound, stars)
	}
	return counts[0], nil
}

// IsInstallButtonVisible reports whether the main install button is shown
func (d *Details) IsInstallButtonVisible() (bool, error) {
	return d.IsVisible(installButtonLocator)
}

// InstallButtonText returns the label of the main install button
func (d *Details) InstallButtonText() (string, error) {
	return d.Text(installButtonLocator)
}

// IsVersionInstallButtonVisible reports whether the version information
// section carries an install button
func (d *Details) IsVersionInstallButtonVisible() (bool, error) {
	return d.IsVisible(versionInstallButtonLocator)
}

// IsNotAvailable reports whether the add-on is flagged incompatible with the
// current application
func (d *Details) IsNotAvailable() (bool, error) {
	return d.IsPresent(notAvailableLocator)
}

// OtherAddon is an entry of the "other add-ons by" list
type OtherAddon struct {
	*page.Page
	site string
}

// Name returns the add-on name
func (o *OtherAddon) Name() (string, error) {
	return o.Text(otherAddonNameLocator)
}

// ClickAddonLink opens the add-on
func (o *OtherAddon) ClickAddonLink() (*Details, error) {
	if err := clickAndWait(o.Page, otherAddonLinkLocator); err != nil {
		return nil, err
	}
	return NewDetails(o.Page, o.site), nil
}
