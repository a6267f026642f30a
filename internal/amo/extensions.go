package amo

import (
	"fmt"

	"github.com/Marlena/Addon-Tests/internal/page"
)

var (
	extensionItemsLocator    = page.ByCSS("div.items div.item")
	extensionNameLocator     = page.ByCSS(".info h3 a")
	extensionButtonLocator   = page.ByCSS(".action .install a.button")
	extensionFreeLocator     = page.ByCSS(".action .install a.button.add")
	extensionNoRatingLocator = page.ByCSS(".rating .no-rating")
	selectedTabLocator       = page.ByCSS("#sorter > ul > li.selected > a")
	topRatedTabLocator       = page.ByCSS("#sorter > ul > li:nth-child(3) > a")
	listingHeadingLocator    = page.ByCSS("section.primary > h1")
	categoryBreadcrumbs      = page.ByCSS("#breadcrumbs > ol > li")
	sideCategoriesLocator    = page.ByCSS("#side-categories li")
	sideCategoryLocator      = page.ByCSS("#side-categories li:nth-of-type(%d) > a")
)

// Extensions is the extension listing, optionally narrowed to a category
type Extensions struct {
	Base
}

// NewExtensions wraps the extension listing currently loaded in p's session
func NewExtensions(p *page.Page, site string) *Extensions {
	e := &Extensions{}
	e.Base = newBase(p, site, e.expectedTitle)
	return e
}

// OpenExtensions navigates to the extension listing
func OpenExtensions(p *page.Page, site string) (*Extensions, error) {
	e := NewExtensions(p, site)
	if err := e.Navigate(e.site + "/extensions/"); err != nil {
		return nil, err
	}
	return e, nil
}

// expectedTitle is "Extensions", or "Category :: Extensions" on a category
func (e *Extensions) expectedTitle() ([]string, error) {
	return listingTitle(e.Page, "Extensions")
}

func listingTitle(p *page.Page, kind string) ([]string, error) {
	crumbs, err := p.Texts(categoryBreadcrumbs)
	if err != nil {
		return nil, err
	}
	if len(crumbs) == 0 {
		return []string{kind}, nil
	}
	heading, err := p.Text(listingHeadingLocator)
	if err != nil {
		return nil, err
	}
	return []string{heading, kind}, nil
}

// Heading returns the listing heading
func (e *Extensions) Heading() (string, error) {
	return e.Text(listingHeadingLocator)
}

// Breadcrumbs returns the breadcrumb trail shown on category listings
func (e *Extensions) Breadcrumbs() ([]string, error) {
	return e.Texts(categoryBreadcrumbs)
}

// Categories returns the category names in the side bar
func (e *Extensions) Categories() ([]string, error) {
	return e.Texts(sideCategoriesLocator)
}

// ClickCategory opens the n-th side bar category, counting from 1
func (e *Extensions) ClickCategory(n int) error {
	return e.clickAndWait(sideCategoryLocator.Format(n))
}

// Extensions returns the add-ons on the current page
func (e *Extensions) Extensions() ([]*Extension, error) {
	regions, err := e.Regions(extensionItemsLocator)
	if err != nil {
		return nil, err
	}
	extensions := make([]*Extension, 0, len(regions))
	for _, r := range regions {
		extensions = append(extensions, &Extension{Page: r, site: e.site})
	}
	return extensions, nil
}

// DefaultSelectedTab returns the label of the active sort tab
func (e *Extensions) DefaultSelectedTab() (string, error) {
	return e.Text(selectedTabLocator)
}

// ClickTopRated sorts the listing by rating
func (e *Extensions) ClickTopRated() error {
	return e.clickAndWait(topRatedTabLocator)
}

// Paginator returns the page navigation under the listing
func (e *Extensions) Paginator() *Paginator {
	return &Paginator{page: e.Page}
}

// UnreviewedFreeExtension finds a free extension nobody has rated yet.
// Unrated extensions sort last by rating, so it sorts by rating, goes to the
// last page and returns the first free, unrated item there.
func (e *Extensions) UnreviewedFreeExtension() (*Extension, error) {
	if err := e.ClickTopRated(); err != nil {
		return nil, err
	}
	if err := e.Paginator().ClickLastPage(); err != nil {
		return nil, err
	}
	extensions, err := e.Extensions()
	if err != nil {
		return nil, err
	}
	for _, ext := range extensions {
		free, err := ext.IsFree()
		if err != nil {
			return nil, err
		}
		rated, err := ext.IsRated()
		if err != nil {
			return nil, err
		}
		if free && !rated {
			return ext, nil
		}
	}
	return nil, fmt.Errorf("%w: free unrated extension on the last page", page.ErrNotFound)
}

// Extension is one add-on of the listing
type Extension struct {
	*page.Page
	site string
}

// Name returns the add-on name
func (x *Extension) Name() (string, error) {
	return x.Text(extensionNameLocator)
}

// ButtonText returns the install button label, "Add to Firefox" or a price
func (x *Extension) ButtonText() (string, error) {
	return x.Text(extensionButtonLocator)
}

// IsFree reports whether the add-on installs without payment
func (x *Extension) IsFree() (bool, error) {
	return x.IsPresent(extensionFreeLocator)
}

// IsRated reports whether the add-on has a rating
func (x *Extension) IsRated() (bool, error) {
	unrated, err := x.IsPresent(extensionNoRatingLocator)
	return !unrated, err
}

// ClickExtension opens the add-on
func (x *Extension) ClickExtension() (*Details, error) {
	if err := clickAndWait(x.Page, extensionNameLocator); err != nil {
		return nil, err
	}
	return NewDetails(x.Page, x.site), nil
}
