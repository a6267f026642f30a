package amo

import (
	"fmt"
	"regexp"

	"github.com/Marlena/Addon-Tests/internal/page"
)

var (
	popularHeadingLocator        = page.ByCSS("#popular-extensions h2")
	popularItemsLocator          = page.ByCSS("#popular-extensions ol li")
	popularItemNameLocator       = page.ByCSS("a span.addon-name")
	popularItemUsersLocator      = page.ByCSS("a small")
	featuredExtensionsTitle      = page.ByCSS("#featured-extensions h2")
	featuredExtensionsSeeAll     = page.ByCSS("#featured-extensions a.seeall")
	featuredExtensionsItems      = page.ByCSS("#featured-extensions ul.listing li.item")
	featuredExtensionLinkLocator = page.ByCSS("#featured-extensions ul.listing li.item > a")
	featuredPersonasTitle        = page.ByCSS("#featured-personas h2")
	featuredPersonasSeeAll       = page.ByCSS("#featured-personas h2 a.seeall")
	featuredPersonasItems        = page.ByCSS("#featured-personas ul li")
	featuredCollectionsTitle     = page.ByCSS("#featured-collections h2")
	featuredCollectionsSeeAll    = page.ByCSS("#featured-collections h2 a.seeall")
	featuredCollectionsItems     = page.ByCSS("#featured-collections ul li")
	exploreFeaturedLocator       = page.ByCSS("#side-nav .s-featured a")
	explorePopularLocator        = page.ByCSS("#side-nav .s-users a")
	exploreTopRatedLocator       = page.ByCSS("#side-nav .s-rating a")
	usersPattern                 = regexp.MustCompile(`(\d+(?:,\d+)*) users`)
)

// ExploreKey is an entry of the home page explore list
type ExploreKey int

// Explore list entries
const (
	ExploreFeatured ExploreKey = iota
	ExplorePopular
	ExploreTopRated
)

func (k ExploreKey) locator() (page.Locator, error) {
	switch k {
	case ExploreFeatured:
		return exploreFeaturedLocator, nil
	case ExplorePopular:
		return explorePopularLocator, nil
	case ExploreTopRated:
		return exploreTopRatedLocator, nil
	default:
		return page.Locator{}, fmt.Errorf("unknown explore key %d", int(k))
	}
}

// Home is the application landing page
type Home struct {
	Base
}

// NewHome wraps the home page currently loaded in p's session
func NewHome(p *page.Page, site string) *Home {
	return &Home{Base: newBase(p, site, fixedTitle())}
}

// OpenHome navigates to the home page of site
func OpenHome(p *page.Page, site string) (*Home, error) {
	h := NewHome(p, site)
	if err := h.Navigate(h.site + "/"); err != nil {
		return nil, err
	}
	return h, nil
}

// MostPopularHeading returns the heading of the most popular list
func (h *Home) MostPopularHeading() (string, error) {
	return h.Text(popularHeadingLocator)
}

// MostPopularCount returns the number of add-ons in the most popular list
func (h *Home) MostPopularCount() (int, error) {
	return h.Count(popularItemsLocator)
}

// MostPopularItems returns the most popular list in display order
func (h *Home) MostPopularItems() ([]*PopularItem, error) {
	regions, err := h.Regions(popularItemsLocator)
	if err != nil {
		return nil, err
	}
	items := make([]*PopularItem, 0, len(regions))
	for _, r := range regions {
		items = append(items, &PopularItem{Page: r})
	}
	return items, nil
}

// MostPopularUsers returns the user counts of the most popular list
func (h *Home) MostPopularUsers() ([]int, error) {
	items, err := h.MostPopularItems()
	if err != nil {
		return nil, err
	}
	users := make([]int, 0, len(items))
	for _, item := range items {
		n, err := item.Users()
		if err != nil {
			return nil, err
		}
		users = append(users, n)
	}
	return users, nil
}

// FeaturedExtensionsTitle returns the featured extensions heading
func (h *Home) FeaturedExtensionsTitle() (string, error) {
	return h.Text(featuredExtensionsTitle)
}

// FeaturedExtensionsSeeAll returns the text of the featured extensions link
func (h *Home) FeaturedExtensionsSeeAll() (string, error) {
	return h.Text(featuredExtensionsSeeAll)
}

// FeaturedExtensionsCount returns the number of featured extensions
func (h *Home) FeaturedExtensionsCount() (int, error) {
	return h.Count(featuredExtensionsItems)
}

// FeaturedPersonasTitle returns the featured personas heading, see-all link
// included
func (h *Home) FeaturedPersonasTitle() (string, error) {
	return h.Text(featuredPersonasTitle)
}

// FeaturedPersonasCount returns the number of featured personas
func (h *Home) FeaturedPersonasCount() (int, error) {
	return h.Count(featuredPersonasItems)
}

// ClickFeaturedPersonasSeeAll opens the persona gallery
func (h *Home) ClickFeaturedPersonasSeeAll() (*Personas, error) {
	if err := h.clickAndWait(featuredPersonasSeeAll); err != nil {
		return nil, err
	}
	return NewPersonas(h.Page, h.site), nil
}

// FeaturedCollectionsTitle returns the featured collections heading, see-all
// link included
func (h *Home) FeaturedCollectionsTitle() (string, error) {
	return h.Text(featuredCollectionsTitle)
}

// FeaturedCollectionsCount returns the number of featured collections
func (h *Home) FeaturedCollectionsCount() (int, error) {
	return h.Count(featuredCollectionsItems)
}

// ClickFeaturedCollectionsSeeAll opens the featured collections listing
func (h *Home) ClickFeaturedCollectionsSeeAll() (*Collections, error) {
	if err := h.clickAndWait(featuredCollectionsSeeAll); err != nil {
		return nil, err
	}
	return NewCollections(h.Page, h.site), nil
}

// ClickOnFirstAddon opens the first featured extension
func (h *Home) ClickOnFirstAddon() (*Details, error) {
	if err := h.clickAndWait(featuredExtensionLinkLocator); err != nil {
		return nil, err
	}
	return NewDetails(h.Page, h.site), nil
}

// ClickToExplore opens the extension listing through the explore list
func (h *Home) ClickToExplore(key ExploreKey) (*Extensions, error) {
	l, err := key.locator()
	if err != nil {
		return nil, err
	}
	if err := h.clickAndWait(l); err != nil {
		return nil, err
	}
	return NewExtensions(h.Page, h.site), nil
}

// HoverOverAddonsHomeTitle moves the pointer onto the site logo, away from
// the navigation menus
func (h *Home) HoverOverAddonsHomeTitle() error {
	return h.Hover(logoLocator)
}

// PopularItem is an entry of the most popular list
type PopularItem struct {
	*page.Page
}

// Name returns the add-on name
func (i *PopularItem) Name() (string, error) {
	return i.Text(popularItemNameLocator)
}

// Users returns the user count shown next to the name
func (i *PopularItem) Users() (int, error) {
	users, err := i.Integers(usersPattern, popularItemUsersLocator)
	if err != nil {
		return 0, err
	}
	if len(users) == 0 {
		return 0, fmt.Errorf("%w: user count", page.ErrNotFound)
	}
	return users[0], nil
}
