package amo

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/Marlena/Addon-Tests/internal/page"
)

var (
	sortByNameLocator       = page.ByCSS("#sorter li.extras > ul > li:nth-child(1) > a")
	sortByUpdatedLocator    = page.ByCSS("#sorter li.extras > ul > li:nth-child(4) > a")
	sortByCreatedLocator    = page.ByCSS("#sorter > ul > li:nth-child(3) > a")
	sortByPopularLocator    = page.ByCSS("#sorter li.extras > ul > li:nth-child(3) > a")
	sortByRatingLocator     = page.ByCSS("#sorter > ul > li:nth-child(2) > a")
	sortExtrasLocator       = page.ByCSS("#sorter li.extras > a")
	sortedByLocator         = page.ByCSS("#sorter > ul > li.selected > a")
	exploreLinksLocator     = page.ByCSS("#side-explore a")
	themeItemsLocator       = page.ByCSS("ul.listing-grid > li")
	themeNamesLocator       = page.ByCSS("ul.listing-grid div.hovercard > a > h3")
	themeItemNameLocator    = page.ByCSS("div.hovercard > a > h3")
	themeFirstLinkLocator   = page.ByCSS("ul.listing-grid div.hovercard > a")
	themeUpdatedLocator     = page.ByCSS("ul.listing-grid div.vital .updated")
	themeDownloadsLocator   = page.ByCSS("ul.listing-grid div.vital .downloads.adu")
	themeRatingLocator      = page.ByCSS("ul.listing-grid div.vital .rating span.stars")
	hovercardLocator        = page.ByCSS("div.hovercard")
	notAvailableFlagLocator = page.ByCSS("div.hovercard > span.notavail")
	themeInstallLocator     = page.ByCSS("#addon-install .install a.button")
	weeklyDownloadsPattern  = regexp.MustCompile(`(\d+(?:,\d+)*) weekly downloads`)
	starsPattern            = regexp.MustCompile(`(\d)`)
)

// Theme listing date layouts, see page.ExtractDates
const (
	UpdatedDateLayout = "Updated January 2, 2006"
	CreatedDateLayout = "Added January 2, 2006"
)

const incompatibleClass = "incompatible"

// boldWeight is the lowest numeric font weight rendered bold
const boldWeight = 400

// SortKey is a sort order of the theme listing
type SortKey int

// Theme listing sort orders
const (
	SortByName SortKey = iota
	SortByUpdated
	SortByCreated
	SortByPopular
	SortByRating
)

// String returns the sort key name
func (k SortKey) String() string {
	switch k {
	case SortByName:
		return "name"
	case SortByUpdated:
		return "updated"
	case SortByCreated:
		return "created"
	case SortByPopular:
		return "popular"
	case SortByRating:
		return "rating"
	default:
		return fmt.Sprintf("sort(%d)", int(k))
	}
}

func (k SortKey) locator() (page.Locator, error) {
	switch k {
	case SortByName:
		return sortByNameLocator, nil
	case SortByUpdated:
		return sortByUpdatedLocator, nil
	case SortByCreated:
		return sortByCreatedLocator, nil
	case SortByPopular:
		return sortByPopularLocator, nil
	case SortByRating:
		return sortByRatingLocator, nil
	default:
		return page.Locator{}, fmt.Errorf("unknown theme sort key %s", k)
	}
}

// Themes is the theme listing
type Themes struct {
	Base
}

// NewThemes wraps the theme listing currently loaded in p's session
func NewThemes(p *page.Page, site string) *Themes {
	t := &Themes{}
	t.Base = newBase(p, site, t.expectedTitle)
	return t
}

// OpenThemes navigates to the theme listing
func OpenThemes(p *page.Page, site string) (*Themes, error) {
	t := NewThemes(p, site)
	if err := t.Navigate(t.site + "/themes/"); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *Themes) expectedTitle() ([]string, error) {
	return listingTitle(t.Page, "Themes")
}

// ClickSortBy sorts the listing. Sort orders under the "More" tab only show
// while it is hovered, so the pointer is parked on the footer, then moved
// over the tab and onto the target before clicking.
func (t *Themes) ClickSortBy(key SortKey) error {
	l, err := key.locator()
	if err != nil {
		return err
	}
	if err := t.Hover(footerLocator, sortExtrasLocator, l); err != nil {
		return err
	}
	return t.clickAndWait(l)
}

// SortedBy returns the label of the active sort order
func (t *Themes) SortedBy() (string, error) {
	return t.Text(sortedByLocator)
}

// SelectedExploreFilter returns the side bar explore entry rendered bold
func (t *Themes) SelectedExploreFilter() (string, error) {
	links, err := t.FindAll(exploreLinksLocator)
	if err != nil {
		return "", err
	}
	for _, link := range links {
		weight, err := link.CSSValue("font-weight")
		if errors.Is(err, page.ErrUnsupported) {
			continue
		}
		if err != nil {
			return "", err
		}
		if isBold(weight) {
			return link.Text()
		}
	}
	return "", fmt.Errorf("%w: selected explore filter", page.ErrNotFound)
}

func isBold(weight string) bool {
	if strings.EqualFold(weight, "bold") || strings.EqualFold(weight, "bolder") {
		return true
	}
	n, err := strconv.Atoi(weight)
	return err == nil && n > boldWeight
}

// ClickOnFirstAddon opens the first theme of the listing
func (t *Themes) ClickOnFirstAddon() (*Theme, error) {
	if err := t.clickAndWait(themeFirstLinkLocator); err != nil {
		return nil, err
	}
	return NewTheme(t.Page, t.site), nil
}

// Categories returns the category names in the side bar
func (t *Themes) Categories() ([]string, error) {
	return t.Texts(sideCategoriesLocator)
}

// CategoryCount returns the number of side bar categories
func (t *Themes) CategoryCount() (int, error) {
	return t.Count(sideCategoriesLocator)
}

// ClickCategory opens the n-th side bar category, counting from 1
func (t *Themes) ClickCategory(n int) (*ThemesCategory, error) {
	if err := t.clickAndWait(sideCategoryLocator.Format(n)); err != nil {
		return nil, err
	}
	return NewThemesCategory(t.Page, t.site), nil
}

// ClickOnFirstCategory opens the first side bar category
func (t *Themes) ClickOnFirstCategory() (*ThemesCategory, error) {
	return t.ClickCategory(1)
}

// AddonNames returns the theme names in display order
func (t *Themes) AddonNames() ([]string, error) {
	return t.Texts(themeNamesLocator)
}

// AddonCount returns the number of themes on the current page
func (t *Themes) AddonCount() (int, error) {
	return t.Count(themeItemsLocator)
}

// AddonsUpdatedDates returns the "Updated" dates in display order
func (t *Themes) AddonsUpdatedDates() ([]time.Time, error) {
	return t.Dates(UpdatedDateLayout, themeUpdatedLocator)
}

// AddonsCreatedDates returns the "Added" dates shown when sorted by newest
func (t *Themes) AddonsCreatedDates() ([]time.Time, error) {
	return t.Dates(CreatedDateLayout, themeUpdatedLocator)
}

// AddonsDownloads returns the weekly download counts in display order
func (t *Themes) AddonsDownloads() ([]int, error) {
	return t.Integers(weeklyDownloadsPattern, themeDownloadsLocator)
}

// AddonsRating returns the star ratings in display order
func (t *Themes) AddonsRating() ([]int, error) {
	return t.Integers(starsPattern, themeRatingLocator)
}

// Themes returns the themes on the current page
func (t *Themes) Themes() ([]*ThemeItem, error) {
	regions, err := t.Regions(themeItemsLocator)
	if err != nil {
		return nil, err
	}
	items := make([]*ThemeItem, 0, len(regions))
	for _, r := range regions {
		items = append(items, &ThemeItem{Page: r})
	}
	return items, nil
}

// Paginator returns the page navigation under the listing
func (t *Themes) Paginator() *Paginator {
	return &Paginator{page: t.Page}
}

// ThemeItem is one theme of the listing
type ThemeItem struct {
	*page.Page
}

// Name returns the theme name
func (i *ThemeItem) Name() (string, error) {
	return i.Text(themeItemNameLocator)
}

// IsIncompatible reports whether the theme is marked incompatible with the
// current application
func (i *ThemeItem) IsIncompatible() (bool, error) {
	classes, err := i.Attribute(hovercardLocator, "class")
	if err != nil {
		return false, err
	}
	return hasClass(classes, incompatibleClass), nil
}

// IsIncompatibleFlagPresent reports whether the "not available" flag is shown
func (i *ThemeItem) IsIncompatibleFlagPresent() (bool, error) {
	return i.IsPresent(notAvailableFlagLocator)
}

// NotCompatibleFlagText returns the "not available" flag
func (i *ThemeItem) NotCompatibleFlagText() (string, error) {
	return i.Text(notAvailableFlagLocator)
}

// Theme is the details page of a theme
type Theme struct {
	Base
}

// NewTheme wraps the theme page currently loaded in p's session
func NewTheme(p *page.Page, site string) *Theme {
	t := &Theme{}
	t.Base = newBase(p, site, t.expectedTitle)
	return t
}

func (t *Theme) expectedTitle() ([]string, error) {
	return addonTitle(t.Page, 1)
}

// ThemeTitle returns the theme name
func (t *Theme) ThemeTitle() (string, error) {
	return t.Text(addonTitleLocator)
}

// InstallButtonExists reports whether the theme can be installed from the page
func (t *Theme) InstallButtonExists() (bool, error) {
	return t.IsPresent(themeInstallLocator)
}

// ThemesCategory is the theme listing narrowed to a category
type ThemesCategory struct {
	Base
}

// NewThemesCategory wraps the category listing currently loaded in p's session
func NewThemesCategory(p *page.Page, site string) *ThemesCategory {
	c := &ThemesCategory{}
	c.Base = newBase(p, site, c.expectedTitle)
	return c
}

// OpenThemesCategory navigates to the theme category with the given slug
func OpenThemesCategory(p *page.Page, site, category string) (*ThemesCategory, error) {
	c := NewThemesCategory(p, site)
	if err := c.Navigate(fmt.Sprintf("%s/themes/%s/", c.site, category)); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *ThemesCategory) expectedTitle() ([]string, error) {
	return listingTitle(c.Page, "Themes")
}

// CategoryTitle returns the category heading
func (c *ThemesCategory) CategoryTitle() (string, error) {
	return c.Text(listingHeadingLocator)
}

// Breadcrumbs returns the breadcrumb trail
func (c *ThemesCategory) Breadcrumbs() ([]string, error) {
	return c.Texts(categoryBreadcrumbs)
}
