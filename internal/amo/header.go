package amo

import (
	"fmt"
	"strings"

	"github.com/Marlena/Addon-Tests/internal/page"
)

var (
	otherAppsLocator    = page.ByCSS("#other-apps > a.controller")
	otherAppLocator     = page.ByCSS("#other-apps li a.%s")
	accountLocator      = page.ByCSS("#aux-nav li.account > a.user")
	logoutLocator       = page.ByCSS("li#logout > a")
	logoLocator         = page.ByCSS("h1.site-title > a")
	logoImageLocator    = page.ByCSS("h1.site-title > a > img")
	mozillaLogoLocator  = page.ByID("global-header-tab")
	siteMenusLocator    = page.ByCSS("#site-nav > ul > li.dropdown")
	searchFieldLocator  = page.ByID("search-q")
	searchButtonLocator = page.ByCSS("#search button.search-button")
	menuNameLocator     = page.ByCSS("a.controller")
	menuDropdownLocator = page.ByCSS("ul")
	menuItemsLocator    = page.ByCSS("ul > li")
	menuItemLinkLocator = page.ByCSS("a")
)

const featuredMenuItemClass = "top"

// Header is the site header shown on every page
type Header struct {
	*page.Page
	site string
}

// Menus returns the site navigation menus in display order
func (h *Header) Menus() ([]*Menu, error) {
	regions, err := h.Regions(siteMenusLocator)
	if err != nil {
		return nil, err
	}
	menus := make([]*Menu, 0, len(regions))
	for _, r := range regions {
		menus = append(menus, &Menu{Page: r})
	}
	return menus, nil
}

// Menu returns the navigation menu whose name matches, ignoring case
func (h *Header) Menu(name string) (*Menu, error) {
	menus, err := h.Menus()
	if err != nil {
		return nil, err
	}
	for _, m := range menus {
		n, err := m.Name()
		if err != nil {
			return nil, err
		}
		if strings.EqualFold(n, name) {
			return m, nil
		}
	}
	return nil, fmt.Errorf("%w: menu %q", page.ErrNotFound, name)
}

// SearchFor submits term through the header search box
func (h *Header) SearchFor(term string) (*Search, error) {
	if err := h.Fill(searchFieldLocator, term); err != nil {
		return nil, err
	}
	if err := h.Submit(searchFieldLocator); err != nil {
		return nil, err
	}
	if err := waitForLoad(h.Page); err != nil {
		return nil, err
	}
	return NewSearch(h.Page, h.site, term), nil
}

// SearchFieldPlaceholder returns the placeholder of the search box
func (h *Header) SearchFieldPlaceholder() (string, error) {
	return h.Attribute(searchFieldLocator, "placeholder")
}

// IsSearchTextboxVisible reports whether the search box is displayed
func (h *Header) IsSearchTextboxVisible() (bool, error) {
	return h.IsVisible(searchFieldLocator)
}

// IsSearchButtonVisible reports whether the search button is displayed
func (h *Header) IsSearchButtonVisible() (bool, error) {
	return h.IsVisible(searchButtonLocator)
}

// SearchButtonTitle returns the tooltip of the search button
func (h *Header) SearchButtonTitle() (string, error) {
	return h.Attribute(searchButtonLocator, "title")
}

// IsUserLoggedIn reports whether the account menu is shown
func (h *Header) IsUserLoggedIn() (bool, error) {
	return h.IsPresent(accountLocator)
}

// ClickLogout opens the account menu and follows its logout link
func (h *Header) ClickLogout() error {
	if err := h.Hover(accountLocator, logoutLocator); err != nil {
		return err
	}
	return clickAndWait(h.Page, logoutLocator)
}

// ClickOtherApplication switches the site to another application, e.g.
// "Thunderbird"
func (h *Header) ClickOtherApplication(app string) error {
	l := otherAppLocator.Format(strings.ToLower(app))
	if err := h.Hover(otherAppsLocator, l); err != nil {
		return err
	}
	return clickAndWait(h.Page, l)
}

// IsOtherApplicationVisible opens the other applications menu and reports
// whether app is listed in it
func (h *Header) IsOtherApplicationVisible(app string) (bool, error) {
	if err := h.Hover(otherAppsLocator); err != nil {
		return false, err
	}
	return h.IsVisible(otherAppLocator.Format(strings.ToLower(app)))
}

// LogoText returns the text next to the site logo
func (h *Header) LogoText() (string, error) {
	return h.Text(logoLocator)
}

// LogoTitle returns the tooltip of the site logo
func (h *Header) LogoTitle() (string, error) {
	return h.Attribute(logoLocator, "title")
}

// LogoImageSource returns the src of the application icon in the logo
func (h *Header) LogoImageSource() (string, error) {
	return h.Attribute(logoImageLocator, "src")
}

// IsLogoVisible reports whether the site logo is displayed
func (h *Header) IsLogoVisible() (bool, error) {
	return h.IsVisible(logoLocator)
}

// ClickLogo follows the site logo to the home page
func (h *Header) ClickLogo() (*Home, error) {
	if err := clickAndWait(h.Page, logoLocator); err != nil {
		return nil, err
	}
	return NewHome(h.Page, h.site), nil
}

// IsMozillaLogoVisible reports whether the mozilla tab is displayed
func (h *Header) IsMozillaLogoVisible() (bool, error) {
	return h.IsVisible(mozillaLogoLocator)
}

// ClickMozillaLogo follows the mozilla tab off the marketplace
func (h *Header) ClickMozillaLogo() error {
	return clickAndWait(h.Page, mozillaLogoLocator)
}

// TitleOfLink returns the tooltip of the link whose text is text
func (h *Header) TitleOfLink(text string) (string, error) {
	return h.Attribute(page.ByLinkText(text), "title")
}

// Menu is one dropdown of the site navigation
type Menu struct {
	*page.Page
}

// Name returns the menu heading, e.g. EXTENSIONS
func (m *Menu) Name() (string, error) {
	return m.Text(menuNameLocator)
}

// Items returns the entries of the dropdown. The menu is hovered first so
// live sessions render the entries.
func (m *Menu) Items() ([]*MenuItem, error) {
	if err := m.Hover(menuNameLocator); err != nil {
		return nil, err
	}
	regions, err := m.Regions(menuItemsLocator)
	if err != nil {
		return nil, err
	}
	items := make([]*MenuItem, 0, len(regions))
	for _, r := range regions {
		items = append(items, &MenuItem{Page: r})
	}
	return items, nil
}

// HoverMenu moves the pointer over the menu heading
func (m *Menu) HoverMenu() error {
	return m.Hover(menuNameLocator)
}

// IsDropdownVisible reports whether the entries are displayed
func (m *Menu) IsDropdownVisible() (bool, error) {
	return m.IsVisible(menuDropdownLocator)
}

// ClickMenu follows the menu heading
func (m *Menu) ClickMenu() error {
	return clickAndWait(m.Page, menuNameLocator)
}

// MenuItem is one entry of a navigation menu
type MenuItem struct {
	*page.Page
}

// Name returns the entry text
func (i *MenuItem) Name() (string, error) {
	return i.Text(menuItemLinkLocator)
}

// IsFeatured reports whether the entry is highlighted at the top of the menu
func (i *MenuItem) IsFeatured() (bool, error) {
	classes, err := i.RootAttribute("class")
	if err != nil {
		return false, err
	}
	return hasClass(classes, featuredMenuItemClass), nil
}

// ClickItem follows the entry
func (i *MenuItem) ClickItem() error {
	return clickAndWait(i.Page, menuItemLinkLocator)
}
