// Package amo holds page objects for the add-ons marketplace. Every page
// embeds a *page.Page and resolves its locators on demand, so a page object
// stays valid across navigations within the same session.
package amo

import (
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/Marlena/Addon-Tests/internal/page"
)

const titleSeparator = " :: "

var (
	footerLocator        = page.ByID("footer")
	loginLinkLocator     = page.ByCSS("#aux-nav li.account.anonymous a.login")
	loginUsernameLocator = page.ByID("id_username")
	loginPasswordLocator = page.ByID("id_password")
	loginSubmitLocator   = page.ByID("login-submit")
)

// Base is what every marketplace page shares: the session, the localized
// site root and the way the page recognizes its own document title.
type Base struct {
	*page.Page
	site  string
	title func() ([]string, error)
}

func newBase(p *page.Page, site string, title func() ([]string, error)) Base {
	return Base{Page: p.Document(), site: strings.TrimRight(site, "/"), title: title}
}

// fixedTitle is a title that does not depend on the document
func fixedTitle(parts ...string) func() ([]string, error) {
	return func() ([]string, error) {
		return parts, nil
	}
}

// Site returns the localized application root, e.g. http://host/en-US/firefox
func (b *Base) Site() string {
	return b.site
}

// sitePath returns the path of the site root, e.g. /en-US/firefox
func (b *Base) sitePath() string {
	u, err := url.Parse(b.site)
	if err != nil {
		return ""
	}
	return u.Path
}

// Header returns the header shared by every page
func (b *Base) Header() *Header {
	return &Header{Page: b.Page, site: b.site}
}

// IsTheCurrentPage reports whether the document title names this page. Titles
// read "Part :: Part :: Add-ons for <application>".
func (b *Base) IsTheCurrentPage() (bool, error) {
	want, err := b.title()
	if err != nil {
		return false, err
	}
	title, err := b.Title()
	if err != nil {
		return false, err
	}
	parts := strings.Split(title, titleSeparator)
	if len(parts) != len(want)+1 || !strings.HasPrefix(parts[len(parts)-1], "Add-ons for ") {
		return false, nil
	}
	return slices.Equal(parts[:len(want)], want), nil
}

// IsFooterVisible reports whether the page footer is displayed
func (b *Base) IsFooterVisible() (bool, error) {
	return b.IsVisible(footerLocator)
}

// Login signs in through the header login link. The site returns to the
// page the link was clicked on.
func (b *Base) Login(email, password string) error {
	if err := b.clickAndWait(loginLinkLocator); err != nil {
		return fmt.Errorf("failed to open login form: %w", err)
	}
	if err := b.Fill(loginUsernameLocator, email); err != nil {
		return err
	}
	if err := b.Fill(loginPasswordLocator, password); err != nil {
		return err
	}
	return b.clickAndWait(loginSubmitLocator)
}

// clickAndWait clicks l and, on sessions that load asynchronously, waits for
// the resulting document
func (b *Base) clickAndWait(l page.Locator) error {
	return clickAndWait(b.Page, l)
}

type loadWaiter interface {
	WaitForLoad() error
}

func clickAndWait(p *page.Page, l page.Locator) error {
	if err := p.Click(l); err != nil {
		return err
	}
	return waitForLoad(p)
}

func waitForLoad(p *page.Page) error {
	if w, ok := p.Session().(loadWaiter); ok {
		return w.WaitForLoad()
	}
	return nil
}

// slug turns an add-on name into its URL slug, "Adblock Plus" -> adblock-plus
func slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

// hasClass reports whether a class attribute value contains name
func hasClass(classes, name string) bool {
	return slices.Contains(strings.Fields(classes), name)
}
