package handlers

import (
	"bytes"
	"html/template"
	"log"
	"net/http"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/Marlena/Addon-Tests/internal/models"
	"github.com/Marlena/Addon-Tests/internal/services"
	"github.com/dustin/go-humanize"
)

// Application is a client application the marketplace lists add-ons for
type Application struct {
	Slug string
	Name string
}

// Applications are the client applications served under /{locale}/{app}/
var Applications = []Application{
	{Slug: "firefox", Name: "Firefox"},
	{Slug: "thunderbird", Name: "Thunderbird"},
	{Slug: "mobile", Name: "Mobile"},
	{Slug: "seamonkey", Name: "SeaMonkey"},
}

func findApplication(slug string) (Application, bool) {
	for _, app := range Applications {
		if app.Slug == slug {
			return app, true
		}
	}
	return Application{}, false
}

// NavItem is a link in a header menu
type NavItem struct {
	Name     string
	URL      string
	Featured bool
}

// NavMenu is a header dropdown
type NavMenu struct {
	ID    string
	Name  string
	URL   string
	Items []NavItem
}

// LayoutData is passed to every page template
type LayoutData struct {
	Title     string
	Locale    string
	App       Application
	Prefix    string
	OtherApps []Application
	User      *models.User
	Menus     []NavMenu
	Query     string
	Path      string
	Content   any
}

// Site resolves what every page shares: the application, the locale and the
// logged-in user
type Site struct {
	catalog  services.CatalogService
	sessions *services.SessionStore
}

// NewSite creates a Site
func NewSite(catalog services.CatalogService, sessions *services.SessionStore) *Site {
	return &Site{
		catalog:  catalog,
		sessions: sessions,
	}
}

// CurrentUser returns the user logged in on r, if any
func (s *Site) CurrentUser(r *http.Request) *models.User {
	cookie, err := r.Cookie(services.SessionCookieName)
	if err != nil {
		return nil
	}
	user, ok := s.sessions.User(cookie.Value)
	if !ok {
		return nil
	}
	return user
}

// Layout builds the layout for r. It reports false when the URL names an
// unknown application.
func (s *Site) Layout(r *http.Request, content any, title ...string) (LayoutData, bool) {
	app, ok := findApplication(r.PathValue("app"))
	if !ok {
		return LayoutData{}, false
	}
	locale := r.PathValue("locale")
	prefix := "/" + locale + "/" + app.Slug

	var others []Application
	for _, other := range Applications {
		if other.Slug != app.Slug {
			others = append(others, other)
		}
	}

	return LayoutData{
		Title:     strings.Join(append(title, "Add-ons for "+app.Name), " :: "),
		Locale:    locale,
		App:       app,
		Prefix:    prefix,
		OtherApps: others,
		User:      s.CurrentUser(r),
		Menus:     s.menus(locale, prefix),
		Query:     r.URL.Query().Get("q"),
		Path:      r.URL.RequestURI(),
		Content:   content,
	}, true
}

func (s *Site) menus(locale, prefix string) []NavMenu {
	categoryItems := func(kind models.AddonKind, path string) []NavItem {
		var items []NavItem
		for _, c := range s.catalog.Categories(kind) {
			items = append(items, NavItem{Name: c.Name, URL: prefix + path + c.Slug + "/"})
		}
		return items
	}

	extensions := append([]NavItem{
		{Name: "Featured", URL: prefix + "/extensions/?sort=featured", Featured: true},
		{Name: "Most Popular", URL: prefix + "/extensions/?sort=users", Featured: true},
		{Name: "Top Rated", URL: prefix + "/extensions/?sort=rating", Featured: true},
	}, categoryItems(models.KindExtension, "/extensions/")...)

	personas := append([]NavItem{
		{Name: "Most Popular", URL: prefix + "/personas/?sort=users", Featured: true},
		{Name: "Top Rated", URL: prefix + "/personas/?sort=rating", Featured: true},
		{Name: "Newest", URL: prefix + "/personas/?sort=created", Featured: true},
	}, categoryItems(models.KindPersona, "/personas/")...)

	themes := append([]NavItem{
		{Name: "Most Popular", URL: prefix + "/themes/?sort=users", Featured: true},
		{Name: "Top Rated", URL: prefix + "/themes/?sort=rating", Featured: true},
		{Name: "Newest", URL: prefix + "/themes/?sort=created", Featured: true},
	}, categoryItems(models.KindTheme, "/themes/")...)

	collections := []NavItem{
		{Name: "Featured", URL: prefix + "/collections/?sort=featured", Featured: true},
		{Name: "Most Followers", URL: prefix + "/collections/?sort=followers", Featured: true},
		{Name: "Newest", URL: prefix + "/collections/?sort=created", Featured: true},
		{Name: "Collections I've Made", URL: prefix + "/collections/?sort=mine"},
		{Name: "Collections I'm Following", URL: prefix + "/collections/?sort=following"},
		{Name: "My Favorite Add-ons", URL: prefix + "/collections/?sort=favorites"},
	}

	more := []NavItem{
		{Name: "Add-ons for Mobile", URL: "/" + locale + "/mobile/"},
		{Name: "Dictionaries & Language Packs", URL: prefix + "/extensions/language-support/"},
		{Name: "Search Tools", URL: prefix + "/search/?q=search"},
		{Name: "Developer Hub", URL: "https://developer.mozilla.org/en-US/Add-ons"},
	}

	return []NavMenu{
		{ID: "extensions", Name: "EXTENSIONS", URL: prefix + "/extensions/", Items: extensions},
		{ID: "personas", Name: "PERSONAS", URL: prefix + "/personas/", Items: personas},
		{ID: "themes", Name: "THEMES", URL: prefix + "/themes/", Items: themes},
		{ID: "collections", Name: "COLLECTIONS", URL: prefix + "/collections/", Items: collections},
		{ID: "more", Name: "MORE…", URL: "#", Items: more},
	}
}

// AddonItem is an add-on rendered in a listing, together with what the
// listing markup needs from the layout
type AddonItem struct {
	*models.Addon
	Prefix  string
	AppName string
}

var funcs = template.FuncMap{
	"commas": func(n int) string { return humanize.Comma(int64(n)) },
	"date":   func(t time.Time) string { return t.Format("January 2, 2006") },
	"item": func(layout LayoutData, a *models.Addon) AddonItem {
		return AddonItem{Addon: a, Prefix: layout.Prefix, AppName: layout.App.Name}
	},
}

// parsePage parses the shared layout together with one page template
func parsePage(templatesDir, name string) (*template.Template, error) {
	return template.New(name).Funcs(funcs).ParseFiles(
		filepath.Join(templatesDir, "layout.html"),
		filepath.Join(templatesDir, name),
	)
}

func render(w http.ResponseWriter, tmpl *template.Template, data LayoutData) {
	renderStatus(w, tmpl, data, http.StatusOK)
}

// renderStatus executes the layout into a buffer so a failed execution still
// produces a clean 500
func renderStatus(w http.ResponseWriter, tmpl *template.Template, data LayoutData, status int) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		log.Printf("Error rendering %s: %v", tmpl.Name(), err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// Pagination describes the paginator under a listing
type Pagination struct {
	Page    int
	Pages   int
	Total   int
	From    int
	To      int
	First   string
	Prev    string
	Next    string
	Last    string
	Current string
	HasPrev bool
	HasNext bool
}

func newPagination(r *http.Request, page, pages, total, perPage int) Pagination {
	link := func(n int) string {
		q := r.URL.Query()
		q.Set("page", strconv.Itoa(n))
		return "?" + q.Encode()
	}

	from, to := 0, 0
	if total > 0 {
		from = (page-1)*perPage + 1
		to = min(page*perPage, total)
	}

	return Pagination{
		Page:    page,
		Pages:   pages,
		Total:   total,
		From:    from,
		To:      to,
		First:   link(1),
		Prev:    link(max(page-1, 1)),
		Next:    link(min(page+1, pages)),
		Last:    link(pages),
		Current: link(page),
		HasPrev: page > 1,
		HasNext: page < pages,
	}
}

// pageParam returns the 1-based page requested in the query string
func pageParam(r *http.Request) int {
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// localRedirect returns to when it is a path on this site, else fallback
func localRedirect(to, fallback string) string {
	u, err := url.Parse(to)
	if err != nil || to == "" || u.IsAbs() || u.Host != "" || !strings.HasPrefix(u.Path, "/") {
		return fallback
	}
	return to
}
