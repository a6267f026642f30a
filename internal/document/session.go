// Package document implements page.Session over static HTML. Documents are
// fetched over HTTP and parsed with goquery; no JavaScript runs, so hover is a
// no-op and only inline styles are visible to CSSValue.
package document

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/Marlena/Addon-Tests/internal/page"
	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/antchfx/htmlquery"
	"golang.org/x/net/html"
)

// ErrStaleElement is returned when an element from a previous document is used
var ErrStaleElement = errors.New("element belongs to a previous document")

// Session is a browserless page.Session
type Session struct {
	client     *http.Client
	doc        *goquery.Document
	current    *url.URL
	history    []string
	generation int
}

// NewSession creates a session using client for every request. A nil client
// is replaced by one with a cookie jar so logins persist across navigations.
func NewSession(client *http.Client) *Session {
	if client == nil {
		jar, _ := cookiejar.New(nil)
		client = &http.Client{Jar: jar}
	}
	return &Session{client: client}
}

// Load replaces the current document with body, as if it had been served
// from baseURL
func (s *Session) Load(baseURL string, body io.Reader) error {
	u, err := url.Parse(baseURL)
	if err != nil {
		return fmt.Errorf("invalid base url: %w", err)
	}
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return fmt.Errorf("failed to parse document: %w", err)
	}
	s.replace(u, doc)
	return nil
}

// Navigate loads rawURL, resolved against the current URL
func (s *Session) Navigate(rawURL string) error {
	target, err := s.resolve(rawURL)
	if err != nil {
		return err
	}
	req, err := http.NewRequest(http.MethodGet, target.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return s.do(req)
}

// URL returns the URL of the current document
func (s *Session) URL() string {
	if s.current == nil {
		return ""
	}
	return s.current.String()
}

// Title returns the trimmed text of the document's title element
func (s *Session) Title() (string, error) {
	if s.doc == nil {
		return "", fmt.Errorf("%w: no document loaded", page.ErrNotFound)
	}
	return strings.TrimSpace(s.doc.Find("title").First().Text()), nil
}

// Back reloads the previous document in history
func (s *Session) Back() error {
	if len(s.history) < 2 {
		return errors.New("no previous document")
	}
	previous := s.history[len(s.history)-2]
	s.history = s.history[:len(s.history)-2]
	return s.Navigate(previous)
}

// FindAll resolves l against the whole document
func (s *Session) FindAll(l page.Locator) ([]page.Element, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("%w: no document loaded", page.ErrNotFound)
	}
	return s.findUnder(s.doc.Selection.Nodes[0], l)
}

func (s *Session) findUnder(root *html.Node, l page.Locator) ([]page.Element, error) {
	nodes, err := s.match(root, l)
	if err != nil {
		return nil, err
	}
	elements := make([]page.Element, 0, len(nodes))
	for _, n := range nodes {
		elements = append(elements, &Element{session: s, node: n, generation: s.generation})
	}
	return elements, nil
}

// match returns the descendants of root selected by l in document order
func (s *Session) match(root *html.Node, l page.Locator) ([]*html.Node, error) {
	var pred func(*html.Node) bool

	switch l.Strategy {
	case page.CSS:
		sel, err := cascadia.Compile(l.Value)
		if err != nil {
			return nil, fmt.Errorf("invalid css selector %q: %w", l.Value, err)
		}
		pred = sel.Match
	case page.XPath:
		found, err := htmlquery.QueryAll(root, l.Value)
		if err != nil {
			return nil, fmt.Errorf("invalid xpath %q: %w", l.Value, err)
		}
		set := make(map[*html.Node]bool, len(found))
		for _, n := range found {
			set[n] = true
		}
		pred = func(n *html.Node) bool { return set[n] }
	case page.ID:
		pred = func(n *html.Node) bool { return attr(n, "id") == l.Value }
	case page.LinkText:
		pred = func(n *html.Node) bool {
			return n.Data == "a" && normalizeSpace(nodeText(n)) == l.Value
		}
	default:
		return nil, fmt.Errorf("%w: strategy %s", page.ErrUnsupported, l.Strategy)
	}

	var out []*html.Node
	walk(root, func(n *html.Node) {
		if n.Type == html.ElementNode && pred(n) {
			out = append(out, n)
		}
	})
	return out, nil
}

func (s *Session) resolve(rawURL string) (*url.URL, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid url %q: %w", rawURL, err)
	}
	if s.current != nil {
		u = s.current.ResolveReference(u)
	}
	if !u.IsAbs() {
		return nil, fmt.Errorf("cannot navigate to relative url %q without a document", rawURL)
	}
	return u, nil
}

func (s *Session) do(req *http.Request) error {
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", req.URL, err)
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", req.URL, err)
	}
	s.replace(resp.Request.URL, doc)
	return nil
}

func (s *Session) replace(u *url.URL, doc *goquery.Document) {
	s.doc = doc
	s.current = u
	s.generation++
	s.history = append(s.history, u.String())
}

// submit sends form the way a browser would, including submitter's own
// name/value pair when it has one
func (s *Session) submit(form, submitter *html.Node) error {
	values := url.Values{}
	walk(form, func(n *html.Node) {
		if n.Type != html.ElementNode || attr(n, "name") == "" || hasAttr(n, "disabled") {
			return
		}
		name := attr(n, "name")
		switch n.Data {
		case "input":
			switch strings.ToLower(attr(n, "type")) {
			case "submit", "button", "image", "reset":
				if n == submitter {
					values.Add(name, attr(n, "value"))
				}
			case "checkbox", "radio":
				if hasAttr(n, "checked") {
					v := attr(n, "value")
					if v == "" {
						v = "on"
					}
					values.Add(name, v)
				}
			default:
				values.Add(name, attr(n, "value"))
			}
		case "textarea":
			values.Add(name, nodeText(n))
		case "select":
			values.Add(name, selectedOption(n))
		case "button":
			if n == submitter {
				values.Add(name, attr(n, "value"))
			}
		}
	})

	action, err := s.resolve(attr(form, "action"))
	if err != nil {
		return err
	}

	if strings.EqualFold(attr(form, "method"), http.MethodPost) {
		req, err := http.NewRequest(http.MethodPost, action.String(), strings.NewReader(values.Encode()))
		if err != nil {
			return fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		return s.do(req)
	}

	action.RawQuery = values.Encode()
	action.Fragment = ""
	req, err := http.NewRequest(http.MethodGet, action.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	return s.do(req)
}
