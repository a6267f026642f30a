package browser

import (
	"fmt"
	"strconv"

	"github.com/Marlena/Addon-Tests/internal/page"
	"github.com/playwright-community/playwright-go"
)

const computedStyleScript = `(el, property) => window.getComputedStyle(el).getPropertyValue(property)`

// Selector translates a locator into a playwright selector
func Selector(l page.Locator) (string, error) {
	switch l.Strategy {
	case page.CSS:
		return "css=" + l.Value, nil
	case page.XPath:
		return "xpath=" + l.Value, nil
	case page.ID:
		return "id=" + l.Value, nil
	case page.LinkText:
		return "a:text-is(" + strconv.Quote(l.Value) + ")", nil
	default:
		return "", fmt.Errorf("%w: strategy %s", page.ErrUnsupported, l.Strategy)
	}
}

// Session is a page.Session backed by a playwright page
type Session struct {
	context playwright.BrowserContext
	page    playwright.Page
}

// Page exposes the underlying playwright page for waits and popups
func (s *Session) Page() playwright.Page {
	return s.page
}

// FindAll queries the whole document. Playwright returns an empty slice when
// nothing matches; waiting is left to the caller.
func (s *Session) FindAll(l page.Locator) ([]page.Element, error) {
	selector, err := Selector(l)
	if err != nil {
		return nil, err
	}
	handles, err := s.page.QuerySelectorAll(selector)
	if err != nil {
		return nil, err
	}
	return wrap(handles), nil
}

// Navigate loads url and waits for the load event
func (s *Session) Navigate(url string) error {
	_, err := s.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateLoad,
	})
	return err
}

// WaitForLoad waits until the document started by the last action has fired
// its load event
func (s *Session) WaitForLoad() error {
	return s.page.WaitForLoadState(playwright.PageWaitForLoadStateOptions{
		State: playwright.LoadStateLoad,
	})
}

// URL returns the page URL
func (s *Session) URL() string {
	return s.page.URL()
}

// Title returns the document title
func (s *Session) Title() (string, error) {
	return s.page.Title()
}

// Back goes back in history
func (s *Session) Back() error {
	_, err := s.page.GoBack()
	return err
}

// Close closes the page's browser context
func (s *Session) Close() error {
	return s.context.Close()
}

func wrap(handles []playwright.ElementHandle) []page.Element {
	elements := make([]page.Element, 0, len(handles))
	for _, h := range handles {
		elements = append(elements, &Element{handle: h})
	}
	return elements
}

// Element wraps a playwright element handle
type Element struct {
	handle playwright.ElementHandle
}

// FindAll queries the element's subtree
func (e *Element) FindAll(l page.Locator) ([]page.Element, error) {
	selector, err := Selector(l)
	if err != nil {
		return nil, err
	}
	handles, err := e.handle.QuerySelectorAll(selector)
	if err != nil {
		return nil, err
	}
	return wrap(handles), nil
}

// Text returns the rendered text
func (e *Element) Text() (string, error) {
	return e.handle.InnerText()
}

// Attribute returns the attribute value, "" when absent
func (e *Element) Attribute(name string) (string, error) {
	return e.handle.GetAttribute(name)
}

// CSSValue returns the computed value of a style property
func (e *Element) CSSValue(property string) (string, error) {
	v, err := e.handle.Evaluate(computedStyleScript, property)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("unexpected computed style value %v", v)
	}
	return s, nil
}

// IsVisible reports whether the element is rendered
func (e *Element) IsVisible() (bool, error) {
	return e.handle.IsVisible()
}

// Click clicks the element
func (e *Element) Click() error {
	return e.handle.Click()
}

// Hover moves the pointer over the element
func (e *Element) Hover() error {
	return e.handle.Hover()
}

// Fill replaces the element's value
func (e *Element) Fill(value string) error {
	return e.handle.Fill(value)
}

// Press presses a key with the element focused
func (e *Element) Press(key string) error {
	return e.handle.Press(key)
}
