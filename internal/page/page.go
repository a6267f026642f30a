package page

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// Page is a handle on the current document of a session. A Page created by
// Region resolves its locators under a root element instead of the whole
// document; nothing else differs between the two.
type Page struct {
	session Session
	root    Element
}

// New creates a page rooted at the session's document
func New(session Session) *Page {
	return &Page{session: session}
}

// Session returns the borrowed session
func (p *Page) Session() Session {
	return p.session
}

// Root returns the region root, or nil for a document page
func (p *Page) Root() Element {
	return p.root
}

// IsRegion reports whether the page is scoped to a root element
func (p *Page) IsRegion() bool {
	return p.root != nil
}

// Document returns an unscoped page on the same session
func (p *Page) Document() *Page {
	if p.root == nil {
		return p
	}
	return New(p.session)
}

// Region returns a page scoped to the subtree of root
func (p *Page) Region(root Element) *Page {
	return &Page{session: p.session, root: root}
}

func (p *Page) finder() Finder {
	if p.root != nil {
		return p.root
	}
	return p.session
}

// FindAll resolves every match of l in document order. No match is an empty
// slice, not an error.
func (p *Page) FindAll(l Locator) ([]Element, error) {
	elements, err := p.finder().FindAll(l)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", l, err)
	}
	return elements, nil
}

// Find resolves the first match of l in document order
func (p *Page) Find(l Locator) (Element, error) {
	elements, err := p.FindAll(l)
	if err != nil {
		return nil, err
	}
	if len(elements) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, l)
	}
	return elements[0], nil
}

// IsPresent reports whether l matches anything. Only ErrNotFound is turned
// into false; other session errors are returned.
func (p *Page) IsPresent(l Locator) (bool, error) {
	_, err := p.Find(l)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// IsVisible reports whether the first match of l is present and displayed
func (p *Page) IsVisible(l Locator) (bool, error) {
	el, err := p.Find(l)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return el.IsVisible()
}

// Regions wraps every match of l as a region
func (p *Page) Regions(l Locator) ([]*Page, error) {
	elements, err := p.FindAll(l)
	if err != nil {
		return nil, err
	}
	regions := make([]*Page, 0, len(elements))
	for _, el := range elements {
		regions = append(regions, p.Region(el))
	}
	return regions, nil
}

// Select returns the index-th match of l as a region
func (p *Page) Select(l Locator, index int) (*Page, error) {
	elements, err := p.FindAll(l)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(elements) {
		return nil, fmt.Errorf("%w: index %d of %d for %s", ErrNotFound, index, len(elements), l)
	}
	return p.Region(elements[index]), nil
}

// RootText returns the visible text of the region root
func (p *Page) RootText() (string, error) {
	if p.root == nil {
		return "", fmt.Errorf("%w: text of a document page", ErrUnsupported)
	}
	return p.root.Text()
}

// RootAttribute returns an attribute of the region root
func (p *Page) RootAttribute(name string) (string, error) {
	if p.root == nil {
		return "", fmt.Errorf("%w: attribute of a document page", ErrUnsupported)
	}
	return p.root.Attribute(name)
}

// Navigate loads url in the session
func (p *Page) Navigate(url string) error {
	if err := p.session.Navigate(url); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	return nil
}

// URL returns the session's current URL
func (p *Page) URL() string {
	return p.session.URL()
}

// Title returns the current document title
func (p *Page) Title() (string, error) {
	return p.session.Title()
}

// Count returns the number of matches of l
func (p *Page) Count(l Locator) (int, error) {
	elements, err := p.FindAll(l)
	if err != nil {
		return 0, err
	}
	return len(elements), nil
}

// Text returns the visible text of the first match of l
func (p *Page) Text(l Locator) (string, error) {
	el, err := p.Find(l)
	if err != nil {
		return "", err
	}
	return el.Text()
}

// Texts returns the visible text of every match of l
func (p *Page) Texts(l Locator) ([]string, error) {
	elements, err := p.FindAll(l)
	if err != nil {
		return nil, err
	}
	texts := make([]string, 0, len(elements))
	for _, el := range elements {
		text, err := el.Text()
		if err != nil {
			return nil, err
		}
		texts = append(texts, text)
	}
	return texts, nil
}

// Attribute returns an attribute of the first match of l
func (p *Page) Attribute(l Locator, name string) (string, error) {
	el, err := p.Find(l)
	if err != nil {
		return "", err
	}
	return el.Attribute(name)
}

// CSSValue returns a computed style property of the first match of l
func (p *Page) CSSValue(l Locator, property string) (string, error) {
	el, err := p.Find(l)
	if err != nil {
		return "", err
	}
	return el.CSSValue(property)
}

// Click clicks the first match of l
func (p *Page) Click(l Locator) error {
	el, err := p.Find(l)
	if err != nil {
		return err
	}
	return el.Click()
}

// Hover moves the pointer over the first match of each locator in turn.
// Each locator is resolved right before its hover.
func (p *Page) Hover(ls ...Locator) error {
	for _, l := range ls {
		el, err := p.Find(l)
		if err != nil {
			return err
		}
		if err := el.Hover(); err != nil {
			return fmt.Errorf("failed to hover %s: %w", l, err)
		}
	}
	return nil
}

// Fill replaces the value of the first match of l
func (p *Page) Fill(l Locator, value string) error {
	el, err := p.Find(l)
	if err != nil {
		return err
	}
	return el.Fill(value)
}

// Submit presses Enter in the first match of l
func (p *Page) Submit(l Locator) error {
	el, err := p.Find(l)
	if err != nil {
		return err
	}
	return el.Press("Enter")
}

// Integers extracts integers from the texts of every match of l
func (p *Page) Integers(re *regexp.Regexp, l Locator) ([]int, error) {
	texts, err := p.Texts(l)
	if err != nil {
		return nil, err
	}
	return ExtractIntegers(re, texts), nil
}

// Dates parses dates from the texts of every match of l
func (p *Page) Dates(layout string, l Locator) ([]time.Time, error) {
	texts, err := p.Texts(l)
	if err != nil {
		return nil, err
	}
	return ExtractDates(layout, texts), nil
}
