package page

import "errors"

// Resolution errors
var (
	ErrNotFound    = errors.New("element not found")
	ErrUnsupported = errors.New("not supported by session")
)

// Finder resolves locators into element handles in document order
type Finder interface {
	FindAll(l Locator) ([]Element, error)
}

// Element is a short-lived handle to a DOM node. It is valid until the next
// navigation or DOM mutation and must not be kept across actions.
type Element interface {
	Finder
	Text() (string, error)
	Attribute(name string) (string, error)
	CSSValue(property string) (string, error)
	IsVisible() (bool, error)
	Click() error
	Hover() error
	Fill(value string) error
	Press(key string) error
}

// Session is the browser connection pages borrow to resolve locators against
// the current document
type Session interface {
	Finder
	Navigate(url string) error
	URL() string
	Title() (string, error)
	Back() error
}
