package page

import "fmt"

// Strategy is the way a locator value selects elements
type Strategy int

// Selection strategies
const (
	CSS Strategy = iota
	XPath
	ID
	LinkText
)

// String returns the strategy name
func (s Strategy) String() string {
	switch s {
	case CSS:
		return "css"
	case XPath:
		return "xpath"
	case ID:
		return "id"
	case LinkText:
		return "link text"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// Locator identifies zero or more elements relative to a root
type Locator struct {
	Strategy Strategy
	Value    string
}

// ByCSS returns a CSS selector locator
func ByCSS(selector string) Locator {
	return Locator{Strategy: CSS, Value: selector}
}

// ByXPath returns an XPath locator
func ByXPath(expr string) Locator {
	return Locator{Strategy: XPath, Value: expr}
}

// ByID returns a locator matching the element with the given id attribute
func ByID(id string) Locator {
	return Locator{Strategy: ID, Value: id}
}

// ByLinkText returns a locator matching links whose visible text equals text
func ByLinkText(text string) Locator {
	return Locator{Strategy: LinkText, Value: text}
}

// Format returns a copy of the locator with its value used as a format string.
func (l Locator) Format(args ...any) Locator {
	return Locator{Strategy: l.Strategy, Value: fmt.Sprintf(l.Value, args...)}
}

// String returns a readable form used in error messages
func (l Locator) String() string {
	return fmt.Sprintf("%s=%q", l.Strategy, l.Value)
}
