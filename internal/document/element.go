package document

import (
	"fmt"
	"strings"

	"github.com/Marlena/Addon-Tests/internal/page"
	"golang.org/x/net/html"
)

// Element is a node of the session's current document
type Element struct {
	session    *Session
	node       *html.Node
	generation int
}

func (e *Element) check() error {
	if e.generation != e.session.generation {
		return ErrStaleElement
	}
	return nil
}

// FindAll resolves l among the descendants of the element
func (e *Element) FindAll(l page.Locator) ([]page.Element, error) {
	if err := e.check(); err != nil {
		return nil, err
	}
	return e.session.findUnder(e.node, l)
}

// Text returns the whitespace-normalized text of the displayed descendants
func (e *Element) Text() (string, error) {
	if err := e.check(); err != nil {
		return "", err
	}
	if !displayed(e.node) {
		return "", nil
	}
	var b strings.Builder
	collectVisibleText(e.node, &b)
	return normalizeSpace(b.String()), nil
}

// Attribute returns the attribute value, or "" when it is not set
func (e *Element) Attribute(name string) (string, error) {
	if err := e.check(); err != nil {
		return "", err
	}
	return attr(e.node, name), nil
}

// CSSValue returns a property declared in the element's inline style
func (e *Element) CSSValue(property string) (string, error) {
	if err := e.check(); err != nil {
		return "", err
	}
	if v, ok := inlineStyle(e.node)[strings.ToLower(property)]; ok {
		return v, nil
	}
	return "", fmt.Errorf("%w: computed style %q", page.ErrUnsupported, property)
}

// IsVisible reports whether neither the element nor an ancestor is hidden
func (e *Element) IsVisible() (bool, error) {
	if err := e.check(); err != nil {
		return false, err
	}
	return displayed(e.node), nil
}

// Click follows links, toggles checkboxes and radios, and submits forms
func (e *Element) Click() error {
	if err := e.check(); err != nil {
		return err
	}
	n := e.node

	if n.Data == "input" {
		switch strings.ToLower(attr(n, "type")) {
		case "checkbox":
			if hasAttr(n, "checked") {
				removeAttr(n, "checked")
			} else {
				setAttr(n, "checked", "checked")
			}
			return nil
		case "radio":
			checkRadio(n)
			return nil
		}
	}

	if isSubmitter(n) {
		if form := ancestor(n, "form"); form != nil {
			return e.session.submit(form, n)
		}
		return nil
	}

	if link := closest(n, "a"); link != nil {
		href := strings.TrimSpace(attr(link, "href"))
		if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(href, "javascript:") {
			return nil
		}
		return e.session.Navigate(href)
	}

	if label := closest(n, "label"); label != nil {
		if input := firstDescendant(label, "input"); input != nil {
			return (&Element{session: e.session, node: input, generation: e.generation}).Click()
		}
	}
	return nil
}

// Hover is a no-op; static documents have no pointer state
func (e *Element) Hover() error {
	return e.check()
}

// Fill sets the value of an input, textarea or select
func (e *Element) Fill(value string) error {
	if err := e.check(); err != nil {
		return err
	}
	switch e.node.Data {
	case "input":
		setAttr(e.node, "value", value)
	case "textarea":
		for c := e.node.FirstChild; c != nil; {
			next := c.NextSibling
			e.node.RemoveChild(c)
			c = next
		}
		e.node.AppendChild(&html.Node{Type: html.TextNode, Data: value})
	case "select":
		walk(e.node, func(n *html.Node) {
			if n.Type == html.ElementNode && n.Data == "option" {
				if optionValue(n) == value {
					setAttr(n, "selected", "selected")
				} else {
					removeAttr(n, "selected")
				}
			}
		})
	default:
		return fmt.Errorf("%w: fill on <%s>", page.ErrUnsupported, e.node.Data)
	}
	return nil
}

// Press handles Enter inside a form field as an implicit submission; other
// keys are ignored
func (e *Element) Press(key string) error {
	if err := e.check(); err != nil {
		return err
	}
	if key != "Enter" {
		return nil
	}
	if form := ancestor(e.node, "form"); form != nil {
		return e.session.submit(form, nil)
	}
	return nil
}

func isSubmitter(n *html.Node) bool {
	switch n.Data {
	case "button":
		t := strings.ToLower(attr(n, "type"))
		return t == "" || t == "submit"
	case "input":
		t := strings.ToLower(attr(n, "type"))
		return t == "submit" || t == "image"
	}
	return false
}

func checkRadio(n *html.Node) {
	name := attr(n, "name")
	scope := ancestor(n, "form")
	if scope == nil {
		scope = n.Parent
	}
	walk(scope, func(o *html.Node) {
		if o.Type == html.ElementNode && o.Data == "input" && strings.EqualFold(attr(o, "type"), "radio") && attr(o, "name") == name {
			removeAttr(o, "checked")
		}
	})
	setAttr(n, "checked", "checked")
}
