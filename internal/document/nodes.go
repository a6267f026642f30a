package document

import (
	"strings"

	"golang.org/x/net/html"
)

// walk visits the descendants of root in document order, excluding root
func walk(root *html.Node, visit func(*html.Node)) {
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		visit(c)
		walk(c, visit)
	}
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, name) {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, name string) bool {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, name) {
			return true
		}
	}
	return false
}

func setAttr(n *html.Node, name, value string) {
	for i, a := range n.Attr {
		if strings.EqualFold(a.Key, name) {
			n.Attr[i].Val = value
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: name, Val: value})
}

func removeAttr(n *html.Node, name string) {
	kept := n.Attr[:0]
	for _, a := range n.Attr {
		if !strings.EqualFold(a.Key, name) {
			kept = append(kept, a)
		}
	}
	n.Attr = kept
}

// ancestor returns the nearest proper ancestor with the given tag
func ancestor(n *html.Node, tag string) *html.Node {
	for p := n.Parent; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && p.Data == tag {
			return p
		}
	}
	return nil
}

// closest is like ancestor but considers n itself first
func closest(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	return ancestor(n, tag)
}

func firstDescendant(n *html.Node, tag string) *html.Node {
	var found *html.Node
	walk(n, func(c *html.Node) {
		if found == nil && c.Type == html.ElementNode && c.Data == tag {
			found = c
		}
	})
	return found
}

func nodeText(n *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return b.String()
}

// collectVisibleText appends the text of displayed descendants, putting a
// space between block boundaries
func collectVisibleText(n *html.Node, b *strings.Builder) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case html.TextNode:
			b.WriteString(c.Data)
		case html.ElementNode:
			if c.Data == "script" || c.Data == "style" || c.Data == "template" || !selfDisplayed(c) {
				continue
			}
			if c.Data == "br" {
				b.WriteString(" ")
				continue
			}
			b.WriteString(" ")
			collectVisibleText(c, b)
			b.WriteString(" ")
		}
	}
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// inlineStyle parses the style attribute into lower-cased properties
func inlineStyle(n *html.Node) map[string]string {
	props := map[string]string{}
	for _, decl := range strings.Split(attr(n, "style"), ";") {
		name, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		props[strings.ToLower(strings.TrimSpace(name))] = strings.TrimSpace(value)
	}
	return props
}

func selfDisplayed(n *html.Node) bool {
	if hasAttr(n, "hidden") {
		return false
	}
	if n.Data == "input" && strings.EqualFold(attr(n, "type"), "hidden") {
		return false
	}
	style := inlineStyle(n)
	return style["display"] != "none" && style["visibility"] != "hidden"
}

// displayed reports whether n and all of its ancestors are displayed
func displayed(n *html.Node) bool {
	for c := n; c != nil; c = c.Parent {
		if c.Type == html.ElementNode && !selfDisplayed(c) {
			return false
		}
	}
	return true
}

func optionValue(n *html.Node) string {
	if hasAttr(n, "value") {
		return attr(n, "value")
	}
	return normalizeSpace(nodeText(n))
}

func selectedOption(sel *html.Node) string {
	var first, selected *html.Node
	walk(sel, func(n *html.Node) {
		if n.Type != html.ElementNode || n.Data != "option" {
			return
		}
		if first == nil {
			first = n
		}
		if selected == nil && hasAttr(n, "selected") {
			selected = n
		}
	})
	if selected != nil {
		return optionValue(selected)
	}
	if first != nil {
		return optionValue(first)
	}
	return ""
}
