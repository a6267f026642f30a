package amo

import "github.com/Marlena/Addon-Tests/internal/page"

var (
	personasHeaderLocator   = page.ByCSS(".personas-home > h2")
	personasFeaturedLocator = page.ByCSS("ul.personas-featured li")
	personasGridLocator     = page.ByCSS("ul.personas-grid li")
	collectionsHeadLocator  = page.ByCSS("section.primary > h1")
	collectionsItemsLocator = page.ByCSS("li.collection")
	collectionsNamesLocator = page.ByCSS("li.collection h3")
)

// Personas is the persona gallery
type Personas struct {
	Base
}

// NewPersonas wraps the persona gallery currently loaded in p's session
func NewPersonas(p *page.Page, site string) *Personas {
	return &Personas{Base: newBase(p, site, fixedTitle("Personas"))}
}

// OpenPersonas navigates to the persona gallery
func OpenPersonas(p *page.Page, site string) (*Personas, error) {
	g := NewPersonas(p, site)
	if err := g.Navigate(g.site + "/personas/"); err != nil {
		return nil, err
	}
	return g, nil
}

// PersonaHeader returns the gallery heading
func (g *Personas) PersonaHeader() (string, error) {
	return g.Text(personasHeaderLocator)
}

// FeaturedCount returns the number of featured personas
func (g *Personas) FeaturedCount() (int, error) {
	return g.Count(personasFeaturedLocator)
}

// PersonaCount returns the number of personas in the grid
func (g *Personas) PersonaCount() (int, error) {
	return g.Count(personasGridLocator)
}

// Collections is a collection listing
type Collections struct {
	Base
}

// NewCollections wraps the collection listing currently loaded in p's session
func NewCollections(p *page.Page, site string) *Collections {
	c := &Collections{}
	c.Base = newBase(p, site, c.expectedTitle)
	return c
}

// OpenCollections navigates to the collection listing sorted by sort, e.g.
// "featured" or "followers"
func OpenCollections(p *page.Page, site, sort string) (*Collections, error) {
	c := NewCollections(p, site)
	if err := c.Navigate(c.site + "/collections/?sort=" + sort); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Collections) expectedTitle() ([]string, error) {
	heading, err := c.Heading()
	if err != nil {
		return nil, err
	}
	return []string{heading}, nil
}

// Heading returns the listing heading, e.g. "Featured Collections"
func (c *Collections) Heading() (string, error) {
	return c.Text(collectionsHeadLocator)
}

// CollectionCount returns the number of collections listed
func (c *Collections) CollectionCount() (int, error) {
	return c.Count(collectionsItemsLocator)
}

// CollectionNames returns the collection names in display order
func (c *Collections) CollectionNames() ([]string, error) {
	return c.Texts(collectionsNamesLocator)
}
