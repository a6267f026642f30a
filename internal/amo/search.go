package amo

import (
	"strings"

	"github.com/Marlena/Addon-Tests/internal/page"
)

var (
	resultCountTextLocator = page.ByCSS("p.cnt")
	noResultsLocator       = page.ByCSS("p.no-results")
	searchResultsLocator   = page.ByCSS("div.items div.item")
	resultNameLocator      = page.ByCSS(".info h3 a")
)

// Search is the search result listing
type Search struct {
	Base
}

// NewSearch wraps the results for term currently loaded in p's session
func NewSearch(p *page.Page, site, term string) *Search {
	title := fixedTitle("Search")
	if term = strings.TrimSpace(term); term != "" {
		title = fixedTitle(term, "Search")
	}
	return &Search{Base: newBase(p, site, title)}
}

// NumberOfResultsText returns the summary line, e.g. "12 matching results"
func (s *Search) NumberOfResultsText() (string, error) {
	return s.Text(resultCountTextLocator)
}

// IsNoResultsPresent reports whether the empty result notice is shown
func (s *Search) IsNoResultsPresent() (bool, error) {
	return s.IsPresent(noResultsLocator)
}

// NoResultsText returns the empty result notice
func (s *Search) NoResultsText() (string, error) {
	return s.Text(noResultsLocator)
}

// ResultCount returns the number of results on the current page
func (s *Search) ResultCount() (int, error) {
	return s.Count(searchResultsLocator)
}

// Result returns the index-th result on the current page
func (s *Search) Result(index int) (*SearchResult, error) {
	r, err := s.Select(searchResultsLocator, index)
	if err != nil {
		return nil, err
	}
	return &SearchResult{Page: r, site: s.site}, nil
}

// Results returns every result on the current page
func (s *Search) Results() ([]*SearchResult, error) {
	regions, err := s.Regions(searchResultsLocator)
	if err != nil {
		return nil, err
	}
	results := make([]*SearchResult, 0, len(regions))
	for _, r := range regions {
		results = append(results, &SearchResult{Page: r, site: s.site})
	}
	return results, nil
}

// Paginator returns the page navigation under the results
func (s *Search) Paginator() *Paginator {
	return &Paginator{page: s.Page}
}

// SearchResult is one add-on in the result listing
type SearchResult struct {
	*page.Page
	site string
}

// Name returns the add-on name
func (r *SearchResult) Name() (string, error) {
	return r.Text(resultNameLocator)
}

// ResultText returns the visible text of the whole result
func (r *SearchResult) ResultText() (string, error) {
	return r.RootText()
}

// ClickResult opens the add-on
func (r *SearchResult) ClickResult() (*Details, error) {
	if err := clickAndWait(r.Page, resultNameLocator); err != nil {
		return nil, err
	}
	return NewDetails(r.Page, r.site), nil
}
