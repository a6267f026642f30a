package amo

import (
	"fmt"

	"github.com/Marlena/Addon-Tests/internal/page"
)

var (
	paginatorLocator     = page.ByCSS("nav.paginator")
	paginatorLinkLocator = page.ByCSS("p.rel > a:nth-child(%d)")
	currentPageLocator   = page.ByCSS("p.num a.selected")
)

// Positions of the paginator links
const (
	firstPageLink = iota + 1
	prevPageLink
	nextPageLink
	lastPageLink
)

const disabledClass = "disabled"

// Paginator is the page navigation under a listing. It is looked up again
// on every call since each click loads a new document.
type Paginator struct {
	page *page.Page
}

func (p *Paginator) region() (*page.Page, error) {
	return p.page.Document().Select(paginatorLocator, 0)
}

func (p *Paginator) click(link int) error {
	r, err := p.region()
	if err != nil {
		return err
	}
	return clickAndWait(r, paginatorLinkLocator.Format(link))
}

func (p *Paginator) isDisabled(link int) (bool, error) {
	r, err := p.region()
	if err != nil {
		return false, err
	}
	classes, err := r.Attribute(paginatorLinkLocator.Format(link), "class")
	if err != nil {
		return false, err
	}
	return hasClass(classes, disabledClass), nil
}

// ClickFirstPage jumps to the first page
func (p *Paginator) ClickFirstPage() error {
	return p.click(firstPageLink)
}

// ClickPrevPage goes back one page
func (p *Paginator) ClickPrevPage() error {
	return p.click(prevPageLink)
}

// ClickNextPage goes forward one page
func (p *Paginator) ClickNextPage() error {
	return p.click(nextPageLink)
}

// ClickLastPage jumps to the last page
func (p *Paginator) ClickLastPage() error {
	return p.click(lastPageLink)
}

// PageNumber returns the current page, counting from 1
func (p *Paginator) PageNumber() (int, error) {
	r, err := p.region()
	if err != nil {
		return 0, err
	}
	numbers, err := r.Integers(countPattern, currentPageLocator)
	if err != nil {
		return 0, err
	}
	if len(numbers) == 0 {
		return 0, fmt.Errorf("%w: current page number", page.ErrNotFound)
	}
	return numbers[0], nil
}

// IsNextPageDisabled reports whether the listing is on its last page
func (p *Paginator) IsNextPageDisabled() (bool, error) {
	return p.isDisabled(nextPageLink)
}

// IsPrevPageDisabled reports whether the listing is on its first page
func (p *Paginator) IsPrevPageDisabled() (bool, error) {
	return p.isDisabled(prevPageLink)
}
