package amo

import (
	"fmt"
	"strings"

	"github.com/Marlena/Addon-Tests/internal/page"
)

var (
	introLocator             = page.ByCSS("#intro p")
	missionLocator           = page.ByCSS("#mission > p")
	learnMoreLocator         = page.ByID("learn-more")
	mozillaLinkLocator       = page.ByCSS("#mission a")
	downloadCountLocator     = page.ByID("download-count")
	discoveryPersonasLocator = page.ByID("featured-personas")
	personasSeeAllLocator    = page.ByCSS("#featured-personas .all[href='%s/personas/']")
	discoveryPersonaItems    = page.ByCSS("#featured-personas ul li")
	discoveryPersonaName     = page.ByCSS("#featured-personas ul li a span.name")
	discoveryPersonaLink     = page.ByCSS("#featured-personas ul li a")
	moreWaysLocator          = page.ByID("more-ways")
	moreAddonsLocator        = page.ByID("more-addons")
	morePersonasLocator      = page.ByID("more-personas")
	upAndComingLocator       = page.ByXPath("//section[@id='up-and-coming']/ul/li/a[@class='addon-title']")
	slidersLocator           = page.ByCSS("#promos .slider li.panel")
	sliderHeadingLocator     = page.ByCSS("h2")
	sliderNextLocator        = page.ByCSS("#nav-features .nav-next a")
	sliderPrevLocator        = page.ByCSS("#nav-features .nav-prev a")
)

// Discovery is the discovery pane the browser's add-ons manager embeds
type Discovery struct {
	Base
}

// NewDiscovery wraps the discovery pane currently loaded in p's session
func NewDiscovery(p *page.Page, site string) *Discovery {
	return &Discovery{Base: newBase(p, site, fixedTitle("Discover"))}
}

// OpenDiscovery navigates to the discovery pane. path is appended to the
// pane URL; the add-ons manager passes the browser version and platform
// there.
func OpenDiscovery(p *page.Page, site, path string) (*Discovery, error) {
	d := NewDiscovery(p, site)
	if err := d.Navigate(d.site + "/discovery/" + strings.TrimLeft(path, "/")); err != nil {
		return nil, err
	}
	return d, nil
}

// WhatAreAddonsText returns the introduction paragraph
func (d *Discovery) WhatAreAddonsText() (string, error) {
	return d.Text(introLocator)
}

// MissionSectionText returns the mission paragraph
func (d *Discovery) MissionSectionText() (string, error) {
	return d.Text(missionLocator)
}

// IsLearnMoreVisible reports whether the learn more link is shown
func (d *Discovery) IsLearnMoreVisible() (bool, error) {
	return d.IsVisible(learnMoreLocator)
}

// LearnMoreText returns the learn more link text
func (d *Discovery) LearnMoreText() (string, error) {
	return d.Text(learnMoreLocator)
}

// IsMozillaOrgLinkVisible reports whether the mission links to mozilla.org
func (d *Discovery) IsMozillaOrgLinkVisible() (bool, error) {
	return d.IsVisible(mozillaLinkLocator)
}

// MozillaOrgLink returns where the mission link points
func (d *Discovery) MozillaOrgLink() (string, error) {
	return d.Attribute(mozillaLinkLocator, "href")
}

// DownloadCountText returns the weekly download counter
func (d *Discovery) DownloadCountText() (string, error) {
	return d.Text(downloadCountLocator)
}

// IsPersonasSectionVisible reports whether featured personas are shown
func (d *Discovery) IsPersonasSectionVisible() (bool, error) {
	return d.IsVisible(discoveryPersonasLocator)
}

// IsPersonasSeeAllLinkVisible reports whether the featured personas link to
// the persona gallery of this site
func (d *Discovery) IsPersonasSeeAllLinkVisible() (bool, error) {
	return d.IsVisible(personasSeeAllLocator.Format(d.sitePath()))
}

// PersonasCount returns the number of featured personas
func (d *Discovery) PersonasCount() (int, error) {
	return d.Count(discoveryPersonaItems)
}

// FirstPersona returns the name of the first featured persona
func (d *Discovery) FirstPersona() (string, error) {
	return d.Text(discoveryPersonaName)
}

// ClickOnFirstPersona opens the first featured persona
func (d *Discovery) ClickOnFirstPersona() (*DiscoveryPersonaDetail, error) {
	if err := d.clickAndWait(discoveryPersonaLink); err != nil {
		return nil, err
	}
	return NewDiscoveryPersonaDetail(d.Page, d.site), nil
}

// IsMoreWaysSectionVisible reports whether the "more ways" links are shown
func (d *Discovery) IsMoreWaysSectionVisible() (bool, error) {
	return d.IsVisible(moreWaysLocator)
}

// BrowseAllAddons returns the text of the link to every add-on
func (d *Discovery) BrowseAllAddons() (string, error) {
	return d.Text(moreAddonsLocator)
}

// SeeAllPersonas returns the text of the link to every persona
func (d *Discovery) SeeAllPersonas() (string, error) {
	return d.Text(morePersonasLocator)
}

// UpAndComingItemCount returns the number of up and coming add-ons
func (d *Discovery) UpAndComingItemCount() (int, error) {
	return d.Count(upAndComingLocator)
}

// Sliders returns the promo carousel panels
func (d *Discovery) Sliders() ([]*Slider, error) {
	regions, err := d.Regions(slidersLocator)
	if err != nil {
		return nil, err
	}
	sliders := make([]*Slider, 0, len(regions))
	for _, r := range regions {
		sliders = append(sliders, &Slider{Page: r})
	}
	return sliders, nil
}

// Slider is a panel of the promo carousel. The carousel controls sit outside
// the panel, so they are resolved on the whole document.
type Slider struct {
	*page.Page
}

// HeaderName returns the panel heading
func (s *Slider) HeaderName() (string, error) {
	return s.Text(sliderHeadingLocator)
}

// ClickNext moves the carousel forward
func (s *Slider) ClickNext() error {
	return s.Document().Click(sliderNextLocator)
}

// ClickPrevious moves the carousel back
func (s *Slider) ClickPrevious() error {
	return s.Document().Click(sliderPrevLocator)
}

// OpacityForNext returns the opacity of the next control once the pointer
// has left the carousel
func (s *Slider) OpacityForNext() (string, error) {
	return s.opacity(sliderNextLocator)
}

// OpacityForPrevious returns the opacity of the previous control once the
// pointer has left the carousel
func (s *Slider) OpacityForPrevious() (string, error) {
	return s.opacity(sliderPrevLocator)
}

func (s *Slider) opacity(l page.Locator) (string, error) {
	doc := s.Document()
	if err := doc.Hover(learnMoreLocator, l); err != nil {
		return "", fmt.Errorf("failed to hover carousel control: %w", err)
	}
	return doc.CSSValue(l, "opacity")
}

// DiscoveryPersonaDetail is a persona opened from the discovery pane
type DiscoveryPersonaDetail struct {
	Base
}

// NewDiscoveryPersonaDetail wraps the persona page currently loaded in p's
// session
func NewDiscoveryPersonaDetail(p *page.Page, site string) *DiscoveryPersonaDetail {
	d := &DiscoveryPersonaDetail{}
	d.Base = newBase(p, site, d.expectedTitle)
	return d
}

func (d *DiscoveryPersonaDetail) expectedTitle() ([]string, error) {
	return addonTitle(d.Page, 1)
}

// PersonaTitle returns the persona name
func (d *DiscoveryPersonaDetail) PersonaTitle() (string, error) {
	return d.Text(addonTitleLocator)
}
