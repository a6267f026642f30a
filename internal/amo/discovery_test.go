package amo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const discoveryPanePath = "pane/13.0/Darwin/normal"

func openDiscovery(t *testing.T) *Discovery {
	t.Helper()
	p, site, _ := openSite(t)
	discovery, err := OpenDiscovery(p, site, discoveryPanePath)
	require.NoError(t, err)
	return discovery
}

func TestDiscovery_Sections(t *testing.T) {
	discovery := openDiscovery(t)

	ok, err := discovery.IsTheCurrentPage()
	require.NoError(t, err)
	assert.True(t, ok)

	intro, err := discovery.WhatAreAddonsText()
	require.NoError(t, err)
	assert.Contains(t, intro, "Add-ons are applications that let you personalize Firefox with extra functionality or style.")

	mission, err := discovery.MissionSectionText()
	require.NoError(t, err)
	assert.Contains(t, mission, "Mozilla is a non-profit organization")
	visible, err := discovery.IsMozillaOrgLinkVisible()
	require.NoError(t, err)
	assert.True(t, visible)
	link, err := discovery.MozillaOrgLink()
	require.NoError(t, err)
	assert.Equal(t, "https://www.mozilla.org/about/", link)

	visible, err = discovery.IsLearnMoreVisible()
	require.NoError(t, err)
	assert.True(t, visible)
	learnMore, err := discovery.LearnMoreText()
	require.NoError(t, err)
	assert.Equal(t, "Learn More", learnMore)

	downloads, err := discovery.DownloadCountText()
	require.NoError(t, err)
	assert.Regexp(t, `^[\d,]+ add-ons downloaded this week$`, downloads)

	count, err := discovery.UpAndComingItemCount()
	require.NoError(t, err)
	assert.Equal(t, 5, count)
}

func TestDiscovery_Personas(t *testing.T) {
	discovery := openDiscovery(t)

	visible, err := discovery.IsPersonasSectionVisible()
	require.NoError(t, err)
	assert.True(t, visible)
	seeAll, err := discovery.IsPersonasSeeAllLinkVisible()
	require.NoError(t, err)
	assert.True(t, seeAll)
	count, err := discovery.PersonasCount()
	require.NoError(t, err)
	assert.Equal(t, 6, count)

	first, err := discovery.FirstPersona()
	require.NoError(t, err)
	persona, err := discovery.ClickOnFirstPersona()
	require.NoError(t, err)

	ok, err := persona.IsTheCurrentPage()
	require.NoError(t, err)
	assert.True(t, ok)
	title, err := persona.PersonaTitle()
	require.NoError(t, err)
	assert.Equal(t, first, title)
}

func TestDiscovery_MoreWays(t *testing.T) {
	discovery := openDiscovery(t)

	visible, err := discovery.IsMoreWaysSectionVisible()
	require.NoError(t, err)
	assert.True(t, visible)
	browse, err := discovery.BrowseAllAddons()
	require.NoError(t, err)
	assert.Equal(t, "Browse all add-ons", browse)
	personas, err := discovery.SeeAllPersonas()
	require.NoError(t, err)
	assert.Equal(t, "See all Personas", personas)
}

func TestDiscovery_Sliders(t *testing.T) {
	discovery := openDiscovery(t)

	sliders, err := discovery.Sliders()
	require.NoError(t, err)
	require.Len(t, sliders, 4)

	heading, err := sliders[0].HeaderName()
	require.NoError(t, err)
	assert.Equal(t, "Get started with add-ons", heading)

	next, err := sliders[0].OpacityForNext()
	require.NoError(t, err)
	assert.Equal(t, "1", next)
	prev, err := sliders[0].OpacityForPrevious()
	require.NoError(t, err)
	assert.Equal(t, "0.5", prev)

	// the carousel only moves with scripts running
	require.NoError(t, sliders[0].ClickNext())
	require.NoError(t, sliders[0].ClickPrevious())
	heading, err = sliders[0].HeaderName()
	require.NoError(t, err)
	assert.Equal(t, "Get started with add-ons", heading)
}

func TestGallery_Personas(t *testing.T) {
	p, site, _ := openSite(t)
	personas, err := OpenPersonas(p, site)
	require.NoError(t, err)

	ok, err := personas.IsTheCurrentPage()
	require.NoError(t, err)
	assert.True(t, ok)
	count, err := personas.PersonaCount()
	require.NoError(t, err)
	assert.Equal(t, 8, count)
	featured, err := personas.FeaturedCount()
	require.NoError(t, err)
	assert.Equal(t, 6, featured)
}

func TestGallery_Collections(t *testing.T) {
	tests := []struct {
		sort    string
		heading string
		count   int
	}{
		{"featured", "Featured Collections", 4},
		{"followers", "Most Followers Collections", 5},
	}

	for _, tt := range tests {
		t.Run(tt.sort, func(t *testing.T) {
			p, site, _ := openSite(t)
			collections, err := OpenCollections(p, site, tt.sort)
			require.NoError(t, err)

			ok, err := collections.IsTheCurrentPage()
			require.NoError(t, err)
			assert.True(t, ok)
			heading, err := collections.Heading()
			require.NoError(t, err)
			assert.Equal(t, tt.heading, heading)
			count, err := collections.CollectionCount()
			require.NoError(t, err)
			assert.Equal(t, tt.count, count)
			names, err := collections.CollectionNames()
			require.NoError(t, err)
			assert.Len(t, names, count)
		})
	}
}
