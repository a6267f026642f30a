//go:build e2e

package e2e

import (
	"testing"

	"github.com/Marlena/Addon-Tests/internal/amo"
)

// The add-ons manager requests the pane with the browser version and platform
const discoveryPanePath = "pane/13.0/Darwin/normal"

func openDiscovery(t *testing.T) *amo.Discovery {
	t.Helper()
	discovery, err := amo.OpenDiscovery(newPage(t), suite.SiteURL(), discoveryPanePath)
	if err != nil {
		t.Fatalf("Failed to open the discovery pane: %v", err)
	}
	if !must(discovery.IsTheCurrentPage())(t) {
		t.Fatalf("Expected the discovery pane, got %s", discovery.URL())
	}
	return discovery
}

// TestDiscoveryPane tests the static sections of the discovery pane
// Feature: Discovery pane
//
//	Scenario: Read the discovery pane
//	  Given I am on the discovery pane
//	  Then I should see what add-ons are and a learn more link
//	  And I should see the mission with a link to mozilla.org
//	  And I should see featured personas with a link to all personas
//	  And I should see more ways to customize
func TestDiscoveryPane(t *testing.T) {
	// Given I am on the discovery pane
	discovery := openDiscovery(t)

	// Then I should see what add-ons are and a learn more link
	if intro := must(discovery.WhatAreAddonsText())(t); intro == "" {
		t.Error("Expected the introduction")
	}
	if !must(discovery.IsLearnMoreVisible())(t) {
		t.Error("Expected the learn more link")
	}

	// And I should see the mission with a link to mozilla.org
	if mission := must(discovery.MissionSectionText())(t); mission == "" {
		t.Error("Expected the mission")
	}
	if !must(discovery.IsMozillaOrgLinkVisible())(t) {
		t.Error("Expected the mozilla.org link")
	}

	// And I should see featured personas with a link to all personas
	if !must(discovery.IsPersonasSectionVisible())(t) {
		t.Error("Expected the featured personas")
	}
	if !must(discovery.IsPersonasSeeAllLinkVisible())(t) {
		t.Error("Expected the link to all personas")
	}
	if count := must(discovery.PersonasCount())(t); count == 0 {
		t.Error("Expected at least one featured persona")
	}

	// And I should see more ways to customize
	if !must(discovery.IsMoreWaysSectionVisible())(t) {
		t.Error("Expected the more ways section")
	}
	if text := must(discovery.BrowseAllAddons())(t); text != "Browse all add-ons" {
		t.Errorf("Expected 'Browse all add-ons', got '%s'", text)
	}
	if text := must(discovery.SeeAllPersonas())(t); text != "See all Personas" {
		t.Errorf("Expected 'See all Personas', got '%s'", text)
	}
	if count := must(discovery.UpAndComingItemCount())(t); count != 5 {
		t.Errorf("Expected 5 up and coming add-ons, got %d", count)
	}
}

// TestDiscoveryCarousel tests the promo carousel controls
// Feature: Discovery pane
//
//	Scenario: Carousel controls fade when unavailable
//	  Given I am on the discovery pane
//	  Then the previous control should be faded on the first panel
//	  And the next control should be opaque
func TestDiscoveryCarousel(t *testing.T) {
	// Given I am on the discovery pane
	discovery := openDiscovery(t)
	sliders := must(discovery.Sliders())(t)
	if len(sliders) == 0 {
		t.Fatal("Expected carousel panels")
	}
	if heading := must(sliders[0].HeaderName())(t); heading == "" {
		t.Error("Expected a heading on the first panel")
	}

	// Then the previous control should be faded on the first panel
	if opacity := must(sliders[0].OpacityForPrevious())(t); opacity != "0.5" {
		t.Errorf("Expected previous opacity 0.5, got %s", opacity)
	}

	// And the next control should be opaque
	if opacity := must(sliders[0].OpacityForNext())(t); opacity != "1" {
		t.Errorf("Expected next opacity 1, got %s", opacity)
	}
}

// TestDiscoveryPersona tests opening a persona from the pane
// Feature: Discovery pane
//
//	Scenario: Open the first featured persona
//	  Given I am on the discovery pane
//	  When I click the first featured persona
//	  Then I should be on that persona's page
func TestDiscoveryPersona(t *testing.T) {
	// Given I am on the discovery pane
	discovery := openDiscovery(t)
	first := must(discovery.FirstPersona())(t)

	// When I click the first featured persona
	persona := must(discovery.ClickOnFirstPersona())(t)

	// Then I should be on that persona's page
	if title := must(persona.PersonaTitle())(t); title != first {
		t.Errorf("Expected '%s', got '%s'", first, title)
	}
}
