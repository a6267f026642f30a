//go:build e2e

package e2e

import (
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/Marlena/Addon-Tests/internal/amo"
)

func openThemes(t *testing.T) *amo.Themes {
	t.Helper()
	themes, err := amo.OpenThemes(newPage(t), suite.SiteURL())
	if err != nil {
		t.Fatalf("Failed to open the theme listing: %v", err)
	}
	if !must(themes.IsTheCurrentPage())(t) {
		t.Fatalf("Expected the theme listing, got %s", themes.URL())
	}
	return themes
}

// TestSearch tests searching from the header
// Feature: Search
//
//	Scenario: Search for an add-on by name
//	  Given I am on the homepage
//	  When I search for "Firebug"
//	  Then the first result should be Firebug
//	  And clicking it should open its details page
//
//	Scenario: Search for nonsense
//	  Given I am on the homepage
//	  When I search for a long string nothing matches
//	  Then I should see "0 matching results"
func TestSearch(t *testing.T) {
	t.Run("by name", func(t *testing.T) {
		// Given I am on the homepage
		home := openHome(t)

		// When I search for "Firebug"
		search := must(home.Header().SearchFor("Firebug"))(t)
		if !must(search.IsTheCurrentPage())(t) {
			t.Fatalf("Expected the search results, got %s", search.URL())
		}

		// Then the first result should be Firebug
		result := must(search.Result(0))(t)
		if name := must(result.Name())(t); name != "Firebug" {
			t.Errorf("Expected first result 'Firebug', got '%s'", name)
		}

		// And clicking it should open its details page
		details := must(result.ClickResult())(t)
		if !must(details.IsTheCurrentPage())(t) {
			t.Errorf("Expected the Firebug details page, got %s", details.URL())
		}
	})

	t.Run("no match", func(t *testing.T) {
		// Given I am on the homepage
		home := openHome(t)

		// When I search for a long string nothing matches
		search := must(home.Header().SearchFor(strings.Repeat("a", 255)))(t)

		// Then I should see "0 matching results"
		if text := must(search.NumberOfResultsText())(t); text != "0 matching results" {
			t.Errorf("Expected '0 matching results', got '%s'", text)
		}
		if !must(search.IsNoResultsPresent())(t) {
			t.Error("Expected the no results notice")
		}
	})
}

// TestThemeSorting tests the theme listing sort orders
// Feature: Themes
//
//	Scenario Outline: Sort the theme listing
//	  Given I am on the theme listing
//	  When I sort by <key> from the sort menu
//	  Then the listing should say it is sorted by <label>
//	  And the themes should be in that order
func TestThemeSorting(t *testing.T) {
	nonIncreasing := func(values []int) bool {
		return slices.IsSortedFunc(values, func(a, b int) int { return b - a })
	}
	newestFirst := func(dates []time.Time) bool {
		return slices.IsSortedFunc(dates, func(a, b time.Time) int { return b.Compare(a) })
	}

	tests := []struct {
		key    amo.SortKey
		label  string
		sorted func(t *testing.T, themes *amo.Themes) bool
	}{
		{amo.SortByName, "Name", func(t *testing.T, themes *amo.Themes) bool {
			names := must(themes.AddonNames())(t)
			return slices.IsSortedFunc(names, func(a, b string) int {
				return strings.Compare(strings.ToLower(a), strings.ToLower(b))
			})
		}},
		{amo.SortByUpdated, "Recently Updated", func(t *testing.T, themes *amo.Themes) bool {
			return newestFirst(must(themes.AddonsUpdatedDates())(t))
		}},
		{amo.SortByCreated, "Newest", func(t *testing.T, themes *amo.Themes) bool {
			return newestFirst(must(themes.AddonsCreatedDates())(t))
		}},
		{amo.SortByPopular, "Most Popular", func(t *testing.T, themes *amo.Themes) bool {
			return nonIncreasing(must(themes.AddonsDownloads())(t))
		}},
		{amo.SortByRating, "Top Rated", func(t *testing.T, themes *amo.Themes) bool {
			return nonIncreasing(must(themes.AddonsRating())(t))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			// Given I am on the theme listing
			themes := openThemes(t)

			// When I sort by the key from the sort menu
			if err := themes.ClickSortBy(tt.key); err != nil {
				t.Fatalf("Failed to sort by %s: %v", tt.key, err)
			}

			// Then the listing should say it is sorted by the label
			if label := must(themes.SortedBy())(t); label != tt.label {
				t.Errorf("Expected sorted by '%s', got '%s'", tt.label, label)
			}

			// And the themes should be in that order
			if !tt.sorted(t, themes) {
				t.Errorf("Themes are not sorted by %s", tt.key)
			}
		})
	}
}

// TestThemeExploreFilter tests the explore side bar of the theme listing
// Feature: Themes
//
//	Scenario: The default explore filter is highlighted
//	  Given I am on the theme listing
//	  Then "Most Popular" should be the bold explore filter
func TestThemeExploreFilter(t *testing.T) {
	// Given I am on the theme listing
	themes := openThemes(t)

	// Then "Most Popular" should be the bold explore filter
	if filter := must(themes.SelectedExploreFilter())(t); filter != "Most Popular" {
		t.Errorf("Expected 'Most Popular', got '%s'", filter)
	}
}

// TestIncompatibleThemes tests the incompatibility flag on theme cards
// Feature: Themes
//
//	Scenario: Incompatible themes carry a flag
//	  Given I am on the theme listing
//	  Then every theme marked incompatible should say it is not available
func TestIncompatibleThemes(t *testing.T) {
	// Given I am on the theme listing
	themes := openThemes(t)

	// Then every theme marked incompatible should say it is not available
	for _, item := range must(themes.Themes())(t) {
		if !must(item.IsIncompatible())(t) {
			continue
		}
		name := must(item.Name())(t)
		if !must(item.IsIncompatibleFlagPresent())(t) {
			t.Errorf("Expected a flag on %s", name)
			continue
		}
		if text := must(item.NotCompatibleFlagText())(t); !strings.HasPrefix(text, "Not available for") {
			t.Errorf("Unexpected flag on %s: '%s'", name, text)
		}
	}
}

// TestThemeCategory tests the theme category pages
// Feature: Themes
//
//	Scenario: Open the first theme category
//	  Given I am on the theme listing
//	  When I click the first category
//	  Then its name should head the listing and end the breadcrumbs
func TestThemeCategory(t *testing.T) {
	// Given I am on the theme listing
	themes := openThemes(t)
	categories := must(themes.Categories())(t)
	if len(categories) == 0 {
		t.Fatal("Expected theme categories")
	}

	// When I click the first category
	category := must(themes.ClickOnFirstCategory())(t)

	// Then its name should head the listing and end the breadcrumbs
	if title := must(category.CategoryTitle())(t); title != categories[0] {
		t.Errorf("Expected '%s', got '%s'", categories[0], title)
	}
	crumbs := must(category.Breadcrumbs())(t)
	if len(crumbs) == 0 || crumbs[len(crumbs)-1] != categories[0] {
		t.Errorf("Unexpected breadcrumbs %v", crumbs)
	}
}

// TestThemeDetails tests opening a theme
// Feature: Themes
//
//	Scenario: Open the first theme
//	  Given I am on the theme listing
//	  When I click the first theme
//	  Then I should be on its details page with an install button
func TestThemeDetails(t *testing.T) {
	// Given I am on the theme listing
	themes := openThemes(t)
	names := must(themes.AddonNames())(t)
	if len(names) == 0 {
		t.Fatal("Expected themes")
	}

	// When I click the first theme
	theme := must(themes.ClickOnFirstAddon())(t)

	// Then I should be on its details page with an install button
	if !must(theme.IsTheCurrentPage())(t) {
		t.Errorf("Expected the %s details page, got %s", names[0], theme.URL())
	}
	if title := must(theme.ThemeTitle())(t); title != names[0] {
		t.Errorf("Expected '%s', got '%s'", names[0], title)
	}
	if !must(theme.InstallButtonExists())(t) {
		t.Error("Expected an install button")
	}
}
