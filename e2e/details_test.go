//go:build e2e

package e2e

import (
	"regexp"
	"slices"
	"testing"
	"time"

	"github.com/Marlena/Addon-Tests/internal/amo"
)

var threeWords = regexp.MustCompile(`(\w+\s*){3,}`)

func openDetails(t *testing.T, name string) *amo.Details {
	t.Helper()
	details, err := amo.OpenDetails(newPage(t), suite.SiteURL(), name)
	if err != nil {
		t.Fatalf("Failed to open %s: %v", name, err)
	}
	if !must(details.IsTheCurrentPage())(t) {
		t.Fatalf("Expected the %s details page, got %s", name, details.URL())
	}
	return details
}

// TestAddonDetails tests the add-on details page
// Feature: Add-on details
//
//	Scenario: Read about an add-on
//	  Given I am on the Firebug details page
//	  Then I should see the add-on name, summary and description
//	  And I should see an install button for the current version
//	  And the breadcrumbs should lead back to the extension listing
func TestAddonDetails(t *testing.T) {
	// Given I am on the Firebug details page
	details := openDetails(t, "Firebug")

	// Then I should see the add-on name, summary and description
	if name := must(details.AddonTitle())(t); name != "Firebug" {
		t.Errorf("Expected name 'Firebug', got '%s'", name)
	}
	if summary := must(details.Summary())(t); !threeWords.MatchString(summary) {
		t.Errorf("Expected a summary, got '%s'", summary)
	}
	if about := must(details.AboutAddon())(t); about != "About this Add-on" {
		t.Errorf("Expected 'About this Add-on', got '%s'", about)
	}
	if description := must(details.Description())(t); !threeWords.MatchString(description) {
		t.Errorf("Expected a description, got '%s'", description)
	}

	// And I should see an install button for the current version
	if !must(details.IsInstallButtonVisible())(t) {
		t.Error("Expected the install button to be visible")
	}
	if !must(details.IsVersionInstallButtonVisible())(t) {
		t.Error("Expected the version install button to be visible")
	}

	// And the breadcrumbs should lead back to the extension listing
	crumbs := must(details.Breadcrumbs())(t)
	if len(crumbs) != 3 || crumbs[1] != "Extensions" || crumbs[2] != "Firebug" {
		t.Errorf("Unexpected breadcrumbs %v", crumbs)
	}
}

// TestOtherAddonsByAuthor tests the "other add-ons by" list
// Feature: Add-on details
//
//	Scenario: Open another add-on by the same author
//	  Given I am on the NoScript details page
//	  When I click the first of the author's other add-ons
//	  Then I should be on that add-on's details page
func TestOtherAddonsByAuthor(t *testing.T) {
	// Given I am on the NoScript details page
	details := openDetails(t, "NoScript")
	others := must(details.OtherAddons())(t)
	if len(others) == 0 {
		t.Fatal("Expected other add-ons by the author")
	}
	name := must(others[0].Name())(t)

	// When I click the first of the author's other add-ons
	other := must(others[0].ClickAddonLink())(t)

	// Then I should be on that add-on's details page
	if title := must(other.AddonTitle())(t); title != name {
		t.Errorf("Expected '%s', got '%s'", name, title)
	}
}

// TestReviewPagination tests paging through an add-on's reviews
// Feature: Reviews
//
//	Scenario: Page through reviews
//	  Given I am on the Adblock Plus reviews
//	  When I jump to the last page
//	  Then the next link should be disabled
//	  When I go back one page
//	  Then the next link should be enabled
//	  When I jump to the first page
//	  Then the previous link should be disabled
func TestReviewPagination(t *testing.T) {
	// Given I am on the Adblock Plus reviews
	details := openDetails(t, "Adblock Plus")
	reviews := must(details.ClickAllReviewsLink())(t)
	if !must(reviews.IsTheCurrentPage())(t) {
		t.Fatalf("Expected the review listing, got %s", reviews.URL())
	}
	paginator := reviews.Paginator()

	// When I jump to the last page
	if err := paginator.ClickLastPage(); err != nil {
		t.Fatalf("Failed to open the last page: %v", err)
	}
	last := must(paginator.PageNumber())(t)

	// Then the next link should be disabled
	if !must(paginator.IsNextPageDisabled())(t) {
		t.Error("Expected the next link to be disabled on the last page")
	}

	// When I go back one page
	if err := paginator.ClickPrevPage(); err != nil {
		t.Fatalf("Failed to open the previous page: %v", err)
	}

	// Then the next link should be enabled
	if must(paginator.IsNextPageDisabled())(t) {
		t.Error("Expected the next link to be enabled")
	}
	if n := must(paginator.PageNumber())(t); n != last-1 {
		t.Errorf("Expected page %d, got %d", last-1, n)
	}

	// When I jump to the first page
	if err := paginator.ClickFirstPage(); err != nil {
		t.Fatalf("Failed to open the first page: %v", err)
	}

	// Then the previous link should be disabled
	if !must(paginator.IsPrevPageDisabled())(t) {
		t.Error("Expected the previous link to be disabled on the first page")
	}
	if n := must(paginator.PageNumber())(t); n != 1 {
		t.Errorf("Expected page 1, got %d", n)
	}
}

// TestWriteReview tests submitting a review
// Feature: Reviews
//
//	Scenario: Review a free extension nobody has reviewed
//	  Given I am logged in
//	  And I am on a free extension nobody has rated
//	  When I write a review rated 1 star
//	  Then my review should lead the review listing
//	  And the details page should count it under 1 star
func TestWriteReview(t *testing.T) {
	// Given I am logged in
	home := openHome(t)
	login(t, &home.Base)

	// And I am on a free extension nobody has rated
	extensions := must(amo.OpenExtensions(home.Page, home.Site()))(t)
	extension := must(extensions.UnreviewedFreeExtension())(t)
	details := must(extension.ClickExtension())(t)
	before := must(details.CountForRating(1))(t)

	// When I write a review rated 1 star
	form := must(details.ClickToWriteReview())(t)
	if !must(form.IsReviewBoxVisible())(t) {
		t.Fatalf("Expected the review form, got %s", form.URL())
	}
	today := time.Now().Format(amo.ReviewDateLayout)
	body := "Automatic add-on review " + today
	if err := form.EnterReviewWithText(body); err != nil {
		t.Fatalf("Failed to enter review: %v", err)
	}
	if err := form.SetReviewRating(1); err != nil {
		t.Fatalf("Failed to set rating: %v", err)
	}
	reviews := must(form.ClickToSaveReview())(t)

	// Then my review should lead the review listing
	list := must(reviews.Reviews())(t)
	if len(list) == 0 {
		t.Fatal("Expected at least one review")
	}
	newest := list[0]
	if rating := must(newest.Rating())(t); rating != 1 {
		t.Errorf("Expected rating 1, got %d", rating)
	}
	if author := must(newest.Author())(t); suite.User.Name != "" && author != suite.User.Name {
		t.Errorf("Expected author '%s', got '%s'", suite.User.Name, author)
	}
	dates := []string{today, time.Now().Format(amo.ReviewDateLayout)}
	if date := must(newest.Date())(t); !slices.Contains(dates, date) {
		t.Errorf("Expected date in %v, got '%s'", dates, date)
	}
	if text := must(newest.ReviewText())(t); text != body {
		t.Errorf("Expected review '%s', got '%s'", body, text)
	}

	// And the details page should count it under 1 star
	details = must(reviews.ClickAddonBreadcrumb())(t)
	if after := must(details.CountForRating(1))(t); after != before+1 {
		t.Errorf("Expected %d one star reviews, got %d", before+1, after)
	}
}
