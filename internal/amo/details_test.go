package amo

import (
	"regexp"
	"testing"
	"time"

	"github.com/Marlena/Addon-Tests/internal/page"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var threeWords = regexp.MustCompile(`(\w+\s*){3,}`)

func openDetails(t *testing.T, name string) *Details {
	t.Helper()
	p, site, _ := openSite(t)
	details, err := OpenDetails(p, site, name)
	require.NoError(t, err)
	return details
}

func TestDetails_Sections(t *testing.T) {
	details := openDetails(t, "Firebug")

	ok, err := details.IsTheCurrentPage()
	require.NoError(t, err)
	assert.True(t, ok)

	name, err := details.AddonTitle()
	require.NoError(t, err)
	assert.Equal(t, "Firebug", name)

	summary, err := details.Summary()
	require.NoError(t, err)
	assert.Regexp(t, threeWords, summary)

	about, err := details.AboutAddon()
	require.NoError(t, err)
	assert.Equal(t, "About this Add-on", about)
	description, err := details.Description()
	require.NoError(t, err)
	assert.Regexp(t, threeWords, description)

	crumbs, err := details.Breadcrumbs()
	require.NoError(t, err)
	assert.Equal(t, []string{"Add-ons for Firefox", "Extensions", "Firebug"}, crumbs)
}

func TestDetails_Reviews(t *testing.T) {
	details := openDetails(t, "marble-run-12")

	title, err := details.ReviewTitle()
	require.NoError(t, err)
	assert.Equal(t, "Reviews", title)
	has, err := details.HasReviews()
	require.NoError(t, err)
	assert.True(t, has)
	text, err := details.ReviewDetails()
	require.NoError(t, err)
	assert.Regexp(t, `(\w+\s*){1,}`, text)

	reviews, err := details.Reviews()
	require.NoError(t, err)
	assert.Len(t, reviews, 3)

	link, err := details.AllReviewsLinkText()
	require.NoError(t, err)
	assert.Equal(t, "See all 3 reviews", link)
}

func TestDetails_CountForRating(t *testing.T) {
	// Firebug's seeded reviews rate 1, 3, 5, 2, 4, 1, 3, 5
	details := openDetails(t, "firebug")

	tests := []struct {
		stars int
		want  int
	}{
		{5, 2},
		{4, 1},
		{3, 2},
		{2, 1},
		{1, 2},
	}

	for _, tt := range tests {
		got, err := details.CountForRating(tt.stars)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "%d stars", tt.stars)
	}

	_, err := details.CountForRating(6)
	assert.ErrorIs(t, err, page.ErrNotFound)
}

func TestDetails_NavigatingToOtherAddons(t *testing.T) {
	details := openDetails(t, "noscript")

	others, err := details.OtherAddons()
	require.NoError(t, err)
	require.Len(t, others, 1)

	name, err := others[0].Name()
	require.NoError(t, err)
	assert.Equal(t, "FlashGot", name)

	other, err := others[0].ClickAddonLink()
	require.NoError(t, err)
	title, err := other.AddonTitle()
	require.NoError(t, err)
	assert.Contains(t, title, name)
}

func TestDetails_NoReviews(t *testing.T) {
	details := openDetails(t, "noscript")

	has, err := details.HasReviews()
	require.NoError(t, err)
	assert.False(t, has)
	_, err = details.ReviewDetails()
	assert.ErrorIs(t, err, page.ErrNotFound)
}

func TestDetails_InstallButtons(t *testing.T) {
	tests := []struct {
		name  string
		label string
	}{
		{"Jetpack Sample Toolbar", "Add to Firefox"},
		{"marble-run-4", "$0.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := openDetails(t, tt.name)

			visible, err := details.IsInstallButtonVisible()
			require.NoError(t, err)
			assert.True(t, visible)
			label, err := details.InstallButtonText()
			require.NoError(t, err)
			assert.Equal(t, tt.label, label)
			version, err := details.IsVersionInstallButtonVisible()
			require.NoError(t, err)
			assert.True(t, version)
			flagged, err := details.IsNotAvailable()
			require.NoError(t, err)
			assert.False(t, flagged)
		})
	}
}

func TestViewReviews_Paginator(t *testing.T) {
	details := openDetails(t, "Adblock Plus")
	has, err := details.HasReviews()
	require.NoError(t, err)
	require.True(t, has)

	reviews, err := details.ClickAllReviewsLink()
	require.NoError(t, err)
	ok, err := reviews.IsTheCurrentPage()
	require.NoError(t, err)
	assert.True(t, ok)

	count := func() int {
		t.Helper()
		n, err := reviews.ReviewCount()
		require.NoError(t, err)
		return n
	}
	pageNumber := func() int {
		t.Helper()
		n, err := reviews.Paginator().PageNumber()
		require.NoError(t, err)
		return n
	}
	disabled := func(check func() (bool, error)) bool {
		t.Helper()
		d, err := check()
		require.NoError(t, err)
		return d
	}
	paginator := reviews.Paginator()

	assert.Equal(t, 20, count())

	// last page: the next link is disabled
	require.NoError(t, paginator.ClickLastPage())
	assert.True(t, disabled(paginator.IsNextPageDisabled))
	assert.Equal(t, 3, pageNumber())
	assert.Equal(t, 5, count())

	// one page back
	require.NoError(t, paginator.ClickPrevPage())
	assert.False(t, disabled(paginator.IsNextPageDisabled))
	assert.Equal(t, 20, count())
	assert.Equal(t, 2, pageNumber())

	// first page: the previous link is disabled
	require.NoError(t, paginator.ClickFirstPage())
	assert.True(t, disabled(paginator.IsPrevPageDisabled))
	assert.Equal(t, 1, pageNumber())

	// one page forward
	require.NoError(t, paginator.ClickNextPage())
	assert.False(t, disabled(paginator.IsPrevPageDisabled))
	assert.Equal(t, 20, count())
	assert.Equal(t, 2, pageNumber())
}

func TestViewReviews_NewestFirst(t *testing.T) {
	p, site, _ := openSite(t)
	reviews, err := OpenViewReviews(p, site, "firebug")
	require.NoError(t, err)

	list, err := reviews.Reviews()
	require.NoError(t, err)
	require.Len(t, list, 8)

	rating, err := list[0].Rating()
	require.NoError(t, err)
	assert.Equal(t, 1, rating)
	author, err := list[0].Author()
	require.NoError(t, err)
	assert.Equal(t, "fox.fan", author)
	date, err := list[0].Date()
	require.NoError(t, err)
	assert.Equal(t, "May 4, 2012", date)
	body, err := list[0].ReviewText()
	require.NoError(t, err)
	assert.Equal(t, "Does exactly what it says and never gets in the way.", body)

	crumbs, err := reviews.Breadcrumbs()
	require.NoError(t, err)
	assert.Equal(t, []string{"Add-ons for Firefox", "Extensions", "Firebug", "Reviews"}, crumbs)
}

func TestWriteReview_AnonymousUserIsAskedToLogIn(t *testing.T) {
	details := openDetails(t, "firebug")

	form, err := details.ClickToWriteReview()
	require.NoError(t, err)

	visible, err := form.IsReviewBoxVisible()
	require.NoError(t, err)
	assert.False(t, visible)
	assert.Contains(t, form.URL(), "/users/login?to=")
}

func TestWriteReview_RejectsEmptyReview(t *testing.T) {
	p, site, cfg := openSite(t)
	home, err := OpenHome(p, site)
	require.NoError(t, err)
	require.NoError(t, home.Login(cfg.User.Email, cfg.User.Password))

	details, err := OpenDetails(p, site, "firebug")
	require.NoError(t, err)
	form, err := details.ClickToWriteReview()
	require.NoError(t, err)
	ok, err := form.IsTheCurrentPage()
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, form.SetReviewRating(4))
	_, err = form.ClickToSaveReview()
	require.NoError(t, err)

	message, err := form.ErrorText()
	require.NoError(t, err)
	assert.Equal(t, "Please write a review.", message)
	assert.Error(t, form.SetReviewRating(0))
}

func TestWriteReview_NewReviewIsSaved(t *testing.T) {
	// GIVEN a logged in user on a free extension nobody has reviewed
	p, site, cfg := openSite(t)
	home, err := OpenHome(p, site)
	require.NoError(t, err)
	require.NoError(t, home.Login(cfg.User.Email, cfg.User.Password))

	extensions, err := OpenExtensions(p, site)
	require.NoError(t, err)
	extension, err := extensions.UnreviewedFreeExtension()
	require.NoError(t, err)
	details, err := extension.ClickExtension()
	require.NoError(t, err)
	has, err := details.HasReviews()
	require.NoError(t, err)
	require.False(t, has)

	// WHEN writing a three star review
	form, err := details.ClickToWriteReview()
	require.NoError(t, err)
	visible, err := form.IsReviewBoxVisible()
	require.NoError(t, err)
	require.True(t, visible)

	before := time.Now().Format(ReviewDateLayout)
	body := "Automatic add-on review " + before
	require.NoError(t, form.EnterReviewWithText(body))
	require.NoError(t, form.SetReviewRating(3))
	reviews, err := form.ClickToSaveReview()
	require.NoError(t, err)
	after := time.Now().Format(ReviewDateLayout)

	// THEN it leads the review listing
	list, err := reviews.Reviews()
	require.NoError(t, err)
	require.Len(t, list, 1)
	rating, err := list[0].Rating()
	require.NoError(t, err)
	assert.Equal(t, 3, rating)
	author, err := list[0].Author()
	require.NoError(t, err)
	assert.Equal(t, cfg.User.Name, author)
	date, err := list[0].Date()
	require.NoError(t, err)
	assert.Contains(t, []string{before, after}, date)
	text, err := list[0].ReviewText()
	require.NoError(t, err)
	assert.Equal(t, body, text)

	// AND the details page counts it under three stars
	details, err = reviews.ClickAddonBreadcrumb()
	require.NoError(t, err)
	count, err := details.CountForRating(3)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
