package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/Marlena/Addon-Tests/internal/models"
)

// Catalog is the data a CatalogService serves
type Catalog struct {
	Addons      []*models.Addon
	Categories  []models.Category
	Collections []models.Collection
}

var catalogEpoch = time.Date(2012, time.January, 5, 0, 0, 0, 0, time.UTC)

var extensionCategories = []string{
	"Alerts & Updates", "Appearance", "Bookmarks", "Download Management",
	"Feeds, News & Blogging", "Games & Entertainment", "Language Support",
	"Photos, Music & Videos", "Privacy & Security", "Shopping",
	"Social & Communication", "Tabs", "Web Development", "Other",
}

var themeCategories = []string{
	"Animals", "Compact", "Large", "Miscellaneous", "Modern", "Nature",
	"OS Integration", "Retro", "Sports",
}

var personaCategories = []string{
	"Abstract", "Causes", "Fashion", "Film and TV", "Firefox", "Foxkeh",
	"Holiday", "Music", "Nature", "Other", "Scenery", "Seasonal", "Solid",
	"Sports", "Websites",
}

type seedAddon struct {
	name     string
	author   string
	category string
	summary  string
	users    int
	rating   int
	price    int64
	featured bool
}

var seedExtensions = []seedAddon{
	{"Adblock Plus", "Wladimir Palant", "Privacy & Security", "Annoyed by adverts? Troubled by tracking? Adblock Plus blocks them all.", 14865221, 5, 0, true},
	{"Firebug", "Joe Hewitt", "Web Development", "Firebug integrates with Firefox to put a wealth of web development tools at your fingertips while you browse.", 3012844, 5, 0, true},
	{"Video DownloadHelper", "mig", "Download Management", "The easy way to download and convert Web videos from hundreds of YouTube-like sites.", 5720463, 4, 0, true},
	{"NoScript", "Giorgio Maone", "Privacy & Security", "The best security you can get in a web browser! Allow active content to run only from sites you trust.", 2144702, 5, 0, true},
	{"DownThemAll!", "Federico Parodi", "Download Management", "The first and only download manager and accelerator built inside Firefox.", 1564390, 5, 0, true},
	{"Greasemonkey", "Anthony Lieuallen", "Other", "Customize the way a web page displays or behaves, by using small bits of JavaScript.", 1401219, 4, 0, true},
	{"FlashGot", "Giorgio Maone", "Download Management", "Download one link, selected links or all the links of a page at the maximum speed with a single click.", 1201455, 4, 0, false},
	{"Web Developer", "Chris Pederick", "Web Development", "Adds a menu and a toolbar with various web developer tools.", 910334, 4, 0, false},
	{"Tab Mix Plus", "onemen", "Tabs", "Tab browsing with an added boost.", 744203, 5, 0, false},
	{"Xmarks Sync", "Xmarks", "Bookmarks", "Backup and sync your bookmarks, passwords and open tabs across computers and browsers.", 690012, 4, 0, false},
	{"Roundball", "Hoop Studios", "Games & Entertainment", "Play a quick game of basketball right inside your browser tab between downloads.", 402117, 4, 0, false},
	{"Download Statusbar", "Devon Jensen", "Download Management", "View and manage downloads from a tidy statusbar without the download window getting in the way.", 388120, 4, 0, false},
	{"Jetpack Sample Toolbar", "Add-on SDK", "Other", "A small restartless jetpack that adds a toolbar button showing how Add-on SDK add-ons install.", 12018, 3, 0, false},
}

var seedThemes = []string{
	"Walnut for Firefox", "Noia 4", "Strata40", "LittleFox", "Charamel", "Phoenity Shadow",
	"Aluminum Alloy", "Kempelton", "Nautipolis", "Blue Ice", "Silvermel", "Classic Compact",
	"Walnut Stained", "Aero Fox", "MacFox II", "Qute", "GrApple Yummy", "iFox Smooth",
	"Cheetah Spots", "Panda Fox", "Retro Vintage", "Soccer Field", "Ocean Breeze", "Forest Walk",
}

var seedPersonas = []string{
	"Sunset Sail", "Space Fantasy", "Glow", "Firefox Pattern", "Foxkeh Winter",
	"Green Leaves", "Retro Waves", "City Lights",
}

// SeedCatalog returns the fixture marketplace catalog. The data is fixed so
// listings sort the same way on every run.
func SeedCatalog() Catalog {
	var catalog Catalog

	id := 1
	addCategories := func(kind models.AddonKind, names []string, firstID int) {
		for i, name := range names {
			catalog.Categories = append(catalog.Categories, models.Category{
				ID:   firstID + i,
				Slug: Slugify(name),
				Name: name,
				Kind: kind,
			})
		}
	}
	addCategories(models.KindExtension, extensionCategories, 70)
	addCategories(models.KindTheme, themeCategories, 30)
	addCategories(models.KindPersona, personaCategories, 100)

	add := func(a *models.Addon) {
		a.ID = models.AddonID(a.Slug)
		if a.Version == "" {
			a.Version = fmt.Sprintf("1.%d", id%10)
		}
		a.CreatedAt = catalogEpoch.AddDate(0, 0, -7*id)
		a.UpdatedAt = catalogEpoch.AddDate(0, 0, -(id*3)%41)
		catalog.Addons = append(catalog.Addons, a)
		id++
	}

	for _, s := range seedExtensions {
		add(&models.Addon{
			Slug:            Slugify(s.name),
			Name:            s.name,
			Kind:            models.KindExtension,
			Summary:         s.summary,
			Description:     s.summary + " " + s.name + " is maintained by " + s.author + " and updated regularly for new Firefox releases.",
			Author:          s.author,
			Category:        Slugify(s.category),
			Users:           s.users,
			WeeklyDownloads: s.users / 12,
			Rating:          s.rating,
			Price:           s.price,
			Featured:        s.featured,
		})
	}

	for i := 1; i <= 12; i++ {
		var price int64
		if i%4 == 0 {
			price = 99
		}
		add(&models.Addon{
			Slug:            fmt.Sprintf("marble-run-%d", i),
			Name:            fmt.Sprintf("Marble Run %d", i),
			Kind:            models.KindExtension,
			Summary:         fmt.Sprintf("Level pack %d for the marble racing game.", i),
			Description:     "Build tracks and race marbles through loops, ramps and tunnels. Every marble level pack adds new track pieces.",
			Author:          "Marble Works",
			Category:        Slugify("Games & Entertainment"),
			Users:           90000 - i*5000,
			WeeklyDownloads: 4000 - i*150,
			Rating:          1 + i%5,
			Price:           price,
		})
	}

	for i := 1; i <= 21; i++ {
		var price int64
		if i%3 == 0 {
			price = 199
		}
		add(&models.Addon{
			Slug:            fmt.Sprintf("sample-extension-%d", i),
			Name:            fmt.Sprintf("Sample Extension %d", i),
			Kind:            models.KindExtension,
			Summary:         "A freshly uploaded extension waiting for its first review.",
			Description:     "This extension was uploaded recently and nobody has rated it yet.",
			Author:          fmt.Sprintf("Developer %d", i),
			Category:        Slugify(extensionCategories[i%len(extensionCategories)]),
			Users:           500 - i*10,
			WeeklyDownloads: 40 - i,
			Price:           price,
		})
	}

	for i, name := range seedThemes {
		add(&models.Addon{
			Slug:            Slugify(name),
			Name:            name,
			Kind:            models.KindTheme,
			Summary:         name + " gives Firefox a complete new look.",
			Description:     "A complete theme that restyles toolbars, tabs and menus.",
			Author:          "Theme Studio",
			Category:        Slugify(themeCategories[i%len(themeCategories)]),
			Users:           250000 - i*9000,
			WeeklyDownloads: 2000 + (i*7919)%9000,
			Rating:          1 + (i*3)%5,
			Featured:        i < 3,
			Incompatible:    i == 4 || i == 17,
		})
	}

	for i, name := range seedPersonas {
		add(&models.Addon{
			Slug:            Slugify(name),
			Name:            name,
			Kind:            models.KindPersona,
			Summary:         "A lightweight background for your toolbars.",
			Description:     "Personas are lightweight themes that change only the header and footer background.",
			Author:          "Persona Designer",
			Category:        Slugify(personaCategories[i%len(personaCategories)]),
			Users:           120000 - i*11000,
			WeeklyDownloads: 3000 - i*200,
			Rating:          5 - i%3,
			Featured:        i < 6,
		})
	}

	catalog.Collections = []models.Collection{
		{Slug: "privacy-matters", Name: "Privacy Matters", Author: "amo.editors", Followers: 12045, Featured: true, Addons: []string{"adblock-plus", "noscript"}},
		{Slug: "web-developers-toolbox", Name: "Web Developer's Toolbox", Author: "amo.editors", Followers: 9033, Featured: true, Addons: []string{"firebug", "web-developer"}},
		{Slug: "download-faster", Name: "Download Faster", Author: "amo.editors", Followers: 7310, Featured: true, Addons: []string{"downthemall", "flashgot", "download-statusbar"}},
		{Slug: "tab-power", Name: "Tab Power", Author: "amo.editors", Followers: 5120, Featured: true, Addons: []string{"tab-mix-plus"}},
		{Slug: "marble-madness", Name: "Marble Madness", Author: "marble.fan", Followers: 312, Addons: []string{"marble-run-1", "marble-run-12"}},
	}

	return catalog
}

// Slugify turns a display name into a URL slug
func Slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteRune('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
