package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Marlena/Addon-Tests/internal/amo"
	"github.com/Marlena/Addon-Tests/internal/browser"
	internalcli "github.com/Marlena/Addon-Tests/internal/cli"
	"github.com/Marlena/Addon-Tests/internal/config"
	"github.com/Marlena/Addon-Tests/internal/database"
	"github.com/Marlena/Addon-Tests/internal/document"
	"github.com/Marlena/Addon-Tests/internal/page"
	"github.com/Marlena/Addon-Tests/internal/repository"
	"github.com/Marlena/Addon-Tests/internal/services"
	"github.com/dustin/go-humanize"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

var version = "0.1.0"

// reviewRepository picks the review store: PostgreSQL when configured,
// memory otherwise. The returned func releases it.
func reviewRepository() (services.ReviewRepository, func(), error) {
	if !config.PostgresConfigured(os.Getenv) {
		log.Println("No review database configured, keeping reviews in memory")
		return repository.NewMemoryReviewRepository(), func() {}, nil
	}

	pgConfig, err := config.LoadPostgresConfig(os.Getenv)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid review database configuration: %w", err)
	}
	if err := database.Connect(pgConfig); err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Println("Connected to database successfully")

	if err := database.RunMigrations(database.DB); err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("failed to run database migrations: %w", err)
	}

	closeDB := func() {
		if err := database.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}
	return repository.NewReviewRepository(), closeDB, nil
}

// ServeCommand returns the serve command
func ServeCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the fixture marketplace the suite runs against",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "port",
				Usage:   "port to listen on",
				EnvVars: []string{"PORT"},
			},
		},
		Action: func(c *cli.Context) error {
			repo, release, err := reviewRepository()
			if err != nil {
				return err
			}
			defer release()

			cfg := config.LoadServerConfig(os.Getenv)
			if port := c.String("port"); port != "" {
				cfg.Port = port
			}

			deps, err := internalcli.NewFixtureDependencies(cfg, repo)
			if err != nil {
				return err
			}

			return internalcli.RunServe(deps)
		},
	}
}

// InstallCommand returns the install command
func InstallCommand() *cli.Command {
	return &cli.Command{
		Name:      "install",
		Usage:     "Download the Playwright driver and browser engines",
		ArgsUsage: "[chromium|firefox|webkit ...]",
		Action: func(c *cli.Context) error {
			browsers := c.Args().Slice()
			if len(browsers) == 0 {
				browsers = []string{config.BrowserChromium}
			}
			if err := browser.Install(browsers...); err != nil {
				return err
			}
			log.Printf("Installed %v", browsers)
			return nil
		},
	}
}

// ProbeCommand returns the probe command
func ProbeCommand() *cli.Command {
	return &cli.Command{
		Name:  "probe",
		Usage: "Fetch the marketplace home page without a browser and report what it shows",
		Action: func(c *cli.Context) error {
			cfg, err := config.LoadSuiteConfig(os.Getenv)
			if err != nil {
				return err
			}

			p := page.New(document.NewSession(nil))
			home, err := amo.OpenHome(p, cfg.SiteURL())
			if err != nil {
				return fmt.Errorf("failed to load %s: %w", cfg.SiteURL(), err)
			}

			ok, err := home.IsTheCurrentPage()
			if err != nil {
				return fmt.Errorf("failed to read home page title: %w", err)
			}
			if !ok {
				title, _ := home.Title()
				return fmt.Errorf("%s is not the marketplace home page, title %q", home.URL(), title)
			}

			heading, err := home.MostPopularHeading()
			if err != nil {
				return err
			}
			items, err := home.MostPopularItems()
			if err != nil {
				return err
			}

			out := c.App.Writer
			fmt.Fprintf(out, "%s\n%s\n", home.URL(), heading)
			for i, item := range items {
				name, err := item.Name()
				if err != nil {
					return err
				}
				users, err := item.Users()
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%2d. %s (%s users)\n", i+1, name, humanize.Comma(int64(users)))
			}
			return nil
		},
	}
}

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables")
	}

	app := &cli.App{
		Name:    "addontests",
		Usage:   "Add-ons marketplace UI suite tooling",
		Version: version,
		Commands: []*cli.Command{
			ServeCommand(),
			InstallCommand(),
			ProbeCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		log.Fatal(err)
	}
}
