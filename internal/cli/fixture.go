package cli

import (
	"fmt"
	"log"

	"github.com/Marlena/Addon-Tests/internal/config"
	"github.com/Marlena/Addon-Tests/internal/handlers"
	"github.com/Marlena/Addon-Tests/internal/models"
	"github.com/Marlena/Addon-Tests/internal/services"
)

// NewFixtureDependencies wires the seeded catalog, the review service over
// repo and every page handler into ServerDependencies. Reviews are seeded
// only for add-ons that have none yet, so a persistent repo is safe to reuse.
func NewFixtureDependencies(cfg config.ServerConfig, repo services.ReviewRepository) (ServerDependencies, error) {
	catalog := services.NewCatalogService(services.SeedCatalog())
	reviews := services.NewReviewService(repo, catalog)
	if err := reviews.SeedReviews(services.DefaultReviewSeeds); err != nil {
		return ServerDependencies{}, fmt.Errorf("failed to seed reviews: %w", err)
	}

	sessions := services.NewSessionStore(&models.User{
		Email:    cfg.User.Email,
		Password: cfg.User.Password,
		Name:     cfg.User.Name,
	})
	site := handlers.NewSite(catalog, sessions)
	dir := cfg.TemplatesDir

	deps := ServerDependencies{
		ServerConfig:  cfg,
		Catalog:       catalog,
		Reviews:       reviews,
		Sessions:      sessions,
		LogoutHandler: handlers.NewLogoutHandler(sessions),
	}

	var err error
	if deps.HomeHandler, err = handlers.NewHomeHandler(dir, site, catalog); err != nil {
		return ServerDependencies{}, fmt.Errorf("failed to create home handler: %w", err)
	}
	if deps.ExtensionsHandler, err = handlers.NewExtensionsHandler(dir, site, catalog); err != nil {
		return ServerDependencies{}, fmt.Errorf("failed to create extensions handler: %w", err)
	}
	if deps.ThemesHandler, err = handlers.NewThemesHandler(dir, site, catalog); err != nil {
		return ServerDependencies{}, fmt.Errorf("failed to create themes handler: %w", err)
	}
	if deps.PersonasHandler, err = handlers.NewPersonasHandler(dir, site, catalog); err != nil {
		return ServerDependencies{}, fmt.Errorf("failed to create personas handler: %w", err)
	}
	if deps.CollectionsHandler, err = handlers.NewCollectionsHandler(dir, site, catalog); err != nil {
		return ServerDependencies{}, fmt.Errorf("failed to create collections handler: %w", err)
	}
	if deps.DetailsHandler, err = handlers.NewDetailsHandler(dir, site, catalog, reviews); err != nil {
		return ServerDependencies{}, fmt.Errorf("failed to create details handler: %w", err)
	}
	if deps.ReviewsHandler, err = handlers.NewReviewsHandler(dir, site, catalog, reviews); err != nil {
		return ServerDependencies{}, fmt.Errorf("failed to create reviews handler: %w", err)
	}
	if deps.AddReviewHandler, err = handlers.NewAddReviewHandler(dir, site, catalog, reviews); err != nil {
		return ServerDependencies{}, fmt.Errorf("failed to create add review handler: %w", err)
	}
	if deps.SearchHandler, err = handlers.NewSearchHandler(dir, site, catalog); err != nil {
		return ServerDependencies{}, fmt.Errorf("failed to create search handler: %w", err)
	}
	if deps.DiscoveryHandler, err = handlers.NewDiscoveryHandler(dir, site, catalog); err != nil {
		return ServerDependencies{}, fmt.Errorf("failed to create discovery handler: %w", err)
	}
	if deps.LoginHandler, err = handlers.NewLoginHandler(dir, site, sessions); err != nil {
		return ServerDependencies{}, fmt.Errorf("failed to create login handler: %w", err)
	}

	log.Printf("Fixture marketplace ready, templates from %s", dir)
	return deps, nil
}
