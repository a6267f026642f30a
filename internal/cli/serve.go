package cli

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Marlena/Addon-Tests/internal/config"
	"github.com/Marlena/Addon-Tests/internal/services"
)

// ServerDependencies holds all dependencies needed for the fixture marketplace
type ServerDependencies struct {
	ServerConfig       config.ServerConfig
	Catalog            services.CatalogService
	Reviews            services.ReviewService
	Sessions           *services.SessionStore
	HomeHandler        http.Handler
	ExtensionsHandler  http.Handler
	ThemesHandler      http.Handler
	PersonasHandler    http.Handler
	CollectionsHandler http.Handler
	DetailsHandler     http.Handler
	ReviewsHandler     http.Handler
	AddReviewHandler   http.Handler
	SearchHandler      http.Handler
	DiscoveryHandler   http.Handler
	LoginHandler       http.Handler
	LogoutHandler      http.Handler
}

// DefaultSitePath is where requests for the bare host are sent
const DefaultSitePath = "/en-US/firefox/"

// RunServe starts the fixture marketplace and blocks until it is signalled to stop
func RunServe(deps ServerDependencies) error {
	listener, server, err := StartServer(deps)
	if err != nil {
		return err
	}
	defer listener.Close()

	return WaitForShutdown(server, nil)
}

// NewRouter maps marketplace URLs onto the handlers in deps. Every page lives
// under /{locale}/{app}/; static assets are served from /media/.
func NewRouter(deps ServerDependencies) http.Handler {
	site := http.NewServeMux()
	site.Handle("/{locale}/{app}/{$}", deps.HomeHandler)
	site.Handle("/{locale}/{app}/extensions/{$}", deps.ExtensionsHandler)
	site.Handle("/{locale}/{app}/extensions/{category}/{$}", deps.ExtensionsHandler)
	site.Handle("/{locale}/{app}/themes/{$}", deps.ThemesHandler)
	site.Handle("/{locale}/{app}/themes/{category}/{$}", deps.ThemesHandler)
	site.Handle("/{locale}/{app}/personas/{$}", deps.PersonasHandler)
	site.Handle("/{locale}/{app}/personas/{category}/{$}", deps.PersonasHandler)
	site.Handle("/{locale}/{app}/collections/{$}", deps.CollectionsHandler)
	site.Handle("/{locale}/{app}/addon/{slug}/{$}", deps.DetailsHandler)
	site.Handle("/{locale}/{app}/addon/{slug}/reviews/{$}", deps.ReviewsHandler)
	site.Handle("/{locale}/{app}/addon/{slug}/reviews/add", deps.AddReviewHandler)
	site.Handle("/{locale}/{app}/search/{$}", deps.SearchHandler)
	site.Handle("/{locale}/{app}/discovery/", deps.DiscoveryHandler)
	site.Handle("/{locale}/{app}/users/login", deps.LoginHandler)
	site.Handle("/{locale}/{app}/users/logout", deps.LogoutHandler)

	// The wildcard site routes overlap any fixed prefix, so they sit behind "/"
	mux := http.NewServeMux()
	mux.Handle("/{$}", http.RedirectHandler(DefaultSitePath, http.StatusFound))
	mux.Handle("/media/", http.StripPrefix("/media/", http.FileServer(http.Dir(deps.ServerConfig.StaticDir))))
	mux.Handle("/", site)
	return mux
}

// StartServer creates and starts the HTTP server, returning the listener and server
func StartServer(deps ServerDependencies) (net.Listener, *http.Server, error) {
	// Create listener
	addr := fmt.Sprintf(":%s", deps.ServerConfig.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create listener: %w", err)
	}

	// Create HTTP server
	server := &http.Server{
		Handler:           NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Marketplace listening on %s", listener.Addr().String())
		if err := server.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
		}
	}()

	return listener, server, nil
}

// WaitForShutdown waits for a shutdown signal and gracefully shuts down the server.
// If shutdown is nil, a channel is created and registered with signal.Notify.
func WaitForShutdown(server *http.Server, shutdown chan os.Signal) error {
	return WaitForShutdownWithTimeout(server, shutdown, 30*time.Second)
}

// WaitForShutdownWithTimeout allows specifying a custom shutdown timeout (primarily for testing)
func WaitForShutdownWithTimeout(server *http.Server, shutdown chan os.Signal, shutdownTimeout time.Duration) error {
	if shutdown == nil {
		shutdown = make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
		defer signal.Stop(shutdown)
	}

	sig := <-shutdown
	log.Printf("Received signal: %v, shutting down marketplace...", sig)

	// Give outstanding requests time to complete
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		// http.Server.Close does not surface listener close errors, so this
		// only fails if the server was never usable
		if err := server.Close(); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	log.Println("Marketplace stopped")
	return nil
}
