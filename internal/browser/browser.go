// Package browser adapts playwright-go to page.Session so page objects can
// drive a live Chromium, Firefox or WebKit instance.
package browser

import (
	"fmt"
	"log"

	"github.com/Marlena/Addon-Tests/internal/config"
	"github.com/playwright-community/playwright-go"
)

// Browser owns a playwright driver and one launched browser
type Browser struct {
	pw      *playwright.Playwright
	browser playwright.Browser
	config  config.SuiteConfig
}

// Launch starts playwright and launches the configured browser engine
func Launch(cfg config.SuiteConfig) (*Browser, error) {
	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	engine, err := browserType(pw, cfg.Browser)
	if err != nil {
		pw.Stop()
		return nil, err
	}

	b, err := engine.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
		SlowMo:   playwright.Float(cfg.SlowMoMS),
	})
	if err != nil {
		pw.Stop()
		return nil, fmt.Errorf("failed to launch %s: %w", cfg.Browser, err)
	}

	log.Printf("Launched %s (headless=%t)", cfg.Browser, cfg.Headless)
	return &Browser{pw: pw, browser: b, config: cfg}, nil
}

func browserType(pw *playwright.Playwright, name string) (playwright.BrowserType, error) {
	switch name {
	case config.BrowserChromium, "":
		return pw.Chromium, nil
	case config.BrowserFirefox:
		return pw.Firefox, nil
	case config.BrowserWebKit:
		return pw.WebKit, nil
	default:
		return nil, fmt.Errorf("unknown browser %q", name)
	}
}

// NewSession opens a fresh browser context with one page. Each test should
// own its session for its whole duration.
func (b *Browser) NewSession() (*Session, error) {
	ctx, err := b.browser.NewContext(playwright.BrowserNewContextOptions{
		Viewport: &playwright.Size{Width: 1280, Height: 1024},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create browser context: %w", err)
	}
	ctx.SetDefaultTimeout(b.config.TimeoutMS)
	ctx.SetDefaultNavigationTimeout(b.config.TimeoutMS)

	pwPage, err := ctx.NewPage()
	if err != nil {
		ctx.Close()
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	return &Session{context: ctx, page: pwPage}, nil
}

// Close closes the browser and stops the playwright driver
func (b *Browser) Close() error {
	if err := b.browser.Close(); err != nil {
		b.pw.Stop()
		return fmt.Errorf("failed to close browser: %w", err)
	}
	if err := b.pw.Stop(); err != nil {
		return fmt.Errorf("failed to stop playwright: %w", err)
	}
	return nil
}

// Install downloads the driver and the named browser engines
func Install(browsers ...string) error {
	if err := playwright.Install(&playwright.RunOptions{Browsers: browsers}); err != nil {
		return fmt.Errorf("failed to install playwright browsers: %w", err)
	}
	return nil
}
