package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Supported browser engines
const (
	BrowserChromium = "chromium"
	BrowserFirefox  = "firefox"
	BrowserWebKit   = "webkit"
)

// Credentials identify the marketplace account used by login tests
type Credentials struct {
	Email    string
	Password string
	Name     string
}

// SuiteConfig holds configuration for running page objects against a marketplace
type SuiteConfig struct {
	BaseURL     string
	Locale      string
	Application string
	Browser     string
	Headless    bool
	SlowMoMS    float64
	TimeoutMS   float64
	User        Credentials
}

// LoadSuiteConfig loads suite configuration from environment variables
func LoadSuiteConfig(getenv func(string) string) (*SuiteConfig, error) {
	config := &SuiteConfig{
		BaseURL:     strings.TrimRight(getenv("ADDONS_BASE_URL"), "/"),
		Locale:      getenv("ADDONS_LOCALE"),
		Application: getenv("ADDONS_APPLICATION"),
		Browser:     strings.ToLower(getenv("ADDONS_BROWSER")),
		Headless:    true,
		SlowMoMS:    0,
		TimeoutMS:   10000,
		User: Credentials{
			Email:    getenv("ADDONS_USER_EMAIL"),
			Password: getenv("ADDONS_USER_PASSWORD"),
			Name:     getenv("ADDONS_USER_NAME"),
		},
	}

	if config.BaseURL == "" {
		return nil, fmt.Errorf("ADDONS_BASE_URL is required")
	}
	if u, err := url.Parse(config.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("ADDONS_BASE_URL must be an absolute url, got %q", config.BaseURL)
	}
	if config.Locale == "" {
		config.Locale = "en-US" // Default locale used in marketplace paths
	}
	if config.Application == "" {
		config.Application = "firefox"
	}

	switch config.Browser {
	case "":
		config.Browser = BrowserChromium
	case BrowserChromium, BrowserFirefox, BrowserWebKit:
	default:
		return nil, fmt.Errorf("ADDONS_BROWSER must be one of chromium, firefox, webkit, got %q", config.Browser)
	}

	if v := getenv("ADDONS_HEADLESS"); v != "" {
		headless, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("ADDONS_HEADLESS must be a boolean: %w", err)
		}
		config.Headless = headless
	}
	if v := getenv("ADDONS_SLOW_MO_MS"); v != "" {
		slowMo, err := strconv.ParseFloat(v, 64)
		if err != nil || slowMo < 0 {
			return nil, fmt.Errorf("ADDONS_SLOW_MO_MS must be a non-negative number, got %q", v)
		}
		config.SlowMoMS = slowMo
	}
	if v := getenv("ADDONS_TIMEOUT_MS"); v != "" {
		timeout, err := strconv.ParseFloat(v, 64)
		if err != nil || timeout <= 0 {
			return nil, fmt.Errorf("ADDONS_TIMEOUT_MS must be a positive number, got %q", v)
		}
		config.TimeoutMS = timeout
	}

	return config, nil
}

// SiteURL returns the localized application root, e.g. http://host/en-US/firefox
func (c *SuiteConfig) SiteURL() string {
	return fmt.Sprintf("%s/%s/%s", c.BaseURL, c.Locale, c.Application)
}

// HasCredentials reports whether login tests can run
func (c *SuiteConfig) HasCredentials() bool {
	return c.User.Email != "" && c.User.Password != ""
}
