package config

// ServerConfig holds configuration for the fixture marketplace server
type ServerConfig struct {
	Port         string
	TemplatesDir string
	StaticDir    string
	User         Credentials
}

// LoadServerConfig loads server configuration from environment variables
func LoadServerConfig(getenv func(string) string) ServerConfig {
	port := getenv("PORT")
	if port == "" {
		port = "8080" // Default to port 8080
	}

	templates := getenv("ADDONS_TEMPLATES_DIR")
	if templates == "" {
		templates = "templates"
	}

	static := getenv("ADDONS_STATIC_DIR")
	if static == "" {
		static = "static"
	}

	// The account the fixture server accepts; the suite logs in with the same variables
	user := Credentials{
		Email:    getenv("ADDONS_USER_EMAIL"),
		Password: getenv("ADDONS_USER_PASSWORD"),
		Name:     getenv("ADDONS_USER_NAME"),
	}
	if user.Email == "" {
		user.Email = "amo.testing@example.com"
	}
	if user.Password == "" {
		user.Password = "amo.testing"
	}
	if user.Name == "" {
		user.Name = "amo.testing"
	}

	return ServerConfig{
		Port:         port,
		TemplatesDir: templates,
		StaticDir:    static,
		User:         user,
	}
}
