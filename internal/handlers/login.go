package handlers

import (
	"html/template"
	"log"
	"net/http"

	"github.com/Marlena/Addon-Tests/internal/services"
)

// LoginContent is rendered on the login form
type LoginContent struct {
	To    string
	Email string
	Error string
}

// LoginHandler shows the login form and starts sessions
type LoginHandler struct {
	template *template.Template
	site     *Site
	sessions *services.SessionStore
}

// NewLoginHandler creates a new LoginHandler
func NewLoginHandler(templatesDir string, site *Site, sessions *services.SessionStore) (*LoginHandler, error) {
	tmpl, err := parsePage(templatesDir, "login.html")
	if err != nil {
		return nil, err
	}

	return &LoginHandler{
		template: tmpl,
		site:     site,
		sessions: sessions,
	}, nil
}

// ServeHTTP handles GET and POST /{locale}/{app}/users/login
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	home := "/" + r.PathValue("locale") + "/" + r.PathValue("app") + "/"
	status := http.StatusOK
	var content LoginContent

	switch r.Method {
	case http.MethodGet:
		content.To = r.URL.Query().Get("to")
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Bad request", http.StatusBadRequest)
			return
		}
		content.To = r.PostForm.Get("to")
		content.Email = r.PostForm.Get("username")

		token, user, err := h.sessions.Login(content.Email, r.PostForm.Get("password"))
		if err != nil {
			log.Printf("Failed login for %q", content.Email)
			content.Error = "Please enter a correct username and password. Note that both fields are case-sensitive."
			status = http.StatusUnauthorized
			break
		}

		log.Printf("User %s logged in", user.Name)
		http.SetCookie(w, &http.Cookie{
			Name:     services.SessionCookieName,
			Value:    token,
			Path:     "/",
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		http.Redirect(w, r, localRedirect(content.To, home), http.StatusSeeOther)
		return
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	data, ok := h.site.Layout(r, content, "User Login")
	if !ok {
		http.NotFound(w, r)
		return
	}
	renderStatus(w, h.template, data, status)
}

// LogoutHandler ends the current session
type LogoutHandler struct {
	sessions *services.SessionStore
}

// NewLogoutHandler creates a new LogoutHandler
func NewLogoutHandler(sessions *services.SessionStore) *LogoutHandler {
	return &LogoutHandler{sessions: sessions}
}

// ServeHTTP handles GET /{locale}/{app}/users/logout
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if cookie, err := r.Cookie(services.SessionCookieName); err == nil {
		h.sessions.Logout(cookie.Value)
	}
	http.SetCookie(w, &http.Cookie{
		Name:   services.SessionCookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
	http.Redirect(w, r, "/"+r.PathValue("locale")+"/"+r.PathValue("app")+"/", http.StatusSeeOther)
}
