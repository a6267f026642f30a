package services

import (
	"sync"

	"github.com/Marlena/Addon-Tests/internal/models"
	"github.com/google/uuid"
)

// SessionCookieName is the cookie carrying the login token
const SessionCookieName = "amo_session"

// SessionStore keeps logged-in users by token
type SessionStore struct {
	mu       sync.RWMutex
	users    []*models.User
	sessions map[string]*models.User
}

// NewSessionStore creates a store that accepts logins from users
func NewSessionStore(users ...*models.User) *SessionStore {
	return &SessionStore{
		users:    users,
		sessions: make(map[string]*models.User),
	}
}

// Login authenticates a user and returns a new session token
func (s *SessionStore) Login(email, password string) (string, *models.User, error) {
	for _, u := range s.users {
		if u.Authenticate(email, password) == nil {
			token := uuid.New().String()
			s.mu.Lock()
			s.sessions[token] = u
			s.mu.Unlock()
			return token, u, nil
		}
	}
	return "", nil, models.ErrInvalidCredentials
}

// User returns the user logged in with token
func (s *SessionStore) User(token string) (*models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.sessions[token]
	return u, ok
}

// Logout forgets token
func (s *SessionStore) Logout(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
}
