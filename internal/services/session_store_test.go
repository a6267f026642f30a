package services

import (
	"errors"
	"testing"

	"github.com/Marlena/Addon-Tests/internal/models"
)

func TestSessionStore(t *testing.T) {
	user := &models.User{Email: "amo.testing@example.com", Password: "secret", Name: "amo.testing"}
	store := NewSessionStore(user)

	// GIVEN a successful login
	token, got, err := store.Login("amo.testing@example.com", "secret")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if token == "" || got != user {
		t.Fatalf("unexpected login result %q, %+v", token, got)
	}

	// THEN the token identifies the user
	if u, ok := store.User(token); !ok || u.Name != "amo.testing" {
		t.Errorf("User() = %+v, %v", u, ok)
	}

	// WHEN logging out
	store.Logout(token)

	// THEN the token is forgotten
	if _, ok := store.User(token); ok {
		t.Error("expected token to be forgotten after logout")
	}

	if _, _, err := store.Login("amo.testing@example.com", "wrong"); !errors.Is(err, models.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}

	second, _, _ := store.Login("amo.testing@example.com", "secret")
	third, _, _ := store.Login("amo.testing@example.com", "secret")
	if second == third {
		t.Error("expected a fresh token for every login")
	}
}
