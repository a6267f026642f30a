package models

import (
	"crypto/subtle"
	"errors"
)

// ErrInvalidCredentials is returned when a login does not match a known user
var ErrInvalidCredentials = errors.New("invalid email or password")

// User is a marketplace account
type User struct {
	Email    string
	Password string
	Name     string
}

// Authenticate checks email and password against the user
func (u *User) Authenticate(email, password string) error {
	if u.Email != email || subtle.ConstantTimeCompare([]byte(u.Password), []byte(password)) != 1 {
		return ErrInvalidCredentials
	}
	return nil
}
