package entity

import (
	"time"
)

// User is the aggregate root for user domain
// PasswordHash holds the credential verifier and is never serialized.
type User struct {
	ID           string
	Email        string
	PasswordHash string `json:"-"`
	Name         string
	CreatedAt    time.Time
}

// PublicUser is the projection of a User returned to callers.
type PublicUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) Public() PublicUser {
	return PublicUser{ID: u.ID, Email: u.Email, Name: u.Name, CreatedAt: u.CreatedAt}
}
