package models

import "time"

// User is a registered account. PasswordHash holds the opaque output of the
// one-way hash function and must never be returned to clients.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
