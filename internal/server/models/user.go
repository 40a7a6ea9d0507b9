// Package models holds the server-side records that are not shared with
// the client.
package models

import (
	"strings"
	"time"
)

// User is a registered account. PasswordHash is a bcrypt hash.
type User struct {
	ID           string
	Email        string
	PasswordHash []byte
	Role         string
	CreatedAt    time.Time
}

// DisplayName is the part of the email before '@'.
func (u *User) DisplayName() string {
	name, _, _ := strings.Cut(u.Email, "@")
	return name
}
