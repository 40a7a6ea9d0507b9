// Package models defines client-side data models.
package models

import "github.com/dmitrijs2005/candidatetracker/internal/common"

// User is the identity returned by the backend on login.
type User struct {
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// IsAdmin reports whether u may use the dashboard.
func (u User) IsAdmin() bool {
	return u.Role == common.RoleAdmin
}
