package entity

import "github.com/google/uuid"

// User represents an authenticated account for data transfer between layers.
// Identity is established by the external provider; GoogleID is the stable
// subject from the OAuth profile.
type User struct {
	ID             uuid.UUID `json:"id"`
	GoogleID       string    `json:"googleId"`
	Email          string    `json:"email"`
	DisplayName    string    `json:"displayName"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	IsPremium      bool      `json:"isPremium"`
}
