package models

import "time"

// UserProfile is the public view of a user account.
type UserProfile struct {
	ID        string    `json:"id"` // UUID
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse represents the response after successful signup or login
type AuthResponse struct {
	Token string      `json:"token"` // JWT bearer token
	User  UserProfile `json:"user"`
}
