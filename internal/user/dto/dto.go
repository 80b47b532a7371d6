package dto

import "time"

// UserProfile is the public projection of a user row. Password and refresh
// token never leave the service.
type UserProfile struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	CreatedAt time.Time `json:"createdAt"`
}
