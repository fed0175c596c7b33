package user

import "time"

// User is an account identity. Column names in the store keep the legacy
// casing (User_id, Username) for compatibility with existing data.
type User struct {
	ID           int64     `json:"user_id"`
	FirstName    string    `json:"first_name"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // never expose, never store plaintext
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}
