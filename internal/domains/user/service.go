package user

import "context"

// Service is the user business logic contract.
type Service interface {
	// Register validates the submission, stores a salted one-way hash of the
	// password and creates the account with is_admin = false.
	Register(ctx context.Context, req RegisterRequest) (*UserDTO, error)

	// Login authenticates by email and returns the identity with a signed
	// access token binding (user_id, username).
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)

	// Logout revokes the presented token so the session is cleared.
	Logout(ctx context.Context, tokenID string) error
}
