package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"recitation-backend/internal/domains/user"
	"recitation-backend/pkg/jwt"
)

// TokenRevoker clears a token on logout.
type TokenRevoker interface {
	Revoke(ctx context.Context, jti string) error
}

type userService struct {
	repo    user.Repository
	tokens  *jwt.Manager
	revoker TokenRevoker
}

func NewUserService(repo user.Repository, tokens *jwt.Manager, revoker TokenRevoker) user.Service {
	return &userService{
		repo:    repo,
		tokens:  tokens,
		revoker: revoker,
	}
}

// Register creates a new account.
func (s *userService) Register(ctx context.Context, req user.RegisterRequest) (*user.UserDTO, error) {
	// Validation is also run at the handler; the service re-checks so it can
	// never be bypassed by another caller.
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// bcrypt cost 12: salted one-way hash, never the password itself.
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	newUser := &user.User{
		FirstName:    req.FirstName,
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		IsAdmin:      false,
		CreatedAt:    time.Now(),
	}

	// Duplicate checks and insert happen in one transaction inside the
	// repository; on failure no partial user row remains.
	id, err := s.repo.Create(ctx, newUser)
	if err != nil {
		return nil, err
	}
	newUser.ID = id

	dto := newUser.ToDTO()
	return &dto, nil
}

// Login authenticates by email and issues an access token.
func (s *userService) Login(ctx context.Context, req user.LoginRequest) (*user.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		// Never reveal whether the email exists.
		return nil, user.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	accessToken, err := s.tokens.GenerateAccessToken(u.ID, u.Username, u.IsAdmin)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}

	return &user.LoginResponse{
		AccessToken: accessToken,
		User:        u.ToDTO(),
	}, nil
}

// Logout revokes the presented token's JTI until its natural expiry.
func (s *userService) Logout(ctx context.Context, tokenID string) error {
	if s.revoker == nil || tokenID == "" {
		return nil
	}
	return s.revoker.Revoke(ctx, tokenID)
}
