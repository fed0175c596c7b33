package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"recitation-backend/internal/domains/user"
	"recitation-backend/pkg/jwt"
)

// fakeUserRepository mirrors the store's behavior: duplicate checks happen
// atomically with the insert.
type fakeUserRepository struct {
	users  map[int64]*user.User
	nextID int64
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[int64]*user.User), nextID: 1}
}

func (r *fakeUserRepository) Create(_ context.Context, u *user.User) (int64, error) {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return 0, user.ErrEmailAlreadyRegistered
		}
		if existing.Username == u.Username {
			return 0, user.ErrUsernameAlreadyRegistered
		}
	}
	id := r.nextID
	r.nextID++
	stored := *u
	stored.ID = id
	r.users[id] = &stored
	return id, nil
}

func (r *fakeUserRepository) FindByID(_ context.Context, id int64) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepository) FindByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, user.ErrUserNotFound
}

type fakeRevoker struct {
	revoked []string
}

func (f *fakeRevoker) Revoke(_ context.Context, jti string) error {
	f.revoked = append(f.revoked, jti)
	return nil
}

func newTestService(repo user.Repository, revoker TokenRevoker) user.Service {
	return NewUserService(repo, jwt.NewManager("test-secret", 60), revoker)
}

func validRegisterRequest() user.RegisterRequest {
	return user.RegisterRequest{
		FirstName:       "Ahmed",
		Username:        "ahmed",
		Email:           "ahmed@example.com",
		Password:        "password123",
		ConfirmPassword: "password123",
	}
}

func TestRegisterStoresHashNotPassword(t *testing.T) {
	repo := newFakeUserRepository()
	svc := newTestService(repo, nil)

	dto, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)
	require.NotNil(t, dto)
	assert.False(t, dto.IsAdmin, "self-registration never grants admin")

	stored := repo.users[dto.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "password123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")))
}

func TestRegisterRejectsPasswordMismatchBeforeStorage(t *testing.T) {
	repo := newFakeUserRepository()
	svc := newTestService(repo, nil)

	req := validRegisterRequest()
	req.ConfirmPassword = "different"

	_, err := svc.Register(context.Background(), req)
	require.Error(t, err)
	assert.Empty(t, repo.users, "nothing is stored when confirmation fails")
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepository()
	svc := newTestService(repo, nil)

	_, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	req := validRegisterRequest()
	req.Username = "someone_else"
	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, user.ErrEmailAlreadyRegistered)
}

func TestRegisterRejectsDuplicateUsername(t *testing.T) {
	repo := newFakeUserRepository()
	svc := newTestService(repo, nil)

	_, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	req := validRegisterRequest()
	req.Email = "other@example.com"
	_, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, user.ErrUsernameAlreadyRegistered)
}

func TestLoginRoundTrip(t *testing.T) {
	repo := newFakeUserRepository()
	svc := newTestService(repo, nil)

	_, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	res, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "ahmed@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.Equal(t, "ahmed", res.User.Username)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := newFakeUserRepository()
	svc := newTestService(repo, nil)

	_, err := svc.Register(context.Background(), validRegisterRequest())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), user.LoginRequest{
		Email:    "ahmed@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials)
}

func TestLoginUnknownEmailLooksLikeWrongPassword(t *testing.T) {
	svc := newTestService(newFakeUserRepository(), nil)

	_, err := svc.Login(context.Background(), user.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, user.ErrInvalidCredentials,
		"the error never reveals whether the email exists")
}

func TestLogoutRevokesTokenID(t *testing.T) {
	revoker := &fakeRevoker{}
	svc := newTestService(newFakeUserRepository(), revoker)

	require.NoError(t, svc.Logout(context.Background(), "jti-123"))
	assert.Equal(t, []string{"jti-123"}, revoker.revoked)
}

func TestLogoutWithoutTokenIsNoOp(t *testing.T) {
	revoker := &fakeRevoker{}
	svc := newTestService(newFakeUserRepository(), revoker)

	require.NoError(t, svc.Logout(context.Background(), ""))
	assert.Empty(t, revoker.revoked)
}
