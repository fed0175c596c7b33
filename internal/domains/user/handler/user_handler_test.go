package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recitation-backend/internal/domains/user"
)

type fakeUserService struct {
	registerErr error
	loginErr    error
	loginRes    *user.LoginResponse
}

func (f *fakeUserService) Register(_ context.Context, req user.RegisterRequest) (*user.UserDTO, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return &user.UserDTO{ID: 1, Username: req.Username, Email: req.Email}, nil
}

func (f *fakeUserService) Login(_ context.Context, _ user.LoginRequest) (*user.LoginResponse, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.loginRes, nil
}

func (f *fakeUserService) Logout(context.Context, string) error {
	return nil
}

func newTestRouter(svc user.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewUserHandler(svc)

	router := gin.New()
	router.POST("/sign_up", h.SignUp)
	router.POST("/sign_in", h.SignIn)
	return router
}

func postForm(router *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func bodyMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	msg, _ := body["message"].(string)
	return msg
}

func signUpForm() url.Values {
	return url.Values{
		"name":             {"Ahmed"},
		"username":         {"ahmed"},
		"email":            {"ahmed@example.com"},
		"password":         {"password123"},
		"confirm password": {"password123"},
	}
}

func TestSignUpMissingFields(t *testing.T) {
	router := newTestRouter(&fakeUserService{})

	form := signUpForm()
	form.Del("email")
	form.Del("username")

	w := postForm(router, "/sign_up", form)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing required fields: username, email", bodyMessage(t, w))
}

func TestSignUpPasswordMismatch(t *testing.T) {
	router := newTestRouter(&fakeUserService{})

	form := signUpForm()
	form.Set("confirm password", "different")

	w := postForm(router, "/sign_up", form)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Passwords do not match!", bodyMessage(t, w))
}

func TestSignUpDuplicateEmail(t *testing.T) {
	router := newTestRouter(&fakeUserService{registerErr: user.ErrEmailAlreadyRegistered})

	w := postForm(router, "/sign_up", signUpForm())
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Email already registered!", bodyMessage(t, w))
}

func TestSignUpDuplicateUsername(t *testing.T) {
	router := newTestRouter(&fakeUserService{registerErr: user.ErrUsernameAlreadyRegistered})

	w := postForm(router, "/sign_up", signUpForm())
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Username already registered!", bodyMessage(t, w))
}

func TestSignUpSuccessRedirectsToSignIn(t *testing.T) {
	router := newTestRouter(&fakeUserService{})

	w := postForm(router, "/sign_up", signUpForm())
	assert.Equal(t, http.StatusCreated, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "/sign_in", body["redirect"])
}

func TestSignInMissingCredentials(t *testing.T) {
	router := newTestRouter(&fakeUserService{})

	w := postForm(router, "/sign_in", url.Values{"email": {"ahmed@example.com"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Please enter both email and password.", bodyMessage(t, w))
}

func TestSignInWrongPassword(t *testing.T) {
	router := newTestRouter(&fakeUserService{loginErr: user.ErrInvalidCredentials})

	w := postForm(router, "/sign_in", url.Values{
		"email":    {"ahmed@example.com"},
		"password": {"wrong"},
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid email or password.", bodyMessage(t, w))
}

func TestSignInSuccessSetsCookieAndRedirect(t *testing.T) {
	router := newTestRouter(&fakeUserService{
		loginRes: &user.LoginResponse{
			AccessToken: "signed-token",
			User:        user.UserDTO{ID: 1, Username: "ahmed"},
		},
	})

	w := postForm(router, "/sign_in", url.Values{
		"email":    {"ahmed@example.com"},
		"password": {"password123"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "/", body["redirect"])
	assert.Equal(t, "signed-token", body["access_token"])

	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, "access_token", cookies[0].Name)
	assert.Equal(t, "signed-token", cookies[0].Value)
}
