package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"recitation-backend/internal/domains/user"
	"recitation-backend/internal/shared/middleware"
	"recitation-backend/internal/shared/response"
	"recitation-backend/pkg/logger"
)

// UserHandler serves the sign-up / sign-in / logout surface. Stateless; all
// identity comes from the verified token in the request context.
type UserHandler struct {
	service user.Service
}

func NewUserHandler(service user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// ========================================
// SIGN UP
// ========================================

// SignUpForm handles GET /sign_up. Templates are rendered by an external
// frontend; the backend describes the expected submission.
func (h *UserHandler) SignUpForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"form":   "sign_up",
		"action": "/sign_up",
		"method": "POST",
		"fields": []string{"first_name", "username", "email", "password", "confirm_password"},
	})
}

// SignUp handles POST /sign_up. Accepts a JSON body or the legacy
// form-encoded body (whose password confirmation field name contains a
// space, so it is read explicitly rather than bound).
func (h *UserHandler) SignUp(c *gin.Context) {
	req := parseRegisterRequest(c)

	if missing := req.MissingFields(); len(missing) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Missing required fields: " + strings.Join(missing, ", "),
		})
		return
	}

	if req.Password != req.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Passwords do not match!"})
		return
	}

	dto, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		h.handleRegisterError(c, err)
		return
	}

	response.SuccessWithRedirect(c, http.StatusCreated, "User registered successfully!", "/sign_in", gin.H{"user": dto})
}

func parseRegisterRequest(c *gin.Context) user.RegisterRequest {
	if strings.HasPrefix(c.ContentType(), "application/json") {
		var req user.RegisterRequest
		_ = c.ShouldBindJSON(&req)
		return req
	}

	return user.RegisterRequest{
		FirstName:       c.PostForm("name"),
		Username:        c.PostForm("username"),
		Email:           c.PostForm("email"),
		Password:        c.PostForm("password"),
		ConfirmPassword: c.PostForm("confirm password"),
	}
}

func (h *UserHandler) handleRegisterError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, user.ErrEmailAlreadyRegistered):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Email already registered!"})
	case errors.Is(err, user.ErrUsernameAlreadyRegistered):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username already registered!"})
	case errors.Is(err, user.ErrPasswordMismatch):
		c.JSON(http.StatusBadRequest, gin.H{"message": "Passwords do not match!"})
	case isValidationError(err):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		logger.Error("register failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error occurred."})
	}
}

// ========================================
// SIGN IN
// ========================================

// SignInForm handles GET /sign_in.
func (h *UserHandler) SignInForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"form":   "sign_in",
		"action": "/sign_in",
		"method": "POST",
		"fields": []string{"email", "password"},
	})
}

// SignIn handles POST /sign_in (form body, per the legacy surface).
func (h *UserHandler) SignIn(c *gin.Context) {
	req := user.LoginRequest{
		Email:    c.PostForm("email"),
		Password: c.PostForm("password"),
	}
	if req.Email == "" && req.Password == "" && strings.HasPrefix(c.ContentType(), "application/json") {
		_ = c.ShouldBindJSON(&req)
	}

	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please enter both email and password."})
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password."})
			return
		}
		logger.Error("login failed", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server error occurred."})
		return
	}

	// The browser surface carries the token in a cookie; API clients use the
	// access_token from the body as a Bearer header.
	c.SetCookie(middleware.AccessTokenCookie, res.AccessToken, 0, "/", "", false, true)

	c.JSON(http.StatusOK, gin.H{
		"redirect":     "/",
		"access_token": res.AccessToken,
		"user":         res.User,
	})
}

// ========================================
// LOGOUT
// ========================================

// Logout handles GET /logout: revoke the token, drop the cookie, redirect.
func (h *UserHandler) Logout(c *gin.Context) {
	if ident, ok := middleware.GetIdentity(c); ok {
		if err := h.service.Logout(c.Request.Context(), ident.TokenID); err != nil {
			logger.Error("token revocation failed", err)
		}
	}

	c.SetCookie(middleware.AccessTokenCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/sign_in")
}

// Me handles GET /me for authenticated API clients.
func (h *UserHandler) Me(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		response.Unauthorized(c, "authentication required")
		return
	}
	response.Success(c, http.StatusOK, "", gin.H{
		"user_id":  ident.UserID,
		"username": ident.Username,
		"is_admin": ident.IsAdmin,
	})
}

func isValidationError(err error) bool {
	var errs validation.Errors
	if errors.As(err, &errs) {
		return true
	}
	var obj validation.ErrorObject
	return errors.As(err, &obj)
}
