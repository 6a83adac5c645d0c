package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/inkwell-blog/internal/config"
	"github.com/inkwell/inkwell-blog/internal/repository"
	"github.com/inkwell/inkwell-blog/internal/utils"
)

// AuthHandler bundles dependencies for the signup and login endpoints.
type AuthHandler struct {
	Cfg   config.Config
	Users UserStore
}

func NewAuthHandler(cfg config.Config, u UserStore) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Users: u}
}

// ----- DTOs -----

type signupReq struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userPart struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}
type signupData struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}
type loginData struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
	User    userPart  `json:"user"`
}

// Signup creates a new user account.  The password hash never appears in the
// response.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupReq
	if err := c.Bind(&req); err != nil {
		return respond(c, http.StatusBadRequest, "Invalid request body", false, nil)
	}
	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return respond(c, http.StatusBadRequest, "All fields are required", false, nil)
	}
	if len(req.Username) < 2 {
		return respond(c, http.StatusBadRequest, "Username should be atleast 2 characters", false, nil)
	}
	if err := utils.ValidatePassword(req.Password); err != nil {
		return respond(c, http.StatusBadRequest, err.Error(), false, nil)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.Create(ctx, req.Username, req.Email, req.Password, h.Cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			return respond(c, http.StatusBadRequest, "User already exists", false, nil)
		}
		return fail(c, err, "User not found")
	}

	return respond(c, http.StatusCreated, "User created successfully", true, signupData{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	})
}

// Login exchanges email + password for a session token carrying the identity
// claims {id, email, username}.  The lookup failure and the hash mismatch
// stay distinct outcomes, both 401.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return respond(c, http.StatusBadRequest, "Invalid request body", false, nil)
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return respond(c, http.StatusBadRequest, "Email and password are required", false, nil)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return respond(c, http.StatusUnauthorized, "User not found", false, nil)
		}
		return fail(c, err, "User not found")
	}
	if !utils.VerifyPassword(u.PasswordHash, req.Password) {
		return respond(c, http.StatusUnauthorized, "Password is incorrect", false, nil)
	}

	tok, err := utils.NewSessionToken(h.Cfg.JWTSecret, u.ID, u.Email, u.Username, h.Cfg.AccessTTLMin)
	if err != nil {
		return fail(c, err, "")
	}

	return respond(c, http.StatusOK, "Login successful", true, loginData{
		Token:   tok.Token,
		Expires: tok.Exp,
		User:    userPart{ID: u.ID, Email: u.Email, Username: u.Username},
	})
}
