package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/inkwell-blog/internal/config"
	"github.com/inkwell/inkwell-blog/internal/repository"
	"github.com/inkwell/inkwell-blog/internal/utils"
)

// ProfileHandler bundles dependencies for profile read and self-service
// account mutations.  Unlike blog updates, every mutation here is scoped to
// the session's own identity; no id is accepted from the body.
type ProfileHandler struct {
	Cfg   config.Config
	Users UserStore
	Blogs BlogStore
}

func NewProfileHandler(cfg config.Config, u UserStore, b BlogStore) *ProfileHandler {
	return &ProfileHandler{Cfg: cfg, Users: u, Blogs: b}
}

// ----- DTOs -----

type updateProfileReq struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
type changePasswordReq struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

type profileData struct {
	Email     string               `json:"email"`
	Username  string               `json:"username"`
	CreatedAt time.Time            `json:"createdAt"`
	Blogs     []repository.BlogRow `json:"blogs"`
}

// Fetch returns a user's public profile with their blogs.  Each nested blog
// carries only the author's username.
func (h *ProfileHandler) Fetch(c echo.Context) error {
	var req idReq
	if err := c.Bind(&req); err != nil || req.ID == "" {
		return respond(c, http.StatusBadRequest, "ID is required", false, nil)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByID(ctx, req.ID)
	if err != nil {
		return fail(c, err, "User not found")
	}
	blogs, err := h.Blogs.ListByAuthor(ctx, u.ID)
	if err != nil {
		return fail(c, err, "User not found")
	}

	return respond(c, http.StatusOK, "User profile fetched successfully", true, profileData{
		Email:     u.Email,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
		Blogs:     blogs,
	})
}

// Update overwrites the session user's email and username.  Claiming an
// email owned by a different user fails; re-submitting one's own current
// email is idempotent and succeeds.
func (h *ProfileHandler) Update(c echo.Context) error {
	var req updateProfileReq
	if err := c.Bind(&req); err != nil {
		return respond(c, http.StatusBadRequest, "Invalid request body", false, nil)
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Name = strings.TrimSpace(req.Name)
	if req.Email == "" || req.Name == "" {
		return respond(c, http.StatusBadRequest, "Email and name are required", false, nil)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.UpdateProfile(ctx, sessionUserID(c), req.Email, req.Name)
	if err != nil {
		return fail(c, err, "User not found")
	}

	return respond(c, http.StatusOK, "Profile updated successfully", true, userPart{
		ID:       u.ID,
		Email:    u.Email,
		Username: u.Username,
	})
}

// ChangePassword verifies the current password and overwrites it with the
// new one.  The confirmation mismatch is checked before any store access.
func (h *ProfileHandler) ChangePassword(c echo.Context) error {
	var req changePasswordReq
	if err := c.Bind(&req); err != nil {
		return respond(c, http.StatusBadRequest, "Invalid request body", false, nil)
	}
	if req.CurrentPassword == "" || req.NewPassword == "" || req.ConfirmPassword == "" {
		return respond(c, http.StatusBadRequest, "All fields are required", false, nil)
	}
	if req.NewPassword != req.ConfirmPassword {
		return respond(c, http.StatusBadRequest, "New password and confirm password do not match", false, nil)
	}
	if err := utils.ValidatePassword(req.NewPassword); err != nil {
		return respond(c, http.StatusBadRequest, err.Error(), false, nil)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByID(ctx, sessionUserID(c))
	if err != nil {
		return fail(c, err, "User not found")
	}
	if !utils.VerifyPassword(u.PasswordHash, req.CurrentPassword) {
		return respond(c, http.StatusBadRequest, "Current password is incorrect", false, nil)
	}

	if err := h.Users.UpdatePassword(ctx, u.ID, req.NewPassword, h.Cfg.BcryptCost); err != nil {
		return fail(c, err, "User not found")
	}
	return respond(c, http.StatusOK, "Password changed successfully", true, nil)
}
