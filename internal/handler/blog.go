package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/inkwell-blog/internal/queue"
)

// BlogHandler bundles dependencies for the blog CRUD and lookup endpoints.
// Publish is optional; when set, a successful create emits a
// blog.published event (errors are logged by the publisher and ignored so
// the broker can never fail a request).
type BlogHandler struct {
	Blogs   BlogStore
	Users   UserStore
	Publish func(ctx context.Context, ev queue.BlogPublishedEvent) error
}

func NewBlogHandler(b BlogStore, u UserStore) *BlogHandler {
	return &BlogHandler{Blogs: b, Users: u}
}

// ----- DTOs -----

type createBlogReq struct {
	Email       string `json:"email"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl"`
	Content     string `json:"content"`
}
type updateBlogReq struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ImageURL    string `json:"imageUrl"`
	Content     string `json:"content"`
}
type idReq struct {
	ID string `json:"id"`
}
type categoryReq struct {
	Category string `json:"category"`
}

func (r createBlogReq) complete() bool {
	return r.Email != "" && r.Title != "" && r.Description != "" &&
		r.Category != "" && r.ImageURL != "" && r.Content != ""
}

func (r updateBlogReq) complete() bool {
	return r.ID != "" && r.Title != "" && r.Description != "" &&
		r.Category != "" && r.ImageURL != "" && r.Content != ""
}

// Create persists a new blog owned by the user the email resolves to.
func (h *BlogHandler) Create(c echo.Context) error {
	var req createBlogReq
	if err := c.Bind(&req); err != nil {
		return respond(c, http.StatusBadRequest, "Invalid request body", false, nil)
	}
	if !req.complete() {
		return respond(c, http.StatusBadRequest, "All fields are required.", false, nil)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	author, err := h.Users.GetByEmail(ctx, req.Email)
	if err != nil {
		return fail(c, err, "User not found.")
	}

	blog, err := h.Blogs.Create(ctx, req.Title, req.Description, req.Category, req.ImageURL, req.Content, author.ID)
	if err != nil {
		return fail(c, err, "User not found.")
	}

	if h.Publish != nil {
		_ = h.Publish(ctx, queue.BlogPublishedEvent{
			BlogID:      blog.ID,
			Title:       blog.Title,
			Category:    blog.Category,
			AuthorID:    author.ID,
			Author:      author.Username,
			PublishedAt: blog.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	return respond(c, http.StatusCreated, "Blog created successfully.", true, blog)
}

// GetByID returns one blog with its author limited to {username, id}.
func (h *BlogHandler) GetByID(c echo.Context) error {
	var req idReq
	if err := c.Bind(&req); err != nil || req.ID == "" {
		return respond(c, http.StatusBadRequest, "Blog ID is required", false, nil)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	blog, err := h.Blogs.GetByID(ctx, req.ID)
	if err != nil {
		return fail(c, err, "Blog not found")
	}
	return respond(c, http.StatusOK, "Blog fetched successfully", true, blog)
}

// GetAll lists every blog, most recent first.  An empty store is a 202 with
// an empty list, not an error.
func (h *BlogHandler) GetAll(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	blogs, err := h.Blogs.ListAll(ctx)
	if err != nil {
		return fail(c, err, "")
	}
	if len(blogs) == 0 {
		return respond(c, http.StatusAccepted, "No blogs found", true, blogs)
	}
	return respond(c, http.StatusOK, "All blogs fetched successfully", true, blogs)
}

// GetByParam is the free-text lookup.  Without a query it behaves exactly
// like GetAll (though an empty result stays 200 here).  With a query it
// tries title/category first and falls back to the author username match
// only when that found nothing; when the first stage matches, the second
// query is never issued.
func (h *BlogHandler) GetByParam(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	q := c.QueryParam("id")
	if q == "" {
		blogs, err := h.Blogs.ListAll(ctx)
		if err != nil {
			return fail(c, err, "")
		}
		return respond(c, http.StatusOK, "All blogs fetched successfully", true, blogs)
	}

	blogs, err := h.Blogs.SearchTitleOrCategory(ctx, q)
	if err != nil {
		return fail(c, err, "")
	}
	if len(blogs) > 0 {
		return respond(c, http.StatusOK, "Blogs fetched successfully", true, blogs)
	}

	blogs, err = h.Blogs.SearchAuthorUsername(ctx, q)
	if err != nil {
		return fail(c, err, "")
	}
	if len(blogs) > 0 {
		return respond(c, http.StatusOK, "Blogs fetched successfully", true, blogs)
	}
	return respond(c, http.StatusOK, "No blogs found", true, blogs)
}

// FetchByCategory lists blogs with an exact category match.
func (h *BlogHandler) FetchByCategory(c echo.Context) error {
	var req categoryReq
	if err := c.Bind(&req); err != nil || req.Category == "" {
		return respond(c, http.StatusBadRequest, "category is required", false, nil)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	blogs, err := h.Blogs.ListByCategory(ctx, req.Category)
	if err != nil {
		return fail(c, err, "")
	}
	if len(blogs) == 0 {
		return respond(c, http.StatusOK, "No blogs found for this category", true, blogs)
	}
	return respond(c, http.StatusOK, "Blogs fetched successfully", true, blogs)
}

// Update overwrites all content fields of a blog the acting user owns.
func (h *BlogHandler) Update(c echo.Context) error {
	var req updateBlogReq
	if err := c.Bind(&req); err != nil {
		return respond(c, http.StatusBadRequest, "Invalid request body", false, nil)
	}
	if !req.complete() {
		return respond(c, http.StatusBadRequest, "All fields are required.", false, nil)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	blog, err := h.Blogs.Update(ctx, sessionUserID(c), req.ID,
		req.Title, req.Description, req.Category, req.ImageURL, req.Content)
	if err != nil {
		return fail(c, err, "Blog not found.")
	}
	return respond(c, http.StatusOK, "Blog updated successfully.", true, blog)
}

// Delete permanently removes a blog the acting user owns.
func (h *BlogHandler) Delete(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return respond(c, http.StatusBadRequest, "Blog ID is required", false, nil)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Blogs.Delete(ctx, sessionUserID(c), id); err != nil {
		return fail(c, err, "Blog not found")
	}
	return respond(c, http.StatusOK, "Blog deleted successfully", true, nil)
}

// sessionUserID reads the identity the session gate resolved into context.
func sessionUserID(c echo.Context) string {
	if v, ok := c.Get("user_id").(string); ok {
		return v
	}
	return ""
}
