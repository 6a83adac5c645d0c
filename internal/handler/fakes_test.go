package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/inkwell-blog/internal/model"
	"github.com/inkwell/inkwell-blog/internal/repository"
	"github.com/inkwell/inkwell-blog/internal/utils"
)

// ----- in-memory stores -----

type fakeUsers struct {
	users map[string]model.User // by id
	next  int
}

func newFakeUsers() *fakeUsers { return &fakeUsers{users: map[string]model.User{}} }

func (f *fakeUsers) add(username, email, password string) model.User {
	hash, _ := utils.HashPassword(password, 4)
	f.next++
	u := model.User{
		ID:           fmt.Sprintf("user-%d", f.next),
		Username:     username,
		Email:        strings.ToLower(email),
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	f.users[u.ID] = u
	return u
}

func (f *fakeUsers) Create(_ context.Context, username, email, password string, cost int) (model.User, error) {
	for _, u := range f.users {
		if u.Email == strings.ToLower(email) {
			return model.User{}, repository.ErrEmailExists
		}
	}
	return f.add(username, email, password), nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (model.User, error) {
	for _, u := range f.users {
		if u.Email == strings.ToLower(email) {
			return u, nil
		}
	}
	return model.User{}, repository.ErrNotFound
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) UpdateProfile(_ context.Context, id, email, username string) (model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	for _, other := range f.users {
		if other.ID != id && other.Email == strings.ToLower(email) {
			return model.User{}, repository.ErrEmailExists
		}
	}
	u.Email = strings.ToLower(email)
	u.Username = username
	f.users[id] = u
	return u, nil
}

func (f *fakeUsers) UpdatePassword(_ context.Context, id, password string, cost int) error {
	u, ok := f.users[id]
	if !ok {
		return repository.ErrNotFound
	}
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	f.users[id] = u
	return nil
}

type fakeBlogs struct {
	rows map[string]repository.BlogRow
	next int

	// query counters for the short-circuit assertions
	titleCatCalls int
	authorCalls   int
}

func newFakeBlogs() *fakeBlogs { return &fakeBlogs{rows: map[string]repository.BlogRow{}} }

func (f *fakeBlogs) Create(_ context.Context, title, description, category, imageURL, content, authorID string) (repository.BlogRow, error) {
	f.next++
	row := repository.BlogRow{
		ID:          fmt.Sprintf("blog-%d", f.next),
		Title:       title,
		Description: description,
		Category:    category,
		Content:     content,
		ImageURL:    imageURL,
		CreatedAt:   time.Now().UTC().Add(time.Duration(f.next) * time.Second),
		Author:      repository.BlogAuthor{Username: "author-of-" + authorID, ID: authorID},
	}
	f.rows[row.ID] = row
	return row, nil
}

func (f *fakeBlogs) GetByID(_ context.Context, id string) (repository.BlogRow, error) {
	row, ok := f.rows[id]
	if !ok {
		return repository.BlogRow{}, repository.ErrNotFound
	}
	return row, nil
}

func (f *fakeBlogs) list(match func(repository.BlogRow) bool) []repository.BlogRow {
	out := make([]repository.BlogRow, 0)
	for _, row := range f.rows {
		if match(row) {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (f *fakeBlogs) ListAll(_ context.Context) ([]repository.BlogRow, error) {
	return f.list(func(repository.BlogRow) bool { return true }), nil
}

func (f *fakeBlogs) ListByCategory(_ context.Context, category string) ([]repository.BlogRow, error) {
	return f.list(func(r repository.BlogRow) bool { return r.Category == category }), nil
}

func (f *fakeBlogs) ListByAuthor(_ context.Context, authorID string) ([]repository.BlogRow, error) {
	rows := f.list(func(r repository.BlogRow) bool { return r.Author.ID == authorID })
	for i := range rows {
		rows[i].Author.ID = ""
	}
	return rows, nil
}

func (f *fakeBlogs) SearchTitleOrCategory(_ context.Context, q string) ([]repository.BlogRow, error) {
	f.titleCatCalls++
	q = strings.ToLower(q)
	return f.list(func(r repository.BlogRow) bool {
		return strings.Contains(strings.ToLower(r.Title), q) ||
			strings.Contains(strings.ToLower(r.Category), q)
	}), nil
}

func (f *fakeBlogs) SearchAuthorUsername(_ context.Context, q string) ([]repository.BlogRow, error) {
	f.authorCalls++
	q = strings.ToLower(q)
	return f.list(func(r repository.BlogRow) bool {
		return strings.Contains(strings.ToLower(r.Author.Username), q)
	}), nil
}

func (f *fakeBlogs) Update(_ context.Context, actorID, id, title, description, category, imageURL, content string) (repository.BlogRow, error) {
	row, ok := f.rows[id]
	if !ok {
		return repository.BlogRow{}, repository.ErrNotFound
	}
	if row.Author.ID != actorID {
		return repository.BlogRow{}, repository.ErrForbidden
	}
	row.Title, row.Description, row.Category = title, description, category
	row.ImageURL, row.Content = imageURL, content
	f.rows[id] = row
	return row, nil
}

func (f *fakeBlogs) Delete(_ context.Context, actorID, id string) error {
	row, ok := f.rows[id]
	if !ok {
		return repository.ErrNotFound
	}
	if row.Author.ID != actorID {
		return repository.ErrForbidden
	}
	delete(f.rows, id)
	return nil
}

// ----- request helpers -----

func newContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return echo.New().NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder, data any) (message string, success bool) {
	t.Helper()
	var env struct {
		Message string          `json:"message"`
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v (%s)", err, rec.Body.String())
	}
	if data != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, data); err != nil {
			t.Fatalf("decode data: %v (%s)", err, env.Data)
		}
	}
	return env.Message, env.Success
}
