package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// BlogAuthor is the slice of the owning user a blog response may expose.
// Nothing beyond username and id ever leaves this layer; profile listings
// leave the id blank so only the username is serialized.
type BlogAuthor struct {
	Username string `json:"username"`
	ID       string `json:"id,omitempty"`
}

// BlogRow is a blog joined with its author, shaped for JSON responses.
type BlogRow struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Content     string     `json:"content"`
	ImageURL    string     `json:"imageURL"`
	CreatedAt   time.Time  `json:"createdAt"`
	Author      BlogAuthor `json:"author"`
}

type BlogRepo struct{ DB *sql.DB }

func NewBlogRepo(db *sql.DB) *BlogRepo { return &BlogRepo{DB: db} }

const blogSelect = `SELECT
		b.id, b.title, b.description, b.category, b.content, b.image_url,
		b.created_at, u.username, u.id
	FROM blogs b
	JOIN users u ON u.id = b.author_id`

// Create inserts a blog owned by authorID and returns the stored row.
func (r *BlogRepo) Create(ctx context.Context, title, description, category, imageURL, content, authorID string) (BlogRow, error) {
	id := uuid.NewString()
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO blogs (id, title, description, category, image_url, content, author_id) VALUES (?,?,?,?,?,?,?)",
		id, title, description, category, imageURL, content, authorID)
	if err != nil {
		return BlogRow{}, err
	}
	return r.GetByID(ctx, id)
}

// GetByID fetches one blog with its author.
func (r *BlogRepo) GetByID(ctx context.Context, id string) (BlogRow, error) {
	var b BlogRow
	err := r.DB.QueryRowContext(ctx, blogSelect+" WHERE b.id=?", id).Scan(
		&b.ID, &b.Title, &b.Description, &b.Category, &b.Content, &b.ImageURL,
		&b.CreatedAt, &b.Author.Username, &b.Author.ID)
	if err == sql.ErrNoRows {
		return BlogRow{}, ErrNotFound
	}
	return b, err
}

// ListAll returns every blog, most recent first.
func (r *BlogRepo) ListAll(ctx context.Context) ([]BlogRow, error) {
	return r.selectRows(ctx, "1=1")
}

// ListByCategory returns blogs whose category matches exactly, most recent first.
func (r *BlogRepo) ListByCategory(ctx context.Context, category string) ([]BlogRow, error) {
	return r.selectRows(ctx, "b.category=?", category)
}

// ListByAuthor returns the blogs owned by a user for profile pages.  The
// author id is cleared so the nested author carries the username only.
func (r *BlogRepo) ListByAuthor(ctx context.Context, authorID string) ([]BlogRow, error) {
	rows, err := r.selectRows(ctx, "b.author_id=?", authorID)
	if err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Author.ID = ""
	}
	return rows, nil
}

// Update overwrites all content fields of a blog.  The acting user must own
// the row: a missing blog yields ErrNotFound and a blog owned by someone
// else yields ErrForbidden before any write happens.
func (r *BlogRepo) Update(ctx context.Context, actorID, id, title, description, category, imageURL, content string) (BlogRow, error) {
	if err := r.checkOwner(ctx, actorID, id); err != nil {
		return BlogRow{}, err
	}
	_, err := r.DB.ExecContext(ctx,
		"UPDATE blogs SET title=?, description=?, category=?, image_url=?, content=? WHERE id=?",
		title, description, category, imageURL, content, id)
	if err != nil {
		return BlogRow{}, err
	}
	return r.GetByID(ctx, id)
}

// Delete permanently removes a blog, subject to the same ownership check.
func (r *BlogRepo) Delete(ctx context.Context, actorID, id string) error {
	if err := r.checkOwner(ctx, actorID, id); err != nil {
		return err
	}
	_, err := r.DB.ExecContext(ctx, "DELETE FROM blogs WHERE id=?", id)
	return err
}

func (r *BlogRepo) checkOwner(ctx context.Context, actorID, id string) error {
	var ownerID string
	err := r.DB.QueryRowContext(ctx,
		"SELECT author_id FROM blogs WHERE id=? LIMIT 1", id).Scan(&ownerID)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if ownerID != actorID {
		return ErrForbidden
	}
	return nil
}

// selectRows runs the joined blog query with an extra condition, always
// ordered by creation time descending.
func (r *BlogRepo) selectRows(ctx context.Context, cond string, args ...any) ([]BlogRow, error) {
	rows, err := r.DB.QueryContext(ctx,
		blogSelect+" WHERE "+cond+" ORDER BY b.created_at DESC", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]BlogRow, 0)
	for rows.Next() {
		var b BlogRow
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Description, &b.Category, &b.Content, &b.ImageURL,
			&b.CreatedAt, &b.Author.Username, &b.Author.ID); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
