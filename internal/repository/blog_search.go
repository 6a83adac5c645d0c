package repository

import (
	"context"
	"strings"
)

// The free-text lookup runs in two stages owned by the handler: first a
// substring match on title or category, then a substring match on the
// author's username only when the first stage finds nothing.  Both stages
// share the listing order (created_at descending).

// SearchTitleOrCategory returns blogs whose title or category contains the
// query, case-insensitively.
func (r *BlogRepo) SearchTitleOrCategory(ctx context.Context, q string) ([]BlogRow, error) {
	like := "%" + strings.ToLower(q) + "%"
	return r.selectRows(ctx,
		"(LOWER(b.title) LIKE ? OR LOWER(b.category) LIKE ?)", like, like)
}

// SearchAuthorUsername returns blogs whose author's username contains the
// query, case-insensitively.
func (r *BlogRepo) SearchAuthorUsername(ctx context.Context, q string) ([]BlogRow, error) {
	like := "%" + strings.ToLower(q) + "%"
	return r.selectRows(ctx, "LOWER(u.username) LIKE ?", like)
}
