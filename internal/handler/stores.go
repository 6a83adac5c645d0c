package handler

import (
	"context"

	"github.com/inkwell/inkwell-blog/internal/model"
	"github.com/inkwell/inkwell-blog/internal/repository"
)

// UserStore is the slice of the user repository the handlers consume.
// *repository.UserRepo satisfies it; tests substitute in-memory fakes.
type UserStore interface {
	Create(ctx context.Context, username, email, password string, cost int) (model.User, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByID(ctx context.Context, id string) (model.User, error)
	UpdateProfile(ctx context.Context, id, email, username string) (model.User, error)
	UpdatePassword(ctx context.Context, id, password string, cost int) error
}

// BlogStore is the slice of the blog repository the handlers consume.
// *repository.BlogRepo satisfies it.  Keeping the two search stages as
// separate methods lets the free-text handler own the fallback branching and
// its short-circuit.
type BlogStore interface {
	Create(ctx context.Context, title, description, category, imageURL, content, authorID string) (repository.BlogRow, error)
	GetByID(ctx context.Context, id string) (repository.BlogRow, error)
	ListAll(ctx context.Context) ([]repository.BlogRow, error)
	ListByCategory(ctx context.Context, category string) ([]repository.BlogRow, error)
	ListByAuthor(ctx context.Context, authorID string) ([]repository.BlogRow, error)
	SearchTitleOrCategory(ctx context.Context, q string) ([]repository.BlogRow, error)
	SearchAuthorUsername(ctx context.Context, q string) ([]repository.BlogRow, error)
	Update(ctx context.Context, actorID, id, title, description, category, imageURL, content string) (repository.BlogRow, error)
	Delete(ctx context.Context, actorID, id string) error
}
