package model

import "time"

// Blog represents a markdown post in the `blogs` table.  A blog belongs to
// exactly one user at creation time and is never reassigned.  Category is
// free text at the store level; the category vocabulary is enforced only by
// the authoring form.
//
// Fields:
//
//	ID          – primary key (UUID string).
//	Title       – post title.
//	Description – short summary shown on listing cards.
//	Category    – free-text category label.
//	ImageURL    – cover image location.
//	Content     – markdown body.
//	AuthorID    – owning user (blogs.author_id → users.id).
//	CreatedAt   – creation timestamp; listings sort on it descending.
//	UpdatedAt   – timestamp of last update.
type Blog struct {
	ID          string    // blogs.id
	Title       string    // blogs.title
	Description string    // blogs.description
	Category    string    // blogs.category
	ImageURL    string    // blogs.image_url
	Content     string    // blogs.content
	AuthorID    string    // blogs.author_id
	CreatedAt   time.Time // blogs.created_at
	UpdatedAt   time.Time // blogs.updated_at
}
