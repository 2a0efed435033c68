package domain

import (
	"context"
	"time"
)

// Post is representing the Post data struct.
// Likes and Comments travel inside the post document; every mutation reads
// the whole document, modifies it in memory and writes it back.
type Post struct {
	ID          string    // Unique identifier, generated at creation
	UserID      string    // Owner's subject id
	Description string    // Post text
	Image       string    // Object-store key of the image; a resolved URL in feed responses
	Date        time.Time // Creation timestamp
	Likes       []string  // Subject ids that liked the post; a list treated as a set
	Comments    []Comment // Append-only, list order is temporal order
}

// Comment is a single post comment. Comments are never edited or removed.
type Comment struct {
	UserID  string    `json:"userId"`
	Content string    `json:"comment"`
	Date    time.Time `json:"date"`
}

const (
	// DescriptionMinLen is the minimum trimmed length of a post description
	DescriptionMinLen = 5
	// CommentMinLen is the minimum trimmed length of a comment
	CommentMinLen = 2
)

// PostRepository defines the contract for post data persistence.
type PostRepository interface {
	// GetByID retrieves a single post.
	// Returns ErrNotFound if the post doesn't exist.
	GetByID(ctx context.Context, id string) (Post, error)

	// Store creates a new post.
	Store(ctx context.Context, p *Post) error

	// Update writes back the full post document (last writer wins).
	Update(ctx context.Context, p *Post) error

	// FetchByOwner retrieves posts owned by ownerID ordered by recency
	// descending, resuming from cursor (empty means newest first).
	// Returns the page and the cursor for the next page ("" when there is
	// no further page).
	FetchByOwner(ctx context.Context, ownerID, cursor string, limit int64) ([]Post, string, error)

	// FetchByOwners scans posts whose owner is in ownerIDs, resuming from
	// cursor. The scan walks posts in storage-key order, not in global
	// recency order across owners.
	FetchByOwners(ctx context.Context, ownerIDs []string, cursor string, limit int64) ([]Post, string, error)
}

// PostUsecase defines the business logic contract for post mutations.
type PostUsecase interface {
	// Create validates and stores a new post with its image, then bumps the
	// owner's post counter with an independent second write.
	Create(ctx context.Context, ownerID, description string, image FileUpload) (Post, error)

	// ToggleLike flips actorID's membership in the post's like set and
	// reports whether the like exists after the call.
	ToggleLike(ctx context.Context, actorID, postID string) (bool, error)

	// AddComment appends a comment to the post.
	AddComment(ctx context.Context, actorID, postID, content string) error
}
