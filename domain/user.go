package domain

import (
	"context"
	"time"
)

// User represents a user entity in the system.
// The ID is the stable subject identifier issued by the credential service
// and never changes after registration.
type User struct {
	ID        string    // Subject id from the credential service (immutable)
	Name      string    // Display name
	Email     string    // Registration email (unique)
	Avatar    string    // Object-store key of the avatar image, empty if none
	Following []string  // Subject ids this user follows; a list treated as a set
	Followers int64     // Denormalized count of inbound follow edges
	Posts     int64     // Denormalized count of authored posts
	CreatedAt time.Time // Account creation timestamp
	UpdatedAt time.Time // Last profile update timestamp
}

// UserRepository defines the contract for user data persistence.
//
// Update writes the whole user document back. Counter fields are written
// as-is: two users touched by one follow toggle are persisted with two
// independent Update calls and there is no transaction spanning them, so the
// follower counter and the following list can disagree transiently.
type UserRepository interface {
	// GetByID retrieves a user by their subject id.
	// Returns ErrNotFound if the user doesn't exist.
	GetByID(ctx context.Context, id string) (User, error)

	// Insert creates a new user record.
	Insert(ctx context.Context, u *User) error

	// Update writes back the full user document (last writer wins).
	Update(ctx context.Context, u *User) error

	// SearchByName scans users whose display name contains filter,
	// resuming after lastID, returning at most limit users and the
	// id to resume from ("" when the scan is exhausted).
	SearchByName(ctx context.Context, filter, lastID string, limit int64) ([]User, string, error)
}

// UserUsecase defines the business logic contract for profile and
// follow-graph operations.
type UserUsecase interface {
	// Get returns the user's profile with the avatar key resolved to a
	// retrieval URL when present.
	Get(ctx context.Context, id string) (User, error)

	// Register creates the profile record for a freshly issued subject id.
	Register(ctx context.Context, id, name, email string) error

	// UpdateProfile changes the display name and/or the avatar image.
	// Empty name means keep; nil avatar means keep.
	UpdateProfile(ctx context.Context, id, name string, avatar *FileUpload) error

	// Search lists users by display-name filter with cursor pagination.
	Search(ctx context.Context, filter, lastKey string) ([]User, string, error)

	// ToggleFollow flips the follow edge actor->target and reports whether
	// the edge exists after the call.
	// Returns ErrInvalidOperation when actor == target and ErrNotFound when
	// either side does not exist.
	ToggleFollow(ctx context.Context, actorID, targetID string) (bool, error)
}
