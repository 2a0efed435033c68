package domain

import (
	"context"
	"time"
)

const (
	// OwnFeedPageSize is the page size of a user's own-post feed
	OwnFeedPageSize = 1
	// HomeFeedPageSize is the page size of the aggregated home feed
	HomeFeedPageSize = 20
	// SearchPageSize is the page size of the user search listing
	SearchPageSize = 20
)

// OwnFeedCursor marks the last-seen position in a single user's post feed.
type OwnFeedCursor struct {
	ID     string    `json:"id"`
	UserID string    `json:"userId"`
	Date   time.Time `json:"date"`
}

// HomeFeedCursor marks the last-seen position in the home-feed scan.
type HomeFeedCursor struct {
	LastID string `json:"lastKey"`
}

// FeedPage is one page of feed results. LastKey is the opaque token for the
// next page; empty means the listing is exhausted. Posts carry resolved
// image URLs, never raw object keys.
type FeedPage struct {
	Count   int
	LastKey string
	Posts   []Post
}

// FeedUsecase assembles paginated post listings at read time.
//
// The home feed is fan-out-on-read: candidates are computed per request by
// scanning across the caller's followees, nothing is pre-materialized.
type FeedUsecase interface {
	// ListUserPosts pages through userID's own posts, most recent first.
	ListUserPosts(ctx context.Context, userID, cursor string) (FeedPage, error)

	// ListHomeFeed pages through posts authored by userID's followees and
	// by userID themselves. The scan does not guarantee global recency
	// order across owners; this is a documented trade-off, not a bug.
	ListHomeFeed(ctx context.Context, userID, cursor string) (FeedPage, error)
}
