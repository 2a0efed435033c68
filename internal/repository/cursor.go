package repository

import (
	"encoding/base64"
	"encoding/json"

	"github.com/snapfeed-app/snapfeed-backend/domain"
)

// Cursors are opaque to clients: a base64-encoded JSON envelope tagged with
// the listing kind it belongs to. A token handed to a listing of another
// kind fails decoding with ErrBadParamInput instead of resuming from a
// nonsense position.

const (
	kindOwnFeed  = "own"
	kindHomeFeed = "home"
	kindSearch   = "search"
)

type cursorEnvelope struct {
	Kind string          `json:"k"`
	Pos  json.RawMessage `json:"p"`
}

func encodeCursor(kind string, pos any) string {
	raw, err := json.Marshal(pos)
	if err != nil {
		return ""
	}
	data, err := json.Marshal(cursorEnvelope{Kind: kind, Pos: raw})
	if err != nil {
		return ""
	}
	return base64.StdEncoding.EncodeToString(data)
}

func decodeCursor(kind, token string, pos any) error {
	data, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return domain.ErrBadParamInput
	}
	var env cursorEnvelope
	if err := json.Unmarshal(data, &env); err != nil {
		return domain.ErrBadParamInput
	}
	if env.Kind != kind {
		return domain.ErrBadParamInput
	}
	if err := json.Unmarshal(env.Pos, pos); err != nil {
		return domain.ErrBadParamInput
	}
	return nil
}

// EncodeOwnFeedCursor encodes the last-seen position of an own-post listing.
func EncodeOwnFeedCursor(c domain.OwnFeedCursor) string {
	return encodeCursor(kindOwnFeed, c)
}

// DecodeOwnFeedCursor decodes a token produced by EncodeOwnFeedCursor.
func DecodeOwnFeedCursor(token string) (domain.OwnFeedCursor, error) {
	var c domain.OwnFeedCursor
	err := decodeCursor(kindOwnFeed, token, &c)
	return c, err
}

// EncodeHomeFeedCursor encodes the last-seen position of a home-feed scan.
func EncodeHomeFeedCursor(c domain.HomeFeedCursor) string {
	return encodeCursor(kindHomeFeed, c)
}

// DecodeHomeFeedCursor decodes a token produced by EncodeHomeFeedCursor.
func DecodeHomeFeedCursor(token string) (domain.HomeFeedCursor, error) {
	var c domain.HomeFeedCursor
	err := decodeCursor(kindHomeFeed, token, &c)
	return c, err
}

type searchCursor struct {
	LastID string `json:"lastKey"`
}

// EncodeSearchCursor encodes the last-seen position of a user search.
func EncodeSearchCursor(lastID string) string {
	return encodeCursor(kindSearch, searchCursor{LastID: lastID})
}

// DecodeSearchCursor decodes a token produced by EncodeSearchCursor.
func DecodeSearchCursor(token string) (string, error) {
	var c searchCursor
	if err := decodeCursor(kindSearch, token, &c); err != nil {
		return "", err
	}
	return c.LastID, nil
}
