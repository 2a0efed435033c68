package domain

import (
	"context"
	"path/filepath"
	"strings"
)

// FileUpload is an uploaded file held in memory for a single request.
type FileUpload struct {
	Name    string // Original filename, extension included
	Content []byte
}

// ImageExtension returns the lowercased extension of name if it belongs to
// the allowed image-extension set, or "" otherwise.
func ImageExtension(name string) string {
	ext := strings.ToLower(filepath.Ext(name))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif":
		return ext
	default:
		return ""
	}
}

// ObjectStore is the narrow capability interface over the external blob
// service. Stored posts and users keep the raw key; retrieval URLs are
// produced only at read time and are time-bounded.
type ObjectStore interface {
	// Save uploads the file and returns its generated key. The key is
	// composed of the kind prefix, a fresh unique token and the original
	// extension. Files outside the allowed image-extension set are
	// rejected with ErrBadParamInput before any upload attempt.
	Save(ctx context.Context, bucket, kind string, file FileUpload) (string, error)

	// ResolveURL turns a stored key into a time-bounded retrieval URL.
	ResolveURL(ctx context.Context, bucket, key string) (string, error)
}

// URLCache caches resolved retrieval URLs for a TTL shorter than the URL's
// own lifetime, so a cached entry is always still valid when served.
type URLCache interface {
	GetURL(ctx context.Context, bucket, key string) (string, error)
	SetURL(ctx context.Context, bucket, key, url string) error
}

// MediaRepository coordinates the object store and the URL cache; usecases
// depend on it instead of constructing collaborators ad hoc.
type MediaRepository interface {
	Save(ctx context.Context, bucket, kind string, file FileUpload) (string, error)
	ResolveURL(ctx context.Context, bucket, key string) (string, error)
}
