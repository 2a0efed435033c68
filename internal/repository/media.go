package repository

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/snapfeed-app/snapfeed-backend/domain"
)

// mediaRepository coordinates the external object store and the URL cache.
// Cache failures degrade to direct resolution, never to request failures.
type mediaRepository struct {
	store domain.ObjectStore
	cache domain.URLCache

	resolveGroup singleflight.Group
}

var _ domain.MediaRepository = (*mediaRepository)(nil)

// NewMediaRepository creates the coordinating media layer.
func NewMediaRepository(store domain.ObjectStore, cache domain.URLCache) *mediaRepository {
	return &mediaRepository{
		store: store,
		cache: cache,
	}
}

// Save uploads through to the object store; keys are not cached on write
// because nothing reads them until a feed asks for the URL.
func (r *mediaRepository) Save(ctx context.Context, bucket, kind string, file domain.FileUpload) (string, error) {
	return r.store.Save(ctx, bucket, kind, file)
}

// ResolveURL serves from cache when possible; concurrent misses for the
// same object collapse into one upstream resolution.
func (r *mediaRepository) ResolveURL(ctx context.Context, bucket, key string) (string, error) {
	url, err := r.cache.GetURL(ctx, bucket, key)
	if err == nil {
		return url, nil
	}
	if !errors.Is(err, domain.ErrCacheMiss) {
		logrus.Warnf("url cache get failed for %s/%s: %v", bucket, key, err)
	}

	result, err, _ := r.resolveGroup.Do(bucket+"/"+key, func() (any, error) {
		resolved, err := r.store.ResolveURL(ctx, bucket, key)
		if err != nil {
			return "", err
		}
		if err := r.cache.SetURL(ctx, bucket, key, resolved); err != nil {
			logrus.Warnf("url cache set failed for %s/%s: %v", bucket, key, err)
		}
		return resolved, nil
	})
	if err != nil {
		return "", err
	}

	return result.(string), nil
}
