package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/snapfeed-app/snapfeed-backend/domain"
	"github.com/snapfeed-app/snapfeed-backend/domain/mocks"
	"github.com/snapfeed-app/snapfeed-backend/internal/repository"
)

func TestMediaResolveURLCacheHit(t *testing.T) {
	mockStore := new(mocks.ObjectStore)
	mockCache := new(mocks.URLCache)

	mockCache.On("GetURL", mock.Anything, "posts", "key.jpg").
		Return("https://cdn.example.com/key.jpg", nil).Once()

	repo := repository.NewMediaRepository(mockStore, mockCache)
	url, err := repo.ResolveURL(context.Background(), "posts", "key.jpg")

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/key.jpg", url)
	mockStore.AssertNotCalled(t, "ResolveURL", mock.Anything, mock.Anything, mock.Anything)
}

func TestMediaResolveURLCacheMiss(t *testing.T) {
	mockStore := new(mocks.ObjectStore)
	mockCache := new(mocks.URLCache)

	mockCache.On("GetURL", mock.Anything, "posts", "key.jpg").
		Return("", domain.ErrCacheMiss).Once()
	mockStore.On("ResolveURL", mock.Anything, "posts", "key.jpg").
		Return("https://cdn.example.com/key.jpg", nil).Once()
	mockCache.On("SetURL", mock.Anything, "posts", "key.jpg", "https://cdn.example.com/key.jpg").
		Return(nil).Once()

	repo := repository.NewMediaRepository(mockStore, mockCache)
	url, err := repo.ResolveURL(context.Background(), "posts", "key.jpg")

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/key.jpg", url)
	mockStore.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestMediaResolveURLCacheFailureDegrades(t *testing.T) {
	mockStore := new(mocks.ObjectStore)
	mockCache := new(mocks.URLCache)

	// a broken cache must not fail the request
	mockCache.On("GetURL", mock.Anything, "posts", "key.jpg").
		Return("", domain.ErrInternalServerError).Once()
	mockStore.On("ResolveURL", mock.Anything, "posts", "key.jpg").
		Return("https://cdn.example.com/key.jpg", nil).Once()
	mockCache.On("SetURL", mock.Anything, "posts", "key.jpg", mock.Anything).
		Return(domain.ErrInternalServerError).Once()

	repo := repository.NewMediaRepository(mockStore, mockCache)
	url, err := repo.ResolveURL(context.Background(), "posts", "key.jpg")

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/key.jpg", url)
}

func TestMediaResolveURLStoreFailure(t *testing.T) {
	mockStore := new(mocks.ObjectStore)
	mockCache := new(mocks.URLCache)

	mockCache.On("GetURL", mock.Anything, "posts", "key.jpg").
		Return("", domain.ErrCacheMiss).Once()
	mockStore.On("ResolveURL", mock.Anything, "posts", "key.jpg").
		Return("", domain.ErrInternalServerError).Once()

	repo := repository.NewMediaRepository(mockStore, mockCache)
	_, err := repo.ResolveURL(context.Background(), "posts", "key.jpg")

	assert.ErrorIs(t, err, domain.ErrInternalServerError)
	mockCache.AssertNotCalled(t, "SetURL", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestMediaSavePassesThrough(t *testing.T) {
	mockStore := new(mocks.ObjectStore)
	mockCache := new(mocks.URLCache)

	file := domain.FileUpload{Name: "pic.jpg", Content: []byte{1, 2}}
	mockStore.On("Save", mock.Anything, "posts", "post", file).
		Return("post-abc.jpg", nil).Once()

	repo := repository.NewMediaRepository(mockStore, mockCache)
	key, err := repo.Save(context.Background(), "posts", "post", file)

	require.NoError(t, err)
	assert.Equal(t, "post-abc.jpg", key)
	mockCache.AssertNotCalled(t, "SetURL", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}
