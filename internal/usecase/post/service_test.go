package post_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/snapfeed-app/snapfeed-backend/domain"
	"github.com/snapfeed-app/snapfeed-backend/domain/mocks"
	"github.com/snapfeed-app/snapfeed-backend/internal/usecase/post"
)

func newService(postRepo *mocks.PostRepository, userRepo *mocks.UserRepository, media *mocks.MediaRepository) *post.Service {
	return post.NewService(postRepo, userRepo, media, "posts")
}

func TestCreate(t *testing.T) {
	mockPostRepo := new(mocks.PostRepository)
	mockUserRepo := new(mocks.UserRepository)
	mockMedia := new(mocks.MediaRepository)

	mockUserRepo.On("GetByID", mock.Anything, "u1").
		Return(domain.User{ID: "u1", Posts: 2}, nil).Once()
	mockMedia.On("Save", mock.Anything, "posts", "post", mock.Anything).
		Return("post-key.jpg", nil).Once()
	mockPostRepo.On("Store", mock.Anything, mock.Anything).Return(nil).Once()

	var savedOwner domain.User
	mockUserRepo.On("Update", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			savedOwner = *args.Get(1).(*domain.User)
		}).Return(nil).Once()

	svc := newService(mockPostRepo, mockUserRepo, mockMedia)
	created, err := svc.Create(context.Background(), "u1", "my first sunset",
		domain.FileUpload{Name: "sunset.jpg", Content: []byte{1, 2, 3}})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "u1", created.UserID)
	assert.Equal(t, "post-key.jpg", created.Image)
	assert.False(t, created.Date.IsZero())
	assert.Equal(t, int64(3), savedOwner.Posts)
	mockPostRepo.AssertExpectations(t)
	mockUserRepo.AssertExpectations(t)
	mockMedia.AssertExpectations(t)
}

func TestCreateShortDescriptionRejectedBeforeUpload(t *testing.T) {
	mockPostRepo := new(mocks.PostRepository)
	mockUserRepo := new(mocks.UserRepository)
	mockMedia := new(mocks.MediaRepository)

	mockUserRepo.On("GetByID", mock.Anything, "u1").
		Return(domain.User{ID: "u1"}, nil).Once()

	svc := newService(mockPostRepo, mockUserRepo, mockMedia)
	_, err := svc.Create(context.Background(), "u1", "  hi  ",
		domain.FileUpload{Name: "ok.jpg", Content: []byte{1}})

	assert.ErrorIs(t, err, domain.ErrBadParamInput)
	mockMedia.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockPostRepo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
	mockUserRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestCreateBadExtensionRejectedBeforeUpload(t *testing.T) {
	mockPostRepo := new(mocks.PostRepository)
	mockUserRepo := new(mocks.UserRepository)
	mockMedia := new(mocks.MediaRepository)

	mockUserRepo.On("GetByID", mock.Anything, "u1").
		Return(domain.User{ID: "u1"}, nil).Once()

	svc := newService(mockPostRepo, mockUserRepo, mockMedia)
	_, err := svc.Create(context.Background(), "u1", "a perfectly fine description",
		domain.FileUpload{Name: "malware.exe", Content: []byte{1}})

	assert.ErrorIs(t, err, domain.ErrBadParamInput)
	mockMedia.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	mockPostRepo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
}

func TestCreateUnknownOwner(t *testing.T) {
	mockPostRepo := new(mocks.PostRepository)
	mockUserRepo := new(mocks.UserRepository)
	mockMedia := new(mocks.MediaRepository)

	mockUserRepo.On("GetByID", mock.Anything, "ghost").
		Return(domain.User{}, domain.ErrNotFound).Once()

	svc := newService(mockPostRepo, mockUserRepo, mockMedia)
	_, err := svc.Create(context.Background(), "ghost", "a perfectly fine description",
		domain.FileUpload{Name: "ok.jpg", Content: []byte{1}})

	assert.ErrorIs(t, err, domain.ErrNotFound)
	mockMedia.AssertNotCalled(t, "Save", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestToggleLikeAdd(t *testing.T) {
	mockPostRepo := new(mocks.PostRepository)
	mockUserRepo := new(mocks.UserRepository)
	mockMedia := new(mocks.MediaRepository)

	mockPostRepo.On("GetByID", mock.Anything, "p1").
		Return(domain.Post{ID: "p1", UserID: "u2", Likes: []string{"u3"}}, nil).Once()

	var saved domain.Post
	mockPostRepo.On("Update", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			saved = *args.Get(1).(*domain.Post)
		}).Return(nil).Once()

	svc := newService(mockPostRepo, mockUserRepo, mockMedia)
	liked, err := svc.ToggleLike(context.Background(), "u1", "p1")

	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, []string{"u3", "u1"}, saved.Likes)
	mockPostRepo.AssertExpectations(t)
}

func TestToggleLikeRemove(t *testing.T) {
	mockPostRepo := new(mocks.PostRepository)
	mockUserRepo := new(mocks.UserRepository)
	mockMedia := new(mocks.MediaRepository)

	mockPostRepo.On("GetByID", mock.Anything, "p1").
		Return(domain.Post{ID: "p1", Likes: []string{"u1", "u3"}}, nil).Once()

	var saved domain.Post
	mockPostRepo.On("Update", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			saved = *args.Get(1).(*domain.Post)
		}).Return(nil).Once()

	svc := newService(mockPostRepo, mockUserRepo, mockMedia)
	liked, err := svc.ToggleLike(context.Background(), "u1", "p1")

	require.NoError(t, err)
	assert.False(t, liked)
	assert.Equal(t, []string{"u3"}, saved.Likes)
}

func TestToggleLikeOwnPostAllowed(t *testing.T) {
	mockPostRepo := new(mocks.PostRepository)
	mockUserRepo := new(mocks.UserRepository)
	mockMedia := new(mocks.MediaRepository)

	mockPostRepo.On("GetByID", mock.Anything, "p1").
		Return(domain.Post{ID: "p1", UserID: "u1"}, nil).Once()
	mockPostRepo.On("Update", mock.Anything, mock.Anything).Return(nil).Once()

	svc := newService(mockPostRepo, mockUserRepo, mockMedia)
	liked, err := svc.ToggleLike(context.Background(), "u1", "p1")

	require.NoError(t, err)
	assert.True(t, liked)
}

func TestToggleLikePostNotFound(t *testing.T) {
	mockPostRepo := new(mocks.PostRepository)
	mockUserRepo := new(mocks.UserRepository)
	mockMedia := new(mocks.MediaRepository)

	mockPostRepo.On("GetByID", mock.Anything, "ghost").
		Return(domain.Post{}, domain.ErrNotFound).Once()

	svc := newService(mockPostRepo, mockUserRepo, mockMedia)
	_, err := svc.ToggleLike(context.Background(), "u1", "ghost")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	mockPostRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestAddCommentAppendsInOrder(t *testing.T) {
	mockPostRepo := new(mocks.PostRepository)
	mockUserRepo := new(mocks.UserRepository)
	mockMedia := new(mocks.MediaRepository)

	stored := domain.Post{ID: "p1"}
	mockPostRepo.On("GetByID", mock.Anything, "p1").
		Return(func(ctx context.Context, id string) domain.Post { return stored }, nil).Twice()
	mockPostRepo.On("Update", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			stored = *args.Get(1).(*domain.Post)
		}).Return(nil).Twice()

	svc := newService(mockPostRepo, mockUserRepo, mockMedia)
	require.NoError(t, svc.AddComment(context.Background(), "u1", "p1", "first comment"))
	require.NoError(t, svc.AddComment(context.Background(), "u2", "p1", "second comment"))

	require.Len(t, stored.Comments, 2)
	assert.Equal(t, "first comment", stored.Comments[0].Content)
	assert.Equal(t, "u1", stored.Comments[0].UserID)
	assert.Equal(t, "second comment", stored.Comments[1].Content)
	assert.Equal(t, "u2", stored.Comments[1].UserID)
	assert.False(t, stored.Comments[0].Date.IsZero())
	mockPostRepo.AssertExpectations(t)
}

func TestAddCommentTooShort(t *testing.T) {
	mockPostRepo := new(mocks.PostRepository)
	mockUserRepo := new(mocks.UserRepository)
	mockMedia := new(mocks.MediaRepository)

	mockPostRepo.On("GetByID", mock.Anything, "p1").
		Return(domain.Post{ID: "p1"}, nil).Once()

	svc := newService(mockPostRepo, mockUserRepo, mockMedia)
	err := svc.AddComment(context.Background(), "u1", "p1", " x ")

	assert.ErrorIs(t, err, domain.ErrBadParamInput)
	mockPostRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
