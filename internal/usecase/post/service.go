package post

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/snapfeed-app/snapfeed-backend/domain"
)

type Service struct {
	postRepo   domain.PostRepository
	userRepo   domain.UserRepository
	media      domain.MediaRepository
	postBucket string
}

var _ domain.PostUsecase = (*Service)(nil)

// NewService will create a new post service object
func NewService(postRepo domain.PostRepository, userRepo domain.UserRepository, media domain.MediaRepository, postBucket string) *Service {
	return &Service{
		postRepo:   postRepo,
		userRepo:   userRepo,
		media:      media,
		postBucket: postBucket,
	}
}

// Create validates everything before the first collaborator write: an
// invalid description or extension must not leave an orphan object in the
// store. The post write and the owner counter write are independent; when
// the second fails the post stays and the counter lags.
func (s *Service) Create(ctx context.Context, ownerID, description string, image domain.FileUpload) (domain.Post, error) {
	owner, err := s.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		return domain.Post{}, err
	}

	if len(strings.TrimSpace(description)) < domain.DescriptionMinLen {
		return domain.Post{}, domain.ErrBadParamInput
	}
	if domain.ImageExtension(image.Name) == "" {
		return domain.Post{}, domain.ErrBadParamInput
	}

	key, err := s.media.Save(ctx, s.postBucket, "post", image)
	if err != nil {
		return domain.Post{}, err
	}

	post := domain.Post{
		ID:          uuid.NewString(),
		UserID:      ownerID,
		Description: description,
		Image:       key,
		Date:        time.Now(),
	}
	if err := s.postRepo.Store(ctx, &post); err != nil {
		return domain.Post{}, err
	}

	owner.Posts++
	if err := s.userRepo.Update(ctx, &owner); err != nil {
		logrus.Errorf("post stored but owner counter write failed for user %s: %v", ownerID, err)
		return domain.Post{}, err
	}

	return post, nil
}

// ToggleLike mutates the like set inside the post document with a single
// write. Unlike follow, liking one's own post is allowed.
func (s *Service) ToggleLike(ctx context.Context, actorID, postID string) (bool, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return false, err
	}

	likes, added := domain.ToggleMember(post.Likes, actorID)
	post.Likes = likes

	if err := s.postRepo.Update(ctx, &post); err != nil {
		return false, err
	}
	return added, nil
}

func (s *Service) AddComment(ctx context.Context, actorID, postID, content string) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}

	if len(strings.TrimSpace(content)) < domain.CommentMinLen {
		return domain.ErrBadParamInput
	}

	post.Comments = append(post.Comments, domain.Comment{
		UserID:  actorID,
		Content: content,
		Date:    time.Now(),
	})

	return s.postRepo.Update(ctx, &post)
}
