package feed

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/snapfeed-app/snapfeed-backend/domain"
)

type Service struct {
	postRepo   domain.PostRepository
	userRepo   domain.UserRepository
	media      domain.MediaRepository
	postBucket string
}

var _ domain.FeedUsecase = (*Service)(nil)

// NewService will create a new feed service object
func NewService(postRepo domain.PostRepository, userRepo domain.UserRepository, media domain.MediaRepository, postBucket string) *Service {
	return &Service{
		postRepo:   postRepo,
		userRepo:   userRepo,
		media:      media,
		postBucket: postBucket,
	}
}

func (s *Service) ListUserPosts(ctx context.Context, userID, cursor string) (domain.FeedPage, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return domain.FeedPage{}, err
	}

	posts, nextCursor, err := s.postRepo.FetchByOwner(ctx, userID, cursor, domain.OwnFeedPageSize)
	if err != nil {
		return domain.FeedPage{}, err
	}

	posts, err = s.resolveImages(ctx, posts)
	if err != nil {
		return domain.FeedPage{}, err
	}

	return domain.FeedPage{
		Count:   len(posts),
		LastKey: nextCursor,
		Posts:   posts,
	}, nil
}

// ListHomeFeed assembles the feed at read time across the caller's
// followees plus the caller themselves, so a user with no followees still
// sees their own posts.
func (s *Service) ListHomeFeed(ctx context.Context, userID, cursor string) (domain.FeedPage, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return domain.FeedPage{}, err
	}

	owners := make([]string, 0, len(user.Following)+1)
	owners = append(owners, user.Following...)
	owners = append(owners, userID)

	posts, nextCursor, err := s.postRepo.FetchByOwners(ctx, owners, cursor, domain.HomeFeedPageSize)
	if err != nil {
		return domain.FeedPage{}, err
	}

	posts, err = s.resolveImages(ctx, posts)
	if err != nil {
		return domain.FeedPage{}, err
	}

	return domain.FeedPage{
		Count:   len(posts),
		LastKey: nextCursor,
		Posts:   posts,
	}, nil
}

// resolveImages swaps each raw image key for a retrieval URL on the
// request-scoped copies. The items are independent, so the lookups run
// concurrently; the stored posts keep their raw keys.
func (s *Service) resolveImages(ctx context.Context, posts []domain.Post) ([]domain.Post, error) {
	g, ctx := errgroup.WithContext(ctx)

	for i := range posts {
		if posts[i].Image == "" {
			continue
		}
		g.Go(func() error {
			url, err := s.media.ResolveURL(ctx, s.postBucket, posts[i].Image)
			if err != nil {
				return err
			}
			posts[i].Image = url
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return posts, nil
}
