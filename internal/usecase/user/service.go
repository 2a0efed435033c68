package user

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/snapfeed-app/snapfeed-backend/domain"
	"github.com/snapfeed-app/snapfeed-backend/internal/repository"
)

type Service struct {
	userRepo     domain.UserRepository
	media        domain.MediaRepository
	avatarBucket string
}

var _ domain.UserUsecase = (*Service)(nil)

// NewService will create a new user service object
func NewService(userRepo domain.UserRepository, media domain.MediaRepository, avatarBucket string) *Service {
	return &Service{
		userRepo:     userRepo,
		media:        media,
		avatarBucket: avatarBucket,
	}
}

func (s *Service) Get(ctx context.Context, id string) (domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, err
	}

	if user.Avatar != "" {
		url, err := s.media.ResolveURL(ctx, s.avatarBucket, user.Avatar)
		if err != nil {
			return domain.User{}, err
		}
		user.Avatar = url
	}
	return user, nil
}

func (s *Service) Register(ctx context.Context, id, name, email string) error {
	return s.userRepo.Insert(ctx, &domain.User{
		ID:    id,
		Name:  name,
		Email: email,
	})
}

func (s *Service) UpdateProfile(ctx context.Context, id, name string, avatar *domain.FileUpload) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if name != "" {
		if len(strings.TrimSpace(name)) < 2 {
			return domain.ErrBadParamInput
		}
		user.Name = name
	}

	if avatar != nil {
		if domain.ImageExtension(avatar.Name) == "" {
			return domain.ErrBadParamInput
		}
		key, err := s.media.Save(ctx, s.avatarBucket, "avatar", *avatar)
		if err != nil {
			return err
		}
		user.Avatar = key
	}

	return s.userRepo.Update(ctx, &user)
}

func (s *Service) Search(ctx context.Context, filter, lastKey string) ([]domain.User, string, error) {
	lastID := ""
	if lastKey != "" {
		var err error
		lastID, err = repository.DecodeSearchCursor(lastKey)
		if err != nil {
			return nil, "", domain.ErrBadParamInput
		}
	}

	users, nextID, err := s.userRepo.SearchByName(ctx, filter, lastID, domain.SearchPageSize)
	if err != nil {
		return nil, "", err
	}

	for i := range users {
		if users[i].Avatar == "" {
			continue
		}
		url, err := s.media.ResolveURL(ctx, s.avatarBucket, users[i].Avatar)
		if err != nil {
			logrus.Warnf("failed to resolve avatar for user %s: %v", users[i].ID, err)
			users[i].Avatar = ""
			continue
		}
		users[i].Avatar = url
	}

	nextCursor := ""
	if nextID != "" {
		nextCursor = repository.EncodeSearchCursor(nextID)
	}
	return users, nextCursor, nil
}

// ToggleFollow flips the follow edge and keeps the target's denormalized
// follower counter in step. The two users are persisted with two
// independent writes: a failure of the second one leaves the edge and the
// counter out of sync until a later toggle repairs it. That window is part
// of the design, not something to transact away.
func (s *Service) ToggleFollow(ctx context.Context, actorID, targetID string) (bool, error) {
	actor, err := s.userRepo.GetByID(ctx, actorID)
	if err != nil {
		return false, err
	}

	if actorID == targetID {
		return false, domain.ErrInvalidOperation
	}

	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return false, err
	}

	following, added := domain.ToggleMember(actor.Following, targetID)
	actor.Following = following

	if added {
		target.Followers++
	} else if target.Followers > 0 {
		// floor at zero: a corrupted counter must never go negative
		target.Followers--
	}

	if err := s.userRepo.Update(ctx, &actor); err != nil {
		return false, err
	}
	if err := s.userRepo.Update(ctx, &target); err != nil {
		logrus.Errorf("follow edge persisted but counter write failed for target %s: %v", targetID, err)
		return false, err
	}

	return added, nil
}
