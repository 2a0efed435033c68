package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/snapfeed-app/snapfeed-backend/domain"
	"github.com/snapfeed-app/snapfeed-backend/internal/repository"
	"github.com/snapfeed-app/snapfeed-backend/internal/repository/mysql/model"
)

type postRepository struct {
	DB *gorm.DB
}

var _ domain.PostRepository = (*postRepository)(nil)

// NewPostRepository will create an implementation of domain.PostRepository
func NewPostRepository(db *gorm.DB) *postRepository {
	return &postRepository{db}
}

func (m *postRepository) GetByID(ctx context.Context, id string) (domain.Post, error) {
	var post model.Post
	if err := m.DB.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		return domain.Post{}, domain.ErrNotFound
	}
	return post.ToDomain(), nil
}

func (m *postRepository) Store(ctx context.Context, p *domain.Post) error {
	postModel := model.NewPostFromDomain(p)
	return m.DB.WithContext(ctx).Create(&postModel).Error
}

// Update writes the whole document back, likes and comments included.
// Concurrent updates of the same post race and the last writer wins; there
// is deliberately no version check here.
func (m *postRepository) Update(ctx context.Context, p *domain.Post) error {
	postModel := model.NewPostFromDomain(p)
	return m.DB.WithContext(ctx).Save(&postModel).Error
}

// FetchByOwner pages a single owner's posts by recency descending. The
// cursor is the {id, owner, date} triple of the last item seen; the id
// breaks ties between posts sharing a timestamp. One extra row is fetched
// to decide whether a further page exists.
func (m *postRepository) FetchByOwner(ctx context.Context, ownerID, cursor string, limit int64) ([]domain.Post, string, error) {
	query := m.DB.WithContext(ctx).Where("user_id = ?", ownerID)

	if cursor != "" {
		pos, err := repository.DecodeOwnFeedCursor(cursor)
		if err != nil {
			return nil, "", domain.ErrBadParamInput
		}
		query = query.Where("date < ? OR (date = ? AND id < ?)", pos.Date, pos.Date, pos.ID)
	}

	var posts []model.Post
	err := query.Order("date DESC, id DESC").Limit(int(limit + 1)).Find(&posts).Error
	if err != nil {
		return nil, "", err
	}

	nextCursor := ""
	if int64(len(posts)) > limit {
		posts = posts[:limit]
		last := posts[limit-1]
		nextCursor = repository.EncodeOwnFeedCursor(domain.OwnFeedCursor{
			ID:     last.ID,
			UserID: last.UserID,
			Date:   last.Date,
		})
	}

	res := make([]domain.Post, len(posts))
	for i := range posts {
		res[i] = posts[i].ToDomain()
	}
	return res, nextCursor, nil
}

// FetchByOwners is a membership scan in primary-key order, not a per-owner
// merge: pages are not globally ordered by recency across owners. Simpler,
// resumable from a single last-seen id, and documented as such.
func (m *postRepository) FetchByOwners(ctx context.Context, ownerIDs []string, cursor string, limit int64) ([]domain.Post, string, error) {
	query := m.DB.WithContext(ctx).Where("user_id IN ?", ownerIDs)

	if cursor != "" {
		pos, err := repository.DecodeHomeFeedCursor(cursor)
		if err != nil {
			return nil, "", domain.ErrBadParamInput
		}
		query = query.Where("id > ?", pos.LastID)
	}

	var posts []model.Post
	err := query.Order("id").Limit(int(limit + 1)).Find(&posts).Error
	if err != nil {
		return nil, "", err
	}

	nextCursor := ""
	if int64(len(posts)) > limit {
		posts = posts[:limit]
		nextCursor = repository.EncodeHomeFeedCursor(domain.HomeFeedCursor{
			LastID: posts[limit-1].ID,
		})
	}

	res := make([]domain.Post, len(posts))
	for i := range posts {
		res[i] = posts[i].ToDomain()
	}
	return res, nextCursor, nil
}
