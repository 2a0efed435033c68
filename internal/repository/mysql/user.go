package mysql

import (
	"context"

	"github.com/snapfeed-app/snapfeed-backend/domain"
	"github.com/snapfeed-app/snapfeed-backend/internal/repository/mysql/model"
	"gorm.io/gorm"
)

type userRepository struct {
	DB *gorm.DB
}

var _ domain.UserRepository = (*userRepository)(nil)

// NewUserRepository will create an implementation of domain.UserRepository
func NewUserRepository(db *gorm.DB) *userRepository {
	return &userRepository{
		DB: db,
	}
}

func (m *userRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	var user model.User
	if err := m.DB.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return domain.User{}, domain.ErrNotFound
	}

	return user.ToDomain(), nil
}

func (m *userRepository) Insert(ctx context.Context, u *domain.User) error {
	userModel := model.NewUserFromDomain(u)

	result := m.DB.WithContext(ctx).Create(&userModel)
	if result.Error != nil {
		return result.Error
	}

	u.CreatedAt = userModel.CreatedAt
	u.UpdatedAt = userModel.UpdatedAt

	return nil
}

// Update writes the whole row back. Save (not Updates) so that zero values
// land too: a follower counter decremented to 0 or an emptied following
// list must overwrite what is stored.
func (m *userRepository) Update(ctx context.Context, u *domain.User) error {
	userModel := model.NewUserFromDomain(u)

	return m.DB.WithContext(ctx).Save(&userModel).Error
}

func (m *userRepository) SearchByName(ctx context.Context, filter, lastID string, limit int64) ([]domain.User, string, error) {
	var users []model.User

	query := m.DB.WithContext(ctx).Where("name LIKE ?", "%"+filter+"%")
	if lastID != "" {
		query = query.Where("id > ?", lastID)
	}
	err := query.Order("id").Limit(int(limit + 1)).Find(&users).Error
	if err != nil {
		return nil, "", err
	}

	nextID := ""
	if int64(len(users)) > limit {
		users = users[:limit]
		nextID = users[limit-1].ID
	}

	res := make([]domain.User, len(users))
	for i := range users {
		res[i] = users[i].ToDomain()
	}
	return res, nextID, nil
}
