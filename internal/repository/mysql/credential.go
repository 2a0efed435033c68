package mysql

import (
	"context"

	"gorm.io/gorm"

	"github.com/snapfeed-app/snapfeed-backend/domain"
	"github.com/snapfeed-app/snapfeed-backend/internal/repository/mysql/model"
)

type credentialRepository struct {
	DB *gorm.DB
}

var _ domain.CredentialRepository = (*credentialRepository)(nil)

func NewCredentialRepository(db *gorm.DB) *credentialRepository {
	return &credentialRepository{db}
}

func (m *credentialRepository) GetByEmail(ctx context.Context, email string) (domain.Credential, error) {
	var cred model.Credential
	if err := m.DB.WithContext(ctx).First(&cred, "email = ?", email).Error; err != nil {
		return domain.Credential{}, domain.ErrNotFound
	}
	return cred.ToDomain(), nil
}

func (m *credentialRepository) Insert(ctx context.Context, c *domain.Credential) error {
	credModel := model.NewCredentialFromDomain(c)
	return m.DB.WithContext(ctx).Create(&credModel).Error
}

func (m *credentialRepository) Update(ctx context.Context, c *domain.Credential) error {
	credModel := model.NewCredentialFromDomain(c)
	return m.DB.WithContext(ctx).Save(&credModel).Error
}
