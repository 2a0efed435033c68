package model

import (
	"time"

	"github.com/snapfeed-app/snapfeed-backend/domain"
)

type Credential struct {
	Email        string    `gorm:"primaryKey;type:varchar(255)"`
	SubjectID    string    `gorm:"column:subject_id;type:varchar(64);uniqueIndex"`
	PasswordHash string    `gorm:"type:varchar(100);not null"`
	Confirmed    bool      `gorm:"default:false"`
	ConfirmCode  string    `gorm:"type:varchar(8)"`
	ResetCode    string    `gorm:"type:varchar(8)"`
	CreatedAt    time.Time `gorm:"type:datetime"`
	UpdatedAt    time.Time `gorm:"type:datetime"`
}

func (Credential) TableName() string {
	return "credential"
}

func (m *Credential) ToDomain() domain.Credential {
	return domain.Credential{
		Email:        m.Email,
		SubjectID:    m.SubjectID,
		PasswordHash: m.PasswordHash,
		Confirmed:    m.Confirmed,
		ConfirmCode:  m.ConfirmCode,
		ResetCode:    m.ResetCode,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func NewCredentialFromDomain(c *domain.Credential) *Credential {
	return &Credential{
		Email:        c.Email,
		SubjectID:    c.SubjectID,
		PasswordHash: c.PasswordHash,
		Confirmed:    c.Confirmed,
		ConfirmCode:  c.ConfirmCode,
		ResetCode:    c.ResetCode,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}
