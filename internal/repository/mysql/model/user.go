package model

import (
	"time"

	"github.com/snapfeed-app/snapfeed-backend/domain"
)

// User rows are whole documents: the following list is serialized into a
// JSON column so a follow toggle is a read-modify-write of one row, with no
// edge table to keep in step.
type User struct {
	ID        string    `gorm:"primaryKey;type:varchar(64)"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Email     string    `gorm:"type:varchar(255);uniqueIndex"`
	Avatar    string    `gorm:"type:varchar(255)"`
	Following []string  `gorm:"serializer:json;type:json"`
	Followers int64     `gorm:"default:0"`
	Posts     int64     `gorm:"default:0"`
	CreatedAt time.Time `gorm:"type:datetime"`
	UpdatedAt time.Time `gorm:"type:datetime"`
}

func (User) TableName() string {
	return "user"
}

func (m *User) ToDomain() domain.User {
	return domain.User{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Avatar:    m.Avatar,
		Following: m.Following,
		Followers: m.Followers,
		Posts:     m.Posts,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func NewUserFromDomain(u *domain.User) *User {
	return &User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Avatar:    u.Avatar,
		Following: u.Following,
		Followers: u.Followers,
		Posts:     u.Posts,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
