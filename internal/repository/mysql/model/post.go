package model

import (
	"time"

	"github.com/snapfeed-app/snapfeed-backend/domain"
)

// Post rows embed the like set and the comment list as JSON columns, the
// same whole-document shape the domain works with. Image holds the raw
// object key; URLs are resolved at read time and never stored.
type Post struct {
	ID          string           `gorm:"primaryKey;type:varchar(64)"`
	UserID      string           `gorm:"column:user_id;type:varchar(64);index;not null"`
	Description string           `gorm:"type:text;not null"`
	Image       string           `gorm:"type:varchar(255)"`
	Date        time.Time        `gorm:"type:datetime;index"`
	Likes       []string         `gorm:"serializer:json;type:json"`
	Comments    []domain.Comment `gorm:"serializer:json;type:json"`
}

func (Post) TableName() string {
	return "post"
}

func (m *Post) ToDomain() domain.Post {
	return domain.Post{
		ID:          m.ID,
		UserID:      m.UserID,
		Description: m.Description,
		Image:       m.Image,
		Date:        m.Date,
		Likes:       m.Likes,
		Comments:    m.Comments,
	}
}

func NewPostFromDomain(p *domain.Post) *Post {
	return &Post{
		ID:          p.ID,
		UserID:      p.UserID,
		Description: p.Description,
		Image:       p.Image,
		Date:        p.Date,
		Likes:       p.Likes,
		Comments:    p.Comments,
	}
}
