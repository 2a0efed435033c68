package response

import (
	"time"

	"github.com/snapfeed-app/snapfeed-backend/domain"
)

type Post struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Description string    `json:"description"`
	Image       string    `json:"image,omitempty"`
	Date        string    `json:"date"`
	Likes       []string  `json:"likes"`
	Comments    []Comment `json:"comments"`
}

type Comment struct {
	UserID  string `json:"userId"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
}

// NewPostFromDomain: Domain -> Response. The Image field carries whatever
// the feed assembler put there, which for feed reads is the resolved URL.
func NewPostFromDomain(p *domain.Post) Post {
	comments := make([]Comment, len(p.Comments))
	for i := range p.Comments {
		comments[i] = Comment{
			UserID:  p.Comments[i].UserID,
			Comment: p.Comments[i].Content,
			Date:    p.Comments[i].Date.Format(time.RFC3339),
		}
	}
	return Post{
		ID:          p.ID,
		UserID:      p.UserID,
		Description: p.Description,
		Image:       p.Image,
		Date:        p.Date.Format(time.RFC3339),
		Likes:       p.Likes,
		Comments:    comments,
	}
}

// NewPostListFromDomain converts a feed page into the paginated payload.
func NewPostListFromDomain(page domain.FeedPage) List {
	data := make([]Post, len(page.Posts))
	for i := range page.Posts {
		data[i] = NewPostFromDomain(&page.Posts[i])
	}
	return List{
		Count:   page.Count,
		LastKey: page.LastKey,
		Data:    data,
	}
}
