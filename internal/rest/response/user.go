package response

import "github.com/snapfeed-app/snapfeed-backend/domain"

const DateTimeFormat = "2006-01-02 15:04:05"

type User struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email,omitempty"`
	Avatar    string   `json:"avatar,omitempty"`
	Following []string `json:"following"`
	Followers int64    `json:"followers"`
	Posts     int64    `json:"posts"`
}

// NewUserFromDomain: Domain -> Response
func NewUserFromDomain(u *domain.User) User {
	return User{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Avatar:    u.Avatar,
		Following: u.Following,
		Followers: u.Followers,
		Posts:     u.Posts,
	}
}
