package entity

import (
	"time"
)

// Post is a text post owned by a single user. Likes holds the ids of users
// who currently like the post; a user appears at most once.
type Post struct {
	ID        string
	UserID    string
	Content   string
	Likes     []string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// LikedBy reports whether userID is in the like set.
func (p *Post) LikedBy(userID string) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
