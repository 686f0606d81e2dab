package repository

import "github.com/ashisrivastavaa/Blog-App/internal/domain/entity"

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(u *entity.User) error
	GetByID(id string) (*entity.User, error)
	GetByEmail(email string) (*entity.User, error)
	// GetByEmailWithPosts also loads the user's posts, newest first.
	GetByEmailWithPosts(email string) (*entity.User, error)
	UpdateProfilePic(id, url string) error
}
