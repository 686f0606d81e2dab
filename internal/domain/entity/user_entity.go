package entity

import (
	"time"
)

// User is the aggregate root for the user domain.
// Passwords are stored as bcrypt hashes in Password field.
type User struct {
	ID         string
	Email      string
	Username   string
	Name       string
	Age        int
	Password   string
	ProfilePic string // URL of the uploaded profile picture, empty if none
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Posts owned by this user, newest first. Populated only when the
	// repository is asked for them.
	Posts []Post
}
