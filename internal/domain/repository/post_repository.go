package repository

import "github.com/ashisrivastavaa/Blog-App/internal/domain/entity"

// PostRepository defines the interface for post-related database operations.
type PostRepository interface {
	Create(p *entity.Post) error
	GetByID(id string) (*entity.Post, error)
	UpdateContent(id, content string) error
	// ReplaceLikes overwrites the post's like set. Concurrent writers race
	// last-write-wins; callers accept that.
	ReplaceLikes(id string, likes []string) error
}
