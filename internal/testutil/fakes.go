// Package testutil provides in-memory repository fakes for service and
// handler tests.
package testutil

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ashisrivastavaa/Blog-App/internal/domain/entity"
	"github.com/ashisrivastavaa/Blog-App/internal/domain/repository"
)

var errNotFound = errors.New("not found")

type FakeUserRepo struct {
	mu    sync.Mutex
	byID  map[string]*entity.User
	seq   int
	Posts *FakePostRepo
}

func NewFakeUserRepo(posts *FakePostRepo) *FakeUserRepo {
	return &FakeUserRepo{byID: map[string]*entity.User{}, Posts: posts}
}

func (r *FakeUserRepo) Create(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.byID {
		if existing.Email == u.Email || existing.Username == u.Username {
			return errors.New("unique violation")
		}
	}
	r.seq++
	u.ID = fmt.Sprintf("user-%d", r.seq)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.byID[u.ID] = &cp
	return nil
}

func (r *FakeUserRepo) GetByID(id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *FakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, errNotFound
}

func (r *FakeUserRepo) GetByEmailWithPosts(email string) (*entity.User, error) {
	u, err := r.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if r.Posts != nil {
		u.Posts = r.Posts.byUser(u.ID)
	}
	return u, nil
}

func (r *FakeUserRepo) UpdateProfilePic(id, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.byID[id]
	if !ok {
		return errNotFound
	}
	u.ProfilePic = url
	u.UpdatedAt = time.Now()
	return nil
}

type FakePostRepo struct {
	mu   sync.Mutex
	byID map[string]*entity.Post
	seq  int
}

func NewFakePostRepo() *FakePostRepo {
	return &FakePostRepo{byID: map[string]*entity.Post{}}
}

func (r *FakePostRepo) Create(p *entity.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	p.ID = fmt.Sprintf("post-%d", r.seq)
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	cp := *p
	cp.Likes = append([]string(nil), p.Likes...)
	r.byID[p.ID] = &cp
	return nil
}

func (r *FakePostRepo) GetByID(id string) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, errNotFound
	}
	cp := *p
	cp.Likes = append([]string(nil), p.Likes...)
	return &cp, nil
}

func (r *FakePostRepo) UpdateContent(id, content string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return errNotFound
	}
	p.Content = content
	p.UpdatedAt = time.Now()
	return nil
}

func (r *FakePostRepo) ReplaceLikes(id string, likes []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return errNotFound
	}
	p.Likes = append([]string(nil), likes...)
	return nil
}

func (r *FakePostRepo) byUser(userID string) []entity.Post {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entity.Post
	for _, p := range r.byID {
		if p.UserID == userID {
			cp := *p
			cp.Likes = append([]string(nil), p.Likes...)
			out = append(out, cp)
		}
	}
	return out
}

var (
	_ repository.UserRepository = (*FakeUserRepo)(nil)
	_ repository.PostRepository = (*FakePostRepo)(nil)
)
