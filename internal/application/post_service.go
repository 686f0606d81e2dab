package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/ashisrivastavaa/Blog-App/internal/domain/entity"
	repo "github.com/ashisrivastavaa/Blog-App/internal/domain/repository"
)

var ErrPostNotFound = errors.New("post not found")

type PostService struct {
	Posts        repo.PostRepository
	Users        repo.UserRepository
	Logger       *logrus.Logger
	ES           *elasticsearch.Client
	ESPostsIndex string
}

func NewPostService(posts repo.PostRepository, users repo.UserRepository, logger *logrus.Logger, es *elasticsearch.Client, esPostsIndex string) *PostService {
	return &PostService{
		Posts:        posts,
		Users:        users,
		Logger:       logger,
		ES:           es,
		ESPostsIndex: esPostsIndex,
	}
}

// Create stores a new post owned by userID.
func (s *PostService) Create(ctx context.Context, userID, content string) (*entity.Post, error) {
	p := &entity.Post{UserID: userID, Content: content}
	if err := s.Posts.Create(p); err != nil {
		return nil, err
	}
	_ = s.indexPost(ctx, p)
	return p, nil
}

// ToggleLike flips userID's membership in the post's like set: insert if
// absent, remove if present. Read-modify-write; two concurrent toggles on
// the same post race last-write-wins.
func (s *PostService) ToggleLike(ctx context.Context, postID, userID string) error {
	p, err := s.Posts.GetByID(postID)
	if err != nil || p == nil {
		return ErrPostNotFound
	}

	likes := make([]string, 0, len(p.Likes)+1)
	found := false
	for _, id := range p.Likes {
		if id == userID {
			found = true
			continue
		}
		likes = append(likes, id)
	}
	if !found {
		likes = append(likes, userID)
	}

	return s.Posts.ReplaceLikes(p.ID, likes)
}

// GetPost loads a single post for rendering.
func (s *PostService) GetPost(postID string) (*entity.Post, error) {
	p, err := s.Posts.GetByID(postID)
	if err != nil || p == nil {
		return nil, ErrPostNotFound
	}
	return p, nil
}

// UpdateContent overwrites the post's content. The caller's ownership is
// not checked; any authenticated user may edit any post by id.
func (s *PostService) UpdateContent(ctx context.Context, postID, content string) error {
	if err := s.Posts.UpdateContent(postID, content); err != nil {
		return ErrPostNotFound
	}
	p, err := s.Posts.GetByID(postID)
	if err == nil && p != nil {
		_ = s.indexPost(ctx, p)
	}
	return nil
}

func (s *PostService) indexPost(ctx context.Context, p *entity.Post) error {
	if s.ES == nil || s.ESPostsIndex == "" {
		return nil
	}
	doc := map[string]any{
		"id":         p.ID,
		"user_id":    p.UserID,
		"content":    p.Content,
		"created_at": p.CreatedAt.Format(time.RFC3339Nano),
		"updated_at": p.UpdatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESPostsIndex, DocumentID: p.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("post_id", p.ID).Warn("es index failed")
		}
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("post_id", p.ID).Warn("es index response error")
	}
	return nil
}

// Search performs a match query on post content.
func (s *PostService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESPostsIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"match": map[string]any{
				"content": q,
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESPostsIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
