package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ashisrivastavaa/Blog-App/internal/domain/entity"
	"github.com/ashisrivastavaa/Blog-App/internal/domain/repository"
)

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

func (r *PostRepository) Create(p *entity.Post) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO posts (user_id, content)
		VALUES ($1, $2)
		RETURNING id, created_at, updated_at
	`, p.UserID, p.Content)

	return row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *PostRepository) GetByID(id string) (*entity.Post, error) {
	ctx := context.Background()
	p := &entity.Post{}

	row := r.pool.QueryRow(ctx, `
		SELECT p.id, p.user_id, p.content, p.created_at, p.updated_at,
		       COALESCE(array_agg(l.user_id::text) FILTER (WHERE l.user_id IS NOT NULL), '{}')
		FROM posts p
		LEFT JOIN post_likes l ON l.post_id = p.id
		WHERE p.id = $1
		GROUP BY p.id
	`, id)

	if err := row.Scan(&p.ID, &p.UserID, &p.Content, &p.CreatedAt, &p.UpdatedAt, &p.Likes); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errNotFound
		}
		return nil, err
	}

	return p, nil
}

func (r *PostRepository) UpdateContent(id, content string) error {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `
		UPDATE posts
		SET content = $1, updated_at = now()
		WHERE id = $2
	`, content, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return errNotFound
	}
	return nil
}

func (r *PostRepository) ReplaceLikes(id string, likes []string) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM post_likes WHERE post_id = $1`, id); err != nil {
		return err
	}
	for _, uid := range likes {
		if _, err := tx.Exec(ctx, `
			INSERT INTO post_likes (post_id, user_id)
			VALUES ($1, $2)
			ON CONFLICT DO NOTHING
		`, id, uid); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

var _ repository.PostRepository = (*PostRepository)(nil)
