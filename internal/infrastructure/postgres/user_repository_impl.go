package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ashisrivastavaa/Blog-App/internal/domain/entity"
	"github.com/ashisrivastavaa/Blog-App/internal/domain/repository"
)

var (
	errNotFound = errors.New("not found")
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(u *entity.User) error {
	ctx := context.Background()
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (email, username, name, age, password_hash, profile_pic)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, u.Email, u.Username, u.Name, u.Age, u.Password, u.ProfilePic)

	return row.Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
}

func (r *UserRepository) GetByID(id string) (*entity.User, error) {
	return r.getOne(`WHERE id = $1`, id)
}

func (r *UserRepository) GetByEmail(email string) (*entity.User, error) {
	return r.getOne(`WHERE email = $1`, email)
}

func (r *UserRepository) getOne(where string, arg any) (*entity.User, error) {
	ctx := context.Background()
	u := &entity.User{}

	row := r.pool.QueryRow(ctx, `
		SELECT id, email, username, name, age, password_hash, profile_pic, created_at, updated_at
		FROM users
	`+where, arg)

	if err := row.Scan(&u.ID, &u.Email, &u.Username, &u.Name, &u.Age, &u.Password,
		&u.ProfilePic, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errNotFound
		}
		return nil, err
	}

	return u, nil
}

func (r *UserRepository) GetByEmailWithPosts(email string) (*entity.User, error) {
	u, err := r.GetByEmail(email)
	if err != nil {
		return nil, err
	}

	ctx := context.Background()
	rows, err := r.pool.Query(ctx, `
		SELECT p.id, p.user_id, p.content, p.created_at, p.updated_at,
		       COALESCE(array_agg(l.user_id::text) FILTER (WHERE l.user_id IS NOT NULL), '{}')
		FROM posts p
		LEFT JOIN post_likes l ON l.post_id = p.id
		WHERE p.user_id = $1
		GROUP BY p.id
		ORDER BY p.created_at DESC
	`, u.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var p entity.Post
		if err := rows.Scan(&p.ID, &p.UserID, &p.Content, &p.CreatedAt, &p.UpdatedAt, &p.Likes); err != nil {
			return nil, err
		}
		u.Posts = append(u.Posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return u, nil
}

func (r *UserRepository) UpdateProfilePic(id, url string) error {
	ctx := context.Background()
	res, err := r.pool.Exec(ctx, `
		UPDATE users
		SET profile_pic = $1, updated_at = now()
		WHERE id = $2
	`, url, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return errNotFound
	}
	return nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
