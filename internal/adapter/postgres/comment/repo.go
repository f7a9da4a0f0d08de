// Package comment implements the append-only film comment storage using PostgreSQL.
package comment

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/stagehype-backend/internal/adapter/postgres"
	"github.com/heartmarshall/stagehype-backend/internal/domain"
)

const commentColumns = `id, film_id, user_id, rating, text, created_at`

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new comment repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a comment.
func (r *Repo) Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanComment(q.QueryRow(ctx, `
INSERT INTO comments (id, film_id, user_id, rating, text, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING `+commentColumns,
		c.ID, c.FilmID, c.UserID, c.Rating, c.Text, c.CreatedAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "comment", c.ID)
	}
	return created, nil
}

// ListByFilm returns the newest comments on a film.
func (r *Repo) ListByFilm(ctx context.Context, filmID uuid.UUID, limit int) ([]domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT `+commentColumns+` FROM comments WHERE film_id = $1 ORDER BY created_at DESC, id DESC LIMIT $2`,
		filmID, limit,
	)
	if err != nil {
		return nil, postgres.MapError(err, "comment", uuid.Nil)
	}
	defer rows.Close()

	comments := make([]domain.Comment, 0)
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, postgres.MapError(err, "comment", uuid.Nil)
		}
		comments = append(comments, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "comment", uuid.Nil)
	}
	return comments, nil
}

func scanComment(row pgx.Row) (*domain.Comment, error) {
	var (
		c      domain.Comment
		rating int16
	)
	if err := row.Scan(&c.ID, &c.FilmID, &c.UserID, &rating, &c.Text, &c.CreatedAt); err != nil {
		return nil, err
	}
	c.Rating = int(rating)
	return &c, nil
}
