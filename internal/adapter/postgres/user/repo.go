// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/stagehype-backend/internal/adapter/postgres"
	"github.com/heartmarshall/stagehype-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, email, username, name, bio, skills, avatar_url, role, password_hash, created_at, updated_at`

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return u, nil
}

// GetByEmail returns a user by email address (case-insensitive).
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, strings.TrimSpace(email)))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	return u, nil
}

// GetByIDs returns the users with the given IDs in unspecified order.
// Missing IDs are silently skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `SELECT `+userColumns+` FROM users WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	users, err := collectUsers(rows)
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return users, nil
}

// ListUsers returns users ordered by creation time, newest first, optionally
// restricted to one role.
func (r *Repo) ListUsers(ctx context.Context, role *domain.UserRole, limit, offset int) ([]domain.User, error) {
	b := postgres.Builder().
		Select(strings.Split(userColumns, ", ")...).
		From("users").
		OrderBy("created_at DESC", "id DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset))
	if role != nil {
		b = b.Where(sq.Eq{"role": string(*role)})
	}

	rows, err := postgres.QueryBuilt(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	users, err := collectUsers(rows)
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return users, nil
}

// CountUsers returns the number of users, optionally restricted to one role.
func (r *Repo) CountUsers(ctx context.Context, role *domain.UserRole) (int, error) {
	b := postgres.Builder().Select("count(*)").From("users")
	if role != nil {
		b = b.Where(sq.Eq{"role": string(*role)})
	}

	sql, args, err := b.ToSql()
	if err != nil {
		return 0, err
	}

	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "user", uuid.Nil)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a new user and returns the persisted domain.User.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	skills := u.Skills
	if skills == nil {
		skills = []string{}
	}

	created, err := scanUser(q.QueryRow(ctx, `
INSERT INTO users (id, email, username, name, bio, skills, avatar_url, role, password_hash, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING `+userColumns,
		u.ID, u.Email, u.Username, u.Name, u.Bio, skills, u.AvatarURL,
		string(u.Role), u.PasswordHash, u.CreatedAt, u.UpdatedAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}

	return created, nil
}

// UpdateProfile modifies display fields of the given user. Nil arguments keep
// the stored value.
func (r *Repo) UpdateProfile(ctx context.Context, id uuid.UUID, name, bio *string, skills []string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, `
UPDATE users SET
    name       = COALESCE($2, name),
    bio        = COALESCE($3, bio),
    skills     = COALESCE($4, skills),
    updated_at = now()
WHERE id = $1
RETURNING `+userColumns,
		id, name, bio, skills,
	))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return u, nil
}

// UpdateRole sets the role of the given user.
func (r *Repo) UpdateRole(ctx context.Context, id uuid.UUID, role domain.UserRole) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx,
		`UPDATE users SET role = $2, updated_at = now() WHERE id = $1 RETURNING `+userColumns,
		id, string(role),
	))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}

	return u, nil
}

// UpdateRoleByEmail sets the role of the user with the given email.
func (r *Repo) UpdateRoleByEmail(ctx context.Context, email string, role domain.UserRole) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx,
		`UPDATE users SET role = $2, updated_at = now() WHERE lower(email) = lower($1) RETURNING `+userColumns,
		strings.TrimSpace(email), string(role),
	))
	if err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}

	return u, nil
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u    domain.User
		role string
	)
	err := row.Scan(
		&u.ID, &u.Email, &u.Username, &u.Name, &u.Bio, &u.Skills, &u.AvatarURL,
		&role, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	u.Role = domain.UserRole(role)
	return &u, nil
}

func collectUsers(rows pgx.Rows) ([]domain.User, error) {
	defer rows.Close()

	users := make([]domain.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}
