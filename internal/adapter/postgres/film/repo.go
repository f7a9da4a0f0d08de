// Package film implements the Film catalog repository using PostgreSQL.
package film

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

const (
	defaultLimit = 50
	maxLimit     = 200

	filmColumns = `id, creator_id, title, description, genre, mood, year, duration_min, language, status, created_at, updated_at`
)

// Repo provides film and credit persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new film repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a film together with its credits. Callers that need the
// two inserts to be atomic run it inside TxManager.RunInTx.
func (r *Repo) Create(ctx context.Context, f *domain.Film) (*domain.Film, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanFilm(q.QueryRow(ctx, `
INSERT INTO films (id, creator_id, title, description, genre, mood, year, duration_min, language, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING `+filmColumns,
		f.ID, f.CreatorID, f.Title, f.Description, f.Genre, f.Mood, f.Year, f.DurationMin,
		f.Language, string(f.Status), f.CreatedAt, f.UpdatedAt,
	))
	if err != nil {
		return nil, postgres.MapError(err, "film", f.ID)
	}

	if err := r.AddCredits(ctx, created.ID, f.Credits); err != nil {
		return nil, err
	}
	created.Credits = make([]domain.FilmCredit, len(f.Credits))
	for i, c := range f.Credits {
		c.FilmID = created.ID
		created.Credits[i] = c
	}

	return created, nil
}

// AddCredits links artists to a film. Existing (film, artist) pairs are left untouched.
func (r *Repo) AddCredits(ctx context.Context, filmID uuid.UUID, credits []domain.FilmCredit) error {
	if len(credits) == 0 {
		return nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	batch := &pgx.Batch{}
	for _, c := range credits {
		batch.Queue(
			`INSERT INTO film_credits (film_id, artist_id, role) VALUES ($1, $2, $3)
			 ON CONFLICT (film_id, artist_id) DO NOTHING`,
			filmID, c.ArtistID, c.Role,
		)
	}

	br := q.SendBatch(ctx, batch)
	defer br.Close()

	for range credits {
		if _, err := br.Exec(); err != nil {
			return postgres.MapError(err, "film_credit", filmID)
		}
	}
	return nil
}

// UpdateStatus sets the moderation status of a film.
func (r *Repo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.FilmStatus) (*domain.Film, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	f, err := scanFilm(q.QueryRow(ctx,
		`UPDATE films SET status = $2, updated_at = now() WHERE id = $1 RETURNING `+filmColumns,
		id, string(status),
	))
	if err != nil {
		return nil, postgres.MapError(err, "film", id)
	}

	credits, err := r.creditsFor(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	f.Credits = credits[id]
	return f, nil
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns a film with its credits.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Film, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	f, err := scanFilm(q.QueryRow(ctx, `SELECT `+filmColumns+` FROM films WHERE id = $1`, id))
	if err != nil {
		return nil, postgres.MapError(err, "film", id)
	}

	credits, err := r.creditsFor(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	f.Credits = credits[id]
	return f, nil
}

// GetByIDs returns films with credits for the given IDs. Missing IDs are skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Film, error) {
	if len(ids) == 0 {
		return []domain.Film{}, nil
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `SELECT `+filmColumns+` FROM films WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, postgres.MapError(err, "film", uuid.Nil)
	}

	return r.collectWithCredits(ctx, rows)
}

// List returns films matching the filter. Default order is newest first.
func (r *Repo) List(ctx context.Context, filter domain.FilmFilter) ([]domain.Film, error) {
	limit := filter.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	order := []string{"created_at DESC", "id DESC"}
	if filter.OldestFirst {
		order = []string{"created_at ASC", "id ASC"}
	}

	b := postgres.Builder().
		Select(strings.Split(filmColumns, ", ")...).
		From("films").
		OrderBy(order...).
		Limit(uint64(limit)).
		Offset(uint64(max(filter.Offset, 0)))

	if filter.Status != nil {
		b = b.Where(sq.Eq{"status": string(*filter.Status)})
	}
	if filter.CreatorID != nil {
		b = b.Where(sq.Or{
			sq.Eq{"creator_id": *filter.CreatorID},
			sq.Expr("id IN (SELECT film_id FROM film_credits WHERE artist_id = ?)", *filter.CreatorID),
		})
	}
	if filter.Genre != nil && *filter.Genre != "" {
		b = b.Where("lower(genre) = lower(?)", *filter.Genre)
	}

	rows, err := postgres.QueryBuilt(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return nil, postgres.MapError(err, "film", uuid.Nil)
	}

	return r.collectWithCredits(ctx, rows)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (r *Repo) collectWithCredits(ctx context.Context, rows pgx.Rows) ([]domain.Film, error) {
	films, err := collectFilms(rows)
	if err != nil {
		return nil, postgres.MapError(err, "film", uuid.Nil)
	}
	if len(films) == 0 {
		return films, nil
	}

	ids := make([]uuid.UUID, len(films))
	for i := range films {
		ids[i] = films[i].ID
	}

	credits, err := r.creditsFor(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range films {
		films[i].Credits = credits[films[i].ID]
	}
	return films, nil
}

func (r *Repo) creditsFor(ctx context.Context, filmIDs []uuid.UUID) (map[uuid.UUID][]domain.FilmCredit, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx,
		`SELECT film_id, artist_id, role FROM film_credits WHERE film_id = ANY($1) ORDER BY film_id, role, artist_id`,
		filmIDs,
	)
	if err != nil {
		return nil, postgres.MapError(err, "film_credit", uuid.Nil)
	}
	defer rows.Close()

	result := make(map[uuid.UUID][]domain.FilmCredit, len(filmIDs))
	for rows.Next() {
		var c domain.FilmCredit
		if err := rows.Scan(&c.FilmID, &c.ArtistID, &c.Role); err != nil {
			return nil, postgres.MapError(err, "film_credit", uuid.Nil)
		}
		result[c.FilmID] = append(result[c.FilmID], c)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "film_credit", uuid.Nil)
	}
	return result, nil
}

func scanFilm(row pgx.Row) (*domain.Film, error) {
	var (
		f      domain.Film
		status string
	)
	err := row.Scan(
		&f.ID, &f.CreatorID, &f.Title, &f.Description, &f.Genre, &f.Mood,
		&f.Year, &f.DurationMin, &f.Language, &status, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	f.Status = domain.FilmStatus(status)
	return &f, nil
}

func collectFilms(rows pgx.Rows) ([]domain.Film, error) {
	defer rows.Close()

	films := make([]domain.Film, 0)
	for rows.Next() {
		f, err := scanFilm(rows)
		if err != nil {
			return nil, err
		}
		films = append(films, *f)
	}
	return films, rows.Err()
}
