// Package donation implements the append-only donation ledger storage using PostgreSQL.
//
// The repository exposes no update or delete path; the donations table
// additionally rejects UPDATE and DELETE with a trigger.
package donation

import (
	"context"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	postgres "github.com/heartmarshall/stagehype-backend/internal/adapter/postgres"
	"github.com/heartmarshall/stagehype-backend/internal/domain"
)

// Monetary columns are read back as text so that NUMERIC values reach
// decimal.Decimal without a float round trip.
var donationColumns = []string{
	"id", "donor_id", "creator_id", "film_id",
	"amount::text", "platform_fee::text", "creator_share::text",
	"message", "idempotency_key", "created_at",
}

// Repo provides donation persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new donation repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create inserts a new ledger row.
func (r *Repo) Create(ctx context.Context, d *domain.Donation) (*domain.Donation, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Insert("donations").
		Columns("id", "donor_id", "creator_id", "film_id", "amount", "platform_fee",
			"creator_share", "message", "idempotency_key", "created_at").
		Values(
			d.ID, d.DonorID, d.CreatorID, d.FilmID,
			sq.Expr("?::numeric", d.Amount.StringFixed(domain.MoneyScale)),
			sq.Expr("?::numeric", d.PlatformFee.StringFixed(domain.MoneyScale)),
			sq.Expr("?::numeric", d.CreatorShare.StringFixed(domain.MoneyScale)),
			d.Message, d.IdempotencyKey, d.CreatedAt,
		).
		Suffix("RETURNING " + columnList()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build donation insert: %w", err)
	}

	created, err := scanDonation(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "donation", d.ID)
	}
	return created, nil
}

// GetByIdempotencyKey returns the donation a donor previously recorded with key.
func (r *Repo) GetByIdempotencyKey(ctx context.Context, donorID uuid.UUID, key string) (*domain.Donation, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	sql, args, err := postgres.Builder().
		Select(donationColumns...).
		From("donations").
		Where(sq.Eq{"donor_id": donorID, "idempotency_key": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build donation lookup: %w", err)
	}

	d, err := scanDonation(q.QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "donation", uuid.Nil)
	}
	return d, nil
}

// List returns donations matching the filter, newest first with id as the
// tie-break. Limit <= 0 means no limit. A zero Before means no upper bound.
func (r *Repo) List(ctx context.Context, filter domain.DonationFilter) ([]domain.Donation, error) {
	b := postgres.Builder().
		Select(donationColumns...).
		From("donations").
		OrderBy("created_at DESC", "id DESC")

	if filter.DonorID != nil {
		b = b.Where(sq.Eq{"donor_id": *filter.DonorID})
	}
	if filter.CreatorID != nil {
		b = b.Where(sq.Eq{"creator_id": *filter.CreatorID})
	}
	if filter.FilmID != nil {
		b = b.Where(sq.Eq{"film_id": *filter.FilmID})
	}
	if !filter.Before.IsZero() {
		b = b.Where(sq.LtOrEq{"created_at": filter.Before})
	}
	if filter.Limit > 0 {
		b = b.Limit(uint64(filter.Limit))
	}

	rows, err := postgres.QueryBuilt(ctx, postgres.QuerierFromCtx(ctx, r.pool), b)
	if err != nil {
		return nil, postgres.MapError(err, "donation", uuid.Nil)
	}

	donations, err := collectDonations(rows)
	if err != nil {
		return nil, postgres.MapError(err, "donation", uuid.Nil)
	}
	return donations, nil
}

// ListAllByCreator returns every donation credited to creatorID recorded at
// or before asOf.
func (r *Repo) ListAllByCreator(ctx context.Context, creatorID uuid.UUID, asOf time.Time) ([]domain.Donation, error) {
	return r.List(ctx, domain.DonationFilter{CreatorID: &creatorID, Before: asOf})
}

// ListAllByFilm returns every donation made in the context of filmID.
func (r *Repo) ListAllByFilm(ctx context.Context, filmID uuid.UUID) ([]domain.Donation, error) {
	return r.List(ctx, domain.DonationFilter{FilmID: &filmID})
}

// ---------------------------------------------------------------------------
// Scanning
// ---------------------------------------------------------------------------

func columnList() string {
	return strings.Join(donationColumns, ", ")
}

func scanDonation(row pgx.Row) (*domain.Donation, error) {
	var (
		d                  domain.Donation
		amount, fee, share string
	)
	err := row.Scan(
		&d.ID, &d.DonorID, &d.CreatorID, &d.FilmID,
		&amount, &fee, &share,
		&d.Message, &d.IdempotencyKey, &d.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if d.Amount, err = decimal.NewFromString(amount); err != nil {
		return nil, fmt.Errorf("parse amount %q: %w", amount, err)
	}
	if d.PlatformFee, err = decimal.NewFromString(fee); err != nil {
		return nil, fmt.Errorf("parse platform_fee %q: %w", fee, err)
	}
	if d.CreatorShare, err = decimal.NewFromString(share); err != nil {
		return nil, fmt.Errorf("parse creator_share %q: %w", share, err)
	}
	return &d, nil
}

func collectDonations(rows pgx.Rows) ([]domain.Donation, error) {
	defer rows.Close()

	donations := make([]domain.Donation, 0)
	for rows.Next() {
		d, err := scanDonation(rows)
		if err != nil {
			return nil, err
		}
		donations = append(donations, *d)
	}
	return donations, rows.Err()
}
