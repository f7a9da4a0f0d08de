// Package ledger records donations and derives creator earnings from the
// recorded rows. Aggregates are recomputed on every read.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/stagehype-backend/internal/config"
	"github.com/heartmarshall/stagehype-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type donationRepo interface {
	Create(ctx context.Context, d *domain.Donation) (*domain.Donation, error)
	GetByIdempotencyKey(ctx context.Context, donorID uuid.UUID, key string) (*domain.Donation, error)
	List(ctx context.Context, filter domain.DonationFilter) ([]domain.Donation, error)
	ListAllByCreator(ctx context.Context, creatorID uuid.UUID, asOf time.Time) ([]domain.Donation, error)
	ListAllByFilm(ctx context.Context, filmID uuid.UUID) ([]domain.Donation, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

type filmCatalog interface {
	ResolveFilm(ctx context.Context, id uuid.UUID) (*domain.Film, error)
	GetFilmsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Film, error)
}

type donationMetrics interface {
	DonationRecorded(amount, fee decimal.Decimal)
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the donation ledger.
type Service struct {
	log       *slog.Logger
	donations donationRepo
	users     userRepo
	films     filmCatalog
	metrics   donationMetrics
	cfg       config.LedgerConfig
	minAmount decimal.Decimal
	loc       *time.Location
	now       func() time.Time
}

// NewService creates a new ledger service.
func NewService(
	log *slog.Logger,
	donations donationRepo,
	users userRepo,
	films filmCatalog,
	metrics donationMetrics,
	cfg config.LedgerConfig,
) *Service {
	return &Service{
		log:       log.With("service", "ledger"),
		donations: donations,
		users:     users,
		films:     films,
		metrics:   metrics,
		cfg:       cfg,
		minAmount: cfg.MinAmount(),
		loc:       cfg.Location(),
		now:       time.Now,
	}
}

// persistence tags storage faults that the repository did not classify.
func persistence(op string, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w", op, err)
	}
	for _, known := range []error{
		domain.ErrNotFound, domain.ErrAlreadyExists, domain.ErrValidation,
		domain.ErrForbidden, domain.ErrUnauthorized, domain.ErrPersistence,
	} {
		if errors.Is(err, known) {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	return fmt.Errorf("%s: %w: %w", op, domain.ErrPersistence, err)
}
