// Package catalog manages films, their credited artists and moderation.
package catalog

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/stagehype-backend/internal/domain"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type filmRepo interface {
	Create(ctx context.Context, f *domain.Film) (*domain.Film, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Film, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Film, error)
	List(ctx context.Context, filter domain.FilmFilter) ([]domain.Film, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.FilmStatus) (*domain.Film, error)
}

type userRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
}

type auditLogger interface {
	Log(ctx context.Context, record domain.AuditRecord) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service implements catalog operations.
type Service struct {
	log   *slog.Logger
	films filmRepo
	users userRepo
	audit auditLogger
	tx    txManager
}

// NewService creates a new catalog service.
func NewService(
	logger *slog.Logger,
	films filmRepo,
	users userRepo,
	audit auditLogger,
	tx txManager,
) *Service {
	return &Service{
		log:   logger.With("service", "catalog"),
		films: films,
		users: users,
		audit: audit,
		tx:    tx,
	}
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultListLimit
	case limit > maxListLimit:
		return maxListLimit
	default:
		return limit
	}
}
