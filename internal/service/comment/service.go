// Package comment implements film ratings and reviews. Comments are
// append-only: there is no edit or delete operation.
package comment

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/stagehype-backend/internal/domain"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100

	minTextLen = 5
	maxTextLen = 2000
)

type commentRepo interface {
	Create(ctx context.Context, c *domain.Comment) (*domain.Comment, error)
	ListByFilm(ctx context.Context, filmID uuid.UUID, limit int) ([]domain.Comment, error)
}

type filmRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Film, error)
}

// Service implements comment operations.
type Service struct {
	log      *slog.Logger
	comments commentRepo
	films    filmRepo
}

// NewService creates a new comment service.
func NewService(logger *slog.Logger, comments commentRepo, films filmRepo) *Service {
	return &Service{
		log:      logger.With("service", "comment"),
		comments: comments,
		films:    films,
	}
}
