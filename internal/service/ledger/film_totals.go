package ledger

import (
	"context"

	"github.com/google/uuid"

	"github.com/heartmarshall/stagehype-backend/internal/domain"
	"github.com/heartmarshall/stagehype-backend/pkg/ctxutil"
)

// FilmLedger is the donation summary of one film.
type FilmLedger struct {
	Film      *domain.Film
	Totals    domain.FilmTotals
	Donations []domain.Donation
}

// ComputeFilmTotals summarises donations made in the context of a film.
// Visible to the film's payable creators, moderators and admins.
func (s *Service) ComputeFilmTotals(ctx context.Context, filmID uuid.UUID) (*FilmLedger, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	film, err := s.films.ResolveFilm(ctx, filmID)
	if err != nil {
		return nil, persistence("ledger.ComputeFilmTotals resolve film", err)
	}

	role := domain.UserRole(ctxutil.RoleFromCtx(ctx))
	if !role.CanModerate() && !film.IsPayableCreator(userID) {
		return nil, domain.ErrForbidden
	}

	rows, err := s.donations.ListAllByFilm(ctx, filmID)
	if err != nil {
		return nil, persistence("ledger.ComputeFilmTotals", err)
	}

	return &FilmLedger{
		Film:      film,
		Totals:    reduceFilmTotals(filmID, rows),
		Donations: newest(rows, s.cfg.RecentLimit),
	}, nil
}
