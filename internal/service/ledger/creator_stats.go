package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/stagehype-backend/internal/domain"
)

// ComputeCreatorStats aggregates every donation credited to creatorID with
// createdAt <= asOf. A zero asOf means now.
func (s *Service) ComputeCreatorStats(ctx context.Context, creatorID uuid.UUID, asOf time.Time) (*domain.CreatorStats, error) {
	if asOf.IsZero() {
		asOf = s.now()
	}

	if _, err := s.users.GetByID(ctx, creatorID); err != nil {
		return nil, persistence("ledger.ComputeCreatorStats get creator", err)
	}

	rows, err := s.donations.ListAllByCreator(ctx, creatorID, asOf)
	if err != nil {
		s.log.ErrorContext(ctx, "load creator donations failed",
			slog.String("creator_id", creatorID.String()),
			slog.String("error", err.Error()))
		return nil, persistence("ledger.ComputeCreatorStats", err)
	}

	stats := reduceStats(creatorID, asOf, rows, statsWindow{
		Location: s.loc,
		Months:   s.cfg.StatsMonths,
		TopFilms: s.cfg.TopFilms,
		Recent:   s.cfg.RecentLimit,
	})

	if err := s.attachTitles(ctx, stats.TopFilms); err != nil {
		return nil, err
	}

	return &stats, nil
}

func (s *Service) attachTitles(ctx context.Context, films []domain.FilmEarnings) error {
	if len(films) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(films))
	for i := range films {
		ids[i] = films[i].FilmID
	}

	found, err := s.films.GetFilmsByIDs(ctx, ids)
	if err != nil {
		return persistence(fmt.Sprintf("ledger.ComputeCreatorStats resolve %d titles", len(ids)), err)
	}

	titles := make(map[uuid.UUID]string, len(found))
	for _, f := range found {
		titles[f.ID] = f.Title
	}
	for i := range films {
		films[i].Title = titles[films[i].FilmID]
	}
	return nil
}
