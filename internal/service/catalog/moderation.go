package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/stagehype-backend/internal/domain"
	"github.com/heartmarshall/stagehype-backend/pkg/ctxutil"
)

// ListPending returns the moderation queue, oldest submission first.
func (s *Service) ListPending(ctx context.Context, limit, offset int) ([]domain.Film, error) {
	if offset < 0 {
		return nil, domain.NewValidationError("offset", "must not be negative")
	}

	pending := domain.FilmStatusPending
	films, err := s.films.List(ctx, domain.FilmFilter{
		Status:      &pending,
		Limit:       clampLimit(limit),
		Offset:      offset,
		OldestFirst: true,
	})
	if err != nil {
		return nil, fmt.Errorf("catalog.ListPending: %w", err)
	}
	return films, nil
}

// ModerateFilm approves or rejects a film and records the decision in the
// audit log. Repeating the current decision is a no-op.
func (s *Service) ModerateFilm(ctx context.Context, input ModerateFilmInput) (*domain.Film, error) {
	moderatorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	target := input.targetStatus()

	var (
		result  *domain.Film
		changed bool
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		film, err := s.films.GetByID(txCtx, input.FilmID)
		if err != nil {
			return fmt.Errorf("get film: %w", err)
		}
		if film.Status == target {
			result = film
			return nil
		}

		updated, err := s.films.UpdateStatus(txCtx, film.ID, target)
		if err != nil {
			return fmt.Errorf("update status: %w", err)
		}

		filmID := film.ID
		if err := s.audit.Log(txCtx, domain.AuditRecord{
			ID:         uuid.New(),
			UserID:     moderatorID,
			EntityType: domain.EntityTypeFilm,
			EntityID:   &filmID,
			Action:     input.Action,
			Changes: map[string]any{
				"old_status": film.Status.String(),
				"new_status": target.String(),
			},
			CreatedAt: time.Now().UTC(),
		}); err != nil {
			return fmt.Errorf("audit: %w", err)
		}

		result, changed = updated, true
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("catalog.ModerateFilm: %w", err)
	}

	if changed {
		s.log.InfoContext(ctx, "film moderated",
			slog.String("film_id", result.ID.String()),
			slog.String("moderator_id", moderatorID.String()),
			slog.String("status", result.Status.String()))
	}

	return result, nil
}
