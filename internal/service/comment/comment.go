package comment

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/stagehype-backend/internal/domain"
	"github.com/heartmarshall/stagehype-backend/pkg/ctxutil"
)

// AddCommentInput holds parameters for AddComment.
type AddCommentInput struct {
	FilmID uuid.UUID
	Rating int
	Text   string
}

// Validate validates the add comment input.
func (i AddCommentInput) Validate() error {
	var errs []domain.FieldError

	if i.FilmID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "film_id", Message: "required"})
	}
	if i.Rating < 1 || i.Rating > 5 {
		errs = append(errs, domain.FieldError{Field: "rating", Message: "must be between 1 and 5"})
	}
	n := len([]rune(strings.TrimSpace(i.Text)))
	switch {
	case n < minTextLen:
		errs = append(errs, domain.FieldError{Field: "text", Message: fmt.Sprintf("must be at least %d characters", minTextLen)})
	case n > maxTextLen:
		errs = append(errs, domain.FieldError{Field: "text", Message: "too long"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddComment rates and reviews an approved film on behalf of the caller.
func (s *Service) AddComment(ctx context.Context, input AddCommentInput) (*domain.Comment, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.requireApproved(ctx, input.FilmID); err != nil {
		return nil, fmt.Errorf("comment.AddComment: %w", err)
	}

	created, err := s.comments.Create(ctx, &domain.Comment{
		ID:        uuid.New(),
		FilmID:    input.FilmID,
		UserID:    userID,
		Rating:    input.Rating,
		Text:      strings.TrimSpace(input.Text),
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, fmt.Errorf("comment.AddComment: %w", err)
	}

	s.log.InfoContext(ctx, "comment added",
		slog.String("comment_id", created.ID.String()),
		slog.String("film_id", created.FilmID.String()),
		slog.Int("rating", created.Rating))

	return created, nil
}

// ListComments returns the newest comments of an approved film.
func (s *Service) ListComments(ctx context.Context, filmID uuid.UUID, limit int) ([]domain.Comment, error) {
	if err := s.requireApproved(ctx, filmID); err != nil {
		return nil, fmt.Errorf("comment.ListComments: %w", err)
	}

	switch {
	case limit <= 0:
		limit = defaultListLimit
	case limit > maxListLimit:
		limit = maxListLimit
	}

	comments, err := s.comments.ListByFilm(ctx, filmID, limit)
	if err != nil {
		return nil, fmt.Errorf("comment.ListComments: %w", err)
	}
	return comments, nil
}

// requireApproved treats films that are not approved as missing.
func (s *Service) requireApproved(ctx context.Context, filmID uuid.UUID) error {
	film, err := s.films.GetByID(ctx, filmID)
	if err != nil {
		return err
	}
	if !film.IsApproved() {
		return fmt.Errorf("film %s: %w", filmID, domain.ErrNotFound)
	}
	return nil
}
