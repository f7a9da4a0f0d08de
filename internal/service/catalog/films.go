package catalog

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

// CreateFilm submits a film for moderation. The caller becomes the film's
// creator and, when no credits are given, is credited as DIRECTOR. Only roles
// that can receive donations may upload, so every uploader is payable.
func (s *Service) CreateFilm(ctx context.Context, input CreateFilmInput) (*domain.Film, error) {
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if !domain.UserRole(ctxutil.RoleFromCtx(ctx)).CanReceiveDonations() {
		return nil, domain.ErrForbidden
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	credits := make([]domain.FilmCredit, 0, len(input.Credits)+1)
	if len(input.Credits) == 0 {
		credits = append(credits, domain.FilmCredit{ArtistID: callerID, Role: domain.DefaultCreditRole})
	}
	for _, c := range input.Credits {
		credits = append(credits, domain.FilmCredit{
			ArtistID: c.ArtistID,
			Role:     strings.ToUpper(strings.TrimSpace(c.Role)),
		})
	}

	if err := s.checkCreditedArtists(ctx, credits); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	film := &domain.Film{
		ID:          uuid.New(),
		CreatorID:   callerID,
		Title:       strings.TrimSpace(input.Title),
		Description: input.Description,
		Genre:       input.Genre,
		Mood:        input.Mood,
		Year:        input.Year,
		DurationMin: input.DurationMin,
		Language:    input.Language,
		Status:      domain.FilmStatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
		Credits:     credits,
	}

	var created *domain.Film
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		created, err = s.films.Create(txCtx, film)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("catalog.CreateFilm: %w", err)
	}

	s.log.InfoContext(ctx, "film submitted",
		slog.String("film_id", created.ID.String()),
		slog.String("creator_id", callerID.String()),
		slog.Int("credits", len(created.Credits)))

	return created, nil
}

// checkCreditedArtists ensures every credited user exists and is an artist.
func (s *Service) checkCreditedArtists(ctx context.Context, credits []domain.FilmCredit) error {
	ids := make([]uuid.UUID, len(credits))
	for i, c := range credits {
		ids[i] = c.ArtistID
	}

	users, err := s.users.GetByIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("catalog.CreateFilm load artists: %w", err)
	}

	byID := make(map[uuid.UUID]domain.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	var errs []domain.FieldError
	for i, c := range credits {
		u, ok := byID[c.ArtistID]
		switch {
		case !ok:
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("credits[%d].artist_id", i), Message: "unknown user"})
		case !u.IsArtist():
			errs = append(errs, domain.FieldError{Field: fmt.Sprintf("credits[%d].artist_id", i), Message: "user is not an artist"})
		}
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// GetFilm returns a film. Films awaiting or failing moderation are visible
// only to their payable creators, moderators and admins.
func (s *Service) GetFilm(ctx context.Context, id uuid.UUID) (*domain.Film, error) {
	film, err := s.films.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("catalog.GetFilm: %w", err)
	}

	if film.IsApproved() || canSeeUnapproved(ctx, film) {
		return film, nil
	}
	return nil, domain.ErrForbidden
}

func canSeeUnapproved(ctx context.Context, film *domain.Film) bool {
	if domain.UserRole(ctxutil.RoleFromCtx(ctx)).CanModerate() {
		return true
	}
	callerID, ok := ctxutil.UserIDFromCtx(ctx)
	return ok && film.IsPayableCreator(callerID)
}

// ListFilms returns catalog films. Moderators and admins may filter on any
// status, artists may see every status of their own films, everyone else
// sees approved films only.
func (s *Service) ListFilms(ctx context.Context, input ListFilmsInput) ([]domain.Film, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	filter := domain.FilmFilter{
		Status:    input.Status,
		CreatorID: input.CreatorID,
		Genre:     input.Genre,
		Limit:     clampLimit(input.Limit),
		Offset:    input.Offset,
	}

	callerID, authed := ctxutil.UserIDFromCtx(ctx)
	role := domain.UserRole(ctxutil.RoleFromCtx(ctx))
	ownFilms := authed && input.CreatorID != nil && *input.CreatorID == callerID

	if !role.CanModerate() && !ownFilms {
		approved := domain.FilmStatusApproved
		filter.Status = &approved
	}

	films, err := s.films.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("catalog.ListFilms: %w", err)
	}
	return films, nil
}

// ResolveFilm returns a film regardless of its status. It backs donation
// target resolution and carries no visibility rules.
func (s *Service) ResolveFilm(ctx context.Context, id uuid.UUID) (*domain.Film, error) {
	film, err := s.films.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("catalog.ResolveFilm: %w", err)
	}
	return film, nil
}

// GetFilmsByIDs returns the films with the given IDs. Missing IDs are skipped.
func (s *Service) GetFilmsByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Film, error) {
	films, err := s.films.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("catalog.GetFilmsByIDs: %w", err)
	}
	return films, nil
}
