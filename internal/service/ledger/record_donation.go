package ledger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/stagehype-backend/internal/domain"
	"github.com/heartmarshall/stagehype-backend/pkg/ctxutil"
)

// RecordResult is returned by RecordDonation.
type RecordResult struct {
	Donation *domain.Donation
	// Replayed is true when an earlier donation with the same idempotency key
	// was returned instead of recording a new one.
	Replayed bool
}

// RecordDonation records a donation from the authenticated caller.
//
// Target resolution: film only pays the film's uploader, creator only pays
// that artist, both require the creator to be credited on the film. The fee
// split is fixed here and never recomputed.
func (s *Service) RecordDonation(ctx context.Context, input RecordDonationInput) (*RecordResult, error) {
	donorID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.minAmount); err != nil {
		return nil, err
	}

	if _, err := s.users.GetByID(ctx, donorID); err != nil {
		return nil, persistence("ledger.RecordDonation get donor", err)
	}

	if input.IdempotencyKey != nil {
		prev, err := s.donations.GetByIdempotencyKey(ctx, donorID, *input.IdempotencyKey)
		switch {
		case err == nil:
			return s.replay(ctx, prev, input)
		case !errors.Is(err, domain.ErrNotFound):
			return nil, persistence("ledger.RecordDonation idempotency lookup", err)
		}
	}

	creatorID, filmID, err := s.resolveTarget(ctx, input)
	if err != nil {
		return nil, err
	}

	d := domain.NewDonation(donorID, creatorID, filmID, input.Amount)
	d.ID = uuid.New()
	d.Message = input.Message
	d.IdempotencyKey = input.IdempotencyKey
	d.CreatedAt = s.now().UTC()

	created, err := s.donations.Create(ctx, &d)
	if err != nil {
		// Concurrent request with the same key won the insert.
		if input.IdempotencyKey != nil && errors.Is(err, domain.ErrAlreadyExists) {
			prev, getErr := s.donations.GetByIdempotencyKey(ctx, donorID, *input.IdempotencyKey)
			if getErr == nil {
				return s.replay(ctx, prev, input)
			}
		}
		s.log.ErrorContext(ctx, "donation insert failed",
			slog.String("donor_id", donorID.String()),
			slog.String("error", err.Error()))
		return nil, persistence("ledger.RecordDonation", err)
	}

	s.metrics.DonationRecorded(created.Amount, created.PlatformFee)

	s.log.InfoContext(ctx, "donation recorded",
		slog.String("donation_id", created.ID.String()),
		slog.String("donor_id", donorID.String()),
		slog.String("creator_id", creatorID.String()),
		slog.String("amount", created.Amount.StringFixed(domain.MoneyScale)))

	return &RecordResult{Donation: created}, nil
}

// replay returns an earlier donation for a repeated idempotency key. A key
// reused with a different amount or target is a conflict.
func (s *Service) replay(ctx context.Context, prev *domain.Donation, input RecordDonationInput) (*RecordResult, error) {
	sameTarget := (input.CreatorID == nil || *input.CreatorID == prev.CreatorID) &&
		(input.FilmID == nil || (prev.FilmID != nil && *input.FilmID == *prev.FilmID))

	if !prev.Amount.Equal(input.Amount) || !sameTarget {
		return nil, fmt.Errorf("ledger.RecordDonation: idempotency key reused with different payload: %w", domain.ErrConflict)
	}

	s.log.InfoContext(ctx, "donation replayed",
		slog.String("donation_id", prev.ID.String()))

	return &RecordResult{Donation: prev, Replayed: true}, nil
}

// resolveTarget returns the payee and the film context of a donation.
func (s *Service) resolveTarget(ctx context.Context, input RecordDonationInput) (uuid.UUID, *uuid.UUID, error) {
	var film *domain.Film
	if input.FilmID != nil {
		f, err := s.films.ResolveFilm(ctx, *input.FilmID)
		if err != nil {
			return uuid.Nil, nil, persistence("ledger.RecordDonation resolve film", err)
		}
		if !f.IsApproved() {
			return uuid.Nil, nil, domain.NewTargetError("filmId", "film is not approved")
		}
		film = f
	}

	var payee uuid.UUID
	field := "creatorId"
	if input.CreatorID != nil {
		payee = *input.CreatorID
	} else {
		payee, field = film.CreatorID, "filmId"
	}

	creator, err := s.users.GetByID(ctx, payee)
	if err != nil {
		return uuid.Nil, nil, persistence("ledger.RecordDonation get creator", err)
	}
	if !creator.Role.CanReceiveDonations() {
		return uuid.Nil, nil, domain.NewTargetError(field, "creator does not accept donations")
	}
	if film != nil && !film.IsPayableCreator(creator.ID) {
		return uuid.Nil, nil, domain.NewTargetError("creatorId", "creator is not credited on this film")
	}

	var filmID *uuid.UUID
	if film != nil {
		id := film.ID
		filmID = &id
	}
	return creator.ID, filmID, nil
}
