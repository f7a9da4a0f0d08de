package ledger

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/stagehype-backend/internal/domain"
)

const (
	maxMessageLen        = 500
	maxIdempotencyKeyLen = 255
)

// RecordDonationInput holds parameters for RecordDonation. At least one of
// FilmID and CreatorID must be set.
type RecordDonationInput struct {
	Amount         decimal.Decimal
	FilmID         *uuid.UUID
	CreatorID      *uuid.UUID
	Message        *string
	IdempotencyKey *string
}

// Validate checks the amount against minimum and that a target is present.
// Amount problems are reported before target problems.
func (i RecordDonationInput) Validate(minimum decimal.Decimal) error {
	if err := domain.ValidateAmount(i.Amount, minimum); err != nil {
		return err
	}

	if i.FilmID == nil && i.CreatorID == nil {
		return domain.NewTargetError("target", "filmId or creatorId is required")
	}

	var errs []domain.FieldError
	if i.Message != nil && len([]rune(*i.Message)) > maxMessageLen {
		errs = append(errs, domain.FieldError{Field: "message", Message: "too long"})
	}
	if i.IdempotencyKey != nil {
		switch {
		case *i.IdempotencyKey == "":
			errs = append(errs, domain.FieldError{Field: "idempotency_key", Message: "must not be empty"})
		case len(*i.IdempotencyKey) > maxIdempotencyKeyLen:
			errs = append(errs, domain.FieldError{Field: "idempotency_key", Message: "too long"})
		}
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListDonationsInput selects donations by exactly one of donor, creator or film.
type ListDonationsInput struct {
	DonorID   *uuid.UUID
	CreatorID *uuid.UUID
	FilmID    *uuid.UUID
	Limit     int
}

// Validate ensures exactly one selector is set.
func (i ListDonationsInput) Validate() error {
	set := 0
	for _, id := range []*uuid.UUID{i.DonorID, i.CreatorID, i.FilmID} {
		if id != nil {
			set++
		}
	}
	if set != 1 {
		return domain.NewValidationError("filter", "exactly one of donorId, creatorId, filmId is required")
	}
	if i.Limit < 0 {
		return domain.NewValidationError("limit", "must not be negative")
	}
	return nil
}
