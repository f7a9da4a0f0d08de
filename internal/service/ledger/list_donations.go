package ledger

import (
	"context"

	"github.com/heartmarshall/stagehype-backend/internal/domain"
	"github.com/heartmarshall/stagehype-backend/pkg/ctxutil"
)

// ListDonations returns donations selected by exactly one of donor, creator
// or film, newest first. A zero limit returns every matching donation.
func (s *Service) ListDonations(ctx context.Context, input ListDonationsInput) ([]domain.Donation, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	donations, err := s.donations.List(ctx, domain.DonationFilter{
		DonorID:   input.DonorID,
		CreatorID: input.CreatorID,
		FilmID:    input.FilmID,
		Limit:     input.Limit,
	})
	if err != nil {
		return nil, persistence("ledger.ListDonations", err)
	}
	return donations, nil
}

// ListMyDonations returns the donations made by the authenticated caller.
func (s *Service) ListMyDonations(ctx context.Context, limit int) ([]domain.Donation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.ListDonations(ctx, ListDonationsInput{DonorID: &userID, Limit: limit})
}

// ListReceivedDonations returns the donations credited to the authenticated caller.
func (s *Service) ListReceivedDonations(ctx context.Context, limit int) ([]domain.Donation, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	return s.ListDonations(ctx, ListDonationsInput{CreatorID: &userID, Limit: limit})
}
