package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Donation is one immutable ledger row. PlatformFee and CreatorShare are
// fixed at creation from Amount via SplitAmount.
type Donation struct {
	ID             uuid.UUID
	DonorID        uuid.UUID
	CreatorID      uuid.UUID
	FilmID         *uuid.UUID
	Amount         decimal.Decimal
	PlatformFee    decimal.Decimal
	CreatorShare   decimal.Decimal
	Message        *string
	IdempotencyKey *string
	CreatedAt      time.Time
}

// NewDonation builds a donation with its fee split applied.
func NewDonation(donorID, creatorID uuid.UUID, filmID *uuid.UUID, amount decimal.Decimal) Donation {
	fee, share := SplitAmount(amount)
	return Donation{
		DonorID:      donorID,
		CreatorID:    creatorID,
		FilmID:       filmID,
		Amount:       amount,
		PlatformFee:  fee,
		CreatorShare: share,
	}
}

// DonationFilter selects ledger rows. Exactly one of DonorID, CreatorID and
// FilmID must be set.
type DonationFilter struct {
	DonorID   *uuid.UUID
	CreatorID *uuid.UUID
	FilmID    *uuid.UUID

	// Before restricts to rows with created_at <= Before when non-zero.
	Before time.Time
	Limit  int
}

// CreatorStats is an aggregate view of all donations received by one creator.
type CreatorStats struct {
	CreatorID        uuid.UUID
	AsOf             time.Time
	TotalGross       decimal.Decimal
	TotalFees        decimal.Decimal
	TotalNet         decimal.Decimal
	DonationCount    int
	UniqueSupporters int
	AverageDonation  decimal.Decimal
	TopFilms         []FilmEarnings
	Monthly          []MonthlyEarnings
	RecentDonations  []Donation
}

// FilmEarnings is the per-film slice of a creator's earnings.
type FilmEarnings struct {
	FilmID uuid.UUID
	Title  string
	Gross  decimal.Decimal
	Net    decimal.Decimal
	Count  int
}

// MonthlyEarnings covers the half-open range [Start, End).
type MonthlyEarnings struct {
	Month string // YYYY-MM
	Start time.Time
	End   time.Time
	Gross decimal.Decimal
	Net   decimal.Decimal
	Count int
}

// FilmTotals summarises every donation attributed to one film.
type FilmTotals struct {
	FilmID           uuid.UUID
	TotalGross       decimal.Decimal
	TotalFees        decimal.Decimal
	TotalNet         decimal.Decimal
	DonationCount    int
	UniqueSupporters int
}
