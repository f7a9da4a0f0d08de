// Package seeder fills an empty database with demo accounts, approved films
// and a handful of donations so the API has something to show.
package seeder

import (
	"context"

	"github.com/heartmarshall/stagehype-backend/internal/domain"
	"github.com/heartmarshall/stagehype-backend/internal/service/ledger"
)

// UserRepo is implemented by user.Repo.
type UserRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
}

// FilmRepo is implemented by film.Repo.
type FilmRepo interface {
	List(ctx context.Context, filter domain.FilmFilter) ([]domain.Film, error)
	Create(ctx context.Context, f *domain.Film) (*domain.Film, error)
}

// DonationRecorder is implemented by ledger.Service. Donations go through the
// ledger so fees and shares are computed the same way as for live traffic.
type DonationRecorder interface {
	RecordDonation(ctx context.Context, input ledger.RecordDonationInput) (*ledger.RecordResult, error)
}

// TxManager wraps the film phase so a film and its credits land together.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
