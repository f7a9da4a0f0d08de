package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/stagehype-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a viewer. Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return SeedUserWithRole(t, pool, domain.UserRoleViewer)
}

// SeedArtist creates a user with the artist role.
func SeedArtist(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	return SeedUserWithRole(t, pool, domain.UserRoleArtist)
}

// SeedUserWithRole creates a user with the given role and a placeholder password hash.
func SeedUserWithRole(t *testing.T, pool *pgxpool.Pool, role domain.UserRole) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Username:     "testuser_" + suffix,
		Name:         "Test User " + suffix,
		Role:         role,
		PasswordHash: "$2a$04$placeholderplaceholderplaceholderplaceholderpla",
		Skills:       []string{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, username, name, role, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		user.ID, user.Email, user.Username, user.Name, string(user.Role), user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUserWithRole insert user: %v", err)
	}

	return user
}

// SeedFilm creates a film owned by creatorID with the given status and a
// DIRECTOR credit for the owner.
func SeedFilm(t *testing.T, pool *pgxpool.Pool, creatorID uuid.UUID, status domain.FilmStatus) domain.Film {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	film := domain.Film{
		ID:        uuid.New(),
		CreatorID: creatorID,
		Title:     "Test Film " + uniqueSuffix(),
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO films (id, creator_id, title, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		film.ID, film.CreatorID, film.Title, string(film.Status), film.CreatedAt, film.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFilm insert film: %v", err)
	}

	SeedCredit(t, pool, film.ID, creatorID, domain.DefaultCreditRole)
	film.Credits = []domain.FilmCredit{{FilmID: film.ID, ArtistID: creatorID, Role: domain.DefaultCreditRole}}

	return film
}

// SeedCredit links an artist to a film.
func SeedCredit(t *testing.T, pool *pgxpool.Pool, filmID, artistID uuid.UUID, role string) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO film_credits (film_id, artist_id, role) VALUES ($1, $2, $3)`,
		filmID, artistID, role,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCredit: %v", err)
	}
}

// SeedDonation inserts a ledger row directly, bypassing the service layer.
// createdAt lets tests place donations in specific months.
func SeedDonation(
	t *testing.T,
	pool *pgxpool.Pool,
	donorID, creatorID uuid.UUID,
	filmID *uuid.UUID,
	amount string,
	createdAt time.Time,
) domain.Donation {
	t.Helper()

	d := domain.NewDonation(donorID, creatorID, filmID, decimal.RequireFromString(amount))
	d.ID = uuid.New()
	d.CreatedAt = createdAt.UTC().Truncate(time.Microsecond)

	_, err := pool.Exec(context.Background(),
		`INSERT INTO donations (id, donor_id, creator_id, film_id, amount, platform_fee, creator_share, created_at)
		 VALUES ($1, $2, $3, $4, $5::numeric, $6::numeric, $7::numeric, $8)`,
		d.ID, d.DonorID, d.CreatorID, d.FilmID,
		d.Amount.String(), d.PlatformFee.String(), d.CreatorShare.String(), d.CreatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDonation: %v", err)
	}

	return d
}
