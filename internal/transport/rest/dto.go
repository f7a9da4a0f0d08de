package rest

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/stagehype-backend/internal/domain"
	"github.com/heartmarshall/stagehype-backend/internal/transport/loader"
)

// money renders as a JSON number with exactly two decimals.
type money decimal.Decimal

func (m money) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(m).StringFixed(domain.MoneyScale)), nil
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

type userResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Bio       *string   `json:"bio,omitempty"`
	Skills    []string  `json:"skills"`
	AvatarURL *string   `json:"avatarUrl,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(u *domain.User) userResponse {
	skills := u.Skills
	if skills == nil {
		skills = []string{}
	}
	return userResponse{
		ID:        u.ID.String(),
		Email:     u.Email,
		Username:  u.Username,
		Name:      u.Name,
		Bio:       u.Bio,
		Skills:    skills,
		AvatarURL: u.AvatarURL,
		Role:      u.Role.String(),
		CreatedAt: u.CreatedAt,
	}
}

type artistResponse struct {
	ID        string   `json:"id"`
	Username  string   `json:"username"`
	Name      string   `json:"name"`
	Bio       *string  `json:"bio,omitempty"`
	Skills    []string `json:"skills"`
	AvatarURL *string  `json:"avatarUrl,omitempty"`
}

func toArtistResponse(u *domain.User) artistResponse {
	skills := u.Skills
	if skills == nil {
		skills = []string{}
	}
	return artistResponse{
		ID:        u.ID.String(),
		Username:  u.Username,
		Name:      u.Name,
		Bio:       u.Bio,
		Skills:    skills,
		AvatarURL: u.AvatarURL,
	}
}

// personRef is the public part of a user embedded in other resources.
type personRef struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

func toPersonRef(u *domain.User) *personRef {
	if u == nil {
		return nil
	}
	return &personRef{ID: u.ID.String(), Username: u.Username, Name: u.Name}
}

// ---------------------------------------------------------------------------
// Films
// ---------------------------------------------------------------------------

type creditResponse struct {
	ArtistID string `json:"artistId"`
	Role     string `json:"role"`
}

type filmResponse struct {
	ID          string           `json:"id"`
	CreatorID   string           `json:"creatorId"`
	Title       string           `json:"title"`
	Description *string          `json:"description,omitempty"`
	Genre       *string          `json:"genre,omitempty"`
	Mood        *string          `json:"mood,omitempty"`
	Year        *int             `json:"year,omitempty"`
	DurationMin *int             `json:"durationMin,omitempty"`
	Language    *string          `json:"language,omitempty"`
	Status      string           `json:"status"`
	Credits     []creditResponse `json:"credits"`
	CreatedAt   time.Time        `json:"createdAt"`
}

func toFilmResponse(f *domain.Film) filmResponse {
	credits := make([]creditResponse, len(f.Credits))
	for i, c := range f.Credits {
		credits[i] = creditResponse{ArtistID: c.ArtistID.String(), Role: c.Role}
	}
	return filmResponse{
		ID:          f.ID.String(),
		CreatorID:   f.CreatorID.String(),
		Title:       f.Title,
		Description: f.Description,
		Genre:       f.Genre,
		Mood:        f.Mood,
		Year:        f.Year,
		DurationMin: f.DurationMin,
		Language:    f.Language,
		Status:      f.Status.String(),
		Credits:     credits,
		CreatedAt:   f.CreatedAt,
	}
}

func toFilmResponses(films []domain.Film) []filmResponse {
	out := make([]filmResponse, len(films))
	for i := range films {
		out[i] = toFilmResponse(&films[i])
	}
	return out
}

type filmRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ---------------------------------------------------------------------------
// Donations
// ---------------------------------------------------------------------------

type donationResponse struct {
	ID           string     `json:"id"`
	DonorID      string     `json:"donorId"`
	CreatorID    string     `json:"creatorId"`
	FilmID       *string    `json:"filmId,omitempty"`
	Amount       money      `json:"amount"`
	PlatformFee  money      `json:"platformFee"`
	CreatorShare money      `json:"creatorShare"`
	Message      *string    `json:"message,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	Film         *filmRef   `json:"film,omitempty"`
	Creator      *personRef `json:"creator,omitempty"`
	Donor        *personRef `json:"donor,omitempty"`
}

func toDonationResponse(d *domain.Donation) donationResponse {
	return donationResponse{
		ID:           d.ID.String(),
		DonorID:      d.DonorID.String(),
		CreatorID:    d.CreatorID.String(),
		FilmID:       uuidPtrString(d.FilmID),
		Amount:       money(d.Amount),
		PlatformFee:  money(d.PlatformFee),
		CreatorShare: money(d.CreatorShare),
		Message:      d.Message,
		CreatedAt:    d.CreatedAt,
	}
}

// donationView selects which related records are embedded in a list.
type donationView struct {
	withCreator bool
	withDonor   bool
}

// toDonationResponses embeds film titles and user names through the
// request's loaders. All loads are queued before any is awaited so they
// share one batch per loader.
func toDonationResponses(ctx context.Context, donations []domain.Donation, view donationView) ([]donationResponse, error) {
	l := loader.FromContext(ctx)

	type pending struct {
		film    dataloader.Thunk[*domain.Film]
		creator dataloader.Thunk[*domain.User]
		donor   dataloader.Thunk[*domain.User]
	}
	thunks := make([]pending, len(donations))
	for i, d := range donations {
		if d.FilmID != nil {
			thunks[i].film = l.FilmByID.Load(ctx, *d.FilmID)
		}
		if view.withCreator {
			thunks[i].creator = l.UserByID.Load(ctx, d.CreatorID)
		}
		if view.withDonor {
			thunks[i].donor = l.UserByID.Load(ctx, d.DonorID)
		}
	}

	out := make([]donationResponse, len(donations))
	for i := range donations {
		out[i] = toDonationResponse(&donations[i])
		if thunks[i].film != nil {
			f, err := thunks[i].film()
			if err != nil {
				return nil, err
			}
			if f != nil {
				out[i].Film = &filmRef{ID: f.ID.String(), Title: f.Title}
			}
		}
		if thunks[i].creator != nil {
			u, err := thunks[i].creator()
			if err != nil {
				return nil, err
			}
			out[i].Creator = toPersonRef(u)
		}
		if thunks[i].donor != nil {
			u, err := thunks[i].donor()
			if err != nil {
				return nil, err
			}
			out[i].Donor = toPersonRef(u)
		}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Stats
// ---------------------------------------------------------------------------

type statsSummary struct {
	TotalGross       money `json:"totalGross"`
	TotalFees        money `json:"totalFees"`
	TotalNet         money `json:"totalNet"`
	DonationCount    int   `json:"donationCount"`
	UniqueSupporters int   `json:"uniqueSupporters"`
	AverageDonation  money `json:"averageDonation"`
}

type filmEarningsResponse struct {
	FilmID        string `json:"filmId"`
	FilmTitle     string `json:"filmTitle"`
	Gross         money  `json:"gross"`
	Net           money  `json:"net"`
	DonationCount int    `json:"donationCount"`
}

type monthlyEarningsResponse struct {
	Month         string    `json:"month"`
	Start         time.Time `json:"start"`
	End           time.Time `json:"end"`
	Gross         money     `json:"gross"`
	Net           money     `json:"net"`
	DonationCount int       `json:"donationCount"`
}

type creatorStatsResponse struct {
	AsOf            time.Time                 `json:"asOf"`
	Stats           statsSummary              `json:"stats"`
	TopFilms        []filmEarningsResponse    `json:"topFilms"`
	MonthlyEarnings []monthlyEarningsResponse `json:"monthlyEarnings"`
	RecentDonations []donationResponse        `json:"recentDonations"`
}

func toCreatorStatsResponse(s *domain.CreatorStats, recent []donationResponse) creatorStatsResponse {
	resp := creatorStatsResponse{
		AsOf: s.AsOf,
		Stats: statsSummary{
			TotalGross:       money(s.TotalGross),
			TotalFees:        money(s.TotalFees),
			TotalNet:         money(s.TotalNet),
			DonationCount:    s.DonationCount,
			UniqueSupporters: s.UniqueSupporters,
			AverageDonation:  money(s.AverageDonation),
		},
		TopFilms:        make([]filmEarningsResponse, len(s.TopFilms)),
		MonthlyEarnings: make([]monthlyEarningsResponse, len(s.Monthly)),
		RecentDonations: recent,
	}
	for i, f := range s.TopFilms {
		resp.TopFilms[i] = filmEarningsResponse{
			FilmID:        f.FilmID.String(),
			FilmTitle:     f.Title,
			Gross:         money(f.Gross),
			Net:           money(f.Net),
			DonationCount: f.Count,
		}
	}
	for i, m := range s.Monthly {
		resp.MonthlyEarnings[i] = monthlyEarningsResponse{
			Month:         m.Month,
			Start:         m.Start,
			End:           m.End,
			Gross:         money(m.Gross),
			Net:           money(m.Net),
			DonationCount: m.Count,
		}
	}
	return resp
}

type filmTotalsResponse struct {
	FilmID           string `json:"filmId"`
	TotalGross       money  `json:"totalGross"`
	TotalFees        money  `json:"totalFees"`
	TotalNet         money  `json:"totalNet"`
	DonationCount    int    `json:"donationCount"`
	UniqueSupporters int    `json:"uniqueSupporters"`
}

func toFilmTotalsResponse(t domain.FilmTotals) filmTotalsResponse {
	return filmTotalsResponse{
		FilmID:           t.FilmID.String(),
		TotalGross:       money(t.TotalGross),
		TotalFees:        money(t.TotalFees),
		TotalNet:         money(t.TotalNet),
		DonationCount:    t.DonationCount,
		UniqueSupporters: t.UniqueSupporters,
	}
}

// ---------------------------------------------------------------------------
// Comments
// ---------------------------------------------------------------------------

type commentResponse struct {
	ID        string     `json:"id"`
	FilmID    string     `json:"filmId"`
	UserID    string     `json:"userId"`
	Rating    int        `json:"rating"`
	Text      string     `json:"text"`
	CreatedAt time.Time  `json:"createdAt"`
	Author    *personRef `json:"author,omitempty"`
}

func toCommentResponse(c *domain.Comment) commentResponse {
	return commentResponse{
		ID:        c.ID.String(),
		FilmID:    c.FilmID.String(),
		UserID:    c.UserID.String(),
		Rating:    c.Rating,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
	}
}

func toCommentResponses(ctx context.Context, comments []domain.Comment) ([]commentResponse, error) {
	l := loader.FromContext(ctx)

	authors := make([]dataloader.Thunk[*domain.User], len(comments))
	for i, c := range comments {
		authors[i] = l.UserByID.Load(ctx, c.UserID)
	}

	out := make([]commentResponse, len(comments))
	for i := range comments {
		out[i] = toCommentResponse(&comments[i])
		u, err := authors[i]()
		if err != nil {
			return nil, err
		}
		out[i].Author = toPersonRef(u)
	}
	return out, nil
}

func uuidPtrString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
