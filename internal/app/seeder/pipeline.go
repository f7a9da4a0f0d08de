package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/stagehype-backend/internal/domain"
	"github.com/heartmarshall/stagehype-backend/internal/service/ledger"
	"github.com/heartmarshall/stagehype-backend/pkg/ctxutil"
)

// allPhases defines the canonical execution order.
var allPhases = []string{"users", "films", "donations"}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Errors   int
	Duration time.Duration
	Err      error
}

// Pipeline orchestrates the seeding phases. Every phase is safe to re-run:
// existing accounts and films are skipped and donations replay through
// their idempotency keys.
type Pipeline struct {
	log       *slog.Logger
	users     UserRepo
	films     FilmRepo
	donations DonationRecorder
	tx        TxManager
	cfg       Config
	data      *Dataset
	results   map[string]PhaseResult

	userCache map[string]*domain.User
}

// NewPipeline creates a new Pipeline.
func NewPipeline(
	log *slog.Logger,
	users UserRepo,
	films FilmRepo,
	donations DonationRecorder,
	tx TxManager,
	cfg Config,
	data *Dataset,
) *Pipeline {
	return &Pipeline{
		log:       log.With("component", "seeder"),
		users:     users,
		films:     films,
		donations: donations,
		tx:        tx,
		cfg:       cfg,
		data:      data,
		results:   make(map[string]PhaseResult),
		userCache: make(map[string]*domain.User),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase recorded errors.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil || r.Errors > 0 {
			return true
		}
	}
	return false
}

// Run executes the pipeline. If phases is non-empty, only the listed phases run.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	toRun, err := selectPhases(phases)
	if err != nil {
		return err
	}

	for _, phase := range toRun {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase))

		// Each phase draws from its own stream so running one phase alone
		// produces the same choices as a full run.
		rng := rand.New(rand.NewPCG(p.cfg.RandomSeed, uint64(slices.Index(allPhases, phase))+1))

		var result PhaseResult
		switch phase {
		case "users":
			result = p.runUsers(ctx)
		case "films":
			result = p.runFilms(ctx, rng)
		case "donations":
			result = p.runDonations(ctx, rng)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
		} else {
			p.log.Info("phase completed",
				slog.String("phase", phase),
				slog.Int("inserted", result.Inserted),
				slog.Int("skipped", result.Skipped),
				slog.Int("errors", result.Errors),
				slog.Duration("duration", result.Duration),
			)
		}
	}

	p.log.Info("pipeline completed", slog.Int("phases_run", len(toRun)))
	return nil
}

func selectPhases(phases []string) ([]string, error) {
	if len(phases) == 0 {
		return allPhases, nil
	}

	filter := make(map[string]bool, len(phases))
	for _, ph := range phases {
		ph = strings.ToLower(strings.TrimSpace(ph))
		if !slices.Contains(allPhases, ph) {
			return nil, fmt.Errorf("unknown phase %q", ph)
		}
		filter[ph] = true
	}

	var out []string
	for _, ph := range allPhases {
		if filter[ph] {
			out = append(out, ph)
		}
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Phases
// ---------------------------------------------------------------------------

func (p *Pipeline) runUsers(ctx context.Context) PhaseResult {
	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(p.data.Accounts)}
	}

	cost := p.cfg.PasswordHashCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	var result PhaseResult
	for _, acc := range p.data.Accounts {
		existing, err := p.users.GetByEmail(ctx, acc.Email)
		switch {
		case err == nil:
			p.userCache[acc.Email] = existing
			result.Skipped++
			continue
		case !errors.Is(err, domain.ErrNotFound):
			p.log.Warn("lookup account", slog.String("email", acc.Email), slog.String("error", err.Error()))
			result.Errors++
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(acc.Password), cost)
		if err != nil {
			return PhaseResult{Err: fmt.Errorf("hash password: %w", err)}
		}

		var bio *string
		if acc.Bio != "" {
			bio = &acc.Bio
		}
		now := time.Now().UTC()
		created, err := p.users.Create(ctx, &domain.User{
			ID:           uuid.New(),
			Email:        acc.Email,
			Username:     acc.Username,
			Name:         acc.Name,
			Bio:          bio,
			Skills:       acc.Skills,
			Role:         acc.Role,
			PasswordHash: string(hash),
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			p.log.Warn("create account", slog.String("email", acc.Email), slog.String("error", err.Error()))
			result.Errors++
			continue
		}
		p.userCache[acc.Email] = created
		result.Inserted++
	}
	return result
}

func (p *Pipeline) runFilms(ctx context.Context, rng *rand.Rand) PhaseResult {
	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(p.data.Films)}
	}

	artists, err := p.resolveArtists(ctx)
	if err != nil {
		return PhaseResult{Err: err}
	}

	var result PhaseResult
	for i, fs := range p.data.Films {
		owner := artists[i%len(artists)]
		credits := p.pickCredits(rng, owner, artists)

		existing, err := p.findFilm(ctx, owner.ID, fs.Title)
		if err != nil {
			p.log.Warn("lookup film", slog.String("title", fs.Title), slog.String("error", err.Error()))
			result.Errors++
			continue
		}
		if existing != nil {
			result.Skipped++
			continue
		}

		film := newFilm(fs, owner.ID, credits)
		err = p.tx.RunInTx(ctx, func(txCtx context.Context) error {
			_, err := p.films.Create(txCtx, film)
			return err
		})
		if err != nil {
			p.log.Warn("create film", slog.String("title", fs.Title), slog.String("error", err.Error()))
			result.Errors++
			continue
		}
		result.Inserted++
	}
	return result
}

func (p *Pipeline) runDonations(ctx context.Context, rng *rand.Rand) PhaseResult {
	n := min(p.data.DonatedFilms, len(p.data.Films))
	if n == 0 {
		return PhaseResult{}
	}
	if p.cfg.DryRun {
		return PhaseResult{Skipped: n}
	}

	amounts, err := p.data.amounts()
	if err != nil {
		return PhaseResult{Err: err}
	}
	donor, err := p.resolveUser(ctx, p.data.Donor)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("donor: %w", err)}
	}
	artists, err := p.resolveArtists(ctx)
	if err != nil {
		return PhaseResult{Err: err}
	}

	donorCtx := ctxutil.WithRole(ctxutil.WithUserID(ctx, donor.ID), donor.Role.String())

	var result PhaseResult
	for i, fs := range p.data.Films[:n] {
		amount := amounts[rng.IntN(len(amounts))]

		owner := artists[i%len(artists)]
		film, err := p.findFilm(ctx, owner.ID, fs.Title)
		if err == nil && film == nil {
			err = fmt.Errorf("film %q not seeded", fs.Title)
		}
		if err != nil {
			p.log.Warn("resolve film", slog.String("title", fs.Title), slog.String("error", err.Error()))
			result.Errors++
			continue
		}

		key := donationKey(fs.Title)
		res, err := p.donations.RecordDonation(donorCtx, ledger.RecordDonationInput{
			Amount:         amount,
			FilmID:         &film.ID,
			IdempotencyKey: &key,
		})
		if err != nil {
			p.log.Warn("record donation", slog.String("title", fs.Title), slog.String("error", err.Error()))
			result.Errors++
			continue
		}
		if res.Replayed {
			result.Skipped++
			continue
		}
		result.Inserted++
	}
	return result
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func (p *Pipeline) resolveUser(ctx context.Context, email string) (*domain.User, error) {
	if u, ok := p.userCache[email]; ok {
		return u, nil
	}
	u, err := p.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get user %s: %w", email, err)
	}
	p.userCache[email] = u
	return u, nil
}

func (p *Pipeline) resolveArtists(ctx context.Context) ([]*domain.User, error) {
	accounts := p.data.Artists()
	if len(accounts) == 0 {
		return nil, errors.New("dataset has no artist accounts")
	}

	out := make([]*domain.User, 0, len(accounts))
	for _, acc := range accounts {
		u, err := p.resolveUser(ctx, acc.Email)
		if err != nil {
			return nil, fmt.Errorf("artist: %w", err)
		}
		out = append(out, u)
	}
	return out, nil
}

// findFilm returns the owner's film with the given title, or nil.
func (p *Pipeline) findFilm(ctx context.Context, ownerID uuid.UUID, title string) (*domain.Film, error) {
	films, err := p.films.List(ctx, domain.FilmFilter{CreatorID: &ownerID, Limit: 100})
	if err != nil {
		return nil, err
	}
	for i := range films {
		if strings.EqualFold(films[i].Title, title) {
			return &films[i], nil
		}
	}
	return nil, nil
}

// pickCredits credits the owner first, then up to MaxCredits-1 other artists
// chosen at random, each with a random role.
func (p *Pipeline) pickCredits(rng *rand.Rand, owner *domain.User, artists []*domain.User) []domain.FilmCredit {
	roles := p.data.CreditRoles
	if len(roles) == 0 {
		roles = []string{domain.DefaultCreditRole}
	}

	credits := []domain.FilmCredit{{ArtistID: owner.ID, Role: roles[0]}}

	want := 1
	if p.cfg.MaxCredits > 1 {
		want = 2 + rng.IntN(p.cfg.MaxCredits-1)
	}
	for _, idx := range rng.Perm(len(artists)) {
		if len(credits) >= want {
			break
		}
		a := artists[idx]
		if a.ID == owner.ID {
			continue
		}
		credits = append(credits, domain.FilmCredit{
			ArtistID: a.ID,
			Role:     roles[rng.IntN(len(roles))],
		})
	}
	return credits
}

func newFilm(fs FilmSeed, ownerID uuid.UUID, credits []domain.FilmCredit) *domain.Film {
	now := time.Now().UTC()
	f := &domain.Film{
		ID:        uuid.New(),
		CreatorID: ownerID,
		Title:     fs.Title,
		Status:    domain.FilmStatusApproved,
		CreatedAt: now,
		UpdatedAt: now,
		Credits:   credits,
	}
	if fs.Description != "" {
		f.Description = &fs.Description
	}
	if fs.Genre != "" {
		f.Genre = &fs.Genre
	}
	if fs.Mood != "" {
		f.Mood = &fs.Mood
	}
	if fs.Year != 0 {
		f.Year = &fs.Year
	}
	if fs.DurationMin != 0 {
		f.DurationMin = &fs.DurationMin
	}
	if fs.Language != "" {
		f.Language = &fs.Language
	}
	for i := range f.Credits {
		f.Credits[i].FilmID = f.ID
	}
	return f
}

func donationKey(title string) string {
	return "seed:" + strings.ReplaceAll(strings.ToLower(title), " ", "-")
}
