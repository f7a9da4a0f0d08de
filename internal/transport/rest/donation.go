package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/heartmarshall/stagehype-backend/internal/domain"
	"github.com/heartmarshall/stagehype-backend/internal/service/ledger"
	"github.com/heartmarshall/stagehype-backend/internal/transport/middleware"
	"github.com/heartmarshall/stagehype-backend/pkg/ctxutil"
)

// IdempotencyKeyHeader lets a client retry POST /donations safely.
const IdempotencyKeyHeader = "Idempotency-Key"

// myDonationsLimit caps GET /donations.
const myDonationsLimit = 50

// ListLimits bounds the page size of GET /creator/donations. A missing or zero
// limit query uses Default; larger values are cut to Max.
type ListLimits struct {
	Default int
	Max     int
}

func (l ListLimits) apply(limit int) int {
	switch {
	case limit <= 0:
		return l.Default
	case limit > l.Max:
		return l.Max
	}
	return limit
}

type ledgerService interface {
	RecordDonation(ctx context.Context, input ledger.RecordDonationInput) (*ledger.RecordResult, error)
	ListMyDonations(ctx context.Context, limit int) ([]domain.Donation, error)
	ListReceivedDonations(ctx context.Context, limit int) ([]domain.Donation, error)
	ComputeCreatorStats(ctx context.Context, creatorID uuid.UUID, asOf time.Time) (*domain.CreatorStats, error)
	ComputeFilmTotals(ctx context.Context, filmID uuid.UUID) (*ledger.FilmLedger, error)
}

// DonationHandler serves the donation ledger endpoints.
type DonationHandler struct {
	svc    ledgerService
	log    *slog.Logger
	limits ListLimits
}

// NewDonationHandler creates a DonationHandler.
func NewDonationHandler(svc ledgerService, logger *slog.Logger, limits ListLimits) *DonationHandler {
	return &DonationHandler{svc: svc, log: logger.With("handler", "donation"), limits: limits}
}

type createDonationRequest struct {
	Amount    decimal.Decimal `json:"amount"`
	FilmID    *uuid.UUID      `json:"filmId"`
	CreatorID *uuid.UUID      `json:"creatorId"`
	// ArtistID is the older name of CreatorID.
	ArtistID *uuid.UUID `json:"artistId"`
	Message  *string    `json:"message"`
}

// Create handles POST /donations.
func (h *DonationHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireRole(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req createDonationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	creatorID := req.CreatorID
	if creatorID == nil {
		creatorID = req.ArtistID
	}

	input := ledger.RecordDonationInput{
		Amount:    req.Amount,
		FilmID:    req.FilmID,
		CreatorID: creatorID,
		Message:   req.Message,
	}
	if _, ok := r.Header[IdempotencyKeyHeader]; ok {
		key := strings.TrimSpace(r.Header.Get(IdempotencyKeyHeader))
		input.IdempotencyKey = &key
	}

	result, err := h.svc.RecordDonation(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}
	writeJSON(w, status, map[string]any{"donation": toDonationResponse(result.Donation)})
}

// ListMine handles GET /donations: the caller's own donations, newest first.
func (h *DonationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireRole(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	donations, err := h.svc.ListMyDonations(r.Context(), myDonationsLimit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp, err := toDonationResponses(r.Context(), donations, donationView{withCreator: true})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"donations": resp})
}

// CreatorStats handles GET /creator/stats for the calling artist.
func (h *DonationHandler) CreatorStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if err := middleware.RequireRole(ctx, domain.UserRoleArtist, domain.UserRoleAdmin); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	creatorID, _ := ctxutil.UserIDFromCtx(ctx)
	if raw := r.URL.Query().Get("creatorId"); raw != "" {
		// Admins may inspect any creator.
		if !domain.UserRole(ctxutil.RoleFromCtx(ctx)).IsAdmin() {
			handleError(h.log, w, r, domain.ErrForbidden)
			return
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("creatorId", "must be a UUID"))
			return
		}
		creatorID = id
	}

	var asOf time.Time
	if raw := r.URL.Query().Get("asOf"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			handleError(h.log, w, r, domain.NewValidationError("asOf", "must be an RFC 3339 timestamp"))
			return
		}
		asOf = t
	}

	stats, err := h.svc.ComputeCreatorStats(ctx, creatorID, asOf)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	recent, err := toDonationResponses(ctx, stats.RecentDonations, donationView{withDonor: true})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCreatorStatsResponse(stats, recent))
}

// CreatorDonations handles GET /creator/donations: donations received by the caller.
func (h *DonationHandler) CreatorDonations(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireRole(r.Context(), domain.UserRoleArtist, domain.UserRoleAdmin); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	limit, err := intQuery(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if limit < 0 {
		handleError(h.log, w, r, domain.NewValidationError("limit", "must not be negative"))
		return
	}

	donations, err := h.svc.ListReceivedDonations(r.Context(), h.limits.apply(limit))
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp, err := toDonationResponses(r.Context(), donations, donationView{withDonor: true})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"donations": resp})
}

// FilmDonations handles GET /films/{filmID}/donations.
func (h *DonationHandler) FilmDonations(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireRole(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	filmID, err := uuidParam(r, "filmID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	fl, err := h.svc.ComputeFilmTotals(r.Context(), filmID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	donations, err := toDonationResponses(r.Context(), fl.Donations, donationView{withCreator: true, withDonor: true})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"film":      toFilmResponse(fl.Film),
		"totals":    toFilmTotalsResponse(fl.Totals),
		"donations": donations,
	})
}
