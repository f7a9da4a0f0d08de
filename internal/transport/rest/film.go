package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/stagehype-backend/internal/domain"
	"github.com/heartmarshall/stagehype-backend/internal/service/catalog"
	"github.com/heartmarshall/stagehype-backend/internal/transport/middleware"
)

type catalogService interface {
	CreateFilm(ctx context.Context, input catalog.CreateFilmInput) (*domain.Film, error)
	GetFilm(ctx context.Context, id uuid.UUID) (*domain.Film, error)
	ListFilms(ctx context.Context, input catalog.ListFilmsInput) ([]domain.Film, error)
	ListPending(ctx context.Context, limit, offset int) ([]domain.Film, error)
	ModerateFilm(ctx context.Context, input catalog.ModerateFilmInput) (*domain.Film, error)
}

// FilmHandler serves catalog and moderation endpoints.
type FilmHandler struct {
	svc catalogService
	log *slog.Logger
}

// NewFilmHandler creates a FilmHandler.
func NewFilmHandler(svc catalogService, logger *slog.Logger) *FilmHandler {
	return &FilmHandler{svc: svc, log: logger.With("handler", "film")}
}

type creditRequest struct {
	ArtistID uuid.UUID `json:"artistId"`
	Role     string    `json:"role"`
}

type createFilmRequest struct {
	Title       string          `json:"title"`
	Description *string         `json:"description"`
	Genre       *string         `json:"genre"`
	Mood        *string         `json:"mood"`
	Year        *int            `json:"year"`
	DurationMin *int            `json:"durationMin"`
	Language    *string         `json:"language"`
	Credits     []creditRequest `json:"credits"`
}

type moderateRequest struct {
	Action string `json:"action"`
}

// List handles GET /films?status=&creatorId=&genre=&limit=&offset=.
func (h *FilmHandler) List(w http.ResponseWriter, r *http.Request) {
	input, err := parseListFilms(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	films, err := h.svc.ListFilms(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"films": toFilmResponses(films)})
}

func parseListFilms(r *http.Request) (catalog.ListFilmsInput, error) {
	var input catalog.ListFilmsInput
	var err error

	if input.Limit, err = intQuery(r, "limit"); err != nil {
		return input, err
	}
	if input.Offset, err = intQuery(r, "offset"); err != nil {
		return input, err
	}
	if s := optionalQuery(r, "status"); s != nil {
		status := domain.FilmStatus(strings.ToLower(*s))
		input.Status = &status
	}
	if raw := optionalQuery(r, "creatorId"); raw != nil {
		id, err := uuid.Parse(*raw)
		if err != nil {
			return input, domain.NewValidationError("creatorId", "must be a UUID")
		}
		input.CreatorID = &id
	}
	input.Genre = optionalQuery(r, "genre")
	return input, nil
}

// Create handles POST /films. Only artists may submit films.
func (h *FilmHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireRole(r.Context(), domain.UserRoleArtist); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req createFilmRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	credits := make([]catalog.CreditInput, len(req.Credits))
	for i, c := range req.Credits {
		credits[i] = catalog.CreditInput{ArtistID: c.ArtistID, Role: c.Role}
	}

	film, err := h.svc.CreateFilm(r.Context(), catalog.CreateFilmInput{
		Title:       req.Title,
		Description: req.Description,
		Genre:       req.Genre,
		Mood:        req.Mood,
		Year:        req.Year,
		DurationMin: req.DurationMin,
		Language:    req.Language,
		Credits:     credits,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"film": toFilmResponse(film)})
}

// Get handles GET /films/{filmID}.
func (h *FilmHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "filmID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	film, err := h.svc.GetFilm(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"film": toFilmResponse(film)})
}

// Pending handles GET /films/pending.
func (h *FilmHandler) Pending(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireRole(r.Context(), domain.UserRoleModerator, domain.UserRoleAdmin); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	limit, err := intQuery(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	offset, err := intQuery(r, "offset")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	films, err := h.svc.ListPending(r.Context(), limit, offset)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"films": toFilmResponses(films)})
}

// Moderate handles PATCH /films/{filmID}/moderation with {"action": "approve"|"reject"}.
func (h *FilmHandler) Moderate(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireRole(r.Context(), domain.UserRoleModerator, domain.UserRoleAdmin); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	id, err := uuidParam(r, "filmID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req moderateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	film, err := h.svc.ModerateFilm(r.Context(), catalog.ModerateFilmInput{
		FilmID: id,
		Action: domain.AuditAction(strings.ToUpper(strings.TrimSpace(req.Action))),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"film": toFilmResponse(film)})
}
