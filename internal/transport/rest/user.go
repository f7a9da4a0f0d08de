package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/stagehype-backend/internal/domain"
	"github.com/heartmarshall/stagehype-backend/internal/service/user"
	"github.com/heartmarshall/stagehype-backend/internal/transport/middleware"
)

type userService interface {
	GetProfile(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error)
	GetArtist(ctx context.Context, id uuid.UUID) (*domain.User, error)
	SetUserRole(ctx context.Context, input user.SetRoleInput) (*domain.User, error)
	ListUsers(ctx context.Context, input user.ListUsersInput) ([]domain.User, int, error)
}

// UserHandler serves profile, artist and user administration endpoints.
type UserHandler struct {
	svc userService
	log *slog.Logger
}

// NewUserHandler creates a UserHandler.
func NewUserHandler(svc userService, logger *slog.Logger) *UserHandler {
	return &UserHandler{svc: svc, log: logger.With("handler", "user")}
}

type updateProfileRequest struct {
	Name   *string  `json:"name"`
	Bio    *string  `json:"bio"`
	Skills []string `json:"skills"`
}

type setRoleRequest struct {
	Role string `json:"role"`
}

// Me handles GET /me.
func (h *UserHandler) Me(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireRole(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	u, err := h.svc.GetProfile(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": toUserResponse(u)})
}

// UpdateMe handles PATCH /me.
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireRole(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req updateProfileRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.svc.UpdateProfile(r.Context(), user.UpdateProfileInput{
		Name:   req.Name,
		Bio:    req.Bio,
		Skills: req.Skills,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": toUserResponse(u)})
}

// Artist handles GET /artists/{userID}. It is public.
func (h *UserHandler) Artist(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "userID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	u, err := h.svc.GetArtist(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"artist": toArtistResponse(u)})
}

// AdminList handles GET /admin/users?role=&limit=&offset=.
func (h *UserHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireRole(r.Context(), domain.UserRoleAdmin); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var input user.ListUsersInput
	var err error
	if input.Limit, err = intQuery(r, "limit"); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if input.Offset, err = intQuery(r, "offset"); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	if raw := optionalQuery(r, "role"); raw != nil {
		role := domain.UserRole(strings.ToLower(*raw))
		input.Role = &role
	}

	users, total, err := h.svc.ListUsers(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp := make([]userResponse, len(users))
	for i := range users {
		resp[i] = toUserResponse(&users[i])
	}
	writeJSON(w, http.StatusOK, map[string]any{"users": resp, "total": total})
}

// AdminSetRole handles PATCH /admin/users/{userID}/role.
func (h *UserHandler) AdminSetRole(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireRole(r.Context(), domain.UserRoleAdmin); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	id, err := uuidParam(r, "userID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req setRoleRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	u, err := h.svc.SetUserRole(r.Context(), user.SetRoleInput{
		UserID: id,
		Role:   domain.UserRole(strings.ToLower(strings.TrimSpace(req.Role))),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": toUserResponse(u)})
}
