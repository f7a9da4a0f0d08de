package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/stagehype-backend/internal/domain"
	"github.com/heartmarshall/stagehype-backend/internal/service/comment"
	"github.com/heartmarshall/stagehype-backend/internal/transport/middleware"
)

type commentService interface {
	AddComment(ctx context.Context, input comment.AddCommentInput) (*domain.Comment, error)
	ListComments(ctx context.Context, filmID uuid.UUID, limit int) ([]domain.Comment, error)
}

// CommentHandler serves film comments.
type CommentHandler struct {
	svc commentService
	log *slog.Logger
}

// NewCommentHandler creates a CommentHandler.
func NewCommentHandler(svc commentService, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{svc: svc, log: logger.With("handler", "comment")}
}

type addCommentRequest struct {
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

// List handles GET /films/{filmID}/comments.
func (h *CommentHandler) List(w http.ResponseWriter, r *http.Request) {
	filmID, err := uuidParam(r, "filmID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	limit, err := intQuery(r, "limit")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	comments, err := h.svc.ListComments(r.Context(), filmID, limit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	resp, err := toCommentResponses(r.Context(), comments)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"comments": resp})
}

// Add handles POST /films/{filmID}/comments.
func (h *CommentHandler) Add(w http.ResponseWriter, r *http.Request) {
	if err := middleware.RequireRole(r.Context()); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	filmID, err := uuidParam(r, "filmID")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req addCommentRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	c, err := h.svc.AddComment(r.Context(), comment.AddCommentInput{
		FilmID: filmID,
		Rating: req.Rating,
		Text:   req.Text,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"comment": toCommentResponse(c)})
}
