package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pribylovaa/go-blog-platform/internal/models"
	"github.com/pribylovaa/go-blog-platform/internal/service"
	"github.com/pribylovaa/go-blog-platform/internal/transport/http/httperr"
	"github.com/pribylovaa/go-blog-platform/internal/transport/http/middleware"
)

// GetCommentByID — публичное чтение; myStatus считается для текущего
// зрителя (аноним получает None).
func (h *Handlers) GetCommentByID(w http.ResponseWriter, r *http.Request) {
	comment, err := h.Service.CommentByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	viewer := middleware.IdentityFrom(r.Context())
	writeJSON(w, http.StatusOK, models.NewCommentView(*comment, viewer.UserID))
}

func (h *Handlers) UpdateComment(w http.ResponseWriter, r *http.Request) {
	requester := middleware.IdentityFrom(r.Context())
	if requester.IsZero() {
		httperr.WriteError(w, r, httperr.ErrUnauthenticated)
		return
	}

	var body struct {
		Content string `json:"content"`
	}
	if err := decodeStrict(r, &body); err != nil {
		httperr.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	err := h.Service.UpdateComment(r.Context(), service.UpdateCommentInput{
		ID:        chi.URLParam(r, "id"),
		Requester: requester,
		Content:   body.Content,
	})
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) SetCommentLikeStatus(w http.ResponseWriter, r *http.Request) {
	requester := middleware.IdentityFrom(r.Context())
	if requester.IsZero() {
		httperr.WriteError(w, r, httperr.ErrUnauthenticated)
		return
	}

	var body struct {
		LikeStatus string `json:"likeStatus"`
	}
	if err := decodeStrict(r, &body); err != nil {
		httperr.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	err := h.Service.SetCommentReaction(r.Context(), service.SetReactionInput{
		ID:        chi.URLParam(r, "id"),
		Requester: requester,
		Status:    models.LikeStatus(body.LikeStatus),
	})
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) DeleteComment(w http.ResponseWriter, r *http.Request) {
	requester := middleware.IdentityFrom(r.Context())
	if requester.IsZero() {
		httperr.WriteError(w, r, httperr.ErrUnauthenticated)
		return
	}

	if err := h.Service.DeleteComment(r.Context(), chi.URLParam(r, "id"), requester); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
