package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pribylovaa/go-blog-platform/internal/models"
	"github.com/pribylovaa/go-blog-platform/internal/service"
	"github.com/pribylovaa/go-blog-platform/internal/transport/http/httperr"
)

// postBody — тело запросов создания/обновления поста.
// BlogID игнорируется маршрутом /blogs/{blogId}/posts: там блог задаёт URL.
type postBody struct {
	Title            string `json:"title"`
	ShortDescription string `json:"shortDescription"`
	Content          string `json:"content"`
	BlogID           string `json:"blogId,omitempty"`
}

func (b postBody) toInput() service.PostInput {
	return service.PostInput{
		Title:            b.Title,
		ShortDescription: b.ShortDescription,
		Content:          b.Content,
		BlogID:           b.BlogID,
	}
}

func (h *Handlers) ListPosts(w http.ResponseWriter, r *http.Request) {
	q := listQuery(r)
	q.SearchTerm = r.URL.Query().Get("searchTitleTerm")

	page, err := h.Service.ListPosts(r.Context(), q)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.NewPageView(*page, models.NewPostView))
}

func (h *Handlers) GetPostByID(w http.ResponseWriter, r *http.Request) {
	post, err := h.Service.PostByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.NewPostView(*post))
}

func (h *Handlers) CreatePost(w http.ResponseWriter, r *http.Request) {
	var body postBody
	if err := decodeStrict(r, &body); err != nil {
		httperr.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	post, err := h.Service.CreatePost(r.Context(), body.toInput())
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, models.NewPostView(*post))
}

func (h *Handlers) UpdatePost(w http.ResponseWriter, r *http.Request) {
	var body postBody
	if err := decodeStrict(r, &body); err != nil {
		httperr.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	if err := h.Service.UpdatePost(r.Context(), chi.URLParam(r, "id"), body.toInput()); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) DeletePost(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeletePost(r.Context(), chi.URLParam(r, "id")); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
