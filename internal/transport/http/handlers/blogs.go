package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/pribylovaa/go-blog-platform/internal/models"
	"github.com/pribylovaa/go-blog-platform/internal/service"
	"github.com/pribylovaa/go-blog-platform/internal/transport/http/httperr"
)

// blogBody — тело запросов создания/обновления блога.
type blogBody struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	WebsiteURL  string `json:"websiteUrl"`
}

func (b blogBody) toInput() service.BlogInput {
	return service.BlogInput{
		Name:        b.Name,
		Description: b.Description,
		WebsiteURL:  b.WebsiteURL,
	}
}

func (h *Handlers) ListBlogs(w http.ResponseWriter, r *http.Request) {
	q := listQuery(r)
	q.SearchTerm = r.URL.Query().Get("searchNameTerm")

	page, err := h.Service.ListBlogs(r.Context(), q)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.NewPageView(*page, models.NewBlogView))
}

func (h *Handlers) GetBlogByID(w http.ResponseWriter, r *http.Request) {
	blog, err := h.Service.BlogByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.NewBlogView(*blog))
}

func (h *Handlers) CreateBlog(w http.ResponseWriter, r *http.Request) {
	var body blogBody
	if err := decodeStrict(r, &body); err != nil {
		httperr.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	blog, err := h.Service.CreateBlog(r.Context(), body.toInput())
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, models.NewBlogView(*blog))
}

func (h *Handlers) UpdateBlog(w http.ResponseWriter, r *http.Request) {
	var body blogBody
	if err := decodeStrict(r, &body); err != nil {
		httperr.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	if err := h.Service.UpdateBlog(r.Context(), chi.URLParam(r, "id"), body.toInput()); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	if err := h.Service.DeleteBlog(r.Context(), chi.URLParam(r, "id")); err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) ListPostsByBlog(w http.ResponseWriter, r *http.Request) {
	q := listQuery(r)
	q.SearchTerm = r.URL.Query().Get("searchTitleTerm")

	page, err := h.Service.ListPostsByBlog(r.Context(), chi.URLParam(r, "blogId"), q)
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, models.NewPageView(*page, models.NewPostView))
}

func (h *Handlers) CreatePostForBlog(w http.ResponseWriter, r *http.Request) {
	var body postBody
	if err := decodeStrict(r, &body); err != nil {
		httperr.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	post, err := h.Service.CreatePostForBlog(r.Context(), chi.URLParam(r, "blogId"), body.toInput())
	if err != nil {
		httperr.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, models.NewPostView(*post))
}
