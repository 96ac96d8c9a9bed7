// Package http собирает REST-роутер content-service.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/pribylovaa/go-blog-platform/internal/service"
	"github.com/pribylovaa/go-blog-platform/internal/transport/http/handlers"
	"github.com/pribylovaa/go-blog-platform/internal/transport/http/middleware"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger         *slog.Logger
	Timeout        time.Duration
	AllowedOrigins []string
	BasePath       string // например, "/api"; если пустой — роуты регистрируются на корне.
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),            // безопасно ловим паники
		middleware.RequestID(),          // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger), // кладём request-scoped логгер в контекст и логируем
		middleware.Metrics(),            // счётчик/гистограмма по шаблону маршрута
		middleware.Identity(),           // доверенная идентичность из X-User-Id/X-User-Login
	)
	if len(opts.AllowedOrigins) > 0 {
		root.Use(cors.Handler(cors.Options{
			AllowedOrigins:   opts.AllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-Id", "X-User-Id", "X-User-Login"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	// Зависимости хендлеров.
	h := handlers.New(svc)

	// Регистрация маршрутов.
	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// blogs
	r.Get("/blogs", h.ListBlogs)
	r.Post("/blogs", h.CreateBlog)
	r.Get("/blogs/{id}", h.GetBlogByID)
	r.Put("/blogs/{id}", h.UpdateBlog)
	r.Delete("/blogs/{id}", h.DeleteBlog)
	r.Get("/blogs/{blogId}/posts", h.ListPostsByBlog)
	r.Post("/blogs/{blogId}/posts", h.CreatePostForBlog)

	// posts
	r.Get("/posts", h.ListPosts)
	r.Post("/posts", h.CreatePost)
	r.Get("/posts/{id}", h.GetPostByID)
	r.Put("/posts/{id}", h.UpdatePost)
	r.Delete("/posts/{id}", h.DeletePost)

	// comments
	r.Get("/comments/{id}", h.GetCommentByID)
	r.Put("/comments/{id}", h.UpdateComment)
	r.Put("/comments/{id}/like-status", h.SetCommentLikeStatus)
	r.Delete("/comments/{id}", h.DeleteComment)
}
