package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pribylovaa/go-blog-platform/pkg/log"

	"github.com/pribylovaa/go-blog-platform/internal/models"
	"github.com/pribylovaa/go-blog-platform/internal/storage"
)

// BlogInput — создание/обновление блога.
type BlogInput struct {
	Name        string
	Description string
	WebsiteURL  string
}

// validateBlogInput нормализует поля и проверяет обязательность.
func validateBlogInput(in *BlogInput) error {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return fmt.Errorf("empty name: %w", ErrInvalidArgument)
	}

	in.Description = strings.TrimSpace(in.Description)
	if in.Description == "" {
		return fmt.Errorf("empty description: %w", ErrInvalidArgument)
	}

	in.WebsiteURL = strings.TrimSpace(in.WebsiteURL)
	if in.WebsiteURL == "" {
		return fmt.Errorf("empty website url: %w", ErrInvalidArgument)
	}

	return nil
}

// ListBlogs — страница блогов; запрос нормализуется по белому списку
// сортировки и лимитам конфигурации.
func (s *Service) ListBlogs(ctx context.Context, q models.ListQuery) (*models.Page[models.Blog], error) {
	const op = "service/blogs/ListBlogs"

	lg := log.From(ctx).With("op", op)

	page, err := s.storage.ListBlogs(ctx, s.normalize(blogListSpec, q))
	if err != nil {
		lg.Error("storage error on ListBlogs", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return page, nil
}

// BlogByID — получить блог по ID.
func (s *Service) BlogByID(ctx context.Context, id string) (*models.Blog, error) {
	const op = "service/blogs/BlogByID"

	id = strings.TrimSpace(id)
	lg := log.From(ctx).With("op", op, "id", id)

	if id == "" {
		lg.Warn("invalid argument: empty id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	result, err := s.storage.BlogByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("blog not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on BlogByID", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return result, nil
}

// CreateBlog — создание блога.
func (s *Service) CreateBlog(ctx context.Context, in BlogInput) (*models.Blog, error) {
	const op = "service/blogs/CreateBlog"

	lg := log.From(ctx).With("op", op)

	if err := validateBlogInput(&in); err != nil {
		lg.Warn("invalid argument", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	result, err := s.storage.CreateBlog(ctx, models.Blog{
		Name:        in.Name,
		Description: in.Description,
		WebsiteURL:  in.WebsiteURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrConflict):
			lg.Warn("conflict")
			return nil, fmt.Errorf("%s: %w", op, ErrConflict)
		default:
			lg.Error("storage error on CreateBlog", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return result, nil
}

// UpdateBlog — обновление изменяемых полей блога.
// matched==0 на стороне стораджа -> ErrNotFound.
func (s *Service) UpdateBlog(ctx context.Context, id string, in BlogInput) error {
	const op = "service/blogs/UpdateBlog"

	id = strings.TrimSpace(id)
	lg := log.From(ctx).With("op", op, "id", id)

	if id == "" {
		lg.Warn("invalid argument: empty id")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if err := validateBlogInput(&in); err != nil {
		lg.Warn("invalid argument", "err", err)
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	err := s.storage.UpdateBlog(ctx, id, storage.BlogPatch{
		Name:        in.Name,
		Description: in.Description,
		WebsiteURL:  in.WebsiteURL,
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("blog not found")
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on UpdateBlog", "err", err)
			return fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return nil
}

// DeleteBlog — удаление блога (строгое: отсутствие -> ErrNotFound).
func (s *Service) DeleteBlog(ctx context.Context, id string) error {
	const op = "service/blogs/DeleteBlog"

	id = strings.TrimSpace(id)
	lg := log.From(ctx).With("op", op, "id", id)

	if id == "" {
		lg.Warn("invalid argument: empty id")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if err := s.storage.DeleteBlog(ctx, id); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("blog not found")
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on DeleteBlog", "err", err)
			return fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return nil
}

// ListPostsByBlog — страница постов одного блога.
// Неизвестный блог — ErrNotFound ещё до обращения к выборке постов.
func (s *Service) ListPostsByBlog(ctx context.Context, blogID string, q models.ListQuery) (*models.Page[models.Post], error) {
	const op = "service/blogs/ListPostsByBlog"

	blogID = strings.TrimSpace(blogID)
	lg := log.From(ctx).With("op", op, "blog_id", blogID)

	if blogID == "" {
		lg.Warn("invalid argument: empty blog_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if _, err := s.storage.BlogByID(ctx, blogID); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("blog not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on BlogByID", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	page, err := s.storage.ListPostsByBlog(ctx, blogID, s.normalize(postListSpec, q))
	if err != nil {
		lg.Error("storage error on ListPostsByBlog", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return page, nil
}

// CreatePostForBlog — создание поста внутри блога; денормализованное
// blogName проставляется из родителя.
func (s *Service) CreatePostForBlog(ctx context.Context, blogID string, in PostInput) (*models.Post, error) {
	const op = "service/blogs/CreatePostForBlog"

	blogID = strings.TrimSpace(blogID)
	lg := log.From(ctx).With("op", op, "blog_id", blogID)

	if blogID == "" {
		lg.Warn("invalid argument: empty blog_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if err := validatePostInput(&in); err != nil {
		lg.Warn("invalid argument", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	blog, err := s.storage.BlogByID(ctx, blogID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("blog not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on BlogByID", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	result, err := s.storage.CreatePost(ctx, models.Post{
		Title:            in.Title,
		ShortDescription: in.ShortDescription,
		Content:          in.Content,
		BlogID:           blog.ID,
		BlogName:         blog.Name,
	})
	if err != nil {
		lg.Error("storage error on CreatePost", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return result, nil
}
