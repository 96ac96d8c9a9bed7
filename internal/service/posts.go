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

// PostInput — создание/обновление поста.
// BlogID используется операциями уровня /posts; путь /blogs/{id}/posts
// берёт идентификатор блога из URL.
type PostInput struct {
	Title            string
	ShortDescription string
	Content          string
	BlogID           string
}

// validatePostInput нормализует текстовые поля и проверяет обязательность.
// BlogID проверяется отдельно теми операциями, которым он нужен.
func validatePostInput(in *PostInput) error {
	in.Title = strings.TrimSpace(in.Title)
	if in.Title == "" {
		return fmt.Errorf("empty title: %w", ErrInvalidArgument)
	}

	in.ShortDescription = strings.TrimSpace(in.ShortDescription)
	if in.ShortDescription == "" {
		return fmt.Errorf("empty short description: %w", ErrInvalidArgument)
	}

	in.Content = strings.TrimSpace(in.Content)
	if in.Content == "" {
		return fmt.Errorf("empty content: %w", ErrInvalidArgument)
	}

	return nil
}

// ListPosts — страница постов всех блогов.
func (s *Service) ListPosts(ctx context.Context, q models.ListQuery) (*models.Page[models.Post], error) {
	const op = "service/posts/ListPosts"

	lg := log.From(ctx).With("op", op)

	page, err := s.storage.ListPosts(ctx, s.normalize(postListSpec, q))
	if err != nil {
		lg.Error("storage error on ListPosts", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return page, nil
}

// PostByID — получить пост по ID.
func (s *Service) PostByID(ctx context.Context, id string) (*models.Post, error) {
	const op = "service/posts/PostByID"

	id = strings.TrimSpace(id)
	lg := log.From(ctx).With("op", op, "id", id)

	if id == "" {
		lg.Warn("invalid argument: empty id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	result, err := s.storage.PostByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("post not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on PostByID", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return result, nil
}

// CreatePost — создание поста; родительский блог обязан существовать,
// его имя денормализуется в документ поста.
func (s *Service) CreatePost(ctx context.Context, in PostInput) (*models.Post, error) {
	const op = "service/posts/CreatePost"

	lg := log.From(ctx).With("op", op)

	if err := validatePostInput(&in); err != nil {
		lg.Warn("invalid argument", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	in.BlogID = strings.TrimSpace(in.BlogID)
	if in.BlogID == "" {
		lg.Warn("invalid argument: empty blog_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	blog, err := s.storage.BlogByID(ctx, in.BlogID)
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

// UpdatePost — обновление изменяемых полей поста; при смене блога
// blogName следует за новым родителем.
func (s *Service) UpdatePost(ctx context.Context, id string, in PostInput) error {
	const op = "service/posts/UpdatePost"

	id = strings.TrimSpace(id)
	lg := log.From(ctx).With("op", op, "id", id)

	if id == "" {
		lg.Warn("invalid argument: empty id")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if err := validatePostInput(&in); err != nil {
		lg.Warn("invalid argument", "err", err)
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	in.BlogID = strings.TrimSpace(in.BlogID)
	if in.BlogID == "" {
		lg.Warn("invalid argument: empty blog_id")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	blog, err := s.storage.BlogByID(ctx, in.BlogID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("blog not found")
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on BlogByID", "err", err)
			return fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	err = s.storage.UpdatePost(ctx, id, storage.PostPatch{
		Title:            in.Title,
		ShortDescription: in.ShortDescription,
		Content:          in.Content,
		BlogID:           blog.ID,
		BlogName:         blog.Name,
	})
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("post not found")
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on UpdatePost", "err", err)
			return fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return nil
}

// DeletePost — удаление поста (строгое: отсутствие -> ErrNotFound).
func (s *Service) DeletePost(ctx context.Context, id string) error {
	const op = "service/posts/DeletePost"

	id = strings.TrimSpace(id)
	lg := log.From(ctx).With("op", op, "id", id)

	if id == "" {
		lg.Warn("invalid argument: empty id")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if err := s.storage.DeletePost(ctx, id); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("post not found")
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on DeletePost", "err", err)
			return fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return nil
}
