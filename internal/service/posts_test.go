package service

// Тесты сервисного слоя (internal/service/posts.go).
//
//  Проверяем:
//  - валидацию входов (включая обязательный blogID);
//  - разрешение родительского блога и денормализацию blogName;
//  - маппинг ошибок storage -> service;
//  - happy-path каждого метода.

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pribylovaa/go-blog-platform/internal/models"
	"github.com/pribylovaa/go-blog-platform/internal/storage"
	"github.com/stretchr/testify/require"
)

// mustPost — быстрый хелпер для сборки поста.
func mustPost(blog *models.Blog, title string) *models.Post {
	return &models.Post{
		ID:               uuid.New().String(),
		Title:            title,
		ShortDescription: "short",
		Content:          "content",
		BlogID:           blog.ID,
		BlogName:         blog.Name,
		CreatedAt:        time.Now().UTC(),
	}
}

func TestService_ListPosts(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ms.EXPECT().
		ListPosts(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q models.ListQuery) (*models.Page[models.Post], error) {
			require.Equal(t, int32(1), q.Page)
			require.Equal(t, int32(10), q.PageSize)
			page := models.NewPage([]models.Post{}, 0, q)
			return &page, nil
		})

	_, err := s.ListPosts(context.Background(), models.ListQuery{})
	require.NoError(t, err)

	ms.EXPECT().
		ListPosts(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("db down"))
	_, err = s.ListPosts(context.Background(), models.ListQuery{})
	require.ErrorIs(t, err, ErrInternal)
}

func TestService_PostByID(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	_, err := s.PostByID(context.Background(), "  ")
	require.ErrorIs(t, err, ErrInvalidArgument)

	ms.EXPECT().
		PostByID(gomock.Any(), "missing").
		Return(nil, storage.ErrNotFound)
	_, err = s.PostByID(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)

	blog := mustBlog("Tech Blog")
	want := mustPost(blog, "Title")
	ms.EXPECT().
		PostByID(gomock.Any(), want.ID).
		Return(want, nil)
	got, err := s.PostByID(context.Background(), want.ID)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestService_CreatePost_Validation(t *testing.T) {
	s, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	// title -> TrimSpace -> пусто
	_, err := s.CreatePost(context.Background(), PostInput{
		Title: "  ", ShortDescription: "s", Content: "c", BlogID: "b1",
	})
	require.ErrorIs(t, err, ErrInvalidArgument)

	// пустое краткое описание
	_, err = s.CreatePost(context.Background(), PostInput{
		Title: "t", ShortDescription: "", Content: "c", BlogID: "b1",
	})
	require.ErrorIs(t, err, ErrInvalidArgument)

	// пустое содержимое
	_, err = s.CreatePost(context.Background(), PostInput{
		Title: "t", ShortDescription: "s", Content: " ", BlogID: "b1",
	})
	require.ErrorIs(t, err, ErrInvalidArgument)

	// пустой blogID
	_, err = s.CreatePost(context.Background(), PostInput{
		Title: "t", ShortDescription: "s", Content: "c", BlogID: "  ",
	})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestService_CreatePost_BlogMissing(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ms.EXPECT().
		BlogByID(gomock.Any(), "missing").
		Return(nil, storage.ErrNotFound)

	_, err := s.CreatePost(context.Background(), PostInput{
		Title: "t", ShortDescription: "s", Content: "c", BlogID: "missing",
	})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_CreatePost_OK(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	blog := mustBlog("Tech Blog")

	ms.EXPECT().
		BlogByID(gomock.Any(), blog.ID).
		Return(blog, nil)
	ms.EXPECT().
		CreatePost(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p models.Post) (*models.Post, error) {
			require.Equal(t, blog.ID, p.BlogID)
			require.Equal(t, blog.Name, p.BlogName)
			created := p
			created.ID = uuid.New().String()
			created.CreatedAt = time.Now().UTC()
			return &created, nil
		})

	got, err := s.CreatePost(context.Background(), PostInput{
		Title: "  Title  ", ShortDescription: "short", Content: "content", BlogID: blog.ID,
	})
	require.NoError(t, err)
	require.Equal(t, "Title", got.Title)
	require.Equal(t, blog.Name, got.BlogName)
}

// При смене блога blogName следует за новым родителем.
func TestService_UpdatePost_FollowsNewBlog(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	newBlog := mustBlog("Travel Log")

	ms.EXPECT().
		BlogByID(gomock.Any(), newBlog.ID).
		Return(newBlog, nil)
	ms.EXPECT().
		UpdatePost(gomock.Any(), "p1", storage.PostPatch{
			Title:            "Title",
			ShortDescription: "short",
			Content:          "content",
			BlogID:           newBlog.ID,
			BlogName:         newBlog.Name,
		}).
		Return(nil)

	err := s.UpdatePost(context.Background(), "p1", PostInput{
		Title: "Title", ShortDescription: "short", Content: "content", BlogID: newBlog.ID,
	})
	require.NoError(t, err)
}

func TestService_UpdatePost_NotFound(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	blog := mustBlog("Tech Blog")

	ms.EXPECT().
		BlogByID(gomock.Any(), blog.ID).
		Return(blog, nil)
	ms.EXPECT().
		UpdatePost(gomock.Any(), "missing", gomock.Any()).
		Return(storage.ErrNotFound)

	err := s.UpdatePost(context.Background(), "missing", PostInput{
		Title: "t", ShortDescription: "s", Content: "c", BlogID: blog.ID,
	})
	require.ErrorIs(t, err, ErrNotFound)
}

// Удаление поста строгое: отсутствие — ошибка.
func TestService_DeletePost(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	err := s.DeletePost(context.Background(), "")
	require.ErrorIs(t, err, ErrInvalidArgument)

	ms.EXPECT().
		DeletePost(gomock.Any(), "missing").
		Return(storage.ErrNotFound)
	err = s.DeletePost(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)

	ms.EXPECT().
		DeletePost(gomock.Any(), "p1").
		Return(nil)
	err = s.DeletePost(context.Background(), "p1")
	require.NoError(t, err)
}
