package service

// Тесты сервисного слоя (internal/service/blogs.go).
//
//  Проверяем:
//  - валидацию входов (TrimSpace + обязательность полей);
//  - нормализацию списочных запросов (белый список сортировки, лимиты);
//  - маппинг ошибок storage -> service;
//  - денормализацию blogName при создании поста внутри блога;
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

// mustBlog — быстрый хелпер для сборки блога.
func mustBlog(name string) *models.Blog {
	return &models.Blog{
		ID:          uuid.New().String(),
		Name:        name,
		Description: "about " + name,
		WebsiteURL:  "https://example.com",
		CreatedAt:   time.Now().UTC(),
	}
}

func TestService_ListBlogs_NormalizesQuery(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	// Сырой запрос: нулевые страницы, сортировка вне белого списка.
	raw := models.ListQuery{
		SearchTerm: "tech",
		SortBy:     "password_hash",
		Page:       0,
		PageSize:   0,
	}

	ms.EXPECT().
		ListBlogs(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q models.ListQuery) (*models.Page[models.Blog], error) {
			require.Equal(t, "tech", q.SearchTerm)
			require.Equal(t, "createdAt", q.SortBy)
			require.Equal(t, models.SortDesc, q.SortDirection)
			require.Equal(t, int32(1), q.Page)
			require.Equal(t, int32(10), q.PageSize)
			page := models.NewPage([]models.Blog{}, 0, q)
			return &page, nil
		})

	_, err := s.ListBlogs(context.Background(), raw)
	require.NoError(t, err)
}

func TestService_ListBlogs_StorageError(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ms.EXPECT().
		ListBlogs(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("db down"))

	_, err := s.ListBlogs(context.Background(), models.ListQuery{})
	require.ErrorIs(t, err, ErrInternal)
}

func TestService_BlogByID(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	_, err := s.BlogByID(context.Background(), "  ")
	require.ErrorIs(t, err, ErrInvalidArgument)

	ms.EXPECT().
		BlogByID(gomock.Any(), "missing").
		Return(nil, storage.ErrNotFound)
	_, err = s.BlogByID(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)

	want := mustBlog("Tech Blog")
	ms.EXPECT().
		BlogByID(gomock.Any(), want.ID).
		Return(want, nil)
	got, err := s.BlogByID(context.Background(), want.ID)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestService_CreateBlog_Validation(t *testing.T) {
	s, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	// name -> TrimSpace -> пусто
	_, err := s.CreateBlog(context.Background(), BlogInput{
		Name: "   ", Description: "d", WebsiteURL: "https://example.com",
	})
	require.ErrorIs(t, err, ErrInvalidArgument)

	// пустое описание
	_, err = s.CreateBlog(context.Background(), BlogInput{
		Name: "n", Description: "", WebsiteURL: "https://example.com",
	})
	require.ErrorIs(t, err, ErrInvalidArgument)

	// пустой url
	_, err = s.CreateBlog(context.Background(), BlogInput{
		Name: "n", Description: "d", WebsiteURL: "  ",
	})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestService_CreateBlog_OK(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	want := mustBlog("Tech Blog")

	ms.EXPECT().
		CreateBlog(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b models.Blog) (*models.Blog, error) {
			require.Equal(t, "Tech Blog", b.Name)
			require.Equal(t, "about tech", b.Description)
			require.Equal(t, "https://example.com", b.WebsiteURL)
			return want, nil
		})

	got, err := s.CreateBlog(context.Background(), BlogInput{
		Name: "  Tech Blog  ", Description: "about tech", WebsiteURL: "https://example.com",
	})
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestService_UpdateBlog(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	in := BlogInput{Name: "n", Description: "d", WebsiteURL: "https://example.com"}

	err := s.UpdateBlog(context.Background(), "  ", in)
	require.ErrorIs(t, err, ErrInvalidArgument)

	ms.EXPECT().
		UpdateBlog(gomock.Any(), "missing", gomock.Any()).
		Return(storage.ErrNotFound)
	err = s.UpdateBlog(context.Background(), "missing", in)
	require.ErrorIs(t, err, ErrNotFound)

	ms.EXPECT().
		UpdateBlog(gomock.Any(), "b1", storage.BlogPatch{
			Name: "n", Description: "d", WebsiteURL: "https://example.com",
		}).
		Return(nil)
	err = s.UpdateBlog(context.Background(), "b1", in)
	require.NoError(t, err)
}

// Удаление блога строгое: отсутствие — ошибка, в отличие от комментариев.
func TestService_DeleteBlog(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	err := s.DeleteBlog(context.Background(), "")
	require.ErrorIs(t, err, ErrInvalidArgument)

	ms.EXPECT().
		DeleteBlog(gomock.Any(), "missing").
		Return(storage.ErrNotFound)
	err = s.DeleteBlog(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)

	ms.EXPECT().
		DeleteBlog(gomock.Any(), "b1").
		Return(nil)
	err = s.DeleteBlog(context.Background(), "b1")
	require.NoError(t, err)
}

// Список постов блога: неизвестный блог отсекается до выборки.
func TestService_ListPostsByBlog_BlogMissing(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ms.EXPECT().
		BlogByID(gomock.Any(), "missing").
		Return(nil, storage.ErrNotFound)

	_, err := s.ListPostsByBlog(context.Background(), "missing", models.ListQuery{})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_ListPostsByBlog_OK(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	blog := mustBlog("Tech Blog")

	ms.EXPECT().
		BlogByID(gomock.Any(), blog.ID).
		Return(blog, nil)
	ms.EXPECT().
		ListPostsByBlog(gomock.Any(), blog.ID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, q models.ListQuery) (*models.Page[models.Post], error) {
			require.Equal(t, "createdAt", q.SortBy)
			page := models.NewPage([]models.Post{}, 0, q)
			return &page, nil
		})

	page, err := s.ListPostsByBlog(context.Background(), blog.ID, models.ListQuery{})
	require.NoError(t, err)
	require.NotNil(t, page)
}

// blogName проставляется из родителя, а не из входа.
func TestService_CreatePostForBlog_DenormalizesBlogName(t *testing.T) {
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
			require.Equal(t, "Title", p.Title)
			created := p
			created.ID = uuid.New().String()
			created.CreatedAt = time.Now().UTC()
			return &created, nil
		})

	got, err := s.CreatePostForBlog(context.Background(), blog.ID, PostInput{
		Title: "Title", ShortDescription: "short", Content: "content",
	})
	require.NoError(t, err)
	require.Equal(t, blog.Name, got.BlogName)
}

func TestService_CreatePostForBlog_BlogMissing(t *testing.T) {
	s, ms, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	ms.EXPECT().
		BlogByID(gomock.Any(), "missing").
		Return(nil, storage.ErrNotFound)

	_, err := s.CreatePostForBlog(context.Background(), "missing", PostInput{
		Title: "t", ShortDescription: "s", Content: "c",
	})
	require.ErrorIs(t, err, ErrNotFound)
}
