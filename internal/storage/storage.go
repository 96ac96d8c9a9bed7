package storage

import (
	"context"
	"errors"

	"github.com/pribylovaa/go-blog-platform/internal/models"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrConflict — конфликт уникальности (дубликат идентификатора).
	ErrConflict = errors.New("conflict")
)

// BlogPatch — изменяемые поля блога.
type BlogPatch struct {
	Name        string
	Description string
	WebsiteURL  string
}

// PostPatch — изменяемые поля поста.
// BlogID/BlogName обновляются парой: при переносе поста в другой блог
// денормализованное имя обязано следовать за идентификатором.
type PostPatch struct {
	Title            string
	ShortDescription string
	Content          string
	BlogID           string
	BlogName         string
}

// Storage описывает операции хранилища над блогами, постами и комментариями.
//
// Все мутации — одиночные условные операции: хранилище сообщает
// matched/deleted count, чтобы вызывающая сторона отличала «нет такой записи»
// от успеха и чтобы проигранная гонка read-check-write вырождалась в
// безобидный ErrNotFound/no-op, а не в неавторизованную запись.
type Storage interface {
	// ListBlogs возвращает страницу блогов по нормализованному запросу.
	// SearchTerm фильтрует по name (регистронезависимая подстрока).
	ListBlogs(ctx context.Context, q models.ListQuery) (*models.Page[models.Blog], error)

	// BlogByID возвращает блог по идентификатору. Если записи нет — ErrNotFound.
	BlogByID(ctx context.Context, id string) (*models.Blog, error)

	// CreateBlog сохраняет блог; ID и CreatedAt проставляются хранилищем.
	CreateBlog(ctx context.Context, blog models.Blog) (*models.Blog, error)

	// UpdateBlog обновляет изменяемые поля; matched==0 -> ErrNotFound.
	UpdateBlog(ctx context.Context, id string, patch BlogPatch) error

	// DeleteBlog удаляет блог; deleted==0 -> ErrNotFound.
	DeleteBlog(ctx context.Context, id string) error

	// ListPosts возвращает страницу постов всех блогов.
	// SearchTerm фильтрует по title.
	ListPosts(ctx context.Context, q models.ListQuery) (*models.Page[models.Post], error)

	// ListPostsByBlog — страница постов одного блога.
	ListPostsByBlog(ctx context.Context, blogID string, q models.ListQuery) (*models.Page[models.Post], error)

	// PostByID возвращает пост по идентификатору. Если записи нет — ErrNotFound.
	PostByID(ctx context.Context, id string) (*models.Post, error)

	// CreatePost сохраняет пост; ID и CreatedAt проставляются хранилищем.
	CreatePost(ctx context.Context, post models.Post) (*models.Post, error)

	// UpdatePost обновляет изменяемые поля; matched==0 -> ErrNotFound.
	UpdatePost(ctx context.Context, id string, patch PostPatch) error

	// DeletePost удаляет пост; deleted==0 -> ErrNotFound.
	DeletePost(ctx context.Context, id string) error

	// CreateComment сохраняет комментарий; ID, CreatedAt и пустые списки
	// реакций проставляются хранилищем.
	CreateComment(ctx context.Context, comment models.Comment) (*models.Comment, error)

	// CommentByID возвращает комментарий по идентификатору. Если записи нет — ErrNotFound.
	CommentByID(ctx context.Context, id string) (*models.Comment, error)

	// UpdateCommentContent заменяет content условной записью,
	// совпадающей по id И владельцу; matched==0 -> ErrNotFound.
	UpdateCommentContent(ctx context.Context, id string, owner models.Commentator, content string) error

	// SetCommentReaction приводит отметку пользователя к целевому статусу
	// одной атомарной записью: удаляет его из обоих списков, добавляет в
	// целевой (для None — никуда) и пересчитывает счётчики по фактическим
	// длинам списков. Повторное и конкурентное применение того же статуса
	// не меняет итоговое состояние. Если комментария нет — ErrNotFound.
	SetCommentReaction(ctx context.Context, id string, reactor models.Commentator, status models.LikeStatus) error

	// DeleteComment удаляет комментарий и возвращает число удалённых
	// документов (0 — записи уже не было); решение об идемпотентности
	// принимает сервисный слой.
	DeleteComment(ctx context.Context, id string) (int64, error)

	// Close закрывает соединения/ресурсы хранилища.
	Close(ctx context.Context) error
}
