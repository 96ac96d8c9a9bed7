package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/go-blog-platform/internal/models"
	"github.com/pribylovaa/go-blog-platform/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

// ListPosts возвращает страницу постов всех блогов.
// SearchTerm — регистронезависимая подстрока по title.
func (m *Mongo) ListPosts(ctx context.Context, q models.ListQuery) (*models.Page[models.Post], error) {
	const op = "storage/mongo/ListPosts"

	filter := bson.D{}
	if term := strings.TrimSpace(q.SearchTerm); term != "" {
		filter = append(filter, searchFilter("title", term))
	}

	page, err := findPage[models.Post](ctx, m.posts, filter, sortDoc(postSortFields, q), q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range page.Items {
		page.Items[i].CreatedAt = page.Items[i].CreatedAt.UTC()
	}

	return page, nil
}

// ListPostsByBlog — страница постов одного блога; фильтр по title действует
// внутри выборки блога.
func (m *Mongo) ListPostsByBlog(ctx context.Context, blogID string, q models.ListQuery) (*models.Page[models.Post], error) {
	const op = "storage/mongo/ListPostsByBlog"

	filter := bson.D{{Key: "blog_id", Value: strings.TrimSpace(blogID)}}
	if term := strings.TrimSpace(q.SearchTerm); term != "" {
		filter = append(filter, searchFilter("title", term))
	}

	page, err := findPage[models.Post](ctx, m.posts, filter, sortDoc(postSortFields, q), q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range page.Items {
		page.Items[i].CreatedAt = page.Items[i].CreatedAt.UTC()
	}

	return page, nil
}

// PostByID возвращает пост по идентификатору.
// Если запись не найдена — storage.ErrNotFound.
func (m *Mongo) PostByID(ctx context.Context, id string) (*models.Post, error) {
	const op = "storage/mongo/PostByID"

	var out models.Post
	if err := m.posts.FindOne(ctx, bson.D{{Key: "_id", Value: strings.TrimSpace(id)}}).Decode(&out); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out.CreatedAt = out.CreatedAt.UTC()

	return &out, nil
}

// CreatePost создаёт пост: идентификатор и метка времени назначаются здесь.
// BlogName обязан быть проставлен вызывающей стороной из родительского блога.
func (m *Mongo) CreatePost(ctx context.Context, post models.Post) (*models.Post, error) {
	const op = "storage/mongo/CreatePost"

	post.ID = uuid.New().String()
	post.CreatedAt = toMS(time.Now())

	if _, err := m.posts.InsertOne(ctx, post); err != nil {
		if mongodriver.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrConflict)
		}

		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	return &post, nil
}

// UpdatePost обновляет изменяемые поля поста одной условной записью.
// matched==0 -> storage.ErrNotFound.
func (m *Mongo) UpdatePost(ctx context.Context, id string, patch storage.PostPatch) error {
	const op = "storage/mongo/UpdatePost"

	res, err := m.posts.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: strings.TrimSpace(id)}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "title", Value: patch.Title},
			{Key: "short_description", Value: patch.ShortDescription},
			{Key: "content", Value: patch.Content},
			{Key: "blog_id", Value: patch.BlogID},
			{Key: "blog_name", Value: patch.BlogName},
		}}},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// DeletePost удаляет пост. deleted==0 -> storage.ErrNotFound.
func (m *Mongo) DeletePost(ctx context.Context, id string) error {
	const op = "storage/mongo/DeletePost"

	res, err := m.posts.DeleteOne(ctx, bson.D{{Key: "_id", Value: strings.TrimSpace(id)}})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
