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

// toMS — MongoDB DateTime хранит миллисекунды.
func toMS(t time.Time) time.Time { return t.UTC().Truncate(time.Millisecond) }

// ListBlogs возвращает страницу блогов.
// SearchTerm — регистронезависимая подстрока по name.
func (m *Mongo) ListBlogs(ctx context.Context, q models.ListQuery) (*models.Page[models.Blog], error) {
	const op = "storage/mongo/ListBlogs"

	filter := bson.D{}
	if term := strings.TrimSpace(q.SearchTerm); term != "" {
		filter = append(filter, searchFilter("name", term))
	}

	page, err := findPage[models.Blog](ctx, m.blogs, filter, sortDoc(blogSortFields, q), q)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for i := range page.Items {
		page.Items[i].CreatedAt = page.Items[i].CreatedAt.UTC()
	}

	return page, nil
}

// BlogByID возвращает блог по идентификатору.
// Если запись не найдена — storage.ErrNotFound.
func (m *Mongo) BlogByID(ctx context.Context, id string) (*models.Blog, error) {
	const op = "storage/mongo/BlogByID"

	var out models.Blog
	if err := m.blogs.FindOne(ctx, bson.D{{Key: "_id", Value: strings.TrimSpace(id)}}).Decode(&out); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out.CreatedAt = out.CreatedAt.UTC()

	return &out, nil
}

// CreateBlog создаёт блог: идентификатор и метка времени назначаются здесь.
func (m *Mongo) CreateBlog(ctx context.Context, blog models.Blog) (*models.Blog, error) {
	const op = "storage/mongo/CreateBlog"

	blog.ID = uuid.New().String()
	blog.CreatedAt = toMS(time.Now())

	if _, err := m.blogs.InsertOne(ctx, blog); err != nil {
		if mongodriver.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrConflict)
		}

		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	return &blog, nil
}

// UpdateBlog обновляет изменяемые поля блога одной условной записью.
// matched==0 -> storage.ErrNotFound.
func (m *Mongo) UpdateBlog(ctx context.Context, id string, patch storage.BlogPatch) error {
	const op = "storage/mongo/UpdateBlog"

	res, err := m.blogs.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: strings.TrimSpace(id)}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "name", Value: patch.Name},
			{Key: "description", Value: patch.Description},
			{Key: "website_url", Value: patch.WebsiteURL},
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

// DeleteBlog удаляет блог. deleted==0 -> storage.ErrNotFound.
func (m *Mongo) DeleteBlog(ctx context.Context, id string) error {
	const op = "storage/mongo/DeleteBlog"

	res, err := m.blogs.DeleteOne(ctx, bson.D{{Key: "_id", Value: strings.TrimSpace(id)}})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
