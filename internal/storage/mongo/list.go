package mongo

import (
	"context"
	"fmt"
	"regexp"

	"github.com/pribylovaa/go-blog-platform/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Сопоставление внешних имён сортировки с полями документов.
// Белый список уже применён при нормализации запроса; неизвестное имя
// здесь — ошибка программирования, прикрываемся created_at.
var (
	blogSortFields = map[string]string{
		"name":      "name",
		"createdAt": "created_at",
	}
	postSortFields = map[string]string{
		"title":     "title",
		"blogName":  "blog_name",
		"createdAt": "created_at",
	}
)

// searchFilter — регистронезависимый поиск подстроки по одному полю.
// Термин экранируется: пользовательский ввод не должен превращаться в regex.
func searchFilter(field, term string) bson.E {
	return bson.E{Key: field, Value: primitive.Regex{
		Pattern: regexp.QuoteMeta(term),
		Options: "i",
	}}
}

// sortDoc собирает сортировку find-запроса из нормализованного ListQuery.
func sortDoc(fields map[string]string, q models.ListQuery) bson.D {
	field, ok := fields[q.SortBy]
	if !ok {
		field = "created_at"
	}

	dir := -1
	if q.SortDirection == models.SortAsc {
		dir = 1
	}

	return bson.D{{Key: field, Value: dir}}
}

// findPage выполняет count + find(skip/limit) и собирает конверт выдачи.
// totalCount считается по тому же фильтру, что и страница, поэтому
// pagesCount консистентен с items.
func findPage[T any](ctx context.Context, coll *mongodriver.Collection, filter bson.D, sort bson.D, q models.ListQuery) (*models.Page[T], error) {
	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count: %w", err)
	}

	findOpts := options.Find().
		SetSort(sort).
		SetSkip(q.Skip()).
		SetLimit(int64(q.PageSize))

	cur, err := coll.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("find: %w", err)
	}
	defer cur.Close(ctx)

	var items []T
	for cur.Next(ctx) {
		var item T
		if err := cur.Decode(&item); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}

		items = append(items, item)
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("cursor: %w", err)
	}

	page := models.NewPage(items, total, q)
	return &page, nil
}
