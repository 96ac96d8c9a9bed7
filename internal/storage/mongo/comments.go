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

// CreateComment создаёт комментарий: идентификатор, метка времени, пустые
// списки реакций и нулевые счётчики назначаются здесь.
func (m *Mongo) CreateComment(ctx context.Context, comm models.Comment) (*models.Comment, error) {
	const op = "storage/mongo/CreateComment"

	comm.ID = uuid.New().String()
	comm.CreatedAt = toMS(time.Now())
	comm.Likes = []models.Reaction{}
	comm.Dislikes = []models.Reaction{}
	comm.LikesCount = 0
	comm.DislikesCount = 0

	if _, err := m.comments.InsertOne(ctx, comm); err != nil {
		if mongodriver.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrConflict)
		}

		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	return &comm, nil
}

// CommentByID возвращает комментарий по идентификатору.
// Если запись не найдена — storage.ErrNotFound.
func (m *Mongo) CommentByID(ctx context.Context, id string) (*models.Comment, error) {
	const op = "storage/mongo/CommentByID"

	var out models.Comment
	if err := m.comments.FindOne(ctx, bson.D{{Key: "_id", Value: strings.TrimSpace(id)}}).Decode(&out); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out.CreatedAt = out.CreatedAt.UTC()

	return &out, nil
}

// UpdateCommentContent заменяет content одной условной записью по id И
// владельцу. Гонка read-check-write с конкурентным удалением/сменой владельца
// схлопывается в matched==0 -> storage.ErrNotFound, а не в чужую запись.
func (m *Mongo) UpdateCommentContent(ctx context.Context, id string, owner models.Commentator, content string) error {
	const op = "storage/mongo/UpdateCommentContent"

	res, err := m.comments.UpdateOne(ctx,
		bson.D{
			{Key: "_id", Value: strings.TrimSpace(id)},
			{Key: "user_id", Value: owner.UserID},
			{Key: "user_login", Value: owner.UserLogin},
		},
		bson.D{{Key: "$set", Value: bson.D{{Key: "content", Value: content}}}},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// SetCommentReaction приводит отметку пользователя к целевому статусу одним
// pipeline-обновлением: оба списка переписываются $filter'ом без реакций
// пользователя, целевой список дополняется новой записью ($concatArrays,
// для None — никуда), и тем же обновлением счётчики пересчитываются по
// $size уже переписанных списков.
//
// Один UpdateOne — значит атомарность на уровне документа: из любого
// исходного состояния комментарий переходит сразу в целевое. Конкурентные
// одинаковые запросы сериализуются сервером и не оставляют ни дублей в
// списках, ни расхождения счётчиков со списками.
func (m *Mongo) SetCommentReaction(ctx context.Context, id string, reactor models.Commentator, status models.LikeStatus) error {
	const op = "storage/mongo/SetCommentReaction"

	id = strings.TrimSpace(id)

	// Список без реакций пользователя.
	withoutReactor := func(field string) bson.D {
		return bson.D{{Key: "$filter", Value: bson.D{
			{Key: "input", Value: "$" + field},
			{Key: "as", Value: "r"},
			{Key: "cond", Value: bson.D{{Key: "$ne", Value: bson.A{"$$r.user_id", reactor.UserID}}}},
		}}}
	}

	var likes, dislikes any = withoutReactor("likes"), withoutReactor("dislikes")

	if status != models.LikeStatusNone {
		entry := models.Reaction{
			UserID:    reactor.UserID,
			UserLogin: reactor.UserLogin,
			AddedAt:   toMS(time.Now()),
		}

		target := "likes"
		if status == models.LikeStatusDislike {
			target = "dislikes"
		}

		added := bson.D{{Key: "$concatArrays", Value: bson.A{
			withoutReactor(target),
			bson.A{entry},
		}}}

		if status == models.LikeStatusDislike {
			dislikes = added
		} else {
			likes = added
		}
	}

	// Второй $set видит списки уже после первого: счётчики считаются
	// от итогового состояния в том же атомарном обновлении.
	pipeline := bson.A{
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "likes", Value: likes},
			{Key: "dislikes", Value: dislikes},
		}}},
		bson.D{{Key: "$set", Value: bson.D{
			{Key: "likes_count", Value: bson.D{{Key: "$size", Value: "$likes"}}},
			{Key: "dislikes_count", Value: bson.D{{Key: "$size", Value: "$dislikes"}}},
		}}},
	}

	res, err := m.comments.UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, pipeline)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// DeleteComment удаляет комментарий и возвращает число удалённых документов.
// Ноль — не ошибка: идемпотентность трактует сервисный слой.
func (m *Mongo) DeleteComment(ctx context.Context, id string) (int64, error) {
	const op = "storage/mongo/DeleteComment"

	res, err := m.comments.DeleteOne(ctx, bson.D{{Key: "_id", Value: strings.TrimSpace(id)}})
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return res.DeletedCount, nil
}
