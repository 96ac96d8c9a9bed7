// Package models содержит доменные сущности content-сервиса.
package models

import (
	"time"

	"github.com/google/uuid"
)

// LikeStatus — отношение пользователя к комментарию.
type LikeStatus string

const (
	LikeStatusLike    LikeStatus = "Like"
	LikeStatusDislike LikeStatus = "Dislike"
	LikeStatusNone    LikeStatus = "None"
)

// ParseLikeStatus валидирует строковое значение статуса.
func ParseLikeStatus(s string) (LikeStatus, bool) {
	switch LikeStatus(s) {
	case LikeStatusLike, LikeStatusDislike, LikeStatusNone:
		return LikeStatus(s), true
	default:
		return LikeStatusNone, false
	}
}

// Commentator — составной идентификатор владельца ресурса.
// Право на мутацию даёт только точное совпадение обоих полей.
type Commentator struct {
	UserID    uuid.UUID `bson:"user_id" json:"userId"`
	UserLogin string    `bson:"user_login" json:"userLogin"`
}

// Matches — пополевое сравнение владельца и запрашивающего.
func (c Commentator) Matches(other Commentator) bool {
	return c.UserID == other.UserID && c.UserLogin == other.UserLogin
}

// IsZero — анонимный/пустой идентификатор.
func (c Commentator) IsZero() bool {
	return c.UserID == uuid.Nil && c.UserLogin == ""
}

// Reaction — отметка одного пользователя в likes или dislikes комментария.
type Reaction struct {
	UserID    uuid.UUID `bson:"user_id" json:"userId"`
	UserLogin string    `bson:"user_login" json:"userLogin"`
	AddedAt   time.Time `bson:"added_at" json:"addedAt"`
}

// Comment — внутренняя доменная модель комментария (MongoDB).
// Важно:
//   - ID — строковый UUID, назначается при создании.
//   - Likes/Dislikes — списки отметок; пользователь в корректном состоянии
//     присутствует не более чем в одном из них.
//   - LikesCount/DislikesCount — денормализованные счётчики; путь мутации
//     держит их равными длинам списков.
type Comment struct {
	ID            string     `bson:"_id"`
	Content       string     `bson:"content"`
	UserID        uuid.UUID  `bson:"user_id"`
	UserLogin     string     `bson:"user_login"`
	Likes         []Reaction `bson:"likes"`
	Dislikes      []Reaction `bson:"dislikes"`
	LikesCount    int32      `bson:"likes_count"`
	DislikesCount int32      `bson:"dislikes_count"`
	CreatedAt     time.Time  `bson:"created_at"`
}

// Owner — идентичность автора комментария.
func (c Comment) Owner() Commentator {
	return Commentator{UserID: c.UserID, UserLogin: c.UserLogin}
}

// ResolveLikeStatus выводит статус зрителя по спискам likes/dislikes.
//
// Контракт:
//   - анонимный зритель (uuid.Nil) всегда получает None;
//   - при нарушенном инварианте «пользователь в обоих списках» побеждает Like —
//     единая точка разрешения для одиночной и постраничной проекций.
//
// Чистая функция; ошибок нет — отсутствие совпадений даёт None.
func ResolveLikeStatus(likes, dislikes []Reaction, viewerID uuid.UUID) LikeStatus {
	if viewerID == uuid.Nil {
		return LikeStatusNone
	}

	status := LikeStatusNone
	for i := range dislikes {
		if dislikes[i].UserID == viewerID {
			status = LikeStatusDislike
			break
		}
	}

	// Likes просматриваются последними: их отметка перекрывает dislike.
	for i := range likes {
		if likes[i].UserID == viewerID {
			status = LikeStatusLike
			break
		}
	}

	return status
}
