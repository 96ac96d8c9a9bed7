package models

import (
	"time"

	"github.com/google/uuid"
)

// Внешние (JSON) представления сущностей. Чистые проекции без I/O;
// вызывающая сторона обязана убедиться, что сущность существует.

// LikesInfo — блок реакций комментария.
// Сырые списки likes/dislikes отдаются наружу — это наблюдаемый контракт API.
type LikesInfo struct {
	LikesCount    int32      `json:"likesCount"`
	DislikesCount int32      `json:"dislikesCount"`
	MyStatus      LikeStatus `json:"myStatus"`
	Likes         []Reaction `json:"likes"`
	Dislikes      []Reaction `json:"dislikes"`
}

// CommentView — внешнее представление комментария.
type CommentView struct {
	ID              string      `json:"id"`
	Content         string      `json:"content"`
	CommentatorInfo Commentator `json:"commentatorInfo"`
	CreatedAt       time.Time   `json:"createdAt"`
	LikesInfo       LikesInfo   `json:"likesInfo"`
}

// BlogView — внешнее представление блога.
type BlogView struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	WebsiteURL  string    `json:"websiteUrl"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PostView — внешнее представление поста.
type PostView struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	ShortDescription string    `json:"shortDescription"`
	Content          string    `json:"content"`
	BlogID           string    `json:"blogId"`
	BlogName         string    `json:"blogName"`
	CreatedAt        time.Time `json:"createdAt"`
}

// PageView — внешний конверт постраничной выдачи.
type PageView[T any] struct {
	PagesCount int32 `json:"pagesCount"`
	Page       int32 `json:"page"`
	PageSize   int32 `json:"pageSize"`
	TotalCount int64 `json:"totalCount"`
	Items      []T   `json:"items"`
}

// NewCommentView проецирует комментарий для конкретного зрителя.
// MyStatus выводится общим ResolveLikeStatus — тем же, что и в постраничной
// проекции, чтобы одиночный и списочный пути не расходились.
func NewCommentView(c Comment, viewerID uuid.UUID) CommentView {
	likes := c.Likes
	if likes == nil {
		likes = []Reaction{}
	}

	dislikes := c.Dislikes
	if dislikes == nil {
		dislikes = []Reaction{}
	}

	return CommentView{
		ID:              c.ID,
		Content:         c.Content,
		CommentatorInfo: c.Owner(),
		CreatedAt:       c.CreatedAt.UTC(),
		LikesInfo: LikesInfo{
			LikesCount:    c.LikesCount,
			DislikesCount: c.DislikesCount,
			MyStatus:      ResolveLikeStatus(c.Likes, c.Dislikes, viewerID),
			Likes:         likes,
			Dislikes:      dislikes,
		},
	}
}

// NewBlogView — прямая проекция блога.
func NewBlogView(b Blog) BlogView {
	return BlogView{
		ID:          b.ID,
		Name:        b.Name,
		Description: b.Description,
		WebsiteURL:  b.WebsiteURL,
		CreatedAt:   b.CreatedAt.UTC(),
	}
}

// NewPostView — прямая проекция поста.
func NewPostView(p Post) PostView {
	return PostView{
		ID:               p.ID,
		Title:            p.Title,
		ShortDescription: p.ShortDescription,
		Content:          p.Content,
		BlogID:           p.BlogID,
		BlogName:         p.BlogName,
		CreatedAt:        p.CreatedAt.UTC(),
	}
}

// NewPageView переливает внутренний конверт во внешний, не меняя
// page/pageSize/totalCount/pagesCount.
func NewPageView[T, V any](p Page[T], project func(T) V) PageView[V] {
	mapped := MapPage(p, project)

	return PageView[V]{
		PagesCount: mapped.PagesCount,
		Page:       mapped.PageNumber,
		PageSize:   mapped.PageSize,
		TotalCount: mapped.TotalCount,
		Items:      mapped.Items,
	}
}
