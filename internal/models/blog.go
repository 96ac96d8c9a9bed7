package models

import "time"

// Blog — доменная модель блога.
type Blog struct {
	ID          string    `bson:"_id"`
	Name        string    `bson:"name"`
	Description string    `bson:"description"`
	WebsiteURL  string    `bson:"website_url"`
	CreatedAt   time.Time `bson:"created_at"`
}

// Post — доменная модель поста.
// BlogName — денормализованное имя родительского блога; проставляется
// при создании/переносе поста, чтобы списки не ходили за ним отдельно.
type Post struct {
	ID               string    `bson:"_id"`
	Title            string    `bson:"title"`
	ShortDescription string    `bson:"short_description"`
	Content          string    `bson:"content"`
	BlogID           string    `bson:"blog_id"`
	BlogName         string    `bson:"blog_name"`
	CreatedAt        time.Time `bson:"created_at"`
}
