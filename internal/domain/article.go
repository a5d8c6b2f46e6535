package domain

import "time"

// Article is a published piece of writing, attributed to a user and filed
// under a topic. CommentCount is computed on read, never stored.
type Article struct {
	ArticleID    int       `json:"article_id"`
	Title        string    `json:"title"`
	Body         string    `json:"body"`
	Votes        int       `json:"votes"`
	Topic        string    `json:"topic"`
	Author       string    `json:"author"`
	CreatedAt    time.Time `json:"created_at"`
	CommentCount int       `json:"comment_count"`
}
