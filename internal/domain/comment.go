package domain

import "time"

// Comment is a user's response to an article.
type Comment struct {
	CommentID int       `json:"comment_id"`
	Author    string    `json:"author"`
	ArticleID int       `json:"article_id"`
	Votes     int       `json:"votes"`
	CreatedAt time.Time `json:"created_at"`
	Body      string    `json:"body"`
}
