package api

import (
	"time"

	"github.com/harwoodm/newsdesk/internal/domain"
)

// Request bodies.

type createTopicRequest struct {
	Slug        string `json:"slug"`
	Description string `json:"description"`
}

type createUserRequest struct {
	Username  string `json:"username"`
	AvatarURL string `json:"avatar_url"`
	Name      string `json:"name"`
}

type createArticleRequest struct {
	Title  string `json:"title"`
	Body   string `json:"body"`
	Topic  string `json:"topic"`
	Author string `json:"author"`
}

type createCommentRequest struct {
	Username string `json:"username"`
	Body     string `json:"body"`
}

// updateVotesRequest carries a relative vote change. IncVotes is a pointer
// so that an absent field is distinguishable from an explicit zero, though
// both are rejected.
type updateVotesRequest struct {
	IncVotes *int `json:"inc_votes"`
}

// Response envelopes. Every success body wraps its payload in a named key.

type topicsResponse struct {
	Topics []domain.Topic `json:"topics"`
}

type topicResponse struct {
	Topic *domain.Topic `json:"topic"`
}

type usersResponse struct {
	Users []domain.User `json:"users"`
}

type userResponse struct {
	User *domain.User `json:"user"`
}

// articleListItem is one row of a paged article listing. Listings omit the
// article body.
type articleListItem struct {
	Author       string    `json:"author"`
	Title        string    `json:"title"`
	ArticleID    int       `json:"article_id"`
	Topic        string    `json:"topic"`
	CreatedAt    time.Time `json:"created_at"`
	Votes        int       `json:"votes"`
	CommentCount int       `json:"comment_count"`
}

type articlesResponse struct {
	Articles   []articleListItem `json:"articles"`
	TotalCount int               `json:"total_count"`
}

type articleResponse struct {
	Article *domain.Article `json:"article"`
}

type commentsResponse struct {
	Comments   []domain.Comment `json:"comments"`
	TotalCount int              `json:"total_count"`
}

type commentResponse struct {
	Comment *domain.Comment `json:"comment"`
}

func toArticleListItems(articles []domain.Article) []articleListItem {
	items := make([]articleListItem, 0, len(articles))
	for _, a := range articles {
		items = append(items, articleListItem{
			Author:       a.Author,
			Title:        a.Title,
			ArticleID:    a.ArticleID,
			Topic:        a.Topic,
			CreatedAt:    a.CreatedAt,
			Votes:        a.Votes,
			CommentCount: a.CommentCount,
		})
	}
	return items
}
