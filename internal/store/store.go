package store

import (
	"context"

	"github.com/harwoodm/newsdesk/internal/domain"
)

// TopicStore defines the data-access contract for topics.
type TopicStore interface {
	// List returns every topic.
	List(ctx context.Context) ([]domain.Topic, error)

	// Create inserts a topic and returns the stored row.
	// Returns ErrNotNull when slug or description is missing and
	// ErrDuplicate when the slug is already taken.
	Create(ctx context.Context, topic *domain.Topic) (*domain.Topic, error)
}

// UserStore defines the data-access contract for users.
type UserStore interface {
	// GetByUsername returns the user with the given username.
	// Returns ErrUserNotFound when no such user exists.
	GetByUsername(ctx context.Context, username string) (*domain.User, error)

	// List returns every user.
	List(ctx context.Context) ([]domain.User, error)

	// Create inserts a user and returns the stored row. The caller is
	// expected to have normalized the avatar URL first.
	// Returns ErrNotNull for missing required fields and ErrDuplicate
	// when the username is already taken.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// ArticleStore defines the data-access contract for articles.
type ArticleStore interface {
	// GetByID returns the article with the given id, including its
	// comment count. Returns ErrArticleNotFound when no such article
	// exists.
	GetByID(ctx context.Context, id int) (*domain.Article, error)

	// List returns one page of articles matching params, plus the total
	// number of matching rows ignoring pagination. A filter that matches
	// nothing yields an empty page and a zero total, not an error.
	List(ctx context.Context, params ListParams) ([]domain.Article, int, error)

	// IncrementVotes applies a relative vote change and returns the
	// updated row. Returns ErrArticleNotFound when no such article
	// exists.
	IncrementVotes(ctx context.Context, id int, by int) (*domain.Article, error)

	// Create inserts an article and returns the stored row. Votes and
	// the creation time always take their storage defaults. Returns
	// ErrNotNull for missing required fields and ErrForeignKey when the
	// author or topic does not exist.
	Create(ctx context.Context, article *domain.Article) (*domain.Article, error)

	// Delete removes an article and its comments. Returns
	// ErrArticleNotFound when no such article exists.
	Delete(ctx context.Context, id int) error
}

// CommentStore defines the data-access contract for comments.
type CommentStore interface {
	// Create inserts a comment on the given article and returns the
	// stored row. Returns ErrNotNull for missing required fields and
	// ErrForeignKey when the article or author does not exist.
	Create(ctx context.Context, articleID int, comment *domain.Comment) (*domain.Comment, error)

	// ListForArticle returns one page of an article's comments plus the
	// total comment count for that article. Returns ErrArticleNotFound
	// when the page is empty and the article itself does not exist; an
	// existing article with no comments yields an empty page.
	ListForArticle(ctx context.Context, articleID int, params ListParams) ([]domain.Comment, int, error)

	// IncrementVotes applies a relative vote change and returns the
	// updated row. Returns ErrCommentNotFound when no such comment
	// exists.
	IncrementVotes(ctx context.Context, id int, by int) (*domain.Comment, error)

	// Delete removes a comment. Returns ErrCommentNotFound when no such
	// comment exists.
	Delete(ctx context.Context, id int) error
}
