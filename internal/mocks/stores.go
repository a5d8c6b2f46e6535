// Package mocks provides hand-written store stubs for handler tests.
// Each mock delegates to its function fields; a nil field means the call
// was not expected by the test.
package mocks

import (
	"context"

	"github.com/harwoodm/newsdesk/internal/domain"
	"github.com/harwoodm/newsdesk/internal/store"
)

// TopicStore implements store.TopicStore for testing.
type TopicStore struct {
	ListFn   func(ctx context.Context) ([]domain.Topic, error)
	CreateFn func(ctx context.Context, topic *domain.Topic) (*domain.Topic, error)
}

var _ store.TopicStore = (*TopicStore)(nil)

func (m *TopicStore) List(ctx context.Context) ([]domain.Topic, error) {
	return m.ListFn(ctx)
}

func (m *TopicStore) Create(ctx context.Context, topic *domain.Topic) (*domain.Topic, error) {
	return m.CreateFn(ctx, topic)
}

// UserStore implements store.UserStore for testing.
type UserStore struct {
	GetByUsernameFn func(ctx context.Context, username string) (*domain.User, error)
	ListFn          func(ctx context.Context) ([]domain.User, error)
	CreateFn        func(ctx context.Context, user *domain.User) (*domain.User, error)
}

var _ store.UserStore = (*UserStore)(nil)

func (m *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return m.GetByUsernameFn(ctx, username)
}

func (m *UserStore) List(ctx context.Context) ([]domain.User, error) {
	return m.ListFn(ctx)
}

func (m *UserStore) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return m.CreateFn(ctx, user)
}

// ArticleStore implements store.ArticleStore for testing.
type ArticleStore struct {
	GetByIDFn        func(ctx context.Context, id int) (*domain.Article, error)
	ListFn           func(ctx context.Context, params store.ListParams) ([]domain.Article, int, error)
	IncrementVotesFn func(ctx context.Context, id int, by int) (*domain.Article, error)
	CreateFn         func(ctx context.Context, article *domain.Article) (*domain.Article, error)
	DeleteFn         func(ctx context.Context, id int) error
}

var _ store.ArticleStore = (*ArticleStore)(nil)

func (m *ArticleStore) GetByID(ctx context.Context, id int) (*domain.Article, error) {
	return m.GetByIDFn(ctx, id)
}

func (m *ArticleStore) List(ctx context.Context, params store.ListParams) ([]domain.Article, int, error) {
	return m.ListFn(ctx, params)
}

func (m *ArticleStore) IncrementVotes(ctx context.Context, id int, by int) (*domain.Article, error) {
	return m.IncrementVotesFn(ctx, id, by)
}

func (m *ArticleStore) Create(ctx context.Context, article *domain.Article) (*domain.Article, error) {
	return m.CreateFn(ctx, article)
}

func (m *ArticleStore) Delete(ctx context.Context, id int) error {
	return m.DeleteFn(ctx, id)
}

// CommentStore implements store.CommentStore for testing.
type CommentStore struct {
	CreateFn         func(ctx context.Context, articleID int, comment *domain.Comment) (*domain.Comment, error)
	ListForArticleFn func(ctx context.Context, articleID int, params store.ListParams) ([]domain.Comment, int, error)
	IncrementVotesFn func(ctx context.Context, id int, by int) (*domain.Comment, error)
	DeleteFn         func(ctx context.Context, id int) error
}

var _ store.CommentStore = (*CommentStore)(nil)

func (m *CommentStore) Create(ctx context.Context, articleID int, comment *domain.Comment) (*domain.Comment, error) {
	return m.CreateFn(ctx, articleID, comment)
}

func (m *CommentStore) ListForArticle(ctx context.Context, articleID int, params store.ListParams) ([]domain.Comment, int, error) {
	return m.ListForArticleFn(ctx, articleID, params)
}

func (m *CommentStore) IncrementVotes(ctx context.Context, id int, by int) (*domain.Comment, error) {
	return m.IncrementVotesFn(ctx, id, by)
}

func (m *CommentStore) Delete(ctx context.Context, id int) error {
	return m.DeleteFn(ctx, id)
}
