package api

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harwoodm/newsdesk/internal/domain"
	"github.com/harwoodm/newsdesk/internal/mocks"
	"github.com/harwoodm/newsdesk/internal/store"
)

func TestCommentCreateForArticle(t *testing.T) {
	t.Run("creates_and_returns_comment", func(t *testing.T) {
		comments := &mocks.CommentStore{
			CreateFn: func(ctx context.Context, articleID int, comment *domain.Comment) (*domain.Comment, error) {
				assert.Equal(t, 1, articleID)
				assert.Equal(t, "butter_bridge", comment.Author)
				return &domain.Comment{
					CommentID: 19,
					Author:    comment.Author,
					ArticleID: articleID,
					Votes:     0,
					CreatedAt: time.Now(),
					Body:      comment.Body,
				}, nil
			},
		}
		router := newCommentRouter(NewCommentHandler(comments, nil))

		rec := performRequest(t, router, http.MethodPost, "/api/articles/1/comments",
			`{"username": "butter_bridge", "body": "This morning, I showered for nine minutes."}`)
		require.Equal(t, http.StatusCreated, rec.Code)

		var body commentResponse
		decodeBody(t, rec, &body)
		assert.Equal(t, 19, body.Comment.CommentID)
		assert.Zero(t, body.Comment.Votes)
	})

	t.Run("unknown_username_is_404", func(t *testing.T) {
		comments := &mocks.CommentStore{
			CreateFn: func(ctx context.Context, articleID int, comment *domain.Comment) (*domain.Comment, error) {
				return nil, store.ErrForeignKey
			},
		}
		router := newCommentRouter(NewCommentHandler(comments, nil))

		rec := performRequest(t, router, http.MethodPost, "/api/articles/1/comments",
			`{"username": "nobody", "body": "hello"}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "FOREIGN KEY VIOLATION", responseMessage(t, rec))
	})

	t.Run("missing_body_is_400", func(t *testing.T) {
		comments := &mocks.CommentStore{
			CreateFn: func(ctx context.Context, articleID int, comment *domain.Comment) (*domain.Comment, error) {
				return nil, store.ErrNotNull
			},
		}
		router := newCommentRouter(NewCommentHandler(comments, nil))

		rec := performRequest(t, router, http.MethodPost, "/api/articles/1/comments",
			`{"username": "butter_bridge"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "NOT NULL VIOLATION", responseMessage(t, rec))
	})
}

func TestCommentListForArticle(t *testing.T) {
	t.Run("returns_page_and_total", func(t *testing.T) {
		comments := &mocks.CommentStore{
			ListForArticleFn: func(ctx context.Context, articleID int, params store.ListParams) ([]domain.Comment, int, error) {
				assert.Equal(t, 1, articleID)
				return []domain.Comment{
					{CommentID: 2, Author: "butter_bridge", ArticleID: 1, Votes: 14, Body: "The beautiful thing about treasure is that it exists."},
				}, 13, nil
			},
		}
		router := newCommentRouter(NewCommentHandler(comments, nil))

		rec := performRequest(t, router, http.MethodGet, "/api/articles/1/comments", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var body commentsResponse
		decodeBody(t, rec, &body)
		assert.Len(t, body.Comments, 1)
		assert.Equal(t, 13, body.TotalCount)
	})

	t.Run("article_without_comments_is_empty_200", func(t *testing.T) {
		comments := &mocks.CommentStore{
			ListForArticleFn: func(ctx context.Context, articleID int, params store.ListParams) ([]domain.Comment, int, error) {
				return []domain.Comment{}, 0, nil
			},
		}
		router := newCommentRouter(NewCommentHandler(comments, nil))

		rec := performRequest(t, router, http.MethodGet, "/api/articles/2/comments", "")
		require.Equal(t, http.StatusOK, rec.Code)

		var body commentsResponse
		decodeBody(t, rec, &body)
		assert.NotNil(t, body.Comments)
		assert.Empty(t, body.Comments)
	})

	t.Run("missing_article_is_404", func(t *testing.T) {
		comments := &mocks.CommentStore{
			ListForArticleFn: func(ctx context.Context, articleID int, params store.ListParams) ([]domain.Comment, int, error) {
				return nil, 0, store.ErrArticleNotFound
			},
		}
		router := newCommentRouter(NewCommentHandler(comments, nil))

		rec := performRequest(t, router, http.MethodGet, "/api/articles/9999/comments", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "article not found", responseMessage(t, rec))
	})

	t.Run("invalid_order_is_400", func(t *testing.T) {
		router := newCommentRouter(NewCommentHandler(&mocks.CommentStore{}, nil))

		rec := performRequest(t, router, http.MethodGet, "/api/articles/1/comments?order=upwards", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid query", responseMessage(t, rec))
	})
}

func TestCommentPatchVotes(t *testing.T) {
	t.Run("applies_relative_increment", func(t *testing.T) {
		comments := &mocks.CommentStore{
			IncrementVotesFn: func(ctx context.Context, id int, by int) (*domain.Comment, error) {
				assert.Equal(t, 1, id)
				assert.Equal(t, -1, by)
				return &domain.Comment{CommentID: 1, Votes: 15}, nil
			},
		}
		router := newCommentRouter(NewCommentHandler(comments, nil))

		rec := performRequest(t, router, http.MethodPatch, "/api/comments/1", `{"inc_votes": -1}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var body commentResponse
		decodeBody(t, rec, &body)
		assert.Equal(t, 15, body.Comment.Votes)
	})

	t.Run("absent_inc_votes_is_400", func(t *testing.T) {
		router := newCommentRouter(NewCommentHandler(&mocks.CommentStore{}, nil))

		rec := performRequest(t, router, http.MethodPatch, "/api/comments/1", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "invalid request", responseMessage(t, rec))
	})

	t.Run("missing_comment_is_404", func(t *testing.T) {
		comments := &mocks.CommentStore{
			IncrementVotesFn: func(ctx context.Context, id int, by int) (*domain.Comment, error) {
				return nil, store.ErrCommentNotFound
			},
		}
		router := newCommentRouter(NewCommentHandler(comments, nil))

		rec := performRequest(t, router, http.MethodPatch, "/api/comments/9999", `{"inc_votes": 1}`)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "comment not found", responseMessage(t, rec))
	})
}

func TestCommentDelete(t *testing.T) {
	t.Run("deletes_with_no_content", func(t *testing.T) {
		comments := &mocks.CommentStore{
			DeleteFn: func(ctx context.Context, id int) error {
				assert.Equal(t, 1, id)
				return nil
			},
		}
		router := newCommentRouter(NewCommentHandler(comments, nil))

		rec := performRequest(t, router, http.MethodDelete, "/api/comments/1", "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("missing_comment_is_404", func(t *testing.T) {
		comments := &mocks.CommentStore{
			DeleteFn: func(ctx context.Context, id int) error {
				return store.ErrCommentNotFound
			},
		}
		router := newCommentRouter(NewCommentHandler(comments, nil))

		rec := performRequest(t, router, http.MethodDelete, "/api/comments/9999", "")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non_numeric_id_is_400", func(t *testing.T) {
		router := newCommentRouter(NewCommentHandler(&mocks.CommentStore{}, nil))

		rec := performRequest(t, router, http.MethodDelete, "/api/comments/not-a-comment", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID TEXT REPRESENTATION", responseMessage(t, rec))
	})
}
