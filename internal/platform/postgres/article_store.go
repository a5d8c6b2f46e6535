package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/harwoodm/newsdesk/internal/domain"
	"github.com/harwoodm/newsdesk/internal/store"
)

// articleSortColumns maps caller-facing sort keys onto ORDER BY
// expressions. Sort keys arrive from the query string, so they are checked
// against this table instead of being interpolated; an unknown key gets
// the same classification the engine would give an undefined column.
var articleSortColumns = map[string]string{
	"article_id":    "articles.article_id",
	"title":         "articles.title",
	"body":          "articles.body",
	"votes":         "articles.votes",
	"topic":         "articles.topic",
	"author":        "articles.author",
	"created_at":    "articles.created_at",
	"comment_count": "comment_count",
}

// ArticleStore implements store.ArticleStore against PostgreSQL.
type ArticleStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewArticleStore creates an ArticleStore. The connection is owned and
// managed by the caller. A nil logger falls back to slog.Default.
func NewArticleStore(db store.DBTX, logger *slog.Logger) *ArticleStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ArticleStore{
		db:     db,
		logger: logger.With(slog.String("component", "article_store")),
	}
}

var _ store.ArticleStore = (*ArticleStore)(nil)

// GetByID implements store.ArticleStore.GetByID. The comment count comes
// from a left-join aggregate so that articles without comments report zero.
func (s *ArticleStore) GetByID(ctx context.Context, id int) (*domain.Article, error) {
	query := `
		SELECT articles.article_id, articles.title, articles.body,
		       articles.votes, articles.topic, articles.author,
		       articles.created_at,
		       COUNT(comments.comment_id) AS comment_count
		FROM articles
		LEFT JOIN comments ON comments.article_id = articles.article_id
		WHERE articles.article_id = $1
		GROUP BY articles.article_id
	`

	var a domain.Article
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&a.ArticleID,
		&a.Title,
		&a.Body,
		&a.Votes,
		&a.Topic,
		&a.Author,
		&a.CreatedAt,
		&a.CommentCount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrArticleNotFound
		}
		s.logger.Error("failed to get article",
			slog.Int("article_id", id),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	return &a, nil
}

// List implements store.ArticleStore.List. It runs a count query for the
// unpaginated total, then fetches one page joined with the comment-count
// aggregate. List rows do not carry the article body.
func (s *ArticleStore) List(ctx context.Context, params store.ListParams) ([]domain.Article, int, error) {
	params.Normalize()

	sortColumn, ok := articleSortColumns[params.SortBy]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %s", store.ErrUndefinedColumn, params.SortBy)
	}
	direction := "DESC"
	if params.Order == store.OrderAsc {
		direction = "ASC"
	}

	var where []string
	var args []any
	if params.Author != "" {
		args = append(args, params.Author)
		where = append(where, fmt.Sprintf("articles.author = $%d", len(args)))
	}
	if params.Topic != "" {
		args = append(args, params.Topic)
		where = append(where, fmt.Sprintf("articles.topic = $%d", len(args)))
	}
	whereClause := ""
	if len(where) > 0 {
		whereClause = "WHERE " + strings.Join(where, " AND ")
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM articles %s`, whereClause)

	var total int
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		s.logger.Error("failed to count articles", slog.String("error", err.Error()))
		return nil, 0, MapError(err)
	}

	// Ties break by article_id so pages are stable across requests.
	pageQuery := fmt.Sprintf(`
		SELECT articles.article_id, articles.title, articles.votes,
		       articles.topic, articles.author, articles.created_at,
		       COUNT(comments.comment_id) AS comment_count
		FROM articles
		LEFT JOIN comments ON comments.article_id = articles.article_id
		%s
		GROUP BY articles.article_id
		ORDER BY %s %s, articles.article_id ASC
		LIMIT $%d OFFSET $%d
	`, whereClause, sortColumn, direction, len(args)+1, len(args)+2)
	args = append(args, params.Limit, params.Offset())

	rows, err := s.db.QueryContext(ctx, pageQuery, args...)
	if err != nil {
		s.logger.Error("failed to list articles", slog.String("error", err.Error()))
		return nil, 0, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	articles := []domain.Article{}
	for rows.Next() {
		var a domain.Article
		if err := rows.Scan(
			&a.ArticleID,
			&a.Title,
			&a.Votes,
			&a.Topic,
			&a.Author,
			&a.CreatedAt,
			&a.CommentCount,
		); err != nil {
			return nil, 0, MapError(err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, MapError(err)
	}

	return articles, total, nil
}

// IncrementVotes implements store.ArticleStore.IncrementVotes.
func (s *ArticleStore) IncrementVotes(ctx context.Context, id int, by int) (*domain.Article, error) {
	query := `
		UPDATE articles
		SET votes = votes + $1
		WHERE article_id = $2
		RETURNING article_id, title, body, votes, topic, author, created_at
	`

	var a domain.Article
	err := s.db.QueryRowContext(ctx, query, by, id).Scan(
		&a.ArticleID,
		&a.Title,
		&a.Body,
		&a.Votes,
		&a.Topic,
		&a.Author,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrArticleNotFound
		}
		s.logger.Error("failed to increment article votes",
			slog.Int("article_id", id),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	s.logger.Debug("article votes updated",
		slog.Int("article_id", id),
		slog.Int("votes", a.Votes))
	return &a, nil
}

// Create implements store.ArticleStore.Create. Votes and the creation time
// are never taken from the caller; the column defaults apply. The topic
// column is nullable, so a missing topic is rejected here rather than by
// the engine.
func (s *ArticleStore) Create(ctx context.Context, article *domain.Article) (*domain.Article, error) {
	if article.Topic == "" {
		return nil, fmt.Errorf("%w (topic)", store.ErrNotNull)
	}

	query := `
		INSERT INTO articles (title, body, topic, author)
		VALUES ($1, $2, $3, $4)
		RETURNING article_id, title, body, votes, topic, author, created_at
	`

	var created domain.Article
	err := s.db.QueryRowContext(ctx, query,
		nullIfEmpty(article.Title),
		nullIfEmpty(article.Body),
		nullIfEmpty(article.Topic),
		nullIfEmpty(article.Author),
	).Scan(
		&created.ArticleID,
		&created.Title,
		&created.Body,
		&created.Votes,
		&created.Topic,
		&created.Author,
		&created.CreatedAt,
	)
	if err != nil {
		s.logger.Warn("failed to create article",
			slog.String("author", article.Author),
			slog.String("topic", article.Topic),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	s.logger.Info("article created", slog.Int("article_id", created.ArticleID))
	return &created, nil
}

// Delete implements store.ArticleStore.Delete. The schema has no ON DELETE
// CASCADE, so dependent comments are removed first.
func (s *ArticleStore) Delete(ctx context.Context, id int) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM comments WHERE article_id = $1`, id); err != nil {
		s.logger.Error("failed to delete article comments",
			slog.Int("article_id", id),
			slog.String("error", err.Error()))
		return MapError(err)
	}

	result, err := s.db.ExecContext(ctx,
		`DELETE FROM articles WHERE article_id = $1`, id)
	if err != nil {
		s.logger.Error("failed to delete article",
			slog.Int("article_id", id),
			slog.String("error", err.Error()))
		return MapError(err)
	}
	if err := checkRowsAffected(result, store.ErrArticleNotFound); err != nil {
		return err
	}

	s.logger.Info("article deleted", slog.Int("article_id", id))
	return nil
}
