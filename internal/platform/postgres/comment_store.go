package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/harwoodm/newsdesk/internal/domain"
	"github.com/harwoodm/newsdesk/internal/store"
)

// commentSortColumns maps caller-facing sort keys onto comment columns,
// checked the same way as articleSortColumns.
var commentSortColumns = map[string]string{
	"comment_id": "comment_id",
	"author":     "author",
	"votes":      "votes",
	"created_at": "created_at",
	"body":       "body",
}

// CommentStore implements store.CommentStore against PostgreSQL.
type CommentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewCommentStore creates a CommentStore. The connection is owned and
// managed by the caller. A nil logger falls back to slog.Default.
func NewCommentStore(db store.DBTX, logger *slog.Logger) *CommentStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &CommentStore{
		db:     db,
		logger: logger.With(slog.String("component", "comment_store")),
	}
}

var _ store.CommentStore = (*CommentStore)(nil)

// Create implements store.CommentStore.Create. Votes and the creation time
// take their column defaults.
func (s *CommentStore) Create(ctx context.Context, articleID int, comment *domain.Comment) (*domain.Comment, error) {
	query := `
		INSERT INTO comments (article_id, author, body)
		VALUES ($1, $2, $3)
		RETURNING comment_id, author, article_id, votes, created_at, body
	`

	var created domain.Comment
	err := s.db.QueryRowContext(ctx, query,
		articleID,
		nullIfEmpty(comment.Author),
		nullIfEmpty(comment.Body),
	).Scan(
		&created.CommentID,
		&created.Author,
		&created.ArticleID,
		&created.Votes,
		&created.CreatedAt,
		&created.Body,
	)
	if err != nil {
		s.logger.Warn("failed to create comment",
			slog.Int("article_id", articleID),
			slog.String("author", comment.Author),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	s.logger.Info("comment created",
		slog.Int("comment_id", created.CommentID),
		slog.Int("article_id", articleID))
	return &created, nil
}

// ListForArticle implements store.CommentStore.ListForArticle. An empty
// page triggers an existence check on the parent article so a missing
// article is distinguishable from one that merely has no comments. The
// check is not transactional with the page query; a concurrent delete can
// slip between the two reads, which is acceptable for a read-only probe.
func (s *CommentStore) ListForArticle(ctx context.Context, articleID int, params store.ListParams) ([]domain.Comment, int, error) {
	params.Normalize()

	sortColumn, ok := commentSortColumns[params.SortBy]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %s", store.ErrUndefinedColumn, params.SortBy)
	}
	direction := "DESC"
	if params.Order == store.OrderAsc {
		direction = "ASC"
	}

	var total int
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM comments WHERE article_id = $1`, articleID,
	).Scan(&total); err != nil {
		s.logger.Error("failed to count comments",
			slog.Int("article_id", articleID),
			slog.String("error", err.Error()))
		return nil, 0, MapError(err)
	}

	pageQuery := fmt.Sprintf(`
		SELECT comment_id, author, article_id, votes, created_at, body
		FROM comments
		WHERE article_id = $1
		ORDER BY %s %s, comment_id ASC
		LIMIT $2 OFFSET $3
	`, sortColumn, direction)

	rows, err := s.db.QueryContext(ctx, pageQuery, articleID, params.Limit, params.Offset())
	if err != nil {
		s.logger.Error("failed to list comments",
			slog.Int("article_id", articleID),
			slog.String("error", err.Error()))
		return nil, 0, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	comments := []domain.Comment{}
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(
			&c.CommentID,
			&c.Author,
			&c.ArticleID,
			&c.Votes,
			&c.CreatedAt,
			&c.Body,
		); err != nil {
			return nil, 0, MapError(err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, MapError(err)
	}

	if len(comments) == 0 {
		var exists bool
		if err := s.db.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM articles WHERE article_id = $1)`, articleID,
		).Scan(&exists); err != nil {
			return nil, 0, MapError(err)
		}
		if !exists {
			return nil, 0, store.ErrArticleNotFound
		}
	}

	return comments, total, nil
}

// IncrementVotes implements store.CommentStore.IncrementVotes.
func (s *CommentStore) IncrementVotes(ctx context.Context, id int, by int) (*domain.Comment, error) {
	query := `
		UPDATE comments
		SET votes = votes + $1
		WHERE comment_id = $2
		RETURNING comment_id, author, article_id, votes, created_at, body
	`

	var c domain.Comment
	err := s.db.QueryRowContext(ctx, query, by, id).Scan(
		&c.CommentID,
		&c.Author,
		&c.ArticleID,
		&c.Votes,
		&c.CreatedAt,
		&c.Body,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrCommentNotFound
		}
		s.logger.Error("failed to increment comment votes",
			slog.Int("comment_id", id),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	s.logger.Debug("comment votes updated",
		slog.Int("comment_id", id),
		slog.Int("votes", c.Votes))
	return &c, nil
}

// Delete implements store.CommentStore.Delete.
func (s *CommentStore) Delete(ctx context.Context, id int) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM comments WHERE comment_id = $1`, id)
	if err != nil {
		s.logger.Error("failed to delete comment",
			slog.Int("comment_id", id),
			slog.String("error", err.Error()))
		return MapError(err)
	}
	if err := checkRowsAffected(result, store.ErrCommentNotFound); err != nil {
		return err
	}

	s.logger.Info("comment deleted", slog.Int("comment_id", id))
	return nil
}
