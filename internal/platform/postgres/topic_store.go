package postgres

import (
	"context"
	"log/slog"

	"github.com/harwoodm/newsdesk/internal/domain"
	"github.com/harwoodm/newsdesk/internal/store"
)

// TopicStore implements store.TopicStore against PostgreSQL.
type TopicStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewTopicStore creates a TopicStore. The connection is owned and managed
// by the caller. A nil logger falls back to slog.Default.
func NewTopicStore(db store.DBTX, logger *slog.Logger) *TopicStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &TopicStore{
		db:     db,
		logger: logger.With(slog.String("component", "topic_store")),
	}
}

var _ store.TopicStore = (*TopicStore)(nil)

// List implements store.TopicStore.List.
func (s *TopicStore) List(ctx context.Context) ([]domain.Topic, error) {
	query := `
		SELECT slug, description
		FROM topics
		ORDER BY slug
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		s.logger.Error("failed to list topics", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	topics := []domain.Topic{}
	for rows.Next() {
		var t domain.Topic
		if err := rows.Scan(&t.Slug, &t.Description); err != nil {
			return nil, MapError(err)
		}
		topics = append(topics, t)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return topics, nil
}

// Create implements store.TopicStore.Create.
func (s *TopicStore) Create(ctx context.Context, topic *domain.Topic) (*domain.Topic, error) {
	query := `
		INSERT INTO topics (slug, description)
		VALUES ($1, $2)
		RETURNING slug, description
	`

	var created domain.Topic
	err := s.db.QueryRowContext(ctx, query,
		nullIfEmpty(topic.Slug),
		nullIfEmpty(topic.Description),
	).Scan(&created.Slug, &created.Description)
	if err != nil {
		s.logger.Warn("failed to create topic",
			slog.String("slug", topic.Slug),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}

	s.logger.Info("topic created", slog.String("slug", created.Slug))
	return &created, nil
}
