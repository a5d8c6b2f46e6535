package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/harwoodm/newsdesk/internal/domain"
	"github.com/harwoodm/newsdesk/internal/store"
)

// UserStore implements store.UserStore against PostgreSQL.
type UserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewUserStore creates a UserStore. The connection is owned and managed by
// the caller. A nil logger falls back to slog.Default.
func NewUserStore(db store.DBTX, logger *slog.Logger) *UserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &UserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

var _ store.UserStore = (*UserStore)(nil)

// GetByUsername implements store.UserStore.GetByUsername.
func (s *UserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	query := `
		SELECT username, avatar_url, name
		FROM users
		WHERE username = $1
	`

	var u domain.User
	var avatarURL sql.NullString
	err := s.db.QueryRowContext(ctx, query, username).Scan(&u.Username, &avatarURL, &u.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		s.logger.Error("failed to get user",
			slog.String("username", username),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	u.AvatarURL = avatarURL.String

	return &u, nil
}

// List implements store.UserStore.List.
func (s *UserStore) List(ctx context.Context) ([]domain.User, error) {
	query := `
		SELECT username, avatar_url, name
		FROM users
		ORDER BY username
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		s.logger.Error("failed to list users", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	users := []domain.User{}
	for rows.Next() {
		var u domain.User
		var avatarURL sql.NullString
		if err := rows.Scan(&u.Username, &avatarURL, &u.Name); err != nil {
			return nil, MapError(err)
		}
		u.AvatarURL = avatarURL.String
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, MapError(err)
	}

	return users, nil
}

// Create implements store.UserStore.Create.
func (s *UserStore) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (username, avatar_url, name)
		VALUES ($1, $2, $3)
		RETURNING username, avatar_url, name
	`

	var created domain.User
	var avatarURL sql.NullString
	err := s.db.QueryRowContext(ctx, query,
		nullIfEmpty(user.Username),
		nullIfEmpty(user.AvatarURL),
		nullIfEmpty(user.Name),
	).Scan(&created.Username, &avatarURL, &created.Name)
	if err != nil {
		s.logger.Warn("failed to create user",
			slog.String("username", user.Username),
			slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	created.AvatarURL = avatarURL.String

	s.logger.Info("user created", slog.String("username", created.Username))
	return &created, nil
}
