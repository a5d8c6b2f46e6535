package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harwoodm/newsdesk/internal/domain"
	"github.com/harwoodm/newsdesk/internal/store"
)

// unreachableDBTX satisfies store.DBTX for tests of code paths that must
// return before touching the database.
type unreachableDBTX struct{}

func (unreachableDBTX) ExecContext(context.Context, string, ...any) (sql.Result, error) {
	panic("unexpected ExecContext")
}

func (unreachableDBTX) PrepareContext(context.Context, string) (*sql.Stmt, error) {
	panic("unexpected PrepareContext")
}

func (unreachableDBTX) QueryContext(context.Context, string, ...any) (*sql.Rows, error) {
	panic("unexpected QueryContext")
}

func (unreachableDBTX) QueryRowContext(context.Context, string, ...any) *sql.Row {
	panic("unexpected QueryRowContext")
}

func TestArticleStoreCreateRejectsMissingTopic(t *testing.T) {
	// The topic column is nullable, so the store enforces the insert
	// contract itself; the check must fire before any statement runs.
	articles := NewArticleStore(unreachableDBTX{}, nil)

	_, err := articles.Create(context.Background(), &domain.Article{
		Title:  "Topicless",
		Body:   "filed nowhere",
		Author: "lurker",
	})
	assert.ErrorIs(t, err, store.ErrNotNull)
}
