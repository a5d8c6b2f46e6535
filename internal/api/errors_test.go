package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harwoodm/newsdesk/internal/domain"
	"github.com/harwoodm/newsdesk/internal/store"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{"missing_inc_votes", ErrMissingIncVotes, http.StatusBadRequest, "invalid request"},
		{"invalid_body", ErrInvalidBody, http.StatusBadRequest, "invalid request"},
		{"invalid_order", ErrInvalidOrder, http.StatusBadRequest, "invalid query"},
		{"invalid_limit", ErrInvalidLimit, http.StatusBadRequest, "invalid limit"},
		{"invalid_page", ErrInvalidPage, http.StatusBadRequest, "invalid page"},
		{"invalid_avatar_url", domain.ErrInvalidAvatarURL, http.StatusBadRequest, "INVALID AVATAR URL"},
		{"user_not_found", store.ErrUserNotFound, http.StatusNotFound, "user not found"},
		{"article_not_found", store.ErrArticleNotFound, http.StatusNotFound, "article not found"},
		{"comment_not_found", store.ErrCommentNotFound, http.StatusNotFound, "comment not found"},
		{"generic_not_found", store.ErrNotFound, http.StatusNotFound, "not found"},
		{"foreign_key", store.ErrForeignKey, http.StatusNotFound, "FOREIGN KEY VIOLATION"},
		{"not_null", store.ErrNotNull, http.StatusBadRequest, "NOT NULL VIOLATION"},
		{"duplicate", store.ErrDuplicate, http.StatusBadRequest, "NOT UNIQUE"},
		{"undefined_column", store.ErrUndefinedColumn, http.StatusBadRequest, "UNDEFINED COLUMN"},
		{"invalid_input", store.ErrInvalidInput, http.StatusBadRequest, "INVALID TEXT REPRESENTATION"},
		{"unknown_error", errors.New("connection reset by peer"), http.StatusInternalServerError, "internal server error"},
		{"nil_like_unknown", fmt.Errorf("wrapped: %w", errors.New("boom")), http.StatusInternalServerError, "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := ClassifyError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, message)
		})
	}

	t.Run("wrapped_store_errors_still_classify", func(t *testing.T) {
		err := fmt.Errorf("%w (articles_author_fkey): insert failed", store.ErrForeignKey)
		status, message := ClassifyError(err)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "FOREIGN KEY VIOLATION", message)
	})

	t.Run("internal_details_never_leak", func(t *testing.T) {
		err := errors.New("pq: password authentication failed for user postgres")
		_, message := ClassifyError(err)
		assert.NotContains(t, message, "postgres")
		assert.NotContains(t, message, "password")
	})
}
