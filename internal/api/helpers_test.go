package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/harwoodm/newsdesk/internal/api/shared"
)

// performRequest runs one request through the given handler and returns
// the recorded response.
func performRequest(t *testing.T, handler http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

// decodeBody decodes the recorded JSON body into v.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

// responseMessage returns the message field of an error response body.
func responseMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body shared.MessageResponse
	decodeBody(t, rec, &body)
	return body.Message
}

// newArticleRouter mounts an ArticleHandler the way the server does, so
// path parameters resolve.
func newArticleRouter(h *ArticleHandler) http.Handler {
	r := chi.NewRouter()
	r.Route("/api/articles", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{article_id}", h.GetByID)
		r.Patch("/{article_id}", h.PatchVotes)
		r.Delete("/{article_id}", h.Delete)
	})
	return r
}

// newCommentRouter mounts a CommentHandler the way the server does.
func newCommentRouter(h *CommentHandler) http.Handler {
	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Get("/articles/{article_id}/comments", h.ListForArticle)
		r.Post("/articles/{article_id}/comments", h.CreateForArticle)
		r.Patch("/comments/{comment_id}", h.PatchVotes)
		r.Delete("/comments/{comment_id}", h.Delete)
	})
	return r
}
