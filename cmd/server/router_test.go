package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harwoodm/newsdesk/internal/config"
	"github.com/harwoodm/newsdesk/internal/domain"
	"github.com/harwoodm/newsdesk/internal/mocks"
)

func newTestApplication() *application {
	return &application{
		config: &config.Config{
			Server: config.ServerConfig{Port: 9090, LogLevel: "error"},
		},
		logger: slog.Default(),
	}
}

func newTestRouter() http.Handler {
	stores := routerStores{
		topics: &mocks.TopicStore{
			ListFn: func(ctx context.Context) ([]domain.Topic, error) {
				return []domain.Topic{{Slug: "mitch", Description: "The man"}}, nil
			},
		},
		users:    &mocks.UserStore{},
		articles: &mocks.ArticleStore{},
		comments: &mocks.CommentStore{},
	}
	return newRouter(stores, newTestApplication())
}

func performRequest(router http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestRouterUnknownPath(t *testing.T) {
	router := newTestRouter()

	for _, target := range []string{"/", "/api/bananas", "/not-api"} {
		rec := performRequest(router, http.MethodGet, target)
		assert.Equal(t, http.StatusNotFound, rec.Code, target)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "route not found", body["message"])
	}
}

func TestRouterMethodNotAllowed(t *testing.T) {
	router := newTestRouter()

	tests := []struct {
		method string
		target string
	}{
		{http.MethodDelete, "/api/topics"},
		{http.MethodPut, "/api/articles"},
		{http.MethodPatch, "/api/users"},
		{http.MethodPost, "/api/comments/1"},
	}

	for _, tt := range tests {
		rec := performRequest(router, tt.method, tt.target)
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code, "%s %s", tt.method, tt.target)

		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "method not allowed", body["message"])
	}
}

func TestRouterServesEndpointCatalog(t *testing.T) {
	router := newTestRouter()

	rec := performRequest(router, http.MethodGet, "/api")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var catalog map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &catalog))
	assert.Contains(t, catalog, "GET /api/topics")
	assert.Contains(t, catalog, "PATCH /api/comments/:comment_id")
}

func TestRouterDispatchesToHandlers(t *testing.T) {
	router := newTestRouter()

	rec := performRequest(router, http.MethodGet, "/api/topics")
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string][]domain.Topic
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body["topics"], 1)
	assert.Equal(t, "mitch", body["topics"][0].Slug)
}
