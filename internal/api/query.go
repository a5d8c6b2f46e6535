package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/harwoodm/newsdesk/internal/store"
)

// parseListParams reads the list query parameters (sort_by, order, author,
// topic, limit, p) from the request. Unknown parameters are ignored.
// Unset fields are left zero for the store to default.
func parseListParams(r *http.Request) (store.ListParams, error) {
	q := r.URL.Query()
	params := store.ListParams{
		SortBy: q.Get("sort_by"),
		Order:  q.Get("order"),
		Author: q.Get("author"),
		Topic:  q.Get("topic"),
	}

	if params.Order != "" && params.Order != store.OrderAsc && params.Order != store.OrderDesc {
		return store.ListParams{}, ErrInvalidOrder
	}

	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 0 {
			return store.ListParams{}, ErrInvalidLimit
		}
		params.Limit = limit
	}

	if raw := q.Get("p"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 0 {
			return store.ListParams{}, ErrInvalidPage
		}
		params.Page = page
	}

	return params, nil
}

// parseIDParam reads a numeric path parameter. A non-numeric value gets
// the same classification the storage engine gives an invalid text
// representation, so /articles/banana answers 400 exactly as before the id
// parsing moved out of the query.
func parseIDParam(r *http.Request, name string) (int, error) {
	raw := chi.URLParam(r, name)
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a valid %s", store.ErrInvalidInput, raw, name)
	}
	return id, nil
}
