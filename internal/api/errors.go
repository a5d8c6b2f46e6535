package api

import (
	"errors"
	"net/http"

	"github.com/harwoodm/newsdesk/internal/domain"
	"github.com/harwoodm/newsdesk/internal/store"
)

// Request validation errors raised by the handlers themselves, before any
// store call is made.
var (
	// ErrMissingIncVotes is returned when a vote update carries no
	// inc_votes value. A literal zero is treated as missing too; the
	// reference API behaves this way and callers depend on it.
	ErrMissingIncVotes = errors.New("inc_votes missing or zero")

	// ErrInvalidOrder is returned when order is neither asc nor desc.
	ErrInvalidOrder = errors.New("order must be asc or desc")

	// ErrInvalidLimit is returned when limit is not a number.
	ErrInvalidLimit = errors.New("limit must be a number")

	// ErrInvalidPage is returned when p is not a number.
	ErrInvalidPage = errors.New("page must be a number")

	// ErrInvalidBody is returned when a request body cannot be decoded.
	ErrInvalidBody = errors.New("malformed request body")
)

// Fixed messages for router-level failures.
const (
	RouteNotFoundMessage    = "route not found"
	MethodNotAllowedMessage = "method not allowed"
	internalErrorMessage    = "internal server error"
)

// ClassifyError maps any error surfaced by the handlers or stores to an
// HTTP status and a client-safe message. This is the only place that
// mapping happens; handlers never inspect error internals and anything
// unrecognized becomes a generic 500 rather than going unanswered.
func ClassifyError(err error) (int, string) {
	switch {
	// Handler-raised validation errors.
	case errors.Is(err, ErrMissingIncVotes), errors.Is(err, ErrInvalidBody):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, ErrInvalidOrder):
		return http.StatusBadRequest, "invalid query"
	case errors.Is(err, ErrInvalidLimit):
		return http.StatusBadRequest, "invalid limit"
	case errors.Is(err, ErrInvalidPage):
		return http.StatusBadRequest, "invalid page"
	case errors.Is(err, domain.ErrInvalidAvatarURL):
		return http.StatusBadRequest, "INVALID AVATAR URL"

	// Entity-specific not-found errors carry their own message.
	case errors.Is(err, store.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, store.ErrArticleNotFound):
		return http.StatusNotFound, "article not found"
	case errors.Is(err, store.ErrCommentNotFound):
		return http.StatusNotFound, "comment not found"
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound, "not found"

	// Storage-classified errors.
	case errors.Is(err, store.ErrForeignKey):
		return http.StatusNotFound, "FOREIGN KEY VIOLATION"
	case errors.Is(err, store.ErrNotNull):
		return http.StatusBadRequest, "NOT NULL VIOLATION"
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusBadRequest, "NOT UNIQUE"
	case errors.Is(err, store.ErrUndefinedColumn):
		return http.StatusBadRequest, "UNDEFINED COLUMN"
	case errors.Is(err, store.ErrInvalidInput):
		return http.StatusBadRequest, "INVALID TEXT REPRESENTATION"

	default:
		return http.StatusInternalServerError, internalErrorMessage
	}
}
