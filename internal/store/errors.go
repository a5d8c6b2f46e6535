package store

import (
	"errors"
	"fmt"
)

// Common store errors. Storage implementations translate engine-specific
// failures into this set; the API layer maps the set onto HTTP statuses and
// never inspects engine codes itself.
var (
	// ErrNotFound is returned when a requested entity does not exist.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an insert would violate a unique
	// constraint, such as an existing topic slug or username.
	ErrDuplicate = errors.New("entity already exists")

	// ErrNotNull is returned when an insert or update leaves a required
	// column null.
	ErrNotNull = errors.New("not null violation")

	// ErrForeignKey is returned when a write references a row that does
	// not exist, such as a comment on a missing article.
	ErrForeignKey = errors.New("foreign key violation")

	// ErrUndefinedColumn is returned when a caller-supplied sort column
	// does not exist on the queried table.
	ErrUndefinedColumn = errors.New("undefined column")

	// ErrInvalidInput is returned when a value cannot be coerced to the
	// column's type, such as a non-numeric article id.
	ErrInvalidInput = errors.New("invalid text representation")

	// Entity-specific "not found" errors.

	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)

	// ErrArticleNotFound indicates the requested article does not exist.
	ErrArticleNotFound = fmt.Errorf("%w: article", ErrNotFound)

	// ErrCommentNotFound indicates the requested comment does not exist.
	ErrCommentNotFound = fmt.Errorf("%w: comment", ErrNotFound)
)

// IsNotFoundError reports whether err is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
