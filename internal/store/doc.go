// Package store defines the data-access contracts for the API's resources
// and the error set that storage implementations surface. Implementations
// live in internal/platform/postgres.
package store
