// Package api provides the HTTP handlers for the news API and the single
// place where internal errors are classified into wire statuses.
package api
