// Package domain defines the core entities served by the API: topics,
// users, articles and comments.
package domain
