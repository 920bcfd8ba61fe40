// Package handlers provides HTTP request handlers for the helpmap API.
//
// Handlers are organized by concern:
//
//   - help.go: topic documentation (GET /help, GET /{topic}/help)
//   - search.go: cross-topic search (POST /search)
//   - health.go: status and readiness checks
//
// Documentation responses are plain text. Search results are cached by
// normalized query; the registry never changes, so a cached result is always
// identical to a freshly computed one.
package handlers

//go:generate gomarkdoc --output README.md .
