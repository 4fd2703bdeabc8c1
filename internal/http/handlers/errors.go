// Package handlers implements the HTTP endpoints of the public API.
//
// This file centralizes the machine-readable error codes carried in the
// ErrorResponse envelope. Generic codes mirror HTTP status semantics; the
// domain-specific ones cover failures a status alone cannot convey, such as
// an AI provider that is reachable but unconfigured.
package handlers

const (
	ErrCodeBadRequest   = "bad_request"
	ErrCodeUnauthorized = "unauthorized"
	ErrCodeForbidden    = "forbidden"
	ErrCodeNotFound     = "not_found"
	ErrCodeConflict     = "conflict"
	ErrCodeRateLimited  = "too_many_requests"
	ErrCodeInternal     = "internal_error"

	// Domain-specific:
	ErrCodeChatFailed       = "chat_failed"
	ErrCodeConfiguration    = "configuration_error"
	ErrCodeCreateFailed     = "create_failed"
	ErrCodeListFailed       = "list_failed"
	ErrCodeImageFailed      = "image_failed"
	ErrCodeMethodNotAllowed = "method_not_allowed"
)
