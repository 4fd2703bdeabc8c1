// Package services defines the business logic for chat, accounts, favorites,
// history, and weather. This file centralizes common service-level error
// values so that they can be consistently returned by service methods and
// checked by callers.
//
// These errors are intended for internal use by the service layer and
// translation into user-facing messages or HTTP status codes should be
// performed at the handler layer.
package services

import "errors"

// Chat-related errors.
var (
	// ErrEmptyMessage is returned when a chat request contains an empty
	// message.
	ErrEmptyMessage = errors.New("message is empty")

	// ErrMessageTooLong is returned when a chat message exceeds the maximum
	// configured length limit.
	ErrMessageTooLong = errors.New("message too long")
)

// Account-related errors.
var (
	// ErrInvalidEmail is returned when a registration email fails basic
	// syntactic validation.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrWeakPassword is returned when a registration password is shorter
	// than the minimum length.
	ErrWeakPassword = errors.New("password must be at least 8 characters")

	// ErrEmailNotAllowed is returned when registration is restricted to an
	// allow-list and the email is not on it.
	ErrEmailNotAllowed = errors.New("registration is not open for this email")

	// ErrEmailTaken is returned when the email is already registered.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials is returned on login with an unknown email or a
	// wrong password. The two cases are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidSession is returned when a session token is missing,
	// unknown, or expired.
	ErrInvalidSession = errors.New("invalid or expired session")
)

// Authorization errors.
var (
	// ErrForbidden is returned when a user acts on another user's resource.
	ErrForbidden = errors.New("resource belongs to another user")
)
