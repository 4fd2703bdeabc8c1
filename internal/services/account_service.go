// Package services – AccountService
//
// This file implements registration, login, logout, and session resolution.
// Passwords are stored as bcrypt hashes; sessions are opaque UUID tokens with
// a server-side TTL. Registration may be restricted to an allow-list of
// email addresses.
package services

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/voyago/travel-assistant/internal/domain"
	"github.com/voyago/travel-assistant/internal/repo"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// minPasswordLen is the minimum accepted password length in runes.
const minPasswordLen = 8

// emailRE is a pragmatic syntax check, not full RFC 5322 validation.
var emailRE = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// AccountService handles user registration and the session lifecycle.
type AccountService struct {
	DB *gorm.DB

	// SessionTTL is the lifetime of new sessions.
	SessionTTL time.Duration

	// AllowedEmails restricts registration when non-empty. Entries are
	// matched case-insensitively against the whole address.
	AllowedEmails []string
}

// Register creates a new account and returns the stored user.
//
// Returns ErrInvalidEmail, ErrWeakPassword, ErrEmailNotAllowed, or
// ErrEmailTaken on the corresponding validation failures.
func (s *AccountService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	tr := otel.Tracer("services/AccountService")
	ctx, span := tr.Start(ctx, "Register")
	defer span.End()

	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRE.MatchString(email) {
		return nil, ErrInvalidEmail
	}
	if len([]rune(password)) < minPasswordLen {
		return nil, ErrWeakPassword
	}
	if !s.emailAllowed(email) {
		return nil, ErrEmailNotAllowed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u, err := repo.CreateUser(ctx, s.DB, email, string(hash))
	if errors.Is(err, repo.ErrDuplicate) {
		return nil, ErrEmailTaken
	}
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("user.id", u.ID))
	return u, nil
}

// Login verifies credentials and opens a new session. Unknown emails and
// wrong passwords both return ErrInvalidCredentials.
func (s *AccountService) Login(ctx context.Context, email, password string) (*domain.User, *domain.Session, error) {
	tr := otel.Tracer("services/AccountService")
	ctx, span := tr.Start(ctx, "Login")
	defer span.End()

	u, err := repo.GetUserByEmail(ctx, s.DB, email)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, nil, ErrInvalidCredentials
	}

	sess, err := repo.CreateSession(ctx, s.DB, u.ID, s.SessionTTL)
	if err != nil {
		return nil, nil, err
	}
	span.SetAttributes(attribute.String("user.id", u.ID))
	return u, sess, nil
}

// Logout invalidates the session token. Unknown tokens are a no-op.
func (s *AccountService) Logout(ctx context.Context, token string) error {
	tr := otel.Tracer("services/AccountService")
	ctx, span := tr.Start(ctx, "Logout")
	defer span.End()

	if token == "" {
		return nil
	}
	return repo.DeleteSession(ctx, s.DB, token)
}

// Authenticate resolves a session token to its user, or ErrInvalidSession.
func (s *AccountService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	tr := otel.Tracer("services/AccountService")
	ctx, span := tr.Start(ctx, "Authenticate",
		trace.WithSpanKind(trace.SpanKindInternal),
	)
	defer span.End()

	sess, err := repo.GetSession(ctx, s.DB, token, time.Now().UTC())
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrInvalidSession
	}
	if err != nil {
		return nil, err
	}

	u, err := repo.GetUser(ctx, s.DB, sess.UserID)
	if errors.Is(err, repo.ErrNotFound) {
		// Account deleted while the session lived.
		return nil, ErrInvalidSession
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// emailAllowed reports whether email passes the registration allow-list.
// An empty allow-list means registration is open.
func (s *AccountService) emailAllowed(email string) bool {
	if len(s.AllowedEmails) == 0 {
		return true
	}
	for _, a := range s.AllowedEmails {
		if strings.EqualFold(strings.TrimSpace(a), email) {
			return true
		}
	}
	return false
}
