package domain

import (
	"context"
	"time"
)

// TokenIssuer issues tokens (e.g. JWT) for an authenticated subject.
type TokenIssuer interface {
	Issue(subject string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns its subject.
type TokenVerifier interface {
	Verify(token string) (subject string, err error)
}

// CredentialVerifier compares a stored password hash against a candidate
// password. Implementations may use bcrypt, argon2, etc.
type CredentialVerifier interface {
	Compare(hash, password string) error
}

// AuthService authenticates the configured admin credential and issues a
// bearer token for mutating endpoints.
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, err error)
}
