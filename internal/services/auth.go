package services

import (
	"context"
	"strings"
	"time"

	"agendahub/internal/domain"
)

type authService struct {
	adminEmail        string
	adminPasswordHash string
	credentials       domain.CredentialVerifier
	tokens            domain.TokenIssuer
	tokenExpiry       time.Duration
}

// NewAuthService returns an AuthService that authenticates the single
// configured admin credential and issues bearer tokens.
func NewAuthService(adminEmail, adminPasswordHash string, credentials domain.CredentialVerifier, tokens domain.TokenIssuer, tokenExpiry time.Duration) domain.AuthService {
	return &authService{
		adminEmail:        strings.ToLower(strings.TrimSpace(adminEmail)),
		adminPasswordHash: adminPasswordHash,
		credentials:       credentials,
		tokens:            tokens,
		tokenExpiry:       tokenExpiry,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if s.adminEmail == "" || email != s.adminEmail {
		return "", domain.ErrInvalidCredentials
	}
	if err := s.credentials.Compare(s.adminPasswordHash, password); err != nil {
		return "", domain.ErrInvalidCredentials
	}
	return s.tokens.Issue(s.adminEmail, s.tokenExpiry)
}
