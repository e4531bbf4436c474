package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"agendahub/internal/domain"
)

type bcryptVerifier struct{}

// NewBcryptVerifier returns a CredentialVerifier that compares bcrypt
// hashes. Hashes are generated out of band (see HashPassword).
func NewBcryptVerifier() domain.CredentialVerifier {
	return bcryptVerifier{}
}

func (bcryptVerifier) Compare(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// HashPassword produces a bcrypt hash suitable for the ADMIN_PASSWORD_HASH
// configuration value.
func HashPassword(password string, cost int) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
