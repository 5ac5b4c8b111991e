// Package service declares the ports use cases depend on. Implementations
// live under internal/infra and are bound in cmd/*.
package service

import (
	"time"

	"apikit/internal/domain/entity"
)

// PasswordHasher turns user passwords into stored hashes. The user service
// calls it on create and whenever an update carries a password.
type PasswordHasher interface {
	Hash(password string) (string, error)

	// Check reports whether password matches hash. Malformed hashes never match.
	Check(password, hash string) bool
}

// TokenSigner signs and verifies JWTs carrying {sub, iat, exp, type}.
// Signing has no side effects; persistence is the token use case's concern.
type TokenSigner interface {
	// Generate signs a token for userID that expires at expires.
	Generate(userID string, expires time.Time, tokenType entity.TokenType) (string, error)

	// Parse verifies the signature and expiry of token and returns its claims.
	Parse(token string) (*entity.TokenClaims, error)
}
