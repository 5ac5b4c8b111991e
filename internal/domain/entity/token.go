package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TokenCollection is the collection name for persisted tokens.
const TokenCollection = "tokens"

// TokenType identifies the purpose a signed token was issued for.
type TokenType string

const (
	TokenTypeAccess        TokenType = "access"
	TokenTypeRefresh       TokenType = "refresh"
	TokenTypeResetPassword TokenType = "resetPassword"
	TokenTypeVerifyEmail   TokenType = "verifyEmail"
)

func (t TokenType) String() string {
	return string(t)
}

// IsValid checks if the TokenType is a valid value.
func (t TokenType) IsValid() bool {
	switch t {
	case TokenTypeAccess, TokenTypeRefresh, TokenTypeResetPassword, TokenTypeVerifyEmail:
		return true
	default:
		return false
	}
}

// Token is a persisted record of an issued refresh, reset-password or verify-email token.
// Access tokens are never persisted.
type Token struct {
	Base `bson:",inline"`

	Token       string             `bson:"token" json:"token"`
	User        primitive.ObjectID `bson:"user" json:"user"`
	Type        TokenType          `bson:"type" json:"type"`
	Expires     time.Time          `bson:"expires" json:"expires"`
	Blacklisted bool               `bson:"blacklisted" json:"blacklisted"`
}

// TokenPayload is a signed token together with its expiry.
type TokenPayload struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

// AuthTokens is the access/refresh pair returned on login, registration and refresh.
type AuthTokens struct {
	Access  TokenPayload `json:"access"`
	Refresh TokenPayload `json:"refresh"`
}

// TokenClaims is the verified content of a signed token.
type TokenClaims struct {
	Subject   string
	Type      TokenType
	IssuedAt  time.Time
	ExpiresAt time.Time
}
