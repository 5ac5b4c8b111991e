package auth

import (
	"time"

	"apikit/config"
	"apikit/internal/domain/entity"
	"apikit/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Claims are the JWT claims carried by every token.
type Claims struct {
	Type entity.TokenType `json:"type"`
	jwt.RegisteredClaims
}

// jwtSigner is a concrete implementation of the TokenSigner interface using HS256.
type jwtSigner struct {
	secret []byte
	now    func() time.Time
}

// NewJWTSigner builds a TokenSigner from the jwt section.
func NewJWTSigner(cfg *config.Config) (service.TokenSigner, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtSigner{secret: []byte(cfg.JWT.Secret), now: time.Now}, nil
}

func (s *jwtSigner) Generate(userID string, expires time.Time, tokenType entity.TokenType) (string, error) {
	return GenerateToken(userID, s.now(), expires, tokenType, s.secret)
}

func (s *jwtSigner) Parse(token string) (*entity.TokenClaims, error) {
	return ParseToken(token, s.secret, s.now)
}

// GenerateToken signs {sub, iat, exp, type} with secret. A random jti keeps tokens
// issued within the same second distinct.
func GenerateToken(userID string, issuedAt, expires time.Time, tokenType entity.TokenType, secret []byte) (string, error) {
	claims := Claims{
		Type: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}

	return signed, nil
}

// ParseToken verifies signature and expiry and returns the token claims.
func ParseToken(token string, secret []byte, now func() time.Time) (*entity.TokenClaims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Wrapf(jwt.ErrSignatureInvalid, "unexpected signing method %v", t.Header["alg"])
		}

		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "parse token")
	}
	if !parsed.Valid {
		return nil, errors.New("token is not valid")
	}
	if claims.Subject == "" {
		return nil, errors.New("token has no subject")
	}

	out := &entity.TokenClaims{
		Subject: claims.Subject,
		Type:    claims.Type,
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}

	return out, nil
}
