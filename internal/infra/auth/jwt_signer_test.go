package auth

import (
	"testing"
	"time"

	"apikit/config"
	"apikit/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_jwt_secret_key_very_long_for_testing"

func newSignerConfig(secret string) *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = secret

	return cfg
}

func TestNewJWTSigner_RequiresSecret(t *testing.T) {
	_, err := NewJWTSigner(newSignerConfig(""))

	require.Error(t, err)
}

func TestJWTSigner_GenerateAndParse(t *testing.T) {
	signer, err := NewJWTSigner(newSignerConfig(testSecret))
	require.NoError(t, err)

	expires := time.Now().Add(30 * time.Minute).Truncate(time.Second)
	token, err := signer.Generate("665f1c2b9d1e8a0012345678", expires, entity.TokenTypeAccess)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := signer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "665f1c2b9d1e8a0012345678", claims.Subject)
	assert.Equal(t, entity.TokenTypeAccess, claims.Type)
	assert.True(t, claims.ExpiresAt.Equal(expires))
	assert.False(t, claims.IssuedAt.IsZero())
}

func TestParseToken_Rejects(t *testing.T) {
	now := time.Now()
	secret := []byte(testSecret)

	expired, err := GenerateToken("user", now.Add(-2*time.Hour), now.Add(-time.Hour), entity.TokenTypeRefresh, secret)
	require.NoError(t, err)

	otherSecret, err := GenerateToken("user", now, now.Add(time.Hour), entity.TokenTypeRefresh, []byte("another-secret"))
	require.NoError(t, err)

	noSubject, err := GenerateToken("", now, now.Add(time.Hour), entity.TokenTypeRefresh, secret)
	require.NoError(t, err)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "user",
		"exp": now.Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tests := map[string]string{
		"expired":      expired,
		"wrong secret": otherSecret,
		"no subject":   noSubject,
		"alg none":     none,
		"garbage":      "clearly-not-a-jwt-token-format",
	}

	for name, token := range tests {
		t.Run(name, func(t *testing.T) {
			claims, err := ParseToken(token, secret, time.Now)
			require.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}
