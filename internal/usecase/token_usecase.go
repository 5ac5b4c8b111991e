package usecase

import (
	"context"
	"time"

	"apikit/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TokenUsecase owns the lifecycle of issued tokens. It is the only writer of the
// token collection.
type TokenUsecase interface {
	// GenerateToken signs a token without persisting it.
	GenerateToken(userID string, expires time.Time, tokenType entity.TokenType) (string, error)

	// SaveToken replaces every token of (userID, tokenType) with a new record.
	SaveToken(ctx context.Context, token string, userID primitive.ObjectID, expires time.Time, tokenType entity.TokenType, blacklisted bool) (*entity.Token, error)

	// VerifyToken checks signature, expiry and type, then requires a matching
	// non-blacklisted record. Any failure is ErrUnrecognizedToken.
	VerifyToken(ctx context.Context, token string, tokenType entity.TokenType) (*entity.Token, error)

	// GenerateAuthTokens issues an access token and a persisted refresh token.
	GenerateAuthTokens(ctx context.Context, user *entity.User) (*entity.AuthTokens, error)

	// GenerateResetPasswordToken issues a reset-password token for the user with email.
	GenerateResetPasswordToken(ctx context.Context, email string) (string, error)

	// GenerateVerifyEmailToken issues a verify-email token for user.
	GenerateVerifyEmailToken(ctx context.Context, user *entity.User) (string, error)

	// BlacklistToken marks the record of token as blacklisted. Unknown tokens are ignored.
	BlacklistToken(ctx context.Context, token string) error

	// DeleteUserTokens removes every token of (userID, tokenType).
	DeleteUserTokens(ctx context.Context, userID primitive.ObjectID, tokenType entity.TokenType) error

	// RemoveRefreshToken deletes the non-blacklisted refresh record of token.
	// Unknown tokens are ignored.
	RemoveRefreshToken(ctx context.Context, token string) error

	// DeleteToken removes the record with the given id.
	DeleteToken(ctx context.Context, id primitive.ObjectID) error

	// DeleteExpired removes every token that expired before now.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
