package usecase

import (
	"context"

	"apikit/internal/domain/entity"
)

// AuthUsecase implements registration, login and the token-driven account flows.
type AuthUsecase interface {
	// Register creates the user, issues auth tokens and sends a verification email.
	Register(ctx context.Context, user *entity.User) (*entity.User, *entity.AuthTokens, error)

	// Authenticate checks email and password. Unknown email and wrong password fail identically.
	Authenticate(ctx context.Context, email, password string) (*entity.User, error)

	// Login authenticates and issues auth tokens.
	Login(ctx context.Context, email, password string) (*entity.User, *entity.AuthTokens, error)

	// Logout deletes the refresh token. Unknown tokens are ignored.
	Logout(ctx context.Context, refreshToken string) error

	// RefreshAuth rotates a refresh token into a new token pair.
	RefreshAuth(ctx context.Context, refreshToken string) (*entity.AuthTokens, error)

	// ForgotPassword emails a reset-password link to the user with email.
	ForgotPassword(ctx context.Context, email string) error

	// ResetPassword sets a new password for the owner of a reset-password token.
	ResetPassword(ctx context.Context, token, newPassword string) error

	// SendVerificationEmail emails a verify-email link to user.
	SendVerificationEmail(ctx context.Context, user *entity.User) error

	// VerifyEmail marks the owner of a verify-email token as verified.
	VerifyEmail(ctx context.Context, token string) error

	// BlacklistToken revokes a persisted token.
	BlacklistToken(ctx context.Context, token string) error

	// AuthenticateAccessToken resolves the user behind a bearer access token.
	AuthenticateAccessToken(ctx context.Context, token string) (*entity.User, error)
}
