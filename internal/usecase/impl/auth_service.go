package impl

import (
	"context"
	"log/slog"

	deliverycontext "apikit/internal/delivery/context"
	"apikit/internal/domain/entity"
	domainerrors "apikit/internal/domain/errors"
	"apikit/internal/domain/repository"
	"apikit/internal/domain/service"
	"apikit/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	users  usecase.UserUsecase
	tokens usecase.TokenUsecase
	mail   usecase.MailUsecase
	hasher service.PasswordHasher
	signer service.TokenSigner
	logger *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Users  usecase.UserUsecase
	Tokens usecase.TokenUsecase
	Mail   usecase.MailUsecase
	Hasher service.PasswordHasher
	Signer service.TokenSigner
	Logger *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		users:  params.Users,
		tokens: params.Tokens,
		mail:   params.Mail,
		hasher: params.Hasher,
		signer: params.Signer,
		logger: params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a regular, unverified user, issues auth tokens and sends a
// verification email. A failed email does not fail the registration.
func (srv *authService) Register(ctx context.Context, user *entity.User) (*entity.User, *entity.AuthTokens, error) {
	user.Role = entity.RoleUser
	user.IsEmailVerified = false

	created, err := srv.users.CreateOne(ctx, user)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to register user")
	}

	tokens, err := srv.tokens.GenerateAuthTokens(ctx, created)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to issue tokens for new user")
	}

	if err := srv.SendVerificationEmail(ctx, created); err != nil {
		srv.log(ctx).Warn("Failed to send verification email after registration",
			slog.String("user_id", created.ID.Hex()), slog.Any("error", err))
	}

	srv.log(ctx).Info("User registered", slog.String("user_id", created.ID.Hex()))

	return created, tokens, nil
}

// Authenticate checks email and password. Unknown email and wrong password fail identically.
func (srv *authService) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := srv.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}
	if user == nil || !srv.hasher.Check(password, user.Password) {
		return nil, errors.Wrap(domainerrors.ErrIncorrectCredentials, "authenticate")
	}

	return user, nil
}

// Login authenticates and issues auth tokens.
func (srv *authService) Login(ctx context.Context, email, password string) (*entity.User, *entity.AuthTokens, error) {
	user, err := srv.Authenticate(ctx, email, password)
	if err != nil {
		return nil, nil, err
	}

	tokens, err := srv.tokens.GenerateAuthTokens(ctx, user)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to issue tokens")
	}

	return user, tokens, nil
}

// Logout deletes the refresh token. Unknown tokens are ignored.
func (srv *authService) Logout(ctx context.Context, refreshToken string) error {
	return errors.Wrap(srv.tokens.RemoveRefreshToken(ctx, refreshToken), "failed to logout")
}

// RefreshAuth rotates a refresh token into a new token pair.
func (srv *authService) RefreshAuth(ctx context.Context, refreshToken string) (*entity.AuthTokens, error) {
	tokens, err := srv.rotate(ctx, refreshToken)
	if err != nil {
		srv.log(ctx).Warn("Refresh rejected", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPleaseAuthenticate, "refresh auth")
	}

	return tokens, nil
}

func (srv *authService) rotate(ctx context.Context, refreshToken string) (*entity.AuthTokens, error) {
	record, err := srv.tokens.VerifyToken(ctx, refreshToken, entity.TokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	user, err := srv.owner(ctx, record)
	if err != nil {
		return nil, err
	}

	if err := srv.tokens.DeleteToken(ctx, record.ID); err != nil {
		return nil, err
	}

	return srv.tokens.GenerateAuthTokens(ctx, user)
}

// ForgotPassword emails a reset-password link to the user with email.
func (srv *authService) ForgotPassword(ctx context.Context, email string) error {
	token, err := srv.tokens.GenerateResetPasswordToken(ctx, email)
	if err != nil {
		return err
	}

	return errors.Wrap(srv.mail.SendResetPasswordEmail(ctx, email, token), "failed to send reset password email")
}

// ResetPassword sets a new password for the owner of a reset-password token.
func (srv *authService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if err := srv.resetPassword(ctx, token, newPassword); err != nil {
		srv.log(ctx).Warn("Password reset rejected", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrPasswordResetFailed, "reset password")
	}

	return nil
}

func (srv *authService) resetPassword(ctx context.Context, token, newPassword string) error {
	record, err := srv.tokens.VerifyToken(ctx, token, entity.TokenTypeResetPassword)
	if err != nil {
		return err
	}

	user, err := srv.owner(ctx, record)
	if err != nil {
		return err
	}

	if _, err := srv.users.UpdateOne(ctx, repository.Filter{"_id": user.ID}, repository.Update{"password": newPassword}); err != nil {
		return err
	}

	return srv.tokens.DeleteUserTokens(ctx, user.ID, entity.TokenTypeResetPassword)
}

// SendVerificationEmail emails a verify-email link to user.
func (srv *authService) SendVerificationEmail(ctx context.Context, user *entity.User) error {
	token, err := srv.tokens.GenerateVerifyEmailToken(ctx, user)
	if err != nil {
		return err
	}

	return errors.Wrap(srv.mail.SendVerificationEmail(ctx, user.Email, token), "failed to send verification email")
}

// VerifyEmail marks the owner of a verify-email token as verified.
func (srv *authService) VerifyEmail(ctx context.Context, token string) error {
	if err := srv.verifyEmail(ctx, token); err != nil {
		srv.log(ctx).Warn("Email verification rejected", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrEmailVerificationFailed, "verify email")
	}

	return nil
}

func (srv *authService) verifyEmail(ctx context.Context, token string) error {
	record, err := srv.tokens.VerifyToken(ctx, token, entity.TokenTypeVerifyEmail)
	if err != nil {
		return err
	}

	user, err := srv.owner(ctx, record)
	if err != nil {
		return err
	}

	if err := srv.tokens.DeleteUserTokens(ctx, user.ID, entity.TokenTypeVerifyEmail); err != nil {
		return err
	}

	_, err = srv.users.UpdateOne(ctx, repository.Filter{"_id": user.ID}, repository.Update{"isEmailVerified": true})

	return err
}

// BlacklistToken revokes a persisted token.
func (srv *authService) BlacklistToken(ctx context.Context, token string) error {
	return srv.tokens.BlacklistToken(ctx, token)
}

// AuthenticateAccessToken resolves the user behind a bearer access token.
func (srv *authService) AuthenticateAccessToken(ctx context.Context, token string) (*entity.User, error) {
	claims, err := srv.signer.Parse(token)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPleaseAuthenticate, "access token rejected")
	}
	if claims.Type != entity.TokenTypeAccess {
		return nil, errors.Wrap(domainerrors.ErrInvalidTokenType, "access token required")
	}

	user, err := srv.users.GetByID(ctx, claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load token owner")
	}
	if user == nil {
		return nil, errors.Wrap(domainerrors.ErrPleaseAuthenticate, "token owner not found")
	}

	return user, nil
}

func (srv *authService) owner(ctx context.Context, record *entity.Token) (*entity.User, error) {
	user, err := srv.users.GetByID(ctx, record.User.Hex())
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.Wrap(domainerrors.ErrUserNotFound, "token owner")
	}

	return user, nil
}
