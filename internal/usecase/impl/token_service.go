package impl

import (
	"context"
	"log/slog"
	"time"

	"apikit/config"
	deliverycontext "apikit/internal/delivery/context"
	"apikit/internal/domain/entity"
	domainerrors "apikit/internal/domain/errors"
	"apikit/internal/domain/repository"
	"apikit/internal/domain/service"
	"apikit/internal/usecase"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/fx"
)

// tokenService implements the TokenUsecase interface.
type tokenService struct {
	tokens    repository.Collection[entity.Token]
	users     usecase.UserUsecase
	signer    service.TokenSigner
	txManager repository.TransactionManager
	windows   config.JWTConfig
	now       func() time.Time
	logger    *slog.Logger
}

// TokenServiceParams holds dependencies for TokenService, injected by Fx.
type TokenServiceParams struct {
	fx.In

	Tokens    repository.Collection[entity.Token]
	Users     usecase.UserUsecase
	Signer    service.TokenSigner
	TxManager repository.TransactionManager
	Config    *config.Config
	Logger    *slog.Logger
}

// NewTokenService is the constructor for tokenService.
func NewTokenService(params TokenServiceParams) usecase.TokenUsecase {
	return &tokenService{
		tokens:    params.Tokens,
		users:     params.Users,
		signer:    params.Signer,
		txManager: params.TxManager,
		windows:   params.Config.JWT,
		now:       time.Now,
		logger:    params.Logger,
	}
}

func (srv *tokenService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GenerateToken signs a token without persisting it.
func (srv *tokenService) GenerateToken(userID string, expires time.Time, tokenType entity.TokenType) (string, error) {
	token, err := srv.signer.Generate(userID, expires, tokenType)
	if err != nil {
		return "", errors.Wrap(err, "failed to generate token")
	}

	return token, nil
}

// SaveToken replaces every token of (userID, tokenType) with a new record. Delete and
// insert share a transaction when the store has them, otherwise they commit separately
// and concurrent issuers for the same pair may both succeed.
func (srv *tokenService) SaveToken(
	ctx context.Context,
	token string,
	userID primitive.ObjectID,
	expires time.Time,
	tokenType entity.TokenType,
	blacklisted bool,
) (*entity.Token, error) {
	record := &entity.Token{
		Token:       token,
		User:        userID,
		Type:        tokenType,
		Expires:     expires,
		Blacklisted: blacklisted,
	}

	err := srv.txManager.Execute(ctx, func(ctx context.Context) error {
		if _, err := srv.tokens.DeleteMany(ctx, repository.Filter{"user": userID, "type": tokenType}); err != nil {
			return errors.Wrap(err, "failed to delete previous tokens")
		}

		return errors.Wrap(srv.tokens.InsertOne(ctx, record), "failed to insert token")
	})
	if err != nil {
		srv.log(ctx).Error("Failed to save token", slog.String("type", tokenType.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to save token")
	}

	return record, nil
}

// VerifyToken checks signature, expiry and type, then requires a matching
// non-blacklisted record. Every rejection is ErrUnrecognizedToken.
func (srv *tokenService) VerifyToken(ctx context.Context, token string, tokenType entity.TokenType) (*entity.Token, error) {
	claims, err := srv.signer.Parse(token)
	if err != nil {
		srv.log(ctx).Debug("Token rejected", slog.String("reason", "signature"), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrUnrecognizedToken, "token signature or expiry invalid")
	}
	if claims.Type != tokenType {
		srv.log(ctx).Debug("Token rejected", slog.String("reason", "type"), slog.String("type", claims.Type.String()))

		return nil, errors.Wrap(domainerrors.ErrUnrecognizedToken, "token type mismatch")
	}

	userID, err := primitive.ObjectIDFromHex(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrUnrecognizedToken, "token subject is not a user id")
	}

	record, err := srv.tokens.FindOne(ctx, repository.Filter{
		"token":       token,
		"type":        tokenType,
		"user":        userID,
		"blacklisted": false,
	}, nil)
	if errors.Is(err, repository.ErrDocumentNotFound) {
		srv.log(ctx).Debug("Token rejected", slog.String("reason", "record"))

		return nil, errors.Wrap(domainerrors.ErrUnrecognizedToken, "token record not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find token")
	}

	return record, nil
}

// GenerateAuthTokens issues an access token and a persisted refresh token.
func (srv *tokenService) GenerateAuthTokens(ctx context.Context, user *entity.User) (*entity.AuthTokens, error) {
	now := srv.now()
	subject := user.ID.Hex()

	accessExpires := now.Add(srv.windows.AccessExpiration)
	access, err := srv.GenerateToken(subject, accessExpires, entity.TokenTypeAccess)
	if err != nil {
		return nil, err
	}

	refreshExpires := now.Add(srv.windows.RefreshExpiration)
	refresh, err := srv.GenerateToken(subject, refreshExpires, entity.TokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	if _, err := srv.SaveToken(ctx, refresh, user.ID, refreshExpires, entity.TokenTypeRefresh, false); err != nil {
		return nil, err
	}

	return &entity.AuthTokens{
		Access:  entity.TokenPayload{Token: access, Expires: accessExpires},
		Refresh: entity.TokenPayload{Token: refresh, Expires: refreshExpires},
	}, nil
}

// GenerateResetPasswordToken issues a reset-password token for the user with email.
func (srv *tokenService) GenerateResetPasswordToken(ctx context.Context, email string) (string, error) {
	user, err := srv.users.GetByEmail(ctx, email)
	if err != nil {
		return "", errors.Wrap(err, "failed to find user")
	}
	if user == nil {
		return "", errors.Wrap(domainerrors.ErrNoUserWithEmail, "reset password")
	}

	return srv.issue(ctx, user.ID, srv.windows.ResetPasswordExpiration, entity.TokenTypeResetPassword)
}

// GenerateVerifyEmailToken issues a verify-email token for user.
func (srv *tokenService) GenerateVerifyEmailToken(ctx context.Context, user *entity.User) (string, error) {
	return srv.issue(ctx, user.ID, srv.windows.VerifyEmailExpiration, entity.TokenTypeVerifyEmail)
}

func (srv *tokenService) issue(ctx context.Context, userID primitive.ObjectID, window time.Duration, tokenType entity.TokenType) (string, error) {
	expires := srv.now().Add(window)

	token, err := srv.GenerateToken(userID.Hex(), expires, tokenType)
	if err != nil {
		return "", err
	}

	if _, err := srv.SaveToken(ctx, token, userID, expires, tokenType, false); err != nil {
		return "", err
	}

	return token, nil
}

// BlacklistToken marks the record of token as blacklisted. Unknown tokens are ignored.
func (srv *tokenService) BlacklistToken(ctx context.Context, token string) error {
	_, err := srv.tokens.UpdateOne(ctx, repository.Filter{"token": token}, repository.Update{"blacklisted": true})
	if errors.Is(err, repository.ErrDocumentNotFound) {
		srv.log(ctx).Debug("Blacklist requested for unknown token")

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to blacklist token")
	}

	srv.log(ctx).Info("Token blacklisted")

	return nil
}

// RemoveRefreshToken deletes the non-blacklisted refresh record of token.
func (srv *tokenService) RemoveRefreshToken(ctx context.Context, token string) error {
	_, err := srv.tokens.DeleteOne(ctx, repository.Filter{
		"token":       token,
		"type":        entity.TokenTypeRefresh,
		"blacklisted": false,
	})
	if errors.Is(err, repository.ErrDocumentNotFound) {
		return nil
	}

	return errors.Wrap(err, "failed to delete refresh token")
}

// DeleteUserTokens removes every token of (userID, tokenType).
func (srv *tokenService) DeleteUserTokens(ctx context.Context, userID primitive.ObjectID, tokenType entity.TokenType) error {
	if _, err := srv.tokens.DeleteMany(ctx, repository.Filter{"user": userID, "type": tokenType}); err != nil {
		return errors.Wrap(err, "failed to delete user tokens")
	}

	return nil
}

// DeleteToken removes the record with the given id.
func (srv *tokenService) DeleteToken(ctx context.Context, id primitive.ObjectID) error {
	_, err := srv.tokens.DeleteOne(ctx, repository.Filter{"_id": id})
	if errors.Is(err, repository.ErrDocumentNotFound) {
		return nil
	}

	return errors.Wrap(err, "failed to delete token")
}

// DeleteExpired removes every token that expired before now.
func (srv *tokenService) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result, err := srv.tokens.DeleteMany(ctx, repository.Filter{"expires": bson.M{"$lt": now}})
	if err != nil {
		return 0, errors.Wrap(err, "failed to delete expired tokens")
	}

	return result.Deleted, nil
}
