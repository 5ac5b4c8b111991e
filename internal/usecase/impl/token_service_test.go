package impl

import (
	"context"
	"testing"
	"time"

	"apikit/internal/domain/entity"
	domainerrors "apikit/internal/domain/errors"
	"apikit/internal/domain/repository"
	mockRepo "apikit/internal/mocks/repository"
	mockService "apikit/internal/mocks/service"
	mockUsecase "apikit/internal/mocks/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type tokenServiceFixtures struct {
	service   *tokenService
	tokens    *mockRepo.MockCollection[entity.Token]
	users     *mockUsecase.MockUserUsecase
	signer    *mockService.MockTokenSigner
	txManager *mockRepo.MockTransactionManager
	now       time.Time
}

func createTestTokenService(t *testing.T) tokenServiceFixtures {
	tokens := mockRepo.NewMockCollection[entity.Token](t)
	users := mockUsecase.NewMockUserUsecase(t)
	signer := mockService.NewMockTokenSigner(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	srv := NewTokenService(TokenServiceParams{
		Tokens:    tokens,
		Users:     users,
		Signer:    signer,
		TxManager: txManager,
		Config:    newTestConfig(),
		Logger:    newDiscardLogger(),
	}).(*tokenService)
	srv.now = func() time.Time { return now }

	return tokenServiceFixtures{
		service:   srv,
		tokens:    tokens,
		users:     users,
		signer:    signer,
		txManager: txManager,
		now:       now,
	}
}

func TestTokenService_SaveToken_DeletesBeforeInsert(t *testing.T) {
	fx := createTestTokenService(t)
	passThroughTx(fx.txManager)
	userID := primitive.NewObjectID()
	expires := fx.now.Add(time.Hour)

	deleteCall := fx.tokens.EXPECT().
		DeleteMany(mock.Anything, repository.Filter{"user": userID, "type": entity.TokenTypeRefresh}).
		Return(repository.BulkResult{Deleted: 1}, nil)
	insertCall := fx.tokens.EXPECT().
		InsertOne(mock.Anything, mock.MatchedBy(func(tok *entity.Token) bool {
			return tok.Token == "signed" && tok.User == userID && tok.Type == entity.TokenTypeRefresh &&
				tok.Expires.Equal(expires) && !tok.Blacklisted
		})).
		Return(nil)
	mock.InOrder(deleteCall.Call, insertCall.Call)

	record, err := fx.service.SaveToken(context.Background(), "signed", userID, expires, entity.TokenTypeRefresh, false)
	require.NoError(t, err)
	assert.Equal(t, "signed", record.Token)
}

func TestTokenService_SaveToken_DeleteFailureSkipsInsert(t *testing.T) {
	fx := createTestTokenService(t)
	passThroughTx(fx.txManager)

	fx.tokens.EXPECT().DeleteMany(mock.Anything, mock.Anything).Return(repository.BulkResult{}, errors.New("boom"))

	_, err := fx.service.SaveToken(context.Background(), "signed", primitive.NewObjectID(), fx.now, entity.TokenTypeRefresh, false)
	require.Error(t, err)
}

func TestTokenService_VerifyToken_RejectsBadSignature(t *testing.T) {
	fx := createTestTokenService(t)

	fx.signer.EXPECT().Parse("bad").Return(nil, errors.New("signature is invalid"))

	_, err := fx.service.VerifyToken(context.Background(), "bad", entity.TokenTypeRefresh)
	assert.ErrorIs(t, err, domainerrors.ErrUnrecognizedToken)
}

func TestTokenService_VerifyToken_RejectsWrongType(t *testing.T) {
	fx := createTestTokenService(t)
	userID := primitive.NewObjectID()

	fx.signer.EXPECT().Parse("tok").Return(&entity.TokenClaims{Subject: userID.Hex(), Type: entity.TokenTypeAccess}, nil)

	_, err := fx.service.VerifyToken(context.Background(), "tok", entity.TokenTypeRefresh)
	assert.ErrorIs(t, err, domainerrors.ErrUnrecognizedToken)
}

func TestTokenService_VerifyToken_RequiresLiveRecord(t *testing.T) {
	fx := createTestTokenService(t)
	ctx := context.Background()
	userID := primitive.NewObjectID()

	fx.signer.EXPECT().Parse("tok").Return(&entity.TokenClaims{Subject: userID.Hex(), Type: entity.TokenTypeRefresh}, nil)
	fx.tokens.EXPECT().
		FindOne(ctx, repository.Filter{
			"token":       "tok",
			"type":        entity.TokenTypeRefresh,
			"user":        userID,
			"blacklisted": false,
		}, []string(nil)).
		Return(nil, repository.ErrDocumentNotFound)

	_, err := fx.service.VerifyToken(ctx, "tok", entity.TokenTypeRefresh)
	assert.ErrorIs(t, err, domainerrors.ErrUnrecognizedToken)
}

func TestTokenService_GenerateAuthTokens(t *testing.T) {
	fx := createTestTokenService(t)
	passThroughTx(fx.txManager)
	user := &entity.User{}
	user.ID = primitive.NewObjectID()
	accessExp := fx.now.Add(30 * time.Minute)
	refreshExp := fx.now.Add(30 * 24 * time.Hour)

	fx.signer.EXPECT().Generate(user.ID.Hex(), accessExp, entity.TokenTypeAccess).Return("access", nil)
	fx.signer.EXPECT().Generate(user.ID.Hex(), refreshExp, entity.TokenTypeRefresh).Return("refresh", nil)
	fx.tokens.EXPECT().DeleteMany(mock.Anything, repository.Filter{"user": user.ID, "type": entity.TokenTypeRefresh}).Return(repository.BulkResult{}, nil)
	fx.tokens.EXPECT().InsertOne(mock.Anything, mock.MatchedBy(func(tok *entity.Token) bool { return tok.Token == "refresh" })).Return(nil)

	tokens, err := fx.service.GenerateAuthTokens(context.Background(), user)
	require.NoError(t, err)
	assert.Equal(t, entity.TokenPayload{Token: "access", Expires: accessExp}, tokens.Access)
	assert.Equal(t, entity.TokenPayload{Token: "refresh", Expires: refreshExp}, tokens.Refresh)
}

func TestTokenService_GenerateResetPasswordToken_UnknownEmail(t *testing.T) {
	fx := createTestTokenService(t)
	ctx := context.Background()

	fx.users.EXPECT().GetByEmail(ctx, "ghost@example.com").Return(nil, nil)

	_, err := fx.service.GenerateResetPasswordToken(ctx, "ghost@example.com")
	assert.ErrorIs(t, err, domainerrors.ErrNoUserWithEmail)
}

func TestTokenService_BlacklistToken_UnknownIsNoop(t *testing.T) {
	fx := createTestTokenService(t)
	ctx := context.Background()

	fx.tokens.EXPECT().
		UpdateOne(ctx, repository.Filter{"token": "missing"}, repository.Update{"blacklisted": true}).
		Return(nil, repository.ErrDocumentNotFound)

	assert.NoError(t, fx.service.BlacklistToken(ctx, "missing"))
}

func TestTokenService_RemoveRefreshToken_UnknownIsNoop(t *testing.T) {
	fx := createTestTokenService(t)
	ctx := context.Background()

	fx.tokens.EXPECT().
		DeleteOne(ctx, repository.Filter{"token": "missing", "type": entity.TokenTypeRefresh, "blacklisted": false}).
		Return(nil, repository.ErrDocumentNotFound)

	assert.NoError(t, fx.service.RemoveRefreshToken(ctx, "missing"))
}

func TestTokenService_DeleteExpired(t *testing.T) {
	fx := createTestTokenService(t)
	ctx := context.Background()

	fx.tokens.EXPECT().
		DeleteMany(ctx, repository.Filter{"expires": bson.M{"$lt": fx.now}}).
		Return(repository.BulkResult{Deleted: 7}, nil)

	deleted, err := fx.service.DeleteExpired(ctx, fx.now)
	require.NoError(t, err)
	assert.Equal(t, int64(7), deleted)
}
