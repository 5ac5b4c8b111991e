package impl

import (
	"context"
	"testing"

	"apikit/config"
	"apikit/internal/domain/entity"
	domainerrors "apikit/internal/domain/errors"
	"apikit/internal/domain/repository"
	"apikit/internal/domain/service"
	"apikit/internal/infra/auth"
	mockRepo "apikit/internal/mocks/repository"
	mockService "apikit/internal/mocks/service"
	"apikit/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type userServiceFixtures struct {
	service   usecase.UserUsecase
	users     *mockRepo.MockCollection[entity.User]
	txManager *mockRepo.MockTransactionManager
	hasher    *mockService.MockPasswordHasher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	users := mockRepo.NewMockCollection[entity.User](t)
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockService.NewMockPasswordHasher(t)
	users.EXPECT().Name().Return(entity.UserCollection).Maybe()

	return userServiceFixtures{
		service:   newUserServiceWith(users, txManager, hasher),
		users:     users,
		txManager: txManager,
		hasher:    hasher,
	}
}

func newUserServiceWith(users repository.Collection[entity.User], tx repository.TransactionManager, hasher service.PasswordHasher) usecase.UserUsecase {
	return NewUserService(UserServiceParams{
		Users:     users,
		TxManager: tx,
		Hasher:    hasher,
		Logger:    newDiscardLogger(),
	})
}

func TestUserService_CreateOne_HashesPasswordAndNormalizesEmail(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.users.EXPECT().Count(ctx, repository.Filter{"email": "jane@example.com"}).Return(0, nil)
	fx.hasher.EXPECT().Hash("abc12345").Return("hashed", nil)
	fx.users.EXPECT().
		InsertOne(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Password == "hashed" && u.Email == "jane@example.com" && u.Role == entity.RoleUser
		})).
		Return(nil)

	user, err := fx.service.CreateOne(ctx, &entity.User{Email: "  Jane@Example.COM ", Password: "abc12345"})
	require.NoError(t, err)
	assert.Equal(t, "hashed", user.Password)
}

func TestUserService_CreateOne_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.users.EXPECT().Count(ctx, repository.Filter{"email": "jane@example.com"}).Return(1, nil)

	_, err := fx.service.CreateOne(ctx, &entity.User{Email: "jane@example.com", Password: "abc12345"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestUserService_CreateOne_RequiresPassword(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.CreateOne(context.Background(), &entity.User{Email: "jane@example.com"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_CreateOne_RejectsUnknownRole(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.CreateOne(context.Background(), &entity.User{Email: "a@b.c", Password: "abc12345", Role: "root"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_CreateOne_DuplicateKeyIsEmailTaken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.users.EXPECT().Count(ctx, mock.Anything).Return(0, nil)
	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
	fx.users.EXPECT().InsertOne(ctx, mock.Anything).Return(repository.ErrDuplicateKey)

	_, err := fx.service.CreateOne(ctx, &entity.User{Email: "jane@example.com", Password: "abc12345"})
	assert.ErrorIs(t, err, domainerrors.ErrEmailTaken)
}

func TestUserService_CreateMany_HashesEveryPassword(t *testing.T) {
	fx := createTestUserService(t)
	passThroughTx(fx.txManager)

	fx.users.EXPECT().Count(mock.Anything, mock.Anything).Return(0, nil).Times(2)
	fx.hasher.EXPECT().Hash("first-pass1").Return("h1", nil)
	fx.hasher.EXPECT().Hash("second-pass2").Return("h2", nil)
	fx.users.EXPECT().
		InsertMany(mock.Anything, mock.MatchedBy(func(users []*entity.User) bool {
			return len(users) == 2 && users[0].Password == "h1" && users[1].Password == "h2"
		})).
		Return(nil)

	_, err := fx.service.CreateMany(context.Background(), []*entity.User{
		{Email: "one@example.com", Password: "first-pass1"},
		{Email: "two@example.com", Password: "second-pass2"},
	})
	require.NoError(t, err)
}

func TestUserService_UpdateOne_RehashesPasswordAndExcludesSelfFromEmailCheck(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	id := primitive.NewObjectID()

	fx.users.EXPECT().
		Count(ctx, repository.Filter{"email": "new@example.com", "_id": bson.M{"$ne": id}}).
		Return(0, nil)
	fx.hasher.EXPECT().Hash("n3wPassword").Return("rehashed", nil)
	fx.users.EXPECT().
		UpdateOne(ctx, repository.Filter{"_id": id}, repository.Update{"email": "new@example.com", "password": "rehashed"}).
		Return(&entity.User{Email: "new@example.com"}, nil)

	user, err := fx.service.UpdateOne(ctx, repository.Filter{"id": id.Hex()}, repository.Update{
		"email":    "NEW@example.com",
		"password": "n3wPassword",
	})
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", user.Email)
}

func TestUserService_UpdateMany_HashesPassword(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	filter := repository.Filter{"role": "user"}

	fx.hasher.EXPECT().Hash("bulkPass1").Return("bulk-hash", nil)
	fx.users.EXPECT().
		UpdateMany(ctx, filter, repository.Update{"password": "bulk-hash"}).
		Return(repository.BulkResult{Matched: 3, Modified: 3}, nil)

	result, err := fx.service.UpdateMany(ctx, filter, repository.Update{"password": "bulkPass1"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.Modified)
}

func TestUserService_UpdateOne_RejectsEmptyPassword(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.UpdateOne(context.Background(), repository.Filter{"id": primitive.NewObjectID()}, repository.Update{"password": ""})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_GetByEmail_Normalizes(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.users.EXPECT().
		FindOne(ctx, repository.Filter{"email": "jane@example.com"}, []string(nil)).
		Return(nil, repository.ErrDocumentNotFound)

	user, err := fx.service.GetByEmail(ctx, "JANE@example.com")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserService_PasswordHashRoundTrip(t *testing.T) {
	users := mockRepo.NewMockCollection[entity.User](t)
	users.EXPECT().Name().Return(entity.UserCollection).Maybe()
	hasher := auth.NewBcryptHasher(&config.Config{Auth: &config.AuthConfig{BcryptCost: 4}})
	srv := newUserServiceWith(users, mockRepo.NewMockTransactionManager(t), hasher)
	ctx := context.Background()

	var stored *entity.User
	users.EXPECT().Count(ctx, mock.Anything).Return(0, nil)
	users.EXPECT().
		InsertOne(ctx, mock.Anything).
		Run(func(_ context.Context, doc *entity.User) { stored = doc }).
		Return(nil)

	_, err := srv.CreateOne(ctx, &entity.User{Email: "jane@example.com", Password: "abc12345"})
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.NotEqual(t, "abc12345", stored.Password)
	assert.True(t, hasher.Check("abc12345", stored.Password))
	assert.False(t, hasher.Check("wrong", stored.Password))
}
