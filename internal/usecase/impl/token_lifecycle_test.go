package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"apikit/internal/domain/entity"
	domainerrors "apikit/internal/domain/errors"
	"apikit/internal/domain/repository"
	"apikit/internal/infra/auth"
	mockService "apikit/internal/mocks/service"
	mockUsecase "apikit/internal/mocks/usecase"
	"apikit/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memTokens is an in-memory token collection supporting the equality filters
// the token service issues.
type memTokens struct {
	mu   sync.Mutex
	docs []*entity.Token
}

func (s *memTokens) Name() string { return entity.TokenCollection }

func (s *memTokens) InsertOne(_ context.Context, doc *entity.Token) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc.ID = primitive.NewObjectID()
	cp := *doc
	s.docs = append(s.docs, &cp)

	return nil
}

func (s *memTokens) InsertMany(ctx context.Context, docs []*entity.Token) error {
	for _, d := range docs {
		if err := s.InsertOne(ctx, d); err != nil {
			return err
		}
	}

	return nil
}

func (s *memTokens) FindOne(_ context.Context, filter repository.Filter, _ []string) (*entity.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.docs {
		if tokenMatches(d, filter) {
			cp := *d

			return &cp, nil
		}
	}

	return nil, repository.ErrDocumentNotFound
}

func (s *memTokens) Find(_ context.Context, filter repository.Filter, _ repository.FindOptions) ([]*entity.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*entity.Token
	for _, d := range s.docs {
		if tokenMatches(d, filter) {
			cp := *d
			out = append(out, &cp)
		}
	}

	return out, nil
}

func (s *memTokens) Count(ctx context.Context, filter repository.Filter) (int64, error) {
	docs, _ := s.Find(ctx, filter, repository.FindOptions{})

	return int64(len(docs)), nil
}

func (s *memTokens) UpdateOne(_ context.Context, filter repository.Filter, update repository.Update) (*entity.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.docs {
		if tokenMatches(d, filter) {
			if b, ok := update["blacklisted"].(bool); ok {
				d.Blacklisted = b
			}
			cp := *d

			return &cp, nil
		}
	}

	return nil, repository.ErrDocumentNotFound
}

func (s *memTokens) UpdateMany(_ context.Context, filter repository.Filter, update repository.Update) (repository.BulkResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var res repository.BulkResult
	for _, d := range s.docs {
		if tokenMatches(d, filter) {
			res.Matched++
			if b, ok := update["blacklisted"].(bool); ok {
				d.Blacklisted = b
				res.Modified++
			}
		}
	}

	return res, nil
}

func (s *memTokens) DeleteOne(_ context.Context, filter repository.Filter) (*entity.Token, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, d := range s.docs {
		if tokenMatches(d, filter) {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)

			return d, nil
		}
	}

	return nil, repository.ErrDocumentNotFound
}

func (s *memTokens) DeleteMany(_ context.Context, filter repository.Filter) (repository.BulkResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.docs[:0]
	var res repository.BulkResult
	for _, d := range s.docs {
		if tokenMatches(d, filter) {
			res.Deleted++

			continue
		}
		kept = append(kept, d)
	}
	s.docs = kept

	return res, nil
}

func (s *memTokens) countFor(user primitive.ObjectID, tokenType entity.TokenType) int {
	n, _ := s.Count(context.Background(), repository.Filter{"user": user, "type": tokenType})

	return int(n)
}

func tokenMatches(d *entity.Token, filter repository.Filter) bool {
	for k, v := range filter {
		switch k {
		case "_id":
			if v != any(d.ID) {
				return false
			}
		case "token":
			if v != any(d.Token) {
				return false
			}
		case "user":
			if v != any(d.User) {
				return false
			}
		case "type":
			if v != any(d.Type) {
				return false
			}
		case "blacklisted":
			if v != any(d.Blacklisted) {
				return false
			}
		case "expires":
			lt, _ := v.(bson.M)["$lt"].(time.Time)
			if !d.Expires.Before(lt) {
				return false
			}
		default:
			return false
		}
	}

	return true
}

type inlineTx struct{}

func (inlineTx) Execute(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type lifecycleFixtures struct {
	store  *memTokens
	tokens usecase.TokenUsecase
	auth   usecase.AuthUsecase
	users  *mockUsecase.MockUserUsecase
	mail   *mockUsecase.MockMailUsecase
	user   *entity.User
}

func createLifecycleFixtures(t *testing.T) lifecycleFixtures {
	cfg := newTestConfig()
	signer, err := auth.NewJWTSigner(cfg)
	require.NoError(t, err)

	store := &memTokens{}
	users := mockUsecase.NewMockUserUsecase(t)
	mail := mockUsecase.NewMockMailUsecase(t)

	tokens := NewTokenService(TokenServiceParams{
		Tokens:    store,
		Users:     users,
		Signer:    signer,
		TxManager: inlineTx{},
		Config:    cfg,
		Logger:    newDiscardLogger(),
	})
	authSrv := NewAuthService(AuthServiceParams{
		Users:  users,
		Tokens: tokens,
		Mail:   mail,
		Hasher: mockService.NewMockPasswordHasher(t),
		Signer: signer,
		Logger: newDiscardLogger(),
	})

	user := &entity.User{Email: "jane@example.com", Role: entity.RoleUser}
	user.ID = primitive.NewObjectID()
	users.EXPECT().GetByID(mock.Anything, user.ID.Hex()).Return(user, nil).Maybe()

	return lifecycleFixtures{store: store, tokens: tokens, auth: authSrv, users: users, mail: mail, user: user}
}

func TestTokenLifecycle_SecondIssuanceReplacesFirst(t *testing.T) {
	fx := createLifecycleFixtures(t)
	ctx := context.Background()

	for _, issue := range []func() error{
		func() error { _, err := fx.tokens.GenerateVerifyEmailToken(ctx, fx.user); return err },
		func() error { _, err := fx.tokens.GenerateVerifyEmailToken(ctx, fx.user); return err },
		func() error { _, err := fx.tokens.GenerateAuthTokens(ctx, fx.user); return err },
		func() error { _, err := fx.tokens.GenerateAuthTokens(ctx, fx.user); return err },
	} {
		require.NoError(t, issue())
	}

	assert.Equal(t, 1, fx.store.countFor(fx.user.ID, entity.TokenTypeVerifyEmail))
	assert.Equal(t, 1, fx.store.countFor(fx.user.ID, entity.TokenTypeRefresh))
}

func TestTokenLifecycle_RefreshRotatesAndConsumes(t *testing.T) {
	fx := createLifecycleFixtures(t)
	ctx := context.Background()

	first, err := fx.tokens.GenerateAuthTokens(ctx, fx.user)
	require.NoError(t, err)

	second, err := fx.auth.RefreshAuth(ctx, first.Refresh.Token)
	require.NoError(t, err)
	assert.NotEqual(t, first.Refresh.Token, second.Refresh.Token)
	assert.NotEmpty(t, second.Access.Token)

	_, err = fx.auth.RefreshAuth(ctx, first.Refresh.Token)
	assert.ErrorIs(t, err, domainerrors.ErrPleaseAuthenticate)

	_, err = fx.auth.RefreshAuth(ctx, second.Refresh.Token)
	assert.NoError(t, err)
}

func TestTokenLifecycle_VerifyRejections(t *testing.T) {
	fx := createLifecycleFixtures(t)
	ctx := context.Background()

	t.Run("expired", func(t *testing.T) {
		expired, err := fx.tokens.GenerateToken(fx.user.ID.Hex(), time.Now().Add(-time.Minute), entity.TokenTypeRefresh)
		require.NoError(t, err)
		_, err = fx.tokens.SaveToken(ctx, expired, fx.user.ID, time.Now().Add(-time.Minute), entity.TokenTypeRefresh, false)
		require.NoError(t, err)

		_, err = fx.tokens.VerifyToken(ctx, expired, entity.TokenTypeRefresh)
		assert.ErrorIs(t, err, domainerrors.ErrUnrecognizedToken)
	})

	t.Run("wrong type", func(t *testing.T) {
		tokens, err := fx.tokens.GenerateAuthTokens(ctx, fx.user)
		require.NoError(t, err)

		_, err = fx.tokens.VerifyToken(ctx, tokens.Refresh.Token, entity.TokenTypeResetPassword)
		assert.ErrorIs(t, err, domainerrors.ErrUnrecognizedToken)
	})

	t.Run("blacklisted", func(t *testing.T) {
		tokens, err := fx.tokens.GenerateAuthTokens(ctx, fx.user)
		require.NoError(t, err)
		require.NoError(t, fx.tokens.BlacklistToken(ctx, tokens.Refresh.Token))

		_, err = fx.tokens.VerifyToken(ctx, tokens.Refresh.Token, entity.TokenTypeRefresh)
		assert.ErrorIs(t, err, domainerrors.ErrUnrecognizedToken)

		_, err = fx.auth.RefreshAuth(ctx, tokens.Refresh.Token)
		assert.ErrorIs(t, err, domainerrors.ErrPleaseAuthenticate)
	})

	t.Run("deleted record", func(t *testing.T) {
		tokens, err := fx.tokens.GenerateAuthTokens(ctx, fx.user)
		require.NoError(t, err)
		require.NoError(t, fx.auth.Logout(ctx, tokens.Refresh.Token))

		_, err = fx.tokens.VerifyToken(ctx, tokens.Refresh.Token, entity.TokenTypeRefresh)
		assert.ErrorIs(t, err, domainerrors.ErrUnrecognizedToken)
	})
}

func TestTokenLifecycle_LogoutUnknownTokenIsNoop(t *testing.T) {
	fx := createLifecycleFixtures(t)

	assert.NoError(t, fx.auth.Logout(context.Background(), "never-issued"))
}

func TestTokenLifecycle_VerifyEmailConsumesTokens(t *testing.T) {
	fx := createLifecycleFixtures(t)
	ctx := context.Background()

	token, err := fx.tokens.GenerateVerifyEmailToken(ctx, fx.user)
	require.NoError(t, err)

	fx.users.EXPECT().
		UpdateOne(ctx, repository.Filter{"_id": fx.user.ID}, repository.Update{"isEmailVerified": true}).
		Return(fx.user, nil).
		Once()

	require.NoError(t, fx.auth.VerifyEmail(ctx, token))
	assert.Zero(t, fx.store.countFor(fx.user.ID, entity.TokenTypeVerifyEmail))

	err = fx.auth.VerifyEmail(ctx, token)
	assert.ErrorIs(t, err, domainerrors.ErrEmailVerificationFailed)
}
