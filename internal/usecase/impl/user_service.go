package impl

import (
	"context"
	"log/slog"
	"strings"

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

// userService implements the UserUsecase interface.
type userService struct {
	*CrudService[entity.User]

	users  repository.Collection[entity.User]
	hasher service.PasswordHasher
	logger *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	Users     repository.Collection[entity.User]
	TxManager repository.TransactionManager
	Hasher    service.PasswordHasher
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	srv := &userService{
		users:  params.Users,
		hasher: params.Hasher,
		logger: params.Logger,
	}
	srv.CrudService = NewCrudService(params.Users, params.TxManager, params.Logger, Hooks[entity.User]{
		BeforeCreate:   srv.beforeCreate,
		BeforeUpdate:   srv.beforeUpdate,
		TranslateError: translateUserError,
	})

	return srv
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetByID returns the user with the given hex id, or nil when there is none.
func (srv *userService) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return srv.ReadOne(ctx, repository.Filter{"id": id})
}

// GetByEmail returns the user with the given email, or nil when there is none.
func (srv *userService) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return srv.ReadOne(ctx, repository.Filter{"email": normalizeEmail(email)})
}

func (srv *userService) beforeCreate(ctx context.Context, user *entity.User) error {
	user.Email = normalizeEmail(user.Email)

	if user.Password == "" {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("password is required"), "create user")
	}

	if user.Role == "" {
		user.Role = entity.RoleUser
	}
	if !user.Role.IsValid() {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("role must be one of user, admin"), "create user")
	}

	if err := srv.ensureEmailAvailable(ctx, user.Email, primitive.NilObjectID); err != nil {
		return err
	}

	hash, err := srv.hasher.Hash(user.Password)
	if err != nil {
		return errors.Wrap(err, "failed to hash password")
	}
	user.Password = hash

	return nil
}

// beforeUpdate rewrites update in place: emails are normalised and checked,
// passwords are replaced by their hash.
func (srv *userService) beforeUpdate(ctx context.Context, filter repository.Filter, update repository.Update) error {
	if raw, ok := update["email"]; ok {
		email, isString := raw.(string)
		if !isString || email == "" {
			return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("email must be a non-empty string"), "update user")
		}
		email = normalizeEmail(email)
		update["email"] = email

		self, _ := filter["_id"].(primitive.ObjectID)
		if err := srv.ensureEmailAvailable(ctx, email, self); err != nil {
			return err
		}
	}

	if raw, ok := update["password"]; ok {
		password, isString := raw.(string)
		if !isString || password == "" {
			return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("password must be a non-empty string"), "update user")
		}

		hash, err := srv.hasher.Hash(password)
		if err != nil {
			return errors.Wrap(err, "failed to hash password")
		}
		update["password"] = hash
	}

	if raw, ok := update["role"]; ok && !roleOf(raw).IsValid() {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("role must be one of user, admin"), "update user")
	}

	return nil
}

// ensureEmailAvailable fails with ErrEmailTaken when another user owns email.
func (srv *userService) ensureEmailAvailable(ctx context.Context, email string, self primitive.ObjectID) error {
	filter := repository.Filter{"email": email}
	if !self.IsZero() {
		filter["_id"] = bson.M{"$ne": self}
	}

	n, err := srv.users.Count(ctx, filter)
	if err != nil {
		return errors.Wrap(err, "failed to check email")
	}
	if n > 0 {
		srv.log(ctx).Debug("Email already taken", slog.String("email", email))

		return errors.Wrap(domainerrors.ErrEmailTaken, "email already taken")
	}

	return nil
}

// translateUserError maps a unique-index violation on users to ErrEmailTaken,
// email being the only unique field.
func translateUserError(err error) error {
	if errors.Is(err, repository.ErrDuplicateKey) {
		return domainerrors.ErrEmailTaken
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func roleOf(v any) entity.Role {
	switch r := v.(type) {
	case entity.Role:
		return r
	case string:
		return entity.Role(r)
	default:
		return ""
	}
}
