package handler

import (
	"encoding/json"
	"log/slog"
	"strings"

	deliverycontext "apikit/internal/delivery/context"
	"apikit/internal/domain/entity"
	"apikit/internal/domain/repository"
	"apikit/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

var (
	userFilterFields = []FieldSpec{
		{Name: "id", Kind: FieldObjectIDList},
		{Name: "email", Kind: FieldString},
		{Name: "role", Kind: FieldString},
		{Name: "isEmailVerified", Kind: FieldBool},
		{Name: "createdAt", Kind: FieldDate},
		{Name: "updatedAt", Kind: FieldDate},
	}
	userBulkFilterFields = []FieldSpec{
		{Name: "id", Kind: FieldObjectIDList},
		{Name: "createdAt", Kind: FieldDate},
		{Name: "updatedAt", Kind: FieldDate},
	}
)

type createUserInput struct {
	FirstName       string                 `json:"firstName" validate:"required,name"`
	LastName        string                 `json:"lastName" validate:"required,name"`
	Email           string                 `json:"email" validate:"required,email,email_len"`
	Password        string                 `json:"password" validate:"required,password"`
	Role            string                 `json:"role" validate:"omitempty,oneof=user admin"`
	IsEmailVerified formBool               `json:"isEmailVerified"`
	Avatar          string                 `json:"avatar"`
	AvatarMetadata  *entity.UploadMetadata `json:"avatar_metadata"`
}

type updateUserInput struct {
	FirstName       *string                `json:"firstName" validate:"omitempty,name"`
	LastName        *string                `json:"lastName" validate:"omitempty,name"`
	Email           *string                `json:"email" validate:"omitempty,email,email_len"`
	Password        *string                `json:"password" validate:"omitempty,password"`
	Role            *string                `json:"role" validate:"omitempty,oneof=user admin"`
	IsEmailVerified *formBool              `json:"isEmailVerified"`
	Avatar          *string                `json:"avatar"`
	AvatarMetadata  *entity.UploadMetadata `json:"avatar_metadata"`
}

// UserController serves /v1/users.
type UserController struct {
	*Controller[entity.User]
}

// UserControllerParams holds dependencies for UserController, injected by Fx.
type UserControllerParams struct {
	fx.In

	Users   usecase.UserUsecase
	Uploads usecase.UploadUsecase
	Logger  *slog.Logger
}

// NewUserController is the constructor for UserController.
func NewUserController(params UserControllerParams) *UserController {
	return &UserController{
		Controller: NewController(params.Users, params.Uploads, Resource[entity.User]{
			Name:   entity.UserCollection,
			Schema: userSchema,
			Codec: Codec[entity.User]{
				Create: decodeCreateUser,
				Update: decodeUpdateUser,
			},
			FilterFields:           userFilterFields,
			UpdateManyFilterFields: userBulkFilterFields,
			DeleteManyFilterFields: userBulkFilterFields,
			Uploads:                []UploadField{{Field: "avatar", Folder: "users"}},
		}, params.Logger),
	}
}

func decodeCreateUser(c echo.Context, raw json.RawMessage) (*entity.User, error) {
	var in createUserInput
	if err := decodePayload(c, raw, &in); err != nil {
		return nil, err
	}

	return &entity.User{
		FirstName:       strings.TrimSpace(in.FirstName),
		LastName:        strings.TrimSpace(in.LastName),
		Email:           in.Email,
		Password:        in.Password,
		Role:            entity.Role(in.Role),
		IsEmailVerified: bool(in.IsEmailVerified),
		Avatar:          in.Avatar,
		AvatarMetadata:  in.AvatarMetadata,
	}, nil
}

// decodeUpdateUser drops role and isEmailVerified unless the caller manages users.
func decodeUpdateUser(c echo.Context, raw json.RawMessage) (repository.Update, error) {
	var in updateUserInput
	if err := decodePayload(c, raw, &in); err != nil {
		return nil, err
	}

	caller, _ := deliverycontext.GetUser(c)
	privileged := caller != nil && caller.HasPermission(entity.PermManageUsers)

	update := repository.Update{}
	if in.FirstName != nil {
		update["firstName"] = strings.TrimSpace(*in.FirstName)
	}
	if in.LastName != nil {
		update["lastName"] = strings.TrimSpace(*in.LastName)
	}
	if in.Email != nil {
		update["email"] = *in.Email
	}
	if in.Password != nil {
		update["password"] = *in.Password
	}
	if in.Role != nil && privileged {
		update["role"] = entity.Role(*in.Role)
	}
	if in.IsEmailVerified != nil && privileged {
		update["isEmailVerified"] = bool(*in.IsEmailVerified)
	}
	if in.Avatar != nil {
		update["avatar"] = *in.Avatar
	}
	if in.AvatarMetadata != nil {
		update["avatar_metadata"] = in.AvatarMetadata
	}

	return update, nil
}
